// Package coretest builds configuration providers for tests.
package coretest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/config"
)

// Config returns a provider holding the given YAML document. An empty document yields an empty provider.
func Config(t testing.TB, yaml string) config.Provider {
	t.Helper()
	if strings.TrimSpace(yaml) == "" {
		yaml = "{}"
	}
	provider, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return provider
}
