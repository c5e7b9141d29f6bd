package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/projectd/src/projectd/internal/core/coretest"
)

func TestNewSugaredLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "projectd.log")

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "defaults when logging section is missing",
			yaml: "service:\n  name: projectd\n",
		},
		{
			name: "console development logger to file",
			yaml: "logging:\n  level: debug\n  development: true\n  encoding: console\n  outputPaths:\n    - " + logFile + "\n",
		},
		{
			name:    "invalid level",
			yaml:    "logging:\n  level: loud\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewSugaredLogger(coretest.Config(t, tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.NotNil(t, NewLogger(logger))
			logger.Infow("test message", "key", "value")
		})
	}
}
