package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/projectd/src/projectd/internal/core/coretest"
)

func TestCallTimeoutConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    time.Duration
		wantErr bool
	}{
		{name: "unset", yaml: "", want: 0},
		{name: "set", yaml: "rpc:\n  callTimeoutMs: 1500\n", want: 1500 * time.Millisecond},
		{name: "negative", yaml: "rpc:\n  callTimeoutMs: -1\n", wantErr: true},
		{name: "not a number", yaml: "rpc:\n  callTimeoutMs: soon\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CallTimeout(coretest.Config(t, tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
