package rpc

import (
	"fmt"
	"time"

	"go.uber.org/config"
)

const _callTimeoutKey = "rpc.callTimeoutMs"

// CallTimeout reads the per-call timeout. Zero, the default, means calls wait until the channel fails.
func CallTimeout(cfg config.Provider) (time.Duration, error) {
	ms := 0
	if err := cfg.Get(_callTimeoutKey).Populate(&ms); err != nil {
		return 0, fmt.Errorf("reading %s: %w", _callTimeoutKey, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", _callTimeoutKey, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
