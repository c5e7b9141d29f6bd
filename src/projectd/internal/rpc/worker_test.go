package rpc

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/projectd/src/projectd/internal/executor"
	"go.uber.org/zap"
)

func startHelperWorker(t *testing.T, d *Dispatcher) *Worker {
	return startHelperWorkerWithStderr(t, d, nil)
}

func startHelperWorkerWithStderr(t *testing.T, d *Dispatcher, stderr io.Writer) *Worker {
	t.Helper()
	w, err := StartWorker(context.Background(), WorkerConfig{
		Command:  os.Args[0],
		Args:     []string{"-test.run=^$"},
		Env:      []string{_helperWorkerEnv + "=1"},
		Stderr:   stderr,
		Executor: executor.NewExecutor(executor.WithLogger(zap.NewNop().Sugar())),
		Peer:     PeerConfig{Name: "master", Dispatcher: d},
	})
	require.NoError(t, err)
	return w
}

func TestStartWorker(t *testing.T) {
	d := NewDispatcher()
	Register(d, "masterEcho", func(ctx context.Context, s string) (string, error) {
		return "master:" + s, nil
	})
	w := startHelperWorker(t, d)
	assert.NotZero(t, w.Pid())

	var out string
	require.NoError(t, w.Call(context.Background(), "echo", "hello", &out))
	assert.Equal(t, "hello", out)

	require.NoError(t, w.Call(context.Background(), "callBack", "ping", &out))
	assert.Equal(t, "worker:master:ping", out)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	assert.NoError(t, w.Stop(ctx))
}

func TestStartWorkerStderr(t *testing.T) {
	var stderr bytes.Buffer
	w := startHelperWorkerWithStderr(t, NewDispatcher(), &stderr)

	var out string
	require.NoError(t, w.Call(context.Background(), "stderr", "to the log", &out))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
	assert.Contains(t, stderr.String(), "to the log\n")
}

func TestStopKillsOnDeadline(t *testing.T) {
	w := startHelperWorker(t, NewDispatcher())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := w.Stop(ctx)
	// The worker may exit on its own before the kill lands; either way Stop returns.
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
	<-w.Done()
}

func TestStartWorkerMissingExecutable(t *testing.T) {
	_, err := StartWorker(context.Background(), WorkerConfig{
		Command: "/does/not/exist/projectd",
	})
	assert.Error(t, err)
}
