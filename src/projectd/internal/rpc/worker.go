package rpc

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/uber/projectd/src/projectd/internal/executor"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// WorkerConfig describes how to spawn a worker process and serve the coordinator's operations to it.
type WorkerConfig struct {
	// Command is the worker executable. Empty means the current executable.
	Command string
	Args    []string
	// Env is appended to the current environment.
	Env []string
	Dir string
	// Stderr receives the worker's stderr. Nil means the current process's stderr.
	Stderr   io.Writer
	Executor executor.Executor
	Peer     PeerConfig
}

// Worker is a running worker process together with the channel to it.
type Worker struct {
	*Peer
	process executor.Process
	group   *errgroup.Group
}

// StartWorker spawns the worker, connects its stdio and starts serving cfg.Peer.Dispatcher to it.
func StartWorker(ctx context.Context, cfg WorkerConfig) (*Worker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	command := cfg.Command
	if command == "" {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolving worker executable: %w", err)
		}
		command = self
	}

	cmd := exec.Command(command, cfg.Args...)
	cmd.Dir = cfg.Dir
	cmd.Env = append(os.Environ(), cfg.Env...)
	cmd.Stderr = cfg.Stderr

	ex := cfg.Executor
	if ex == nil {
		ex = executor.NewExecutor()
	}
	process, err := ex.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting worker: %w", err)
	}

	peer := NewPeer(process, cfg.Peer)
	peer.Start()

	group := new(errgroup.Group)
	group.Go(func() error {
		return process.Wait()
	})
	group.Go(func() error {
		<-peer.Done()
		return nil
	})

	return &Worker{Peer: peer, process: process, group: group}, nil
}

// Pid returns the worker process id.
func (w *Worker) Pid() int {
	return w.process.Pid()
}

// Wait blocks until the worker process exited and the channel is closed.
func (w *Worker) Wait() error {
	return w.group.Wait()
}

// Stop closes the channel, which ends the worker's input, and waits for the process to exit.
// The process is killed if ctx expires first.
func (w *Worker) Stop(ctx context.Context) error {
	stopped := make(chan error, 1)
	go func() {
		closeErr := w.Peer.Close()
		stopped <- multierr.Append(closeErr, w.Wait())
	}()

	select {
	case err := <-stopped:
		return err
	case <-ctx.Done():
		killErr := w.process.Kill()
		err := <-stopped
		return multierr.Combine(err, killErr, ctx.Err())
	}
}

// RunConfig describes the worker side of the channel.
type RunConfig struct {
	Stdin  io.Reader
	Stdout io.Writer
	Peer   PeerConfig
}

// NewWorkerPeer connects the worker's stdio to the coordinator. Nothing is read until Start is called,
// so handlers and subscriptions can be wired first. The returned Peer calls the coordinator's operations.
func NewWorkerPeer(cfg RunConfig) *Peer {
	stdin, stdout := cfg.Stdin, cfg.Stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return NewPeer(stdioConn{Reader: stdin, Writer: stdout}, cfg.Peer)
}

// RunWorker is NewWorkerPeer followed by Start.
func RunWorker(cfg RunConfig) *Peer {
	peer := NewWorkerPeer(cfg)
	peer.Start()
	return peer
}

type stdioConn struct {
	io.Reader
	io.Writer
}

func (s stdioConn) Close() error {
	var err error
	if c, ok := s.Writer.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	if c, ok := s.Reader.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	return err
}
