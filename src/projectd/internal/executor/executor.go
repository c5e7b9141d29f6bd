package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(
	func(logger *zap.SugaredLogger) Executor {
		return NewExecutor(WithLogger(logger))
	},
)

// Executor wraps the execution of "os/exec".Cmd's to allow adding logs/metrics to
// each exec and makes it easier to test.
type Executor interface {
	// Start logs and starts the Cmd specified with its stdin and stdout connected to the returned Process.
	Start(cmd *exec.Cmd) (Process, error)
}

// Process is a started command. Reads come from its stdout, writes go to its stdin.
// Close closes stdin, which asks a well-behaved child to exit.
type Process interface {
	io.ReadWriteCloser
	Pid() int
	Wait() error
	Kill() error
}

// executorImp implements Executor
type executorImp struct {
	Logger *zap.SugaredLogger
	// StartFunc may be nil to use executorImp in tests.
	StartFunc func(e *exec.Cmd) error
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithStartFunc provides customized start behavior for executorImp
func WithStartFunc(startFunc func(e *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.StartFunc = startFunc
	}
}

// NewExecutor - creates a new executorImp with a noop logger and a default start function
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:    zap.NewNop().Sugar(),
		StartFunc: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Start - logs the Path/Args, wires the stdio pipes and calls StartFunc.
func (l *executorImp) Start(cmd *exec.Cmd) (Process, error) {
	l.logCommand(cmd)

	if l.StartFunc == nil {
		return nil, fmt.Errorf("missing StartFunc for %q", cmd.Path)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("stdout pipe: %w", err), stdin.Close())
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := l.StartFunc(cmd); err != nil {
		return nil, multierr.Combine(err, stdin.Close(), stdout.Close())
	}

	l.Logger.Infow("Started", "Path", cmd.Path, "Pid", pid(cmd))
	return &process{cmd: cmd, stdin: stdin, stdout: stdout}, nil
}

// Logs the command specified: Path, Dir, Args
func (l *executorImp) logCommand(cmd *exec.Cmd) {
	args := []string{}
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:] // First arg is always the command itself
	}
	l.Logger.Infow("Exec",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", args,
	)
}

type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	closeOnce sync.Once
	closeErr  error
}

func (p *process) Read(b []byte) (int, error) {
	return p.stdout.Read(b)
}

func (p *process) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

func (p *process) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.stdin.Close()
	})
	return p.closeErr
}

func (p *process) Pid() int {
	return pid(p.cmd)
}

func (p *process) Wait() error {
	return p.cmd.Wait()
}

func (p *process) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func pid(cmd *exec.Cmd) int {
	if cmd.Process == nil {
		return 0
	}
	return cmd.Process.Pid
}
