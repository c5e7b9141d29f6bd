// Package worker starts the analysis worker process and calls its operations.
package worker

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"github.com/uber/projectd/src/projectd/internal/executor"
	"github.com/uber/projectd/src/projectd/internal/rpc"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=workermock/worker_mock.go -package=workermock . Gateway

const (
	_peerName      = "worker"
	_commandKey    = "worker.command"
	_argsKey       = "worker.args"
	_envKey        = "worker.env"
	_workspaceRoot = "workspace.root"
)

// Module provides the Gateway and exposes it as the contract.Worker of the master.
var Module = fx.Provide(New, asWorker)

// Gateway calls the worker's operations.
type Gateway interface {
	contract.Worker
	// Done is closed once the worker process exited and its channel is gone.
	Done() <-chan struct{}
}

// Params are inbound parameters to initialize a new Gateway.
type Params struct {
	fx.In

	Dispatcher *rpc.Dispatcher
	Executor   executor.Executor
	Config     config.Provider
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Lifecycle  fx.Lifecycle

	Output io.Writer `name:"workerOutput" optional:"true"`
}

type gateway struct {
	*contract.WorkerClient

	workerConfig rpc.WorkerConfig
	logger       *zap.SugaredLogger

	mu     sync.Mutex
	worker *rpc.Worker
	done   chan struct{}
}

// New creates the Gateway. The worker is spawned at fx start and stopped at fx stop.
func New(p Params) (Gateway, error) {
	cfg := rpc.WorkerConfig{
		Executor: p.Executor,
		Stderr:   p.Output,
		Peer: rpc.PeerConfig{
			Name:       _peerName,
			Dispatcher: p.Dispatcher,
			Logger:     p.Logger,
			Stats:      p.Stats,
		},
	}
	if err := p.Config.Get(_commandKey).Populate(&cfg.Command); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _commandKey, err)
	}
	if err := p.Config.Get(_argsKey).Populate(&cfg.Args); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _argsKey, err)
	}
	if err := p.Config.Get(_envKey).Populate(&cfg.Env); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _envKey, err)
	}
	if err := p.Config.Get(_workspaceRoot).Populate(&cfg.Dir); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _workspaceRoot, err)
	}
	callTimeout, err := rpc.CallTimeout(p.Config)
	if err != nil {
		return nil, err
	}
	cfg.Peer.CallTimeout = callTimeout

	g := &gateway{
		workerConfig: cfg,
		logger:       p.Logger.With("plugin", "gateway-worker"),
		done:         make(chan struct{}),
	}
	g.WorkerClient = contract.NewWorkerClient(g)

	p.Lifecycle.Append(fx.Hook{
		OnStart: g.start,
		OnStop:  g.stop,
	})
	return g, nil
}

func asWorker(g Gateway) contract.Worker {
	return g
}

func (g *gateway) start(ctx context.Context) error {
	w, err := rpc.StartWorker(ctx, g.workerConfig)
	if err != nil {
		return err
	}
	g.logger.Infow("worker started", "pid", w.Pid())

	g.mu.Lock()
	g.worker = w
	g.mu.Unlock()

	go func() {
		if err := w.Wait(); err != nil {
			g.logger.Warnf("worker exited: %v", err)
		} else {
			g.logger.Info("worker exited")
		}
		close(g.done)
	}()
	return nil
}

func (g *gateway) stop(ctx context.Context) error {
	g.mu.Lock()
	w := g.worker
	g.mu.Unlock()
	if w == nil {
		return nil
	}
	err := w.Stop(ctx)
	<-g.done
	return err
}

// Call makes the gateway the rpc.Caller of its own WorkerClient.
func (g *gateway) Call(ctx context.Context, op string, params, result any) error {
	g.mu.Lock()
	w := g.worker
	g.mu.Unlock()
	if w == nil {
		return fmt.Errorf("calling %q: %w", op, projectderrors.ChannelNotStartedError)
	}
	return w.Call(ctx, op, params, result)
}

func (g *gateway) Done() <-chan struct{} {
	return g.done
}
