// Package worker serves the worker's operations to the master and reports the worker's state back to it.
package worker

import (
	"context"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/controller/activeproject"
	"github.com/uber/projectd/src/projectd/controller/errorcache"
	"github.com/uber/projectd/src/projectd/controller/outputstatus"
	"github.com/uber/projectd/src/projectd/entity"
	mastergateway "github.com/uber/projectd/src/projectd/gateway/master"
	"github.com/uber/projectd/src/projectd/internal/event"
	"github.com/uber/projectd/src/projectd/internal/outbox"
	"github.com/uber/projectd/src/projectd/internal/rpc"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "handler-worker"

// Module provides the worker Handler.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(h Handler) {}),
)

// Handler implements the worker's side of the contract.
type Handler interface {
	contract.Worker
}

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	Dispatcher    *rpc.Dispatcher
	ActiveProject activeproject.Controller
	ErrorCache    errorcache.Controller
	OutputStatus  outputstatus.Controller
	Master        mastergateway.Gateway
	Logger        *zap.SugaredLogger
	Stats         tally.Scope
	Lifecycle     fx.Lifecycle
	Shutdowner    fx.Shutdowner
}

type handler struct {
	activeProject activeproject.Controller
	errorCache    errorcache.Controller
	outputStatus  outputstatus.Controller
	master        mastergateway.Gateway
	logger        *zap.SugaredLogger
	stats         tally.Scope
	shutdowner    fx.Shutdowner

	subscriptions event.Subscriptions
	outbox        *outbox.Outbox
	ctx           context.Context
	cancel        context.CancelFunc
	stopped       chan struct{}
}

// New creates the worker Handler and registers its operations. The master is told about changes between fx start and stop.
func New(p Params) Handler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &handler{
		activeProject: p.ActiveProject,
		errorCache:    p.ErrorCache,
		outputStatus:  p.OutputStatus,
		master:        p.Master,
		logger:        p.Logger.With("plugin", _nameKey),
		stats:         p.Stats.SubScope("worker"),
		shutdowner:    p.Shutdowner,
		outbox:        outbox.New(),
		ctx:           ctx,
		cancel:        cancel,
		stopped:       make(chan struct{}),
	}
	contract.RegisterWorker(p.Dispatcher, h)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			h.start()
			return nil
		},
		OnStop: func(context.Context) error {
			h.stop()
			return nil
		},
	})
	return h
}

func (h *handler) start() {
	h.subscriptions.Add(
		h.errorCache.SubscribeErrorsDelta(func(delta entity.ErrorCacheDelta) {
			h.forward(contract.MethodReceiveErrorCacheDelta, func(ctx context.Context) error {
				return h.master.ReceiveErrorCacheDelta(ctx, delta)
			})
		}),
		h.outputStatus.SubscribeFileOutputStatusUpdated(func(status entity.FileOutputStatus) {
			h.forward(contract.MethodReceiveFileOutputStatusUpdate, func(ctx context.Context) error {
				return h.master.ReceiveFileOutputStatusUpdate(ctx, status)
			})
		}),
		h.outputStatus.SubscribeCompleteOutputStatusCacheUpdated(func(cache entity.OutputStatusCache) {
			h.forward(contract.MethodReceiveCompleteOutputStatusCacheUpdate, func(ctx context.Context) error {
				return h.master.ReceiveCompleteOutputStatusCacheUpdate(ctx, cache)
			})
		}),
		h.activeProject.SubscribeActiveProjectChanged(func(descriptor entity.ProjectConfigDescriptor) {
			h.forward(contract.MethodReceiveActiveProjectConfigDetails, func(ctx context.Context) error {
				return h.master.ReceiveActiveProjectConfigDetails(ctx, descriptor)
			})
		}),
		h.activeProject.SubscribeAvailableProjectsUpdated(func(projects []entity.ProjectConfigDescriptor) {
			h.forward(contract.MethodReceiveAvailableProjects, func(ctx context.Context) error {
				return h.master.ReceiveAvailableProjects(ctx, projects)
			})
		}),
	)
	go h.outbox.Run(h.ctx)
	h.master.Start()

	go func() {
		defer close(h.stopped)
		select {
		case <-h.master.Done():
			h.logger.Info("master is gone, shutting down")
			if err := h.shutdowner.Shutdown(); err != nil {
				h.logger.Warnf("failed to shut down: %v", err)
			}
		case <-h.ctx.Done():
		}
	}()
}

func (h *handler) stop() {
	h.subscriptions.Close()
	h.outbox.Close(true)
	h.cancel()
	<-h.stopped
}

// forward tells the master about a change, in the order changes happened.
func (h *handler) forward(op string, call func(ctx context.Context) error) {
	h.outbox.Post(func(ctx context.Context) {
		if err := call(ctx); err != nil {
			h.stats.Tagged(map[string]string{"operation": op}).Counter("forward_errors").Inc(1)
			h.logger.Warnf("forwarding %s to master: %v", op, err)
		}
	})
}

func (h *handler) Echo(ctx context.Context, text string) (string, error) {
	return text, nil
}

func (h *handler) SetActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	return h.activeProject.SetActiveProjectConfigDetails(ctx, descriptor)
}

func (h *handler) FilePathsUpdated(ctx context.Context, filePaths []string) error {
	return h.activeProject.FilePathsUpdated(ctx, filePaths)
}

func (h *handler) FileEdited(ctx context.Context, filePath string, edit entity.CodeEdit) error {
	return h.activeProject.FileEdited(ctx, filePath, edit)
}

func (h *handler) FileChangedOnDisk(ctx context.Context, filePath string, contents string) error {
	return h.activeProject.FileChangedOnDisk(ctx, filePath, contents)
}

func (h *handler) FormatDocument(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	return h.activeProject.Format(ctx, filePath, options)
}

func (h *handler) FormatDocumentRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	return h.activeProject.FormatRange(ctx, filePath, from, to, options)
}
