// Package master serves the master's operations to the worker and the editor-facing operations of the coordinator.
package master

import (
	"context"
	"fmt"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/controller/errorcache"
	"github.com/uber/projectd/src/projectd/controller/outputstatus"
	"github.com/uber/projectd/src/projectd/entity"
	workergateway "github.com/uber/projectd/src/projectd/gateway/worker"
	"github.com/uber/projectd/src/projectd/internal/event"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/manifest"
	"github.com/uber/projectd/src/projectd/internal/outbox"
	"github.com/uber/projectd/src/projectd/internal/rpc"
	"github.com/uber/projectd/src/projectd/repository/openfile"
	"github.com/uber/projectd/src/projectd/repository/workspacestate"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mastermock/master_mock.go -package=mastermock . Handler

const _nameKey = "handler-master"

// Module provides the master Handler.
var Module = fx.Provide(New)

// Handler implements the master's side of the contract and coordinates the worker on behalf of editors.
// Every call that reaches the worker goes out in the order it was made.
type Handler interface {
	contract.Master

	// OpenFile opens filePath and returns its contents.
	OpenFile(ctx context.Context, filePath string) (string, error)
	// EditFile applies an edit to an open file and tells the worker about it.
	EditFile(ctx context.Context, filePath string, edit entity.CodeEdit) error
	SaveFile(ctx context.Context, filePath string) error
	CloseFile(ctx context.Context, filePath string) error
	// SetActiveProject asks the worker to switch to descriptor.
	SetActiveProject(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error
	// UpdateFilePaths hands the workspace listing to the worker.
	UpdateFilePaths(ctx context.Context, filePaths []string) error
	FormatDocument(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error)
	FormatDocumentRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error)

	// Errors returns the limited snapshot of the master error cache.
	Errors() entity.LimitedErrorsUpdate
	// OutputStatus returns the output status of every known file.
	OutputStatus() entity.OutputStatusCache
	// ActiveProject returns the project the worker reported last, if any.
	ActiveProject() (entity.ProjectConfigDescriptor, bool)
	// AvailableProjects returns the candidate projects the worker reported last.
	AvailableProjects() []entity.ProjectConfigDescriptor

	SubscribeActiveProjectChanged(fn func(entity.ProjectConfigDescriptor)) (unsubscribe func())
	SubscribeAvailableProjectsUpdated(fn func([]entity.ProjectConfigDescriptor)) (unsubscribe func())
}

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	Dispatcher     *rpc.Dispatcher
	OpenFiles      openfile.Repository
	WorkspaceState workspacestate.Repository
	ErrorCache     errorcache.Controller
	OutputStatus   outputstatus.Controller
	Worker         workergateway.Gateway
	Loader         *manifest.Loader
	FS             fs.FS
	Logger         *zap.SugaredLogger
	Stats          tally.Scope
	Lifecycle      fx.Lifecycle
	Shutdowner     fx.Shutdowner
}

type handler struct {
	openFiles      openfile.Repository
	workspaceState workspacestate.Repository
	errorCache     errorcache.Controller
	outputStatus   outputstatus.Controller
	worker         workergateway.Gateway
	fs             fs.FS
	root           string
	logger         *zap.SugaredLogger
	stats          tally.Scope
	shutdowner     fx.Shutdowner

	activeProjectChanged     event.Event[entity.ProjectConfigDescriptor]
	availableProjectsUpdated event.Event[[]entity.ProjectConfigDescriptor]

	subscriptions event.Subscriptions
	outbox        *outbox.Outbox
	started       bool
	ctx           context.Context
	cancel        context.CancelFunc
	stopped       chan struct{}
}

// New creates the master Handler and registers its operations.
// Open-file changes reach the worker between fx start and stop.
func New(p Params) Handler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &handler{
		openFiles:      p.OpenFiles,
		workspaceState: p.WorkspaceState,
		errorCache:     p.ErrorCache,
		outputStatus:   p.OutputStatus,
		worker:         p.Worker,
		fs:             p.FS,
		root:           p.Loader.Options().Root,
		logger:         p.Logger.With("plugin", _nameKey),
		stats:          p.Stats.SubScope("master"),
		shutdowner:     p.Shutdowner,
		outbox:         outbox.New(),
		ctx:            ctx,
		cancel:         cancel,
		stopped:        make(chan struct{}),
	}
	contract.RegisterMaster(p.Dispatcher, h)

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
		h.openFiles.SubscribeDidEdit(func(e entity.FileEdit) {
			h.forward(contract.MethodFileEdited, func(ctx context.Context) error {
				return h.worker.FileEdited(ctx, e.FilePath, e.Edit)
			})
		}),
		h.openFiles.SubscribeSavedFileChangedOnDisk(func(f entity.FilePathWithContent) {
			h.forward(contract.MethodFileChangedOnDisk, func(ctx context.Context) error {
				return h.worker.FileChangedOnDisk(ctx, f.FilePath, f.Contents)
			})
		}),
	)
	h.started = true
	go h.outbox.Run(h.ctx)
	h.resume()

	go func() {
		defer close(h.stopped)
		select {
		case <-h.worker.Done():
			h.logger.Error("worker is gone, shutting down")
			if err := h.shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
				h.logger.Warnf("failed to shut down: %v", err)
			}
		case <-h.ctx.Done():
		}
	}()
}

func (h *handler) stop() {
	h.subscriptions.Close()
	h.outbox.Close(h.started)
	h.cancel()
	if h.started {
		<-h.stopped
	}
}

// resume activates the project remembered for the workspace, as long as its manifest is still there.
func (h *handler) resume() {
	manifestFilePath, ok, err := h.workspaceState.ManifestFilePath()
	if err != nil {
		h.logger.Warnf("reading workspace state: %v", err)
		return
	}
	if !ok {
		return
	}
	exists, err := h.fs.FileExists(manifestFilePath)
	if err != nil || !exists {
		h.logger.Infow("remembered project is gone", "manifest", manifestFilePath)
		return
	}

	descriptor := entity.ManifestProject(h.root, manifestFilePath)
	h.logger.Infow("resuming project", "project", descriptor.Name)
	h.stats.Counter("resumes").Inc(1)
	h.forward(contract.MethodSetActiveProjectConfigDetails, func(ctx context.Context) error {
		return h.worker.SetActiveProjectConfigDetails(ctx, descriptor)
	})
}

// forward calls the worker without waiting, behind every call made before it.
func (h *handler) forward(op string, call func(ctx context.Context) error) {
	h.outbox.Post(func(ctx context.Context) {
		if err := call(ctx); err != nil {
			h.countForwardError(op)
			h.logger.Warnf("forwarding %s to worker: %v", op, err)
		}
	})
}

// call calls the worker behind every call made before it and waits for the result.
func (h *handler) call(ctx context.Context, op string, call func(ctx context.Context) error) error {
	if err := h.outbox.Do(ctx, call); err != nil {
		h.countForwardError(op)
		return err
	}
	return nil
}

func (h *handler) countForwardError(op string) {
	h.stats.Tagged(map[string]string{"operation": op}).Counter("forward_errors").Inc(1)
}

func (h *handler) GetFileContents(ctx context.Context, filePath string) (string, error) {
	return h.openFiles.Contents(filePath)
}

func (h *handler) GetOpenFilePaths(ctx context.Context) ([]string, error) {
	return h.openFiles.OpenFilePaths(), nil
}

func (h *handler) ReceiveErrorCacheDelta(ctx context.Context, delta entity.ErrorCacheDelta) error {
	h.errorCache.ApplyDelta(delta)
	return nil
}

func (h *handler) ReceiveFileOutputStatusUpdate(ctx context.Context, status entity.FileOutputStatus) error {
	h.outputStatus.SetFileStatus(status)
	return nil
}

func (h *handler) ReceiveCompleteOutputStatusCacheUpdate(ctx context.Context, cache entity.OutputStatusCache) error {
	h.outputStatus.SetCache(cache)
	return nil
}

func (h *handler) ReceiveActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	h.logger.Infow("active project changed", "project", descriptor.Name, "implicit", descriptor.IsImplicit)
	if err := h.workspaceState.SetManifestFilePath(descriptor.ManifestFilePath); err != nil {
		h.logger.Warnf("remembering active project: %v", err)
	}
	h.activeProjectChanged.Emit(descriptor)
	return nil
}

func (h *handler) ReceiveAvailableProjects(ctx context.Context, projects []entity.ProjectConfigDescriptor) error {
	h.availableProjectsUpdated.Emit(projects)
	return nil
}

func (h *handler) OpenFile(ctx context.Context, filePath string) (string, error) {
	return h.openFiles.GetOrCreate(ctx, filePath)
}

func (h *handler) EditFile(ctx context.Context, filePath string, edit entity.CodeEdit) error {
	return h.openFiles.Edit(ctx, filePath, edit)
}

func (h *handler) SaveFile(ctx context.Context, filePath string) error {
	return h.openFiles.Save(ctx, filePath)
}

func (h *handler) CloseFile(ctx context.Context, filePath string) error {
	return h.openFiles.Close(ctx, filePath)
}

func (h *handler) SetActiveProject(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	if !descriptor.Valid() {
		return fmt.Errorf("invalid project %q", descriptor.Name)
	}
	return h.call(ctx, contract.MethodSetActiveProjectConfigDetails, func(ctx context.Context) error {
		return h.worker.SetActiveProjectConfigDetails(ctx, descriptor)
	})
}

func (h *handler) UpdateFilePaths(ctx context.Context, filePaths []string) error {
	return h.call(ctx, contract.MethodFilePathsUpdated, func(ctx context.Context) error {
		return h.worker.FilePathsUpdated(ctx, filePaths)
	})
}

func (h *handler) FormatDocument(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	var edits []entity.CodeEdit
	err := h.call(ctx, contract.MethodFormatDocument, func(ctx context.Context) error {
		var err error
		edits, err = h.worker.FormatDocument(ctx, filePath, options)
		return err
	})
	if err != nil {
		return nil, err
	}
	return edits, nil
}

func (h *handler) FormatDocumentRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	var edits []entity.CodeEdit
	err := h.call(ctx, contract.MethodFormatDocumentRange, func(ctx context.Context) error {
		var err error
		edits, err = h.worker.FormatDocumentRange(ctx, filePath, from, to, options)
		return err
	})
	if err != nil {
		return nil, err
	}
	return edits, nil
}

func (h *handler) Errors() entity.LimitedErrorsUpdate {
	return h.errorCache.GetErrorsLimited()
}

func (h *handler) OutputStatus() entity.OutputStatusCache {
	return h.outputStatus.Cache()
}

func (h *handler) ActiveProject() (entity.ProjectConfigDescriptor, bool) {
	return h.activeProjectChanged.Current()
}

func (h *handler) AvailableProjects() []entity.ProjectConfigDescriptor {
	projects, _ := h.availableProjectsUpdated.Current()
	return projects
}

func (h *handler) SubscribeActiveProjectChanged(fn func(entity.ProjectConfigDescriptor)) func() {
	return h.activeProjectChanged.Subscribe(fn)
}

func (h *handler) SubscribeAvailableProjectsUpdated(fn func([]entity.ProjectConfigDescriptor)) func() {
	return h.availableProjectsUpdated.Subscribe(fn)
}
