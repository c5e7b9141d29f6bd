// Package editor serves editor connections. Requests are routed to the master handler, and state changes are pushed to every editor.
package editor

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/controller/errorcache"
	"github.com/uber/projectd/src/projectd/controller/outputstatus"
	"github.com/uber/projectd/src/projectd/entity"
	editorclient "github.com/uber/projectd/src/projectd/gateway/editor-client"
	masterhandler "github.com/uber/projectd/src/projectd/handler/master"
	"github.com/uber/projectd/src/projectd/internal/event"
	"github.com/uber/projectd/src/projectd/internal/jsonrpcfx"
	"github.com/uber/projectd/src/projectd/mapper"
	"github.com/uber/projectd/src/projectd/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "handler-editor"

// Requests editors send to the master.
const (
	MethodOpenFile             = "projectd/openFile"
	MethodEditFile             = "projectd/editFile"
	MethodSaveFile             = "projectd/saveFile"
	MethodCloseFile            = "projectd/closeFile"
	MethodSetActiveProject     = "projectd/setActiveProject"
	MethodFilePathsUpdated     = "projectd/filePathsUpdated"
	MethodGetErrors            = "projectd/getErrors"
	MethodGetAvailableProjects = "projectd/getAvailableProjects"
	MethodGetOutputStatus      = "projectd/getOutputStatus"
	MethodFormatDocument       = "projectd/formatDocument"
	MethodFormatDocumentRange  = "projectd/formatDocumentRange"
)

// Notifications the master sends to every editor.
const (
	NotificationErrorsUpdated        = "projectd/errorsUpdated"
	NotificationFileOutputStatus     = "projectd/fileOutputStatus"
	NotificationCompleteOutputStatus = "projectd/completeOutputStatus"
	NotificationActiveProjectChanged = "projectd/activeProjectChanged"
	NotificationAvailableProjects    = "projectd/availableProjects"
)

// Module provides the editor Handler.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(h Handler) {}),
)

// Handler manages editor connections.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

// AvailableProjectsResult is returned by projectd/getAvailableProjects.
type AvailableProjectsResult struct {
	Projects []entity.ProjectConfigDescriptor `json:"projects"`
	Active   *entity.ProjectConfigDescriptor  `json:"active,omitempty"`
}

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	JSONRPC      jsonrpcfx.JSONRPCModule
	Master       masterhandler.Handler
	ErrorCache   errorcache.Controller
	OutputStatus outputstatus.Controller
	Sessions     session.Repository
	EditorClient editorclient.Gateway
	Logger       *zap.SugaredLogger
	Stats        tally.Scope
	Lifecycle    fx.Lifecycle
}

type handler struct {
	master       masterhandler.Handler
	errorCache   errorcache.Controller
	outputStatus outputstatus.Controller
	sessions     session.Repository
	editorClient editorclient.Gateway
	logger       *zap.SugaredLogger
	stats        tally.Scope

	subscriptions event.Subscriptions

	mu sync.Mutex
	// published holds the errors of the last snapshot sent to editors.
	published entity.ErrorsByFilePath
}

// New creates the editor Handler and registers it with the JSON-RPC module.
func New(p Params) (Handler, error) {
	h := &handler{
		master:       p.Master,
		errorCache:   p.ErrorCache,
		outputStatus: p.OutputStatus,
		sessions:     p.Sessions,
		editorClient: p.EditorClient,
		logger:       p.Logger.With("plugin", _nameKey),
		stats:        p.Stats.SubScope("editor"),
		published:    make(entity.ErrorsByFilePath),
	}
	if err := p.JSONRPC.RegisterConnectionManager(h); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			h.start()
			return nil
		},
		OnStop: func(context.Context) error {
			h.subscriptions.Close()
			return nil
		},
	})
	return h, nil
}

func (h *handler) start() {
	h.subscriptions.Add(
		h.errorCache.SubscribeErrorsUpdated(h.publishErrors),
		h.outputStatus.SubscribeFileOutputStatusUpdated(func(status entity.FileOutputStatus) {
			h.broadcast(NotificationFileOutputStatus, status)
		}),
		h.outputStatus.SubscribeCompleteOutputStatusCacheUpdated(func(cache entity.OutputStatusCache) {
			h.broadcast(NotificationCompleteOutputStatus, cache)
		}),
		h.master.SubscribeActiveProjectChanged(func(descriptor entity.ProjectConfigDescriptor) {
			h.broadcast(NotificationActiveProjectChanged, contract.DescriptorParams{Descriptor: descriptor})
		}),
		h.master.SubscribeAvailableProjectsUpdated(func(projects []entity.ProjectConfigDescriptor) {
			h.broadcast(NotificationAvailableProjects, contract.ProjectsParams{Projects: projects})
		}),
	)
}

// NewConnection will store a new session and return a router that includes its UUID.
func (h *handler) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	if err := h.sessions.Set(ctx, &entity.Session{UUID: id, Conn: *conn}); err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	if err := h.editorClient.RegisterClient(ctx, id, conn); err != nil {
		h.sessions.Delete(ctx, id)
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	h.stats.Counter("connections").Inc(1)

	return &router{
		master: h.master,
		uuid:   id,
		stats:  h.stats,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (h *handler) RemoveConnection(ctx context.Context, id uuid.UUID) {
	if err := h.editorClient.DeregisterClient(ctx, id); err != nil {
		h.logger.Warnf("deregistering session %q: %v", id, err)
	}
	if err := h.sessions.Delete(ctx, id); err != nil {
		h.logger.Warnf("deleting session %q: %v", id, err)
	}
}

// publishErrors sends the snapshot to every editor, followed by the diagnostics of each file whose errors changed since the previous snapshot.
func (h *handler) publishErrors(update entity.LimitedErrorsUpdate) {
	h.mu.Lock()
	previous := h.published
	h.published = update.ErrorsByFilePath
	h.mu.Unlock()

	h.broadcast(NotificationErrorsUpdated, update)

	filePaths := make([]string, 0, len(update.ErrorsByFilePath))
	for filePath, errs := range update.ErrorsByFilePath {
		if !entity.EqualErrors(previous[filePath], errs) {
			filePaths = append(filePaths, filePath)
		}
	}
	for filePath, errs := range previous {
		if _, ok := update.ErrorsByFilePath[filePath]; !ok && len(errs) > 0 {
			filePaths = append(filePaths, filePath)
		}
	}
	sort.Strings(filePaths)

	for _, filePath := range filePaths {
		params := mapper.CodeErrorsToPublishDiagnosticsParams(filePath, update.ErrorsByFilePath[filePath])
		if err := h.editorClient.BroadcastDiagnostics(context.Background(), params); err != nil {
			h.stats.Counter("notify_errors").Inc(1)
			h.logger.Warnf("publishing diagnostics of %q: %v", filePath, err)
		}
	}
	h.stats.Counter("diagnostics_published").Inc(int64(len(filePaths)))
}

func (h *handler) broadcast(method string, params interface{}) {
	if err := h.editorClient.Broadcast(context.Background(), method, params); err != nil {
		h.stats.Counter("notify_errors").Inc(1)
		h.logger.Warnf("broadcasting %s: %v", method, err)
	}
}
