package editor

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/controller/errorcache"
	"github.com/uber/projectd/src/projectd/controller/outputstatus"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/gateway/editor-client/editorclientmock"
	"github.com/uber/projectd/src/projectd/handler/master/mastermock"
	"github.com/uber/projectd/src/projectd/internal/clock"
	"github.com/uber/projectd/src/projectd/internal/core/coretest"
	"github.com/uber/projectd/src/projectd/internal/jsonrpcfx/jsonrpcfxmock"
	"github.com/uber/projectd/src/projectd/mapper"
	"github.com/uber/projectd/src/projectd/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	handler      Handler
	master       *mastermock.MockHandler
	editorClient *editorclientmock.MockGateway
	jsonrpc      *jsonrpcfxmock.MockJSONRPCModule
	errorCache   errorcache.Controller
	outputStatus outputstatus.Controller
	sessions     session.Repository
	clock        *clock.Manual
	lifecycle    *fxtest.Lifecycle
	stats        tally.TestScope

	activeProjectChanged     func(entity.ProjectConfigDescriptor)
	availableProjectsUpdated func([]entity.ProjectConfigDescriptor)
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		master:       mastermock.NewMockHandler(ctrl),
		editorClient: editorclientmock.NewMockGateway(ctrl),
		jsonrpc:      jsonrpcfxmock.NewMockJSONRPCModule(ctrl),
		clock:        clock.NewManual(time.Time{}),
		lifecycle:    fxtest.NewLifecycle(t),
		stats:        tally.NewTestScope("testing", make(map[string]string, 0)),
	}

	var err error
	f.errorCache, err = errorcache.NewMaster(errorcache.Params{
		Config: coretest.Config(t, ""),
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NoopScope,
		Clock:  f.clock,
	})
	require.NoError(t, err)
	f.outputStatus = outputstatus.New(outputstatus.Params{Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope})
	f.sessions = session.New(tally.NoopScope)

	f.master.EXPECT().SubscribeActiveProjectChanged(gomock.Any()).DoAndReturn(func(fn func(entity.ProjectConfigDescriptor)) func() {
		f.activeProjectChanged = fn
		return func() {}
	}).AnyTimes()
	f.master.EXPECT().SubscribeAvailableProjectsUpdated(gomock.Any()).DoAndReturn(func(fn func([]entity.ProjectConfigDescriptor)) func() {
		f.availableProjectsUpdated = fn
		return func() {}
	}).AnyTimes()
	f.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)

	f.handler, err = New(Params{
		JSONRPC:      f.jsonrpc,
		Master:       f.master,
		ErrorCache:   f.errorCache,
		OutputStatus: f.outputStatus,
		Sessions:     f.sessions,
		EditorClient: f.editorClient,
		Logger:       zap.NewNop().Sugar(),
		Stats:        f.stats,
		Lifecycle:    f.lifecycle,
	})
	require.NoError(t, err)
	return f
}

// newRouter returns a router bound to a fresh session.
func (f *fixture) newRouter(t *testing.T) *router {
	return &router{master: f.master, uuid: uuid.Must(uuid.NewV4()), stats: f.stats.SubScope("editor")}
}

type replyRecorder struct {
	called bool
	result interface{}
	err    error
}

func (r *replyRecorder) reply(ctx context.Context, result interface{}, err error) error {
	r.called = true
	r.result = result
	r.err = err
	return nil
}

func call(t *testing.T, r *router, method string, params interface{}) *replyRecorder {
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), method, params)
	require.NoError(t, err)
	rec := &replyRecorder{}
	require.NoError(t, r.HandleReq(context.Background(), rec.reply, req))
	require.True(t, rec.called)
	return rec
}

func TestNewRegistersConnectionManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	jsonrpc := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)

	var registered interface{}
	jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).DoAndReturn(func(cm interface{}) error {
		registered = cm
		return nil
	})
	h, err := New(Params{
		JSONRPC:   jsonrpc,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
		Lifecycle: fxtest.NewLifecycle(t),
	})
	require.NoError(t, err)
	assert.Equal(t, h, registered)

	jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("already registered"))
	_, err = New(Params{
		JSONRPC:   jsonrpc,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
		Lifecycle: fxtest.NewLifecycle(t),
	})
	assert.EqualError(t, err, "already registered")
}

func TestConnections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	server, client := net.Pipe()
	defer client.Close()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(server))
	defer conn.Close()

	var registeredID uuid.UUID
	f.editorClient.EXPECT().RegisterClient(gomock.Any(), gomock.Any(), &conn).DoAndReturn(
		func(ctx context.Context, id uuid.UUID, c *jsonrpc2.Conn) error {
			registeredID = id
			return nil
		})

	r, err := f.handler.NewConnection(ctx, &conn)
	require.NoError(t, err)
	assert.Equal(t, registeredID, r.UUID())

	s, err := f.sessions.Get(ctx, r.UUID())
	require.NoError(t, err)
	assert.Equal(t, r.UUID(), s.UUID)
	assert.Equal(t, int64(1), f.stats.Snapshot().Counters()["testing.editor.connections+"].Value())

	f.editorClient.EXPECT().DeregisterClient(gomock.Any(), r.UUID()).Return(nil)
	f.handler.RemoveConnection(ctx, r.UUID())
	count, err := f.sessions.SessionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNewConnectionRegisterFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	server, client := net.Pipe()
	defer client.Close()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(server))
	defer conn.Close()

	f.editorClient.EXPECT().RegisterClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("duplicate"))
	_, err := f.handler.NewConnection(ctx, &conn)
	assert.ErrorContains(t, err, "duplicate")

	count, err := f.sessions.SessionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRouterSetsSession(t *testing.T) {
	f := newFixture(t)
	r := f.newRouter(t)

	f.master.EXPECT().OpenFile(gomock.Any(), "/w/a.ts").DoAndReturn(func(ctx context.Context, filePath string) (string, error) {
		id, err := mapper.ContextToSessionUUID(ctx)
		require.NoError(t, err)
		assert.Equal(t, r.uuid, id)
		return "abc", nil
	})

	rec := call(t, r, MethodOpenFile, contract.FilePathParams{FilePath: "/w/a.ts"})
	assert.NoError(t, rec.err)
	assert.Equal(t, contract.FileContentsResult{Contents: "abc"}, rec.result)
}

func TestRouterFileMethods(t *testing.T) {
	edit := entity.CodeEdit{From: entity.Position{Line: 1}, To: entity.Position{Line: 1, Ch: 2}, NewText: "x"}

	tests := []struct {
		name    string
		method  string
		params  interface{}
		expect  func(m *mastermock.MockHandler) *gomock.Call
		wantErr string
	}{
		{
			name:   "edit",
			method: MethodEditFile,
			params: contract.FileEditedParams{FilePath: "/w/a.ts", Edit: edit},
			expect: func(m *mastermock.MockHandler) *gomock.Call {
				return m.EXPECT().EditFile(gomock.Any(), "/w/a.ts", edit).Return(nil)
			},
		},
		{
			name:   "save",
			method: MethodSaveFile,
			params: contract.FilePathParams{FilePath: "/w/a.ts"},
			expect: func(m *mastermock.MockHandler) *gomock.Call {
				return m.EXPECT().SaveFile(gomock.Any(), "/w/a.ts").Return(nil)
			},
		},
		{
			name:   "close not open",
			method: MethodCloseFile,
			params: contract.FilePathParams{FilePath: "/w/a.ts"},
			expect: func(m *mastermock.MockHandler) *gomock.Call {
				return m.EXPECT().CloseFile(gomock.Any(), "/w/a.ts").Return(errors.New("file not open"))
			},
			wantErr: "file not open",
		},
		{
			name:   "file paths updated",
			method: MethodFilePathsUpdated,
			params: contract.FilePathsParams{FilePaths: []string{"/w/a.ts", "/w/b.ts"}},
			expect: func(m *mastermock.MockHandler) *gomock.Call {
				return m.EXPECT().UpdateFilePaths(gomock.Any(), []string{"/w/a.ts", "/w/b.ts"}).Return(nil)
			},
		},
		{
			name:   "set active project",
			method: MethodSetActiveProject,
			params: contract.DescriptorParams{Descriptor: entity.ManifestProject("/w", "/w/projectd.json")},
			expect: func(m *mastermock.MockHandler) *gomock.Call {
				return m.EXPECT().SetActiveProject(gomock.Any(), entity.ManifestProject("/w", "/w/projectd.json")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.expect(f.master)

			rec := call(t, f.newRouter(t), tt.method, tt.params)
			if tt.wantErr != "" {
				assert.ErrorContains(t, rec.err, tt.wantErr)
				return
			}
			assert.NoError(t, rec.err)
			assert.Nil(t, rec.result)
		})
	}
}

func TestRouterQueries(t *testing.T) {
	f := newFixture(t)
	r := f.newRouter(t)

	errs := entity.LimitedErrorsUpdate{ErrorsByFilePath: entity.ErrorsByFilePath{
		"/w/a.ts": {{FilePath: "/w/a.ts", Message: "bad", Level: entity.LevelError}},
	}}
	f.master.EXPECT().Errors().Return(errs)
	rec := call(t, r, MethodGetErrors, nil)
	assert.Equal(t, errs, rec.result)

	cache := entity.OutputStatusCache{"/w/a.ts": {InputFilePath: "/w/a.ts", State: entity.OutputUpToDate}}
	f.master.EXPECT().OutputStatus().Return(cache)
	rec = call(t, r, MethodGetOutputStatus, nil)
	assert.Equal(t, cache, rec.result)

	active := entity.ManifestProject("/w", "/w/projectd.json")
	f.master.EXPECT().AvailableProjects().Return([]entity.ProjectConfigDescriptor{active})
	f.master.EXPECT().ActiveProject().Return(active, true)
	rec = call(t, r, MethodGetAvailableProjects, nil)
	assert.Equal(t, AvailableProjectsResult{Projects: []entity.ProjectConfigDescriptor{active}, Active: &active}, rec.result)

	f.master.EXPECT().AvailableProjects().Return(nil)
	f.master.EXPECT().ActiveProject().Return(entity.ProjectConfigDescriptor{}, false)
	rec = call(t, r, MethodGetAvailableProjects, nil)
	assert.Equal(t, AvailableProjectsResult{Projects: []entity.ProjectConfigDescriptor{}}, rec.result)
}

func TestRouterFormatting(t *testing.T) {
	f := newFixture(t)
	r := f.newRouter(t)
	options := entity.DefaultEditorOptions()
	edits := []entity.CodeEdit{{NewText: "  "}}

	f.master.EXPECT().FormatDocument(gomock.Any(), "/w/a.ts", options).Return(edits, nil)
	rec := call(t, r, MethodFormatDocument, contract.FormatDocumentParams{FilePath: "/w/a.ts", EditorOptions: options})
	assert.NoError(t, rec.err)
	assert.Equal(t, edits, rec.result)

	from, to := entity.Position{Line: 1}, entity.Position{Line: 3}
	f.master.EXPECT().FormatDocumentRange(gomock.Any(), "/w/a.ts", from, to, options).Return(nil, errors.New("worker gone"))
	rec = call(t, r, MethodFormatDocumentRange, contract.FormatDocumentRangeParams{FilePath: "/w/a.ts", From: from, To: to, EditorOptions: options})
	assert.EqualError(t, rec.err, "worker gone")
	assert.Nil(t, rec.result)
}

func TestRouterInvalidParams(t *testing.T) {
	f := newFixture(t)

	rec := call(t, f.newRouter(t), MethodOpenFile, json.RawMessage(`{"filePath": 3}`))
	assert.ErrorIs(t, rec.err, jsonrpc2.ErrInvalidParams)
}

func TestRouterUnknownMethod(t *testing.T) {
	f := newFixture(t)

	rec := call(t, f.newRouter(t), "projectd/unknown", nil)
	assert.ErrorIs(t, rec.err, jsonrpc2.ErrMethodNotFound)
	counter, ok := f.stats.Snapshot().Counters()["testing.editor.unknown_methods+"]
	require.True(t, ok)
	assert.Equal(t, int64(1), counter.Value())
}

func TestPublishesErrors(t *testing.T) {
	f := newFixture(t)
	f.lifecycle.RequireStart()
	defer f.lifecycle.RequireStop()

	a := entity.CodeError{FilePath: "/w/a.ts", Message: "bad", Level: entity.LevelError}
	b := entity.CodeError{FilePath: "/w/b.ts", Message: "worse", Level: entity.LevelError}

	gomock.InOrder(
		f.editorClient.EXPECT().Broadcast(gomock.Any(), NotificationErrorsUpdated, gomock.Any()).Return(nil),
		f.editorClient.EXPECT().BroadcastDiagnostics(gomock.Any(), mapper.CodeErrorsToPublishDiagnosticsParams("/w/a.ts", []entity.CodeError{a})).Return(nil),
		f.editorClient.EXPECT().BroadcastDiagnostics(gomock.Any(), mapper.CodeErrorsToPublishDiagnosticsParams("/w/b.ts", []entity.CodeError{b})).Return(nil),
	)
	f.errorCache.SetErrorsByFilePaths([]string{"/w/a.ts", "/w/b.ts"}, []entity.CodeError{a, b})
	f.clock.Advance(time.Second)

	// Only the cleared file is republished.
	gomock.InOrder(
		f.editorClient.EXPECT().Broadcast(gomock.Any(), NotificationErrorsUpdated, gomock.Any()).Return(nil),
		f.editorClient.EXPECT().BroadcastDiagnostics(gomock.Any(), mapper.CodeErrorsToPublishDiagnosticsParams("/w/a.ts", nil)).Return(errors.New("editor gone")),
	)
	f.errorCache.SetErrorsByFilePaths([]string{"/w/a.ts"}, nil)
	f.clock.Advance(time.Second)

	assert.Equal(t, int64(1), f.stats.Snapshot().Counters()["testing.editor.notify_errors+"].Value())
	assert.Equal(t, int64(3), f.stats.Snapshot().Counters()["testing.editor.diagnostics_published+"].Value())
}

func TestBroadcastsStateChanges(t *testing.T) {
	f := newFixture(t)
	f.lifecycle.RequireStart()
	defer f.lifecycle.RequireStop()

	descriptor := entity.ManifestProject("/w", "/w/projectd.json")
	status := entity.FileOutputStatus{InputFilePath: "/w/a.ts", State: entity.OutputUpToDate}

	f.editorClient.EXPECT().Broadcast(gomock.Any(), NotificationActiveProjectChanged, contract.DescriptorParams{Descriptor: descriptor}).Return(nil)
	f.editorClient.EXPECT().Broadcast(gomock.Any(), NotificationAvailableProjects, contract.ProjectsParams{Projects: []entity.ProjectConfigDescriptor{descriptor}}).Return(nil)
	f.editorClient.EXPECT().Broadcast(gomock.Any(), NotificationFileOutputStatus, status).Return(nil)
	f.editorClient.EXPECT().Broadcast(gomock.Any(), NotificationCompleteOutputStatus, entity.OutputStatusCache{"/w/a.ts": status}).Return(errors.New("editor gone"))

	require.NotNil(t, f.activeProjectChanged)
	require.NotNil(t, f.availableProjectsUpdated)
	f.activeProjectChanged(descriptor)
	f.availableProjectsUpdated([]entity.ProjectConfigDescriptor{descriptor})
	f.outputStatus.SetFileStatus(status)
	f.outputStatus.SetCache(entity.OutputStatusCache{"/w/a.ts": status})

	assert.Equal(t, int64(1), f.stats.Snapshot().Counters()["testing.editor.notify_errors+"].Value())
}
