package contract

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/projectd/src/projectd/contract/contractmock"
	"github.com/uber/projectd/src/projectd/entity"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"github.com/uber/projectd/src/projectd/internal/rpc"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// connect returns a caller whose calls are served by d on the other end of a pipe.
func connect(t *testing.T, d *rpc.Dispatcher) rpc.Caller {
	a, b := net.Pipe()
	client := rpc.NewPeer(a, rpc.PeerConfig{Name: "client"})
	server := rpc.NewPeer(b, rpc.PeerConfig{Name: "server", Dispatcher: d})
	client.Start()
	server.Start()
	t.Cleanup(func() {
		_ = client.Close()
		<-server.Done()
	})
	return client
}

func TestMasterRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := contractmock.NewMockMaster(ctrl)
	d := rpc.NewDispatcher()
	RegisterMaster(d, master)
	client := NewMasterClient(connect(t, d))
	ctx := context.Background()

	delta := entity.ErrorCacheDelta{
		Added: entity.ErrorsByFilePath{"/p/a.ts": {{FilePath: "/p/a.ts", Message: "e1", Level: entity.LevelError}}},
	}
	status := entity.FileOutputStatus{InputFilePath: "/p/a.ts", State: entity.OutputUpToDate}
	cache := entity.OutputStatusCache{"/p/a.ts": status}
	descriptor := entity.ProjectConfigDescriptor{Name: "p/projectd.json", ManifestFilePath: "/p/projectd.json"}

	master.EXPECT().GetFileContents(gomock.Any(), "/p/a.ts").Return("let a = 1", nil)
	master.EXPECT().GetOpenFilePaths(gomock.Any()).Return([]string{"/p/a.ts"}, nil)
	master.EXPECT().ReceiveErrorCacheDelta(gomock.Any(), delta).Return(nil)
	master.EXPECT().ReceiveFileOutputStatusUpdate(gomock.Any(), status).Return(nil)
	master.EXPECT().ReceiveCompleteOutputStatusCacheUpdate(gomock.Any(), cache).Return(nil)
	master.EXPECT().ReceiveActiveProjectConfigDetails(gomock.Any(), descriptor).Return(nil)
	master.EXPECT().ReceiveAvailableProjects(gomock.Any(), []entity.ProjectConfigDescriptor{descriptor}).Return(nil)

	contents, err := client.GetFileContents(ctx, "/p/a.ts")
	require.NoError(t, err)
	assert.Equal(t, "let a = 1", contents)

	paths, err := client.GetOpenFilePaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/a.ts"}, paths)

	assert.NoError(t, client.ReceiveErrorCacheDelta(ctx, delta))
	assert.NoError(t, client.ReceiveFileOutputStatusUpdate(ctx, status))
	assert.NoError(t, client.ReceiveCompleteOutputStatusCacheUpdate(ctx, cache))
	assert.NoError(t, client.ReceiveActiveProjectConfigDetails(ctx, descriptor))
	assert.NoError(t, client.ReceiveAvailableProjects(ctx, []entity.ProjectConfigDescriptor{descriptor}))
}

func TestWorkerRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	worker := contractmock.NewMockWorker(ctrl)
	d := rpc.NewDispatcher()
	RegisterWorker(d, worker)
	client := NewWorkerClient(connect(t, d))
	ctx := context.Background()

	edit := entity.CodeEdit{From: entity.Position{Line: 1}, To: entity.Position{Line: 1, Ch: 2}, NewText: "x", SourceID: "editor-1"}
	options := entity.DefaultEditorOptions()
	formatted := []entity.CodeEdit{{From: entity.Position{Line: 0, Ch: 3}, To: entity.Position{Line: 0, Ch: 5}}}

	worker.EXPECT().Echo(gomock.Any(), "ping").Return("ping", nil)
	worker.EXPECT().SetActiveProjectConfigDetails(gomock.Any(), entity.ImplicitProject("")).Return(nil)
	worker.EXPECT().FilePathsUpdated(gomock.Any(), []string{"/p/a.ts", "/p/projectd.json"}).Return(nil)
	worker.EXPECT().FileEdited(gomock.Any(), "/p/a.ts", edit).Return(nil)
	worker.EXPECT().FileChangedOnDisk(gomock.Any(), "/p/a.ts", "saved").Return(nil)
	worker.EXPECT().FormatDocument(gomock.Any(), "/p/a.ts", options).Return(formatted, nil)
	worker.EXPECT().FormatDocumentRange(gomock.Any(), "/p/a.ts", entity.Position{}, entity.Position{Line: 3}, options).Return(nil, nil)

	text, err := client.Echo(ctx, "ping")
	require.NoError(t, err)
	assert.Equal(t, "ping", text)

	assert.NoError(t, client.SetActiveProjectConfigDetails(ctx, entity.ImplicitProject("")))
	assert.NoError(t, client.FilePathsUpdated(ctx, []string{"/p/a.ts", "/p/projectd.json"}))
	assert.NoError(t, client.FileEdited(ctx, "/p/a.ts", edit))
	assert.NoError(t, client.FileChangedOnDisk(ctx, "/p/a.ts", "saved"))

	edits, err := client.FormatDocument(ctx, "/p/a.ts", options)
	require.NoError(t, err)
	assert.Equal(t, formatted, edits)

	edits, err = client.FormatDocumentRange(ctx, "/p/a.ts", entity.Position{}, entity.Position{Line: 3}, options)
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestWorkerFailureReachesCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	worker := contractmock.NewMockWorker(ctrl)
	d := rpc.NewDispatcher()
	RegisterWorker(d, worker)
	client := NewWorkerClient(connect(t, d))

	worker.EXPECT().FormatDocument(gomock.Any(), "/q/b.ts", gomock.Any()).
		Return(nil, &projectderrors.NoActiveProjectForFilePathError{FilePath: "/q/b.ts"})

	_, err := client.FormatDocument(context.Background(), "/q/b.ts", entity.DefaultEditorOptions())
	opErr, ok := projectderrors.AsOperationError(err)
	require.True(t, ok)
	assert.Equal(t, MethodFormatDocument, opErr.Operation)
	assert.Contains(t, opErr.Message, "/q/b.ts")
}
