package contract

import (
	"context"

	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/rpc"
)

// RegisterMaster binds every master operation to impl.
func RegisterMaster(d *rpc.Dispatcher, impl Master) {
	rpc.Register(d, MethodGetFileContents, func(ctx context.Context, p FilePathParams) (FileContentsResult, error) {
		contents, err := impl.GetFileContents(ctx, p.FilePath)
		return FileContentsResult{Contents: contents}, err
	})
	rpc.Register(d, MethodGetOpenFilePaths, func(ctx context.Context, _ Empty) ([]string, error) {
		return impl.GetOpenFilePaths(ctx)
	})
	rpc.Register(d, MethodReceiveErrorCacheDelta, func(ctx context.Context, delta entity.ErrorCacheDelta) (Empty, error) {
		return Empty{}, impl.ReceiveErrorCacheDelta(ctx, delta)
	})
	rpc.Register(d, MethodReceiveFileOutputStatusUpdate, func(ctx context.Context, status entity.FileOutputStatus) (Empty, error) {
		return Empty{}, impl.ReceiveFileOutputStatusUpdate(ctx, status)
	})
	rpc.Register(d, MethodReceiveCompleteOutputStatusCacheUpdate, func(ctx context.Context, cache entity.OutputStatusCache) (Empty, error) {
		return Empty{}, impl.ReceiveCompleteOutputStatusCacheUpdate(ctx, cache)
	})
	rpc.Register(d, MethodReceiveActiveProjectConfigDetails, func(ctx context.Context, p DescriptorParams) (Empty, error) {
		return Empty{}, impl.ReceiveActiveProjectConfigDetails(ctx, p.Descriptor)
	})
	rpc.Register(d, MethodReceiveAvailableProjects, func(ctx context.Context, p ProjectsParams) (Empty, error) {
		return Empty{}, impl.ReceiveAvailableProjects(ctx, p.Projects)
	})
}

// RegisterWorker binds every worker operation to impl.
func RegisterWorker(d *rpc.Dispatcher, impl Worker) {
	rpc.Register(d, MethodEcho, func(ctx context.Context, p EchoParams) (EchoParams, error) {
		text, err := impl.Echo(ctx, p.Text)
		return EchoParams{Text: text}, err
	})
	rpc.Register(d, MethodSetActiveProjectConfigDetails, func(ctx context.Context, p DescriptorParams) (Empty, error) {
		return Empty{}, impl.SetActiveProjectConfigDetails(ctx, p.Descriptor)
	})
	rpc.Register(d, MethodFilePathsUpdated, func(ctx context.Context, p FilePathsParams) (Empty, error) {
		return Empty{}, impl.FilePathsUpdated(ctx, p.FilePaths)
	})
	rpc.Register(d, MethodFileEdited, func(ctx context.Context, p FileEditedParams) (Empty, error) {
		return Empty{}, impl.FileEdited(ctx, p.FilePath, p.Edit)
	})
	rpc.Register(d, MethodFileChangedOnDisk, func(ctx context.Context, p FileChangedOnDiskParams) (Empty, error) {
		return Empty{}, impl.FileChangedOnDisk(ctx, p.FilePath, p.Contents)
	})
	rpc.Register(d, MethodFormatDocument, func(ctx context.Context, p FormatDocumentParams) ([]entity.CodeEdit, error) {
		return impl.FormatDocument(ctx, p.FilePath, p.EditorOptions)
	})
	rpc.Register(d, MethodFormatDocumentRange, func(ctx context.Context, p FormatDocumentRangeParams) ([]entity.CodeEdit, error) {
		return impl.FormatDocumentRange(ctx, p.FilePath, p.From, p.To, p.EditorOptions)
	})
}
