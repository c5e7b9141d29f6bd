package contract

import (
	"context"

	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/rpc"
)

var (
	_ Master = (*MasterClient)(nil)
	_ Worker = (*WorkerClient)(nil)
)

// MasterClient calls the master's operations from the worker.
type MasterClient struct {
	caller rpc.Caller
}

// NewMasterClient creates a MasterClient on top of caller.
func NewMasterClient(caller rpc.Caller) *MasterClient {
	return &MasterClient{caller: caller}
}

func (c *MasterClient) GetFileContents(ctx context.Context, filePath string) (string, error) {
	var result FileContentsResult
	err := c.caller.Call(ctx, MethodGetFileContents, FilePathParams{FilePath: filePath}, &result)
	return result.Contents, err
}

func (c *MasterClient) GetOpenFilePaths(ctx context.Context) ([]string, error) {
	var result []string
	err := c.caller.Call(ctx, MethodGetOpenFilePaths, Empty{}, &result)
	return result, err
}

func (c *MasterClient) ReceiveErrorCacheDelta(ctx context.Context, delta entity.ErrorCacheDelta) error {
	return c.caller.Call(ctx, MethodReceiveErrorCacheDelta, delta, nil)
}

func (c *MasterClient) ReceiveFileOutputStatusUpdate(ctx context.Context, status entity.FileOutputStatus) error {
	return c.caller.Call(ctx, MethodReceiveFileOutputStatusUpdate, status, nil)
}

func (c *MasterClient) ReceiveCompleteOutputStatusCacheUpdate(ctx context.Context, cache entity.OutputStatusCache) error {
	return c.caller.Call(ctx, MethodReceiveCompleteOutputStatusCacheUpdate, cache, nil)
}

func (c *MasterClient) ReceiveActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	return c.caller.Call(ctx, MethodReceiveActiveProjectConfigDetails, DescriptorParams{Descriptor: descriptor}, nil)
}

func (c *MasterClient) ReceiveAvailableProjects(ctx context.Context, projects []entity.ProjectConfigDescriptor) error {
	return c.caller.Call(ctx, MethodReceiveAvailableProjects, ProjectsParams{Projects: projects}, nil)
}

// WorkerClient calls the worker's operations from the master.
type WorkerClient struct {
	caller rpc.Caller
}

// NewWorkerClient creates a WorkerClient on top of caller.
func NewWorkerClient(caller rpc.Caller) *WorkerClient {
	return &WorkerClient{caller: caller}
}

func (c *WorkerClient) Echo(ctx context.Context, text string) (string, error) {
	var result EchoParams
	err := c.caller.Call(ctx, MethodEcho, EchoParams{Text: text}, &result)
	return result.Text, err
}

func (c *WorkerClient) SetActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	return c.caller.Call(ctx, MethodSetActiveProjectConfigDetails, DescriptorParams{Descriptor: descriptor}, nil)
}

func (c *WorkerClient) FilePathsUpdated(ctx context.Context, filePaths []string) error {
	return c.caller.Call(ctx, MethodFilePathsUpdated, FilePathsParams{FilePaths: filePaths}, nil)
}

func (c *WorkerClient) FileEdited(ctx context.Context, filePath string, edit entity.CodeEdit) error {
	return c.caller.Call(ctx, MethodFileEdited, FileEditedParams{FilePath: filePath, Edit: edit}, nil)
}

func (c *WorkerClient) FileChangedOnDisk(ctx context.Context, filePath string, contents string) error {
	return c.caller.Call(ctx, MethodFileChangedOnDisk, FileChangedOnDiskParams{FilePath: filePath, Contents: contents}, nil)
}

func (c *WorkerClient) FormatDocument(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	var result []entity.CodeEdit
	err := c.caller.Call(ctx, MethodFormatDocument, FormatDocumentParams{FilePath: filePath, EditorOptions: options}, &result)
	return result, err
}

func (c *WorkerClient) FormatDocumentRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	var result []entity.CodeEdit
	err := c.caller.Call(ctx, MethodFormatDocumentRange, FormatDocumentRangeParams{FilePath: filePath, From: from, To: to, EditorOptions: options}, &result)
	return result, err
}
