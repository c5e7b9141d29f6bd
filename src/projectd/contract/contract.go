// Package contract declares the operations the master and worker processes expose to each other.
package contract

import (
	"context"

	"github.com/uber/projectd/src/projectd/entity"
)

//go:generate mockgen -destination=contractmock/contract_mock.go -package=contractmock . Master,Worker

// Operations exposed by the master process.
const (
	MethodGetFileContents                        = "getFileContents"
	MethodGetOpenFilePaths                       = "getOpenFilePaths"
	MethodReceiveErrorCacheDelta                 = "receiveErrorCacheDelta"
	MethodReceiveFileOutputStatusUpdate          = "receiveFileOutputStatusUpdate"
	MethodReceiveCompleteOutputStatusCacheUpdate = "receiveCompleteOutputStatusCacheUpdate"
	MethodReceiveActiveProjectConfigDetails      = "receiveActiveProjectConfigDetails"
	MethodReceiveAvailableProjects               = "receiveAvailableProjects"
)

// Operations exposed by the worker process.
const (
	MethodEcho                          = "echo"
	MethodSetActiveProjectConfigDetails = "setActiveProjectConfigDetails"
	MethodFilePathsUpdated              = "filePathsUpdated"
	MethodFileEdited                    = "fileEdited"
	MethodFileChangedOnDisk             = "fileChangedOnDisk"
	MethodFormatDocument                = "formatDocument"
	MethodFormatDocumentRange           = "formatDocumentRange"
)

// Master is implemented by the coordinating process and called by the worker.
type Master interface {
	// GetFileContents returns the current contents of a file, unsaved edits included.
	GetFileContents(ctx context.Context, filePath string) (string, error)
	// GetOpenFilePaths returns the files open in the editor.
	GetOpenFilePaths(ctx context.Context) ([]string, error)
	ReceiveErrorCacheDelta(ctx context.Context, delta entity.ErrorCacheDelta) error
	ReceiveFileOutputStatusUpdate(ctx context.Context, status entity.FileOutputStatus) error
	ReceiveCompleteOutputStatusCacheUpdate(ctx context.Context, cache entity.OutputStatusCache) error
	ReceiveActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error
	ReceiveAvailableProjects(ctx context.Context, projects []entity.ProjectConfigDescriptor) error
}

// Worker is implemented by the analysis worker and called by the master.
type Worker interface {
	Echo(ctx context.Context, text string) (string, error)
	SetActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error
	FilePathsUpdated(ctx context.Context, filePaths []string) error
	FileEdited(ctx context.Context, filePath string, edit entity.CodeEdit) error
	FileChangedOnDisk(ctx context.Context, filePath string, contents string) error
	FormatDocument(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error)
	FormatDocumentRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error)
}

// Empty is the payload of operations that carry nothing.
type Empty struct{}

// FilePathParams names one file.
type FilePathParams struct {
	FilePath string `json:"filePath"`
}

// FileContentsResult is returned by getFileContents.
type FileContentsResult struct {
	Contents string `json:"contents"`
}

// DescriptorParams carries a project descriptor.
type DescriptorParams struct {
	Descriptor entity.ProjectConfigDescriptor `json:"descriptor"`
}

// ProjectsParams carries the list of available projects.
type ProjectsParams struct {
	Projects []entity.ProjectConfigDescriptor `json:"projects"`
}

// FilePathsParams carries the list of files known to the editor.
type FilePathsParams struct {
	FilePaths []string `json:"filePaths"`
}

// FileEditedParams describes one edit to an open file.
type FileEditedParams struct {
	FilePath string          `json:"filePath"`
	Edit     entity.CodeEdit `json:"edit"`
}

// FileChangedOnDiskParams carries the new saved contents of a file.
type FileChangedOnDiskParams struct {
	FilePath string `json:"filePath"`
	Contents string `json:"contents"`
}

// FormatDocumentParams asks for the edits that format a whole file.
type FormatDocumentParams struct {
	FilePath      string               `json:"filePath"`
	EditorOptions entity.EditorOptions `json:"editorOptions"`
}

// FormatDocumentRangeParams asks for the edits that format part of a file.
type FormatDocumentRangeParams struct {
	FilePath      string               `json:"filePath"`
	From          entity.Position      `json:"from"`
	To            entity.Position      `json:"to"`
	EditorOptions entity.EditorOptions `json:"editorOptions"`
}

// EchoParams is the payload of echo.
type EchoParams struct {
	Text string `json:"text"`
}
