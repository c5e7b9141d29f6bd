package editor

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/entity"
	masterhandler "github.com/uber/projectd/src/projectd/handler/master"
	"github.com/uber/projectd/src/projectd/mapper"
	"go.lsp.dev/jsonrpc2"
)

type router struct {
	master masterhandler.Handler
	uuid   uuid.UUID
	stats  tally.Scope
}

// HandleReq handles routing for a single request.
func (r *router) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = mapper.SessionUUIDToContext(ctx, r.uuid)

	switch req.Method() {
	// File related methods.
	case MethodOpenFile:
		return r.OpenFile(ctx, reply, req)

	case MethodEditFile:
		return r.EditFile(ctx, reply, req)

	case MethodSaveFile:
		return r.SaveFile(ctx, reply, req)

	case MethodCloseFile:
		return r.CloseFile(ctx, reply, req)

	// Project related methods.
	case MethodSetActiveProject:
		return r.SetActiveProject(ctx, reply, req)

	case MethodFilePathsUpdated:
		return r.FilePathsUpdated(ctx, reply, req)

	case MethodGetAvailableProjects:
		return r.GetAvailableProjects(ctx, reply, req)

	// Analysis results.
	case MethodGetErrors:
		return reply(ctx, r.master.Errors(), nil)

	case MethodGetOutputStatus:
		return reply(ctx, r.master.OutputStatus(), nil)

	// Formatting.
	case MethodFormatDocument:
		return r.FormatDocument(ctx, reply, req)

	case MethodFormatDocumentRange:
		return r.FormatDocumentRange(ctx, reply, req)

	default:
		r.stats.Counter("unknown_methods").Inc(1)
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *router) UUID() uuid.UUID {
	return r.uuid
}

func (r *router) OpenFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FilePathParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	contents, err := r.master.OpenFile(ctx, params.FilePath)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, contract.FileContentsResult{Contents: contents}, nil)
}

func (r *router) EditFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FileEditedParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.master.EditFile(ctx, params.FilePath, params.Edit)
	return reply(ctx, nil, err)
}

func (r *router) SaveFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FilePathParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.master.SaveFile(ctx, params.FilePath)
	return reply(ctx, nil, err)
}

func (r *router) CloseFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FilePathParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.master.CloseFile(ctx, params.FilePath)
	return reply(ctx, nil, err)
}

func (r *router) SetActiveProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.DescriptorParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.master.SetActiveProject(ctx, params.Descriptor)
	return reply(ctx, nil, err)
}

func (r *router) FilePathsUpdated(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FilePathsParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.master.UpdateFilePaths(ctx, params.FilePaths)
	return reply(ctx, nil, err)
}

func (r *router) GetAvailableProjects(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result := AvailableProjectsResult{Projects: r.master.AvailableProjects()}
	if result.Projects == nil {
		result.Projects = []entity.ProjectConfigDescriptor{}
	}
	if active, ok := r.master.ActiveProject(); ok {
		result.Active = &active
	}
	return reply(ctx, result, nil)
}

func (r *router) FormatDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FormatDocumentParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	edits, err := r.master.FormatDocument(ctx, params.FilePath, params.EditorOptions)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, edits, nil)
}

func (r *router) FormatDocumentRange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[contract.FormatDocumentRangeParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	edits, err := r.master.FormatDocumentRange(ctx, params.FilePath, params.From, params.To, params.EditorOptions)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, edits, nil)
}
