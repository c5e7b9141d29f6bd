package handler

import (
	"github.com/uber/projectd/src/projectd/controller"
	"github.com/uber/projectd/src/projectd/handler/editor"
	"github.com/uber/projectd/src/projectd/handler/master"
	"github.com/uber/projectd/src/projectd/handler/worker"
	"github.com/uber/projectd/src/projectd/repository/openfile"
	"github.com/uber/projectd/src/projectd/repository/session"
	"github.com/uber/projectd/src/projectd/repository/workspacestate"
	"go.uber.org/fx"
)

// MasterModule provides the inbounds of the coordinating process: editors over JSON-RPC and the worker over stdio.
var MasterModule = fx.Options(
	controller.MasterModule,
	openfile.Module,
	workspacestate.Module,
	session.Module,
	master.Module,
	editor.Module,
	fx.Invoke(outputServerInfo),
	fx.Invoke(func(h master.Handler) {}),
)

// WorkerModule provides the inbounds of the analysis worker.
var WorkerModule = fx.Options(
	controller.WorkerModule,
	worker.Module,
)
