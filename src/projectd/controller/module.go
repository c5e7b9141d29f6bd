package controller

import (
	"github.com/uber/projectd/src/projectd/controller/activeproject"
	"github.com/uber/projectd/src/projectd/controller/errorcache"
	"github.com/uber/projectd/src/projectd/controller/outputstatus"
	"go.uber.org/fx"
)

// MasterModule provides the controllers of the coordinating process.
var MasterModule = fx.Options(
	fx.Provide(errorcache.NewMaster),
	fx.Provide(outputstatus.New),
)

// WorkerModule provides the controllers of the analysis worker.
var WorkerModule = fx.Options(
	fx.Provide(errorcache.NewWorker),
	fx.Provide(outputstatus.New),
	fx.Provide(activeproject.New),
)
