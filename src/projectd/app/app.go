package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/engine"
	editorclient "github.com/uber/projectd/src/projectd/gateway/editor-client"
	mastergateway "github.com/uber/projectd/src/projectd/gateway/master"
	workergateway "github.com/uber/projectd/src/projectd/gateway/worker"
	"github.com/uber/projectd/src/projectd/handler"
	"github.com/uber/projectd/src/projectd/internal/clock"
	"github.com/uber/projectd/src/projectd/internal/core"
	"github.com/uber/projectd/src/projectd/internal/executor"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/jsonrpcfx"
	"github.com/uber/projectd/src/projectd/internal/logfilewriter"
	"github.com/uber/projectd/src/projectd/internal/manifest"
	"github.com/uber/projectd/src/projectd/internal/rpc"
	"github.com/uber/projectd/src/projectd/internal/serverinfofile"
	"go.uber.org/fx"
)

const (
	_roleMaster = "master"
	_roleWorker = "worker"
)

// MasterModule defines the coordinating process: it serves editors and drives the analysis worker.
var MasterModule = fx.Options(
	commonModule(_roleMaster),
	workergateway.Module, // outbounds
	editorclient.Module,
	handler.MasterModule, // inbounds
	jsonrpcfx.Module,
	serverinfofile.Module,
	executor.Module,
	fx.Provide(fx.Annotate(logfilewriter.NewWorkerOutput, fx.ResultTags(`name:"workerOutput"`))),
)

// WorkerModule defines the analysis worker, connected to its master over stdin and stdout.
var WorkerModule = fx.Options(
	commonModule(_roleWorker),
	mastergateway.Module, // outbounds
	handler.WorkerModule, // inbounds
	engine.Module,
)

func commonModule(role string) fx.Option {
	return fx.Options(
		rpc.Module,
		manifest.Module,
		fs.Module,
		clock.Module,
		core.ConfigModule,
		core.LoggerModule,
		fx.Provide(func(lc fx.Lifecycle) tally.Scope {
			rs, closer := tally.NewRootScope(tally.ScopeOptions{
				Tags: map[string]string{
					"service": "projectd",
					"role":    role,
				},
			}, 1*time.Second)

			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					return closer.Close()
				},
			})

			return rs
		}),
		fx.Decorate(decorateEnvContext),
		fx.Decorate(decorateConfigProvider),
		fx.Provide(func() Context {
			return Context{
				Environment:        EnvLocal,
				RuntimeEnvironment: EnvLocal,
				Role:               role,
			}
		}),
	)
}
