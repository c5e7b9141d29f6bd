// Package master is the worker's connection to the master process over stdin and stdout.
package master

import (
	"context"
	"io"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/internal/rpc"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mastermock/master_mock.go -package=mastermock . Gateway

const _peerName = "master"

// Module provides the Gateway and exposes it as the contract.Master of the worker.
var Module = fx.Provide(New, asMaster)

// Gateway calls the master's operations.
type Gateway interface {
	contract.Master
	// Start begins serving the master's requests. Subscribers to the worker's state must be wired first.
	Start()
	// Done is closed once the channel to the master is gone.
	Done() <-chan struct{}
}

// Params are inbound parameters to initialize a new Gateway.
type Params struct {
	fx.In

	Dispatcher *rpc.Dispatcher
	Config     config.Provider
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Lifecycle  fx.Lifecycle

	Stdin  io.Reader `name:"stdin" optional:"true"`
	Stdout io.Writer `name:"stdout" optional:"true"`
}

type gateway struct {
	*contract.MasterClient

	peer   *rpc.Peer
	logger *zap.SugaredLogger

	startOnce sync.Once
	done      chan struct{}
}

// New creates the Gateway. Calls made before Start fail with ChannelNotStartedError.
func New(p Params) (Gateway, error) {
	callTimeout, err := rpc.CallTimeout(p.Config)
	if err != nil {
		return nil, err
	}

	g := &gateway{
		peer: rpc.NewWorkerPeer(rpc.RunConfig{
			Stdin:  p.Stdin,
			Stdout: p.Stdout,
			Peer: rpc.PeerConfig{
				Name:        _peerName,
				Dispatcher:  p.Dispatcher,
				Logger:      p.Logger,
				Stats:       p.Stats,
				CallTimeout: callTimeout,
			},
		}),
		logger: p.Logger.With("plugin", "gateway-master"),
		done:   make(chan struct{}),
	}
	g.MasterClient = contract.NewMasterClient(g.peer)

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return g.stop()
		},
	})
	return g, nil
}

func asMaster(g Gateway) contract.Master {
	return g
}

func (g *gateway) Start() {
	g.startOnce.Do(func() {
		g.peer.Start()
		go g.watch()
	})
}

func (g *gateway) watch() {
	<-g.peer.Done()
	if err := g.peer.Err(); err != nil {
		g.logger.Infof("channel to master closed: %v", err)
	}
	close(g.done)
}

func (g *gateway) stop() error {
	started := true
	g.startOnce.Do(func() { started = false })

	err := g.peer.Close()
	if started {
		<-g.done
	} else {
		close(g.done)
	}
	return err
}

func (g *gateway) Done() <-chan struct{} {
	return g.done
}
