package rpc

import (
	"context"
	stderr "errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/uber-go/tally"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Caller invokes a named operation on the remote peer and decodes its result.
type Caller interface {
	Call(ctx context.Context, op string, params, result any) error
}

// PeerConfig configures one end of the channel.
type PeerConfig struct {
	// Name identifies the peer in logs and metrics.
	Name       string
	Dispatcher *Dispatcher
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	// CallTimeout bounds every outbound call. Zero waits until the channel fails.
	CallTimeout time.Duration
}

// Peer is one end of a bidirectional channel. Outbound calls are multiplexed on the stream
// and every inbound request is handled on its own goroutine.
type Peer struct {
	name        string
	conn        jsonrpc2.Conn
	stream      *trackingStream
	dispatcher  *Dispatcher
	logger      *zap.SugaredLogger
	stats       tally.Scope
	callTimeout time.Duration

	ctx      context.Context
	cancel   context.CancelCauseFunc
	started  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	handlers sync.WaitGroup
}

var _ Caller = (*Peer)(nil)

// NewPeer wraps rwc with the header-framed JSON-RPC stream. Call Start to begin reading.
func NewPeer(rwc io.ReadWriteCloser, cfg PeerConfig) *Peer {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	logger = logger.With("peer", cfg.Name)

	stats := cfg.Stats
	if stats == nil {
		stats = tally.NoopScope
	}

	dispatcher := cfg.Dispatcher
	if dispatcher == nil {
		dispatcher = NewDispatcher()
	}

	stream := newTrackingStream(jsonrpc2.NewStream(rwc), logger)
	ctx, cancel := context.WithCancelCause(context.Background())
	return &Peer{
		name:        cfg.Name,
		conn:        jsonrpc2.NewConn(stream),
		stream:      stream,
		dispatcher:  dispatcher,
		logger:      logger,
		stats:       stats.SubScope("rpc"),
		callTimeout: cfg.CallTimeout,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
}

// Start begins serving inbound requests. It must be called once.
func (p *Peer) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	p.conn.Go(p.ctx, p.handle)

	go func() {
		<-p.conn.Done()
		p.cancel(projectderrors.ChannelClosedError)
		p.handlers.Wait()
		if err := p.conn.Err(); err != nil {
			p.logger.Infow("channel closed", "error", err)
		}
		p.doneOnce.Do(func() { close(p.done) })
	}()
}

// Call invokes op on the remote peer and decodes the response into result.
// Failures produced by the remote implementation are returned as *errors.OperationError.
func (p *Peer) Call(ctx context.Context, op string, params, result any) error {
	if !p.started.Load() {
		return fmt.Errorf("calling %q: %w", op, projectderrors.ChannelNotStartedError)
	}
	if p.ctx.Err() != nil {
		return fmt.Errorf("calling %q: %w", op, projectderrors.ChannelClosedError)
	}

	scope := p.stats.Tagged(map[string]string{"operation": op})
	scope.Counter("calls").Inc(1)

	callCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	stop := context.AfterFunc(p.ctx, func() {
		cancel(projectderrors.ChannelClosedError)
	})
	defer stop()

	if p.callTimeout > 0 {
		var cancelTimeout context.CancelFunc
		callCtx, cancelTimeout = context.WithTimeout(callCtx, p.callTimeout)
		defer cancelTimeout()
	}

	id, err := p.conn.Call(callCtx, op, params, result)
	if err == nil {
		return nil
	}

	scope.Counter("call_errors").Inc(1)
	if callCtx.Err() != nil {
		p.stream.forget(id)
		cause := context.Cause(callCtx)
		if stderr.Is(cause, projectderrors.ChannelClosedError) {
			return fmt.Errorf("calling %q: %w", op, projectderrors.ChannelClosedError)
		}
		return fmt.Errorf("calling %q: %w", op, cause)
	}
	return fromWireError(op, err)
}

func (p *Peer) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	h, ok := p.dispatcher.Lookup(req.Method())
	if !ok {
		p.logger.Warnw("unknown operation", "operation", req.Method())
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}

	p.handlers.Add(1)
	go func() {
		defer p.handlers.Done()

		result, err := p.invoke(ctx, h, req)
		var replyErr error
		if err != nil {
			p.logger.Debugw("operation failed", "operation", req.Method(), "error", err)
			replyErr = toWireError(err)
		}
		if err := reply(ctx, result, replyErr); err != nil {
			p.logger.Warnw("failed to reply", "operation", req.Method(), "error", err)
		}
	}()
	return nil
}

func (p *Peer) invoke(ctx context.Context, h HandlerFunc, req jsonrpc2.Request) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorw("operation panicked", "operation", req.Method(), "panic", r)
			result, err = nil, fmt.Errorf("operation %q panicked: %v", req.Method(), r)
		}
	}()
	return h(ctx, req.Params())
}

// Close closes the stream and waits for in-flight handlers to finish.
func (p *Peer) Close() error {
	if p.started.CompareAndSwap(false, true) {
		p.cancel(projectderrors.ChannelClosedError)
		p.doneOnce.Do(func() { close(p.done) })
		return p.conn.Close()
	}
	err := p.conn.Close()
	<-p.done
	return err
}

// Done is closed once the channel has failed or been closed and every handler returned.
func (p *Peer) Done() <-chan struct{} {
	return p.done
}

// Err returns the error that ended the channel, if any.
func (p *Peer) Err() error {
	return p.conn.Err()
}

// Name returns the configured peer name.
func (p *Peer) Name() string {
	return p.name
}
