package editorclient

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=editorclientmock/editor_client_mock.go -package=editorclientmock . Gateway

const _errSendToClient = "sending notification to editor: %w"

// Module provides the editor client Gateway.
var Module = fx.Provide(New)

// Gateway is used to send outbound notifications to editors.
// Calls that target a single editor need a context with a session UUID, which routes the notification to the correct session.
type Gateway interface {
	// RegisterClient registers a new client with the gateway. Should be called each time a new editor connection is initialized.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a client from the gateway. Should be called each time an editor connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// PublishDiagnostics sends diagnostics to the session of ctx.
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
	// Notify sends a notification to the session of ctx.
	Notify(ctx context.Context, method string, params interface{}) error

	// Broadcast sends a notification to every registered session.
	Broadcast(ctx context.Context, method string, params interface{}) error
	// BroadcastDiagnostics sends diagnostics to every registered session.
	BroadcastDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
}

// Params are inbound parameters to initialize a new Gateway.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gateway struct {
	clients     map[uuid.UUID]protocol.Client
	connections map[uuid.UUID]jsonrpc2.Conn
	clientsMu   sync.Mutex
	logger      *zap.Logger
	stats       tally.Scope
}

// New returns a Gateway for sending editor notifications.
func New(p Params) Gateway {
	return &gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      p.Logger.Desugar(),
		stats:       p.Stats.SubScope("editor_client"),
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	client := protocol.ClientDispatcher(*conn, g.logger)
	g.clients[id] = client
	g.connections[id] = *conn

	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	delete(g.clients, id)
	delete(g.connections, id)

	return nil
}

func (g *gateway) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return c.PublishDiagnostics(ctx, params)
}

func (g *gateway) Notify(ctx context.Context, method string, params interface{}) error {
	_, conn, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return conn.Notify(ctx, method, params)
}

func (g *gateway) Broadcast(ctx context.Context, method string, params interface{}) error {
	return g.broadcast(method, func(_ protocol.Client, conn jsonrpc2.Conn) error {
		return conn.Notify(ctx, method, params)
	})
}

func (g *gateway) BroadcastDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	return g.broadcast(protocol.MethodTextDocumentPublishDiagnostics, func(c protocol.Client, _ jsonrpc2.Conn) error {
		return c.PublishDiagnostics(ctx, params)
	})
}

type target struct {
	id     uuid.UUID
	client protocol.Client
	conn   jsonrpc2.Conn
}

// broadcast calls send for every session, in a stable order, and collects the failures.
func (g *gateway) broadcast(method string, send func(protocol.Client, jsonrpc2.Conn) error) error {
	g.clientsMu.Lock()
	targets := make([]target, 0, len(g.clients))
	for id, client := range g.clients {
		targets = append(targets, target{id: id, client: client, conn: g.connections[id]})
	}
	g.clientsMu.Unlock()

	sort.Slice(targets, func(i, j int) bool { return targets[i].id.String() < targets[j].id.String() })
	scope := g.stats.Tagged(map[string]string{"method": method})
	var err error
	for _, t := range targets {
		if sendErr := send(t.client, t.conn); sendErr != nil {
			scope.Counter("send_errors").Inc(1)
			err = multierr.Append(err, fmt.Errorf("session %q: %w", t.id, sendErr))
		}
	}
	scope.Counter("broadcasts").Inc(1)
	return err
}

func (g *gateway) getClient(ctx context.Context) (protocol.Client, jsonrpc2.Conn, error) {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, ok := g.clients[id]
	if !ok {
		return nil, nil, fmt.Errorf("client with id %q not found", id)
	}

	conn, ok := g.connections[id]
	if !ok {
		return nil, nil, fmt.Errorf("client with id %q not found", id)
	}
	return client, conn, nil
}
