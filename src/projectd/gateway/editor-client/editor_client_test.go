package editorclient

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type notification struct {
	method string
	params string
}

type editor struct {
	id       uuid.UUID
	conn     jsonrpc2.Conn
	remote   jsonrpc2.Conn
	received chan notification
}

// newEditor returns the master's end of a connection and an editor reading notifications at the other end.
func newEditor(t *testing.T) *editor {
	local, remote := net.Pipe()
	e := &editor{
		id:       uuid.Must(uuid.NewV4()),
		conn:     jsonrpc2.NewConn(jsonrpc2.NewStream(local)),
		remote:   jsonrpc2.NewConn(jsonrpc2.NewStream(remote)),
		received: make(chan notification, 8),
	}
	e.remote.Go(context.Background(), func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		e.received <- notification{method: req.Method(), params: string(req.Params())}
		return reply(ctx, nil, nil)
	})
	t.Cleanup(func() {
		e.remote.Close()
		e.conn.Close()
		<-e.remote.Done()
	})
	return e
}

func (e *editor) next(t *testing.T) notification {
	select {
	case n := <-e.received:
		return n
	case <-time.After(5 * time.Second):
		t.Fatal("no notification received")
		return notification{}
	}
}

func newGateway(stats tally.Scope) Gateway {
	return New(Params{Logger: zap.NewNop().Sugar(), Stats: stats})
}

func TestNotify(t *testing.T) {
	g := newGateway(tally.NoopScope)
	e := newEditor(t)
	require.NoError(t, g.RegisterClient(context.Background(), e.id, &e.conn))

	t.Run("no session in context", func(t *testing.T) {
		assert.Error(t, g.Notify(context.Background(), "projectd/test", nil))
	})

	t.Run("unknown session", func(t *testing.T) {
		ctx := mapper.SessionUUIDToContext(context.Background(), uuid.Must(uuid.NewV4()))
		assert.Error(t, g.Notify(ctx, "projectd/test", nil))
	})

	t.Run("session in context", func(t *testing.T) {
		ctx := mapper.SessionUUIDToContext(context.Background(), e.id)
		require.NoError(t, g.Notify(ctx, "projectd/test", map[string]int{"a": 1}))
		assert.Equal(t, notification{method: "projectd/test", params: `{"a":1}`}, e.next(t))
	})
}

func TestPublishDiagnostics(t *testing.T) {
	g := newGateway(tally.NoopScope)
	e := newEditor(t)
	require.NoError(t, g.RegisterClient(context.Background(), e.id, &e.conn))

	params := &protocol.PublishDiagnosticsParams{
		URI:         uri.File("/w/a.ts"),
		Diagnostics: []protocol.Diagnostic{{Message: "bad"}},
	}
	ctx := mapper.SessionUUIDToContext(context.Background(), e.id)
	require.NoError(t, g.PublishDiagnostics(ctx, params))

	n := e.next(t)
	assert.Equal(t, protocol.MethodTextDocumentPublishDiagnostics, n.method)
	var got protocol.PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal([]byte(n.params), &got))
	assert.Equal(t, *params, got)
}

func TestBroadcast(t *testing.T) {
	stats := tally.NewTestScope("testing", make(map[string]string, 0))
	g := newGateway(stats)
	ctx := context.Background()
	first, second := newEditor(t), newEditor(t)
	require.NoError(t, g.RegisterClient(ctx, first.id, &first.conn))
	require.NoError(t, g.RegisterClient(ctx, second.id, &second.conn))

	require.NoError(t, g.Broadcast(ctx, "projectd/errorsUpdated", []int{1}))
	want := notification{method: "projectd/errorsUpdated", params: "[1]"}
	assert.Equal(t, want, first.next(t))
	assert.Equal(t, want, second.next(t))

	require.NoError(t, g.DeregisterClient(ctx, second.id))
	require.NoError(t, g.BroadcastDiagnostics(ctx, &protocol.PublishDiagnosticsParams{URI: uri.File("/w/a.ts")}))
	assert.Equal(t, protocol.MethodTextDocumentPublishDiagnostics, first.next(t).method)
	assert.Empty(t, second.received)

	counters := stats.Snapshot().Counters()
	assert.Equal(t, int64(1), counters["testing.editor_client.broadcasts+method=projectd/errorsUpdated"].Value())
}

func TestBroadcastCollectsFailures(t *testing.T) {
	stats := tally.NewTestScope("testing", make(map[string]string, 0))
	g := newGateway(stats)
	ctx := context.Background()
	healthy, gone := newEditor(t), newEditor(t)
	require.NoError(t, g.RegisterClient(ctx, healthy.id, &healthy.conn))
	require.NoError(t, g.RegisterClient(ctx, gone.id, &gone.conn))
	require.NoError(t, gone.conn.Close())

	err := g.Broadcast(ctx, "projectd/availableProjects", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), gone.id.String())
	assert.Equal(t, "projectd/availableProjects", healthy.next(t).method)

	counters := stats.Snapshot().Counters()
	assert.Equal(t, int64(1), counters["testing.editor_client.send_errors+method=projectd/availableProjects"].Value())
}
