// Package rpc lets two processes call each other's named operations over one JSON-RPC stream.
package rpc

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
)

// Module provides the Dispatcher shared by the handlers and gateways of one process.
var Module = fx.Provide(NewDispatcher)

// HandlerFunc implements one operation. params is the raw JSON payload, possibly empty.
type HandlerFunc func(ctx context.Context, params json.RawMessage) (any, error)

// Dispatcher maps operation names to their implementations.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]HandlerFunc)}
}

// Handle registers h for op, replacing any previous registration.
func (d *Dispatcher) Handle(op string, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[op] = h
}

// Lookup returns the implementation of op.
func (d *Dispatcher) Lookup(op string) (HandlerFunc, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.handlers[op]
	return h, ok
}

// Operations returns the registered operation names in sorted order.
func (d *Dispatcher) Operations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ops := make([]string, 0, len(d.handlers))
	for op := range d.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Register binds a typed implementation to op. The payload is decoded into P and the result encoded from R.
func Register[P, R any](d *Dispatcher, op string, fn func(ctx context.Context, params P) (R, error)) {
	d.Handle(op, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var params P
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &params); err != nil {
				return nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "%s: %v", op, err)
			}
		}
		result, err := fn(ctx, params)
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}
