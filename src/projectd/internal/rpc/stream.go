package rpc

import (
	"context"
	"fmt"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// trackingStream remembers the ids of outbound calls so that responses matching none of them can be logged.
type trackingStream struct {
	jsonrpc2.Stream
	logger *zap.SugaredLogger

	mu          sync.Mutex
	outstanding map[jsonrpc2.ID]string
}

func newTrackingStream(s jsonrpc2.Stream, logger *zap.SugaredLogger) *trackingStream {
	return &trackingStream{
		Stream:      s,
		logger:      logger,
		outstanding: make(map[jsonrpc2.ID]string),
	}
}

func (s *trackingStream) Write(ctx context.Context, msg jsonrpc2.Message) (int64, error) {
	call, isCall := msg.(*jsonrpc2.Call)
	if isCall {
		s.mu.Lock()
		s.outstanding[call.ID()] = call.Method()
		s.mu.Unlock()
	}

	n, err := s.Stream.Write(ctx, msg)
	if err != nil && isCall {
		s.forget(call.ID())
	}
	return n, err
}

func (s *trackingStream) Read(ctx context.Context) (jsonrpc2.Message, int64, error) {
	msg, n, err := s.Stream.Read(ctx)
	if err != nil {
		return msg, n, err
	}

	if resp, ok := msg.(*jsonrpc2.Response); ok {
		s.mu.Lock()
		method, found := s.outstanding[resp.ID()]
		delete(s.outstanding, resp.ID())
		s.mu.Unlock()

		if !found {
			s.logger.Warnw("ignoring response with no pending call", "id", fmt.Sprintf("%q", resp.ID()))
		} else {
			s.logger.Debugw("response received", "id", fmt.Sprintf("%q", resp.ID()), "operation", method)
		}
	}
	return msg, n, err
}

// forget drops an id whose caller stopped waiting, so a late response is reported as unmatched.
func (s *trackingStream) forget(id jsonrpc2.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.outstanding, id)
}

func (s *trackingStream) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outstanding)
}
