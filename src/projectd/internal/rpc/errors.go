package rpc

import (
	"encoding/json"
	stderr "errors"

	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

// toWireError converts a handler failure into the error object sent back to the caller.
// Errors implementing Detailer carry their detail in the data member.
func toWireError(err error) *jsonrpc2.Error {
	var wire *jsonrpc2.Error
	if stderr.As(err, &wire) {
		if wire.Message != err.Error() {
			wire = &jsonrpc2.Error{Code: wire.Code, Message: err.Error(), Data: wire.Data}
		}
		return wire
	}

	wire = jsonrpc2.NewError(jsonrpc2.InternalError, err.Error())
	var detailer projectderrors.Detailer
	if stderr.As(err, &detailer) {
		if data, mErr := json.Marshal(detailer.ErrorDetail()); mErr == nil {
			raw := json.RawMessage(data)
			wire.Data = &raw
		}
	}
	return wire
}

// fromWireError converts the error returned for a call into an OperationError when the remote side produced it.
func fromWireError(op string, err error) error {
	var wire *jsonrpc2.Error
	if !stderr.As(err, &wire) {
		return err
	}
	opErr := &projectderrors.OperationError{
		Operation: op,
		Code:      int64(wire.Code),
		Message:   wire.Message,
	}
	if wire.Data != nil {
		opErr.Detail = json.RawMessage(*wire.Data)
	}
	return opErr
}
