package errors

import (
	"encoding/json"
	stderr "errors"
	"fmt"
)

// Detailer is implemented by errors that carry structured detail for the remote caller.
type Detailer interface {
	ErrorDetail() any
}

// OperationError is a failure returned by the remote implementation of an RPC operation.
type OperationError struct {
	Operation string
	Code      int64
	Message   string
	Detail    json.RawMessage
}

// Error is an implementation of the error interface.
func (o *OperationError) Error() string {
	return fmt.Sprintf("operation %q failed: %s", o.Operation, o.Message)
}

// DecodeDetail unmarshals the structured detail into v.
func (o *OperationError) DecodeDetail(v any) error {
	if len(o.Detail) == 0 {
		return New("operation error has no detail")
	}
	return json.Unmarshal(o.Detail, v)
}

// AsOperationError returns the OperationError in the chain, if any.
func AsOperationError(e error) (*OperationError, bool) {
	var o *OperationError
	if !stderr.As(e, &o) {
		return nil, false
	}
	return o, true
}
