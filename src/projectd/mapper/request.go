package mapper

import (
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"
)

// RequestToParams decodes the params of an editor request into a value of type T.
// Requests without params decode to the zero value.
func RequestToParams[T any](req jsonrpc2.Request) (T, error) {
	var params T
	if len(req.Params()) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return params, fmt.Errorf("%w: decoding %s params: %v", jsonrpc2.ErrInvalidParams, req.Method(), err)
	}
	return params, nil
}
