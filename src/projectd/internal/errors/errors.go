package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ChannelNotStartedError reports a call made before the RPC channel was connected.
	ChannelNotStartedError = New("rpc channel not started")
	// ChannelClosedError reports a call made on, or pending when, the RPC channel failed.
	ChannelClosedError = New("rpc channel closed")
)

// IsChannelFailure reports whether the error means the RPC channel is unusable.
func IsChannelFailure(e error) bool {
	return stderr.Is(e, ChannelNotStartedError) || stderr.Is(e, ChannelClosedError)
}
