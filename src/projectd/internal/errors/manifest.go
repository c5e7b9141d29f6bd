package errors

import (
	stderr "errors"
	"fmt"

	"github.com/uber/projectd/src/projectd/entity"
)

// ManifestErrorKind classifies a failure to load a project manifest.
type ManifestErrorKind string

const (
	// ManifestParseFailed means the manifest is not valid JSON.
	ManifestParseFailed ManifestErrorKind = "parse-failed"
	// ManifestInvalidOptions means the manifest options have the wrong shape.
	ManifestInvalidOptions ManifestErrorKind = "invalid-options"
	// ManifestGlobExpandFailed means an include or exclude pattern could not be expanded.
	ManifestGlobExpandFailed ManifestErrorKind = "glob-expand-failed"
	// ManifestNotFound means no manifest exists at the given path.
	ManifestNotFound ManifestErrorKind = "not-found"
)

// ManifestError is a project manifest failure bound to the manifest path.
type ManifestError struct {
	Kind     ManifestErrorKind
	FilePath string
	// Details is the diagnostic shown to the user for this failure.
	Details entity.CodeError
	Err     error
}

// Error is an implementation of the error interface.
func (m *ManifestError) Error() string {
	if m.Err != nil {
		return fmt.Sprintf("manifest %q: %s: %v", m.FilePath, m.Kind, m.Err)
	}
	return fmt.Sprintf("manifest %q: %s", m.FilePath, m.Kind)
}

// Unwrap returns the underlying cause.
func (m *ManifestError) Unwrap() error {
	return m.Err
}

// ErrorDetail exposes the user-facing diagnostic to RPC peers.
func (m *ManifestError) ErrorDetail() any {
	return m.Details
}

// AsManifestError returns the ManifestError in the chain, if any.
func AsManifestError(e error) (*ManifestError, bool) {
	var m *ManifestError
	if !stderr.As(e, &m) {
		return nil, false
	}
	return m, true
}
