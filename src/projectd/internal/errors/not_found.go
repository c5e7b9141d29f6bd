package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// UUIDNotFoundError is a service domain error for not found.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("UUID %q not found", n.UUID)
}

// NotFoundUUID returns an UUID and true if UUIDNotFoundError is part of the
// error chain.
func NotFoundUUID(e error) (_ uuid.UUID, ok bool) {
	var nf *UUIDNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}

// NoSessionFoundError indicates that a session cannot be found within the context.
type NoSessionFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoSessionFoundError) Error() string {
	return "no session found in context"
}

// FileNotOpenError indicates an operation on a file that is not open in the editor.
type FileNotOpenError struct {
	FilePath string
}

// Error is an implementation of the error interface.
func (n *FileNotOpenError) Error() string {
	return fmt.Sprintf("file %q is not open", n.FilePath)
}

// IsFileNotOpen reports whether FileNotOpenError is part of the error chain.
func IsFileNotOpen(e error) bool {
	var nf *FileNotOpenError
	return stderr.As(e, &nf)
}
