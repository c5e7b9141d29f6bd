package errors

import (
	stderr "errors"
	"fmt"
)

// NoActiveProjectError indicates that a query needing an active project was made when there is none.
type NoActiveProjectError struct{}

// Error is an implementation of the error interface.
func (n *NoActiveProjectError) Error() string {
	return "a query that needs an active project was made when there is no active project"
}

// NoActiveProjectForFilePathError indicates that no active project contains the given file.
type NoActiveProjectForFilePathError struct {
	FilePath string
}

// Error is an implementation of the error interface.
func (n *NoActiveProjectForFilePathError) Error() string {
	return fmt.Sprintf("a query that needs an active project was made when there is no active project for %q", n.FilePath)
}

// IsNoActiveProject reports whether either misuse guard is part of the error chain.
func IsNoActiveProject(e error) bool {
	var global *NoActiveProjectError
	var forPath *NoActiveProjectForFilePathError
	return stderr.As(e, &global) || stderr.As(e, &forPath)
}
