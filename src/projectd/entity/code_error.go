package entity

import "reflect"

// ErrorLevel is the severity of a CodeError.
type ErrorLevel string

const (
	// LevelError marks a diagnostic that blocks output.
	LevelError ErrorLevel = "error"
	// LevelWarning marks an advisory diagnostic.
	LevelWarning ErrorLevel = "warning"
)

// Position is a zero-based line and UTF-16 column in a document.
type Position struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Ch < o.Ch)
}

// CodeError is a diagnostic translated into editor terms.
type CodeError struct {
	FilePath string     `json:"filePath"`
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Message  string     `json:"message"`
	Preview  string     `json:"preview"`
	Level    ErrorLevel `json:"level"`
}

// BlandError returns an error covering the start of filePath with the given message.
func BlandError(filePath, message string) CodeError {
	return CodeError{
		FilePath: filePath,
		Message:  message,
		Level:    LevelError,
	}
}

// ErrorsByFilePath maps a file path to its ordered errors.
type ErrorsByFilePath map[string][]CodeError

// GroupByFilePath groups errors by their file path keeping their relative order.
func GroupByFilePath(errors []CodeError) ErrorsByFilePath {
	grouped := make(ErrorsByFilePath)
	for _, e := range errors {
		grouped[e.FilePath] = append(grouped[e.FilePath], e)
	}
	return grouped
}

// Count returns the total number of errors across all files.
func (e ErrorsByFilePath) Count() int {
	total := 0
	for _, errs := range e {
		total += len(errs)
	}
	return total
}

// Clone returns a copy that does not share slices with e.
func (e ErrorsByFilePath) Clone() ErrorsByFilePath {
	c := make(ErrorsByFilePath, len(e))
	for path, errs := range e {
		c[path] = append([]CodeError{}, errs...)
	}
	return c
}

// EqualErrors reports whether two error lists are structurally equal, order included.
// A nil list and an empty list are equal.
func EqualErrors(a, b []CodeError) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// ErrorCacheDelta is the unit of synchronization between two error caches.
// When Initial is set the receiver drops its state before applying Added.
type ErrorCacheDelta struct {
	Added   ErrorsByFilePath `json:"added"`
	Removed ErrorsByFilePath `json:"removed"`
	Initial bool             `json:"initial"`
}

// Empty reports whether the delta carries no change.
func (d ErrorCacheDelta) Empty() bool {
	return !d.Initial && len(d.Added) == 0 && len(d.Removed) == 0
}

// LimitedErrorsUpdate is a bounded snapshot of an error cache.
type LimitedErrorsUpdate struct {
	ErrorsByFilePath ErrorsByFilePath `json:"errorsByFilePath"`
	TotalCount       int              `json:"totalCount"`
	SyncCount        int              `json:"syncCount"`
	TooMany          bool             `json:"tooMany"`
}

// Diagnostic is an analysis engine finding expressed as a byte range in a file.
type Diagnostic struct {
	FilePath string     `json:"filePath"`
	Start    int        `json:"start"`
	Length   int        `json:"length"`
	Message  string     `json:"message"`
	Level    ErrorLevel `json:"level"`
}
