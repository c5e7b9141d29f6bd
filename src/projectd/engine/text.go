package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/manifest"
	"github.com/uber/projectd/src/projectd/mapper"
	"go.uber.org/zap"
)

// textEngine keeps project files in memory and runs language-neutral line checks over them.
type textEngine struct {
	fs            fs.FS
	logger        *zap.SugaredLogger
	maxLineLength int
	filePaths     []string
	members       map[string]struct{}

	mu       sync.Mutex
	contents map[string]string
	// missing records files that could not be read from disk.
	missing map[string]error
}

// Option customizes a text engine.
type Option func(*textEngine)

// WithLogger overrides the default noop logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *textEngine) {
		e.logger = logger
	}
}

// WithMaxLineLength overrides the maxLineLength compiler option of the project.
func WithMaxLineLength(n int) Option {
	return func(e *textEngine) {
		e.maxLineLength = n
	}
}

// NewTextEngine creates an Engine for project. File contents are read from fsys on first use.
func NewTextEngine(fsys fs.FS, project *manifest.Project, opts ...Option) Engine {
	e := &textEngine{
		fs:            fsys,
		logger:        zap.NewNop().Sugar(),
		maxLineLength: project.CompilerOptions.MaxLineLength,
		filePaths:     append([]string{}, project.FilePaths...),
		members:       make(map[string]struct{}, len(project.FilePaths)),
		contents:      make(map[string]string),
		missing:       make(map[string]error),
	}
	for _, p := range project.FilePaths {
		e.members[p] = struct{}{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *textEngine) FilePaths() []string {
	return append([]string{}, e.filePaths...)
}

func (e *textEngine) IncludesSourceFile(filePath string) bool {
	_, ok := e.members[filePath]
	return ok
}

func (e *textEngine) SetFileContents(filePath string, contents string) {
	if !e.IncludesSourceFile(filePath) {
		e.logger.Debugf("ignoring contents of %q, not part of the project", filePath)
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.contents[filePath] = contents
	delete(e.missing, filePath)
}

func (e *textEngine) ApplyEdit(filePath string, edit entity.CodeEdit) error {
	if !e.IncludesSourceFile(filePath) {
		return fmt.Errorf("applying edit: %q is not part of the project", filePath)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	updated, err := mapper.ApplyCodeEdit(e.load(filePath), edit)
	if err != nil {
		return fmt.Errorf("applying edit to %q: %w", filePath, err)
	}
	e.contents[filePath] = updated
	delete(e.missing, filePath)
	return nil
}

func (e *textEngine) Contents(filePath string) (string, error) {
	if !e.IncludesSourceFile(filePath) {
		return "", fmt.Errorf("%q is not part of the project", filePath)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load(filePath), nil
}

func (e *textEngine) GetDiagnostics(ctx context.Context) ([]entity.Diagnostic, error) {
	var diagnostics []entity.Diagnostic
	for _, filePath := range e.filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		diagnostics = append(diagnostics, e.fileDiagnostics(filePath)...)
	}
	return diagnostics, nil
}

func (e *textEngine) GetDiagnosticsForFile(ctx context.Context, filePath string) ([]entity.Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !e.IncludesSourceFile(filePath) {
		return nil, fmt.Errorf("getting diagnostics: %q is not part of the project", filePath)
	}
	return e.fileDiagnostics(filePath), nil
}

func (e *textEngine) FormatDocument(filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	contents, err := e.Contents(filePath)
	if err != nil {
		return nil, err
	}
	return mapper.TextToCodeEdits(contents, formatLines(contents, options, 0, -1, true))
}

func (e *textEngine) FormatDocumentRange(filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("formatting %q: range end %d:%d before start %d:%d", filePath, to.Line, to.Ch, from.Line, from.Ch)
	}
	contents, err := e.Contents(filePath)
	if err != nil {
		return nil, err
	}
	return mapper.TextToCodeEdits(contents, formatLines(contents, options, from.Line, to.Line, false))
}

func (e *textEngine) fileDiagnostics(filePath string) []entity.Diagnostic {
	e.mu.Lock()
	contents := e.load(filePath)
	missing := e.missing[filePath]
	e.mu.Unlock()

	if missing != nil {
		return []entity.Diagnostic{{
			FilePath: filePath,
			Message:  fmt.Sprintf("File not found: %v", missing),
			Level:    entity.LevelError,
		}}
	}
	return checkLines(filePath, contents, e.maxLineLength)
}

// load returns the contents of a member file, reading it from disk the first time.
// The caller must hold e.mu.
func (e *textEngine) load(filePath string) string {
	if contents, ok := e.contents[filePath]; ok {
		return contents
	}
	data, err := e.fs.ReadFile(filePath)
	if err != nil {
		e.logger.Debugf("unable to read %q: %v", filePath, err)
		e.missing[filePath] = err
		e.contents[filePath] = ""
		return ""
	}
	e.contents[filePath] = string(data)
	return e.contents[filePath]
}
