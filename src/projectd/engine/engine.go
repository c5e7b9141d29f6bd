// Package engine is the boundary to the analysis engine that computes diagnostics and formatting for a project.
package engine

import (
	"context"

	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/manifest"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=enginemock/engine_mock.go -package=enginemock . Engine

const _maxLineLengthKey = "engine.maxLineLength"

// Module provides the engine Factory.
var Module = fx.Provide(NewFactory)

// Engine analyses the files of one project.
// An Engine is built for a single manifest and discarded when the project changes.
type Engine interface {
	// FilePaths returns the files that belong to the project.
	FilePaths() []string
	// IncludesSourceFile reports whether filePath belongs to the project.
	IncludesSourceFile(filePath string) bool
	// SetFileContents replaces the analysed contents of a project file.
	SetFileContents(filePath string, contents string)
	// ApplyEdit applies an editor edit to the analysed contents of a project file.
	ApplyEdit(filePath string, edit entity.CodeEdit) error
	// Contents returns the analysed contents of a project file.
	Contents(filePath string) (string, error)
	// GetDiagnostics analyses every project file.
	GetDiagnostics(ctx context.Context) ([]entity.Diagnostic, error)
	// GetDiagnosticsForFile analyses a single project file.
	GetDiagnosticsForFile(ctx context.Context, filePath string) ([]entity.Diagnostic, error)
	// FormatDocument returns the edits that format a whole file.
	FormatDocument(filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error)
	// FormatDocumentRange returns the edits that format the lines between from and to.
	FormatDocumentRange(filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error)
}

// Factory builds the Engine of a project.
type Factory func(ctx context.Context, project *manifest.Project) (Engine, error)

// Params are inbound parameters to initialize a new Factory.
type Params struct {
	fx.In

	FS     fs.FS
	Logger *zap.SugaredLogger
	Config config.Provider
}

// NewFactory returns a Factory building text engines.
// engine.maxLineLength, when set, overrides the maxLineLength compiler option of every project.
func NewFactory(p Params) (Factory, error) {
	maxLineLength := 0
	if err := p.Config.Get(_maxLineLengthKey).Populate(&maxLineLength); err != nil {
		return nil, err
	}
	logger := p.Logger.With("plugin", "engine")
	return func(ctx context.Context, project *manifest.Project) (Engine, error) {
		opts := []Option{WithLogger(logger)}
		if maxLineLength > 0 {
			opts = append(opts, WithMaxLineLength(maxLineLength))
		}
		return NewTextEngine(p.FS, project, opts...), nil
	}, nil
}
