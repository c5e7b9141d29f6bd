package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/projectd/src/projectd/entity"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func TestDiagnosticToCodeError(t *testing.T) {
	contents := "const a = 1;\nconst b = 2;   \n"

	t.Run("span", func(t *testing.T) {
		got := DiagnosticToCodeError(entity.Diagnostic{
			FilePath: "/p/a.ts",
			Start:    25,
			Length:   3,
			Message:  "Trailing whitespace",
			Level:    entity.LevelWarning,
		}, contents)
		assert.Equal(t, entity.CodeError{
			FilePath: "/p/a.ts",
			From:     entity.Position{Line: 1, Ch: 12},
			To:       entity.Position{Line: 1, Ch: 15},
			Message:  "Trailing whitespace",
			Preview:  "   ",
			Level:    entity.LevelWarning,
		}, got)
	})

	t.Run("clamped to contents", func(t *testing.T) {
		got := DiagnosticToCodeError(entity.Diagnostic{FilePath: "/p/a.ts", Start: 100, Length: 5, Message: "m"}, contents)
		assert.Equal(t, entity.Position{Line: 2}, got.From)
		assert.Equal(t, got.From, got.To)
		assert.Equal(t, entity.LevelError, got.Level)
		assert.Empty(t, got.Preview)
	})
}

func TestDiagnosticsToCodeErrors(t *testing.T) {
	calls := 0
	errs := DiagnosticsToCodeErrors([]entity.Diagnostic{
		{FilePath: "/p/a.ts", Start: 0, Length: 1, Message: "first"},
		{FilePath: "/p/a.ts", Start: 1, Length: 1, Message: "second"},
	}, func(string) string {
		calls++
		return "ab"
	})
	assert.Equal(t, 1, calls)
	assert.Len(t, errs, 2)
	assert.Equal(t, "b", errs[1].Preview)
}

func TestCodeErrorsToPublishDiagnosticsParams(t *testing.T) {
	params := CodeErrorsToPublishDiagnosticsParams("/p/a.ts", []entity.CodeError{
		{FilePath: "/p/a.ts", From: entity.Position{Line: 1, Ch: 2}, To: entity.Position{Line: 1, Ch: 4}, Message: "bad", Level: entity.LevelError},
		{FilePath: "/p/a.ts", Message: "meh", Level: entity.LevelWarning},
	})
	assert.Equal(t, uri.File("/p/a.ts"), params.URI)
	assert.Equal(t, []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 2},
				End:   protocol.Position{Line: 1, Character: 4},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   "projectd",
			Message:  "bad",
		},
		{
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   "projectd",
			Message:  "meh",
		},
	}, params.Diagnostics)

	empty := CodeErrorsToPublishDiagnosticsParams("/p/b.ts", nil)
	assert.NotNil(t, empty.Diagnostics)
	assert.Empty(t, empty.Diagnostics)
}

func TestPositionRoundTrip(t *testing.T) {
	p := entity.Position{Line: 3, Ch: 7}
	assert.Equal(t, p, PositionFromProtocol(PositionToProtocol(p)))
	assert.Equal(t, protocol.Position{}, PositionToProtocol(entity.Position{Line: -1, Ch: -1}))
}
