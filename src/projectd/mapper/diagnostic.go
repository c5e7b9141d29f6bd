package mapper

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/textmap"
)

const _diagnosticSource = "projectd"

// DiagnosticToCodeError converts an offset based engine diagnostic into a CodeError.
// contents is the text the diagnostic was computed against.
func DiagnosticToCodeError(d entity.Diagnostic, contents string) entity.CodeError {
	content := []byte(contents)
	m := textmap.NewTextOffsetMapper(content)
	start := clamp(d.Start, 0, len(content))
	end := clamp(d.Start+d.Length, start, len(content))

	from, err := m.OffsetPosition(start)
	if err != nil {
		return entity.BlandError(d.FilePath, d.Message)
	}
	to, err := m.OffsetPosition(end)
	if err != nil {
		to = from
	}

	level := d.Level
	if level == "" {
		level = entity.LevelError
	}
	return entity.CodeError{
		FilePath: d.FilePath,
		From:     from,
		To:       to,
		Message:  d.Message,
		Preview:  string(content[start:end]),
		Level:    level,
	}
}

// DiagnosticsToCodeErrors converts diagnostics, looking up the contents of each file once.
func DiagnosticsToCodeErrors(diagnostics []entity.Diagnostic, contents func(filePath string) string) []entity.CodeError {
	cache := make(map[string]string)
	errors := make([]entity.CodeError, 0, len(diagnostics))
	for _, d := range diagnostics {
		text, ok := cache[d.FilePath]
		if !ok {
			text = contents(d.FilePath)
			cache[d.FilePath] = text
		}
		errors = append(errors, DiagnosticToCodeError(d, text))
	}
	return errors
}

// CodeErrorToDiagnostic converts a CodeError to an LSP diagnostic.
func CodeErrorToDiagnostic(e entity.CodeError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if e.Level == entity.LevelWarning {
		severity = protocol.DiagnosticSeverityWarning
	}
	return protocol.Diagnostic{
		Range:    PositionsToRange(PositionToProtocol(e.From), PositionToProtocol(e.To)),
		Severity: severity,
		Source:   _diagnosticSource,
		Message:  e.Message,
	}
}

// CodeErrorsToPublishDiagnosticsParams builds the publishDiagnostics notification for one file.
// An empty list clears the diagnostics of the file in the editor.
func CodeErrorsToPublishDiagnosticsParams(filePath string, errors []entity.CodeError) *protocol.PublishDiagnosticsParams {
	diagnostics := make([]protocol.Diagnostic, 0, len(errors))
	for _, e := range errors {
		diagnostics = append(diagnostics, CodeErrorToDiagnostic(e))
	}
	return &protocol.PublishDiagnosticsParams{
		URI:         uri.File(filePath),
		Diagnostics: diagnostics,
	}
}

// PositionToProtocol converts a position to its LSP form.
func PositionToProtocol(p entity.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(p.Line, 0)),
		Character: uint32(max(p.Ch, 0)),
	}
}

// PositionFromProtocol converts an LSP position.
func PositionFromProtocol(p protocol.Position) entity.Position {
	return entity.Position{Line: int(p.Line), Ch: int(p.Character)}
}

// PositionsToRange converts two positions into a range.
func PositionsToRange(start, end protocol.Position) protocol.Range {
	return protocol.Range{
		Start: start,
		End:   end,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
