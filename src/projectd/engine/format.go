package engine

import (
	"fmt"
	"strings"

	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/textmap"
)

const (
	_msgTrailingWhitespace = "Trailing whitespace"
	_msgLineTooLong        = "Line is longer than %d characters"
)

type line struct {
	start int
	body  string
	// terminator is "\n", "\r\n" or empty for the last line.
	terminator string
}

func splitLines(contents string) []line {
	var lines []line
	start := 0
	for {
		i := strings.IndexByte(contents[start:], '\n')
		if i < 0 {
			lines = append(lines, line{start: start, body: contents[start:]})
			return lines
		}
		body, terminator := contents[start:start+i], "\n"
		if strings.HasSuffix(body, "\r") {
			body, terminator = body[:len(body)-1], "\r\n"
		}
		lines = append(lines, line{start: start, body: body, terminator: terminator})
		start += i + 1
	}
}

// checkLines reports trailing whitespace and, when maxLineLength is positive, overlong lines.
func checkLines(filePath, contents string, maxLineLength int) []entity.Diagnostic {
	var diagnostics []entity.Diagnostic
	for _, l := range splitLines(contents) {
		if maxLineLength > 0 && textmap.UTF16Len([]byte(l.body)) > maxLineLength {
			diagnostics = append(diagnostics, entity.Diagnostic{
				FilePath: filePath,
				Start:    l.start,
				Length:   len(l.body),
				Message:  fmt.Sprintf(_msgLineTooLong, maxLineLength),
				Level:    entity.LevelError,
			})
		}
		trimmed := strings.TrimRight(l.body, " \t")
		if len(trimmed) < len(l.body) {
			diagnostics = append(diagnostics, entity.Diagnostic{
				FilePath: filePath,
				Start:    l.start + len(trimmed),
				Length:   len(l.body) - len(trimmed),
				Message:  _msgTrailingWhitespace,
				Level:    entity.LevelWarning,
			})
		}
	}
	return diagnostics
}

// formatLines trims trailing whitespace and rewrites the indentation of lines first through last.
// A negative last means the end of the file. Line terminators are rewritten only when normalizeNewlines is set.
func formatLines(contents string, options entity.EditorOptions, first, last int, normalizeNewlines bool) string {
	if options.TabSize <= 0 {
		options.TabSize = entity.DefaultEditorOptions().TabSize
	}
	if options.NewLineCharacter == "" {
		options.NewLineCharacter = entity.DefaultEditorOptions().NewLineCharacter
	}

	var b strings.Builder
	b.Grow(len(contents))
	for i, l := range splitLines(contents) {
		body := l.body
		if i >= first && (last < 0 || i <= last) {
			body = reindent(strings.TrimRight(body, " \t"), options)
		}
		terminator := l.terminator
		if normalizeNewlines && terminator != "" {
			terminator = options.NewLineCharacter
		}
		b.WriteString(body)
		b.WriteString(terminator)
	}
	return b.String()
}

func reindent(body string, options entity.EditorOptions) string {
	width, i := 0, 0
	for ; i < len(body); i++ {
		switch body[i] {
		case ' ':
			width++
		case '\t':
			width += options.TabSize - width%options.TabSize
		default:
			return indentation(width, options) + body[i:]
		}
	}
	return ""
}

func indentation(width int, options entity.EditorOptions) string {
	if options.ConvertTabsToSpaces {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/options.TabSize) + strings.Repeat(" ", width%options.TabSize)
}
