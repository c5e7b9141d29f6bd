package mapper

import (
	"bytes"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/textmap"
)

// EditOffset stores a string modification based on byte offsets in the string.
type EditOffset struct {
	start int
	end   int
	text  string
}

// ApplyCodeEdit replaces the range of the edit within contents with its new text.
func ApplyCodeEdit(contents string, edit entity.CodeEdit) (string, error) {
	content := []byte(contents)
	m := textmap.NewTextOffsetMapper(content)
	start, err := m.PositionOffset(edit.From)
	if err != nil {
		return "", fmt.Errorf("unable to apply edit: %w", err)
	}
	end, err := m.PositionOffset(edit.To)
	if err != nil {
		return "", fmt.Errorf("unable to apply edit: %w", err)
	}
	if end < start {
		return "", fmt.Errorf("unable to apply edit: range end %d:%d before start %d:%d", edit.To.Line, edit.To.Ch, edit.From.Line, edit.From.Ch)
	}

	var buf bytes.Buffer
	buf.Write(content[:start])
	buf.WriteString(edit.NewText)
	buf.Write(content[end:])
	return buf.String(), nil
}

// ApplyCodeEdits applies edits computed against the same snapshot of contents.
// The edits must be in document order and must not overlap.
func ApplyCodeEdits(contents string, edits []entity.CodeEdit) (string, error) {
	var err error
	for i := len(edits) - 1; i >= 0; i-- {
		if contents, err = ApplyCodeEdit(contents, edits[i]); err != nil {
			return "", err
		}
	}
	return contents, nil
}

// DiffsToEditOffsets converts diffs into a list of text edits based on offsets within the initial text.
func DiffsToEditOffsets(diffs []diffmatchpatch.Diff) (initialText bytes.Buffer, offsets []EditOffset) {
	edits := make([]EditOffset, 0, len(diffs))
	offset := 0
	for _, d := range diffs {
		start := offset
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			initialText.WriteString(d.Text)
			offset += len(d.Text)
			edits = append(edits, EditOffset{start: start, end: offset, text: ""})
		case diffmatchpatch.DiffEqual:
			initialText.WriteString(d.Text)
			offset += len(d.Text)
		case diffmatchpatch.DiffInsert:
			edits = append(edits, EditOffset{start: start, end: start, text: d.Text})
		}
	}
	return initialText, edits
}

// EditOffsetsToCodeEdits converts a list of offset based edits to line and column based CodeEdits.
func EditOffsetsToCodeEdits(initialText bytes.Buffer, edits []EditOffset) ([]entity.CodeEdit, error) {
	content := initialText.Bytes()
	edits = alignLineEndings(content, edits)
	codeEdits := make([]entity.CodeEdit, 0, len(edits))
	m := textmap.NewTextOffsetMapper(content)
	for _, edit := range edits {
		from, err := m.OffsetPosition(edit.start)
		if err != nil {
			return nil, err
		}
		to, err := m.OffsetPosition(edit.end)
		if err != nil {
			return nil, err
		}
		codeEdits = append(codeEdits, entity.CodeEdit{From: from, To: to, NewText: edit.text})
	}
	return codeEdits, nil
}

// alignLineEndings merges touching edits and widens every edit that starts or ends
// between the \r and \n of a line terminator to cover the whole terminator.
// Editor positions cannot address the byte between \r and \n.
func alignLineEndings(content []byte, edits []EditOffset) []EditOffset {
	merged := make([]EditOffset, 0, len(edits))
	for _, edit := range edits {
		if n := len(merged); n > 0 && edit.start <= merged[n-1].end {
			last := &merged[n-1]
			last.text += edit.text
			if edit.end > last.end {
				last.end = edit.end
			}
			continue
		}
		merged = append(merged, edit)
	}

	insideCRLF := func(offset int) bool {
		return offset > 0 && offset < len(content) && content[offset-1] == '\r' && content[offset] == '\n'
	}
	for i := range merged {
		if insideCRLF(merged[i].start) {
			merged[i].start--
			merged[i].text = "\r" + merged[i].text
		}
		if insideCRLF(merged[i].end) {
			merged[i].end++
			merged[i].text += "\n"
		}
	}
	return merged
}

// DiffsToCodeEdits converts diffs into a list of edits that can be applied to the initial text.
func DiffsToCodeEdits(diffs []diffmatchpatch.Diff) ([]entity.CodeEdit, error) {
	initialText, edits := DiffsToEditOffsets(diffs)
	return EditOffsetsToCodeEdits(initialText, edits)
}

// TextToCodeEdits returns the edits that turn before into after.
func TextToCodeEdits(before, after string) ([]entity.CodeEdit, error) {
	if before == after {
		return []entity.CodeEdit{}, nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return DiffsToCodeEdits(dmp.DiffCleanupEfficiency(diffs))
}
