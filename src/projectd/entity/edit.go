package entity

// CodeEdit replaces the text between From and To with NewText.
type CodeEdit struct {
	From    Position `json:"from"`
	To      Position `json:"to"`
	NewText string   `json:"newText"`
	// SourceID identifies the editor that produced the edit.
	SourceID string `json:"sourceId,omitempty"`
}

// EditorOptions control formatting.
type EditorOptions struct {
	IndentSize          int    `json:"indentSize"`
	TabSize             int    `json:"tabSize"`
	NewLineCharacter    string `json:"newLineCharacter"`
	ConvertTabsToSpaces bool   `json:"convertTabsToSpaces"`
}

// DefaultEditorOptions returns the options used when an editor sends none.
func DefaultEditorOptions() EditorOptions {
	return EditorOptions{
		IndentSize:          4,
		TabSize:             4,
		NewLineCharacter:    "\n",
		ConvertTabsToSpaces: true,
	}
}

// FilePathWithContent pairs a file with its current contents.
type FilePathWithContent struct {
	FilePath string `json:"filePath"`
	Contents string `json:"contents"`
}

// FileEdit is one edit applied to an open file.
type FileEdit struct {
	FilePath string   `json:"filePath"`
	Edit     CodeEdit `json:"edit"`
}
