// Package mdast provides the immutable source view that rules work on.
// A FileSnapshot holds the raw bytes of one Markdown file together with a
// line index, so that rules can address content by 1-based line and column
// without re-scanning the file.
package mdast

// FileSnapshot is an immutable view of a Markdown file at a specific time.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	text []string
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content and builds its
// line index.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	lines := BuildLines(content)

	text := make([]string, len(lines))
	for i, info := range lines {
		text[i] = string(content[info.StartOffset:info.NewlineStart])
	}

	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   lines,
		text:    text,
	}
}

// TextLines returns the content of every line without its terminator.
// The returned slice is shared and must not be modified.
func (f *FileSnapshot) TextLines() []string {
	if f.text == nil && len(f.Lines) > 0 {
		text := make([]string, len(f.Lines))
		for i := range f.Lines {
			text[i] = string(f.LineContent(i + 1))
		}
		return text
	}
	return f.text
}
