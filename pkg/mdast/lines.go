package mdast

import "bytes"

// BuildLines constructs line metadata from file content.
// LF and CRLF terminators are both recognised; a CR before LF is not part of
// the line text. Content ending in a terminator has a final empty line.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	start := 0

	for {
		idx := bytes.IndexByte(content[start:], '\n')
		if idx < 0 {
			break
		}
		newline := start + idx

		textEnd := newline
		if textEnd > start && content[textEnd-1] == '\r' {
			textEnd--
		}

		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: textEnd,
			EndOffset:    newline + 1,
		})
		start = newline + 1
	}

	return append(lines, LineInfo{
		StartOffset:  start,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
