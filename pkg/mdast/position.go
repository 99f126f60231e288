package mdast

// SourcePosition is a 1-based line/column range. EndColumn is exclusive.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsValid reports whether every coordinate is positive.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// IsSingleLine reports whether the range starts and ends on the same line.
func (sp SourcePosition) IsSingleLine() bool {
	return sp.StartLine == sp.EndLine
}

// LinePosition returns the range covering the whole of a 1-based line, from
// column 1 to just past its last byte. An empty line spans column 1, and an
// out-of-range line yields the zero (invalid) range.
func (f *FileSnapshot) LinePosition(line int) SourcePosition {
	if line < 1 || line > len(f.Lines) {
		return SourcePosition{}
	}

	return SourcePosition{
		StartLine:   line,
		StartColumn: 1,
		EndLine:     line,
		EndColumn:   max(1, len(f.LineContent(line))+1),
	}
}
