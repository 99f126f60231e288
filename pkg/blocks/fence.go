package blocks

import "strings"

// minFenceLength is the shortest run of backticks or tildes that opens a fence.
const minFenceLength = 3

// FenceState records whether the scan is inside a fenced code block and,
// if so, how that fence was opened. The zero value means "not in a fence".
type FenceState struct {
	Active bool
	Char   byte
	Length int
	Indent int
}

// Step advances the fence state over one line of text. It returns the state
// that applies to the following line and whether text is a fence delimiter
// (either the opener or the closer).
//
// A fence closes only on a bare delimiter: the same character, at least as
// long as the opener, indented at least as far, and followed by nothing but
// whitespace. A delimiter carrying an info string inside a fence is content.
// An unterminated fence stays active to the end of the document.
func (s FenceState) Step(text string) (FenceState, bool) {
	char, length, indent, ok := ParseFence(text)
	if !ok {
		return s, false
	}

	if !s.Active {
		return FenceState{Active: true, Char: char, Length: length, Indent: indent}, true
	}

	bare := strings.TrimSpace(text[indent+length:]) == ""
	if bare && char == s.Char && length >= s.Length && indent >= s.Indent {
		return FenceState{}, true
	}

	return s, false
}

// ParseFence reports whether text is a fence delimiter line: optional leading
// whitespace followed by a run of at least three backticks or tildes. Any
// info string after the run is ignored here; Step decides whether a line
// with one may close a fence.
func ParseFence(text string) (char byte, length, indent int, ok bool) {
	indent = leadingWhitespace(text)
	if indent >= len(text) {
		return 0, 0, 0, false
	}

	char = text[indent]
	if char != '`' && char != '~' {
		return 0, 0, 0, false
	}

	for i := indent; i < len(text) && text[i] == char; i++ {
		length++
	}

	if length < minFenceLength {
		return 0, 0, 0, false
	}

	return char, length, indent, true
}

func leadingWhitespace(text string) int {
	n := 0
	for n < len(text) && (text[n] == ' ' || text[n] == '\t') {
		n++
	}
	return n
}
