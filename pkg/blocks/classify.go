package blocks

import (
	"regexp"
	"strings"
)

// Tag is the structural role of a single source line.
type Tag uint8

const (
	// TagPlain is ordinary content: paragraph text, list items, quotes.
	TagPlain Tag = iota
	// TagBlank is an empty or whitespace-only line.
	TagBlank
	// TagFence is a fence delimiter, opening or closing.
	TagFence
	// TagFenced is a line strictly inside a fenced code block.
	TagFenced
	// TagATXHeading is a "#"-prefixed heading line.
	TagATXHeading
	// TagSetextUnderline is the "===" or "---" line under a heading's text.
	TagSetextUnderline
	// TagThematicBreak is a horizontal rule.
	TagThematicBreak
	// TagDefinition is the first line of a reference definition.
	TagDefinition
)

// String returns a short lowercase name for the tag.
func (t Tag) String() string {
	switch t {
	case TagPlain:
		return "plain"
	case TagBlank:
		return "blank"
	case TagFence:
		return "fence"
	case TagFenced:
		return "fenced"
	case TagATXHeading:
		return "atx-heading"
	case TagSetextUnderline:
		return "setext-underline"
	case TagThematicBreak:
		return "thematic-break"
	case TagDefinition:
		return "definition"
	default:
		return "unknown"
	}
}

// Line is a classified source line.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Text is the raw line content without its terminator.
	Text string

	// Tag is the structural role of the line.
	Tag Tag

	// Heading is set on the first line of a heading: the "#" line of an ATX
	// heading or the text line above a setext underline.
	Heading bool
}

// IsHeading reports whether the line belongs to a heading construct.
func (l Line) IsHeading() bool {
	return l.Heading || l.Tag == TagSetextUnderline
}

// Classify tags every line of a document in a single forward pass.
// Setext headings are resolved with one line of lookahead.
func Classify(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, text := range lines {
		out[i] = Line{Number: i + 1, Text: text}
	}

	var fence FenceState
	// inDefinition is set while the scan is on a definition start line or
	// its contiguous continuation lines, which are never setext heading text.
	inDefinition := false
	for i := 0; i < len(lines); i++ {
		text := lines[i]

		next, delimiter := fence.Step(text)
		if delimiter {
			out[i].Tag = TagFence
			fence = next
			inDefinition = false
			continue
		}
		if fence.Active {
			out[i].Tag = TagFenced
			continue
		}

		switch {
		case IsBlank(text):
			out[i].Tag = TagBlank
			inDefinition = false
		case IsATXHeading(text):
			out[i].Tag = TagATXHeading
			out[i].Heading = true
			inDefinition = false
		case IsThematicBreak(text):
			out[i].Tag = TagThematicBreak
			inDefinition = false
		case isDefinitionStart(text):
			out[i].Tag = TagDefinition
			inDefinition = true
		case !inDefinition && i+1 < len(lines) && IsSetextUnderline(lines[i+1]):
			out[i].Tag = TagPlain
			out[i].Heading = true
			out[i+1].Tag = TagSetextUnderline
			i++
		default:
			out[i].Tag = TagPlain
		}
	}

	return out
}

// IsBlank reports whether text is empty or contains only whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsATXHeading reports whether text is a "#" heading: up to three spaces of
// indentation, one to six '#', required whitespace, then heading text. A
// closing '#' run is not heading text, so "#" and "## ##" are not headings.
func IsATXHeading(text string) bool {
	i := leadingSpaces(text)
	if i > maxIndent {
		return false
	}

	level := 0
	for i < len(text) && text[i] == '#' {
		level++
		i++
	}
	if level == 0 || level > maxHeadingLevel {
		return false
	}

	if i == len(text) || (text[i] != ' ' && text[i] != '\t') {
		return false
	}

	return strings.TrimSpace(stripClosingHashes(text[i:])) != ""
}

// stripClosingHashes removes a trailing '#' run that is separated from the
// heading text by whitespace.
func stripClosingHashes(rest string) string {
	trimmed := strings.TrimRight(rest, " \t")
	body := strings.TrimRight(trimmed, "#")
	if body == trimmed {
		return rest
	}
	if body == "" || strings.HasSuffix(body, " ") || strings.HasSuffix(body, "\t") {
		return body
	}
	return rest
}

// IsSetextUnderline reports whether text can underline a heading: up to three
// spaces of indentation, then three or more '=' or three or more '-', with
// nothing but trailing whitespace after.
func IsSetextUnderline(text string) bool {
	i := leadingSpaces(text)
	if i > maxIndent || i >= len(text) {
		return false
	}

	char := text[i]
	if char != '=' && char != '-' {
		return false
	}

	run := 0
	for i < len(text) && text[i] == char {
		run++
		i++
	}
	if run < minUnderlineLength {
		return false
	}

	return strings.TrimRight(text[i:], " \t") == ""
}

// IsThematicBreak reports whether text is a horizontal rule: three or more
// '-', '*' or '_' characters of one kind, optionally separated by spaces.
func IsThematicBreak(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}

	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}

	return count >= minThematicBreakMarkers
}

// definitionPattern matches the start of a reference definition.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var definitionPattern = regexp.MustCompile(`^ {0,3}\[((?:\\.|[^\\\[\]])+)\]:`)

// ParseDefinitionLabel returns the raw label of a reference definition start
// line such as "[label]: https://example.com".
func ParseDefinitionLabel(text string) (string, bool) {
	m := definitionPattern.FindStringSubmatch(text)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", false
	}
	return m[1], true
}

func isDefinitionStart(text string) bool {
	_, ok := ParseDefinitionLabel(text)
	return ok
}

const (
	maxIndent               = 3
	maxHeadingLevel         = 6
	minUnderlineLength      = 3
	minThematicBreakMarkers = 3
)

func leadingSpaces(text string) int {
	n := 0
	for n < len(text) && text[n] == ' ' {
		n++
	}
	return n
}
