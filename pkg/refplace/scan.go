package refplace

import "strings"

// labelRef is a label found by scanLine, before block assignment.
type labelRef struct {
	label string
	style Style
}

// scanLine returns the reference labels used on one line of text, in order
// of appearance. Code spans and backslash escaped brackets are skipped.
// Inline links [text](url) are not usages, but their text is scanned for
// nested references such as [![alt][img]](url).
func scanLine(text string) []labelRef {
	var out []labelRef
	scanInto(text, &out)
	return out
}

func scanInto(text string, out *[]labelRef) {
	for i := 0; i < len(text); {
		switch text[i] {
		case '\\':
			i += 2
		case '`':
			i = skipCodeSpan(text, i)
		case '[':
			i = scanBracket(text, i, out)
		default:
			i++
		}
	}
}

// scanBracket handles the bracket opening at text[open] and returns the index
// to resume scanning from.
func scanBracket(text string, open int, out *[]labelRef) int {
	closeIdx := matchBracket(text, open)
	if closeIdx < 0 {
		return open + 1
	}

	inner := text[open+1 : closeIdx]
	next := closeIdx + 1

	switch {
	case next < len(text) && text[next] == '(':
		scanInto(inner, out)
		if end := matchParen(text, next); end >= 0 {
			return end + 1
		}
		return next

	case next < len(text) && text[next] == '[':
		labelEnd := matchBracket(text, next)
		if labelEnd < 0 {
			addRef(out, inner, StyleShortcut)
			return next
		}
		scanInto(inner, out)
		label := text[next+1 : labelEnd]
		if strings.TrimSpace(label) == "" {
			addRef(out, inner, StyleCollapsed)
		} else {
			addRef(out, label, StyleFull)
		}
		return labelEnd + 1

	case next < len(text) && text[next] == ':':
		// "[x]:" mid-line reads as definition syntax, not as a usage.
		scanInto(inner, out)
		return next

	default:
		scanInto(inner, out)
		addRef(out, inner, StyleShortcut)
		return next
	}
}

func addRef(out *[]labelRef, label string, style Style) {
	if strings.TrimSpace(label) == "" {
		return
	}
	*out = append(*out, labelRef{label: label, style: style})
}

// matchBracket returns the index of the ']' closing the '[' at open, honouring
// nesting, escapes and code spans, or -1.
func matchBracket(text string, open int) int {
	depth := 0
	for i := open; i < len(text); {
		switch text[i] {
		case '\\':
			i += 2
			continue
		case '`':
			i = skipCodeSpan(text, i)
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return -1
}

// matchParen returns the index of the ')' closing the '(' at open, or -1.
func matchParen(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// skipCodeSpan returns the index just past the code span starting at start.
// A backtick run with no matching closer is literal text.
func skipCodeSpan(text string, start int) int {
	run := 0
	for start+run < len(text) && text[start+run] == '`' {
		run++
	}

	i := start + run
	for i < len(text) {
		j := strings.IndexByte(text[i:], '`')
		if j < 0 {
			break
		}
		j += i

		closing := 0
		for j+closing < len(text) && text[j+closing] == '`' {
			closing++
		}
		if closing == run {
			return j + closing
		}
		i = j + closing
	}

	return start + run
}
