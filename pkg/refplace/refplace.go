// Package refplace checks where reference definitions sit relative to the
// content they serve.
//
// A reference definition ([label]: url) must live in the same content block
// (see package blocks) as the first usage of its label, and it must come
// after the last piece of real content in that block. Blank lines, fenced
// code, other definitions and thematic breaks do not count as content.
//
// The checker never fails: any line slice, including an empty one, yields a
// possibly empty list of violations.
package refplace

import (
	"fmt"

	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdblocklint/pkg/blocks"
)

// Kind identifies which placement constraint a definition breaks.
type Kind int

const (
	// KindCrossBlock means the definition is not in the block of the label's
	// first usage.
	KindCrossBlock Kind = iota + 1

	// KindNotAtEnd means the definition shares a block with its first usage
	// but content follows it.
	KindNotAtEnd
)

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindCrossBlock:
		return "cross-block"
	case KindNotAtEnd:
		return "not-at-end"
	default:
		return "unknown"
	}
}

// Reason returns the human readable constraint that was broken.
func (k Kind) Reason() string {
	switch k {
	case KindCrossBlock:
		return "should be in the same content block where it is used"
	case KindNotAtEnd:
		return "should be at content block end"
	default:
		return "is misplaced"
	}
}

// Style is the syntax a usage was written in.
type Style string

const (
	// StyleFull is [text][label].
	StyleFull Style = "full"

	// StyleCollapsed is [label][].
	StyleCollapsed Style = "collapsed"

	// StyleShortcut is [label].
	StyleShortcut Style = "shortcut"
)

// Definition is a reference definition found in a block.
type Definition struct {
	// Label as written between the brackets.
	Label string

	// Key is the normalised label used for matching.
	Key string

	// Destination is the first token after the colon, if any.
	Destination string

	// Line is the 1-based start line; EndLine is the last continuation line.
	Line    int
	EndLine int

	// Block is the block holding the definition.
	Block blocks.Block
}

// Usage is a label referenced from text.
type Usage struct {
	Label string
	Key   string
	Style Style
	Line  int
	Block blocks.Block
}

// Violation is a misplaced definition.
type Violation struct {
	// Line is the 1-based start line of the definition.
	Line int

	// Label is the definition label as written.
	Label string

	// Kind is the broken constraint.
	Kind Kind

	// Excerpt is the trimmed text of the definition's start line.
	Excerpt string
}

// Message formats the violation as a one-line description.
func (v Violation) Message() string {
	return fmt.Sprintf("Reference definition [%s] %s", v.Label, v.Kind.Reason())
}

// NormalizeLabel returns the matching key for a reference label: surrounding
// whitespace trimmed, inner whitespace collapsed and Unicode case folded.
func NormalizeLabel(label string) string {
	return util.ToLinkReference([]byte(label))
}
