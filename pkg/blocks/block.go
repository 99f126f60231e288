package blocks

import "fmt"

// Block is a maximal run of lines between headings. Heading lines are never
// part of a block. A block with EndLine == StartLine-1 is empty: it marks a
// heading immediately followed by another heading or by the end of the
// document.
type Block struct {
	StartLine int
	EndLine   int
}

// Empty reports whether the block covers no lines.
func (b Block) Empty() bool {
	return b.EndLine < b.StartLine
}

// Len returns the number of lines in the block.
func (b Block) Len() int {
	if b.Empty() {
		return 0
	}
	return b.EndLine - b.StartLine + 1
}

// Contains reports whether the 1-based line lies inside the block.
func (b Block) Contains(line int) bool {
	return line >= b.StartLine && line <= b.EndLine
}

func (b Block) String() string {
	if b.Empty() {
		return fmt.Sprintf("[%d, empty]", b.StartLine)
	}
	return fmt.Sprintf("[%d-%d]", b.StartLine, b.EndLine)
}
