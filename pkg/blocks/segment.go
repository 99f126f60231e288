package blocks

import "sort"

// Segment splits a document into content blocks.
func Segment(lines []string) []Block {
	return SegmentClassified(Classify(lines))
}

// SegmentClassified splits already classified lines into content blocks.
//
// Every line ends up either in exactly one block or on a heading. Blocks are
// returned in document order. A document without headings is a single block
// spanning it; an empty document yields one empty block.
func SegmentClassified(lines []Line) []Block {
	var out []Block
	start := 1

	for _, line := range lines {
		if !line.Heading {
			continue
		}

		last := line.Number
		if line.Tag != TagATXHeading {
			// Text line of a setext heading; the underline follows it.
			last++
		}

		if line.Number > 1 || len(out) > 0 {
			out = append(out, Block{StartLine: start, EndLine: line.Number - 1})
		}
		start = last + 1
	}

	return append(out, Block{StartLine: start, EndLine: len(lines)})
}

// Segmentation is the result of classifying and segmenting one document.
type Segmentation struct {
	Lines  []Line
	Blocks []Block
}

// Analyze classifies and segments a document.
func Analyze(lines []string) *Segmentation {
	classified := Classify(lines)
	return &Segmentation{
		Lines:  classified,
		Blocks: SegmentClassified(classified),
	}
}

// Line returns the classified line with the given 1-based number.
func (s *Segmentation) Line(number int) (Line, bool) {
	if number < 1 || number > len(s.Lines) {
		return Line{}, false
	}
	return s.Lines[number-1], true
}

// BlockOf returns the index of the block containing the 1-based line. Lines on
// headings belong to no block.
func (s *Segmentation) BlockOf(line int) (int, bool) {
	idx := sort.Search(len(s.Blocks), func(i int) bool {
		return s.Blocks[i].EndLine >= line
	})
	if idx < len(s.Blocks) && s.Blocks[idx].Contains(line) {
		return idx, true
	}
	return -1, false
}

// HeadingLines returns the numbers of all lines that belong to headings,
// including setext underlines.
func (s *Segmentation) HeadingLines() []int {
	var out []int
	for _, line := range s.Lines {
		if line.IsHeading() {
			out = append(out, line.Number)
		}
	}
	return out
}
