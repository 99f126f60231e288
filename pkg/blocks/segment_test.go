package blocks_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/pkg/blocks"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected []blocks.Block
	}{
		{
			name:     "empty document",
			doc:      "",
			expected: []blocks.Block{{StartLine: 1, EndLine: 0}},
		},
		{
			name:     "no headings",
			doc:      "one\n\ntwo",
			expected: []blocks.Block{{StartLine: 1, EndLine: 3}},
		},
		{
			name: "heading at start",
			doc:  "# A\ntext\n# B\nmore",
			expected: []blocks.Block{
				{StartLine: 2, EndLine: 2},
				{StartLine: 4, EndLine: 4},
			},
		},
		{
			name: "pre-heading block",
			doc:  "intro\n\n# A\nbody",
			expected: []blocks.Block{
				{StartLine: 1, EndLine: 2},
				{StartLine: 4, EndLine: 4},
			},
		},
		{
			name: "adjacent headings give empty block",
			doc:  "# A\n## B\ntext",
			expected: []blocks.Block{
				{StartLine: 2, EndLine: 1},
				{StartLine: 3, EndLine: 3},
			},
		},
		{
			name: "heading at end gives empty block",
			doc:  "text\n# End",
			expected: []blocks.Block{
				{StartLine: 1, EndLine: 1},
				{StartLine: 3, EndLine: 2},
			},
		},
		{
			name: "setext heading covers two lines",
			doc:  "intro\n\nTitle\n=====\nbody\nmore",
			expected: []blocks.Block{
				{StartLine: 1, EndLine: 2},
				{StartLine: 5, EndLine: 6},
			},
		},
		{
			name: "thematic break does not split",
			doc:  "# A\none\n\n---\n\ntwo",
			expected: []blocks.Block{
				{StartLine: 2, EndLine: 6},
			},
		},
		{
			name: "heading inside fence ignored",
			doc:  "# A\n```\n# B\n```\ntext",
			expected: []blocks.Block{
				{StartLine: 2, EndLine: 5},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, blocks.Segment(split(testCase.doc)))
		})
	}
}

// segmentationDocs exercise every boundary kind for the whole-document
// property tests below.
//
//nolint:gochecknoglobals // Shared read-only fixtures.
var segmentationDocs = []string{
	"",
	"plain",
	"# A\n# B\n# C",
	"intro\nTitle\n---\nbody\n\n---\n\n## Sub\n```\n# x\n```\n[a]: b\nTail\n===",
	"```\nunterminated\n# h",
	"[a]: https://x\n  \"t\"\n---\n# B\n```\n```go\n# in\n```\n#\ntext",
}

func TestSegmentCoverage(t *testing.T) {
	t.Parallel()

	for _, doc := range segmentationDocs {
		lines := split(doc)
		seg := blocks.Analyze(lines)

		seen := make(map[int]int)
		for _, b := range seg.Blocks {
			for n := b.StartLine; n <= b.EndLine; n++ {
				seen[n]++
			}
		}
		for _, n := range seg.HeadingLines() {
			seen[n]++
		}

		for n := 1; n <= len(lines); n++ {
			assert.Equal(t, 1, seen[n], "line %d of %q", n, doc)
		}

		for i := 1; i < len(seg.Blocks); i++ {
			assert.Less(t, seg.Blocks[i-1].EndLine, seg.Blocks[i].StartLine)
		}
	}
}

func TestSegmentStability(t *testing.T) {
	t.Parallel()

	for _, doc := range segmentationDocs {
		lines := split(doc)
		seg := blocks.Analyze(lines)

		numbers := seg.HeadingLines()
		for _, b := range seg.Blocks {
			for n := b.StartLine; n <= b.EndLine; n++ {
				numbers = append(numbers, n)
			}
		}
		slices.Sort(numbers)

		var rejoined []string
		for _, n := range numbers {
			line, ok := seg.Line(n)
			require.True(t, ok, "line %d of %q", n, doc)
			rejoined = append(rejoined, line.Text)
		}

		require.Equal(t, lines, rejoined, "rejoined %q", doc)
		assert.Equal(t, seg.Blocks, blocks.Segment(rejoined), "resegmented %q", doc)
		assert.Equal(t, seg.Lines, blocks.Classify(rejoined), "reclassified %q", doc)
	}
}

func TestSegmentationBlockOf(t *testing.T) {
	t.Parallel()

	seg := blocks.Analyze(split("intro\n# A\n# B\nbody\nmore"))
	require.Len(t, seg.Blocks, 3)

	idx, ok := seg.BlockOf(1)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = seg.BlockOf(2)
	assert.False(t, ok, "heading lines belong to no block")

	idx, ok = seg.BlockOf(5)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = seg.BlockOf(99)
	assert.False(t, ok)

	assert.True(t, seg.Blocks[1].Empty())
	assert.Equal(t, 0, seg.Blocks[1].Len())
	assert.Equal(t, 2, seg.Blocks[2].Len())

	line, ok := seg.Line(4)
	require.True(t, ok)
	assert.Equal(t, "body", line.Text)
}
