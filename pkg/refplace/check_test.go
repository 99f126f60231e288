package refplace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/pkg/blocks"
	"github.com/yaklabco/mdblocklint/pkg/refplace"
)

func doc(lines ...string) []string {
	return lines
}

func TestCheckDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		expected []refplace.Violation
	}{
		{
			name: "definition after usage at block end",
			lines: doc(
				"# Title",
				"",
				"See [example] for details.",
				"",
				"[example]: https://example.com",
			),
		},
		{
			name: "definition before content",
			lines: doc(
				"# Title",
				"",
				"[example]: https://example.com",
				"",
				"See [example] for details.",
			),
			expected: []refplace.Violation{{
				Line:    3,
				Label:   "example",
				Kind:    refplace.KindNotAtEnd,
				Excerpt: "[example]: https://example.com",
			}},
		},
		{
			name: "definition in later section",
			lines: doc(
				"# Intro",
				"",
				"Install [mise] first.",
				"",
				"## Install",
				"",
				"Run the installer.",
				"",
				"[mise]: https://mise.jdx.dev",
			),
			expected: []refplace.Violation{{
				Line:    9,
				Label:   "mise",
				Kind:    refplace.KindCrossBlock,
				Excerpt: "[mise]: https://mise.jdx.dev",
			}},
		},
		{
			name: "definition directly before thematic break",
			lines: doc(
				"# Title",
				"",
				"See [example].",
				"",
				"[example]: https://example.com",
				"---",
			),
		},
		{
			name: "definition before spaced thematic break",
			lines: doc(
				"See [example].",
				"",
				"[example]: https://example.com",
				"",
				"* * *",
				"",
			),
		},
		{
			name: "continuation line then subheading",
			lines: doc(
				"# Title",
				"",
				"See [example].",
				"",
				"[example]: https://example.com",
				`  "Example Title"`,
				"",
				"## Next",
			),
		},
		{
			name: "continuation line then paragraph",
			lines: doc(
				"# Title",
				"",
				"See [example].",
				"",
				"[example]: https://example.com",
				`  "Example Title"`,
				"",
				"Trailing paragraph.",
				"",
				"## Next",
			),
			expected: []refplace.Violation{{
				Line:    5,
				Label:   "example",
				Kind:    refplace.KindNotAtEnd,
				Excerpt: "[example]: https://example.com",
			}},
		},
		{
			name: "unused definition",
			lines: doc(
				"[orphan]: https://example.com",
				"",
				"Nothing refers to it.",
			),
		},
		{
			name: "labels match case insensitively",
			lines: doc(
				"# A",
				"Read the [Go  Spec][GO SPEC].",
				"## B",
				"[go spec]: https://go.dev/ref/spec",
			),
			expected: []refplace.Violation{{
				Line:    4,
				Label:   "go spec",
				Kind:    refplace.KindCrossBlock,
				Excerpt: "[go spec]: https://go.dev/ref/spec",
			}},
		},
		{
			name: "cross block wins over not at end",
			lines: doc(
				"See [a].",
				"# B",
				"[a]: https://example.com/a",
				"",
				"Text after.",
			),
			expected: []refplace.Violation{{
				Line:    3,
				Label:   "a",
				Kind:    refplace.KindCrossBlock,
				Excerpt: "[a]: https://example.com/a",
			}},
		},
		{
			name: "fenced definition and usage are ignored",
			lines: doc(
				"# A",
				"```markdown",
				"[x]: https://example.com",
				"See [x].",
				"# not a heading",
				"```",
			),
		},
		{
			name: "code after definition is not content",
			lines: doc(
				"Use [tool].",
				"",
				"[tool]: https://example.com",
				"",
				"```sh",
				"tool run",
				"```",
			),
		},
		{
			name: "usage in code span does not count",
			lines: doc(
				"# A",
				"Write `[lib]` in your file.",
				"# B",
				"Use [lib].",
				"",
				"[lib]: https://example.com",
			),
		},
		{
			name: "inline link text is not a usage",
			lines: doc(
				"# A",
				"A [site](https://example.com) link.",
				"# B",
				"The [site] again.",
				"",
				"[site]: https://example.com",
			),
		},
		{
			name: "collapsed and image references",
			lines: doc(
				"# A",
				"![logo][] and [home][]",
				"",
				"[logo]: logo.png",
				"[home]: https://example.com",
			),
		},
		{
			name: "adjacent definitions stay at end",
			lines: doc(
				"Uses [a] and [b].",
				"[a]: https://example.com/a",
				"[b]: https://example.com/b",
			),
		},
		{
			name: "several violations in document order",
			lines: doc(
				"[a]: https://example.com/a",
				"",
				"Uses [a].",
				"",
				"## Sub",
				"",
				"[b]: https://example.com/b",
				"",
				"Uses [b].",
			),
			expected: []refplace.Violation{
				{Line: 1, Label: "a", Kind: refplace.KindNotAtEnd, Excerpt: "[a]: https://example.com/a"},
				{Line: 7, Label: "b", Kind: refplace.KindNotAtEnd, Excerpt: "[b]: https://example.com/b"},
			},
		},
		{
			name: "bare hash line does not split blocks",
			lines: doc(
				"use [a]",
				"#",
				"[a]: x",
			),
		},
		{
			name: "fence line with info string stays inside the fence",
			lines: doc(
				"# A",
				"",
				"use [a]",
				"",
				"```",
				"```go",
				"# Inside",
				"```",
				"",
				"[a]: x",
			),
		},
		{
			name: "titled definition continuation is not setext text",
			lines: doc(
				"# A",
				"",
				"See [a].",
				"",
				"[a]: https://x",
				"  \"title\"",
				"---",
				"",
				"More text.",
			),
			expected: []refplace.Violation{{
				Line:    5,
				Label:   "a",
				Kind:    refplace.KindNotAtEnd,
				Excerpt: "[a]: https://x",
			}},
		},
		{
			name: "setext headings split blocks",
			lines: doc(
				"Intro uses [ref].",
				"",
				"Section",
				"-------",
				"",
				"[ref]: https://example.com",
			),
			expected: []refplace.Violation{{
				Line:    6,
				Label:   "ref",
				Kind:    refplace.KindCrossBlock,
				Excerpt: "[ref]: https://example.com",
			}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := refplace.CheckDocument(testCase.lines)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestCheckMatchesCheckDocument(t *testing.T) {
	t.Parallel()

	lines := doc(
		"# A",
		"[x]: https://example.com",
		"Uses [x].",
	)

	assert.Equal(t, refplace.CheckDocument(lines), refplace.Check(lines, blocks.Segment(lines)))
}

func TestCheckEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refplace.CheckDocument(nil))
	assert.Empty(t, refplace.Check(nil, nil))
	assert.Empty(t, refplace.CheckDocument(doc("", "   ", "")))
}

func TestCheckIsDeterministic(t *testing.T) {
	t.Parallel()

	lines := strings.Split("# A\n[a]: u\n\nSee [a] and [b].\n## B\n[b]: v\ntext", "\n")

	first := refplace.CheckDocument(lines)
	for range 5 {
		assert.Equal(t, first, refplace.CheckDocument(lines))
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	report := refplace.Analyze(doc(
		"# A",
		"See [one][1] and [two].",
		"",
		"[1]: https://example.com/1 \"One\"",
		"  continued",
		"[two]: <https://example.com/2>",
	))

	require.Len(t, report.Blocks, 1)
	require.Len(t, report.Definitions, 2)
	assert.Equal(t, refplace.Definition{
		Label:       "1",
		Key:         "1",
		Destination: "https://example.com/1",
		Line:        4,
		EndLine:     5,
		Block:       report.Blocks[0],
	}, report.Definitions[0])
	assert.Equal(t, "https://example.com/2", report.Definitions[1].Destination)

	require.Len(t, report.Usages, 2)
	assert.Equal(t, refplace.StyleFull, report.Usages[0].Style)
	assert.Equal(t, "1", report.Usages[0].Key)
	assert.Equal(t, refplace.StyleShortcut, report.Usages[1].Style)
	assert.Equal(t, "two", report.Usages[1].Key)

	assert.Empty(t, report.Violations)
}

func TestViolationMessage(t *testing.T) {
	t.Parallel()

	v := refplace.Violation{Label: "mise", Kind: refplace.KindCrossBlock}
	assert.Equal(t, "Reference definition [mise] should be in the same content block where it is used", v.Message())

	v.Kind = refplace.KindNotAtEnd
	assert.Equal(t, "Reference definition [mise] should be at content block end", v.Message())
	assert.Equal(t, "not-at-end", v.Kind.String())
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo bar", refplace.NormalizeLabel("  Foo \t Bar "))
	assert.Equal(t, refplace.NormalizeLabel("ÄRGER"), refplace.NormalizeLabel("ärger"))
}
