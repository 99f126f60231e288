package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdblocklint/pkg/blocks"
	"github.com/yaklabco/mdblocklint/pkg/refplace"
)

// tagMarker returns the one-letter gutter marker for a classified line.
func tagMarker(line blocks.Line) string {
	switch {
	case line.Heading, line.Tag == blocks.TagATXHeading:
		return "H"
	case line.Tag == blocks.TagSetextUnderline:
		return "U"
	case line.Tag == blocks.TagFence:
		return "F"
	case line.Tag == blocks.TagFenced:
		return "C"
	case line.Tag == blocks.TagThematicBreak:
		return "T"
	case line.Tag == blocks.TagDefinition:
		return "D"
	default:
		return " "
	}
}

func (s *Styles) renderLine(line blocks.Line) string {
	switch tagMarker(line) {
	case "H", "U":
		return s.Heading.Render(line.Text)
	case "F", "C", "T":
		return s.Fence.Render(line.Text)
	case "D":
		return s.Definition.Render(line.Text)
	default:
		return line.Text
	}
}

// FormatBlocks renders a segmented document block by block with one gutter
// marker per line. Violations are printed under the definition they concern.
func (s *Styles) FormatBlocks(path string, seg *blocks.Segmentation, report *refplace.Report) string {
	var builder strings.Builder

	if path != "" {
		builder.WriteString(s.FilePath.Render(path) + "\n")
	}

	if report == nil {
		report = &refplace.Report{}
	}

	violations := make(map[int]refplace.Violation, len(report.Violations))
	for _, v := range report.Violations {
		violations[v.Line] = v
	}

	writeLine := func(n int) {
		line, ok := seg.Line(n)
		if !ok {
			return
		}
		fmt.Fprintf(&builder, "  %s %s  %s\n",
			s.Location.Render(fmt.Sprintf("%4d", n)), tagMarker(line), s.renderLine(line))

		if v, bad := violations[n]; bad {
			fmt.Fprintf(&builder, "         %s %s\n", s.Warning.Render(v.Kind.String()), s.Message.Render(v.Message()))
		}
	}

	// Heading lines belong to no block; they are printed where they fall.
	next := 1
	for idx, block := range seg.Blocks {
		for ; next < block.StartLine; next++ {
			writeLine(next)
		}

		fmt.Fprintf(&builder, "%s %s\n",
			s.BlockHeader.Render(fmt.Sprintf("Block %d", idx+1)),
			s.Dim.Render(fmt.Sprintf("lines %s (%d)", block, block.Len())),
		)

		for ; next <= block.EndLine; next++ {
			writeLine(next)
		}
	}

	fmt.Fprintf(&builder, "\n%s\n", s.Dim.Render(fmt.Sprintf("%d %s, %d %s, %d %s, %d %s",
		len(seg.Blocks), plural(len(seg.Blocks), "block", "blocks"),
		len(report.Definitions), plural(len(report.Definitions), "definition", "definitions"),
		len(report.Usages), plural(len(report.Usages), "usage", "usages"),
		len(report.Violations), plural(len(report.Violations), "violation", "violations"),
	)))

	return builder.String()
}
