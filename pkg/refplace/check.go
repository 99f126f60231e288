package refplace

import (
	"strings"

	"github.com/yaklabco/mdblocklint/pkg/blocks"
)

// Report is the full result of checking one document.
type Report struct {
	Blocks      []blocks.Block
	Definitions []Definition
	Usages      []Usage
	Violations  []Violation
}

// Check reports misplaced reference definitions in lines, given the content
// blocks produced for the same lines by blocks.Segment. Violations are
// ordered by definition line.
func Check(lines []string, segs []blocks.Block) []Violation {
	return check(blocks.Classify(lines), segs).Violations
}

// CheckDocument segments lines and checks them.
func CheckDocument(lines []string) []Violation {
	return Analyze(lines).Violations
}

// Analyze segments lines and returns blocks, definitions, usages and
// violations together.
func Analyze(lines []string) *Report {
	return AnalyzeSegmentation(blocks.Analyze(lines))
}

// AnalyzeSegmentation is Analyze for a document that is already segmented.
func AnalyzeSegmentation(seg *blocks.Segmentation) *Report {
	if seg == nil {
		return &Report{}
	}
	return check(seg.Lines, seg.Blocks)
}

// UsedKeys returns the set of normalised labels used anywhere.
func (r *Report) UsedKeys() map[string]bool {
	used := make(map[string]bool, len(r.Usages))
	for _, u := range r.Usages {
		used[u.Key] = true
	}
	return used
}

// DefinedKeys returns the set of normalised labels that have a definition.
func (r *Report) DefinedKeys() map[string]bool {
	defined := make(map[string]bool, len(r.Definitions))
	for _, d := range r.Definitions {
		defined[d.Key] = true
	}
	return defined
}

func check(lines []blocks.Line, segs []blocks.Block) *Report {
	report := &Report{Blocks: segs}

	// Definitions first: their extents are excluded from usage scanning.
	extents := make([]bool, len(lines)+1)
	for _, block := range segs {
		for _, def := range collectDefinitions(lines, block) {
			for n := def.Line; n <= def.EndLine; n++ {
				extents[n] = true
			}
			report.Definitions = append(report.Definitions, def)
		}
	}

	firstUse := make(map[string]int)
	for idx, block := range segs {
		for n := block.StartLine; n <= block.EndLine && n <= len(lines); n++ {
			line := lines[n-1]
			if line.Tag != blocks.TagPlain || extents[n] {
				continue
			}
			for _, ref := range scanLine(line.Text) {
				key := NormalizeLabel(ref.label)
				if key == "" {
					continue
				}
				report.Usages = append(report.Usages, Usage{
					Label: ref.label,
					Key:   key,
					Style: ref.style,
					Line:  n,
					Block: block,
				})
				if _, seen := firstUse[key]; !seen {
					firstUse[key] = idx
				}
			}
		}
	}

	defIdx := 0
	for idx, block := range segs {
		last := lastContentLine(lines, block, extents)

		for ; defIdx < len(report.Definitions) && report.Definitions[defIdx].Block == block; defIdx++ {
			def := report.Definitions[defIdx]

			useIdx, used := firstUse[def.Key]
			if !used {
				continue
			}

			var kind Kind
			switch {
			case useIdx != idx:
				kind = KindCrossBlock
			case def.Line < last:
				kind = KindNotAtEnd
			default:
				continue
			}

			report.Violations = append(report.Violations, Violation{
				Line:    def.Line,
				Label:   def.Label,
				Kind:    kind,
				Excerpt: strings.TrimSpace(lines[def.Line-1].Text),
			})
		}
	}

	return report
}

// collectDefinitions returns the definitions that start inside block, with
// their continuation extents resolved.
func collectDefinitions(lines []blocks.Line, block blocks.Block) []Definition {
	var out []Definition

	for n := block.StartLine; n <= block.EndLine && n <= len(lines); n++ {
		line := lines[n-1]
		if line.Tag != blocks.TagDefinition {
			continue
		}

		label, ok := blocks.ParseDefinitionLabel(line.Text)
		if !ok {
			continue
		}

		end := n
		for end+1 <= block.EndLine && end+1 <= len(lines) && isContinuation(lines[end]) {
			end++
		}

		out = append(out, Definition{
			Label:       label,
			Key:         NormalizeLabel(label),
			Destination: destination(line.Text),
			Line:        n,
			EndLine:     end,
			Block:       block,
		})
	}

	return out
}

// isContinuation reports whether a line directly below a definition extends it.
func isContinuation(line blocks.Line) bool {
	return line.Tag == blocks.TagPlain && !line.Heading
}

// lastContentLine returns the highest line in block holding real content,
// or 0 when the block has none.
func lastContentLine(lines []blocks.Line, block blocks.Block, extents []bool) int {
	for n := min(block.EndLine, len(lines)); n >= block.StartLine; n-- {
		if lines[n-1].Tag == blocks.TagPlain && !extents[n] {
			return n
		}
	}
	return 0
}

func destination(text string) string {
	idx := strings.Index(text, "]:")
	if idx < 0 {
		return ""
	}
	fields := strings.Fields(text[idx+2:])
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "<>")
}
