package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblocklint/internal/logging"
	"github.com/yaklabco/mdblocklint/internal/ui/pretty"
	"github.com/yaklabco/mdblocklint/pkg/blocks"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/fsutil"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
	"github.com/yaklabco/mdblocklint/pkg/refplace"
)

// stdinPath selects standard input as the document source.
const stdinPath = "-"

type blocksFlags struct {
	format  string
	compact bool
}

// blocksOutput is the JSON form of one analysed document.
type blocksOutput struct {
	Path        string           `json:"path"`
	Lines       int              `json:"lines"`
	Headings    []int            `json:"headings"`
	Blocks      []blockJSON      `json:"blocks"`
	Definitions []definitionJSON `json:"definitions"`
	Usages      []usageJSON      `json:"usages"`
	Violations  []violationJSON  `json:"violations"`
}

type blockJSON struct {
	Index     int  `json:"index"`
	StartLine int  `json:"startLine"`
	EndLine   int  `json:"endLine"`
	Empty     bool `json:"empty,omitempty"`
}

type definitionJSON struct {
	Label       string `json:"label"`
	Key         string `json:"key"`
	Destination string `json:"destination,omitempty"`
	Line        int    `json:"line"`
	EndLine     int    `json:"endLine"`
	Block       int    `json:"block"`
}

type usageJSON struct {
	Label string `json:"label"`
	Key   string `json:"key"`
	Style string `json:"style"`
	Line  int    `json:"line"`
	Block int    `json:"block"`
}

type violationJSON struct {
	Line    int    `json:"line"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Excerpt string `json:"excerpt"`
}

func newBlocksCommand() *cobra.Command {
	flags := &blocksFlags{}

	cmd := &cobra.Command{
		Use:   "blocks <file>",
		Short: "Show how a document is split into content blocks",
		Long: `Show how a Markdown document is split into content blocks, with the
classification of every line, the reference definitions and usages found,
and any misplaced definitions.

Gutter markers: H heading, U setext underline, F fence delimiter,
C fenced code, T thematic break, D reference definition.

Use "-" to read the document from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")

	return cmd
}

func runBlocks(cmd *cobra.Command, path string, flags *blocksFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := config.ParseOutputFormat(flags.format)
	if err != nil || (format != config.FormatText && format != config.FormatJSON) {
		return &UsageError{Err: fmt.Errorf("unsupported format %q for blocks; use text or json", flags.format)}
	}

	content, err := readDocument(ctx, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	lines := mdast.NewFileSnapshot(path, content).TextLines()
	seg := blocks.Analyze(lines)
	report := refplace.AnalyzeSegmentation(seg)

	logging.FromContext(ctx).Debug("analysed document",
		logging.FieldPath, path,
		logging.FieldLines, len(lines),
		logging.FieldBlocks, len(seg.Blocks),
		logging.FieldDefinitions, len(report.Definitions),
		logging.FieldViolations, len(report.Violations),
	)

	out := cmd.OutOrStdout()

	if format == config.FormatJSON {
		enc := json.NewEncoder(out)
		if !flags.compact {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(toBlocksOutput(path, seg, report)); err != nil {
			return fmt.Errorf("encode blocks: %w", err)
		}
		return nil
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	if _, err := io.WriteString(out, styles.FormatBlocks(path, seg, report)); err != nil {
		return fmt.Errorf("write blocks: %w", err)
	}
	return nil
}

func readDocument(ctx context.Context, stdin io.Reader, path string) ([]byte, error) {
	if path == stdinPath {
		content, err := io.ReadAll(io.LimitReader(stdin, fsutil.MaxFileSize+1))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(content) > fsutil.MaxFileSize {
			return nil, fmt.Errorf("%w: stdin exceeds %d bytes", fsutil.ErrTooLarge, fsutil.MaxFileSize)
		}
		return content, nil
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return content, nil
}

func toBlocksOutput(path string, seg *blocks.Segmentation, report *refplace.Report) blocksOutput {
	blockIndex := func(b blocks.Block) int {
		for i, candidate := range seg.Blocks {
			if candidate == b {
				return i + 1
			}
		}
		return 0
	}

	out := blocksOutput{
		Path:        path,
		Lines:       len(seg.Lines),
		Headings:    seg.HeadingLines(),
		Blocks:      make([]blockJSON, 0, len(seg.Blocks)),
		Definitions: make([]definitionJSON, 0, len(report.Definitions)),
		Usages:      make([]usageJSON, 0, len(report.Usages)),
		Violations:  make([]violationJSON, 0, len(report.Violations)),
	}
	if out.Headings == nil {
		out.Headings = []int{}
	}

	for i, b := range seg.Blocks {
		out.Blocks = append(out.Blocks, blockJSON{
			Index:     i + 1,
			StartLine: b.StartLine,
			EndLine:   b.EndLine,
			Empty:     b.Empty(),
		})
	}

	for _, d := range report.Definitions {
		out.Definitions = append(out.Definitions, definitionJSON{
			Label:       d.Label,
			Key:         d.Key,
			Destination: d.Destination,
			Line:        d.Line,
			EndLine:     d.EndLine,
			Block:       blockIndex(d.Block),
		})
	}

	for _, u := range report.Usages {
		out.Usages = append(out.Usages, usageJSON{
			Label: u.Label,
			Key:   u.Key,
			Style: string(u.Style),
			Line:  u.Line,
			Block: blockIndex(u.Block),
		})
	}

	for _, v := range report.Violations {
		out.Violations = append(out.Violations, violationJSON{
			Line:    v.Line,
			Label:   v.Label,
			Kind:    v.Kind.String(),
			Message: v.Message(),
			Excerpt: v.Excerpt,
		})
	}

	return out
}
