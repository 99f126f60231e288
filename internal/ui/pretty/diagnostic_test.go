package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdblocklint/internal/ui/pretty"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/lint"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
)

func placementDiagnostic() *lint.Diagnostic {
	return &lint.Diagnostic{
		RuleID:      "MDL004",
		RuleName:    "reference-definition-placement",
		Message:     "Reference definition [mise] should be in the same content block where it is used",
		Severity:    config.SeverityWarning,
		FilePath:    "README.md",
		SourcePosition: mdast.SourcePosition{
			StartLine: 9, StartColumn: 1, EndLine: 9, EndColumn: 30,
		},
		Suggestion:  "Move the definition into the block that first uses [mise]",
	}
}

func TestFormatDiagnostic_Basic(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := styles.FormatDiagnostic(placementDiagnostic(), false, "")

	assert.Contains(t, result, "README.md:9:1")
	assert.Contains(t, result, "warning")
	assert.Contains(t, result, "should be in the same content block")
	assert.Contains(t, result, "(MDL004)")
	assert.Contains(t, result, "Suggestion: Move the definition")
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := styles.FormatDiagnostic(placementDiagnostic(), true, "[mise]: https://mise.jdx.dev")

	lines := strings.Split(result, "\n")
	assert.Equal(t, "        [mise]: https://mise.jdx.dev", lines[1])
	assert.Equal(t, "        ^", lines[2])
}

func TestFormatDiagnostic_WithRuleFormat(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diag := placementDiagnostic()

	tests := []struct {
		format   config.RuleFormat
		expected string
	}{
		{config.RuleFormatID, "(MDL004)"},
		{config.RuleFormatName, "(reference-definition-placement)"},
		{config.RuleFormatCombined, "(MDL004/reference-definition-placement)"},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.format), func(t *testing.T) {
			t.Parallel()

			assert.Contains(t, styles.FormatDiagnosticWithFormat(diag, false, "", testCase.format), testCase.expected)
		})
	}
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "custom", styles.FormatSeverity("custom"))
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		styles   *pretty.Styles
		line     string
		column   int
		expected string
	}{
		{
			name:     "caret under column",
			styles:   styles,
			line:     "  [a]: u",
			column:   3,
			expected: "          [a]: u\n          ^\n",
		},
		{
			name:     "zero column has no caret",
			styles:   styles,
			line:     "text",
			expected: "        text\n",
		},
		{
			name:     "tabs are expanded to one space",
			styles:   styles,
			line:     "\t[a]: u",
			column:   2,
			expected: "         [a]: u\n         ^\n",
		},
		{
			name:     "truncated to width",
			styles:   styles.WithWidth(16),
			line:     "[abc]: https://x",
			column:   1,
			expected: "        [abc]: …\n        ^\n",
		},
		{
			name:     "caret dropped when column is cut",
			styles:   styles.WithWidth(16),
			line:     "[abc]: https://x",
			column:   12,
			expected: "        [abc]: …\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.styles.FormatSourceContext(testCase.line, testCase.column))
		})
	}
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "README.md (3 issues)", styles.FormatFileHeader("README.md", 3))
	assert.Equal(t, "README.md (1 issue)", styles.FormatFileHeader("README.md", 1))
	assert.Equal(t, "README.md", styles.FormatFileHeader("README.md", 0))
}
