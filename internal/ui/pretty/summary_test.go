package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdblocklint/internal/ui/pretty"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/runner"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		stats    runner.Stats
		contains []string
		excludes []string
	}{
		{
			name: "errors and warnings",
			stats: runner.Stats{
				FilesProcessed:   10,
				FilesWithIssues:  3,
				DiagnosticsTotal: 15,
				DiagnosticsBySeverity: map[config.Severity]int{
					config.SeverityError:   5,
					config.SeverityWarning: 10,
				},
				DiagnosticsByRule: map[string]int{"MDL004": 12, "MD052": 3},
			},
			contains: []string{"Files checked:     10", "Files with issues: 3", "Total issues:      15",
				"Errors:          5", "Warnings:        10", "MD052", "MDL004", "Lint failed with errors"},
		},
		{
			name:     "no issues",
			stats:    runner.Stats{FilesProcessed: 5},
			contains: []string{"Lint passed"},
			excludes: []string{"Files with issues", "By rule"},
		},
		{
			name: "warnings only",
			stats: runner.Stats{
				FilesProcessed:        1,
				FilesWithIssues:       1,
				DiagnosticsTotal:      1,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 1},
			},
			contains: []string{"Lint completed with warnings"},
			excludes: []string{"Errors:"},
		},
		{
			name:     "errored files",
			stats:    runner.Stats{FilesProcessed: 1, FilesErrored: 2},
			contains: []string{"Files errored:     2"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := styles.FormatSummary(testCase.stats)
			for _, want := range testCase.contains {
				assert.Contains(t, result, want)
			}
			for _, unwanted := range testCase.excludes {
				assert.NotContains(t, result, unwanted)
			}
		})
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		stats    runner.Stats
		expected string
	}{
		{
			name:     "no issues",
			stats:    runner.Stats{FilesProcessed: 3},
			expected: "No issues found (3 files checked)\n",
		},
		{
			name:     "single file",
			stats:    runner.Stats{FilesProcessed: 1},
			expected: "No issues found (1 file checked)\n",
		},
		{
			name: "mixed severities",
			stats: runner.Stats{
				FilesProcessed:   4,
				FilesWithIssues:  2,
				DiagnosticsTotal: 3,
				DiagnosticsBySeverity: map[config.Severity]int{
					config.SeverityError:   1,
					config.SeverityWarning: 2,
				},
			},
			expected: "3 issues (1 error, 2 warnings) in 2 files\n",
		},
		{
			name: "single issue with unreadable file",
			stats: runner.Stats{
				FilesProcessed:        1,
				FilesWithIssues:       1,
				FilesErrored:          1,
				DiagnosticsTotal:      1,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityInfo: 1},
			},
			expected: "1 issue (1 info) in 1 file, 1 file could not be read\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, styles.FormatSummaryOneLine(testCase.stats))
		})
	}
}
