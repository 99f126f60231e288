package lint

import (
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic at a specific position.
func NewDiagnosticAt(
	ruleID string,
	filePath string,
	pos mdast.SourcePosition,
	message string,
) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:         ruleID,
			Message:        message,
			FilePath:       filePath,
			SourcePosition: pos,
		},
	}
}

// NewLineDiagnostic starts building a diagnostic covering a whole line of file.
func NewLineDiagnostic(ruleID string, file *mdast.FileSnapshot, line int, message string) *DiagnosticBuilder {
	if file == nil {
		return NewDiagnosticAt(ruleID, "", mdast.SourcePosition{
			StartLine: line, StartColumn: 1, EndLine: line, EndColumn: 1,
		}, message)
	}
	return NewDiagnosticAt(ruleID, file.Path, file.LinePosition(line), message)
}

// WithRuleName sets the rule name, looking it up in reg when name is empty.
func (b *DiagnosticBuilder) WithRuleName(name string, reg *Registry) *DiagnosticBuilder {
	if name == "" && reg != nil {
		if rule, ok := reg.GetByID(b.diag.RuleID); ok {
			name = rule.Name()
		}
	}
	b.diag.RuleName = name
	return b
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// WithExcerpt sets the source excerpt.
func (b *DiagnosticBuilder) WithExcerpt(s string) *DiagnosticBuilder {
	b.diag.Excerpt = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
