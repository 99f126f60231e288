// Package lint provides the rule engine, diagnostics, and registry for mdblocklint.
package lint

import (
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
)

// Diagnostic is one finding of a rule, anchored at a source range.
type Diagnostic struct {
	// RuleID and RuleName identify the reporting rule, e.g. "MDL004" and
	// "reference-definition-placement".
	RuleID   string
	RuleName string

	Message  string
	Severity config.Severity
	FilePath string

	// SourcePosition is the 1-based range the finding covers. For placement
	// findings this is the whole start line of the definition.
	mdast.SourcePosition

	// Suggestion tells the reader how to resolve the finding. Rules never
	// edit the document themselves.
	Suggestion string

	// Excerpt is the trimmed source text at StartLine.
	Excerpt string
}

// Rule checks one document and reports diagnostics. Rules read the shared
// block segmentation and reference analysis from the RuleContext rather
// than re-scanning the file.
type Rule interface {
	// ID returns the stable identifier, e.g. "MDL004".
	ID() string

	// Name returns the kebab-case name accepted wherever an ID is.
	Name() string

	Description() string

	DefaultEnabled() bool
	DefaultSeverity() config.Severity

	// Tags group rules for listing, e.g. ["links", "references"].
	Tags() []string

	// Apply returns one diagnostic per finding. An error means the rule
	// could not run (including context cancellation), never a finding.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
