package rules

import (
	"fmt"

	"github.com/yaklabco/mdblocklint/pkg/lint"
	"github.com/yaklabco/mdblocklint/pkg/refplace"
)

// PlacementRuleID is the ID of the reference definition placement rule.
const PlacementRuleID = "MDL004"

// ReferenceDefinitionPlacementRule requires every reference definition to sit
// at the end of the content block where its label is first used (MDL004).
type ReferenceDefinitionPlacementRule struct {
	lint.BaseRule
}

// NewReferenceDefinitionPlacementRule creates a new placement rule.
func NewReferenceDefinitionPlacementRule() *ReferenceDefinitionPlacementRule {
	return &ReferenceDefinitionPlacementRule{
		BaseRule: lint.NewBaseRule(
			PlacementRuleID,
			"reference-definition-placement",
			"Reference definitions should be at the end of the content block where they are first used",
			[]string{"links", "references"},
		),
	}
}

// Apply reports each misplaced definition at its start line.
func (r *ReferenceDefinitionPlacementRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	violations := ctx.References().Violations
	diags := make([]lint.Diagnostic, 0, len(violations))

	for _, v := range violations {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.File, v.Line, v.Message()).
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion(placementSuggestion(v)).
			WithExcerpt(v.Excerpt).
			Build())
	}

	return diags, nil
}

func placementSuggestion(v refplace.Violation) string {
	switch v.Kind {
	case refplace.KindCrossBlock:
		return fmt.Sprintf("Move [%s] to the end of the section where it is first used", v.Label)
	case refplace.KindNotAtEnd:
		return fmt.Sprintf("Move [%s] below the last paragraph of this section", v.Label)
	default:
		return ""
	}
}
