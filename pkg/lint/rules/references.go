package rules

import (
	"fmt"

	"github.com/yaklabco/mdblocklint/pkg/lint"
	"github.com/yaklabco/mdblocklint/pkg/refplace"
)

// ReferenceLinkImagesRule validates that reference labels are defined (MD052).
type ReferenceLinkImagesRule struct {
	lint.BaseRule
}

// NewReferenceLinkImagesRule creates a new reference links/images rule.
func NewReferenceLinkImagesRule() *ReferenceLinkImagesRule {
	return &ReferenceLinkImagesRule{
		BaseRule: lint.NewBaseRule(
			"MD052",
			"reference-links-images",
			"Reference links and images should use defined labels",
			[]string{"links", "images", "references"},
		),
	}
}

// Apply checks that full and collapsed references use defined labels.
// Shortcut references are only checked with the shortcut_syntax option, since
// any bracketed text reads as one.
func (r *ReferenceLinkImagesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	includeShortcut := ctx.OptionBool("shortcut_syntax", false)
	ignored := normalizedSet(ctx.OptionStringSlice("ignored_labels", []string{"x"}))

	report := ctx.References()
	defined := report.DefinedKeys()
	reported := make(map[string]bool)

	var diags []lint.Diagnostic

	for _, usage := range report.Usages {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if usage.Style == refplace.StyleShortcut && !includeShortcut {
			continue
		}
		if ignored[usage.Key] || defined[usage.Key] {
			continue
		}

		// One report per label and line.
		seenKey := fmt.Sprintf("%d:%s", usage.Line, usage.Key)
		if reported[seenKey] {
			continue
		}
		reported[seenKey] = true

		diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.File, usage.Line,
			fmt.Sprintf("Reference uses undefined label [%s]", usage.Label)).
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Define the reference or use inline syntax").
			Build())
	}

	return diags, nil
}

// LinkImageRefDefsRule detects unused and duplicate reference definitions (MD053).
type LinkImageRefDefsRule struct {
	lint.BaseRule
}

// NewLinkImageRefDefsRule creates a new link/image reference definitions rule.
func NewLinkImageRefDefsRule() *LinkImageRefDefsRule {
	return &LinkImageRefDefsRule{
		BaseRule: lint.NewBaseRule(
			"MD053",
			"link-image-reference-definitions",
			"Link and image reference definitions should be needed",
			[]string{"links", "images", "references"},
		),
	}
}

// Apply checks for unused and duplicate reference definitions.
func (r *LinkImageRefDefsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	ignored := normalizedSet(ctx.OptionStringSlice("ignored_definitions", []string{"//"}))

	report := ctx.References()
	used := report.UsedKeys()
	seen := make(map[string]bool)

	var diags []lint.Diagnostic

	for _, def := range report.Definitions {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if ignored[def.Key] {
			continue
		}

		if seen[def.Key] {
			diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.File, def.Line,
				fmt.Sprintf("Duplicate reference definition [%s]", def.Label)).
				WithSeverity(r.DefaultSeverity()).
				WithSuggestion("Remove duplicate definition").
				Build())
			continue
		}
		seen[def.Key] = true

		if !used[def.Key] {
			diags = append(diags, lint.NewLineDiagnostic(r.ID(), ctx.File, def.Line,
				fmt.Sprintf("Unused reference definition [%s]", def.Label)).
				WithSeverity(r.DefaultSeverity()).
				WithSuggestion("Remove unused definition or add a reference").
				Build())
		}
	}

	return diags, nil
}

func normalizedSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, label := range labels {
		set[refplace.NormalizeLabel(label)] = true
	}
	return set
}
