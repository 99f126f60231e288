package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/lint"
	"github.com/yaklabco/mdblocklint/pkg/lint/rules"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
)

func TestReferenceDefinitionPlacementRule(t *testing.T) {
	t.Parallel()

	rule := rules.NewReferenceDefinitionPlacementRule()

	t.Run("well placed", func(t *testing.T) {
		t.Parallel()

		diags := applyRule(t, rule, nil,
			"# Title",
			"",
			"See [example].",
			"",
			"[example]: https://example.com",
		)
		assert.Empty(t, diags)
	})

	t.Run("not at end", func(t *testing.T) {
		t.Parallel()

		diags := applyRule(t, rule, nil,
			"# Title",
			"",
			"[example]: https://example.com",
			"",
			"See [example].",
		)
		require.Len(t, diags, 1)

		diag := diags[0]
		assert.Equal(t, "MDL004", diag.RuleID)
		assert.Equal(t, 3, diag.StartLine)
		assert.Equal(t, 1, diag.StartColumn)
		assert.Equal(t, 31, diag.EndColumn)
		assert.Equal(t, "Reference definition [example] should be at content block end", diag.Message)
		assert.Equal(t, "[example]: https://example.com", diag.Excerpt)
		assert.Contains(t, diag.Suggestion, "below the last paragraph")
		assert.Equal(t, config.SeverityWarning, diag.Severity)
	})

	t.Run("cross block", func(t *testing.T) {
		t.Parallel()

		diags := applyRule(t, rule, nil,
			"# Intro",
			"Install [mise].",
			"## Install",
			"Steps.",
			"",
			"  [mise]: https://mise.jdx.dev",
		)
		require.Len(t, diags, 1)
		assert.Equal(t, 6, diags[0].StartLine)
		assert.Equal(t, "[mise]: https://mise.jdx.dev", diags[0].Excerpt)
		assert.Contains(t, diags[0].Message, "same content block")
		assert.Contains(t, diags[0].Suggestion, "first used")
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		snap := mdast.NewFileSnapshot("doc.md", []byte("[a]: u\n\nSee [a]."))
		_, err := rule.Apply(lint.NewRuleContext(ctx, snap, nil, nil))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "reference-definition-placement", rule.Name())
		assert.True(t, rule.DefaultEnabled())
		assert.Equal(t, []string{"links", "references"}, rule.Tags())
	})
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	rules.RegisterAliases(registry)

	assert.Equal(t, []string{"MD052", "MD053", "MDL004"}, registry.IDs())

	for _, key := range []string{"MDL004", "reference-definition-placement", "reference-placement"} {
		id, _, ok := registry.Resolve(key)
		require.True(t, ok, key)
		assert.Equal(t, rules.PlacementRuleID, id)
	}

	_, ok := lint.DefaultRegistry.GetByID(rules.PlacementRuleID)
	assert.True(t, ok, "init registers with the default registry")
}

func TestPlacementThroughEngine(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"MD052", "MD053"}
	severity := "error"
	cfg.Rules["reference-placement"] = config.RuleConfig{Severity: &severity}
	rules.RegisterAliases(registry)

	engine := lint.NewEngine(lint.NewSnapshotParser(), registry)
	result, err := engine.LintFile(context.Background(), "guide.md", []byte(
		"[a]: https://example.com/a\n\nUses [a].\n\n## Sub\n\n[b]: https://example.com/b\n\nUses [b].\n",
	), cfg)
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, 1, result.Diagnostics[0].StartLine)
	assert.Equal(t, 7, result.Diagnostics[1].StartLine)
	for _, d := range result.Diagnostics {
		assert.Equal(t, config.SeverityError, d.Severity)
		assert.Equal(t, "guide.md", d.FilePath)
		assert.Equal(t, "reference-definition-placement", d.RuleName)
	}
}
