package rules_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/lint"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
)

// applyRule runs rule against the given Markdown lines.
func applyRule(t *testing.T, rule lint.Rule, ruleCfg *config.RuleConfig, lines ...string) []lint.Diagnostic {
	t.Helper()

	snap := mdast.NewFileSnapshot("doc.md", []byte(strings.Join(lines, "\n")))
	ctx := lint.NewRuleContext(context.Background(), snap, config.NewConfig(), ruleCfg)

	diags, err := rule.Apply(ctx)
	require.NoError(t, err)
	return diags
}
