package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/lint/rules"
)

func TestReferenceLinkImagesRule(t *testing.T) {
	t.Parallel()

	rule := rules.NewReferenceLinkImagesRule()

	diags := applyRule(t, rule, nil,
		"A [full][missing] link, a [collapsed][] one and a [shortcut].",
		"Twice: [x][missing] [y][missing]",
		"[ok][defined] and [x][]",
		"",
		"[defined]: https://example.com",
	)
	require.Len(t, diags, 3)
	assert.Equal(t, "Reference uses undefined label [missing]", diags[0].Message)
	assert.Equal(t, 1, diags[0].StartLine)
	assert.Equal(t, "Reference uses undefined label [collapsed]", diags[1].Message)
	assert.Equal(t, 2, diags[2].StartLine)

	withShortcut := applyRule(t, rule, &config.RuleConfig{Options: map[string]any{
		"shortcut_syntax": true,
		"ignored_labels":  []any{"missing", "collapsed", "x"},
	}}, "A [shortcut] and [full][missing].")
	require.Len(t, withShortcut, 1)
	assert.Contains(t, withShortcut[0].Message, "[shortcut]")
}

func TestLinkImageRefDefsRule(t *testing.T) {
	t.Parallel()

	rule := rules.NewLinkImageRefDefsRule()

	diags := applyRule(t, rule, nil,
		"Uses [a].",
		"",
		"[a]: https://example.com/a",
		"[A]: https://example.com/again",
		"[unused]: https://example.com/u",
		"[//]: # (comment)",
	)
	require.Len(t, diags, 2)
	assert.Equal(t, "Duplicate reference definition [A]", diags[0].Message)
	assert.Equal(t, 4, diags[0].StartLine)
	assert.Equal(t, "Unused reference definition [unused]", diags[1].Message)
	assert.Equal(t, 5, diags[1].StartLine)
}
