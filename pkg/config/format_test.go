package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "MDL004", "reference-definition-placement", "reference-definition-placement"},
		{"id format", config.RuleFormatID, "MDL004", "reference-definition-placement", "MDL004"},
		{"combined format", config.RuleFormatCombined, "MDL004", "reference-definition-placement", "MDL004/reference-definition-placement"},
		{"name format empty name", config.RuleFormatName, "MDL004", "", "MDL004"},
		{"default to name", config.RuleFormat(""), "MDL004", "reference-definition-placement", "reference-definition-placement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	sev, err := config.ParseSeverity(" Error ")
	require.NoError(t, err)
	assert.Equal(t, config.SeverityError, sev)

	_, err = config.ParseSeverity("fatal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal")
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.DefaultExtensions, cfg.MarkdownExtensions())
	assert.True(t, cfg.SkipsVendored())

	off := false
	cfg.SkipVendored = &off
	assert.False(t, cfg.SkipsVendored())

	var nilCfg *config.Config
	assert.True(t, nilCfg.SkipsVendored())
	assert.Equal(t, config.DefaultExtensions, nilCfg.MarkdownExtensions())
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    config.OutputFormat
		wantErr bool
	}{
		{input: "", want: config.FormatText},
		{input: "text", want: config.FormatText},
		{input: "JSON", want: config.FormatJSON},
		{input: "sarif", want: config.FormatSARIF},
		{input: "summary", want: config.FormatSummary},
		{input: "table", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := config.ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, config.FormatSARIF.IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
	assert.False(t, config.OutputFormat("xml").IsValid())
}

func TestParseRuleFormat(t *testing.T) {
	t.Parallel()

	got, err := config.ParseRuleFormat("")
	require.NoError(t, err)
	assert.Equal(t, config.RuleFormatName, got)

	got, err = config.ParseRuleFormat("Combined")
	require.NoError(t, err)
	assert.Equal(t, config.RuleFormatCombined, got)

	_, err = config.ParseRuleFormat("short")
	require.Error(t, err)
}
