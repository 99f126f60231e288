package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblocklint/internal/logging"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions,
default severity and tags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd.OutOrStdout(), lint.DefaultRegistry, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func runRules(out io.Writer, registry *lint.Registry, flags *rulesFlags) error {
	ruleFormat, err := config.ParseRuleFormat(flags.ruleFormat)
	if err != nil {
		return &UsageError{Err: err}
	}

	rules := registry.Rules()

	switch flags.format {
	case string(config.FormatJSON):
		return outputRulesJSON(out, registry, rules)
	case string(config.FormatText), "":
	default:
		return &UsageError{Err: fmt.Errorf("unsupported format %q for rules; use text or json", flags.format)}
	}

	logger := logging.NewWithWriter(out, "info")

	if len(rules) == 0 {
		logger.Info("no rules registered")
		return nil
	}

	logger.Info("available rules")

	for _, rule := range rules {
		logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
			logging.FieldSeverity, rule.DefaultSeverity(),
			logging.FieldTags, strings.Join(rule.Tags(), ","),
			logging.FieldDescription, rule.Description(),
		)
	}

	return nil
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(out io.Writer, registry *lint.Registry, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Aliases:     registry.Aliases(rule.ID()),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
