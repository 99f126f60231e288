package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/mdblocklint/pkg/config"
)

// envVarPrefix is the prefix for all mdblocklint environment variables.
const envVarPrefix = "MDBLOCKLINT_"

// envBinding applies one environment variable to a config.
type envBinding struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

// envBindings lists the supported variables in documentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = []envBinding{
	{
		suffix:      "SEVERITY_DEFAULT",
		description: "Default severity: error, warning, or info",
		apply: func(cfg *config.Config, value string) error {
			cfg.SeverityDefault = value
			return nil
		},
	},
	{
		suffix:      "FORMAT",
		description: "Output format: text, json, sarif, or summary",
		apply: func(cfg *config.Config, value string) error {
			cfg.Format = config.OutputFormat(value)
			return nil
		},
	},
	{
		suffix:      "RULE_FORMAT",
		description: "Rule identifier format: name, id, or combined",
		apply: func(cfg *config.Config, value string) error {
			cfg.RuleFormat = config.RuleFormat(value)
			return nil
		},
	},
	{
		suffix:      "JOBS",
		description: "Number of parallel workers (0 = auto)",
		apply: func(cfg *config.Config, value string) error {
			jobs, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer %q", value)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	{
		suffix:      "IGNORE",
		description: "Comma-separated list of ignore patterns",
		apply: func(cfg *config.Config, value string) error {
			cfg.Ignore = parseSliceValue(value)
			return nil
		},
	},
	{
		suffix:      "EXTENSIONS",
		description: "Comma-separated list of Markdown file extensions",
		apply: func(cfg *config.Config, value string) error {
			cfg.Extensions = parseSliceValue(value)
			return nil
		},
	},
	{
		suffix:      "SKIP_VENDORED",
		description: "Skip vendored directories: true or false",
		apply: func(cfg *config.Config, value string) error {
			skip, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
			}
			cfg.SkipVendored = &skip
			return nil
		},
	},
	{
		suffix:      "ENABLE",
		description: "Comma-separated list of rules to enable",
		apply: func(cfg *config.Config, value string) error {
			cfg.EnableRules = parseSliceValue(value)
			return nil
		},
	},
	{
		suffix:      "DISABLE",
		description: "Comma-separated list of rules to disable",
		apply: func(cfg *config.Config, value string) error {
			cfg.DisableRules = parseSliceValue(value)
			return nil
		},
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDBLOCKLINT_ (e.g., MDBLOCKLINT_JOBS).
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, binding := range envBindings {
		name := envVarPrefix + binding.suffix
		value, ok := lookup(name)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := binding.apply(cfg, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace; empty elements are dropped.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return slices.Clip(result)
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envBindings))
	for _, binding := range envBindings {
		vars[envVarPrefix+binding.suffix] = binding.description
	}
	return vars
}
