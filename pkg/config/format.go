package config

import (
	"fmt"
	"strings"
)

// ParseOutputFormat parses an output format name. The empty string selects text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatSARIF, FormatSummary:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, sarif, summary", s)
	}
}

// IsValid reports whether f is a known output format.
func (f OutputFormat) IsValid() bool {
	_, err := ParseOutputFormat(string(f))
	return err == nil && f != ""
}

// ParseRuleFormat parses a rule identifier format. The empty string selects name.
func ParseRuleFormat(s string) (RuleFormat, error) {
	switch format := RuleFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case "":
		return RuleFormatName, nil
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return format, nil
	default:
		return "", fmt.Errorf("unknown rule format %q; valid formats: name, id, combined", s)
	}
}

// FormatRuleID renders a rule identifier in the given format.
// Falls back to the ID when the rule has no name.
func FormatRuleID(format RuleFormat, ruleID, ruleName string) string {
	if ruleName == "" {
		return ruleID
	}

	switch format {
	case RuleFormatID:
		return ruleID
	case RuleFormatCombined:
		return ruleID + "/" + ruleName
	default:
		return ruleName
	}
}
