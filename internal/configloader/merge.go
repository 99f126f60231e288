package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/mdblocklint/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if non-nil
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.SeverityDefault != "" {
		result.SeverityDefault = override.SeverityDefault
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.SkipVendored != nil {
		skip := *override.SkipVendored
		result.SkipVendored = &skip
	}

	result.Rules = mergeRules(result.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.EnableRules != nil {
		result.EnableRules = slices.Clone(override.EnableRules)
	}
	if override.DisableRules != nil {
		result.DisableRules = slices.Clone(override.DisableRules)
	}

	return result
}

// mergeRules performs deep merge of rule configurations. base is modified
// in place when non-nil.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if len(override) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]config.RuleConfig, len(override))
	}

	for key, val := range override {
		if existing, ok := base[key]; ok {
			base[key] = mergeRuleConfig(existing, val)
		} else {
			base[key] = val
		}
	}

	return base
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	if override.Options != nil {
		merged := maps.Clone(result.Options)
		if merged == nil {
			merged = make(map[string]any, len(override.Options))
		}
		maps.Copy(merged, override.Options)
		result.Options = merged
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
