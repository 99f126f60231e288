package lint

import (
	"slices"

	"github.com/yaklabco/mdblocklint/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule applies, in increasing precedence: rule defaults, the
// configured default severity, per-rule config, then CLI enable/disable.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	if cfg == nil {
		return rr
	}

	if sev, err := config.ParseSeverity(cfg.SeverityDefault); err == nil && cfg.SeverityDefault != "" {
		rr.Severity = sev
	}

	if ruleCfg, ok := lookupRuleConfig(registry, rule, cfg.Rules); ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if sev, err := config.ParseSeverity(*ruleCfg.Severity); err == nil {
				rr.Severity = sev
			}
		}
	}

	if slices.Contains(registry.CanonicalIDs(cfg.EnableRules), rule.ID()) {
		rr.Enabled = true
	}
	if slices.Contains(registry.CanonicalIDs(cfg.DisableRules), rule.ID()) {
		rr.Enabled = false
	}

	return rr
}

// lookupRuleConfig finds the config entry for rule, accepting entries keyed
// by ID, name or alias. An entry keyed by ID wins.
func lookupRuleConfig(registry *Registry, rule Rule, rules map[string]config.RuleConfig) (config.RuleConfig, bool) {
	if rc, ok := rules[rule.ID()]; ok {
		return rc, true
	}
	for key, rc := range rules {
		if id, _, ok := registry.Resolve(key); ok && id == rule.ID() {
			return rc, true
		}
	}
	return config.RuleConfig{}, false
}
