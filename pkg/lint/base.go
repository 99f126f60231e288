package lint

import "github.com/yaklabco/mdblocklint/pkg/config"

// BaseRule carries the static metadata shared by every rule. Embed it in a
// rule implementation and provide Apply.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string
	name     string
	desc     string
	tags     []string
	disabled bool
	severity config.Severity
}

// BaseRuleOption adjusts a BaseRule built by NewBaseRule.
type BaseRuleOption func(*BaseRule)

// WithDefaultSeverity overrides the warning severity a rule starts with.
func WithDefaultSeverity(s config.Severity) BaseRuleOption {
	return func(r *BaseRule) {
		r.severity = s
	}
}

// DisabledByDefault makes the rule opt-in.
func DisabledByDefault() BaseRuleOption {
	return func(r *BaseRule) {
		r.disabled = true
	}
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, opts ...BaseRuleOption) BaseRule {
	rule := BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		tags:     tags,
		severity: config.SeverityWarning,
	}
	for _, opt := range opts {
		opt(&rule)
	}
	return rule
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return !r.disabled
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	if r.severity == "" {
		return config.SeverityWarning
	}
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}
