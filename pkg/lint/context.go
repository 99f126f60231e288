package lint

import (
	"context"

	"github.com/yaklabco/mdblocklint/pkg/blocks"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/mdast"
	"github.com/yaklabco/mdblocklint/pkg/refplace"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// RuleContext is a short-lived parameter object created per rule invocation,
// so it carries the context.Context as a field.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the source snapshot.
	File *mdast.FileSnapshot

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	seg  *blocks.Segmentation
	refs *refplace.Report
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *mdast.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Lines returns the file's lines without terminators.
func (rc *RuleContext) Lines() []string {
	if rc.File == nil {
		return nil
	}
	return rc.File.TextLines()
}

// Segmentation returns the content block segmentation of the file, building
// it on first use.
func (rc *RuleContext) Segmentation() *blocks.Segmentation {
	if rc.seg == nil {
		rc.seg = blocks.Analyze(rc.Lines())
	}
	return rc.seg
}

// References returns the reference definitions, usages and placement
// violations of the file, building them on first use.
func (rc *RuleContext) References() *refplace.Report {
	if rc.refs == nil {
		rc.refs = refplace.AnalyzeSegmentation(rc.Segmentation())
	}
	return rc.refs
}

// share copies lazily built document analysis from another context for the
// same file.
func (rc *RuleContext) share(from *RuleContext) {
	if from == nil {
		return
	}
	rc.seg = from.seg
	rc.refs = from.refs
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	switch val := rc.Option(key, defaultValue).(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	if b, ok := rc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
// YAML decodes lists as []any, which is accepted too.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	switch val := rc.Option(key, defaultValue).(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
