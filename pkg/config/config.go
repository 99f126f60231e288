// Package config defines core configuration types for mdblocklint.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity converts a string to a Severity, ignoring case.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityError:
		return SeverityError, nil
	case SeverityWarning:
		return SeverityWarning, nil
	case SeverityInfo:
		return SeverityInfo, nil
	default:
		return "", fmt.Errorf("unknown severity %q; must be one of: error, warning, info", s)
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "reference-definition-placement"
	RuleFormatID       RuleFormat = "id"       // "MDL004"
	RuleFormatCombined RuleFormat = "combined" // "MDL004/reference-definition-placement"
)

// DefaultExtensions are the file extensions linted when none are configured.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultExtensions = []string{".md", ".markdown"}

// Config is the root configuration structure for mdblocklint.
type Config struct {
	// SeverityDefault overrides the built-in default severity of every rule
	// that has no explicit severity.
	SeverityDefault string `yaml:"severity_default,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty"`

	// Extensions lists file extensions treated as Markdown when walking
	// directories. Empty means DefaultExtensions plus any file the
	// language detector identifies as Markdown.
	Extensions []string `yaml:"extensions,omitempty"`

	// SkipVendored skips vendored and third-party paths during discovery.
	// Nil means true.
	SkipVendored *bool `yaml:"skip_vendored,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
		RuleFormat:      RuleFormatName,
		Jobs:            0, // 0 means one worker per CPU
	}
}

// MarkdownExtensions returns the configured extensions or the defaults.
func (c *Config) MarkdownExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Extensions
}

// SkipsVendored reports whether vendored paths are skipped.
func (c *Config) SkipsVendored() bool {
	if c == nil || c.SkipVendored == nil {
		return true
	}
	return *c.SkipVendored
}
