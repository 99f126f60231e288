package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblocklint/internal/configloader"
	"github.com/yaklabco/mdblocklint/internal/logging"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/lint"
	_ "github.com/yaklabco/mdblocklint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/mdblocklint/pkg/reporter"
	"github.com/yaklabco/mdblocklint/pkg/runner"
)

type lintFlags struct {
	format     string
	jobs       int
	ignore     []string
	include    []string
	enable     []string
	disable    []string
	strict     bool
	noContext  bool
	compact    bool
	ruleFormat string
	follow     bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, info)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint Markdown files for misplaced reference definitions.

By default, lints all Markdown files in the current directory and
subdirectories. Specify paths to lint specific files or directories.

Examples:
  mdblocklint lint                    # Lint current directory
  mdblocklint lint docs/              # Lint docs directory
  mdblocklint lint README.md          # Lint single file
  mdblocklint lint --format sarif     # Output SARIF for code scanning
  mdblocklint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg, err := cliConfig(cmd, flags)
	if err != nil {
		return err
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errLoadConfig, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	engine := lint.NewEngine(lint.NewSnapshotParser(), lint.DefaultRegistry)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		IncludeGlobs:   flags.include,
		FollowSymlinks: flags.follow,
		Jobs:           finalCfg.Jobs,
		Config:         finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldFormat, finalCfg.Format,
	)

	result, err := runner.New(engine).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("could not lint file", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
		Registry:    lint.DefaultRegistry,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &LintError{Code: code}
	}

	return nil
}

// cliConfig builds the highest-precedence config layer from the flags that
// were explicitly set, so that unset flags never mask file or env values.
func cliConfig(cmd *cobra.Command, flags *lintFlags) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return nil, &UsageError{Err: err}
		}
		cfg.Format = format
	}
	if changed("rule-format") {
		ruleFormat, err := config.ParseRuleFormat(flags.ruleFormat)
		if err != nil {
			return nil, &UsageError{Err: err}
		}
		cfg.RuleFormat = ruleFormat
	}
	if changed("jobs") {
		if flags.jobs < 0 {
			return nil, &UsageError{Err: fmt.Errorf("--jobs must be >= 0, got %d", flags.jobs)}
		}
		cfg.Jobs = flags.jobs
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	for _, pattern := range flags.include {
		if err := runner.ValidateGlob(pattern); err != nil {
			return nil, &UsageError{Err: fmt.Errorf("--include: %w", err)}
		}
	}
	if changed("enable") {
		cfg.EnableRules = flags.enable
	}
	if changed("disable") {
		cfg.DisableRules = flags.disable
	}

	return cfg, nil
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only lint files matching these glob patterns")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON and SARIF output")
	cmd.Flags().BoolVar(&flags.follow, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
