package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldJobs     = "jobs"
	FieldFormat   = "format"
	FieldRule     = "rule"
	FieldDuration = "duration"

	// Document fields.
	FieldLines       = "lines"
	FieldBlocks      = "blocks"
	FieldDefinitions = "definitions"
	FieldViolations  = "violations"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldFilesErrored     = "files_errored"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule listing fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldTags        = "tags"
	FieldDescription = "description"
)
