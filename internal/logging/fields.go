package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Page fields.
	FieldTitle  = "title"
	FieldEngine = "engine"
	FieldBytes  = "bytes"

	// Configuration fields.
	FieldFlavor     = "flavor"
	FieldContentDir = "content_dir"
	FieldStaticDir  = "static_dir"
	FieldTemplate   = "template"
	FieldDryRun     = "dry_run"
	FieldJobs       = "jobs"

	// Statistics fields.
	FieldPagesDiscovered = "pages_discovered"
	FieldPagesGenerated  = "pages_generated"
	FieldPagesFailed     = "pages_failed"
	FieldAssetsCopied    = "assets_copied"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
