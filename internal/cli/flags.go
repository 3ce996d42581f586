package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagName     = "name"
	FlagPrivate  = "private"
	FlagTemplate = "template"
	FlagDir      = "dir"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"
	FlagNoPause  = "no-pause"

	// Flag descriptions
	DescName     = "Repository name (skips the prompt)"
	DescPrivate  = "Create a private repository (skips the prompt)"
	DescTemplate = "Ignore-file template name, or 'none' (skips the selector)"
	DescDir      = "Project directory (defaults to the current directory)"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
	DescNoPause  = "Do not wait for Enter after a fatal error"
)
