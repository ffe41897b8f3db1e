package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "lset"
	// RootShort is the short description for the root command.
	RootShort       = "League settings editor"
	RootLong        = "Edit, validate, import and export the settings of a simulated sports league."
	RootVersionFlag = "Print version and exit"
	RootFlagConfig  = "Path to the lset config file (default ~/.lset/config.toml)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	EditUse                 = "edit <league-file>"
	EditShort               = "Edit league settings interactively"
	EditFlagNewLeague       = "Edit as a new league (settings that only apply at creation are shown and unlocked)"
	EditFlagGodModeSettings = "Show settings that require god mode even when god mode is off"
	EditFlagDefaults        = "Edit default new-league settings (adds restore-default actions)"

	ValidateUse   = "validate <league-file>"
	ValidateShort = "Parse and validate a league settings file"
	ValidateOKFmt = "%s: settings are valid (%d values checked)\n"

	SchemaUse                = "schema"
	SchemaShort              = "List every setting grouped by category"
	SchemaFlagCategory       = "Only list settings in this category"
	SchemaFlagAll            = "Include settings hidden in the current context"
	SchemaFlagRealPlayers    = "Resolve settings for a real players league"
	SchemaLineFmt            = "  %-32s %-20s %s%s\n"
	SchemaGodModeTag         = " [god mode]"
	SchemaUnknownCategoryFmt = "unknown category %q"

	InjuriesUse       = "injuries"
	InjuriesShort     = "Import or export the injury table as CSV"
	TragicDeathsUse   = "tragic-deaths"
	TragicDeathsShort = "Import or export the tragic death table as CSV"
	RowsExportUse     = "export <league-file>"
	RowsExportShort   = "Write the table to stdout or --out as CSV"
	RowsImportUse     = "import <league-file> <csv-file>"
	RowsImportShort   = "Replace the table with the contents of a CSV file"
	RowsFlagOut       = "Write to this file instead of stdout"
	RowsImportedFmt   = "imported %d rows into %s\n"

	BioUse         = "bio"
	BioShort       = "Import or export player bio info as JSON"
	BioExportUse   = "export <league-file>"
	BioExportShort = "Write pruned player bio info JSON to stdout or --out"
	BioImportUse   = "import <league-file> <json-file>"
	BioImportShort = "Replace player bio info with the contents of a JSON file"
	BioImportedFmt = "imported player bio info for %d countries into %s\n"

	McpUse   = "mcp"
	McpShort = "Run an MCP server over stdio exposing the settings schema and validator"

	CLIErrorPrefix   = "error: "
	CLILoadLeagueFmt = "load league %s: %w"
	CLISaveLeagueFmt = "save league %s: %w"
	CLIOpenFileFmt   = "open %s: %w"
	CLICreateFileFmt = "create %s: %w"
	CLILoadConfigFmt = "load config: %w"
	CLIInitLoggerFmt = "init logger: %w"
	CLIInitWorkerFmt = "init worker: %w"
	CLIOpenPrefsFmt  = "open preferences: %w"
	CLIEditCancelled = "No changes saved."
	CLIEditSavedFmt  = "Saved settings to %s\n"
)
