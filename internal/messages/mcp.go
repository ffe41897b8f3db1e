package messages

// MCP server messages.
const (
	McpRunServerFailedFmt = "run MCP server: %w"
	McpRunnerNil          = "server runner is nil"
	McpListSettingsDesc   = "List league settings with their kind, category and god mode requirement."
	McpValidateDesc       = "Parse and validate a league settings file, returning the first error if any."
	McpUnknownCategoryFmt = "unknown category %q"
)
