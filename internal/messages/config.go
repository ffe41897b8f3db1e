package messages

// Config messages for loading and validating the lset configuration file.
const (
	// ConfigMissingFileFmt formats unreadable config file errors.
	ConfigMissingFileFmt      = "read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized keys: %v"
	ConfigEnvOverrideFmt      = "apply environment overrides: %w"
	ConfigResolveHomeFmt      = "resolve home directory: %w"

	ConfigLogLevelInvalidFmt  = "%s: log.level must be one of debug, info, warn, error (got %q)"
	ConfigGenderInvalidFmt    = "%s: form.gender must be male or female (got %q)"
	ConfigDiffLinesInvalidFmt = "%s: form.diff_lines must not be negative"
	ConfigValidationGuidance  = "(fix the config file or remove it to use defaults)"
)

// Logging setup messages.
const (
	LoggingLevelFmt = "invalid log level %q: %w"
	LoggingInitFmt  = "initialize logger: %w"
)
