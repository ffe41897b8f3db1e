// Package config loads the lset tool configuration.
package config

// Config is the lset tool configuration.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Form  FormConfig  `toml:"form"`
	Prefs PrefsConfig `toml:"prefs"`
}

// LogConfig controls the structured log. With no file, logging is off.
type LogConfig struct {
	Level string `toml:"level" env:"LSET_LOG_LEVEL"`
	File  string `toml:"file" env:"LSET_LOG_FILE"`
}

// FormConfig sets defaults for interactive sessions.
type FormConfig struct {
	ShowGodModeSettings bool   `toml:"show_god_mode_settings" env:"LSET_SHOW_GOD_MODE_SETTINGS"`
	Gender              string `toml:"gender" env:"LSET_GENDER"`
	// DiffLines caps the preview shown before saving; zero shows everything.
	DiffLines int `toml:"diff_lines" env:"LSET_DIFF_LINES"`
}

// PrefsConfig locates the preference store.
type PrefsConfig struct {
	Path string `toml:"path" env:"LSET_PREFS_PATH"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Form:  FormConfig{ShowGodModeSettings: true, Gender: "male", DiffLines: 200},
		Prefs: PrefsConfig{Path: "~/.lset/prefs.toml"},
	}
}
