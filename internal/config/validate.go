package config

import (
	"fmt"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validGenders = map[string]struct{}{
	"male":   {},
	"female": {},
}

// Validate ensures the config is consistent.
func (c *Config) Validate(path string) error {
	if _, ok := validLogLevels[c.Log.Level]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, c.Log.Level)
	}
	if _, ok := validGenders[c.Form.Gender]; !ok {
		return fmt.Errorf(messages.ConfigGenderInvalidFmt, path, c.Form.Gender)
	}
	if c.Form.DiffLines < 0 {
		return fmt.Errorf(messages.ConfigDiffLinesInvalidFmt, path)
	}
	return nil
}
