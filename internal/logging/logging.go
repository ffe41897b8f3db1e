// Package logging builds the structured logger from the tool configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/config"
	"github.com/leaguekit/leaguesettings/internal/messages"
)

// New returns a JSON logger writing to cfg.File at cfg.Level, or a no-op
// logger when no file is configured.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	path, err := config.ResolvePath(cfg.File)
	if err != nil {
		return nil, err
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf(messages.LoggingLevelFmt, cfg.Level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf(messages.LoggingInitFmt, err)
	}
	return logger, nil
}
