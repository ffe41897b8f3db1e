// Package mcp exposes the settings catalog and snapshot validation as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/league"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

type serverRunner func(ctx context.Context, server *mcp.Server) error

// ListInput filters list_settings.
type ListInput struct {
	Category    string `json:"category,omitempty" jsonschema:"only settings in this category"`
	NewLeague   bool   `json:"new_league,omitempty" jsonschema:"resolve for a league being created"`
	RealPlayers bool   `json:"real_players,omitempty" jsonschema:"resolve for a real players league"`
}

// SettingInfo describes one setting.
type SettingInfo struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Kind            string `json:"kind"`
	GodModeRequired string `json:"god_mode_required,omitempty"`
	Description     string `json:"description,omitempty"`
}

// ListOutput is the list_settings result.
type ListOutput struct {
	Settings []SettingInfo `json:"settings"`
}

// ValidateInput names the snapshot validate_settings checks.
type ValidateInput struct {
	Path      string `json:"path" jsonschema:"path to a .toml, .json or .yaml league settings file"`
	NewLeague bool   `json:"new_league,omitempty" jsonschema:"validate as a league being created"`
}

// ValidateOutput is the validate_settings result.
type ValidateOutput struct {
	Valid bool   `json:"valid"`
	Key   string `json:"key,omitempty"`
	Error string `json:"error,omitempty"`
}

// RunServer serves the settings tools over stdio until ctx ends.
func RunServer(ctx context.Context, version string, w worker.Worker, logger *zap.Logger) error {
	return runServer(ctx, NewServer(version, w, logger), defaultServerRunner)
}

func runServer(ctx context.Context, server *mcp.Server, runner serverRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, errors.New(messages.McpRunnerNil))
	}
	if err := runner(ctx, server); err != nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, err)
	}
	return nil
}

func defaultServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// NewServer builds the MCP server with the list_settings and validate_settings tools.
func NewServer(version string, w worker.Worker, logger *zap.Logger) *mcp.Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	server := mcp.NewServer(&mcp.Implementation{Name: "lset", Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{Name: "list_settings", Description: messages.McpListSettingsDesc}, listHandler())
	mcp.AddTool(server, &mcp.Tool{Name: "validate_settings", Description: messages.McpValidateDesc}, validateHandler(w, logger))
	return server
}

func listHandler() mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, ListOutput, error) {
		resolved, err := settings.Resolve(settings.Catalog(), settings.Visibility{NewLeague: in.NewLeague, RealPlayers: in.RealPlayers})
		if err != nil {
			return nil, ListOutput{}, err
		}
		if in.Category != "" && !knownCategory(in.Category) {
			return nil, ListOutput{}, fmt.Errorf(messages.McpUnknownCategoryFmt, in.Category)
		}
		out := ListOutput{Settings: []SettingInfo{}}
		for _, d := range resolved {
			if d.Hidden || in.Category != "" && string(d.Category) != in.Category {
				continue
			}
			out.Settings = append(out.Settings, SettingInfo{
				Key:             d.Key,
				Name:            d.Name,
				Category:        string(d.Category),
				Kind:            string(d.Kind),
				GodModeRequired: string(d.GodModeRequired),
				Description:     d.Description,
			})
		}
		return nil, out, nil
	}
}

func knownCategory(name string) bool {
	for _, c := range settings.Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

func validateHandler(w worker.Worker, logger *zap.Logger) mcp.ToolHandlerFor[ValidateInput, ValidateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		values, err := league.Load(in.Path)
		if err != nil {
			return nil, ValidateOutput{Error: err.Error()}, nil
		}
		_, err = league.Validate(ctx, values, league.VisibilityFor(values, in.NewLeague), w)
		if err != nil {
			logger.Info("validate_settings rejected", zap.String("path", in.Path), zap.Error(err))
			out := ValidateOutput{Error: err.Error()}
			var fe *settings.FieldError
			if errors.As(err, &fe) {
				out.Key = fe.Key
			}
			return nil, out, nil
		}
		return nil, ValidateOutput{Valid: true}, nil
	}
}
