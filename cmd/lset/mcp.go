package main

import (
	"github.com/spf13/cobra"

	"github.com/leaguekit/leaguesettings/internal/mcp"
	"github.com/leaguekit/leaguesettings/internal/messages"
)

var runMCPServer = mcp.RunServer

func newMcpCmd(load func() (*runtime, error)) *cobra.Command {
	return &cobra.Command{
		Use:   messages.McpUse,
		Short: messages.McpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()
			return runMCPServer(cmd.Context(), Version, rt.worker, rt.logger)
		},
	}
}
