package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leaguekit/leaguesettings/internal/league"
	"github.com/leaguekit/leaguesettings/internal/messages"
)

func newValidateCmd(load func() (*runtime, error)) *cobra.Command {
	var newLeague bool
	cmd := &cobra.Command{
		Use:   messages.ValidateUse,
		Short: messages.ValidateShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			values, err := league.Load(args[0])
			if err != nil {
				return fmt.Errorf(messages.CLILoadLeagueFmt, args[0], err)
			}
			out, err := league.Validate(cmd.Context(), values, league.VisibilityFor(values, newLeague), rt.worker)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ValidateOKFmt, args[0], len(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&newLeague, "new-league", false, messages.EditFlagNewLeague)
	return cmd
}
