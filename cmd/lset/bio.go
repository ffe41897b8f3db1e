package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/league"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/prefs"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

func newBioCmd(load func() (*runtime, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.BioUse,
		Short: messages.BioShort,
	}

	var out string
	export := &cobra.Command{
		Use:   messages.BioExportUse,
		Short: messages.BioExportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, values, err := loadLeague(cmd.Context(), load, args[0])
			if err != nil {
				return err
			}
			e := newBioEditor(rt, nil)
			if err := e.Open(cmd.Context(), bioValue(values)); err != nil {
				return err
			}
			return writeOutput(cmd, out, e.Export)
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", messages.RowsFlagOut)

	imp := &cobra.Command{
		Use:   messages.BioImportUse,
		Short: messages.BioImportShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, values, err := loadLeague(cmd.Context(), load, args[0])
			if err != nil {
				return err
			}
			var imported *bioinfo.PlayerBioInfo
			e := newBioEditor(rt, func(info *bioinfo.PlayerBioInfo) { imported = info })
			if err := e.Open(cmd.Context(), bioValue(values)); err != nil {
				return err
			}
			if err := readInput(args[1], e.Import); err != nil {
				return err
			}
			countries := len(e.Draft().Countries)
			if err := e.Save(); err != nil {
				return err
			}
			values[settings.KeyPlayerBioInfo] = imported
			if err := league.Save(args[0], values); err != nil {
				return fmt.Errorf(messages.CLISaveLeagueFmt, args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.BioImportedFmt, countries, args[0])
			return nil
		},
	}

	cmd.AddCommand(export, imp)
	return cmd
}

func newBioEditor(rt *runtime, onChange func(*bioinfo.PlayerBioInfo)) *bioinfo.Editor {
	var store prefs.Store
	if f, err := prefs.OpenFile(rt.cfg.Prefs.Path); err != nil {
		rt.logger.Warn("preferences unavailable, using defaults", zap.Error(err))
	} else {
		store = f
	}
	return bioinfo.NewEditor(worker.PlayerBioInfoLoader(rt.worker, rt.gender()), onChange, store, rt.logger)
}

func bioValue(values settings.Values) *bioinfo.PlayerBioInfo {
	v, _ := values[settings.KeyPlayerBioInfo].(*bioinfo.PlayerBioInfo)
	return v
}
