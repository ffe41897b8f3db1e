package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leaguekit/leaguesettings/internal/form"
	"github.com/leaguekit/leaguesettings/internal/league"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/prefs"
	"github.com/leaguekit/leaguesettings/internal/settings"
)

func newEditCmd(load func() (*runtime, error)) *cobra.Command {
	var newLeague, defaults bool
	var godModeSettings string
	cmd := &cobra.Command{
		Use:   messages.EditUse,
		Short: messages.EditShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			show := rt.cfg.Form.ShowGodModeSettings
			if cmd.Flags().Changed("god-mode-settings") {
				show = godModeSettings == "true"
			}
			return runEdit(cmd.Context(), cmd, rt, editOptions{
				path:                args[0],
				newLeague:           newLeague,
				defaults:            defaults,
				showGodModeSettings: show,
			})
		},
	}
	cmd.Flags().BoolVar(&newLeague, "new-league", false, messages.EditFlagNewLeague)
	cmd.Flags().BoolVar(&defaults, "defaults", false, messages.EditFlagDefaults)
	cmd.Flags().StringVar(&godModeSettings, "god-mode-settings", "", messages.EditFlagGodModeSettings)
	cmd.Flags().Lookup("god-mode-settings").NoOptDefVal = "true"
	return cmd
}

type editOptions struct {
	path                string
	newLeague           bool
	defaults            bool
	showGodModeSettings bool
}

func runEdit(ctx context.Context, cmd *cobra.Command, rt *runtime, opts editOptions) error {
	values, err := league.Load(opts.path)
	if err != nil {
		return fmt.Errorf(messages.CLILoadLeagueFmt, opts.path, err)
	}
	if err := league.FillDefaults(ctx, values, rt.worker); err != nil {
		return err
	}
	store, err := prefs.OpenFile(rt.cfg.Prefs.Path)
	if err != nil {
		return fmt.Errorf(messages.CLIOpenPrefsFmt, err)
	}

	vis := league.VisibilityFor(values, opts.newLeague)
	vis.DefaultNewLeagueSettings = opts.defaults
	var resetTo settings.Values
	if opts.defaults {
		resetTo = settings.DefaultValues()
		if err := league.FillDefaults(ctx, resetTo, rt.worker); err != nil {
			return err
		}
	}

	session, err := form.NewSession(form.Options{
		UI:         newUI(),
		Schema:     settings.Catalog(),
		Snapshot:   values,
		Visibility: vis,
		Defaults:   resetTo,
		Worker:     rt.worker,
		Gender:     rt.gender(),
		Prefs:      store,
		Logger:     rt.logger,
		Save: func(_ context.Context, out settings.Values) error {
			next := maps.Clone(values)
			maps.Copy(next, out)
			if err := league.Save(opts.path, next); err != nil {
				return fmt.Errorf(messages.CLISaveLeagueFmt, opts.path, err)
			}
			values = next
			return nil
		},
		ShowGodModeSettings: opts.showGodModeSettings,
		DiffLines:           rt.cfg.Form.DiffLines,
		Name:                filepath.Base(opts.path),
	})
	if err != nil {
		return err
	}

	out, err := session.Run(ctx)
	if errors.Is(err, form.ErrCancelled) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.CLIEditCancelled)
		return &SilentExitError{Code: 130}
	}
	if err == nil && out == nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.CLIEditCancelled)
		return nil
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.CLIEditSavedFmt, opts.path)
	return nil
}
