package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/league"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

var (
	createFile = os.Create
	openFile   = os.Open
)

// tableSpec describes one CSV-backed table setting.
type tableSpec[T, R any] struct {
	use, short string
	key        string
	newEditor  func(w worker.Worker, onChange func([]T), logger *zap.Logger) *rows.Editor[T, R]
}

func newInjuriesCmd(load func() (*runtime, error)) *cobra.Command {
	return newTableCmd(load, tableSpec[rows.Injury, rows.InjuryRow]{
		use:   messages.InjuriesUse,
		short: messages.InjuriesShort,
		key:   settings.KeyInjuries,
		newEditor: func(w worker.Worker, onChange func([]rows.Injury), logger *zap.Logger) *rows.Editor[rows.Injury, rows.InjuryRow] {
			return rows.NewInjuriesEditor(worker.InjuriesLoader(w), onChange, logger)
		},
	})
}

func newTragicDeathsCmd(load func() (*runtime, error)) *cobra.Command {
	return newTableCmd(load, tableSpec[rows.TragicDeath, rows.TragicDeathRow]{
		use:   messages.TragicDeathsUse,
		short: messages.TragicDeathsShort,
		key:   settings.KeyTragicDeaths,
		newEditor: func(w worker.Worker, onChange func([]rows.TragicDeath), logger *zap.Logger) *rows.Editor[rows.TragicDeath, rows.TragicDeathRow] {
			return rows.NewTragicDeathsEditor(worker.TragicDeathsLoader(w), onChange, logger)
		},
	})
}

func newTableCmd[T, R any](load func() (*runtime, error), spec tableSpec[T, R]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
	}

	var out string
	export := &cobra.Command{
		Use:   messages.RowsExportUse,
		Short: messages.RowsExportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, values, err := loadLeague(cmd.Context(), load, args[0])
			if err != nil {
				return err
			}
			e := spec.newEditor(rt.worker, nil, rt.logger)
			if err := e.Open(cmd.Context(), tableValue[T](values, spec.key)); err != nil {
				return err
			}
			return writeOutput(cmd, out, e.Export)
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", messages.RowsFlagOut)

	imp := &cobra.Command{
		Use:   messages.RowsImportUse,
		Short: messages.RowsImportShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, values, err := loadLeague(cmd.Context(), load, args[0])
			if err != nil {
				return err
			}
			var imported []T
			e := spec.newEditor(rt.worker, func(v []T) { imported = v }, rt.logger)
			if err := e.Open(cmd.Context(), tableValue[T](values, spec.key)); err != nil {
				return err
			}
			if err := readInput(args[1], e.Import); err != nil {
				return err
			}
			if err := e.Save(); err != nil {
				return err
			}
			values[spec.key] = imported
			if err := league.Save(args[0], values); err != nil {
				return fmt.Errorf(messages.CLISaveLeagueFmt, args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.RowsImportedFmt, len(imported), args[0])
			return nil
		},
	}

	cmd.AddCommand(export, imp)
	return cmd
}

// loadLeague loads the runtime and a league file with worker defaults filled in.
func loadLeague(ctx context.Context, load func() (*runtime, error), path string) (*runtime, settings.Values, error) {
	rt, err := load()
	if err != nil {
		return nil, nil, err
	}
	values, err := league.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf(messages.CLILoadLeagueFmt, path, err)
	}
	if err := league.FillDefaults(ctx, values, rt.worker); err != nil {
		return nil, nil, err
	}
	return rt, values, nil
}

func tableValue[T any](values settings.Values, key string) []T {
	v, _ := values[key].([]T)
	return v
}

// writeOutput sends write to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf(messages.CLICreateFileFmt, path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readInput(path string, read func(io.Reader) error) error {
	f, err := openFile(path)
	if err != nil {
		return fmt.Errorf(messages.CLIOpenFileFmt, path, err)
	}
	defer func() { _ = f.Close() }()
	return read(f)
}
