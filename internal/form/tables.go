package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

func (s *Session) editInjuries(ctx context.Context) error {
	current := s.form.Controller().Snapshot().Injuries
	if current == nil {
		d, err := s.opts.Worker.DefaultInjuries(ctx)
		if err != nil {
			return s.ui.Note(messages.FormErrorTitle, err.Error())
		}
		current = d
	}
	var changeErr error
	raw := s.form.Controller().HandleChangeRaw(settings.KeyInjuries)
	e := rows.NewInjuriesEditor(worker.InjuriesLoader(s.opts.Worker), func(v []rows.Injury) { changeErr = raw(v) }, s.logger)
	if err := runTable(ctx, s, e, current); err != nil {
		return err
	}
	return changeErr
}

func (s *Session) editTragicDeaths(ctx context.Context) error {
	current := s.form.Controller().Snapshot().TragicDeaths
	if current == nil {
		d, err := s.opts.Worker.DefaultTragicDeaths(ctx)
		if err != nil {
			return s.ui.Note(messages.FormErrorTitle, err.Error())
		}
		current = d
	}
	var changeErr error
	raw := s.form.Controller().HandleChangeRaw(settings.KeyTragicDeaths)
	e := rows.NewTragicDeathsEditor(worker.TragicDeathsLoader(s.opts.Worker), func(v []rows.TragicDeath) { changeErr = raw(v) }, s.logger)
	if err := runTable(ctx, s, e, current); err != nil {
		return err
	}
	return changeErr
}

// runTable drives a rows editor until it saves or is cancelled.
func runTable[T, R any](ctx context.Context, s *Session, e *rows.Editor[T, R], current []T) error {
	if err := e.Open(ctx, current); err != nil {
		return s.ui.Note(messages.FormErrorTitle, err.Error())
	}
	spec := e.Spec()
	for e.Status() == rows.StatusReady {
		options := []string{
			messages.RowsMenuAdd, messages.RowsMenuAppend, messages.RowsMenuEdit, messages.RowsMenuClone,
			messages.RowsMenuDelete, messages.RowsMenuReset, messages.RowsMenuClear, messages.RowsMenuImport,
			messages.RowsMenuExport, messages.RowsMenuSave, messages.RowsMenuCancel,
		}
		var action string
		err := s.ui.Select(fmt.Sprintf(messages.RowsMenuTitleFmt, spec.Noun, len(e.Rows())), options, &action)
		if errors.Is(err, errBack) {
			action = messages.RowsMenuCancel
		} else if err != nil {
			return err
		}

		var opErr error
		switch action {
		case messages.RowsMenuAdd, messages.RowsMenuAppend:
			prepend := action == messages.RowsMenuAdd
			if opErr = e.Add(prepend); opErr == nil {
				i := 0
				if !prepend {
					i = len(e.Rows()) - 1
				}
				opErr = editRow(s, e, i)
			}
		case messages.RowsMenuEdit:
			opErr = withRow(s, e, func(i int) error { return editRow(s, e, i) })
		case messages.RowsMenuClone:
			opErr = withRow(s, e, e.Clone)
		case messages.RowsMenuDelete:
			opErr = withRow(s, e, e.Delete)
		case messages.RowsMenuReset:
			opErr = e.Reset(ctx)
		case messages.RowsMenuClear:
			opErr = e.Clear()
		case messages.RowsMenuImport:
			opErr = s.importTable(func(path string) (int, error) {
				f, err := openFile(path)
				if err != nil {
					return 0, err
				}
				defer f.Close()
				if err := e.Import(f); err != nil {
					return 0, err
				}
				return len(e.Rows()), nil
			})
		case messages.RowsMenuExport:
			opErr = s.exportTable(func(path string) (string, error) {
				f, err := createFile(path)
				if err != nil {
					return "", err
				}
				if err := e.Export(f); err != nil {
					_ = f.Close()
					return "", err
				}
				if err := f.Close(); err != nil {
					return "", err
				}
				return fmt.Sprintf(messages.RowsExportedFmt, len(e.Rows()), path), nil
			})
		case messages.RowsMenuSave:
			opErr = e.Save()
		case messages.RowsMenuCancel:
			var askErr error
			e.Cancel(func() bool {
				discard := false
				askErr = s.ui.Confirm(messages.FormConfirmDiscard, &discard)
				return askErr == nil && discard
			})
			if askErr != nil && !errors.Is(askErr, errBack) {
				return askErr
			}
		}
		if err := s.report(opErr); err != nil {
			return err
		}
	}
	return nil
}

func rowLabel[T, R any](spec rows.Spec[T, R], i int, r R) string {
	rec := spec.ToRecord(r)
	parts := make([]string, len(spec.Columns))
	for j, col := range spec.Columns {
		parts[j] = rec[col]
	}
	return fmt.Sprintf(messages.RowsItemFmt, i+1, strings.Join(parts, ", "))
}

// withRow asks for a row and calls fn with its index.
func withRow[T, R any](s *Session, e *rows.Editor[T, R], fn func(int) error) error {
	rs := e.Rows()
	if len(rs) == 0 {
		return nil
	}
	labels := make([]string, len(rs))
	for i, r := range rs {
		labels[i] = rowLabel(e.Spec(), i, r)
	}
	var choice string
	if err := s.ui.Select(messages.RowsPickRow, labels, &choice); err != nil {
		return err
	}
	for i, l := range labels {
		if l == choice {
			return fn(i)
		}
	}
	return nil
}

// editRow prompts for every column of row i.
func editRow[T, R any](s *Session, e *rows.Editor[T, R], i int) error {
	spec := e.Spec()
	rec := spec.ToRecord(e.Rows()[i])
	for _, col := range spec.Columns {
		v := rec[col]
		if err := s.ui.Input(col, &v); err != nil {
			return err
		}
		rec[col] = v
	}
	return e.Set(i, spec.FromRecord(rec))
}

func (s *Session) importTable(load func(path string) (int, error)) error {
	var path string
	if err := s.ui.Input(messages.RowsPathTitle, &path); err != nil {
		return err
	}
	n, err := load(strings.TrimSpace(path))
	if err != nil {
		s.logger.Warn("import table failed", zap.String("path", path), zap.Error(err))
		return err
	}
	return s.ui.Note(messages.RowsMenuImport, fmt.Sprintf(messages.FormRowsImportedFmt, n, path))
}

func (s *Session) exportTable(write func(path string) (string, error)) error {
	var path string
	if err := s.ui.Input(messages.RowsPathTitle, &path); err != nil {
		return err
	}
	msg, err := write(strings.TrimSpace(path))
	if err != nil {
		return err
	}
	return s.ui.Note(messages.RowsMenuExport, msg)
}
