package rows

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

// ErrEditorClosed is returned by editing operations when the editor is not open.
var ErrEditorClosed = errors.New(messages.EditorClosed)

// Status is the lifecycle state of an editor.
type Status int

const (
	// StatusClosed means no draft exists.
	StatusClosed Status = iota
	// StatusLoading means defaults are being fetched before the draft opens.
	StatusLoading
	// StatusReady means the draft can be edited.
	StatusReady
)

// Spec describes one kind of weighted-row table.
// T is the saved value; R is the editable row with numbers kept as text.
type Spec[T, R any] struct {
	Noun    string
	Columns []string // required CSV columns, in export order
	Empty   string   // error when saving zero rows

	Blank      func() R
	ToDraft    func(T) R
	FromDraft  func(index int, row R) (T, error)
	ToRecord   func(R) map[string]string
	FromRecord func(map[string]string) R
}

// Loader fetches the default rows, typically from the worker.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Editor holds a private draft of a table until it is saved or cancelled.
type Editor[T, R any] struct {
	spec     Spec[T, R]
	load     Loader[T]
	onChange func([]T)
	logger   *zap.Logger

	status    Status
	rows      []R
	defaults  []T
	dirty     bool
	importErr error
}

// NewEditor creates a closed editor. onChange receives the finished table on save.
func NewEditor[T, R any](spec Spec[T, R], load Loader[T], onChange func([]T), logger *zap.Logger) *Editor[T, R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor[T, R]{spec: spec, load: load, onChange: onChange, logger: logger}
}

// NewInjuriesEditor creates an editor for the injury table.
func NewInjuriesEditor(load Loader[Injury], onChange func([]Injury), logger *zap.Logger) *Editor[Injury, InjuryRow] {
	return NewEditor(InjurySpec, load, onChange, logger)
}

// NewTragicDeathsEditor creates an editor for the tragic death table.
func NewTragicDeathsEditor(load Loader[TragicDeath], onChange func([]TragicDeath), logger *zap.Logger) *Editor[TragicDeath, TragicDeathRow] {
	return NewEditor(TragicDeathSpec, load, onChange, logger)
}

// Spec returns the table description.
func (e *Editor[T, R]) Spec() Spec[T, R] { return e.spec }

// Status reports the lifecycle state.
func (e *Editor[T, R]) Status() Status { return e.status }

// Dirty reports whether the draft changed since it was opened.
func (e *Editor[T, R]) Dirty() bool { return e.dirty }

// ImportError returns the error of the last failed import, or nil.
func (e *Editor[T, R]) ImportError() error { return e.importErr }

// Rows returns a copy of the draft rows.
func (e *Editor[T, R]) Rows() []R { return slices.Clone(e.rows) }

// Defaults returns a copy of the defaults fetched when the editor opened.
func (e *Editor[T, R]) Defaults() []T { return slices.Clone(e.defaults) }

// Open fetches defaults and starts a draft copied from current.
func (e *Editor[T, R]) Open(ctx context.Context, current []T) error {
	if e.status != StatusClosed {
		return errors.New(messages.EditorAlreadyOpen)
	}
	e.status = StatusLoading
	defaults, err := e.fetchDefaults(ctx)
	if err != nil {
		e.status = StatusClosed
		return err
	}
	e.defaults = defaults
	e.rows = e.toDraft(current)
	e.dirty = false
	e.importErr = nil
	e.status = StatusReady
	return nil
}

func (e *Editor[T, R]) fetchDefaults(ctx context.Context) ([]T, error) {
	if e.load == nil {
		return nil, nil
	}
	defaults, err := e.load(ctx)
	if err != nil {
		e.logger.Warn("load default rows failed", zap.String("table", e.spec.Noun), zap.Error(err))
		return nil, fmt.Errorf(messages.EditorLoadDefaultsFmt, err)
	}
	return defaults, nil
}

func (e *Editor[T, R]) toDraft(values []T) []R {
	out := make([]R, len(values))
	for i, v := range values {
		out[i] = e.spec.ToDraft(v)
	}
	return out
}

func (e *Editor[T, R]) ready() error {
	if e.status != StatusReady {
		return ErrEditorClosed
	}
	return nil
}

func (e *Editor[T, R]) checkIndex(i int) error {
	if i < 0 || i >= len(e.rows) {
		return fmt.Errorf(messages.EditorRowIndexFmt, i)
	}
	return nil
}

func (e *Editor[T, R]) replace(rows []R) {
	e.rows = rows
	e.dirty = true
}

// Add inserts a blank row at the top when prepend is set, otherwise at the bottom.
func (e *Editor[T, R]) Add(prepend bool) error {
	if err := e.ready(); err != nil {
		return err
	}
	blank := e.spec.Blank()
	if prepend {
		e.replace(append([]R{blank}, e.rows...))
	} else {
		e.replace(append(slices.Clone(e.rows), blank))
	}
	return nil
}

// Clone duplicates row i directly below it.
func (e *Editor[T, R]) Clone(i int) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.checkIndex(i); err != nil {
		return err
	}
	e.replace(slices.Insert(slices.Clone(e.rows), i+1, e.rows[i]))
	return nil
}

// Delete removes row i.
func (e *Editor[T, R]) Delete(i int) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.checkIndex(i); err != nil {
		return err
	}
	e.replace(slices.Delete(slices.Clone(e.rows), i, i+1))
	return nil
}

// Set overwrites row i.
func (e *Editor[T, R]) Set(i int, row R) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.checkIndex(i); err != nil {
		return err
	}
	next := slices.Clone(e.rows)
	next[i] = row
	e.replace(next)
	return nil
}

// Reset refetches the defaults and replaces the draft with them.
func (e *Editor[T, R]) Reset(ctx context.Context) error {
	if err := e.ready(); err != nil {
		return err
	}
	defaults, err := e.fetchDefaults(ctx)
	if err != nil {
		return err
	}
	e.defaults = defaults
	e.replace(e.toDraft(defaults))
	return nil
}

// Clear empties the draft.
func (e *Editor[T, R]) Clear() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.replace(nil)
	return nil
}

// Import replaces the draft with the rows of a CSV file. The header must name
// every required column; extra columns are ignored. On error the draft is untouched.
func (e *Editor[T, R]) Import(r io.Reader) error {
	if err := e.ready(); err != nil {
		return err
	}
	rows, err := e.readCSV(r)
	if err != nil {
		e.importErr = err
		e.logger.Info("import rows failed", zap.String("table", e.spec.Noun), zap.Error(err))
		return err
	}
	e.importErr = nil
	e.replace(rows)
	return nil
}

func (e *Editor[T, R]) readCSV(r io.Reader) ([]R, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf(messages.CSVReadFmt, err)
	}
	if len(records) == 0 {
		return nil, errors.New(messages.CSVEmpty)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	var missing []string
	for _, col := range e.spec.Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(messages.CSVMissingColumnsFmt, strings.Join(missing, ", "))
	}

	rows := make([]R, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		fields := make(map[string]string, len(e.spec.Columns))
		for _, col := range e.spec.Columns {
			if i := index[col]; i < len(record) {
				fields[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, e.spec.FromRecord(fields))
	}
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// Export writes the draft as CSV with a header row.
func (e *Editor[T, R]) Export(w io.Writer) error {
	if err := e.ready(); err != nil {
		return err
	}
	return WriteCSV(w, e.spec, e.rows)
}

// WriteCSV writes rows as CSV using the columns of spec.
func WriteCSV[T, R any](w io.Writer, spec Spec[T, R], rows []R) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(spec.Columns); err != nil {
		return fmt.Errorf(messages.CSVWriteFmt, err)
	}
	for _, row := range rows {
		rec := spec.ToRecord(row)
		line := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			line[i] = rec[col]
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf(messages.CSVWriteFmt, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf(messages.CSVWriteFmt, err)
	}
	return nil
}

// Validate converts the draft into saved values without closing the editor.
func (e *Editor[T, R]) Validate() ([]T, error) {
	return Finish(e.spec, e.rows)
}

// Finish converts draft rows into saved values, enforcing a non-empty table.
func Finish[T, R any](spec Spec[T, R], rows []R) ([]T, error) {
	if len(rows) == 0 {
		return nil, errors.New(spec.Empty)
	}
	out := make([]T, len(rows))
	for i, row := range rows {
		v, err := spec.FromDraft(i, row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Save validates the draft, hands the finished table to onChange and closes.
// When validation fails the editor stays open with the draft intact.
func (e *Editor[T, R]) Save() error {
	if err := e.ready(); err != nil {
		return err
	}
	values, err := e.Validate()
	if err != nil {
		e.logger.Info("rows editor validation failed", zap.String("table", e.spec.Noun), zap.Error(err))
		return err
	}
	if e.onChange != nil {
		e.onChange(values)
	}
	e.close()
	return nil
}

// Cancel discards the draft. When the draft is dirty, confirm is asked first;
// a false answer keeps the editor open. Cancel reports whether it closed.
func (e *Editor[T, R]) Cancel(confirm func() bool) bool {
	if e.status == StatusClosed {
		return true
	}
	if e.dirty && confirm != nil && !confirm() {
		return false
	}
	e.close()
	return true
}

func (e *Editor[T, R]) close() {
	e.status = StatusClosed
	e.rows = nil
	e.dirty = false
	e.importErr = nil
}
