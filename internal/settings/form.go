package settings

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

var (
	// ErrSubmitInProgress is returned when Save is called while another save runs.
	ErrSubmitInProgress = errors.New(messages.SettingsSubmitInProgress)
	// ErrSaveFailed wraps a rejection from the save function.
	ErrSaveFailed = errors.New(messages.SettingsSaveFailed)
)

// SaveFunc persists fully parsed and validated settings.
type SaveFunc func(ctx context.Context, v Values) error

// FormOptions configures NewForm.
type FormOptions struct {
	// Schema holds every variant; NewForm resolves it against Visibility.
	Schema     []Descriptor
	Snapshot   Values
	Visibility Visibility
	Worker     worker.Worker
	Save       SaveFunc
	Logger     *zap.Logger
	OnDirty    func()
	// Defaults enables per-setting reset when editing default settings.
	Defaults Values
}

// Form is one mounted settings form.
type Form struct {
	resolved   []Descriptor
	controller *Controller
	original   Values
	saved      State
	visibility Visibility
	worker     worker.Worker
	save       SaveFunc
	logger     *zap.Logger
	submitting atomic.Bool
}

// NewForm resolves the schema and seeds the form state from the snapshot.
func NewForm(opts FormOptions) (*Form, error) {
	resolved, err := Resolve(opts.Schema, opts.Visibility)
	if err != nil {
		return nil, err
	}
	ctrl, err := NewController(resolved, opts.Snapshot, ControllerOptions{OnDirty: opts.OnDirty, Defaults: opts.Defaults})
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{
		resolved:   resolved,
		controller: ctrl,
		original:   maps.Clone(opts.Snapshot),
		saved:      ctrl.Snapshot(),
		visibility: opts.Visibility,
		worker:     opts.Worker,
		save:       opts.Save,
		logger:     logger,
	}, nil
}

// Controller returns the state controller.
func (f *Form) Controller() *Controller { return f.controller }

// Resolved returns the active descriptors in schema order.
func (f *Form) Resolved() []Descriptor {
	out := make([]Descriptor, len(f.resolved))
	for i, d := range f.resolved {
		out[i] = d.clone()
	}
	return out
}

// Visibility returns the context the form was resolved in.
func (f *Form) Visibility() Visibility { return f.visibility }

// Original returns a copy of the snapshot validators compare against.
func (f *Form) Original() Values { return maps.Clone(f.original) }

// Categories lists the visible settings of the form.
func (f *Form) Categories(showGodModeSettings bool) []CategoryGroup {
	return VisibleCategories(f.resolved, VisibleOptions{
		GodMode:             f.controller.state.GodMode,
		NewLeague:           f.visibility.NewLeague,
		ShowGodModeSettings: showGodModeSettings,
	})
}

// Control builds the control of key from the current state.
func (f *Form) Control(key string) (Control, bool) {
	d, ok := f.controller.Descriptor(key)
	if !ok {
		return Control{}, false
	}
	rc := RenderContext{NewLeague: f.visibility.NewLeague}
	if f.controller.CanReset() {
		rc.OnReset = f.controller.Reset
	}
	return BuildControl(d, f.controller.state, rc), true
}

// Submitting reports whether a save is in flight.
func (f *Form) Submitting() bool { return f.submitting.Load() }

// Validate runs the submit pipeline without saving.
func (f *Form) Validate(ctx context.Context) (Values, error) {
	return Submit(ctx, SubmitInput{
		Schema:   f.resolved,
		State:    f.controller.Snapshot(),
		Original: f.original,
		Worker:   f.worker,
	})
}

// Save parses, validates and hands the result to the save function. The
// state is kept on every failure so the user can fix it and retry.
func (f *Form) Save(ctx context.Context) (Values, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInProgress
	}
	defer f.submitting.Store(false)

	state := f.controller.Snapshot()
	out, err := Submit(ctx, SubmitInput{Schema: f.resolved, State: state, Original: f.original, Worker: f.worker})
	if err != nil {
		f.logger.Info("settings submit rejected", zap.Error(err))
		return nil, err
	}
	if f.save != nil {
		if err := f.save(ctx, out); err != nil {
			f.logger.Error("save settings failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
	}
	f.saved = state
	next := maps.Clone(f.original)
	if next == nil {
		next = make(Values, len(out))
	}
	maps.Copy(next, out)
	f.original = next
	f.logger.Debug("settings saved", zap.Int("settings", len(out)))
	return out, nil
}

// Cancel reverts the state to the last save, or to the initial state.
func (f *Form) Cancel() {
	f.controller.Restore(f.saved)
}
