// Package form drives an interactive league settings session: category menus,
// per-setting edits, the structured table editors, and a diff preview before
// saving.
package form

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/league"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/prefs"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

var (
	openFile   = os.Open
	createFile = os.Create
)

// Options configures a Session.
type Options struct {
	UI         UI
	Schema     []settings.Descriptor
	Snapshot   settings.Values
	Visibility settings.Visibility
	// Defaults enables per-setting restore, for editing default settings.
	Defaults settings.Values
	Worker   worker.Worker
	Gender   worker.Gender
	Save     settings.SaveFunc
	Prefs    prefs.Store
	Logger   *zap.Logger

	ShowGodModeSettings bool
	// DiffLines caps the preview shown before saving; zero shows everything.
	DiffLines int
	// Name labels the diff preview.
	Name string
}

// Session is one interactive editing session over a league snapshot.
type Session struct {
	opts   Options
	ui     UI
	form   *settings.Form
	logger *zap.Logger
	dirty  bool
}

// NewSession mounts the form for opts.Snapshot.
func NewSession(opts Options) (*Session, error) {
	s := &Session{opts: opts, ui: opts.UI, logger: opts.Logger}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.opts.Prefs == nil {
		s.opts.Prefs = prefs.NewMemory()
	}
	if s.opts.Gender == "" {
		s.opts.Gender = worker.GenderMale
	}
	f, err := settings.NewForm(settings.FormOptions{
		Schema:     opts.Schema,
		Snapshot:   opts.Snapshot,
		Visibility: opts.Visibility,
		Worker:     opts.Worker,
		Save:       opts.Save,
		Logger:     s.logger,
		OnDirty:    func() { s.dirty = true },
		Defaults:   opts.Defaults,
	})
	if err != nil {
		return nil, err
	}
	s.form = f
	return s, nil
}

// Form returns the mounted form.
func (s *Session) Form() *settings.Form { return s.form }

// Dirty reports whether anything changed since the last save.
func (s *Session) Dirty() bool { return s.dirty }

// Run shows the main menu until the user saves or cancels. It returns the
// saved settings, or nil when the session ended without saving.
func (s *Session) Run(ctx context.Context) (settings.Values, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		action, err := s.mainMenu()
		if errors.Is(err, errBack) {
			action = messages.FormMenuCancel
		} else if err != nil {
			return nil, err
		}

		switch {
		case action == messages.FormMenuSave:
			out, done, err := s.save(ctx)
			if err != nil {
				return nil, err
			}
			if done {
				return out, nil
			}
		case action == messages.FormMenuCancel:
			leave, err := s.confirmDiscard()
			if err != nil {
				return nil, err
			}
			if leave {
				s.form.Cancel()
				return nil, nil
			}
		case action == messages.FormMenuPreset:
			if err := s.choosePreset(); err != nil {
				return nil, err
			}
		case action == s.godModeLabel():
			if err := s.toggleGodMode(); err != nil {
				return nil, err
			}
		default:
			cat, ok := s.categoryFor(action)
			if !ok {
				continue
			}
			if err := s.categoryMenu(ctx, cat); err != nil {
				return nil, err
			}
		}
	}
}

func (s *Session) groups() []settings.CategoryGroup {
	return s.form.Categories(s.opts.ShowGodModeSettings)
}

func categoryLabel(g settings.CategoryGroup) string {
	return fmt.Sprintf(messages.FormCategoryItemFmt, g.Category, len(g.Settings))
}

func (s *Session) mainMenu() (string, error) {
	var options []string
	for _, g := range s.groups() {
		options = append(options, categoryLabel(g))
	}
	options = append(options, messages.FormMenuPreset, s.godModeLabel(), messages.FormMenuSave, messages.FormMenuCancel)

	title := messages.FormMainMenuTitle
	if s.dirty {
		title = messages.FormMainMenuDirtyTitle
	}
	var choice string
	if err := s.ui.Select(title, options, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func (s *Session) categoryFor(label string) (settings.CategoryGroup, bool) {
	for _, g := range s.groups() {
		if categoryLabel(g) == label {
			return g, true
		}
	}
	return settings.CategoryGroup{}, false
}

func (s *Session) godModeLabel() string {
	state := messages.FormOff
	if s.form.Controller().Snapshot().GodMode {
		state = messages.FormOn
	}
	return fmt.Sprintf(messages.FormMenuGodModeFmt, state)
}

func (s *Session) toggleGodMode() error {
	ctrl := s.form.Controller()
	if ctrl.Snapshot().GodMode {
		ctrl.SetGodMode(false)
		return nil
	}
	enable := false
	if err := s.ui.Confirm(messages.FormEnableGodModePrompt, &enable); err != nil {
		return ignoreBack(err)
	}
	if enable {
		ctrl.SetGodMode(true)
	}
	return nil
}

func (s *Session) choosePreset() error {
	current := s.form.Controller().Preset()
	if err := s.ui.Select(messages.FormPresetTitle, settings.Presets(), &current); err != nil {
		return ignoreBack(err)
	}
	if err := s.form.Controller().ApplyPreset(current); err != nil {
		return s.ui.Note(messages.FormErrorTitle, err.Error())
	}
	return nil
}

func (s *Session) confirmDiscard() (bool, error) {
	if !s.dirty {
		return true, nil
	}
	discard := false
	if err := s.ui.Confirm(messages.FormConfirmDiscard, &discard); err != nil {
		if errors.Is(err, errBack) {
			return false, nil
		}
		return false, err
	}
	return discard, nil
}

// categoryMenu lists the settings of one category until the user goes back.
func (s *Session) categoryMenu(ctx context.Context, g settings.CategoryGroup) error {
	for {
		// Refresh: god mode and edits change labels and locks.
		current, ok := s.categoryFor(categoryLabel(g))
		if ok {
			g = current
		}
		labels := make([]string, 0, len(g.Settings)+1)
		keys := make(map[string]string, len(g.Settings))
		for _, d := range g.Settings {
			c, ok := s.form.Control(d.Key)
			if !ok {
				continue
			}
			label := s.settingLabel(c)
			if _, dup := keys[label]; dup {
				label += " [" + c.Key + "]"
			}
			keys[label] = c.Key
			labels = append(labels, label)
		}
		labels = append(labels, messages.FormMenuBack)

		var choice string
		if err := s.ui.Select(string(g.Category), labels, &choice); err != nil {
			return ignoreBack(err)
		}
		key, ok := keys[choice]
		if !ok {
			return nil
		}
		if err := s.editSetting(ctx, key); err != nil {
			return err
		}
	}
}

func (s *Session) settingLabel(c settings.Control) string {
	locked := ""
	if c.Disabled {
		locked = messages.FormLockedSuffix
	}
	return fmt.Sprintf(messages.FormSettingItemFmt, c.Title, s.display(c), locked)
}

// display is the short current-value text shown next to a setting.
func (s *Session) display(c settings.Control) string {
	switch c.Shape {
	case settings.ShapeCheckbox:
		return onOff(c.Checked)
	case settings.ShapeRange:
		return c.PercentLabel
	case settings.ShapeSelect:
		return optionLabel(c.Options, c.Selected)
	case settings.ShapeSelectOrCustom:
		if c.Selected == settings.CustomOptionKey {
			return c.Prefix + c.CustomText + c.Suffix + messages.FormCustomSuffix
		}
		return optionLabel(c.Options, c.Selected)
	case settings.ShapeCustom:
		return s.customDisplay(c)
	}
	if c.Value == "" {
		return messages.FormDefaultValue
	}
	return c.Prefix + c.Value + c.Suffix
}

func (s *Session) customDisplay(c settings.Control) string {
	state := s.form.Controller().Snapshot()
	switch c.CustomForm {
	case settings.CustomInjuries:
		if state.Injuries == nil {
			return messages.FormDefaultValue
		}
		return fmt.Sprintf(messages.FormRowsSummaryFmt, len(state.Injuries))
	case settings.CustomTragicDeaths:
		if state.TragicDeaths == nil {
			return messages.FormDefaultValue
		}
		return fmt.Sprintf(messages.FormRowsSummaryFmt, len(state.TragicDeaths))
	case settings.CustomPlayerBioInfo:
		if state.PlayerBioInfo == nil || len(state.PlayerBioInfo.Countries) == 0 && state.PlayerBioInfo.Default == nil && state.PlayerBioInfo.Frequencies == nil {
			return messages.FormDefaultValue
		}
		return messages.FormCustomOption
	case settings.CustomStopOnInjury:
		if !c.Checked {
			return messages.FormOff
		}
		return fmt.Sprintf(messages.FormStopOnInjuryGamesFmt, s.form.Controller().Value(settings.KeyStopOnInjuryGames))
	}
	return c.Value
}

func onOff(b bool) string {
	if b {
		return messages.FormOn
	}
	return messages.FormOff
}

func optionLabel(options []settings.Option, key string) string {
	for _, o := range options {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}

// ignoreBack treats Esc as a normal return to the previous menu.
func ignoreBack(err error) error {
	if errors.Is(err, errBack) {
		return nil
	}
	return err
}

// save validates, previews and, when confirmed, persists the settings.
// done reports whether the session should end.
func (s *Session) save(ctx context.Context) (settings.Values, bool, error) {
	out, err := s.form.Validate(ctx)
	if err != nil {
		return nil, false, s.ui.Note(messages.FormErrorTitle, err.Error())
	}
	preview, err := s.preview(out)
	if err != nil {
		return nil, false, err
	}
	if err := s.ui.Note(messages.FormDiffTitle, preview); err != nil {
		return nil, false, ignoreBack(err)
	}
	confirm := false
	if err := s.ui.Confirm(messages.FormConfirmSave, &confirm); err != nil {
		return nil, false, ignoreBack(err)
	}
	if !confirm {
		s.logger.Debug(messages.FormSaveDeclined)
		return nil, false, nil
	}
	saved, err := s.form.Save(ctx)
	if err != nil {
		return nil, false, s.ui.Note(messages.FormErrorTitle, err.Error())
	}
	s.dirty = false
	return saved, true, nil
}

// preview renders the unified diff between the snapshot and the snapshot
// with out applied.
func (s *Session) preview(out settings.Values) (string, error) {
	before := s.canonical(s.form.Original())
	after := maps.Clone(before)
	if after == nil {
		after = make(settings.Values, len(out))
	}
	maps.Copy(after, out)

	from, err := league.Encode(before, league.FormatTOML)
	if err != nil {
		return "", err
	}
	to, err := league.Encode(after, league.FormatTOML)
	if err != nil {
		return "", err
	}
	name := s.opts.Name
	if name == "" {
		name = "league"
	}
	diff := strings.TrimSpace(udiff.Unified(
		fmt.Sprintf(messages.FormDiffCurrentFmt, name),
		fmt.Sprintf(messages.FormDiffProposedFmt, name),
		string(from),
		string(to),
	))
	if diff == "" {
		return messages.FormNoChanges, nil
	}
	return truncateLines(diff, s.opts.DiffLines), nil
}

// canonical passes every scalar setting through its codec so unchanged values
// render exactly like freshly parsed ones.
func (s *Session) canonical(v settings.Values) settings.Values {
	for _, d := range s.form.Resolved() {
		raw, ok := v[d.Key]
		if !ok || settings.IsSpecialKey(d.Key) {
			continue
		}
		codec := d.Codec()
		str, err := codec.Stringify(raw)
		if err != nil {
			continue
		}
		if parsed, err := codec.Parse(str); err == nil {
			v[d.Key] = parsed
		}
	}
	return v
}

func truncateLines(text string, limit int) string {
	lines := strings.Split(text, "\n")
	if limit <= 0 || len(lines) <= limit {
		return text
	}
	kept := append(lines[:limit:limit], fmt.Sprintf(messages.FormDiffTruncatedFmt, len(lines)-limit))
	return strings.Join(kept, "\n")
}
