package form

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

// answer is one scripted reply. kind is "select", "confirm", "input" or "note".
type answer struct {
	kind  string
	value any
	err   error
}

func sel(v string) answer   { return answer{kind: "select", value: v} }
func yes() answer           { return answer{kind: "confirm", value: true} }
func no() answer            { return answer{kind: "confirm", value: false} }
func input(v string) answer { return answer{kind: "input", value: v} }
func note() answer          { return answer{kind: "note"} }
func esc(kind string) answer {
	return answer{kind: kind, err: errBack}
}

// scriptUI replays answers in order and records every prompt.
type scriptUI struct {
	t       *testing.T
	answers []answer
	titles  []string
	notes   []string
	options [][]string
}

func (u *scriptUI) next(kind, title string) answer {
	u.t.Helper()
	u.titles = append(u.titles, title)
	require.NotEmpty(u.t, u.answers, "unexpected %s prompt %q", kind, title)
	a := u.answers[0]
	u.answers = u.answers[1:]
	require.Equal(u.t, a.kind, kind, "prompt %q", title)
	return a
}

func (u *scriptUI) Select(title string, options []string, current *string) error {
	u.options = append(u.options, options)
	a := u.next("select", title)
	if a.err != nil {
		return a.err
	}
	v := a.value.(string)
	require.Contains(u.t, options, v, "prompt %q", title)
	*current = v
	return nil
}

func (u *scriptUI) Confirm(title string, value *bool) error {
	a := u.next("confirm", title)
	if a.err != nil {
		return a.err
	}
	*value = a.value.(bool)
	return nil
}

func (u *scriptUI) Input(title string, value *string) error {
	a := u.next("input", title)
	if a.err != nil {
		return a.err
	}
	*value = a.value.(string)
	return nil
}

func (u *scriptUI) Note(title string, body string) error {
	u.notes = append(u.notes, title+": "+body)
	return u.next("note", title).err
}

func snapshot() settings.Values {
	v := settings.DefaultValues()
	v[settings.KeyNumActiveTeams] = 30
	v[settings.KeyInjuries] = []rows.Injury{{Name: "Sprained Ankle", Frequency: 10, Games: 3}}
	v[settings.KeyTragicDeaths] = []rows.TragicDeath{{Reason: "Car accident", Frequency: 1}}
	return v
}

type harness struct {
	ui      *scriptUI
	session *Session
	saved   []settings.Values
}

func newHarness(t *testing.T, snap settings.Values, answers ...answer) *harness {
	t.Helper()
	h := &harness{ui: &scriptUI{t: t, answers: answers}}
	s, err := NewSession(Options{
		UI:                  h.ui,
		Schema:              settings.Catalog(),
		Snapshot:            snap,
		Visibility:          settings.Visibility{NewLeague: true},
		Worker:              &worker.Stub{},
		ShowGodModeSettings: true,
		Save: func(_ context.Context, v settings.Values) error {
			h.saved = append(h.saved, v)
			return nil
		},
	})
	require.NoError(t, err)
	h.session = s
	return h
}

func (h *harness) category(t *testing.T, c settings.Category) string {
	t.Helper()
	for _, g := range h.session.Form().Categories(true) {
		if g.Category == c {
			return categoryLabel(g)
		}
	}
	t.Fatalf("category %s not visible", c)
	return ""
}

func TestEditScalarAndSave(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategorySchedule)),
		sel("# Games Per Season: 82"),
		input("70"),
		sel(messages.FormMenuBack),
		sel(messages.FormMenuSave),
		note(),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, h.saved, 1)
	assert.Equal(t, 70, out["numGames"])
	assert.Empty(t, h.ui.answers)

	require.Len(t, h.ui.notes, 1)
	assert.Contains(t, h.ui.notes[0], "-numGames = 82")
	assert.Contains(t, h.ui.notes[0], "+numGames = 70")
	assert.Contains(t, h.ui.titles, messages.FormMainMenuDirtyTitle)
	assert.False(t, h.session.Dirty())
}

func TestCustomDifficulty(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategoryGameModes)),
		sel("Difficulty: Normal"),
		sel(messages.FormCustomOption),
		input("0.5"),
		sel(messages.FormMenuBack),
		sel(messages.FormMenuSave),
		note(),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.5, out["difficulty"])
}

func TestSaveDeclinedKeepsEditing(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(messages.FormMenuSave),
		note(),
		no(),
		esc("select"),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, h.saved)
	assert.Contains(t, h.ui.notes[0], messages.FormNoChanges)
}

func TestInvalidValueShowsErrorAndKeepsState(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategorySchedule)),
		sel("# Games Per Season: 82"),
		input("many"),
		esc("select"),
		sel(messages.FormMenuSave),
		note(),
		sel(messages.FormMenuCancel),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, h.saved)
	require.Len(t, h.ui.notes, 1)
	assert.True(t, strings.HasPrefix(h.ui.notes[0], messages.FormErrorTitle))
	assert.Contains(t, h.ui.notes[0], "# Games Per Season")
	assert.Equal(t, "82", h.session.Form().Controller().Value("numGames"))
}

func TestCancelDirtyAsksFirst(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategorySchedule)),
		sel("# Games Per Season: 82"),
		input("10"),
		sel(messages.FormMenuBack),
		sel(messages.FormMenuCancel),
		no(),
		esc("select"),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, "82", h.session.Form().Controller().Value("numGames"))
}

func TestCtrlCEndsSession(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategorySchedule)),
		{kind: "select", err: ErrCancelled},
	}
	_, err := h.session.Run(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestGodModeUnlocksSettings(t *testing.T) {
	h := newHarness(t, snapshot())
	off := fmt.Sprintf(messages.FormMenuGodModeFmt, messages.FormOff)
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategoryInjuries)),
		sel("Injury Types: 1 rows" + messages.FormLockedSuffix),
		note(),
		sel(messages.FormMenuBack),
		sel(off),
		yes(),
		sel(messages.FormMenuSave),
		note(),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, out[settings.KeyGodMode])
	assert.Equal(t, true, out[settings.KeyGodModeInPast])
	assert.Contains(t, h.ui.notes[0], messages.GodModeAlwaysTooltip)
}

func TestInjuriesEditor(t *testing.T) {
	snap := snapshot()
	snap[settings.KeyGodMode] = true
	h := newHarness(t, snap)
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategoryInjuries)),
		sel("Injury Types: 1 rows"),
		sel(messages.RowsMenuDelete),
		sel("1. Sprained Ankle, 10, 3"),
		sel(messages.RowsMenuSave),
		note(),
		sel(messages.RowsMenuAdd),
		input("Torn ACL"),
		input("0.5"),
		input("40"),
		sel(messages.RowsMenuSave),
		sel(messages.FormMenuBack),
		sel(messages.FormMenuSave),
		note(),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []rows.Injury{{Name: "Torn ACL", Frequency: 0.5, Games: 40}}, out[settings.KeyInjuries])
	assert.Contains(t, h.ui.notes[0], messages.InjuriesEmpty)
}

func TestInjuriesImportNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "injuries.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Frequency,Games\nHamstring,5,2\nBroken Leg,0.5,30\n"), 0o644))

	snap := snapshot()
	snap[settings.KeyGodMode] = true
	h := newHarness(t, snap)
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategoryInjuries)),
		sel("Injury Types: 1 rows"),
		sel(messages.RowsMenuImport),
		input(path),
		note(),
		{kind: "select", err: ErrCancelled},
	}

	_, err := h.session.Run(context.Background())
	require.ErrorIs(t, err, ErrCancelled)
	require.Len(t, h.ui.notes, 1)
	assert.Equal(t, messages.RowsMenuImport+": "+fmt.Sprintf(messages.FormRowsImportedFmt, 2, path), h.ui.notes[0])
}

func TestStopOnInjuryEditsPartner(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(h.category(t, settings.CategoryInjuries)),
		sel("Stop On Injury: " + messages.FormOff),
		yes(),
		input("5"),
		sel(messages.FormMenuBack),
		sel(messages.FormMenuSave),
		note(),
		yes(),
	}

	out, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, out[settings.KeyStopOnInjury])
	assert.Equal(t, 5, out[settings.KeyStopOnInjuryGames])
}

func TestPresetApplies(t *testing.T) {
	h := newHarness(t, snapshot())
	h.ui.answers = []answer{
		sel(messages.FormMenuPreset),
		sel("1980"),
		esc("select"),
		yes(),
	}

	_, err := h.session.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, h.ui.options[1], settings.PresetDefault)
}

func TestSaveFailureIsShown(t *testing.T) {
	h := newHarness(t, snapshot())
	s, err := NewSession(Options{
		UI:         h.ui,
		Schema:     settings.Catalog(),
		Snapshot:   snapshot(),
		Visibility: settings.Visibility{NewLeague: true},
		Worker:     &worker.Stub{},
		Save:       func(context.Context, settings.Values) error { return errors.New("disk full") },
	})
	require.NoError(t, err)
	h.ui.answers = []answer{
		sel(messages.FormMenuSave),
		note(),
		yes(),
		note(),
		esc("select"),
	}

	out, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out)
	require.Len(t, h.ui.notes, 2)
	assert.Contains(t, h.ui.notes[1], "disk full")
}

func TestTruncateLines(t *testing.T) {
	text := "a\nb\nc\nd"
	assert.Equal(t, text, truncateLines(text, 0))
	assert.Equal(t, text, truncateLines(text, 4))
	assert.Equal(t, "a\nb\n"+fmt.Sprintf(messages.FormDiffTruncatedFmt, 2), truncateLines(text, 2))
}
