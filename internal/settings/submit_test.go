package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leaguekit/leaguesettings/internal/worker"
)

func newForm(t *testing.T, snap Values, w worker.Worker, save SaveFunc) *Form {
	t.Helper()
	f, err := NewForm(FormOptions{Schema: Catalog(), Snapshot: snap, Worker: w, Save: save})
	require.NoError(t, err)
	return f
}

func TestSubmitFloat1000Currency(t *testing.T) {
	snap := snapshot()
	snap["salaryCap"] = 90000
	snap["minPayroll"] = 60000
	var saved Values
	f := newForm(t, snap, &worker.Stub{}, func(_ context.Context, v Values) error {
		saved = v
		return nil
	})
	require.Equal(t, "90", f.Controller().Value("salaryCap"))

	f.Controller().HandleChange("salaryCap", KindFloat1000)(ChangeEvent{Value: "105.5"})
	out, err := f.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 105500.0, out["salaryCap"])
	assert.Equal(t, 105500.0, saved["salaryCap"])
	assert.Equal(t, 82, saved["numGames"])
	assert.Equal(t, false, saved[KeyGodMode])
}

func TestSubmitLeavesUnsetTablesUntyped(t *testing.T) {
	snap := snapshot()
	delete(snap, KeyInjuries)
	f := newForm(t, snap, &worker.Stub{}, nil)

	out, err := f.Validate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, KeyPlayerBioInfo)
	assert.True(t, out[KeyPlayerBioInfo] == nil, "unset bio info must be untyped nil, got %#v", out[KeyPlayerBioInfo])
	assert.True(t, out[KeyInjuries] == nil, "unset injuries must be untyped nil, got %#v", out[KeyInjuries])
	assert.NotNil(t, out[KeyTragicDeaths])
}

func TestSubmitReportsMissingActiveTeams(t *testing.T) {
	snap := snapshot()
	delete(snap, KeyNumActiveTeams)
	stub := &worker.Stub{}
	f := newForm(t, snap, stub, nil)

	_, err := f.Validate(context.Background())
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "numGamesPlayoffSeries", fe.Key)
	assert.Contains(t, err.Error(), `settings snapshot is missing "numActiveTeams"`)
	assert.Empty(t, stub.PlayoffCalls, "the worker is not asked about an unknown league size")
}

func TestSubmitCustomDifficulty(t *testing.T) {
	f := newForm(t, snapshot(), &worker.Stub{}, nil)
	f.Controller().HandleChange("difficulty", KindFloatValuesOrCustom)(ChangeEvent{Target: TargetText, Value: "0.37"})
	require.Equal(t, `[true,"0.37"]`, f.Controller().Value("difficulty"))

	out, err := f.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.37, out["difficulty"])
}

func TestSubmitPlayoffRoundsRejectedByWorker(t *testing.T) {
	stub := &worker.Stub{Playoffs: func(_ context.Context, s worker.PlayoffSettings) error {
		return errors.New("not enough active teams for 3 rounds")
	}}
	saveCalls := 0
	f := newForm(t, snapshot(), stub, func(context.Context, Values) error {
		saveCalls++
		return nil
	})
	f.Controller().HandleChange("numGames", KindInt)(ChangeEvent{Value: "60"})
	f.Controller().HandleChange("numGamesPlayoffSeries", KindJSONString)(ChangeEvent{Value: "[5,7,1]"})

	_, err := f.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, "# Playoff Games: not enough active teams for 3 rounds", err.Error())
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "numGamesPlayoffSeries", fe.Key)

	require.Len(t, stub.PlayoffCalls, 1)
	assert.Equal(t, 3, stub.PlayoffCalls[0].NumRounds)
	assert.Equal(t, 30, stub.PlayoffCalls[0].NumActiveTeams)
	assert.True(t, stub.PlayoffCalls[0].PlayIn)
	assert.Equal(t, 2, stub.PlayoffCalls[0].NumConfs, "snapshots without conferences play as two")
	assert.Zero(t, saveCalls)
	assert.Equal(t, "60", f.Controller().Value("numGames"), "edits survive a rejected submit")
}

func TestSubmitParseErrorNamesSetting(t *testing.T) {
	stub := &worker.Stub{}
	f := newForm(t, snapshot(), stub, nil)
	f.Controller().HandleChange("numGamesPlayoffSeries", KindJSONString)(ChangeEvent{Value: "[7,"})
	f.Controller().HandleChange("numGames", KindInt)(ChangeEvent{Value: "eighty"})

	_, err := f.Save(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "# Games Per Season: ")
	assert.Empty(t, stub.PlayoffCalls, "validators never run when a setting fails to parse")
}

func TestSubmitCrossFieldValidator(t *testing.T) {
	f := newForm(t, snapshot(), &worker.Stub{}, nil)
	f.Controller().HandleChange("minPayroll", KindFloat1000)(ChangeEvent{Value: "150"})
	_, err := f.Validate(context.Background())
	assert.EqualError(t, err, "Minimum Payroll: Minimum payroll must be less than or equal to the salary cap.")
}

func TestSubmitCatalogValidators(t *testing.T) {
	type change struct {
		key   string
		kind  Kind
		value string
	}
	tests := []struct {
		name    string
		changes []change
		wantErr string
	}{
		{
			name:    "lottery chances shorter than the picks",
			changes: []change{{"draftLotteryCustomChances", KindJSONString, "[10, 5, 1]"}},
			wantErr: "Custom Lottery Chances: Chances are needed for at least 4 teams, one per lottery pick.",
		},
		{
			name: "lottery chances cover fewer picks",
			changes: []change{
				{"draftLotteryCustomChances", KindJSONString, "[10, 5, 1]"},
				{"draftLotteryCustomNumPicks", KindInt, "3"},
			},
		},
		{
			name:    "lottery chances all zero",
			changes: []change{{"draftLotteryCustomChances", KindJSONString, "[0, 0, 0, 0]"}},
			wantErr: "Custom Lottery Chances: At least one team needs a chance greater than 0.",
		},
		{
			name:    "negative lottery chance",
			changes: []change{{"draftLotteryCustomChances", KindJSONString, "[3, 2, -1, 1]"}},
			wantErr: "Custom Lottery Chances: Array must contain only non-negative numbers.",
		},
		{
			name:    "max overtimes without ties or shootout",
			changes: []change{{"maxOvertimes", KindIntOrNull, "2"}},
			wantErr: "Max # Overtimes: Limiting overtimes requires ties or a shootout.",
		},
		{
			name: "max overtimes with a shootout",
			changes: []change{
				{"maxOvertimes", KindIntOrNull, "2"},
				{"shootoutRounds", KindInt, "3"},
			},
		},
		{
			name:    "playoff overtimes limited without a shootout",
			changes: []change{{"maxOvertimesPlayoffs", KindIntOrNull, "1"}},
			wantErr: "# Shootout Rounds Playoffs: Limiting playoff overtimes requires a playoff shootout.",
		},
		{
			name:    "rookie scale missing a salary",
			changes: []change{{"rookieScales", KindJSONString, "[[5000, 500], [500]]"}},
			wantErr: "Rookie Scales: Each round needs a [first pick, last pick] pair of non-negative salaries.",
		},
		{
			name:    "rookie scale rounds above draft rounds",
			changes: []change{{"draftPickAutoContractRounds", KindInt, "3"}},
			wantErr: "Rookie Scale Rounds: Rookie scale rounds must not exceed the number of draft rounds.",
		},
		{
			name:    "fouls until bonus needs three values",
			changes: []change{{"foulsUntilBonus", KindJSONString, "[5, 4]"}},
			wantErr: "Fouls Until Bonus: Array must contain exactly 3 values.",
		},
		{
			name:    "dunk contest larger than the All-Star Game",
			changes: []change{{"allStarNumDunk", KindInt, "20"}},
			wantErr: "# Dunk Contest Players: Contest players must not outnumber the All-Star Game players.",
		},
		{
			name:    "depth chart shorter than the lineup",
			changes: []change{{"numPlayersOnRosterDepth", KindIntOrNull, "3"}},
			wantErr: "Depth Chart Length: Depth chart length must be at least the number of players on the court.",
		},
		{
			name:    "thanos mode above certainty",
			changes: []change{{"challengeThanosMode", KindRangePercent, "1.5"}},
			wantErr: "Thanos Mode: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForm(t, snapshot(), &worker.Stub{}, nil)
			for _, c := range tt.changes {
				f.Controller().HandleChange(c.key, c.kind)(ChangeEvent{Value: c.value})
			}
			_, err := f.Validate(context.Background())
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSubmitIncludesHiddenPartner(t *testing.T) {
	f := newForm(t, snapshot(), &worker.Stub{}, nil)
	f.Controller().HandleChange(KeyStopOnInjury, KindBool)(ChangeEvent{Checked: true})
	f.Controller().HandleChange(KeyStopOnInjuryGames, KindInt)(ChangeEvent{Value: "12"})

	out, err := f.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, out[KeyStopOnInjury])
	assert.Equal(t, 12, out[KeyStopOnInjuryGames])

	f.Controller().HandleChange(KeyStopOnInjuryGames, KindInt)(ChangeEvent{Value: "0"})
	_, err = f.Validate(context.Background())
	assert.ErrorContains(t, err, "Stop On Injury Games: Value must be greater than 0.")
}

func TestSubmitValidatorOrderIndependence(t *testing.T) {
	failing := func(context.Context, ValidatorInput) error { return errors.New("bad") }
	ok := func(context.Context, ValidatorInput) error { return nil }
	a := Descriptor{Key: "a", Name: "A", Kind: KindFloat, Validator: ok}
	b := Descriptor{Key: "b", Name: "B", Kind: KindFloat, Validator: failing}
	state := State{Strings: map[string]string{"a": "1", "b": "2"}}

	for _, schema := range [][]Descriptor{{a, b}, {b, a}} {
		_, err := Submit(context.Background(), SubmitInput{Schema: schema, State: state})
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "b", fe.Key)
	}

	b.Validator = ok
	for _, schema := range [][]Descriptor{{a, b}, {b, a}} {
		out, err := Submit(context.Background(), SubmitInput{Schema: schema, State: state})
		require.NoError(t, err)
		assert.Equal(t, Values{"a": 1.0, "b": 2.0, KeyGodMode: false, KeyGodModeInPast: false}, out)
	}
}

func TestSaveFailureKeepsState(t *testing.T) {
	f := newForm(t, snapshot(), &worker.Stub{}, func(context.Context, Values) error {
		return errors.New("disk full")
	})
	f.Controller().HandleChange("numGames", KindInt)(ChangeEvent{Value: "70"})

	_, err := f.Save(context.Background())
	require.ErrorIs(t, err, ErrSaveFailed)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "70", f.Controller().Value("numGames"))
	assert.False(t, f.Submitting())
}

func TestSaveRejectsConcurrentSubmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f := newForm(t, snapshot(), &worker.Stub{}, func(context.Context, Values) error {
		close(started)
		<-release
		return nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := f.Save(context.Background())
		done <- err
	}()
	<-started
	assert.True(t, f.Submitting())
	_, err := f.Save(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.Submitting())
}

func TestCancelRevertsToLastSave(t *testing.T) {
	f := newForm(t, snapshot(), &worker.Stub{}, nil)
	ctrl := f.Controller()

	ctrl.HandleChange("numGames", KindInt)(ChangeEvent{Value: "70"})
	f.Cancel()
	assert.Equal(t, "82", ctrl.Value("numGames"))

	ctrl.HandleChange("numGames", KindInt)(ChangeEvent{Value: "70"})
	_, err := f.Save(context.Background())
	require.NoError(t, err)
	ctrl.HandleChange("numGames", KindInt)(ChangeEvent{Value: "40"})
	f.Cancel()
	assert.Equal(t, "70", ctrl.Value("numGames"))
	assert.Equal(t, 70, f.Original()["numGames"])
}

func TestFormControlAndCategories(t *testing.T) {
	f, err := NewForm(FormOptions{
		Schema:     Catalog(),
		Snapshot:   snapshot(),
		Visibility: Visibility{NewLeague: true},
		Defaults:   DefaultValues(),
	})
	require.NoError(t, err)

	c, ok := f.Control("numGames")
	require.True(t, ok)
	assert.True(t, c.Resettable)
	assert.False(t, c.Disabled)
	_, ok = f.Control("nope")
	assert.False(t, ok)

	hidden := f.Categories(false)
	shown := f.Categories(true)
	assert.LessOrEqual(t, len(hidden), len(shown))
	for _, g := range hidden {
		for _, d := range g.Settings {
			assert.NotEqual(t, GodModeAlways, d.GodModeRequired, d.Key)
		}
	}
}
