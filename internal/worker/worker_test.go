package worker

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
)

func newLocal(t *testing.T) *Local {
	t.Helper()
	w, err := NewLocal()
	require.NoError(t, err)
	return w
}

func TestLocalDefaults(t *testing.T) {
	w := newLocal(t)
	ctx := context.Background()

	injuries, err := w.DefaultInjuries(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, injuries)
	injuries[0].Name = "changed"
	again, err := w.DefaultInjuries(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0].Name)

	deaths, err := w.DefaultTragicDeaths(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, deaths)
}

func TestLocalBioDefaultsAreCompleteAndValid(t *testing.T) {
	w := newLocal(t)
	for _, g := range []Gender{GenderMale, GenderFemale} {
		d, err := w.PlayerBioInfoDefaults(context.Background(), g)
		require.NoError(t, err, g)
		for country := range d.Frequencies {
			assert.NotEmpty(t, d.Names[country].First, "%s %s", g, country)
			assert.NotEmpty(t, d.Names[country].Last, "%s %s", g, country)
		}
		assert.NoError(t, bioinfo.ValidateDraft(bioinfo.Merge(nil, d)), g)
	}

	_, err := w.PlayerBioInfoDefaults(context.Background(), "other")
	assert.ErrorContains(t, err, `unknown gender "other"`)
}

func TestLocalBioDefaultsAreCopies(t *testing.T) {
	w := newLocal(t)
	d, err := w.PlayerBioInfoDefaults(context.Background(), GenderMale)
	require.NoError(t, err)
	d.Colleges["Nowhere"] = 1
	d.Names["USA"].First["Zed"] = 1

	fresh, err := w.PlayerBioInfoDefaults(context.Background(), GenderMale)
	require.NoError(t, err)
	assert.NotContains(t, fresh.Colleges, "Nowhere")
	assert.NotContains(t, fresh.Names["USA"].First, "Zed")
}

func TestPlayoffTeamsDoesNotOverflow(t *testing.T) {
	for _, rounds := range []int{maxRounds + 1, 63, 64, 1000} {
		assert.Equal(t, math.MaxInt, PlayoffTeams(PlayoffSettings{NumRounds: rounds}), rounds)
	}
	assert.Positive(t, PlayoffTeams(PlayoffSettings{NumRounds: maxRounds, PlayIn: true, ByConf: true, NumConfs: 2}))
}

func TestValidatePlayoffSettings(t *testing.T) {
	tests := []struct {
		name string
		in   PlayoffSettings
		want string
	}{
		{"ok", PlayoffSettings{NumRounds: 4, NumActiveTeams: 30}, ""},
		{"ok with byes", PlayoffSettings{NumRounds: 4, NumPlayoffByes: 2, NumActiveTeams: 14}, ""},
		{"no rounds", PlayoffSettings{NumRounds: 0, NumActiveTeams: 30}, "at least one round"},
		{"negative byes", PlayoffSettings{NumRounds: 2, NumPlayoffByes: -1, NumActiveTeams: 30}, "negative"},
		{"too many byes", PlayoffSettings{NumRounds: 2, NumPlayoffByes: 2, NumActiveTeams: 30}, "too many"},
		{"not enough teams", PlayoffSettings{NumRounds: 3, NumActiveTeams: 6}, "Your league has 6 active teams, which is not enough for 3 rounds of playoffs (8 teams needed)."},
		{"play-in counts", PlayoffSettings{NumRounds: 3, PlayIn: true, NumActiveTeams: 9}, "(10 teams needed)"},
		{"rounds beyond int range", PlayoffSettings{NumRounds: 63, NumActiveTeams: 30}, "not enough for 63 rounds"},
		{"rounds at shift width", PlayoffSettings{NumRounds: 64, NumActiveTeams: 30}, "not enough for 64 rounds"},
		{"deepest countable bracket", PlayoffSettings{NumRounds: maxRounds, PlayIn: true, NumActiveTeams: 30}, "teams needed"},
		{"by conf odd byes", PlayoffSettings{NumRounds: 4, NumPlayoffByes: 1, ByConf: true, NumConfs: 2, NumActiveTeams: 30}, "divisible by 2"},
		{"by conf ok", PlayoffSettings{NumRounds: 4, NumPlayoffByes: 2, ByConf: true, NumConfs: 2, PlayIn: true, NumActiveTeams: 30}, ""},
	}
	w := newLocal(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.ValidatePlayoffSettings(context.Background(), tt.in)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPlayoffTeams(t *testing.T) {
	assert.Equal(t, 16, PlayoffTeams(PlayoffSettings{NumRounds: 4}))
	assert.Equal(t, 14, PlayoffTeams(PlayoffSettings{NumRounds: 4, NumPlayoffByes: 2}))
	assert.Equal(t, 20, PlayoffTeams(PlayoffSettings{NumRounds: 4, PlayIn: true, ByConf: true, NumConfs: 2}))
}

func TestEvalPointsFormula(t *testing.T) {
	v, err := EvalPointsFormula("2*W + OTL", map[string]float64{"W": 10, "OTL": 3})
	require.NoError(t, err)
	assert.Equal(t, 23.0, v)

	v, err = EvalPointsFormula("  ", nil)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestValidatePointsFormula(t *testing.T) {
	w := newLocal(t)
	ctx := context.Background()

	assert.NoError(t, w.ValidatePointsFormula(ctx, "2*W+T"))
	assert.NoError(t, w.ValidatePointsFormula(ctx, ""))
	assert.ErrorContains(t, w.ValidatePointsFormula(ctx, "2*W +"), "Invalid points formula")
	assert.ErrorContains(t, w.ValidatePointsFormula(ctx, "W + X"), "failed to evaluate")
	assert.ErrorContains(t, w.ValidatePointsFormula(ctx, `"W"`), "must evaluate to a number")
	assert.ErrorContains(t, w.ValidatePointsFormula(ctx, "(function() while true do end end)()"), `cannot use "function"`)
}

func TestStubRecordsPlayoffCalls(t *testing.T) {
	s := &Stub{}
	require.NoError(t, s.ValidatePlayoffSettings(context.Background(), PlayoffSettings{NumRounds: 3}))
	assert.Equal(t, []PlayoffSettings{{NumRounds: 3}}, s.PlayoffCalls)
}
