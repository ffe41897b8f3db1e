package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

func snapshot() Values {
	v := DefaultValues()
	v[KeyNumActiveTeams] = 30
	v[KeyInjuries] = []rows.Injury{{Name: "Sprained Ankle", Frequency: 10, Games: 3}}
	v[KeyTragicDeaths] = []rows.TragicDeath{{Reason: "Car accident", Frequency: 1}}
	return v
}

func newController(t *testing.T, snap Values, opts ControllerOptions) *Controller {
	t.Helper()
	resolved, err := Resolve(Catalog(), Visibility{})
	require.NoError(t, err)
	c, err := NewController(resolved, snap, opts)
	require.NoError(t, err)
	return c
}

func TestNewControllerStringifies(t *testing.T) {
	snap := snapshot()
	snap["salaryCap"] = 90000
	snap[KeyGodMode] = true
	c := newController(t, snap, ControllerOptions{})

	assert.Equal(t, "90", c.Value("salaryCap"))
	assert.Equal(t, `[false,"0"]`, c.Value("difficulty"))
	assert.Equal(t, "[7,7,7,7]", c.Value("numGamesPlayoffSeries"))
	assert.Equal(t, "", c.Value("numGamesDiv"))

	st := c.Snapshot()
	assert.True(t, st.GodMode)
	assert.Equal(t, PresetDefault, st.Preset)
	_, isString := st.Strings[KeyInjuries]
	assert.False(t, isString, "structured keys have no string form")
	assert.Len(t, st.Injuries, 1)
}

func TestNewControllerRejectsBadSnapshot(t *testing.T) {
	snap := snapshot()
	snap["numGames"] = "lots"
	resolved, err := Resolve(Catalog(), Visibility{})
	require.NoError(t, err)
	_, err = NewController(resolved, snap, ControllerOptions{})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "numGames", fe.Key)

	snap = snapshot()
	snap[KeyInjuries] = "not a table"
	_, err = NewController(resolved, snap, ControllerOptions{})
	assert.ErrorContains(t, err, "injuries expects")
}

func TestHandleChange(t *testing.T) {
	dirty := 0
	c := newController(t, snapshot(), ControllerOptions{OnDirty: func() { dirty++ }})

	c.HandleChange("budget", KindBool)(ChangeEvent{Checked: false})
	assert.Equal(t, "false", c.Value("budget"))

	c.HandleChange("numGames", KindInt)(ChangeEvent{Value: "60"})
	assert.Equal(t, "60", c.Value("numGames"))
	assert.Equal(t, 2, dirty)
}

func TestHandleChangeFloatValuesOrCustom(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})
	change := c.HandleChange("difficulty", KindFloatValuesOrCustom)

	change(ChangeEvent{Target: TargetText, Value: "0.37"})
	assert.Equal(t, `[true,"0.37"]`, c.Value("difficulty"))

	change(ChangeEvent{Target: TargetSelect, Value: "0.25"})
	assert.Equal(t, `[false,"0.25"]`, c.Value("difficulty"))

	change(ChangeEvent{Target: TargetSelect, Value: CustomOptionKey})
	assert.Equal(t, `[true,"0.25"]`, c.Value("difficulty"), "switching to custom keeps the last value")
}

func TestHandleChangeRaw(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})

	deaths := []rows.TragicDeath{{Reason: "Meteor", Frequency: 2}}
	require.NoError(t, c.HandleChangeRaw(KeyTragicDeaths)(deaths))
	deaths[0].Reason = "changed"
	assert.Equal(t, "Meteor", c.Snapshot().TragicDeaths[0].Reason)

	info := &bioinfo.PlayerBioInfo{Frequencies: bioinfo.Weights{"USA": 1}}
	require.NoError(t, c.HandleChangeRaw(KeyPlayerBioInfo)(info))
	assert.Equal(t, bioinfo.Weights{"USA": 1}, c.Snapshot().PlayerBioInfo.Frequencies)

	assert.Error(t, c.HandleChangeRaw(KeyInjuries)(deaths))
	assert.Error(t, c.HandleChangeRaw("numGames")(3))
}

func TestSetGodModeRemembersPast(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})
	c.SetGodMode(true)
	c.SetGodMode(false)
	st := c.Snapshot()
	assert.False(t, st.GodMode)
	assert.True(t, st.GodModeInPast)
}

func TestPresetTripWire(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})

	require.NoError(t, c.ApplyPreset("1965"))
	assert.Equal(t, "1965", c.Preset())
	assert.Equal(t, "115.2", c.Value("pace"))
	assert.Equal(t, "false", c.Value("threePointers"))

	c.HandleChange("numGames", KindInt)(ChangeEvent{Value: "70"})
	assert.Equal(t, "1965", c.Preset(), "untouched keys keep the preset")

	c.HandleChange("pace", KindFloat)(ChangeEvent{Value: "110"})
	assert.Equal(t, PresetDefault, c.Preset())
	assert.Equal(t, "0", c.Value("threePointTendencyFactor"), "other preset values stay")

	assert.ErrorContains(t, c.ApplyPreset("1850"), "unknown game simulation preset")
}

func TestReset(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})
	assert.False(t, c.CanReset())
	assert.Error(t, c.Reset("numGames"))

	snap := snapshot()
	snap["numGames"] = 50
	c = newController(t, snap, ControllerOptions{Defaults: DefaultValues()})
	require.True(t, c.CanReset())
	require.NoError(t, c.Reset("numGames"))
	assert.Equal(t, "82", c.Value("numGames"))
	require.NoError(t, c.Reset(KeyInjuries))
	assert.Nil(t, c.Snapshot().Injuries)
	assert.Error(t, c.Reset("nope"))
}

func TestSnapshotRestore(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})
	before := c.Snapshot()
	c.HandleChange("numGames", KindInt)(ChangeEvent{Value: "10"})
	c.SetGodMode(true)

	c.Restore(before)
	assert.Equal(t, "82", c.Value("numGames"))
	assert.False(t, c.Snapshot().GodMode)
}

func TestBuildControl(t *testing.T) {
	c := newController(t, snapshot(), ControllerOptions{})
	st := c.Snapshot()
	lookup := func(key string) Descriptor {
		d, ok := c.Descriptor(key)
		require.True(t, ok, key)
		return d
	}

	salary := BuildControl(lookup("salaryCap"), st, RenderContext{})
	assert.Equal(t, ShapeText, salary.Shape)
	assert.Equal(t, "$", salary.Prefix)
	assert.Equal(t, "M", salary.Suffix)
	assert.True(t, salary.Disabled)
	assert.Equal(t, "This setting can only be changed in God Mode.", salary.Tooltip)
	assert.False(t, salary.Resettable)

	numGames := BuildControl(lookup("numGames"), st, RenderContext{NewLeague: true, OnReset: func(string) error { return nil }})
	assert.False(t, numGames.Disabled)
	assert.Empty(t, numGames.Tooltip)
	assert.True(t, numGames.Resettable)

	assert.Equal(t, ShapeCheckbox, BuildControl(lookup("budget"), st, RenderContext{}).Shape)
	assert.Equal(t, ShapeSelect, BuildControl(lookup("salaryCapType"), st, RenderContext{}).Shape)
	assert.Equal(t, ShapeCustom, BuildControl(lookup(KeyInjuries), st, RenderContext{}).Shape)
	assert.Equal(t, ShapeCustom, BuildControl(lookup(KeyStopOnInjury), st, RenderContext{}).Shape)

	trade := BuildControl(lookup("tradeDeadline"), st, RenderContext{})
	assert.Equal(t, ShapeRange, trade.Shape)
	assert.Equal(t, "60%", trade.PercentLabel)

	diff := BuildControl(lookup("difficulty"), st, RenderContext{})
	assert.Equal(t, ShapeSelectOrCustom, diff.Shape)
	assert.Equal(t, "0", diff.Selected)

	c.HandleChange("difficulty", KindFloatValuesOrCustom)(ChangeEvent{Target: TargetText, Value: "0.37"})
	diff = BuildControl(lookup("difficulty"), c.Snapshot(), RenderContext{})
	assert.Equal(t, CustomOptionKey, diff.Selected)
	assert.Equal(t, "0.37", diff.CustomText)

	st.GodMode = true
	assert.False(t, BuildControl(lookup("salaryCap"), st, RenderContext{}).Disabled)
}
