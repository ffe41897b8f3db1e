package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingNeedsGodMode(t *testing.T) {
	assert.False(t, SettingNeedsGodMode(GodModeNone, false))
	assert.False(t, SettingNeedsGodMode(GodModeNone, true))
	assert.True(t, SettingNeedsGodMode(GodModeAlways, true))
	assert.True(t, SettingNeedsGodMode(GodModeAlways, false))
	assert.True(t, SettingNeedsGodMode(GodModeExistingLeagueOnly, false))
	assert.False(t, SettingNeedsGodMode(GodModeExistingLeagueOnly, true))
}

func TestGodModeEnablesEverything(t *testing.T) {
	for _, req := range []GodModeRequirement{GodModeNone, GodModeAlways, GodModeExistingLeagueOnly} {
		for _, newLeague := range []bool{false, true} {
			assert.True(t, SettingIsEnabled(true, newLeague, req), "%q newLeague=%v", req, newLeague)
			first := SettingIsEnabled(false, newLeague, req)
			assert.Equal(t, first, SettingIsEnabled(false, newLeague, req))
		}
	}
	assert.False(t, SettingIsEnabled(false, false, GodModeExistingLeagueOnly))
	assert.True(t, SettingIsEnabled(false, true, GodModeExistingLeagueOnly))
}

func TestResolvePicksOneVariant(t *testing.T) {
	schema := Catalog()

	existing, err := Resolve(schema, Visibility{})
	require.NoError(t, err)
	realLeague, err := Resolve(schema, Visibility{RealPlayers: true, NewLeague: true})
	require.NoError(t, err)

	find := func(resolved []Descriptor, key string) (Descriptor, bool) {
		for _, d := range resolved {
			if d.Key == key {
				return d, true
			}
		}
		return Descriptor{}, false
	}

	draft, ok := find(existing, "draftType")
	require.True(t, ok)
	assert.Len(t, draft.Options, len(draftTypeOptions))
	draft, ok = find(realLeague, "draftType")
	require.True(t, ok)
	assert.Len(t, draft.Options, len(realDraftTypeOptions))

	_, ok = find(existing, "randomization")
	assert.False(t, ok, "randomization only exists for new leagues")
	random, ok := find(realLeague, "randomization")
	require.True(t, ok)
	assert.Equal(t, "debuts", random.Options[1].Key)
}

func TestResolveRejectsOverlappingVariants(t *testing.T) {
	schema := []Descriptor{
		{Key: "a", Kind: KindBool},
		{Key: "a", Kind: KindBool, ShowOnlyIf: func(v Visibility) bool { return v.NewLeague }},
	}
	_, err := Resolve(schema, Visibility{})
	require.NoError(t, err)
	_, err = Resolve(schema, Visibility{NewLeague: true})
	assert.ErrorContains(t, err, `"a" has more than one active variant`)
}

func TestVisibleCategories(t *testing.T) {
	schema := []Descriptor{
		{Category: CategoryUI, Key: "ui", Kind: KindBool},
		{Category: CategoryFinances, Key: "cap", Kind: KindFloat, GodModeRequired: GodModeAlways},
		{Category: CategoryFinances, Key: "hidden", Kind: KindInt, Hidden: true},
		{Category: CategoryDraft, Key: "draft", Kind: KindInt, GodModeRequired: GodModeExistingLeagueOnly},
	}

	groups := VisibleCategories(schema, VisibleOptions{ShowGodModeSettings: true})
	require.Len(t, groups, 3)
	assert.Equal(t, CategoryDraft, groups[0].Category)
	assert.Equal(t, CategoryFinances, groups[1].Category)
	assert.Len(t, groups[1].Settings, 1, "hidden settings are never listed")
	assert.Equal(t, CategoryUI, groups[2].Category)

	groups = VisibleCategories(schema, VisibleOptions{})
	require.Len(t, groups, 1)
	assert.Equal(t, CategoryUI, groups[0].Category)

	groups = VisibleCategories(schema, VisibleOptions{NewLeague: true})
	require.Len(t, groups, 2)
	assert.Equal(t, CategoryDraft, groups[0].Category)

	groups = VisibleCategories(schema, VisibleOptions{GodMode: true})
	assert.Len(t, groups, 3)
}
