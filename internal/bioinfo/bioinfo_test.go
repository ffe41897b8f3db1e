package bioinfo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekit/leaguesettings/internal/prefs"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

func testDefaults() Defaults {
	return Defaults{
		Frequencies: Weights{"Canada": 2, "USA": 10},
		Names: map[string]Names{
			"Canada": {First: Weights{"Luc": 3, "Sam": 1}, Last: Weights{"Roy": 2}},
			"USA":    {First: Weights{"John": 5}, Last: Weights{"Smith": 4, "Jones": 3}},
			"Japan":  {First: Weights{"Ken": 1}, Last: Weights{"Sato": 1}},
		},
		Races:        map[string]Weights{"Japan": {"asian": 1}},
		DefaultRaces: Weights{"white": 3, "black": 2},
		Colleges:     Weights{"State": 1, "Tech": 2},
		Flags:        map[string]string{"Canada": "ca.svg", "USA": "us.svg"},
	}
}

func loader(d Defaults) Loader {
	return func(context.Context) (Defaults, error) { return d, nil }
}

func TestMergeWithoutOverridesMarksEverythingDefault(t *testing.T) {
	draft := Merge(nil, testDefaults())

	require.Len(t, draft.Countries, 2)
	assert.Equal(t, "Canada", draft.Countries[0].Country)
	assert.Equal(t, "2", draft.Countries[0].Frequency)
	for _, c := range draft.Countries {
		assert.True(t, c.DefaultNames, c.Country)
		assert.True(t, c.DefaultColleges, c.Country)
		assert.True(t, c.DefaultRaces, c.Country)
		assert.True(t, c.DefaultFlag, c.Country)
	}
	assert.Equal(t, []Row{{Name: "Luc", Frequency: "3"}, {Name: "Sam", Frequency: "1"}}, draft.Countries[0].FirstNames)
	assert.Equal(t, []Row{{Name: "State", Frequency: "1"}, {Name: "Tech", Frequency: "2"}}, draft.DefaultColleges)
}

func TestMergeAppliesOverrides(t *testing.T) {
	flag := "custom.png"
	raw := &PlayerBioInfo{
		Frequencies: Weights{"Japan": 1},
		Default:     &DefaultOverride{Colleges: Weights{"Only U": 1}},
		Countries: map[string]CountryOverride{
			"Japan": {Flag: &flag, Races: Weights{"asian": 5}},
		},
	}
	draft := Merge(raw, testDefaults())

	require.Len(t, draft.Countries, 1)
	japan := draft.Countries[0]
	assert.Equal(t, "Japan", japan.Country)
	assert.False(t, japan.DefaultFlag)
	assert.Equal(t, "custom.png", japan.Flag)
	assert.False(t, japan.DefaultRaces)
	assert.True(t, japan.DefaultColleges)
	assert.Equal(t, []Row{{Name: "Only U", Frequency: "1"}}, japan.Colleges)
	assert.True(t, japan.DefaultNames)
}

func TestPruneOfUnchangedMergeIsEmpty(t *testing.T) {
	d := testDefaults()
	out, err := Prune(Merge(nil, d), d)
	require.NoError(t, err)
	assert.Equal(t, &PlayerBioInfo{}, out)
}

func TestPruneMergeRoundTrip(t *testing.T) {
	d := testDefaults()
	frac := 0.25
	flag := ""
	raw := &PlayerBioInfo{
		Frequencies: Weights{"Canada": 4, "Japan": 1},
		Default:     &DefaultOverride{Races: Weights{"white": 1}},
		Countries: map[string]CountryOverride{
			"Canada": {Names: &Names{First: Weights{"Guy": 1}, Last: Weights{"Roy": 2}}, FractionSkipCollege: &frac, Flag: &flag},
			"Japan":  {Colleges: Weights{"Tokyo U": 3}},
		},
	}
	first, err := Prune(Merge(raw, d), d)
	require.NoError(t, err)
	second, err := Prune(Merge(first, d), d)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("prune is not stable (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(raw, first); diff != "" {
		t.Fatalf("prune lost overrides (-raw +pruned):\n%s", diff)
	}
}

func TestValidateDraftDuplicateCountry(t *testing.T) {
	draft := Merge(nil, testDefaults())
	draft.Countries[1].Country = "Canada"

	err := ValidateDraft(draft)
	require.Error(t, err)
	assert.Equal(t, `Country names must be unique, but you have multiple countries named "Canada"`, err.Error())
}

func TestValidateDraftRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		want   string
	}{
		{"no countries", func(d *Draft) { d.Countries = nil }, "at least one country"},
		{"bad frequency", func(d *Draft) { d.Countries[0].Frequency = "0" }, "Canada"},
		{"no last names", func(d *Draft) { d.Countries[0].LastNames = nil }, "Canada"},
		{"blank college", func(d *Draft) { d.Countries[1].Colleges = []Row{{Name: " ", Frequency: "1"}} }, "USA"},
		{"fraction out of range", func(d *Draft) { d.DefaultFractionSkipCollege = "1.5" }, "Default"},
		{"no default races", func(d *Draft) { d.DefaultRaces = nil }, "race"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Merge(nil, testDefaults())
			tt.mutate(&draft)
			err := ValidateDraft(draft)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), strings.ToLower(tt.want))
		})
	}
}

func TestSortRowsByFrequency(t *testing.T) {
	rs := []Row{{"b", "1"}, {"a", "x"}, {"c", "5"}, {"d", "1"}}
	SortRows(rs, SortByFrequency)
	assert.Equal(t, []Row{{"c", "5"}, {"b", "1"}, {"d", "1"}, {"a", "x"}}, rs)
}

func TestEditorSortPreferencePersists(t *testing.T) {
	store := prefs.NewMemory()
	e := NewEditor(loader(testDefaults()), nil, store, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	require.NoError(t, e.SortBy(SortCountries, SortByFrequency))
	assert.Equal(t, "USA", e.Draft().Countries[0].Country)
	assert.Equal(t, SortByFrequency, SortOrderFor(store, SortCountries))

	other := NewEditor(loader(testDefaults()), nil, store, nil)
	require.NoError(t, other.Open(context.Background(), nil))
	assert.Equal(t, "USA", other.Draft().Countries[0].Country)
}

func TestEditorOpenFailure(t *testing.T) {
	e := NewEditor(func(context.Context) (Defaults, error) { return Defaults{}, errors.New("boom") }, nil, nil, nil)
	err := e.Open(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, rows.StatusClosed, e.Status())
}

func TestEditorPageCommitAndCancel(t *testing.T) {
	e := NewEditor(loader(testDefaults()), nil, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	require.NoError(t, e.OpenPage(PageNames, 0))
	assert.Equal(t, PageNames, e.Page())
	assert.Error(t, e.Save(), "save is only allowed on the root page")
	require.NoError(t, e.SetPageRows(ListFirst, []Row{{Name: "Guy", Frequency: "1"}}))
	require.NoError(t, e.CancelPage())
	assert.True(t, e.Draft().Countries[0].DefaultNames)
	assert.False(t, e.Dirty())

	require.NoError(t, e.OpenPage(PageNames, 0))
	require.NoError(t, e.SetPageRows(ListFirst, []Row{{Name: "Guy", Frequency: "1"}}))
	require.NoError(t, e.CommitPage())
	canada := e.Draft().Countries[0]
	assert.False(t, canada.DefaultNames)
	assert.Equal(t, []Row{{Name: "Guy", Frequency: "1"}}, canada.FirstNames)
	assert.True(t, e.Dirty())
}

func TestEditorCommitPageKeepsInvalidEdits(t *testing.T) {
	e := NewEditor(loader(testDefaults()), nil, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	require.NoError(t, e.OpenPage(PageColleges, 1))
	require.NoError(t, e.SetPageRows(ListMain, []Row{{Name: "A", Frequency: "-1"}}))
	err := e.CommitPage()
	require.Error(t, err)
	assert.Equal(t, PageColleges, e.Page())
	assert.Equal(t, []Row{{Name: "A", Frequency: "-1"}}, e.PageRows(ListMain))
}

func TestEditorDefaultCollegesPropagate(t *testing.T) {
	e := NewEditor(loader(testDefaults()), nil, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	require.NoError(t, e.OpenPage(PageColleges, 0))
	require.NoError(t, e.SetPageRows(ListMain, []Row{{Name: "McGill", Frequency: "1"}}))
	require.NoError(t, e.CommitPage())

	require.NoError(t, e.OpenPage(PageColleges, DefaultScope))
	require.NoError(t, e.SetPageRows(ListMain, []Row{{Name: "Big U", Frequency: "2"}}))
	require.NoError(t, e.CommitPage())

	draft := e.Draft()
	assert.Equal(t, []Row{{Name: "McGill", Frequency: "1"}}, draft.Countries[0].Colleges)
	assert.Equal(t, []Row{{Name: "Big U", Frequency: "2"}}, draft.Countries[1].Colleges)
	assert.True(t, draft.Countries[1].DefaultColleges)
}

func TestEditorCountriesPage(t *testing.T) {
	e := NewEditor(loader(testDefaults()), nil, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	require.NoError(t, e.OpenPage(PageCountries, DefaultScope))
	require.NoError(t, e.AddCountry("Japan", "3"))
	require.NoError(t, e.CommitPage())

	draft := e.Draft()
	require.Len(t, draft.Countries, 3)
	japan := draft.Countries[1]
	assert.Equal(t, "Japan", japan.Country)
	assert.Equal(t, []Row{{Name: "asian", Frequency: "1"}}, japan.Races)
	assert.Equal(t, []Row{{Name: "Ken", Frequency: "1"}}, japan.FirstNames)

	require.NoError(t, e.OpenPage(PageCountries, DefaultScope))
	require.NoError(t, e.AddCountry("Canada", "1"))
	err := e.CommitPage()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `named "Canada"`)
}

func TestEditorSaveEmitsPrunedValue(t *testing.T) {
	var saved *PlayerBioInfo
	e := NewEditor(loader(testDefaults()), func(info *PlayerBioInfo) { saved = info }, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	require.NoError(t, e.OpenPage(PageFlag, 1))
	require.NoError(t, e.SetPageFlag("stars.svg"))
	require.NoError(t, e.CommitPage())
	require.NoError(t, e.Save())

	require.NotNil(t, saved)
	require.Contains(t, saved.Countries, "USA")
	assert.Equal(t, "stars.svg", *saved.Countries["USA"].Flag)
	assert.Nil(t, saved.Frequencies)
	assert.Equal(t, rows.StatusClosed, e.Status())
}

func TestEditorImportExport(t *testing.T) {
	e := NewEditor(loader(testDefaults()), nil, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))

	err := e.Import(strings.NewReader(`{"gameAttributes":{}}`))
	require.Error(t, err)
	assert.Len(t, e.Draft().Countries, 2)

	in := `{"gameAttributes":{"playerBioInfo":{"frequencies":{"USA":1}}}}`
	require.NoError(t, e.Import(strings.NewReader(in)))
	require.Len(t, e.Draft().Countries, 1)
	assert.True(t, e.Dirty())

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Weights{"USA": 1}, decoded.Frequencies)
}

func TestEditorCancelAsksWhenDirty(t *testing.T) {
	e := NewEditor(loader(testDefaults()), nil, nil, nil)
	require.NoError(t, e.Open(context.Background(), nil))
	require.NoError(t, e.ResetAll())

	assert.False(t, e.Cancel(func() bool { return false }))
	assert.Equal(t, rows.StatusReady, e.Status())
	assert.True(t, e.Cancel(func() bool { return true }))
	assert.Equal(t, rows.StatusClosed, e.Status())
}
