package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsConsistent(t *testing.T) {
	schema := Catalog()
	defaults := DefaultValues()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	require.NoError(t, CheckCatalog(schema, keys))

	categories := make(map[Category]bool)
	for _, c := range Categories {
		categories[c] = true
	}
	for _, d := range schema {
		assert.True(t, categories[d.Category], "%s has unknown category %q", d.Key, d.Category)
		assert.NotEmpty(t, d.Name, d.Key)
		assert.Contains(t, Kinds, d.Kind, d.Key)
	}
}

func TestCatalogDefaultsStringify(t *testing.T) {
	for _, d := range Catalog() {
		if IsSpecialKey(d.Key) {
			continue
		}
		s, err := d.Codec().Stringify(d.Default)
		require.NoError(t, err, d.Key)
		_, err = d.Codec().Parse(s)
		require.NoError(t, err, d.Key)
	}
}

func TestCatalogDefaultsPassValidators(t *testing.T) {
	defaults := DefaultValues()
	names := make(map[string]string)
	for _, d := range Catalog() {
		if other, ok := names[d.Name]; ok {
			assert.Equal(t, other, d.Key, "name %q is shared by two settings", d.Name)
		}
		names[d.Name] = d.Key
		if len(d.Options) > 0 && d.Kind == KindString {
			keys := make([]string, len(d.Options))
			for i, o := range d.Options {
				keys[i] = o.Key
			}
			assert.Contains(t, keys, d.Default, d.Key)
		}
		if d.Validator == nil {
			continue
		}
		err := d.Validator(context.Background(), ValidatorInput{Value: d.Default, Output: defaults, Original: defaults})
		assert.NoError(t, err, d.Key)
	}
}

func TestCatalogLeagueStageVariants(t *testing.T) {
	keys := func(v Visibility) []string {
		resolved, err := Resolve(Catalog(), v)
		require.NoError(t, err)
		return Keys(resolved)
	}
	existing := keys(Visibility{})
	created := keys(Visibility{NewLeague: true})
	realLeague := keys(Visibility{NewLeague: true, RealPlayers: true})

	assert.NotContains(t, existing, "giveMeWorstRoster")
	assert.Contains(t, created, "giveMeWorstRoster")
	assert.Contains(t, existing, "thanosCooldownEnd")
	assert.NotContains(t, created, "thanosCooldownEnd")
	assert.Contains(t, created, "numPlayersPerTeamGenerated")
	assert.NotContains(t, realLeague, "numPlayersPerTeamGenerated")
	assert.Contains(t, realLeague, "realStats")
	assert.NotContains(t, realLeague, "heightFactor")
}

func TestCheckCatalogReportsProblems(t *testing.T) {
	schema := []Descriptor{
		{Key: "a", Kind: KindBool, Partners: []string{"missing"}},
		{Key: "b", Kind: KindInt},
	}
	err := CheckCatalog(schema, []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown partner "missing"`)
	assert.Contains(t, err.Error(), `missing "b"`)
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := Catalog()
	for i := range first {
		if first[i].Key == "salaryCapType" {
			first[i].Options[0].Label = "changed"
		}
	}
	for _, d := range Lookup("salaryCapType") {
		assert.NotEqual(t, "changed", d.Options[0].Label)
	}
}

func TestPresets(t *testing.T) {
	names := Presets()
	require.NotEmpty(t, names)
	assert.Equal(t, PresetDefault, names[0])
	assert.Equal(t, "2025", names[1])

	for _, name := range names[1:] {
		values, ok := PresetValues(name)
		require.True(t, ok)
		for key := range values {
			assert.NotEmpty(t, Lookup(key), "preset %s sets unknown %s", name, key)
		}
	}
	_, ok := PresetValues("1850")
	assert.False(t, ok)
}
