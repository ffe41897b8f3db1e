package bioinfo

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// Merge expands raw overrides against the defaults into the effective value of
// every country. Countries come from raw.Frequencies when set, otherwise from
// the default frequencies. Rows are ordered by name.
func Merge(raw *PlayerBioInfo, d Defaults) Draft {
	if raw == nil {
		raw = &PlayerBioInfo{}
	}
	var def DefaultOverride
	if raw.Default != nil {
		def = *raw.Default
	}

	baseColleges := d.Colleges
	if def.Colleges != nil {
		baseColleges = def.Colleges
	}
	baseRaces := d.DefaultRaces
	if def.Races != nil {
		baseRaces = def.Races
	}

	draft := Draft{
		DefaultColleges: toRows(baseColleges),
		DefaultRaces:    toRows(baseRaces),
	}
	if def.FractionSkipCollege != nil {
		draft.DefaultFractionSkipCollege = rows.FormatNumber(*def.FractionSkipCollege)
	}

	freqs := d.Frequencies
	if raw.Frequencies != nil {
		freqs = raw.Frequencies
	}
	for _, country := range sortedKeys(freqs) {
		ov := raw.Countries[country]
		c := CountryDraft{Country: country, Frequency: rows.FormatNumber(freqs[country])}

		if ov.Names != nil {
			c.FirstNames, c.LastNames = toRows(ov.Names.First), toRows(ov.Names.Last)
		} else {
			names := d.Names[country]
			c.FirstNames, c.LastNames = toRows(names.First), toRows(names.Last)
			c.DefaultNames = true
		}

		if ov.Colleges != nil {
			c.Colleges = toRows(ov.Colleges)
		} else {
			c.Colleges = toRows(baseColleges)
			c.DefaultColleges = true
		}

		if ov.Races != nil {
			c.Races = toRows(ov.Races)
		} else {
			c.Races = toRows(expectedRaces(def.Races, d, country))
			c.DefaultRaces = true
		}

		if ov.FractionSkipCollege != nil {
			c.FractionSkipCollege = rows.FormatNumber(*ov.FractionSkipCollege)
		}

		if ov.Flag != nil {
			c.Flag = *ov.Flag
		} else {
			c.Flag = d.Flags[country]
			c.DefaultFlag = true
		}
		draft.Countries = append(draft.Countries, c)
	}
	return draft
}

// expectedRaces is what a country without a races override uses.
func expectedRaces(defaultRaces Weights, d Defaults, country string) Weights {
	if defaultRaces != nil {
		return defaultRaces
	}
	return d.racesFor(country)
}

// Prune reduces a draft to the overrides that differ from what Merge would
// produce without them. The draft must already be valid.
func Prune(draft Draft, d Defaults) (*PlayerBioInfo, error) {
	out := &PlayerBioInfo{}

	var def DefaultOverride
	defColleges, err := toWeights(messages.BioDefaultScope, draft.DefaultColleges)
	if err != nil {
		return nil, err
	}
	if !equalWeights(defColleges, d.Colleges) {
		def.Colleges = defColleges
	}
	defRaces, err := toWeights(messages.BioDefaultScope, draft.DefaultRaces)
	if err != nil {
		return nil, err
	}
	if !equalWeights(defRaces, d.DefaultRaces) {
		def.Races = defRaces
	}
	if def.FractionSkipCollege, err = parseFraction(messages.BioDefaultScope, draft.DefaultFractionSkipCollege); err != nil {
		return nil, err
	}
	if !def.IsZero() {
		out.Default = &def
	}

	freqs := make(Weights, len(draft.Countries))
	countries := make(map[string]CountryOverride)
	for _, c := range draft.Countries {
		name := strings.TrimSpace(c.Country)
		freq, ok := rows.PositiveNumber(c.Frequency)
		if !ok {
			return nil, fmt.Errorf(messages.BioCountryFrequencyFmt, name)
		}
		freqs[name] = freq

		var ov CountryOverride
		first, err := toWeights(name, c.FirstNames)
		if err != nil {
			return nil, err
		}
		last, err := toWeights(name, c.LastNames)
		if err != nil {
			return nil, err
		}
		defaultNames := d.Names[name]
		if !equalWeights(first, defaultNames.First) || !equalWeights(last, defaultNames.Last) {
			ov.Names = &Names{First: first, Last: last}
		}

		colleges, err := toWeights(name, c.Colleges)
		if err != nil {
			return nil, err
		}
		if !equalWeights(colleges, defColleges) {
			ov.Colleges = colleges
		}

		races, err := toWeights(name, c.Races)
		if err != nil {
			return nil, err
		}
		if !equalWeights(races, expectedRaces(def.Races, d, name)) {
			ov.Races = races
		}

		if ov.FractionSkipCollege, err = parseFraction(name, c.FractionSkipCollege); err != nil {
			return nil, err
		}

		if c.Flag != d.Flags[name] {
			flag := c.Flag
			ov.Flag = &flag
		}

		if !ov.IsZero() {
			countries[name] = ov
		}
	}
	if !equalWeights(freqs, d.Frequencies) {
		out.Frequencies = freqs
	}
	if len(countries) > 0 {
		out.Countries = countries
	}
	return out, nil
}

// equalWeights compares two weight tables by label and value. Order never
// matters and nil equals empty.
func equalWeights(a, b Weights) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || va != vb {
			return false
		}
	}
	return true
}

func toRows(w Weights) []Row {
	out := make([]Row, 0, len(w))
	for _, k := range sortedKeys(w) {
		out = append(out, Row{Name: k, Frequency: rows.FormatNumber(w[k])})
	}
	return out
}

// toWeights parses rows; a repeated label keeps its last frequency.
func toWeights(scope string, rs []Row) (Weights, error) {
	out := make(Weights, len(rs))
	for _, r := range rs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf(messages.BioRowNameBlankFmt, scope)
		}
		f, ok := rows.PositiveNumber(r.Frequency)
		if !ok {
			return nil, fmt.Errorf(messages.BioRowFrequencyFmt, scope, name)
		}
		out[name] = f
	}
	return out, nil
}

// parseFraction parses a blank-or-[0,1] fraction; blank yields nil.
func parseFraction(scope, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return nil, fmt.Errorf(messages.BioFractionSkipCollegeFmt, scope)
	}
	return &f, nil
}

func sortedKeys(w Weights) []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
