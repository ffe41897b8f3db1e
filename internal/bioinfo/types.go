// Package bioinfo models the player bio info tree of a league: which countries
// players come from, their names, colleges and races. Raw league settings only
// store overrides of the built-in defaults; Merge expands them into an editable
// Draft and Prune reduces a Draft back to the minimal overrides.
package bioinfo

import (
	"maps"
	"slices"
)

// Weights maps a label (country, name, college, race) to a relative frequency.
type Weights map[string]float64

// Clone returns a copy of w, preserving nil.
func (w Weights) Clone() Weights {
	if w == nil {
		return nil
	}
	return maps.Clone(w)
}

// Names holds the first and last name pools of a country.
type Names struct {
	First Weights `json:"first" yaml:"first" toml:"first"`
	Last  Weights `json:"last" yaml:"last" toml:"last"`
}

// CountryOverride replaces individual facets of the built-in defaults for one country.
// A nil facet inherits the default.
type CountryOverride struct {
	Colleges            Weights  `json:"colleges,omitempty" yaml:"colleges,omitempty" toml:"colleges,omitempty"`
	FractionSkipCollege *float64 `json:"fractionSkipCollege,omitempty" yaml:"fractionSkipCollege,omitempty" toml:"fractionSkipCollege,omitempty"`
	Races               Weights  `json:"races,omitempty" yaml:"races,omitempty" toml:"races,omitempty"`
	Names               *Names   `json:"names,omitempty" yaml:"names,omitempty" toml:"names,omitempty"`
	Flag                *string  `json:"flag,omitempty" yaml:"flag,omitempty" toml:"flag,omitempty"`
}

// IsZero reports whether the override changes nothing.
func (o CountryOverride) IsZero() bool {
	return o.Colleges == nil && o.FractionSkipCollege == nil && o.Races == nil && o.Names == nil && o.Flag == nil
}

// DefaultOverride replaces the league-wide defaults shared by every country.
type DefaultOverride struct {
	Colleges            Weights  `json:"colleges,omitempty" yaml:"colleges,omitempty" toml:"colleges,omitempty"`
	FractionSkipCollege *float64 `json:"fractionSkipCollege,omitempty" yaml:"fractionSkipCollege,omitempty" toml:"fractionSkipCollege,omitempty"`
	Races               Weights  `json:"races,omitempty" yaml:"races,omitempty" toml:"races,omitempty"`
}

// IsZero reports whether the override changes nothing.
func (o DefaultOverride) IsZero() bool {
	return o.Colleges == nil && o.FractionSkipCollege == nil && o.Races == nil
}

// PlayerBioInfo is the persisted form: overrides only.
type PlayerBioInfo struct {
	Countries   map[string]CountryOverride `json:"countries,omitempty" yaml:"countries,omitempty" toml:"countries,omitempty"`
	Default     *DefaultOverride           `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	Frequencies Weights                    `json:"frequencies,omitempty" yaml:"frequencies,omitempty" toml:"frequencies,omitempty"`
}

// Defaults is the built-in data the worker provides for one gender.
type Defaults struct {
	Frequencies         Weights            `json:"frequencies"`
	Names               map[string]Names   `json:"names"`
	Races               map[string]Weights `json:"races"`
	DefaultRaces        Weights            `json:"defaultRaces"`
	Colleges            Weights            `json:"colleges"`
	FractionSkipCollege map[string]float64 `json:"fractionSkipCollege"`
	Flags               map[string]string  `json:"flags"`
}

// racesFor returns the default races of country.
func (d Defaults) racesFor(country string) Weights {
	if r, ok := d.Races[country]; ok {
		return r
	}
	return d.DefaultRaces
}

// Row is an editable weighted label. Frequency stays as typed text.
type Row struct {
	Name      string
	Frequency string
}

// CountryDraft is the effective, display-ready data of one country.
// Each DefaultX flag reports whether the facet came from the defaults.
type CountryDraft struct {
	Country   string
	Frequency string

	FirstNames   []Row
	LastNames    []Row
	DefaultNames bool

	Colleges        []Row
	DefaultColleges bool

	Races        []Row
	DefaultRaces bool

	// FractionSkipCollege is blank when the country inherits the default.
	FractionSkipCollege string

	Flag        string
	DefaultFlag bool
}

// Draft is the editable form of the whole tree.
type Draft struct {
	Countries []CountryDraft

	DefaultColleges []Row
	DefaultRaces    []Row
	// DefaultFractionSkipCollege is blank when the built-in per-country values apply.
	DefaultFractionSkipCollege string
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	out := Draft{
		DefaultColleges:            slices.Clone(d.DefaultColleges),
		DefaultRaces:               slices.Clone(d.DefaultRaces),
		DefaultFractionSkipCollege: d.DefaultFractionSkipCollege,
	}
	out.Countries = make([]CountryDraft, len(d.Countries))
	for i, c := range d.Countries {
		out.Countries[i] = c.Clone()
	}
	return out
}

// Clone returns a deep copy of c.
func (c CountryDraft) Clone() CountryDraft {
	c.FirstNames = slices.Clone(c.FirstNames)
	c.LastNames = slices.Clone(c.LastNames)
	c.Colleges = slices.Clone(c.Colleges)
	c.Races = slices.Clone(c.Races)
	return c
}
