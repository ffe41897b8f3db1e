package worker

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

//go:embed defaults.json
var defaultsJSON []byte

type defaultsFile struct {
	Injuries     []rows.Injury               `json:"injuries"`
	TragicDeaths []rows.TragicDeath          `json:"tragicDeaths"`
	Bio          map[Gender]bioinfo.Defaults `json:"playerBioInfo"`
}

// Local answers worker calls in process from built-in data.
type Local struct {
	data defaultsFile
}

var _ Worker = (*Local)(nil)

// NewLocal decodes the embedded defaults.
func NewLocal() (*Local, error) {
	var data defaultsFile
	if err := json.Unmarshal(defaultsJSON, &data); err != nil {
		return nil, fmt.Errorf(messages.WorkerDecodeDefaultsFmt, err)
	}
	return &Local{data: data}, nil
}

// DefaultInjuries returns a copy of the built-in injury table.
func (w *Local) DefaultInjuries(ctx context.Context) ([]rows.Injury, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(w.data.Injuries), nil
}

// DefaultTragicDeaths returns a copy of the built-in tragic death table.
func (w *Local) DefaultTragicDeaths(ctx context.Context) ([]rows.TragicDeath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(w.data.TragicDeaths), nil
}

// PlayerBioInfoDefaults returns a deep copy of the built-in bio data of gender.
func (w *Local) PlayerBioInfoDefaults(ctx context.Context, gender Gender) (bioinfo.Defaults, error) {
	if err := ctx.Err(); err != nil {
		return bioinfo.Defaults{}, err
	}
	d, ok := w.data.Bio[gender]
	if !ok {
		return bioinfo.Defaults{}, fmt.Errorf(messages.WorkerUnknownGenderFmt, gender)
	}
	return cloneDefaults(d), nil
}

func cloneDefaults(d bioinfo.Defaults) bioinfo.Defaults {
	out := bioinfo.Defaults{
		Frequencies:         d.Frequencies.Clone(),
		DefaultRaces:        d.DefaultRaces.Clone(),
		Colleges:            d.Colleges.Clone(),
		FractionSkipCollege: maps.Clone(d.FractionSkipCollege),
		Flags:               maps.Clone(d.Flags),
		Names:               make(map[string]bioinfo.Names, len(d.Names)),
		Races:               make(map[string]bioinfo.Weights, len(d.Races)),
	}
	for k, n := range d.Names {
		out.Names[k] = bioinfo.Names{First: n.First.Clone(), Last: n.Last.Clone()}
	}
	for k, r := range d.Races {
		out.Races[k] = r.Clone()
	}
	return out
}

// PlayerBioInfoLoader adapts the worker to a bio info editor loader.
func PlayerBioInfoLoader(w Worker, gender Gender) bioinfo.Loader {
	return func(ctx context.Context) (bioinfo.Defaults, error) {
		return w.PlayerBioInfoDefaults(ctx, gender)
	}
}

// InjuriesLoader adapts the worker to an injuries editor loader.
func InjuriesLoader(w Worker) rows.Loader[rows.Injury] {
	return w.DefaultInjuries
}

// TragicDeathsLoader adapts the worker to a tragic deaths editor loader.
func TragicDeathsLoader(w Worker) rows.Loader[rows.TragicDeath] {
	return w.DefaultTragicDeaths
}
