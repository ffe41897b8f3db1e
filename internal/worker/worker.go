// Package worker is the boundary to the simulation worker: default data for
// the structured editors and the validations only the simulation can judge.
package worker

import (
	"context"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// Gender selects which built-in player bio data applies.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// PlayoffSettings is the input of a playoff structure check.
type PlayoffSettings struct {
	NumRounds      int
	NumPlayoffByes int
	NumActiveTeams int
	PlayIn         bool
	ByConf         bool
	NumConfs       int
}

// Worker is a request/response collaborator with no retry policy. Every call
// either succeeds or returns an error the caller surfaces as-is.
type Worker interface {
	DefaultInjuries(ctx context.Context) ([]rows.Injury, error)
	DefaultTragicDeaths(ctx context.Context) ([]rows.TragicDeath, error)
	PlayerBioInfoDefaults(ctx context.Context, gender Gender) (bioinfo.Defaults, error)
	ValidatePlayoffSettings(ctx context.Context, s PlayoffSettings) error
	ValidatePointsFormula(ctx context.Context, formula string) error
}
