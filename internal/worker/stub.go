package worker

import (
	"context"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// Stub is a Worker whose calls are individual functions. A nil function
// succeeds with a zero result. It records the playoff settings it was asked about.
type Stub struct {
	Injuries      func(ctx context.Context) ([]rows.Injury, error)
	TragicDeaths  func(ctx context.Context) ([]rows.TragicDeath, error)
	BioDefaults   func(ctx context.Context, gender Gender) (bioinfo.Defaults, error)
	Playoffs      func(ctx context.Context, s PlayoffSettings) error
	PointsFormula func(ctx context.Context, formula string) error

	PlayoffCalls []PlayoffSettings
}

var _ Worker = (*Stub)(nil)

func (s *Stub) DefaultInjuries(ctx context.Context) ([]rows.Injury, error) {
	if s.Injuries == nil {
		return nil, nil
	}
	return s.Injuries(ctx)
}

func (s *Stub) DefaultTragicDeaths(ctx context.Context) ([]rows.TragicDeath, error) {
	if s.TragicDeaths == nil {
		return nil, nil
	}
	return s.TragicDeaths(ctx)
}

func (s *Stub) PlayerBioInfoDefaults(ctx context.Context, gender Gender) (bioinfo.Defaults, error) {
	if s.BioDefaults == nil {
		return bioinfo.Defaults{}, nil
	}
	return s.BioDefaults(ctx, gender)
}

func (s *Stub) ValidatePlayoffSettings(ctx context.Context, p PlayoffSettings) error {
	s.PlayoffCalls = append(s.PlayoffCalls, p)
	if s.Playoffs == nil {
		return nil
	}
	return s.Playoffs(ctx, p)
}

func (s *Stub) ValidatePointsFormula(ctx context.Context, formula string) error {
	if s.PointsFormula == nil {
		return nil
	}
	return s.PointsFormula(ctx, formula)
}
