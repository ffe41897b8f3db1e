package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

// number returns the numeric value of v. Null values report false.
func number(v any) (float64, bool) {
	f, err := toFloat(v)
	return f, err == nil
}

func positive(_ context.Context, in ValidatorInput) error {
	if f, ok := number(in.Value); ok && f <= 0 {
		return errors.New(messages.ValidatorPositive)
	}
	return nil
}

func nonNegative(_ context.Context, in ValidatorInput) error {
	if f, ok := number(in.Value); ok && f < 0 {
		return errors.New(messages.ValidatorNonNegative)
	}
	return nil
}

func atLeast(lo float64) Validator {
	return func(_ context.Context, in ValidatorInput) error {
		if f, ok := number(in.Value); ok && f < lo {
			return fmt.Errorf(messages.ValidatorAtLeastFmt, rows.FormatNumber(lo))
		}
		return nil
	}
}

func atMost(hi float64) Validator {
	return func(_ context.Context, in ValidatorInput) error {
		if f, ok := number(in.Value); ok && f > hi {
			return fmt.Errorf(messages.ValidatorAtMostFmt, rows.FormatNumber(hi))
		}
		return nil
	}
}

// all runs validators in order and returns the first failure.
func all(vs ...Validator) Validator {
	return func(ctx context.Context, in ValidatorInput) error {
		for _, v := range vs {
			if err := v(ctx, in); err != nil {
				return err
			}
		}
		return nil
	}
}

// compareTo rejects the value when ok(value, other) is false, where other is
// another parsed setting.
func compareTo(key, msg string, ok func(v, other float64) bool) Validator {
	return func(_ context.Context, in ValidatorInput) error {
		v, okV := number(in.Value)
		other, okO := number(in.Output[key])
		if okV && okO && !ok(v, other) {
			return errors.New(msg)
		}
		return nil
	}
}

// positiveInts checks that v is a JSON array of positive integers.
func positiveInts(v any) ([]int, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New(messages.ValidatorMustBeArray)
	}
	out := make([]int, len(arr))
	for i, x := range arr {
		n, err := toInt(x)
		if err != nil || n < 1 {
			return nil, errors.New(messages.ValidatorArrayIntegers)
		}
		out[i] = n
	}
	return out, nil
}

func positiveIntArray(length int) Validator {
	return func(_ context.Context, in ValidatorInput) error {
		vals, err := positiveInts(in.Value)
		if err != nil {
			return err
		}
		if length > 0 && len(vals) != length {
			return fmt.Errorf(messages.ValidatorArrayLengthFmt, length)
		}
		return nil
	}
}

func validateArray(_ context.Context, in ValidatorInput) error {
	if _, ok := in.Value.([]any); !ok {
		return errors.New(messages.ValidatorMustBeArray)
	}
	return nil
}

func validateDraftAges(ctx context.Context, in ValidatorInput) error {
	if err := positiveIntArray(2)(ctx, in); err != nil {
		return err
	}
	ages, _ := positiveInts(in.Value)
	if ages[0] > ages[1] {
		return errors.New(messages.ValidatorDraftAgesOrder)
	}
	return nil
}

// validatePlayoffSeries checks the series lengths and asks the worker whether
// the league can fill that many rounds.
func validatePlayoffSeries(ctx context.Context, in ValidatorInput) error {
	rounds, err := positiveInts(in.Value)
	if err != nil {
		return err
	}
	if in.Worker == nil {
		return nil
	}
	teams, err := toInt(in.Original[KeyNumActiveTeams])
	if err != nil {
		return fmt.Errorf(messages.SettingsSnapshotMissingKeyFmt, KeyNumActiveTeams)
	}
	s := worker.PlayoffSettings{NumRounds: len(rounds), NumActiveTeams: teams}
	s.NumPlayoffByes, _ = toInt(in.Output["numPlayoffByes"])
	s.PlayIn, _ = in.Output["playIn"].(bool)
	s.ByConf, _ = in.Output["playoffsByConf"].(bool)
	// Leagues without conference data play as two conferences.
	s.NumConfs = 2
	if n, err := toInt(in.Original[KeyNumConfs]); err == nil {
		s.NumConfs = n
	}
	return in.Worker.ValidatePlayoffSettings(ctx, s)
}

func validatePointsFormula(ctx context.Context, in ValidatorInput) error {
	formula, _ := in.Value.(string)
	if in.Worker == nil {
		return nil
	}
	return in.Worker.ValidatePointsFormula(ctx, formula)
}

// validateLotteryChances checks the custom lottery weights against the number
// of picks they decide.
func validateLotteryChances(_ context.Context, in ValidatorInput) error {
	arr, ok := in.Value.([]any)
	if !ok {
		return errors.New(messages.ValidatorMustBeArray)
	}
	var sum float64
	for _, x := range arr {
		f, ok := number(x)
		if !ok || f < 0 {
			return errors.New(messages.ValidatorArrayNonNegative)
		}
		sum += f
	}
	if picks, err := toInt(in.Output["draftLotteryCustomNumPicks"]); err == nil && len(arr) < picks {
		return fmt.Errorf(messages.ValidatorLotteryTooShortFmt, picks)
	}
	if sum <= 0 {
		return errors.New(messages.ValidatorLotteryNoChances)
	}
	return nil
}

// validateRookieScales checks for one [first pick, last pick] salary pair per
// draft round.
func validateRookieScales(_ context.Context, in ValidatorInput) error {
	arr, ok := in.Value.([]any)
	if !ok {
		return errors.New(messages.ValidatorMustBeArray)
	}
	for _, x := range arr {
		pair, ok := x.([]any)
		if !ok || len(pair) != 2 {
			return errors.New(messages.ValidatorRookieScalePairs)
		}
		for _, y := range pair {
			if f, ok := number(y); !ok || f < 0 {
				return errors.New(messages.ValidatorRookieScalePairs)
			}
		}
	}
	return nil
}

// Regular season games that run out of overtimes need somewhere to go.
func validateMaxOvertimes(ctx context.Context, in ValidatorInput) error {
	if err := nonNegative(ctx, in); err != nil || in.Value == nil {
		return err
	}
	ties, _ := in.Output["ties"].(bool)
	shootout, _ := toInt(in.Output["shootoutRounds"])
	if !ties && shootout == 0 {
		return errors.New(messages.ValidatorOvertimesNeedTies)
	}
	return nil
}

// Playoff games can never end in a tie.
func validateShootoutPlayoffs(ctx context.Context, in ValidatorInput) error {
	if err := nonNegative(ctx, in); err != nil {
		return err
	}
	if in.Output["maxOvertimesPlayoffs"] == nil {
		return nil
	}
	if n, _ := toInt(in.Value); n == 0 {
		return errors.New(messages.ValidatorPlayoffsNeedShootout)
	}
	return nil
}
