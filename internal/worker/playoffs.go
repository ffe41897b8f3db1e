package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

// ValidatePlayoffSettings checks that the bracket can be filled by the league.
func (w *Local) ValidatePlayoffSettings(ctx context.Context, s PlayoffSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return checkPlayoffs(s)
}

// maxRounds keeps 1<<NumRounds and the play-in additions within an int.
const maxRounds = bits.UintSize - 3

// PlayoffTeams returns how many teams a bracket of s needs, play-in included.
// Brackets too deep to count report math.MaxInt.
func PlayoffTeams(s PlayoffSettings) int {
	if s.NumRounds > maxRounds {
		return math.MaxInt
	}
	teams := (1 << s.NumRounds) - s.NumPlayoffByes
	if s.PlayIn {
		teams += 2 * groups(s)
	}
	return teams
}

func groups(s PlayoffSettings) int {
	if s.ByConf && s.NumConfs > 1 {
		return s.NumConfs
	}
	return 1
}

func checkPlayoffs(s PlayoffSettings) error {
	if s.NumRounds < 1 {
		return errors.New(messages.PlayoffRoundsRequired)
	}
	if s.NumRounds > maxRounds {
		return fmt.Errorf(messages.PlayoffTooManyRoundsFmt, s.NumActiveTeams, s.NumRounds)
	}
	if s.NumPlayoffByes < 0 {
		return errors.New(messages.PlayoffByesNegative)
	}
	// Round one needs at least one game.
	if s.NumPlayoffByes > (1<<(s.NumRounds-1))-1 {
		return fmt.Errorf(messages.PlayoffTooManyByesFmt, s.NumPlayoffByes, s.NumRounds)
	}
	if n := groups(s); n > 1 {
		if s.NumPlayoffByes%n != 0 {
			return fmt.Errorf(messages.PlayoffByConfByesFmt, n)
		}
		if bracket := (1 << s.NumRounds) - s.NumPlayoffByes; bracket%n != 0 {
			return fmt.Errorf(messages.PlayoffByConfTeamsFmt, bracket, n)
		}
	}
	if needed := PlayoffTeams(s); needed > s.NumActiveTeams {
		return fmt.Errorf(messages.PlayoffNotEnoughTeamsFmt, s.NumActiveTeams, s.NumRounds, needed)
	}
	return nil
}
