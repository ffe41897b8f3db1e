// Package rows implements the weighted-row tables of a league (injuries and
// tragic deaths) and a draft editor for them with CSV import and export.
package rows

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

// Injury is one injury type a player can suffer.
type Injury struct {
	Name      string  `json:"name" yaml:"name" toml:"name"`
	Frequency float64 `json:"frequency" yaml:"frequency" toml:"frequency"`
	Games     float64 `json:"games" yaml:"games" toml:"games"`
}

// TragicDeath is one cause of a player's sudden death.
type TragicDeath struct {
	Reason    string  `json:"reason" yaml:"reason" toml:"reason"`
	Frequency float64 `json:"frequency" yaml:"frequency" toml:"frequency"`
}

// InjuryRow is the editable form of an Injury. Numbers stay as typed text
// until the editor is saved.
type InjuryRow struct {
	Name      string
	Frequency string
	Games     string
}

// TragicDeathRow is the editable form of a TragicDeath.
type TragicDeathRow struct {
	Reason    string
	Frequency string
}

// Injury CSV columns.
const (
	ColumnName      = "name"
	ColumnFrequency = "frequency"
	ColumnGames     = "games"
	ColumnReason    = "reason"
)

// InjurySpec describes the injury table.
var InjurySpec = Spec[Injury, InjuryRow]{
	Noun:    "Injuries",
	Columns: []string{ColumnName, ColumnFrequency, ColumnGames},
	Empty:   messages.InjuriesEmpty,
	Blank: func() InjuryRow {
		return InjuryRow{Frequency: "1", Games: "1"}
	},
	ToDraft: func(v Injury) InjuryRow {
		return InjuryRow{Name: v.Name, Frequency: FormatNumber(v.Frequency), Games: FormatNumber(v.Games)}
	},
	FromDraft: func(i int, r InjuryRow) (Injury, error) {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return Injury{}, fmt.Errorf(messages.InjuryNameBlankFmt, i+1)
		}
		freq, ok := PositiveNumber(r.Frequency)
		if !ok {
			return Injury{}, fmt.Errorf(messages.InjuryFrequencyFmt, name)
		}
		games, ok := PositiveNumber(r.Games)
		if !ok {
			return Injury{}, fmt.Errorf(messages.InjuryGamesFmt, name)
		}
		return Injury{Name: name, Frequency: freq, Games: games}, nil
	},
	ToRecord: func(r InjuryRow) map[string]string {
		return map[string]string{ColumnName: r.Name, ColumnFrequency: r.Frequency, ColumnGames: r.Games}
	},
	FromRecord: func(rec map[string]string) InjuryRow {
		return InjuryRow{Name: rec[ColumnName], Frequency: rec[ColumnFrequency], Games: rec[ColumnGames]}
	},
}

// TragicDeathSpec describes the tragic death table.
var TragicDeathSpec = Spec[TragicDeath, TragicDeathRow]{
	Noun:    "Tragic deaths",
	Columns: []string{ColumnReason, ColumnFrequency},
	Empty:   messages.TragicDeathsEmpty,
	Blank: func() TragicDeathRow {
		return TragicDeathRow{Frequency: "1"}
	},
	ToDraft: func(v TragicDeath) TragicDeathRow {
		return TragicDeathRow{Reason: v.Reason, Frequency: FormatNumber(v.Frequency)}
	},
	FromDraft: func(i int, r TragicDeathRow) (TragicDeath, error) {
		reason := strings.TrimSpace(r.Reason)
		if reason == "" {
			return TragicDeath{}, fmt.Errorf(messages.TragicDeathReasonBlankFmt, i+1)
		}
		freq, ok := PositiveNumber(r.Frequency)
		if !ok {
			return TragicDeath{}, fmt.Errorf(messages.TragicDeathFrequencyFmt, reason)
		}
		return TragicDeath{Reason: reason, Frequency: freq}, nil
	},
	ToRecord: func(r TragicDeathRow) map[string]string {
		return map[string]string{ColumnReason: r.Reason, ColumnFrequency: r.Frequency}
	},
	FromRecord: func(rec map[string]string) TragicDeathRow {
		return TragicDeathRow{Reason: rec[ColumnReason], Frequency: rec[ColumnFrequency]}
	},
}

// PositiveNumber parses s and reports whether it is a finite number above zero.
func PositiveNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

// FormatNumber renders f in the shortest form that parses back to f.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
