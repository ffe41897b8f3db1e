// Package settings is the league settings engine: a declarative schema of
// typed settings, a codec per setting kind, visibility and god mode gating,
// the string form state and the submit pipeline that turns it back into
// typed values.
package settings

import (
	"context"
	"maps"
	"slices"

	"github.com/leaguekit/leaguesettings/internal/worker"
)

// Kind selects how a setting is encoded, rendered and parsed.
type Kind string

const (
	// KindBool is true or false.
	KindBool Kind = "bool"
	// KindFloat is any number.
	KindFloat Kind = "float"
	// KindFloat1000 is stored in thousands and displayed divided by 1000.
	KindFloat1000 Kind = "float1000"
	// KindFloatOrNull is a number or unset.
	KindFloatOrNull Kind = "floatOrNull"
	// KindInt is an integer.
	KindInt Kind = "int"
	// KindIntOrNull is an integer or unset.
	KindIntOrNull Kind = "intOrNull"
	// KindJSONString is an arbitrary JSON value edited as text.
	KindJSONString Kind = "jsonString"
	// KindRangePercent is a number between 0 and 1 shown as a slider.
	KindRangePercent Kind = "rangePercent"
	// KindFloatValuesOrCustom is a number picked from Options or typed freely.
	KindFloatValuesOrCustom Kind = "floatValuesOrCustom"
	// KindString is free text, or one of Options when present.
	KindString Kind = "string"
	// KindCustom is edited entirely by a structured editor.
	KindCustom Kind = "custom"
)

// Kinds lists every kind.
var Kinds = []Kind{
	KindBool, KindFloat, KindFloat1000, KindFloatOrNull, KindInt, KindIntOrNull,
	KindJSONString, KindRangePercent, KindFloatValuesOrCustom, KindString, KindCustom,
}

// Category is a display group.
type Category string

const (
	CategoryLeagueStructure   Category = "League Structure"
	CategorySchedule          Category = "Schedule"
	CategoryStandings         Category = "Standings"
	CategoryPlayoffs          Category = "Playoffs"
	CategoryTeams             Category = "Teams"
	CategoryDraft             Category = "Draft"
	CategoryFinances          Category = "Finances"
	CategoryContracts         Category = "Contracts"
	CategoryRookieContracts   Category = "Rookie Contracts"
	CategoryEvents            Category = "Events"
	CategoryInjuries          Category = "Injuries"
	CategoryGameSimulation    Category = "Game Simulation"
	CategoryElamEnding        Category = "Elam Ending"
	CategoryPlayers           Category = "Players"
	CategoryPlayerDevelopment Category = "Player Development"
	CategoryAllStar           Category = "All-Star"
	CategoryTrades            Category = "Trades"
	CategoryGameModes         Category = "Game Modes"
	CategoryUI                Category = "UI"
)

// Categories is the fixed display order.
var Categories = []Category{
	CategoryLeagueStructure,
	CategorySchedule,
	CategoryStandings,
	CategoryPlayoffs,
	CategoryTeams,
	CategoryDraft,
	CategoryFinances,
	CategoryContracts,
	CategoryRookieContracts,
	CategoryEvents,
	CategoryInjuries,
	CategoryGameSimulation,
	CategoryElamEnding,
	CategoryPlayers,
	CategoryPlayerDevelopment,
	CategoryAllStar,
	CategoryTrades,
	CategoryGameModes,
	CategoryUI,
}

// GodModeRequirement gates editing of a setting.
type GodModeRequirement string

const (
	GodModeNone               GodModeRequirement = ""
	GodModeAlways             GodModeRequirement = "always"
	GodModeExistingLeagueOnly GodModeRequirement = "existingLeagueOnly"
)

// Decoration wraps a text input with a unit.
type Decoration string

const (
	DecorationNone     Decoration = ""
	DecorationCurrency Decoration = "currency"
	DecorationPercent  Decoration = "percent"
)

// CustomForm names the structured editor that renders a setting.
type CustomForm string

const (
	CustomInjuries      CustomForm = "injuries"
	CustomTragicDeaths  CustomForm = "tragicDeaths"
	CustomPlayerBioInfo CustomForm = "playerBioInfo"
	// CustomStopOnInjury is a checkbox plus a number of games, stored in
	// stopOnInjury and its hidden partner stopOnInjuryGames.
	CustomStopOnInjury CustomForm = "stopOnInjury"
)

// Keys with structured values or a special role.
const (
	KeyInjuries          = "injuries"
	KeyTragicDeaths      = "tragicDeaths"
	KeyPlayerBioInfo     = "playerBioInfo"
	KeyGodMode           = "godMode"
	KeyGodModeInPast     = "godModeInPast"
	KeyStopOnInjury      = "stopOnInjury"
	KeyStopOnInjuryGames = "stopOnInjuryGames"
)

// Contextual snapshot keys. They are read by validators and visibility but
// are not settings themselves.
const (
	KeyNumActiveTeams = "numActiveTeams"
	KeyNumConfs       = "numConfs"
	KeyHasPlayers     = "hasPlayers"
	KeyRealPlayers    = "realPlayers"
)

// SpecialKeys are the settings whose values bypass the codecs.
var SpecialKeys = []string{KeyInjuries, KeyTragicDeaths, KeyPlayerBioInfo}

// IsSpecialKey reports whether key holds a structured value.
func IsSpecialKey(key string) bool {
	return slices.Contains(SpecialKeys, key)
}

// Option is one fixed choice. Key is the string form of the value.
type Option struct {
	Key   string
	Label string
}

// Visibility holds the contextual flags that ShowOnlyIf predicates see.
type Visibility struct {
	NewLeague                bool
	HasPlayers               bool
	RealPlayers              bool
	DefaultNewLeagueSettings bool
}

// Values is a typed settings object keyed by setting key.
type Values map[string]any

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	return maps.Clone(v)
}

// ValidatorInput is what a validator sees: its own parsed value, the whole
// parsed output and the snapshot the form started from.
type ValidatorInput struct {
	Value    any
	Output   Values
	Original Values
	Worker   worker.Worker
}

// Validator rejects a parsed value. It runs only after every setting parsed.
type Validator func(ctx context.Context, in ValidatorInput) error

// Descriptor is one authored setting.
type Descriptor struct {
	Category        Category
	Key             string
	Name            string
	Kind            Kind
	Description     string
	Default         any
	GodModeRequired GodModeRequirement
	Options         []Option
	Decoration      Decoration
	Validator       Validator
	// ShowOnlyIf selects this variant of Key. Nil means always shown.
	ShowOnlyIf func(Visibility) bool
	// Partners are submitted together with this setting.
	Partners []string
	// Hidden settings are tracked and submitted but never rendered directly.
	Hidden     bool
	CustomForm CustomForm
}

// clone returns a copy that shares no slices with d.
func (d Descriptor) clone() Descriptor {
	d.Options = slices.Clone(d.Options)
	d.Partners = slices.Clone(d.Partners)
	d.Default = cloneDefault(d.Default)
	return d
}

func cloneDefault(v any) any {
	switch x := v.(type) {
	case []any:
		return slices.Clone(x)
	case map[string]any:
		return maps.Clone(x)
	}
	return v
}

// Active reports whether d applies in vis.
func (d Descriptor) Active(vis Visibility) bool {
	return d.ShowOnlyIf == nil || d.ShowOnlyIf(vis)
}

// OptionLabel returns the label of the option with key, or key itself.
func (d Descriptor) OptionLabel(key string) string {
	for _, o := range d.Options {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}
