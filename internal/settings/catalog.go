package settings

import (
	"errors"
	"fmt"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

func realPlayers(v Visibility) bool    { return v.RealPlayers }
func notRealPlayers(v Visibility) bool { return !v.RealPlayers }
func newRealLeague(v Visibility) bool  { return v.NewLeague && v.RealPlayers }
func newRandomLeague(v Visibility) bool {
	return v.NewLeague && !v.RealPlayers
}
func newLeague(v Visibility) bool     { return v.NewLeague }
func existingLeague(v Visibility) bool { return !v.NewLeague }

var draftTypeOptions = []Option{
	{Key: "nba2019", Label: "NBA 2019"},
	{Key: "nba1994", Label: "NBA 1994"},
	{Key: "nba1990", Label: "NBA 1990"},
	{Key: "randomLotteryFirst3", Label: "Random, first 3"},
	{Key: "randomLottery", Label: "Random, lottery only"},
	{Key: "coinFlip", Label: "Coin flip"},
	{Key: "random", Label: "Random"},
	{Key: "noLottery", Label: "No lottery, teams in reverse order of success"},
	{Key: "noLotteryReverse", Label: "No lottery, teams in order of success"},
	{Key: "freeAgents", Label: "No draft, rookies are free agents"},
	{Key: "draftLotteryCustom", Label: "Custom lottery"},
}

// Real player leagues can also replay the historical lottery formats.
var realDraftTypeOptions = append(append([]Option(nil), draftTypeOptions...),
	Option{Key: "nba1966", Label: "NBA 1966"},
	Option{Key: "nba1985", Label: "NBA 1985"},
)

var factorValidator = all(nonNegative, atMost(100))

var geoOptions = []Option{
	{Key: "naFirst", Label: "North America first"},
	{Key: "naOnly", Label: "North America only"},
	{Key: "any", Label: "Anywhere"},
}

// catalog is the authored schema in display order. A key may appear more than
// once when its variants have mutually exclusive ShowOnlyIf predicates.
var catalog = []Descriptor{
	// League Structure
	{Category: CategoryLeagueStructure, Key: "hideDisabledTeams", Name: "Hide Inactive Teams", Kind: KindBool, Default: false,
		Description: "Hides inactive teams from dropdown menus."},
	{Category: CategoryLeagueStructure, Key: "autoExpandProb", Name: "Auto Expansion Probability", Kind: KindRangePercent, Default: 0.0,
		GodModeRequired: GodModeAlways, Description: "Probability each season that new teams join the league."},
	{Category: CategoryLeagueStructure, Key: "autoRelocateProb", Name: "Auto Relocation Probability", Kind: KindRangePercent, Default: 0.0,
		GodModeRequired: GodModeAlways, Description: "Probability each season that a team moves to a new city."},
	{Category: CategoryLeagueStructure, Key: "autoExpandNumTeams", Name: "Auto Expansion # Teams", Kind: KindInt, Default: 1,
		GodModeRequired: GodModeAlways, Validator: positive, Description: "Number of teams added by each expansion."},
	{Category: CategoryLeagueStructure, Key: "autoExpandMaxNumTeams", Name: "Auto Expansion Max # Teams", Kind: KindInt, Default: 40,
		GodModeRequired: GodModeAlways,
		Validator:       all(positive, compareTo("autoExpandNumTeams", messages.ValidatorExpandMaxBelowStep, func(v, step float64) bool { return v >= step }))},
	{Category: CategoryLeagueStructure, Key: "autoExpandGeo", Name: "Auto Expansion Locations", Kind: KindString, Default: "naFirst",
		GodModeRequired: GodModeAlways, Options: geoOptions},
	{Category: CategoryLeagueStructure, Key: "autoRelocateGeo", Name: "Auto Relocation Locations", Kind: KindString, Default: "naFirst",
		GodModeRequired: GodModeAlways, Options: geoOptions},
	{Category: CategoryLeagueStructure, Key: "autoRelocateRealign", Name: "Auto Relocation Realign Divisions", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryLeagueStructure, Key: "autoRelocateRebrand", Name: "Auto Relocation Rebrand", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways, Description: "Relocated teams pick a new name."},
	{Category: CategoryLeagueStructure, Key: "equalizeRegions", Name: "Equalize Region Populations", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways, Description: "Every team gets the same market size."},
	{Category: CategoryLeagueStructure, Key: "giveMeWorstRoster", Name: "Give Me The Worst Roster", Kind: KindBool, Default: false,
		ShowOnlyIf: newLeague, Description: "Swap rosters so your team starts with the worst players."},

	// Schedule
	{Category: CategorySchedule, Key: "numGames", Name: "# Games Per Season", Kind: KindInt, Default: 82,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: positive,
		Description:     "Changes take effect in the next season."},
	{Category: CategorySchedule, Key: "numGamesDiv", Name: "# Division Games", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: nonNegative,
		Description:     "Games against division opponents. Blank lets the schedule decide."},
	{Category: CategorySchedule, Key: "numGamesConf", Name: "# Conference Games", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: nonNegative,
		Description:     "Games against conference opponents, including division games."},
	{Category: CategorySchedule, Key: "numPeriodsBetweenGames", Name: "Days Between Games", Kind: KindInt, Default: 1,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: positive},
	{Category: CategorySchedule, Key: "scheduleType", Name: "Schedule Type", Kind: KindString, Default: "default",
		GodModeRequired: GodModeExistingLeagueOnly,
		Options: []Option{
			{Key: "default", Label: "Default"},
			{Key: "balanced", Label: "Balanced"},
			{Key: "random", Label: "Random"},
		}},

	// Standings
	{Category: CategoryStandings, Key: "pointsFormula", Name: "Team Points Formula", Kind: KindString, Default: "",
		GodModeRequired: GodModeExistingLeagueOnly, Validator: validatePointsFormula,
		Description:     "Formula for standings points using W, L, OTL and T. Blank ranks teams by winning percentage."},
	{Category: CategoryStandings, Key: "ties", Name: "Ties", Kind: KindBool, Default: false,
		GodModeRequired: GodModeExistingLeagueOnly, Description: "Regular season games can end in a tie."},
	{Category: CategoryStandings, Key: "otl", Name: "Overtime Losses", Kind: KindBool, Default: false,
		GodModeRequired: GodModeExistingLeagueOnly, Description: "Overtime losses are tracked separately from losses."},
	{Category: CategoryStandings, Key: "tiebreakers", Name: "Tiebreakers", Kind: KindJSONString, Default: []any{"head2head", "divWinner", "winPct", "coinFlip"},
		GodModeRequired: GodModeExistingLeagueOnly, Validator: validateArray,
		Description:     "Ordered list of tiebreakers applied to teams with the same record."},

	// Playoffs
	{Category: CategoryPlayoffs, Key: "numGamesPlayoffSeries", Name: "# Playoff Games", Kind: KindJSONString, Default: []any{7.0, 7.0, 7.0, 7.0},
		GodModeRequired: GodModeExistingLeagueOnly, Validator: validatePlayoffSeries,
		Description:     "Number of games in each round, as a list. Its length is the number of playoff rounds."},
	{Category: CategoryPlayoffs, Key: "numPlayoffByes", Name: "# First Round Byes", Kind: KindInt, Default: 0,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: nonNegative,
		Description:     "Number of teams that skip the first round."},
	{Category: CategoryPlayoffs, Key: "playIn", Name: "Play-In Tournament", Kind: KindBool, Default: true,
		GodModeRequired: GodModeExistingLeagueOnly, Description: "Teams just outside the bracket play for the last seeds."},
	{Category: CategoryPlayoffs, Key: "playoffsByConf", Name: "Split Playoffs By Conference", Kind: KindBool, Default: true,
		GodModeRequired: GodModeExistingLeagueOnly, Description: "Seed each conference separately."},
	{Category: CategoryPlayoffs, Key: "playoffsReseed", Name: "Reseed Playoffs", Kind: KindBool, Default: false,
		GodModeRequired: GodModeExistingLeagueOnly, Description: "Reseed the remaining teams after each round."},
	{Category: CategoryPlayoffs, Key: "playoffsNumTeamsDiv", Name: "# Guaranteed Division Winners", Kind: KindInt, Default: 0,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: nonNegative,
		Description:     "Division winners that always make the playoffs."},

	// Teams
	{Category: CategoryTeams, Key: "minRosterSize", Name: "Min Roster Size", Kind: KindInt, Default: 13,
		GodModeRequired: GodModeAlways, Validator: positive},
	{Category: CategoryTeams, Key: "maxRosterSize", Name: "Max Roster Size", Kind: KindInt, Default: 15,
		GodModeRequired: GodModeAlways,
		Validator:       all(positive, compareTo("minRosterSize", messages.ValidatorMinRosterAboveMax, func(v, lo float64) bool { return v >= lo }))},
	{Category: CategoryTeams, Key: "numPlayersOnCourt", Name: "# Players On Court", Kind: KindInt, Default: 5,
		GodModeRequired: GodModeAlways, Validator: positive},
	{Category: CategoryTeams, Key: "homeCourtAdvantage", Name: "Home Court Advantage", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationPercent, Validator: nonNegative,
		Description:     "Boost to the home team's ratings."},
	{Category: CategoryTeams, Key: "numPlayersOnRosterDepth", Name: "Depth Chart Length", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeAlways,
		Validator:       compareTo("numPlayersOnCourt", messages.ValidatorDepthBelowCourt, func(v, court float64) bool { return v >= court }),
		Description:     "Players listed in each depth chart. Blank lists the whole roster."},
	{Category: CategoryTeams, Key: "aiJerseyRetirement", Name: "AI Teams Retire Jersey Numbers", Kind: KindBool, Default: true},

	// Draft
	{Category: CategoryDraft, Key: "draftType", Name: "Draft Type", Kind: KindString, Default: "nba2019",
		GodModeRequired: GodModeExistingLeagueOnly, Options: draftTypeOptions, ShowOnlyIf: notRealPlayers},
	{Category: CategoryDraft, Key: "draftType", Name: "Draft Type", Kind: KindString, Default: "nba2019",
		GodModeRequired: GodModeExistingLeagueOnly, Options: realDraftTypeOptions, ShowOnlyIf: realPlayers},
	{Category: CategoryDraft, Key: "numDraftRounds", Name: "# Draft Rounds", Kind: KindInt, Default: 2,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: nonNegative},
	{Category: CategoryDraft, Key: "draftAges", Name: "Age of Draft Prospects", Kind: KindJSONString, Default: []any{19.0, 22.0},
		GodModeRequired: GodModeAlways, Validator: validateDraftAges,
		Description:     "Minimum and maximum age of generated draft prospects."},
	{Category: CategoryDraft, Key: "numSeasonsFutureDraftPicks", Name: "# Tradable Draft Pick Seasons", Kind: KindInt, Default: 4,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: nonNegative},
	{Category: CategoryDraft, Key: "draftPickAutoContract", Name: "Rookie Scale Contracts", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryDraft, Key: "draftPickAutoContractRounds", Name: "Rookie Scale Rounds", Kind: KindInt, Default: 1,
		GodModeRequired: GodModeAlways,
		Validator:       all(nonNegative, compareTo("numDraftRounds", messages.ValidatorAutoContractRounds, func(v, rounds float64) bool { return v <= rounds })),
		Description:     "Draft rounds whose picks get rookie scale contracts."},
	{Category: CategoryDraft, Key: "draftLotteryCustomNumPicks", Name: "# Custom Lottery Picks", Kind: KindInt, Default: 4,
		GodModeRequired: GodModeExistingLeagueOnly, Validator: positive,
		Description:     "Picks decided by the custom lottery. Only used with the custom draft type."},
	{Category: CategoryDraft, Key: "draftLotteryCustomChances", Name: "Custom Lottery Chances", Kind: KindJSONString,
		Default:         []any{140.0, 140.0, 140.0, 125.0, 105.0, 90.0, 75.0, 60.0, 45.0, 30.0, 20.0, 15.0, 10.0, 5.0},
		GodModeRequired: GodModeExistingLeagueOnly, Validator: validateLotteryChances,
		Description:     "Relative lottery weight of each non-playoff team, worst team first."},
	{Category: CategoryDraft, Key: "realDraftRatings", Name: "Real Draft Prospect Ratings", Kind: KindString, Default: "rookie",
		ShowOnlyIf: newRealLeague,
		Options: []Option{
			{Key: "rookie", Label: "Rookie season stats"},
			{Key: "draft", Label: "Draft prospect rankings"},
		}},
	{Category: CategoryDraft, Key: "hideDraftProspectRatings", Name: "Hide Draft Prospect Ratings", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways},

	// Finances
	{Category: CategoryFinances, Key: "salaryCap", Name: "Salary Cap", Kind: KindFloat1000, Default: 140000.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationCurrency, Validator: positive},
	{Category: CategoryFinances, Key: "minPayroll", Name: "Minimum Payroll", Kind: KindFloat1000, Default: 100000.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationCurrency,
		Validator:       all(positive, compareTo("salaryCap", messages.ValidatorMinPayrollAboveCap, func(v, capacity float64) bool { return v <= capacity }))},
	{Category: CategoryFinances, Key: "luxuryPayroll", Name: "Luxury Tax Payroll", Kind: KindFloat1000, Default: 170000.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationCurrency,
		Validator:       all(positive, compareTo("salaryCap", messages.ValidatorLuxuryBelowCap, func(v, capacity float64) bool { return v >= capacity }))},
	{Category: CategoryFinances, Key: "luxuryTax", Name: "Luxury Tax", Kind: KindFloat, Default: 1.5,
		GodModeRequired: GodModeAlways, Validator: nonNegative,
		Description:     "Tax paid for every dollar of payroll above the luxury tax limit."},
	{Category: CategoryFinances, Key: "salaryCapType", Name: "Salary Cap Type", Kind: KindString, Default: "soft",
		GodModeRequired: GodModeAlways,
		Options: []Option{
			{Key: "soft", Label: "Soft cap"},
			{Key: "hard", Label: "Hard cap"},
			{Key: "none", Label: "None"},
		}},
	{Category: CategoryFinances, Key: "budget", Name: "Budget", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways, Description: "Team budgets affect revenue, player progression and team chemistry."},
	{Category: CategoryFinances, Key: "salaryCapScale", Name: "Salary Cap Scale", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: positive, ShowOnlyIf: newLeague,
		Description:     "Scales every financial default when the league is created."},
	{Category: CategoryFinances, Key: "minPayrollPenalty", Name: "Minimum Payroll Penalty", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways, Description: "Teams below the minimum payroll pay the difference."},
	{Category: CategoryFinances, Key: "hardCapTradeRule", Name: "Hard Cap Trade Rule", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways, Description: "Trades may not take a team over a hard cap."},
	{Category: CategoryFinances, Key: "revenueSharing", Name: "Revenue Sharing", Kind: KindRangePercent, Default: 0.0,
		GodModeRequired: GodModeAlways, Description: "Share of national revenue split evenly between teams."},

	// Contracts
	{Category: CategoryContracts, Key: "minContract", Name: "Min Contract", Kind: KindFloat1000, Default: 1000.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationCurrency, Validator: positive},
	{Category: CategoryContracts, Key: "maxContract", Name: "Max Contract", Kind: KindFloat1000, Default: 45000.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationCurrency,
		Validator:       all(positive, compareTo("minContract", messages.ValidatorMaxContractBelowMin, func(v, lo float64) bool { return v >= lo }))},
	{Category: CategoryContracts, Key: "minContractLength", Name: "Min Contract Length", Kind: KindInt, Default: 1,
		GodModeRequired: GodModeAlways, Validator: positive},
	{Category: CategoryContracts, Key: "maxContractLength", Name: "Max Contract Length", Kind: KindInt, Default: 5,
		GodModeRequired: GodModeAlways,
		Validator:       all(positive, compareTo("minContractLength", messages.ValidatorMaxLengthBelowMin, func(v, lo float64) bool { return v >= lo }))},
	{Category: CategoryContracts, Key: "playersRefuseToNegotiate", Name: "Players Can Refuse To Negotiate", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryContracts, Key: "salaryCapMaxContractPercent", Name: "Max Contract As Percent Of Cap", Kind: KindFloatOrNull, Default: nil,
		GodModeRequired: GodModeAlways, Decoration: DecorationPercent, Validator: all(positive, atMost(100)),
		Description:     "Derive the max contract from the salary cap. Blank uses the fixed max contract."},
	{Category: CategoryContracts, Key: "contractRounding", Name: "Contract Rounding", Kind: KindFloat1000, Default: 10.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationCurrency, Validator: positive,
		Description:     "Contracts are rounded to a multiple of this amount."},
	{Category: CategoryContracts, Key: "freeAgentMoodFactor", Name: "Free Agent Mood Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryContracts, Key: "rookieOptionYears", Name: "Rookie Option Years", Kind: KindInt, Default: 0,
		GodModeRequired: GodModeAlways, Validator: nonNegative},

	// Rookie Contracts
	{Category: CategoryRookieContracts, Key: "rookieContractLengths", Name: "Rookie Contract Lengths", Kind: KindJSONString, Default: []any{3.0, 2.0},
		GodModeRequired: GodModeAlways, Validator: positiveIntArray(0),
		Description:     "Contract length in years for each draft round. The last entry applies to later rounds."},
	{Category: CategoryRookieContracts, Key: "draftPickAutoContractPercent", Name: "Rookie Salary Scale", Kind: KindFloat, Default: 25.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationPercent, Validator: nonNegative,
		Description:     "Salary of the first pick as a percentage of the max contract."},
	{Category: CategoryRookieContracts, Key: "rookieScales", Name: "Rookie Scales", Kind: KindJSONString, Default: []any{[]any{5000.0, 500.0}, []any{500.0, 500.0}},
		GodModeRequired: GodModeAlways, Validator: validateRookieScales,
		Description:     "First and last pick salaries for each draft round, in thousands."},
	{Category: CategoryRookieContracts, Key: "rookieContractsRestrictedFA", Name: "Restricted Free Agency For Rookies", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways},

	// Events
	{Category: CategoryEvents, Key: KeyTragicDeaths, Name: "Tragic Death Types", Kind: KindCustom,
		GodModeRequired: GodModeAlways, CustomForm: CustomTragicDeaths},
	{Category: CategoryEvents, Key: "tragicDeathRate", Name: "Tragic Death Rate", Kind: KindFloat, Default: 0.001,
		GodModeRequired: GodModeAlways, Validator: all(nonNegative, atMost(1)),
		Description:     "Probability each day that a player dies."},
	{Category: CategoryEvents, Key: "brotherRate", Name: "Brother Rate", Kind: KindFloat, Default: 0.02,
		GodModeRequired: GodModeAlways, Validator: all(nonNegative, atMost(1))},
	{Category: CategoryEvents, Key: "sonRate", Name: "Son Rate", Kind: KindFloat, Default: 0.02,
		GodModeRequired: GodModeAlways, Validator: all(nonNegative, atMost(1))},
	{Category: CategoryEvents, Key: "fatherRate", Name: "Father Rate", Kind: KindFloat, Default: 0.01,
		GodModeRequired: GodModeAlways, Validator: all(nonNegative, atMost(1))},
	{Category: CategoryEvents, Key: "retireJerseyRate", Name: "Jersey Retirement Rate", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryEvents, Key: "eventFeedLength", Name: "Event Feed Length", Kind: KindIntOrNull, Default: 100,
		Validator: positive, Description: "Events kept on the league dashboard. Blank keeps them all."},

	// Injuries
	{Category: CategoryInjuries, Key: KeyInjuries, Name: "Injury Types", Kind: KindCustom,
		GodModeRequired: GodModeAlways, CustomForm: CustomInjuries},
	{Category: CategoryInjuries, Key: "injuryRate", Name: "Injury Rate", Kind: KindFloat, Default: 0.000125,
		GodModeRequired: GodModeAlways, Validator: all(nonNegative, atMost(1)),
		Description:     "Probability a player is injured on any possession."},
	{Category: CategoryInjuries, Key: KeyStopOnInjury, Name: "Stop On Injury", Kind: KindBool, Default: false,
		CustomForm:  CustomStopOnInjury, Partners: []string{KeyStopOnInjuryGames},
		Description: "Stop auto play when a user's player is injured for at least this many games."},
	{Category: CategoryInjuries, Key: KeyStopOnInjuryGames, Name: "Stop On Injury Games", Kind: KindInt, Default: 20,
		Hidden: true, Validator: positive},
	{Category: CategoryInjuries, Key: "injuryDurationFactor", Name: "Injury Duration Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryInjuries, Key: "healthRank", Name: "Medical Staff Budget Effect", Kind: KindRangePercent, Default: 0.5,
		GodModeRequired: GodModeAlways, Description: "How much the medical budget shortens injuries."},

	// Game Simulation
	{Category: CategoryGameSimulation, Key: "numPeriods", Name: "# Periods", Kind: KindInt, Default: 4,
		GodModeRequired: GodModeAlways, Validator: positive},
	{Category: CategoryGameSimulation, Key: "quarterLength", Name: "Period Length", Kind: KindFloat, Default: 12.0,
		GodModeRequired: GodModeAlways, Validator: positive, Description: "Minutes per period."},
	{Category: CategoryGameSimulation, Key: "pace", Name: "Pace", Kind: KindFloat, Default: 100.0,
		GodModeRequired: GodModeAlways, Validator: positive},
	{Category: CategoryGameSimulation, Key: "threePointers", Name: "Three Pointers", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryGameSimulation, Key: "threePointTendencyFactor", Name: "Three Point Tendency Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "threePointAccuracyFactor", Name: "Three Point Accuracy Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "twoPointAccuracyFactor", Name: "Two Point Accuracy Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "blockFactor", Name: "Block Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "stealFactor", Name: "Steal Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "turnoverFactor", Name: "Turnover Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "orbFactor", Name: "Offensive Rebound Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "foulRateFactor", Name: "Foul Rate Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "foulsNeededToFoulOut", Name: "Fouls Needed To Foul Out", Kind: KindIntOrNull, Default: 6,
		GodModeRequired: GodModeAlways, Validator: positive, Description: "Blank disables fouling out."},
	{Category: CategoryGameSimulation, Key: "foulsUntilBonus", Name: "Fouls Until Bonus", Kind: KindJSONString, Default: []any{5.0, 4.0, 2.0},
		GodModeRequired: GodModeAlways, Validator: positiveIntArray(3),
		Description:     "Team fouls before the bonus in a regulation period, an overtime period and the last two minutes."},
	{Category: CategoryGameSimulation, Key: "ftAccuracyFactor", Name: "Free Throw Accuracy Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "assistFactor", Name: "Assist Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "drbFactor", Name: "Defensive Rebound Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "synergyFactor", Name: "Synergy Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "luckFactor", Name: "Luck Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator},
	{Category: CategoryGameSimulation, Key: "overtimeLength", Name: "Overtime Length", Kind: KindFloatOrNull, Default: nil,
		GodModeRequired: GodModeAlways, Validator: positive,
		Description:     "Minutes per overtime period. Blank uses the default for the period length."},
	{Category: CategoryGameSimulation, Key: "maxOvertimes", Name: "Max # Overtimes", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeAlways, Validator: validateMaxOvertimes,
		Description:     "Regular season games still tied after this many overtimes end in a tie or a shootout. Blank means unlimited."},
	{Category: CategoryGameSimulation, Key: "maxOvertimesPlayoffs", Name: "Max # Overtimes Playoffs", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeAlways, Validator: nonNegative,
		Description:     "Playoff games still tied after this many overtimes go to a shootout. Blank means unlimited."},
	{Category: CategoryGameSimulation, Key: "shootoutRounds", Name: "# Shootout Rounds", Kind: KindInt, Default: 0,
		GodModeRequired: GodModeAlways, Validator: nonNegative,
		Description:     "0 means regular season games that run out of overtimes end in a tie."},
	{Category: CategoryGameSimulation, Key: "shootoutRoundsPlayoffs", Name: "# Shootout Rounds Playoffs", Kind: KindInt, Default: 0,
		GodModeRequired: GodModeAlways, Validator: validateShootoutPlayoffs},

	// Elam Ending
	{Category: CategoryElamEnding, Key: "elam", Name: "Elam Ending", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways, Description: "Play to a target score at the end of the last period."},
	{Category: CategoryElamEnding, Key: "elamASG", Name: "Elam Ending In All-Star Game", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryElamEnding, Key: "elamOvertime", Name: "Elam Ending In Overtime", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways},
	{Category: CategoryElamEnding, Key: "elamMinutes", Name: "Minutes Left Trigger", Kind: KindFloat, Default: 4.0,
		GodModeRequired: GodModeAlways, Validator: nonNegative},
	{Category: CategoryElamEnding, Key: "elamPoints", Name: "Target Points To Add", Kind: KindInt, Default: 8,
		GodModeRequired: GodModeAlways, Validator: positive},

	// Players
	{Category: CategoryPlayers, Key: KeyPlayerBioInfo, Name: "Countries, Names and Colleges", Kind: KindCustom,
		GodModeRequired: GodModeAlways, CustomForm: CustomPlayerBioInfo},
	{Category: CategoryPlayers, Key: "randomization", Name: "Randomization", Kind: KindString, Default: "none",
		ShowOnlyIf: newRealLeague,
		Options: []Option{
			{Key: "none", Label: "None"},
			{Key: "debuts", Label: "Random debuts"},
			{Key: "debutsForever", Label: "Random debuts forever"},
			{Key: "shuffle", Label: "Shuffle rosters"},
		}},
	{Category: CategoryPlayers, Key: "randomization", Name: "Randomization", Kind: KindString, Default: "none",
		ShowOnlyIf: newRandomLeague,
		Options: []Option{
			{Key: "none", Label: "None"},
			{Key: "shuffle", Label: "Shuffle rosters"},
		}},
	{Category: CategoryPlayers, Key: "realPlayerDeterminism", Name: "Real Player Determinism", Kind: KindRangePercent, Default: 0.0,
		GodModeRequired: GodModeAlways, ShowOnlyIf: realPlayers,
		Description:     "How closely real players follow their real careers."},
	{Category: CategoryPlayers, Key: "hofFactor", Name: "Hall of Fame Threshold Factor", Kind: KindFloat, Default: 1.0,
		Validator: nonNegative},
	{Category: CategoryPlayers, Key: "forceRetireAge", Name: "Force Retire At Age", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeAlways, Validator: positive, Description: "Blank means players retire naturally."},
	{Category: CategoryPlayers, Key: "forceRetireSeasons", Name: "Force Retire After Seasons", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeAlways, Validator: positive, Description: "Blank means players retire naturally."},
	{Category: CategoryPlayers, Key: "heightFactor", Name: "Height Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator, ShowOnlyIf: notRealPlayers},
	{Category: CategoryPlayers, Key: "numPlayersPerTeamGenerated", Name: "# Generated Players Per Team", Kind: KindInt, Default: 13,
		ShowOnlyIf: newRandomLeague,
		Validator:  compareTo("minRosterSize", messages.ValidatorGeneratedBelowRoster, func(v, lo float64) bool { return v >= lo })},
	{Category: CategoryPlayers, Key: "realStats", Name: "Historical Stats", Kind: KindString, Default: "none",
		ShowOnlyIf: newRealLeague,
		Options: []Option{
			{Key: "none", Label: "None"},
			{Key: "lastSeason", Label: "Last season only"},
			{Key: "allActive", Label: "All seasons, active players"},
			{Key: "all", Label: "All seasons, all players"},
		}},

	// Player Development
	{Category: CategoryPlayerDevelopment, Key: "progs", Name: "Progs Factor", Kind: KindFloat, Default: 1.0,
		GodModeRequired: GodModeAlways, Validator: factorValidator,
		Description:     "Scales the size of ratings progressions."},
	{Category: CategoryPlayerDevelopment, Key: "playerMoodTraits", Name: "Player Mood Traits", Kind: KindBool, Default: true,
		GodModeRequired: GodModeExistingLeagueOnly},
	{Category: CategoryPlayerDevelopment, Key: "ratingsProgsAgeShift", Name: "Peak Age Shift", Kind: KindInt, Default: 0,
		GodModeRequired: GodModeAlways, Validator: all(atLeast(-10), atMost(10)),
		Description:     "Years to move every player's peak age."},
	{Category: CategoryPlayerDevelopment, Key: "realPlayerProgs", Name: "Real Player Progs", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways, ShowOnlyIf: realPlayers,
		Description:     "Real players progress as they did in their real careers."},
	{Category: CategoryPlayerDevelopment, Key: "goatFormula", Name: "GOAT Formula", Kind: KindString, Default: "",
		Description: "Formula used to rank the greatest players of all time. Blank uses the default."},

	// All-Star
	{Category: CategoryAllStar, Key: "allStarGame", Name: "All-Star Game", Kind: KindFloatOrNull, Default: 0.7,
		GodModeRequired: GodModeAlways, Validator: all(nonNegative, atMost(1)),
		Description:     "Fraction of the regular season after which the game is played. Blank disables it."},
	{Category: CategoryAllStar, Key: "allStarNum", Name: "# Players In All-Star Game", Kind: KindInt, Default: 12,
		GodModeRequired: GodModeAlways, Validator: positive},
	{Category: CategoryAllStar, Key: "allStarType", Name: "All-Star Teams", Kind: KindString, Default: "draft",
		GodModeRequired: GodModeAlways,
		Options: []Option{
			{Key: "draft", Label: "Draft"},
			{Key: "byConf", Label: "By conference"},
			{Key: "top", Label: "Top players"},
		}},
	{Category: CategoryAllStar, Key: "allStarDunk", Name: "Slam Dunk Contest", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryAllStar, Key: "allStarThree", Name: "Three-Point Contest", Kind: KindBool, Default: true,
		GodModeRequired: GodModeAlways},
	{Category: CategoryAllStar, Key: "allStarNumDunk", Name: "# Dunk Contest Players", Kind: KindInt, Default: 4,
		GodModeRequired: GodModeAlways,
		Validator:       all(atLeast(2), compareTo("allStarNum", messages.ValidatorContestAboveAllStars, func(v, n float64) bool { return v <= n }))},
	{Category: CategoryAllStar, Key: "allStarNumThree", Name: "# Three-Point Contest Players", Kind: KindInt, Default: 8,
		GodModeRequired: GodModeAlways,
		Validator:       all(atLeast(2), compareTo("allStarNum", messages.ValidatorContestAboveAllStars, func(v, n float64) bool { return v <= n }))},

	// Trades
	{Category: CategoryTrades, Key: "tradeDeadline", Name: "Trade Deadline", Kind: KindRangePercent, Default: 0.6,
		GodModeRequired: GodModeExistingLeagueOnly, Description: "Fraction of the regular season after which trades stop."},
	{Category: CategoryTrades, Key: "aiTradesFactor", Name: "AI-to-AI Trades Factor", Kind: KindFloat, Default: 1.0,
		Validator: nonNegative},
	{Category: CategoryTrades, Key: "tradeMatchingPercentage", Name: "Trade Salary Match", Kind: KindFloat, Default: 125.0,
		GodModeRequired: GodModeAlways, Decoration: DecorationPercent, Validator: atLeast(0)},
	{Category: CategoryTrades, Key: "tradeProposalsSeason", Name: "Trade Proposals Per Season", Kind: KindInt, Default: 4,
		Validator: nonNegative, Description: "How often AI teams offer you trades."},
	{Category: CategoryTrades, Key: "rookiesTradable", Name: "Draft Picks Tradable After Draft", Kind: KindBool, Default: true,
		GodModeRequired: GodModeExistingLeagueOnly, ShowOnlyIf: existingLeague},

	// Game Modes
	{Category: CategoryGameModes, Key: "difficulty", Name: "Difficulty", Kind: KindFloatValuesOrCustom, Default: 0.0,
		Options: []Option{
			{Key: "-0.25", Label: "Easy"},
			{Key: "0", Label: "Normal"},
			{Key: "0.25", Label: "Hard"},
			{Key: "1", Label: "Insane"},
		},
		Description: "Makes trades, free agency and the draft harder. Lowering it disqualifies achievements."},
	{Category: CategoryGameModes, Key: "spectator", Name: "Spectator Mode", Kind: KindBool, Default: false,
		Description: "AI controls every team."},
	{Category: CategoryGameModes, Key: "challengeNoDraftPicks", Name: "No Draft Picks", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeNoFreeAgents", Name: "No Free Agents", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeNoTrades", Name: "No Trades", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeNoRatings", Name: "No Visible Ratings", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeLoseBestPlayer", Name: "Lose Best Player Every Season", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeFiredLuxuryTax", Name: "Fired For Paying Luxury Tax", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeFiredMissPlayoffs", Name: "Fired For Missing Playoffs", Kind: KindBool, Default: false},
	{Category: CategoryGameModes, Key: "challengeSisyphusMode", Name: "Sisyphus Mode", Kind: KindBool, Default: false,
		Description: "Your team is replaced with the worst roster after every title."},
	{Category: CategoryGameModes, Key: "challengeThanosMode", Name: "Thanos Mode", Kind: KindRangePercent, Default: 0.0,
		Description: "Probability each season that half the league's players are wiped out."},
	{Category: CategoryGameModes, Key: "thanosCooldownEnd", Name: "Thanos Cooldown Seasons", Kind: KindIntOrNull, Default: nil,
		GodModeRequired: GodModeAlways, ShowOnlyIf: existingLeague, Validator: nonNegative,
		Description:     "Seasons before Thanos Mode can strike again."},
	{Category: CategoryGameModes, Key: "repeatSeason", Name: "Groundhog Day", Kind: KindBool, Default: false,
		GodModeRequired: GodModeAlways, Description: "Replay the current season over and over."},

	// UI
	{Category: CategoryUI, Key: "autoDeleteOldBoxScores", Name: "Auto Delete Old Box Scores", Kind: KindBool, Default: true},
	{Category: CategoryUI, Key: "numWatchColors", Name: "# Watch List Colors", Kind: KindInt, Default: 1,
		Validator: all(atLeast(1), atMost(6))},
	{Category: CategoryUI, Key: "fantasyPoints", Name: "Fantasy Points Scoring", Kind: KindString, Default: "standard",
		Options: []Option{
			{Key: "standard", Label: "Standard"},
			{Key: "draftKings", Label: "DraftKings"},
			{Key: "fanDuel", Label: "FanDuel"},
			{Key: "yahoo", Label: "Yahoo"},
		}},
	{Category: CategoryUI, Key: "showRookieLeaderboards", Name: "Separate Rookie Leaderboards", Kind: KindBool, Default: false},
	{Category: CategoryUI, Key: "numDaysInBoxScoreHistory", Name: "Box Score History Days", Kind: KindIntOrNull, Default: nil,
		Validator: positive, Description: "Box scores older than this are deleted. Blank keeps a full season."},
}

// Catalog returns a copy of every descriptor, variants included.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	for i, d := range catalog {
		out[i] = d.clone()
	}
	return out
}

// Lookup returns every variant of key.
func Lookup(key string) []Descriptor {
	var out []Descriptor
	for _, d := range catalog {
		if d.Key == key {
			out = append(out, d.clone())
		}
	}
	return out
}

// Keys returns the distinct keys of schema in order.
func Keys(schema []Descriptor) []string {
	seen := make(map[string]struct{}, len(schema))
	var out []string
	for _, d := range schema {
		if _, ok := seen[d.Key]; ok {
			continue
		}
		seen[d.Key] = struct{}{}
		out = append(out, d.Key)
	}
	return out
}

// DefaultValues returns the default of every key. Variants of one key share
// a default, so the first wins. The structured keys default to nil, which
// means the worker's built-in tables.
func DefaultValues() Values {
	out := make(Values, len(catalog)+2)
	for _, d := range catalog {
		if _, ok := out[d.Key]; !ok {
			out[d.Key] = cloneDefault(d.Default)
		}
	}
	out[KeyGodMode] = false
	out[KeyGodModeInPast] = false
	return out
}

// allVisibilities enumerates every combination of contextual flags.
func allVisibilities() []Visibility {
	var out []Visibility
	for i := range 16 {
		out = append(out, Visibility{
			NewLeague:                i&1 != 0,
			HasPlayers:               i&2 != 0,
			RealPlayers:              i&4 != 0,
			DefaultNewLeagueSettings: i&8 != 0,
		})
	}
	return out
}

// CheckCatalog reports every structural problem of schema: a key with two
// active variants in some context, a partner that does not exist, and, when
// snapshotKeys is not nil, a key the snapshot lacks.
func CheckCatalog(schema []Descriptor, snapshotKeys []string) error {
	var errs []error
	for _, vis := range allVisibilities() {
		if _, err := Resolve(schema, vis); err != nil {
			errs = append(errs, fmt.Errorf("%+v: %w", vis, err))
		}
	}
	known := make(map[string]struct{}, len(schema))
	for _, d := range schema {
		known[d.Key] = struct{}{}
	}
	for _, d := range schema {
		for _, p := range d.Partners {
			if _, ok := known[p]; !ok {
				errs = append(errs, fmt.Errorf(messages.SettingsUnknownPartnerFmt, d.Key, p))
			}
		}
	}
	if snapshotKeys != nil {
		have := make(map[string]struct{}, len(snapshotKeys))
		for _, k := range snapshotKeys {
			have[k] = struct{}{}
		}
		for _, k := range Keys(schema) {
			if _, ok := have[k]; !ok {
				errs = append(errs, fmt.Errorf(messages.SettingsSnapshotMissingKeyFmt, k))
			}
		}
	}
	return errors.Join(errs...)
}
