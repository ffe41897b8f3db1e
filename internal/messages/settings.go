package messages

// Settings engine messages: codec, validator, controller and submit errors.
const (
	// FieldErrorFmt prefixes an error with the display name of the setting.
	FieldErrorFmt = "%s: %v"

	CodecNotBoolFmt         = "expected true or false, got %q"
	CodecNotNumberFmt       = "%q is not a valid number"
	CodecNotIntegerFmt      = "%q is not a valid integer"
	CodecInvalidJSONFmt     = "invalid JSON: %v"
	CodecOutOfUnitRangeFmt  = "%v must be between 0 and 1"
	CodecInvalidTuple       = "invalid value, expected [isCustom, value]"
	CodecUnsupportedTypeFmt = "unsupported value type %T"
	CodecSpecialKeyFmt      = "%s is edited by its own editor and has no text form"

	ValidatorPositive             = "Value must be greater than 0."
	ValidatorNonNegative          = "Value must not be negative."
	ValidatorMustBeArray          = "Must be an array."
	ValidatorArrayIntegers        = "Array must contain only positive integers."
	ValidatorArrayLengthFmt       = "Array must contain exactly %d values."
	ValidatorDraftAgesOrder       = "Minimum age must be less than or equal to the maximum age."
	ValidatorAtLeastFmt           = "Value must be at least %s."
	ValidatorAtMostFmt            = "Value must be at most %s."
	ValidatorMinPayrollAboveCap   = "Minimum payroll must be less than or equal to the salary cap."
	ValidatorLuxuryBelowCap       = "Luxury tax payroll must be greater than or equal to the salary cap."
	ValidatorMaxContractBelowMin  = "Max contract must be greater than or equal to the min contract."
	ValidatorMaxLengthBelowMin    = "Max contract length must be greater than or equal to the min contract length."
	ValidatorMinRosterAboveMax    = "Min roster size must be less than or equal to the max roster size."
	ValidatorExpandMaxBelowStep   = "Max # teams must be at least the number of teams added per expansion."
	ValidatorDepthBelowCourt      = "Depth chart length must be at least the number of players on the court."
	ValidatorAutoContractRounds   = "Rookie scale rounds must not exceed the number of draft rounds."
	ValidatorGeneratedBelowRoster = "Each team needs at least the min roster size of generated players."
	ValidatorContestAboveAllStars = "Contest players must not outnumber the All-Star Game players."
	ValidatorArrayNonNegative     = "Array must contain only non-negative numbers."
	ValidatorLotteryTooShortFmt   = "Chances are needed for at least %d teams, one per lottery pick."
	ValidatorLotteryNoChances     = "At least one team needs a chance greater than 0."
	ValidatorRookieScalePairs     = "Each round needs a [first pick, last pick] pair of non-negative salaries."
	ValidatorOvertimesNeedTies    = "Limiting overtimes requires ties or a shootout."
	ValidatorPlayoffsNeedShootout = "Limiting playoff overtimes requires a playoff shootout."

	SettingsSnapshotMissingKeyFmt = "settings snapshot is missing %q"
	SettingsDuplicateVariantFmt   = "setting %q has more than one active variant in this context"
	SettingsUnknownPartnerFmt     = "setting %q lists unknown partner %q"
	SettingsUnknownKeyFmt         = "unknown setting %q"
	SettingsUnknownPresetFmt      = "unknown game simulation preset %q"
	SettingsPresetKeyFmt          = "preset %q sets unknown setting %q"
	SettingsRawTypeFmt            = "%s expects %s, got %T"
	SettingsNoDefaultsFmt         = "cannot reset %q without default settings"
	SettingsSubmitInProgress      = "settings are already being saved"
	SettingsSaveFailed            = "error saving settings"

	GodModeAlwaysTooltip         = "This setting can only be changed in God Mode."
	GodModeExistingLeagueTooltip = "This setting can only be changed in God Mode or when creating a new league."
)
