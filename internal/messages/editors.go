package messages

// Structured editor messages for injuries, tragic deaths and player bio info.
const (
	EditorClosed          = "editor is not open"
	EditorAlreadyOpen     = "editor is already open"
	EditorRowIndexFmt     = "row %d does not exist"
	EditorLoadDefaultsFmt = "load defaults: %w"

	InjuriesEmpty             = "You must define at least one injury type."
	TragicDeathsEmpty         = "You must define at least one type of tragic death."
	InjuryNameBlankFmt        = "Injury %d must have a name."
	InjuryFrequencyFmt        = "Frequency for injury %q must be a positive number."
	InjuryGamesFmt            = "Games for injury %q must be a positive number."
	TragicDeathReasonBlankFmt = "Tragic death %d must have a reason."
	TragicDeathFrequencyFmt   = "Frequency for tragic death %q must be a positive number."

	CSVEmpty             = "CSV file is empty."
	CSVReadFmt           = "read CSV: %w"
	CSVWriteFmt          = "write CSV: %w"
	CSVMissingColumnsFmt = "CSV file is missing required columns: %s"

	BioCountriesEmpty         = "You must define at least one country."
	BioCountryNameBlank       = "Country names cannot be blank."
	BioCountryDuplicateFmt    = "Country names must be unique, but you have multiple countries named %q"
	BioCountryFrequencyFmt    = "Frequency for %s must be a positive number."
	BioNamesRequiredFmt       = "%s must have at least one first name and at least one last name."
	BioRowFrequencyFmt        = "%s: frequency for %q must be a positive number."
	BioRowNameBlankFmt        = "%s: every row must have a name."
	BioFractionSkipCollegeFmt = "%s: fraction of players who skip college must be blank or between 0 and 1."
	BioCollegesRequiredFmt    = "%s must have at least one college."
	BioRacesRequiredFmt       = "%s must have at least one race."
	BioDefaultCollegesEmpty   = "You must define at least one default college."
	BioDefaultRacesEmpty      = "You must define at least one default race."
	BioPageNotRoot            = "finish or cancel the open page before saving"
	BioPageOpenFmt            = "page %s is already open"
	BioNoPageOpen             = "no page is open"
	BioCountryIndexFmt        = "country %d does not exist"
	BioPageUnknownFmt         = "unknown page %q"
	BioInvalidJSONFmt         = "invalid JSON: %v"
	BioMissingPlayerBioInfo   = "JSON file must contain gameAttributes.playerBioInfo"
	BioEncodeFmt              = "encode player bio info: %w"
	BioDefaultScope           = "Default"
)
