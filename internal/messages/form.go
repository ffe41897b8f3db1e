package messages

// Interactive form messages.
const (
	FormRequiresTerminal = "the settings editor requires an interactive terminal"
	FormSessionCancelled = "settings session cancelled"
	FormBackRequested    = "back requested"

	FormMainMenuTitle          = "League settings"
	FormMainMenuDirtyTitle     = "League settings (unsaved changes)"
	FormCategoryItemFmt        = "%s (%d)"
	FormMenuPreset             = "Game simulation preset"
	FormMenuGodModeFmt         = "God Mode: %s"
	FormMenuSave               = "Save"
	FormMenuCancel             = "Cancel"
	FormMenuBack               = "Back"
	FormOn                     = "on"
	FormOff                    = "off"
	FormCustomOption           = "Custom"
	FormLockedSuffix           = " (locked)"
	FormSettingItemFmt         = "%s: %s%s"
	FormCustomValueTitleFmt    = "%s (custom value)"
	FormRestoreDefaultFmt      = "Restore default for %s?"
	FormConfirmDiscard         = "Discard unsaved changes?"
	FormConfirmSave            = "Save these changes?"
	FormDiffTitle              = "Changes"
	FormNoChanges              = "No changes."
	FormDiffTruncatedFmt       = "... %d more lines (raise form.diff_lines to see more)"
	FormErrorTitle             = "Could not save"
	FormSaveDeclined           = "save declined"
	FormPresetTitle            = "Game simulation preset"
	FormEnableGodModePrompt    = "Enable God Mode? This is recorded in the league history."
	FormStopOnInjuryGamesTitle = "Stop when a player is injured for at least this many games"
	FormRowsSummaryFmt         = "%d rows"
	FormDefaultValue           = "default"
	FormCustomSuffix           = " (custom)"
	FormEditAction             = "Edit"
	FormRestoreAction          = "Restore default"
	FormDiffCurrentFmt         = "%s (current)"
	FormDiffProposedFmt        = "%s (proposed)"
	FormStopOnInjuryGamesFmt   = "on, %s games"

	RowsMenuTitleFmt    = "%s (%d rows)"
	RowsMenuAdd         = "Add row at top"
	RowsMenuAppend      = "Add row at bottom"
	RowsMenuEdit        = "Edit row"
	RowsMenuClone       = "Clone row"
	RowsMenuDelete      = "Delete row"
	RowsMenuReset       = "Reset to default"
	RowsMenuClear       = "Clear"
	RowsMenuImport      = "Import CSV"
	RowsMenuExport      = "Export CSV"
	RowsMenuSave        = "Save"
	RowsMenuCancel      = "Cancel"
	RowsPickRow         = "Which row?"
	RowsPathTitle       = "File path"
	RowsExportedFmt     = "Exported %d rows to %s"
	RowsItemFmt         = "%d. %s"
	FormRowsImportedFmt = "Imported %d rows from %s"

	BioMenuTitleFmt        = "Player bio info (%d countries)"
	BioMenuCountries       = "Edit countries and frequencies"
	BioMenuNames           = "Edit names for a country"
	BioMenuColleges        = "Edit colleges for a country"
	BioMenuRaces           = "Edit races for a country"
	BioMenuFlag            = "Edit flag for a country"
	BioMenuDefaultColleges = "Edit default colleges"
	BioMenuDefaultRaces    = "Edit default races"
	BioMenuSort            = "Change sort order"
	BioMenuImport          = "Import JSON"
	BioMenuExport          = "Export JSON"
	BioMenuReset           = "Reset to default"
	BioPickCountry         = "Which country?"
	BioPageMenuTitleFmt    = "%s: %s"
	BioPageAdd             = "Add row"
	BioPageEdit            = "Edit row"
	BioPageDelete          = "Delete row"
	BioPageReset           = "Reset to default"
	BioPageDone            = "Done"
	BioPageDiscard         = "Discard changes"
	BioPageFirstNames      = "First names"
	BioPageLastNames       = "Last names"
	BioAddCountry          = "Add country"
	BioEditCountry         = "Edit country"
	BioDeleteCountry       = "Delete country"
	BioCountryNameTitle    = "Country"
	BioFrequencyTitle      = "Frequency"
	BioNameTitle           = "Name"
	BioFlagTitle           = "Flag (emoji or image URL, blank for none)"
	BioSortTargetTitle     = "Sort what?"
	BioSortOrderTitle      = "Sort by"
	BioExportedFmt         = "Exported player bio info to %s"
	BioSortByName          = "Name"
	BioSortByFrequency     = "Frequency"
	BioDefaultScopeLabel   = "All countries (default)"
	BioRowItemFmt          = "%s (%s)"
)
