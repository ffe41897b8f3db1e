package messages

// Worker messages for defaults and worker-backed validation.
const (
	WorkerDecodeDefaultsFmt = "decode built-in defaults: %w"
	WorkerUnknownGenderFmt  = "unknown gender %q"

	PlayoffRoundsRequired    = "Must have at least one round of playoffs."
	PlayoffByesNegative      = "Number of playoff byes cannot be negative."
	PlayoffTooManyByesFmt    = "%d playoff byes is too many for %d rounds of playoffs."
	PlayoffNotEnoughTeamsFmt = "Your league has %d active teams, which is not enough for %d rounds of playoffs (%d teams needed)."
	PlayoffTooManyRoundsFmt  = "Your league has %d active teams, which is not enough for %d rounds of playoffs."
	PlayoffByConfByesFmt     = "With playoffs split by conference, the number of playoff byes must be divisible by %d."
	PlayoffByConfTeamsFmt    = "With playoffs split by conference, %d playoff teams cannot be split evenly between %d conferences."

	PointsFormulaSyntaxFmt    = "Invalid points formula: %v"
	PointsFormulaEvalFmt      = "Points formula failed to evaluate: %v"
	PointsFormulaNotNumber    = "Points formula must evaluate to a number."
	PointsFormulaForbiddenFmt = "Points formula cannot use %q."
)
