package messages

// League snapshot messages.
const (
	LeagueReadFmt          = "read %s: %w"
	LeagueDecodeFmt        = "decode %s: %w"
	LeagueEncodeFmt        = "encode %s: %w"
	LeagueWriteFmt         = "write %s: %w"
	LeagueUnknownFormatFmt = "unsupported file extension %q (use .toml, .json, .yaml or .yml)"
	LeagueSpecialDecodeFmt = "decode %s: %w"
)
