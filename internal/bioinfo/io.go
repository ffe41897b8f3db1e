package bioinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

// exportFile is the league-file shape that player bio info is exchanged in.
type exportFile struct {
	GameAttributes struct {
		PlayerBioInfo *PlayerBioInfo `json:"playerBioInfo"`
	} `json:"gameAttributes"`
}

// Encode writes info wrapped as {"gameAttributes":{"playerBioInfo":...}}.
func Encode(w io.Writer, info *PlayerBioInfo) error {
	if info == nil {
		info = &PlayerBioInfo{}
	}
	var file exportFile
	file.GameAttributes.PlayerBioInfo = info
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf(messages.BioEncodeFmt, err)
	}
	return nil
}

// Decode reads the wrapped form written by Encode.
func Decode(r io.Reader) (*PlayerBioInfo, error) {
	var file exportFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf(messages.BioInvalidJSONFmt, err)
	}
	if file.GameAttributes.PlayerBioInfo == nil {
		return nil, errors.New(messages.BioMissingPlayerBioInfo)
	}
	return file.GameAttributes.PlayerBioInfo, nil
}
