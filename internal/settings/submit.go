package settings

import (
	"context"
	"fmt"
	"slices"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

// FieldError names the setting a parse or validation failure belongs to.
type FieldError struct {
	Key  string
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf(messages.FieldErrorFmt, e.Name, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// SubmitInput is everything one submit reads.
type SubmitInput struct {
	// Schema is resolved and in schema order.
	Schema   []Descriptor
	State    State
	Original Values
	Worker   worker.Worker
}

// Submit parses the state into typed values and runs every validator. Every
// setting parses before any validator runs; the first failure of either
// step aborts with a FieldError.
func Submit(ctx context.Context, in SubmitInput) (Values, error) {
	byKey := make(map[string]Descriptor, len(in.Schema))
	for _, d := range in.Schema {
		byKey[d.Key] = d
	}

	out := make(Values, len(in.Schema)+2)
	parse := func(d Descriptor) error {
		if _, done := out[d.Key]; done {
			return nil
		}
		if IsSpecialKey(d.Key) {
			out[d.Key] = specialValue(in.State, d.Key)
			return nil
		}
		v, err := d.Codec().Parse(in.State.Strings[d.Key])
		if err != nil {
			return &FieldError{Key: d.Key, Name: d.Name, Err: err}
		}
		out[d.Key] = v
		return nil
	}
	for _, d := range in.Schema {
		if d.Hidden {
			continue
		}
		if err := parse(d); err != nil {
			return nil, err
		}
		for _, key := range d.Partners {
			partner, ok := byKey[key]
			if !ok {
				return nil, fmt.Errorf(messages.SettingsUnknownPartnerFmt, d.Key, key)
			}
			if err := parse(partner); err != nil {
				return nil, err
			}
		}
	}
	out[KeyGodMode] = in.State.GodMode
	out[KeyGodModeInPast] = in.State.GodModeInPast

	for _, d := range in.Schema {
		if d.Validator == nil {
			continue
		}
		v, ok := out[d.Key]
		if !ok {
			continue
		}
		err := d.Validator(ctx, ValidatorInput{Value: v, Output: out, Original: in.Original, Worker: in.Worker})
		if err != nil {
			return nil, &FieldError{Key: d.Key, Name: d.Name, Err: err}
		}
	}
	return out, nil
}

func specialValue(s State, key string) any {
	switch key {
	case KeyInjuries:
		if s.Injuries != nil {
			return slices.Clone(s.Injuries)
		}
	case KeyTragicDeaths:
		if s.TragicDeaths != nil {
			return slices.Clone(s.TragicDeaths)
		}
	case KeyPlayerBioInfo:
		if s.PlayerBioInfo != nil {
			return s.Clone().PlayerBioInfo
		}
	}
	// Unset tables stay untyped nil so encoders treat them as absent.
	return nil
}
