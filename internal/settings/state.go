package settings

import (
	"fmt"
	"maps"
	"slices"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// State is the working copy a form edits. Every scalar setting is held as
// its codec string; only the special keys hold structured values.
type State struct {
	Strings       map[string]string
	Injuries      []rows.Injury
	TragicDeaths  []rows.TragicDeath
	PlayerBioInfo *bioinfo.PlayerBioInfo
	GodMode       bool
	GodModeInPast bool
	// Preset is the active game simulation preset.
	Preset string
}

// Clone returns a copy of s that shares nothing mutable with it.
func (s State) Clone() State {
	s.Strings = maps.Clone(s.Strings)
	s.Injuries = slices.Clone(s.Injuries)
	s.TragicDeaths = slices.Clone(s.TragicDeaths)
	if s.PlayerBioInfo != nil {
		info := clonePlayerBioInfo(*s.PlayerBioInfo)
		s.PlayerBioInfo = &info
	}
	return s
}

func clonePlayerBioInfo(p bioinfo.PlayerBioInfo) bioinfo.PlayerBioInfo {
	out := bioinfo.PlayerBioInfo{Frequencies: p.Frequencies.Clone()}
	if p.Default != nil {
		def := *p.Default
		def.Colleges = def.Colleges.Clone()
		def.Races = def.Races.Clone()
		out.Default = &def
	}
	if p.Countries != nil {
		out.Countries = make(map[string]bioinfo.CountryOverride, len(p.Countries))
		for k, c := range p.Countries {
			c.Colleges = c.Colleges.Clone()
			c.Races = c.Races.Clone()
			if c.Names != nil {
				c.Names = &bioinfo.Names{First: c.Names.First.Clone(), Last: c.Names.Last.Clone()}
			}
			out.Countries[k] = c
		}
	}
	return out
}

// Target says which part of a control produced a change.
type Target int

const (
	// TargetInput is a plain input, checkbox or select.
	TargetInput Target = iota
	// TargetSelect is the preset dropdown of a floatValuesOrCustom control.
	TargetSelect
	// TargetText is the free text box of a floatValuesOrCustom control.
	TargetText
)

// ChangeEvent is one edit of a control.
type ChangeEvent struct {
	Target  Target
	Value   string
	Checked bool
}

// ControllerOptions configures NewController.
type ControllerOptions struct {
	// OnDirty is notified after every mutation.
	OnDirty func()
	// Defaults enables Reset. It is a typed snapshot like the one the form starts from.
	Defaults Values
}

// Controller owns the form state and mediates every mutation.
type Controller struct {
	byKey    map[string]Descriptor
	state    State
	defaults Values
	onDirty  func()
}

// NewController stringifies every scalar setting of schema from snapshot.
// schema should already be resolved to one descriptor per key.
func NewController(schema []Descriptor, snapshot Values, opts ControllerOptions) (*Controller, error) {
	c := &Controller{
		byKey:    make(map[string]Descriptor, len(schema)),
		defaults: opts.Defaults,
		onDirty:  opts.OnDirty,
	}
	st := State{Strings: make(map[string]string, len(schema)), Preset: PresetDefault}
	for _, d := range schema {
		if _, dup := c.byKey[d.Key]; dup {
			return nil, fmt.Errorf(messages.SettingsDuplicateVariantFmt, d.Key)
		}
		c.byKey[d.Key] = d
		if IsSpecialKey(d.Key) {
			if err := setSpecial(&st, d.Key, snapshot[d.Key]); err != nil {
				return nil, err
			}
			continue
		}
		s, err := d.Codec().Stringify(snapshot[d.Key])
		if err != nil {
			return nil, &FieldError{Key: d.Key, Name: d.Name, Err: err}
		}
		st.Strings[d.Key] = s
	}
	st.GodMode, _ = snapshot[KeyGodMode].(bool)
	st.GodModeInPast, _ = snapshot[KeyGodModeInPast].(bool)
	c.state = st
	return c, nil
}

func setSpecial(st *State, key string, v any) error {
	switch key {
	case KeyInjuries:
		x, ok := v.([]rows.Injury)
		if !ok && v != nil {
			return fmt.Errorf(messages.SettingsRawTypeFmt, key, "[]rows.Injury", v)
		}
		st.Injuries = slices.Clone(x)
	case KeyTragicDeaths:
		x, ok := v.([]rows.TragicDeath)
		if !ok && v != nil {
			return fmt.Errorf(messages.SettingsRawTypeFmt, key, "[]rows.TragicDeath", v)
		}
		st.TragicDeaths = slices.Clone(x)
	case KeyPlayerBioInfo:
		x, ok := v.(*bioinfo.PlayerBioInfo)
		if !ok && v != nil {
			return fmt.Errorf(messages.SettingsRawTypeFmt, key, "*bioinfo.PlayerBioInfo", v)
		}
		if x != nil {
			info := clonePlayerBioInfo(*x)
			x = &info
		}
		st.PlayerBioInfo = x
	default:
		return fmt.Errorf(messages.SettingsUnknownKeyFmt, key)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State { return c.state.Clone() }

// Restore replaces the state with a copy of s.
func (c *Controller) Restore(s State) {
	c.state = s.Clone()
	c.dirty()
}

// Value returns the state string of key.
func (c *Controller) Value(key string) string { return c.state.Strings[key] }

// Descriptor returns the descriptor the controller tracks for key.
func (c *Controller) Descriptor(key string) (Descriptor, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

func (c *Controller) dirty() {
	if c.onDirty != nil {
		c.onDirty()
	}
}

// set stores a manual edit. Editing a key the active preset set resets the
// preset to PresetDefault.
func (c *Controller) set(key, value string) {
	c.state.Strings[key] = value
	if c.state.Preset != PresetDefault && presetTouches(c.state.Preset, key) {
		c.state.Preset = PresetDefault
	}
	c.dirty()
}

// HandleChange returns the edit handler of a scalar setting.
func (c *Controller) HandleChange(key string, kind Kind) func(ChangeEvent) {
	return func(ev ChangeEvent) {
		switch kind {
		case KindBool:
			c.set(key, fmt.Sprint(ev.Checked))
		case KindFloatValuesOrCustom:
			c.set(key, c.customTuple(key, ev))
		default:
			c.set(key, ev.Value)
		}
	}
}

func (c *Controller) customTuple(key string, ev ChangeEvent) string {
	_, prev, err := DecodeCustomTuple(c.state.Strings[key])
	if err != nil {
		prev = ""
	}
	switch {
	case ev.Target == TargetText:
		return EncodeCustomTuple(true, ev.Value)
	case ev.Value == CustomOptionKey:
		return EncodeCustomTuple(true, prev)
	}
	return EncodeCustomTuple(false, ev.Value)
}

// HandleChangeRaw returns the handler through which a structured editor
// hands back its finished value.
func (c *Controller) HandleChangeRaw(key string) func(any) error {
	return func(v any) error {
		if !IsSpecialKey(key) {
			return fmt.Errorf(messages.SettingsUnknownKeyFmt, key)
		}
		if err := setSpecial(&c.state, key, v); err != nil {
			return err
		}
		c.dirty()
		return nil
	}
}

// SetGodMode turns god mode on or off. Turning it on is remembered in
// GodModeInPast for good.
func (c *Controller) SetGodMode(on bool) {
	c.state.GodMode = on
	if on {
		c.state.GodModeInPast = true
	}
	c.dirty()
}

// ApplyPreset overwrites every setting preset name touches.
func (c *Controller) ApplyPreset(name string) error {
	if name == PresetDefault {
		c.state.Preset = PresetDefault
		c.dirty()
		return nil
	}
	values, ok := PresetValues(name)
	if !ok {
		return fmt.Errorf(messages.SettingsUnknownPresetFmt, name)
	}
	next := maps.Clone(c.state.Strings)
	for key, v := range values {
		d, ok := c.byKey[key]
		if !ok {
			return fmt.Errorf(messages.SettingsPresetKeyFmt, name, key)
		}
		s, err := d.Codec().Stringify(v)
		if err != nil {
			return &FieldError{Key: key, Name: d.Name, Err: err}
		}
		next[key] = s
	}
	c.state.Strings = next
	c.state.Preset = name
	c.dirty()
	return nil
}

// Preset returns the active game simulation preset.
func (c *Controller) Preset() string { return c.state.Preset }

// CanReset reports whether Reset is available.
func (c *Controller) CanReset() bool { return c.defaults != nil }

// Reset restores key from the defaults snapshot.
func (c *Controller) Reset(key string) error {
	d, ok := c.byKey[key]
	if !ok {
		return fmt.Errorf(messages.SettingsUnknownKeyFmt, key)
	}
	if c.defaults == nil {
		return fmt.Errorf(messages.SettingsNoDefaultsFmt, key)
	}
	if IsSpecialKey(key) {
		return c.HandleChangeRaw(key)(c.defaults[key])
	}
	s, err := d.Codec().Stringify(c.defaults[key])
	if err != nil {
		return &FieldError{Key: key, Name: d.Name, Err: err}
	}
	c.set(key, s)
	return nil
}
