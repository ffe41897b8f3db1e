package settings

import "github.com/leaguekit/leaguesettings/internal/messages"

// Shape is the kind of control a setting renders as.
type Shape string

const (
	ShapeCheckbox       Shape = "checkbox"
	ShapeRange          Shape = "range"
	ShapeSelect         Shape = "select"
	ShapeSelectOrCustom Shape = "selectOrCustom"
	ShapeText           Shape = "text"
	ShapeCustom         Shape = "custom"
)

// RenderContext is what rendering needs beyond the setting and the state.
type RenderContext struct {
	NewLeague bool
	// OnReset is set only when editing default settings. It enables the
	// restore default affordance.
	OnReset func(key string) error
}

// Control is the render-ready description of one setting.
type Control struct {
	Key         string
	Title       string
	Description string
	Shape       Shape
	Kind        Kind
	Options     []Option
	// Value is the raw state string.
	Value   string
	Checked bool
	// Selected and CustomText split a floatValuesOrCustom state.
	Selected   string
	CustomText string
	Prefix     string
	Suffix     string
	// PercentLabel is set for range controls.
	PercentLabel string
	Disabled     bool
	Tooltip      string
	Resettable   bool
	CustomForm   CustomForm
}

// BuildControl derives the control of d from state. It has no side effects.
func BuildControl(d Descriptor, state State, rc RenderContext) Control {
	c := Control{
		Key:         d.Key,
		Title:       d.Name,
		Description: d.Description,
		Kind:        d.Kind,
		Options:     append([]Option(nil), d.Options...),
		Value:       state.Strings[d.Key],
		Disabled:    !SettingIsEnabled(state.GodMode, rc.NewLeague, d.GodModeRequired),
		Resettable:  rc.OnReset != nil,
		CustomForm:  d.CustomForm,
	}
	if SettingNeedsGodMode(d.GodModeRequired, rc.NewLeague) {
		if d.GodModeRequired == GodModeAlways {
			c.Tooltip = messages.GodModeAlwaysTooltip
		} else {
			c.Tooltip = messages.GodModeExistingLeagueTooltip
		}
	}
	switch d.Decoration {
	case DecorationCurrency:
		c.Prefix, c.Suffix = "$", "M"
	case DecorationPercent:
		c.Suffix = "%"
	}

	switch {
	case d.CustomForm != "" || d.Kind == KindCustom:
		c.Shape = ShapeCustom
		c.Checked = c.Value == "true"
	case d.Kind == KindBool:
		c.Shape = ShapeCheckbox
		c.Checked = c.Value == "true"
	case d.Kind == KindRangePercent:
		c.Shape = ShapeRange
		c.PercentLabel = PercentLabel(c.Value)
	case d.Kind == KindFloatValuesOrCustom:
		c.Shape = ShapeSelectOrCustom
		isCustom, value, err := DecodeCustomTuple(c.Value)
		if err != nil || isCustom || !hasOption(d.Options, value) {
			c.Selected = CustomOptionKey
		} else {
			c.Selected = value
		}
		c.CustomText = value
	case len(d.Options) > 0:
		c.Shape = ShapeSelect
		c.Selected = c.Value
	default:
		c.Shape = ShapeText
	}
	return c
}
