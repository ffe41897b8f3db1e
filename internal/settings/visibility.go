package settings

import (
	"fmt"
	"slices"

	"github.com/leaguekit/leaguesettings/internal/messages"
)

// SettingNeedsGodMode reports whether a setting with req is locked unless god
// mode is on.
func SettingNeedsGodMode(req GodModeRequirement, newLeague bool) bool {
	if req == GodModeNone {
		return false
	}
	return req == GodModeAlways || !newLeague
}

// SettingIsEnabled reports whether a setting with req can be edited.
func SettingIsEnabled(godMode, newLeague bool, req GodModeRequirement) bool {
	return godMode || !SettingNeedsGodMode(req, newLeague)
}

// Resolve selects the one active variant of every key in vis, keeping schema
// order. Keys without an active variant are left out; two active variants of
// one key is an error.
func Resolve(schema []Descriptor, vis Visibility) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(schema))
	seen := make(map[string]struct{}, len(schema))
	for _, d := range schema {
		if !d.Active(vis) {
			continue
		}
		if _, dup := seen[d.Key]; dup {
			return nil, fmt.Errorf(messages.SettingsDuplicateVariantFmt, d.Key)
		}
		seen[d.Key] = struct{}{}
		out = append(out, d.clone())
	}
	return out, nil
}

// VisibleOptions controls which resolved settings are listed.
type VisibleOptions struct {
	GodMode   bool
	NewLeague bool
	// ShowGodModeSettings lists locked settings as disabled instead of hiding them.
	ShowGodModeSettings bool
}

// CategoryGroup is one category with its visible settings in schema order.
type CategoryGroup struct {
	Category Category
	Settings []Descriptor
}

// VisibleCategories groups resolved settings by category in Categories order
// and drops hidden settings and empty categories.
func VisibleCategories(resolved []Descriptor, opts VisibleOptions) []CategoryGroup {
	byCategory := make(map[Category][]Descriptor)
	for _, d := range resolved {
		if d.Hidden {
			continue
		}
		if !opts.ShowGodModeSettings && !SettingIsEnabled(opts.GodMode, opts.NewLeague, d.GodModeRequired) {
			continue
		}
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}
	var out []CategoryGroup
	for _, c := range Categories {
		if settings := byCategory[c]; len(settings) > 0 {
			out = append(out, CategoryGroup{Category: c, Settings: slices.Clone(settings)})
		}
	}
	return out
}
