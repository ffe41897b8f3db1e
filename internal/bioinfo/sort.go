package bioinfo

import (
	"slices"
	"strconv"
	"strings"

	"github.com/leaguekit/leaguesettings/internal/prefs"
)

// SortTarget names a table whose order is a user preference.
type SortTarget string

const (
	SortCountries SortTarget = "countries"
	SortNames     SortTarget = "names"
	SortColleges  SortTarget = "colleges"
)

// SortOrder is how a table is ordered for display.
type SortOrder string

const (
	SortByName      SortOrder = "name"
	SortByFrequency SortOrder = "frequency"
)

func prefKey(t SortTarget) string {
	return "bioinfo.sort." + string(t)
}

// SortOrderFor reads the stored order for t, defaulting to by-name.
func SortOrderFor(store prefs.Store, t SortTarget) SortOrder {
	if store == nil {
		return SortByName
	}
	if v, ok := store.Get(prefKey(t)); ok && SortOrder(v) == SortByFrequency {
		return SortByFrequency
	}
	return SortByName
}

// SortRows orders rows in place. By frequency means highest first with ties
// broken by name; unparseable frequencies sort last.
func SortRows(rs []Row, order SortOrder) {
	slices.SortStableFunc(rs, func(a, b Row) int {
		if order == SortByFrequency {
			if c := compareFrequency(a.Frequency, b.Frequency); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// SortCountryDrafts orders countries in place using the same rules as SortRows.
func SortCountryDrafts(cs []CountryDraft, order SortOrder) {
	slices.SortStableFunc(cs, func(a, b CountryDraft) int {
		if order == SortByFrequency {
			if c := compareFrequency(a.Frequency, b.Frequency); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Country, b.Country)
	})
}

func compareFrequency(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	case fa > fb:
		return -1
	case fa < fb:
		return 1
	}
	return 0
}

// ApplySort orders every table of d according to the stored preferences.
func ApplySort(d *Draft, store prefs.Store) {
	countries := SortOrderFor(store, SortCountries)
	names := SortOrderFor(store, SortNames)
	colleges := SortOrderFor(store, SortColleges)

	SortCountryDrafts(d.Countries, countries)
	SortRows(d.DefaultColleges, colleges)
	for i := range d.Countries {
		SortRows(d.Countries[i].FirstNames, names)
		SortRows(d.Countries[i].LastNames, names)
		SortRows(d.Countries[i].Colleges, colleges)
	}
}
