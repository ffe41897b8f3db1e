package bioinfo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// ValidateDraft checks everything Prune and the worker rely on.
func ValidateDraft(d Draft) error {
	if err := validateCountries(d.Countries); err != nil {
		return err
	}
	for _, c := range d.Countries {
		if err := validateCountry(c); err != nil {
			return err
		}
	}
	if len(d.DefaultColleges) == 0 {
		return errors.New(messages.BioDefaultCollegesEmpty)
	}
	if err := validateRows(messages.BioDefaultScope, d.DefaultColleges); err != nil {
		return err
	}
	if len(d.DefaultRaces) == 0 {
		return errors.New(messages.BioDefaultRacesEmpty)
	}
	if err := validateRows(messages.BioDefaultScope, d.DefaultRaces); err != nil {
		return err
	}
	_, err := parseFraction(messages.BioDefaultScope, d.DefaultFractionSkipCollege)
	return err
}

// validateCountries checks the country list itself: non-empty, unique names
// and positive frequencies.
func validateCountries(countries []CountryDraft) error {
	if len(countries) == 0 {
		return errors.New(messages.BioCountriesEmpty)
	}
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		name := strings.TrimSpace(c.Country)
		if name == "" {
			return errors.New(messages.BioCountryNameBlank)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf(messages.BioCountryDuplicateFmt, name)
		}
		seen[name] = struct{}{}
		if _, ok := rows.PositiveNumber(c.Frequency); !ok {
			return fmt.Errorf(messages.BioCountryFrequencyFmt, name)
		}
	}
	return nil
}

func validateCountry(c CountryDraft) error {
	name := strings.TrimSpace(c.Country)
	if err := validateNames(name, c.FirstNames, c.LastNames); err != nil {
		return err
	}
	if len(c.Colleges) == 0 {
		return fmt.Errorf(messages.BioCollegesRequiredFmt, name)
	}
	if err := validateRows(name, c.Colleges); err != nil {
		return err
	}
	if len(c.Races) == 0 {
		return fmt.Errorf(messages.BioRacesRequiredFmt, name)
	}
	if err := validateRows(name, c.Races); err != nil {
		return err
	}
	_, err := parseFraction(name, c.FractionSkipCollege)
	return err
}

func validateNames(scope string, first, last []Row) error {
	if len(first) == 0 || len(last) == 0 {
		return fmt.Errorf(messages.BioNamesRequiredFmt, scope)
	}
	if err := validateRows(scope, first); err != nil {
		return err
	}
	return validateRows(scope, last)
}

func validateRows(scope string, rs []Row) error {
	_, err := toWeights(scope, rs)
	return err
}
