package form

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

func (s *Session) editBioInfo(ctx context.Context) error {
	var changeErr error
	raw := s.form.Controller().HandleChangeRaw(settings.KeyPlayerBioInfo)
	e := bioinfo.NewEditor(
		worker.PlayerBioInfoLoader(s.opts.Worker, s.opts.Gender),
		func(v *bioinfo.PlayerBioInfo) { changeErr = raw(v) },
		s.opts.Prefs,
		s.logger,
	)
	if err := e.Open(ctx, s.form.Controller().Snapshot().PlayerBioInfo); err != nil {
		return s.ui.Note(messages.FormErrorTitle, err.Error())
	}
	for e.Status() != rows.StatusClosed {
		if err := s.bioRootStep(e); err != nil {
			return err
		}
	}
	return changeErr
}

func (s *Session) bioRootStep(e *bioinfo.Editor) error {
	options := []string{
		messages.BioMenuCountries, messages.BioMenuNames, messages.BioMenuColleges, messages.BioMenuRaces,
		messages.BioMenuFlag, messages.BioMenuDefaultColleges, messages.BioMenuDefaultRaces, messages.BioMenuSort,
		messages.BioMenuImport, messages.BioMenuExport, messages.BioMenuReset, messages.RowsMenuSave, messages.RowsMenuCancel,
	}
	var action string
	err := s.ui.Select(fmt.Sprintf(messages.BioMenuTitleFmt, len(e.Draft().Countries)), options, &action)
	if errors.Is(err, errBack) {
		action = messages.RowsMenuCancel
	} else if err != nil {
		return err
	}

	var opErr error
	switch action {
	case messages.BioMenuCountries:
		opErr = s.bioCountriesPage(e)
	case messages.BioMenuNames:
		opErr = s.withCountry(e, func(i int) error { return s.bioPage(e, bioinfo.PageNames, i) })
	case messages.BioMenuColleges:
		opErr = s.withCountry(e, func(i int) error { return s.bioPage(e, bioinfo.PageColleges, i) })
	case messages.BioMenuRaces:
		opErr = s.withCountry(e, func(i int) error { return s.bioPage(e, bioinfo.PageRaces, i) })
	case messages.BioMenuFlag:
		opErr = s.withCountry(e, func(i int) error { return s.bioFlagPage(e, i) })
	case messages.BioMenuDefaultColleges:
		opErr = s.bioPage(e, bioinfo.PageColleges, bioinfo.DefaultScope)
	case messages.BioMenuDefaultRaces:
		opErr = s.bioPage(e, bioinfo.PageRaces, bioinfo.DefaultScope)
	case messages.BioMenuSort:
		opErr = s.bioSort(e)
	case messages.BioMenuImport:
		opErr = s.importTable(func(path string) (int, error) {
			f, err := openFile(path)
			if err != nil {
				return 0, err
			}
			defer f.Close()
			if err := e.Import(f); err != nil {
				return 0, err
			}
			return len(e.Draft().Countries), nil
		})
	case messages.BioMenuExport:
		opErr = s.exportTable(func(path string) (string, error) {
			f, err := createFile(path)
			if err != nil {
				return "", err
			}
			if err := e.Export(f); err != nil {
				_ = f.Close()
				return "", err
			}
			if err := f.Close(); err != nil {
				return "", err
			}
			return fmt.Sprintf(messages.BioExportedFmt, path), nil
		})
	case messages.BioMenuReset:
		opErr = e.ResetAll()
	case messages.RowsMenuSave:
		opErr = e.Save()
	case messages.RowsMenuCancel:
		var askErr error
		e.Cancel(func() bool {
			discard := false
			askErr = s.ui.Confirm(messages.FormConfirmDiscard, &discard)
			return askErr == nil && discard
		})
		if askErr != nil && !errors.Is(askErr, errBack) {
			return askErr
		}
	}
	return s.report(opErr)
}

// report shows a recoverable error and keeps going. Ctrl+C still ends the session.
func (s *Session) report(err error) error {
	if err == nil || errors.Is(err, errBack) {
		return nil
	}
	if errors.Is(err, ErrCancelled) {
		return err
	}
	return ignoreBack(s.ui.Note(messages.FormErrorTitle, err.Error()))
}

func (s *Session) withCountry(e *bioinfo.Editor, fn func(int) error) error {
	countries := e.Draft().Countries
	if len(countries) == 0 {
		return nil
	}
	labels := make([]string, len(countries))
	for i, c := range countries {
		labels[i] = c.Country
	}
	var choice string
	if err := s.ui.Select(messages.BioPickCountry, labels, &choice); err != nil {
		return err
	}
	i := slices.Index(labels, choice)
	if i < 0 {
		return nil
	}
	return fn(i)
}

func bioRowLabels(rs []bioinfo.Row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = fmt.Sprintf(messages.RowsItemFmt, i+1, fmt.Sprintf(messages.BioRowItemFmt, r.Name, r.Frequency))
	}
	return out
}

func (s *Session) pickIndex(title string, labels []string) (int, error) {
	if len(labels) == 0 {
		return -1, nil
	}
	var choice string
	if err := s.ui.Select(title, labels, &choice); err != nil {
		return -1, err
	}
	return slices.Index(labels, choice), nil
}

// editBioRow prompts for the name and frequency of r.
func (s *Session) editBioRow(nameTitle string, r bioinfo.Row) (bioinfo.Row, error) {
	if err := s.ui.Input(nameTitle, &r.Name); err != nil {
		return r, err
	}
	if err := s.ui.Input(messages.BioFrequencyTitle, &r.Frequency); err != nil {
		return r, err
	}
	r.Name = strings.TrimSpace(r.Name)
	return r, nil
}

func scopeName(e *bioinfo.Editor, country int) string {
	if country == bioinfo.DefaultScope {
		return messages.BioDefaultScopeLabel
	}
	return e.Draft().Countries[country].Country
}

// bioPage edits the weighted rows of the names, colleges or races page.
func (s *Session) bioPage(e *bioinfo.Editor, page bioinfo.Page, country int) error {
	if err := e.OpenPage(page, country); err != nil {
		return err
	}
	list := bioinfo.ListMain
	if page == bioinfo.PageNames {
		list = bioinfo.ListFirst
	}
	scope := scopeName(e, country)
	for e.Page() == page {
		heading := string(page)
		options := []string{messages.BioPageAdd, messages.BioPageEdit, messages.BioPageDelete}
		if page == bioinfo.PageNames {
			heading = messages.BioPageFirstNames
			if list == bioinfo.ListLast {
				heading = messages.BioPageLastNames
			}
			options = append(options, messages.BioPageFirstNames, messages.BioPageLastNames)
		}
		options = append(options, messages.BioPageReset, messages.BioPageDone, messages.BioPageDiscard)

		var action string
		err := s.ui.Select(fmt.Sprintf(messages.BioPageMenuTitleFmt, scope, heading), options, &action)
		if errors.Is(err, errBack) {
			action = messages.BioPageDiscard
		} else if err != nil {
			return err
		}

		rs := e.PageRows(list)
		var opErr error
		switch action {
		case messages.BioPageAdd:
			var r bioinfo.Row
			if r, opErr = s.editBioRow(messages.BioNameTitle, bioinfo.Row{Frequency: "1"}); opErr == nil {
				opErr = e.SetPageRows(list, append(rs, r))
			}
		case messages.BioPageEdit:
			var i int
			if i, opErr = s.pickIndex(messages.RowsPickRow, bioRowLabels(rs)); opErr == nil && i >= 0 {
				if rs[i], opErr = s.editBioRow(messages.BioNameTitle, rs[i]); opErr == nil {
					opErr = e.SetPageRows(list, rs)
				}
			}
		case messages.BioPageDelete:
			var i int
			if i, opErr = s.pickIndex(messages.RowsPickRow, bioRowLabels(rs)); opErr == nil && i >= 0 {
				opErr = e.SetPageRows(list, slices.Delete(rs, i, i+1))
			}
		case messages.BioPageFirstNames:
			list = bioinfo.ListFirst
		case messages.BioPageLastNames:
			list = bioinfo.ListLast
		case messages.BioPageReset:
			opErr = e.ResetPage()
		case messages.BioPageDone:
			opErr = e.CommitPage()
		case messages.BioPageDiscard:
			opErr = e.CancelPage()
		}
		if err := s.report(opErr); err != nil {
			return err
		}
	}
	return nil
}

// bioCountriesPage edits the country list and frequencies.
func (s *Session) bioCountriesPage(e *bioinfo.Editor) error {
	if err := e.OpenPage(bioinfo.PageCountries, bioinfo.DefaultScope); err != nil {
		return err
	}
	for e.Page() == bioinfo.PageCountries {
		options := []string{
			messages.BioAddCountry, messages.BioEditCountry, messages.BioDeleteCountry,
			messages.BioPageReset, messages.BioPageDone, messages.BioPageDiscard,
		}
		var action string
		err := s.ui.Select(messages.BioMenuCountries, options, &action)
		if errors.Is(err, errBack) {
			action = messages.BioPageDiscard
		} else if err != nil {
			return err
		}

		cs := e.PageCountries()
		labels := make([]string, len(cs))
		for i, c := range cs {
			labels[i] = fmt.Sprintf(messages.BioRowItemFmt, c.Country, c.Frequency)
		}
		var opErr error
		switch action {
		case messages.BioAddCountry:
			var r bioinfo.Row
			if r, opErr = s.editBioRow(messages.BioCountryNameTitle, bioinfo.Row{Frequency: "1"}); opErr == nil {
				opErr = e.AddCountry(r.Name, r.Frequency)
			}
		case messages.BioEditCountry:
			var i int
			if i, opErr = s.pickIndex(messages.BioPickCountry, labels); opErr == nil && i >= 0 {
				var r bioinfo.Row
				if r, opErr = s.editBioRow(messages.BioCountryNameTitle, bioinfo.Row{Name: cs[i].Country, Frequency: cs[i].Frequency}); opErr == nil {
					cs[i].Country, cs[i].Frequency = r.Name, r.Frequency
					opErr = e.SetPageCountries(cs)
				}
			}
		case messages.BioDeleteCountry:
			var i int
			if i, opErr = s.pickIndex(messages.BioPickCountry, labels); opErr == nil && i >= 0 {
				opErr = e.SetPageCountries(slices.Delete(cs, i, i+1))
			}
		case messages.BioPageReset:
			opErr = e.ResetPage()
		case messages.BioPageDone:
			opErr = e.CommitPage()
		case messages.BioPageDiscard:
			opErr = e.CancelPage()
		}
		if err := s.report(opErr); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) bioFlagPage(e *bioinfo.Editor, country int) error {
	if err := e.OpenPage(bioinfo.PageFlag, country); err != nil {
		return err
	}
	flag := e.PageFlag()
	if err := s.ui.Input(messages.BioFlagTitle, &flag); err != nil {
		_ = e.CancelPage()
		return err
	}
	if err := e.SetPageFlag(flag); err != nil {
		return err
	}
	if err := e.CommitPage(); err != nil {
		_ = e.CancelPage()
		return err
	}
	return nil
}

func (s *Session) bioSort(e *bioinfo.Editor) error {
	targets := []string{string(bioinfo.SortCountries), string(bioinfo.SortNames), string(bioinfo.SortColleges)}
	var target string
	if err := s.ui.Select(messages.BioSortTargetTitle, targets, &target); err != nil {
		return err
	}
	order := messages.BioSortByName
	if err := s.ui.Select(messages.BioSortOrderTitle, []string{messages.BioSortByName, messages.BioSortByFrequency}, &order); err != nil {
		return err
	}
	o := bioinfo.SortByName
	if order == messages.BioSortByFrequency {
		o = bioinfo.SortByFrequency
	}
	return e.SortBy(bioinfo.SortTarget(target), o)
}
