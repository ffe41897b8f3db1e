package bioinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/prefs"
	"github.com/leaguekit/leaguesettings/internal/rows"
)

// Page is a sub-page of the editor. Sub-pages edit a copy of one facet and
// either commit it back to the draft or discard it.
type Page string

const (
	PageRoot      Page = ""
	PageCountries Page = "countries"
	PageNames     Page = "names"
	PageColleges  Page = "colleges"
	PageRaces     Page = "races"
	PageFlag      Page = "flag"
)

// DefaultScope selects the league-wide defaults instead of a country on the
// colleges and races pages.
const DefaultScope = -1

// List selects one row list of a sub-page.
type List int

const (
	// ListMain is the only list of the colleges and races pages.
	ListMain List = iota
	ListFirst
	ListLast
)

// Loader fetches the built-in defaults.
type Loader func(ctx context.Context) (Defaults, error)

type subPage struct {
	page      Page
	country   int
	main      []Row
	first     []Row
	last      []Row
	countries []CountryDraft
	flag      string
}

// Editor edits player bio info through a Draft kept private until Save.
type Editor struct {
	load     Loader
	onChange func(*PlayerBioInfo)
	store    prefs.Store
	logger   *zap.Logger

	status   rows.Status
	defaults Defaults
	draft    Draft
	sub      *subPage
	dirty    bool
}

// NewEditor creates a closed editor. store holds sort preferences and may be nil.
func NewEditor(load Loader, onChange func(*PlayerBioInfo), store prefs.Store, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = prefs.NewMemory()
	}
	return &Editor{load: load, onChange: onChange, store: store, logger: logger}
}

// Status reports the lifecycle state.
func (e *Editor) Status() rows.Status { return e.status }

// Page reports the open sub-page, or PageRoot.
func (e *Editor) Page() Page {
	if e.sub == nil {
		return PageRoot
	}
	return e.sub.page
}

// PageCountry reports the country index of the open sub-page.
func (e *Editor) PageCountry() int {
	if e.sub == nil {
		return DefaultScope
	}
	return e.sub.country
}

// Draft returns a copy of the committed draft.
func (e *Editor) Draft() Draft { return e.draft.Clone() }

// Defaults returns the defaults fetched when the editor opened.
func (e *Editor) Defaults() Defaults { return e.defaults }

// Dirty reports whether anything was committed since the editor opened.
func (e *Editor) Dirty() bool { return e.dirty }

// Open fetches defaults and merges raw into a fresh draft.
func (e *Editor) Open(ctx context.Context, raw *PlayerBioInfo) error {
	if e.status != rows.StatusClosed {
		return errors.New(messages.EditorAlreadyOpen)
	}
	e.status = rows.StatusLoading
	defaults, err := e.load(ctx)
	if err != nil {
		e.status = rows.StatusClosed
		e.logger.Warn("load player bio info defaults failed", zap.Error(err))
		return fmt.Errorf(messages.EditorLoadDefaultsFmt, err)
	}
	e.defaults = defaults
	e.setDraft(Merge(raw, defaults))
	e.dirty = false
	e.sub = nil
	e.status = rows.StatusReady
	return nil
}

func (e *Editor) setDraft(d Draft) {
	ApplySort(&d, e.store)
	e.draft = d
}

func (e *Editor) atRoot() error {
	if e.status != rows.StatusReady {
		return rows.ErrEditorClosed
	}
	if e.sub != nil {
		return errors.New(messages.BioPageNotRoot)
	}
	return nil
}

func (e *Editor) onPage() error {
	if e.status != rows.StatusReady {
		return rows.ErrEditorClosed
	}
	if e.sub == nil {
		return errors.New(messages.BioNoPageOpen)
	}
	return nil
}

func (e *Editor) checkCountry(i int, allowDefault bool) error {
	if allowDefault && i == DefaultScope {
		return nil
	}
	if i < 0 || i >= len(e.draft.Countries) {
		return fmt.Errorf(messages.BioCountryIndexFmt, i)
	}
	return nil
}

// OpenPage opens a sub-page on a copy of the facet it edits. country is an
// index into Draft().Countries; the colleges and races pages also accept DefaultScope.
func (e *Editor) OpenPage(p Page, country int) error {
	if e.status != rows.StatusReady {
		return rows.ErrEditorClosed
	}
	if e.sub != nil {
		return fmt.Errorf(messages.BioPageOpenFmt, e.sub.page)
	}
	sub := &subPage{page: p, country: country}
	switch p {
	case PageCountries:
		sub.country = DefaultScope
		sub.countries = e.draft.Clone().Countries
	case PageNames:
		if err := e.checkCountry(country, false); err != nil {
			return err
		}
		c := e.draft.Countries[country]
		sub.first, sub.last = slices.Clone(c.FirstNames), slices.Clone(c.LastNames)
	case PageColleges:
		if err := e.checkCountry(country, true); err != nil {
			return err
		}
		if country == DefaultScope {
			sub.main = slices.Clone(e.draft.DefaultColleges)
		} else {
			sub.main = slices.Clone(e.draft.Countries[country].Colleges)
		}
	case PageRaces:
		if err := e.checkCountry(country, true); err != nil {
			return err
		}
		if country == DefaultScope {
			sub.main = slices.Clone(e.draft.DefaultRaces)
		} else {
			sub.main = slices.Clone(e.draft.Countries[country].Races)
		}
	case PageFlag:
		if err := e.checkCountry(country, false); err != nil {
			return err
		}
		sub.flag = e.draft.Countries[country].Flag
	default:
		return fmt.Errorf(messages.BioPageUnknownFmt, p)
	}
	e.sub = sub
	return nil
}

// PageRows returns a copy of one row list of the open sub-page.
func (e *Editor) PageRows(l List) []Row {
	if e.sub == nil {
		return nil
	}
	switch l {
	case ListFirst:
		return slices.Clone(e.sub.first)
	case ListLast:
		return slices.Clone(e.sub.last)
	}
	return slices.Clone(e.sub.main)
}

// SetPageRows replaces one row list of the open sub-page.
func (e *Editor) SetPageRows(l List, rs []Row) error {
	if err := e.onPage(); err != nil {
		return err
	}
	rs = slices.Clone(rs)
	switch l {
	case ListFirst:
		e.sub.first = rs
	case ListLast:
		e.sub.last = rs
	default:
		e.sub.main = rs
	}
	return nil
}

// PageCountries returns a copy of the country list of the countries page.
func (e *Editor) PageCountries() []CountryDraft {
	if e.sub == nil {
		return nil
	}
	out := make([]CountryDraft, len(e.sub.countries))
	for i, c := range e.sub.countries {
		out[i] = c.Clone()
	}
	return out
}

// SetPageCountries replaces the country list of the countries page.
func (e *Editor) SetPageCountries(cs []CountryDraft) error {
	if err := e.onPage(); err != nil {
		return err
	}
	e.sub.countries = make([]CountryDraft, len(cs))
	for i, c := range cs {
		e.sub.countries[i] = c.Clone()
	}
	return nil
}

// AddCountry appends a country to the countries page. Its facets start from
// the defaults: built-in names when the country is known, and the current
// default colleges and races.
func (e *Editor) AddCountry(name, frequency string) error {
	if err := e.onPage(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	e.sub.countries = append(e.sub.countries, e.newCountry(name, frequency))
	return nil
}

func (e *Editor) newCountry(name, frequency string) CountryDraft {
	names := e.defaults.Names[name]
	return CountryDraft{
		Country:         name,
		Frequency:       frequency,
		FirstNames:      toRows(names.First),
		LastNames:       toRows(names.Last),
		DefaultNames:    true,
		Colleges:        slices.Clone(e.draft.DefaultColleges),
		DefaultColleges: true,
		Races:           toRows(e.defaultRacesFor(name)),
		DefaultRaces:    true,
		Flag:            e.defaults.Flags[name],
		DefaultFlag:     true,
	}
}

// defaultRacesFor is the races a country without an override currently gets.
func (e *Editor) defaultRacesFor(country string) Weights {
	defRaces, err := toWeights(messages.BioDefaultScope, e.draft.DefaultRaces)
	if err != nil || equalWeights(defRaces, e.defaults.DefaultRaces) {
		return e.defaults.racesFor(country)
	}
	return defRaces
}

// SetPageFlag sets the flag on the flag page.
func (e *Editor) SetPageFlag(flag string) error {
	if err := e.onPage(); err != nil {
		return err
	}
	e.sub.flag = strings.TrimSpace(flag)
	return nil
}

// PageFlag returns the flag being edited on the flag page.
func (e *Editor) PageFlag() string {
	if e.sub == nil {
		return ""
	}
	return e.sub.flag
}

// ResetPage replaces the open sub-page with the defaults for its facet.
func (e *Editor) ResetPage() error {
	if err := e.onPage(); err != nil {
		return err
	}
	d := e.defaults
	switch e.sub.page {
	case PageCountries:
		e.sub.countries = Merge(nil, d).Countries
	case PageNames:
		names := d.Names[e.pageCountryName()]
		e.sub.first, e.sub.last = toRows(names.First), toRows(names.Last)
	case PageColleges:
		if e.sub.country == DefaultScope {
			e.sub.main = toRows(d.Colleges)
		} else {
			e.sub.main = slices.Clone(e.draft.DefaultColleges)
		}
	case PageRaces:
		if e.sub.country == DefaultScope {
			e.sub.main = toRows(d.DefaultRaces)
		} else {
			e.sub.main = toRows(e.defaultRacesFor(e.pageCountryName()))
		}
	case PageFlag:
		e.sub.flag = d.Flags[e.pageCountryName()]
	}
	return nil
}

func (e *Editor) pageCountryName() string {
	if e.sub == nil || e.sub.country < 0 || e.sub.country >= len(e.draft.Countries) {
		return ""
	}
	return e.draft.Countries[e.sub.country].Country
}

// CommitPage validates the open sub-page and writes it back to the draft.
// On error the sub-page stays open with its edits.
func (e *Editor) CommitPage() error {
	if err := e.onPage(); err != nil {
		return err
	}
	if err := e.commit(); err != nil {
		e.logger.Info("player bio info page rejected", zap.String("page", string(e.sub.page)), zap.Error(err))
		return err
	}
	e.sub = nil
	e.dirty = true
	ApplySort(&e.draft, e.store)
	return nil
}

func (e *Editor) commit() error {
	sub := e.sub
	d := e.defaults
	switch sub.page {
	case PageCountries:
		if err := validateCountries(sub.countries); err != nil {
			return err
		}
		e.draft.Countries = sub.countries
	case PageNames:
		c := &e.draft.Countries[sub.country]
		if err := validateNames(c.Country, sub.first, sub.last); err != nil {
			return err
		}
		c.FirstNames, c.LastNames = sub.first, sub.last
		names := d.Names[c.Country]
		c.DefaultNames = sameRows(sub.first, names.First) && sameRows(sub.last, names.Last)
	case PageColleges:
		return e.commitColleges(sub)
	case PageRaces:
		return e.commitRaces(sub)
	case PageFlag:
		c := &e.draft.Countries[sub.country]
		c.Flag = sub.flag
		c.DefaultFlag = sub.flag == d.Flags[c.Country]
	}
	return nil
}

func (e *Editor) commitColleges(sub *subPage) error {
	if sub.country == DefaultScope {
		if len(sub.main) == 0 {
			return errors.New(messages.BioDefaultCollegesEmpty)
		}
		if err := validateRows(messages.BioDefaultScope, sub.main); err != nil {
			return err
		}
		e.draft.DefaultColleges = sub.main
		for i := range e.draft.Countries {
			if e.draft.Countries[i].DefaultColleges {
				e.draft.Countries[i].Colleges = slices.Clone(sub.main)
			}
		}
		return nil
	}
	c := &e.draft.Countries[sub.country]
	if len(sub.main) == 0 {
		return fmt.Errorf(messages.BioCollegesRequiredFmt, c.Country)
	}
	if err := validateRows(c.Country, sub.main); err != nil {
		return err
	}
	c.Colleges = sub.main
	base, _ := toWeights(messages.BioDefaultScope, e.draft.DefaultColleges)
	c.DefaultColleges = sameRows(sub.main, base)
	return nil
}

func (e *Editor) commitRaces(sub *subPage) error {
	if sub.country == DefaultScope {
		if len(sub.main) == 0 {
			return errors.New(messages.BioDefaultRacesEmpty)
		}
		if err := validateRows(messages.BioDefaultScope, sub.main); err != nil {
			return err
		}
		e.draft.DefaultRaces = sub.main
		for i := range e.draft.Countries {
			if e.draft.Countries[i].DefaultRaces {
				e.draft.Countries[i].Races = toRows(e.defaultRacesFor(e.draft.Countries[i].Country))
			}
		}
		return nil
	}
	c := &e.draft.Countries[sub.country]
	if len(sub.main) == 0 {
		return fmt.Errorf(messages.BioRacesRequiredFmt, c.Country)
	}
	if err := validateRows(c.Country, sub.main); err != nil {
		return err
	}
	c.Races = sub.main
	c.DefaultRaces = sameRows(sub.main, e.defaultRacesFor(c.Country))
	return nil
}

// sameRows reports whether valid rows hold exactly the weights w.
func sameRows(rs []Row, w Weights) bool {
	got, err := toWeights("", rs)
	return err == nil && equalWeights(got, w)
}

// CancelPage discards the open sub-page.
func (e *Editor) CancelPage() error {
	if err := e.onPage(); err != nil {
		return err
	}
	e.sub = nil
	return nil
}

// SortBy stores a sort preference and reorders the draft.
func (e *Editor) SortBy(t SortTarget, order SortOrder) error {
	if err := e.atRoot(); err != nil {
		return err
	}
	if err := e.store.Set(prefKey(t), string(order)); err != nil {
		return err
	}
	ApplySort(&e.draft, e.store)
	return nil
}

// ResetAll replaces the draft with the plain defaults.
func (e *Editor) ResetAll() error {
	if err := e.atRoot(); err != nil {
		return err
	}
	e.setDraft(Merge(nil, e.defaults))
	e.dirty = true
	return nil
}

// Import replaces the draft with a JSON export. On error the draft is untouched.
func (e *Editor) Import(r io.Reader) error {
	if err := e.atRoot(); err != nil {
		return err
	}
	raw, err := Decode(r)
	if err != nil {
		e.logger.Info("import player bio info failed", zap.Error(err))
		return err
	}
	e.setDraft(Merge(raw, e.defaults))
	e.dirty = true
	return nil
}

// Export writes the pruned draft as JSON.
func (e *Editor) Export(w io.Writer) error {
	if err := e.atRoot(); err != nil {
		return err
	}
	if err := ValidateDraft(e.draft); err != nil {
		return err
	}
	info, err := Prune(e.draft, e.defaults)
	if err != nil {
		return err
	}
	return Encode(w, info)
}

// Save validates the draft, hands the pruned value to onChange and closes.
// When validation fails the editor stays open with the draft intact.
func (e *Editor) Save() error {
	if err := e.atRoot(); err != nil {
		return err
	}
	if err := ValidateDraft(e.draft); err != nil {
		e.logger.Info("player bio info validation failed", zap.Error(err))
		return err
	}
	info, err := Prune(e.draft, e.defaults)
	if err != nil {
		return err
	}
	if e.onChange != nil {
		e.onChange(info)
	}
	e.close()
	return nil
}

// Cancel discards the draft, asking confirm first when it is dirty.
// Cancel reports whether the editor closed.
func (e *Editor) Cancel(confirm func() bool) bool {
	if e.status == rows.StatusClosed {
		return true
	}
	if e.dirty && confirm != nil && !confirm() {
		return false
	}
	e.close()
	return true
}

func (e *Editor) close() {
	e.status = rows.StatusClosed
	e.draft = Draft{}
	e.sub = nil
	e.dirty = false
}
