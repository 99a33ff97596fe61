package business

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Agurato/favorites/internal/model"
)

// Filterer holds the genres and release years found in the favorites, and applies filter criteria
type Filterer struct {
	Genres []string
	Years  []int

	paramsRegex *regexp.Regexp
	title       cases.Caser
}

func NewFilterer() *Filterer {
	var (
		paramsGenreRegex string = `(\/genre\/(?P<genre>[a-zA-Z\s-]+))?`
		paramsYearRegex  string = `(\/year\/(?P<year>[1-9]\d{3}))?`
	)

	return &Filterer{
		paramsRegex: regexp.MustCompile(`^` + paramsGenreRegex + paramsYearRegex + `\/?$`),
		title:       cases.Title(language.English),
	}
}

// SetFilms recomputes the genres and years from films
func (f *Filterer) SetFilms(films []model.Film) {
	f.Genres = lo.Uniq(lo.FlatMap(films, func(film model.Film, _ int) []string {
		return film.Genres
	}))
	sort.Strings(f.Genres)

	f.Years = lo.Uniq(lo.FilterMap(films, func(film model.Film, _ int) (int, bool) {
		return film.ReleaseYear, film.ReleaseYear != 0
	}))
	sort.Sort(sort.Reverse(sort.IntSlice(f.Years)))
}

// Options returns the selectable options for kind
func (f *Filterer) Options(kind model.FilterKind) ([]model.FilterOption, error) {
	switch kind {
	case model.FilterKindGenre:
		return lo.Map(f.Genres, func(genre string, _ int) model.FilterOption {
			return model.FilterOption{Label: f.title.String(genre), Value: genre, Kind: kind}
		}), nil
	case model.FilterKindYear:
		return lo.Map(f.Years, func(year int, _ int) model.FilterOption {
			label := strconv.Itoa(year)
			return model.FilterOption{Label: label, Value: label, Kind: kind}
		}), nil
	}
	return nil, fmt.Errorf("cannot list options for %s: %w", kind, model.ErrUnknownFilterKind)
}

// Select merges option into criteria.
// It returns false if the option cannot be turned into a constraint.
func (f *Filterer) Select(criteria model.FilterCriteria, option model.FilterOption) (model.FilterCriteria, bool) {
	switch option.Kind {
	case model.FilterKindGenre:
		if option.Value == "" {
			return criteria, false
		}
		return criteria.WithGenre(option.Value), true
	case model.FilterKindYear:
		year, err := strconv.Atoi(option.Value)
		if err != nil || year <= 0 {
			return criteria, false
		}
		return criteria.WithYear(year), true
	}
	return criteria, false
}

// Apply returns the films matching the filter, in their original order
func (f *Filterer) Apply(films []model.Film, filter model.Optional[model.FilterCriteria]) []model.Film {
	criteria, ok := filter.Get()
	if !ok || criteria.IsEmpty() {
		return films
	}
	return lo.Filter(films, func(film model.Film, _ int) bool {
		if genre, ok := criteria.Genre.Get(); ok && !film.HasGenre(genre) {
			return false
		}
		if year, ok := criteria.Year.Get(); ok && film.ReleaseYear != year {
			return false
		}
		return true
	})
}

// ParseParamsFilters parses a params string such as "/genre/comedy/year/2001" into a filter
func (f *Filterer) ParseParamsFilters(params string) (model.Optional[model.FilterCriteria], error) {
	submatches := f.paramsRegex.FindStringSubmatch(params)
	if submatches == nil {
		return model.None[model.FilterCriteria](), fmt.Errorf("cannot parse '%s': %w", params, model.ErrInvalidParams)
	}

	var criteria model.FilterCriteria
	for i, captureName := range f.paramsRegex.SubexpNames() {
		if submatches[i] == "" {
			continue
		}
		if captureName == "genre" {
			genre, found := lo.Find(f.Genres, func(g string) bool {
				return cases.Fold().String(g) == cases.Fold().String(submatches[i])
			})
			if !found {
				genre = submatches[i]
			}
			criteria = criteria.WithGenre(genre)
		} else if captureName == "year" {
			year, err := strconv.Atoi(submatches[i])
			if err != nil {
				return model.None[model.FilterCriteria](), fmt.Errorf("cannot parse year '%s': %w", submatches[i], model.ErrInvalidParams)
			}
			criteria = criteria.WithYear(year)
		}
	}
	if criteria.IsEmpty() {
		return model.None[model.FilterCriteria](), nil
	}
	return model.Some(criteria), nil
}
