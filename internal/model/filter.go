package model

import "strconv"

// FilterKind identifies which dimension a filter option belongs to
type FilterKind int

const (
	FilterKindGenre FilterKind = 1
	FilterKindYear  FilterKind = 2
)

// ParseFilterKind maps a URL segment to a FilterKind
func ParseFilterKind(s string) (FilterKind, error) {
	switch s {
	case "genre":
		return FilterKindGenre, nil
	case "year":
		return FilterKindYear, nil
	}
	return 0, ErrUnknownFilterKind
}

func (k FilterKind) String() string {
	switch k {
	case FilterKindGenre:
		return "genre"
	case FilterKindYear:
		return "year"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// FilterOption is one selectable row of the filter options screen.
// Label is displayed, Value is the genre or year it filters on.
type FilterOption struct {
	Label string
	Value string
	Kind  FilterKind
}

// FilterCriteria narrows the favorites collection by genre and/or year.
// It is never mutated in place: the With* methods return a copy.
type FilterCriteria struct {
	Genre Optional[string]
	Year  Optional[int]
}

// IsEmpty returns true if neither genre nor year is set
func (fc FilterCriteria) IsEmpty() bool {
	return !fc.Genre.IsPresent() && !fc.Year.IsPresent()
}

// Equal returns true if both criteria constrain the same genre and year
func (fc FilterCriteria) Equal(other FilterCriteria) bool {
	return fc == other
}

// WithGenre returns a copy of the criteria constrained to genre
func (fc FilterCriteria) WithGenre(genre string) FilterCriteria {
	fc.Genre = Some(genre)
	return fc
}

// WithYear returns a copy of the criteria constrained to year
func (fc FilterCriteria) WithYear(year int) FilterCriteria {
	fc.Year = Some(year)
	return fc
}
