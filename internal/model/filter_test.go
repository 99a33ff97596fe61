package model_test

import (
	"testing"

	"github.com/Agurato/favorites/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFilterCriteriaIsEmpty(t *testing.T) {
	assert.True(t, model.FilterCriteria{}.IsEmpty())
	assert.False(t, model.FilterCriteria{Genre: model.Some("Comedy")}.IsEmpty())
	assert.False(t, model.FilterCriteria{Year: model.Some(2001)}.IsEmpty())
}

func TestFilterCriteriaEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  model.FilterCriteria
		equal bool
	}{
		{"both empty", model.FilterCriteria{}, model.FilterCriteria{Genre: model.None[string](), Year: model.None[int]()}, true},
		{"same genre", model.FilterCriteria{Genre: model.Some("Drama")}, model.FilterCriteria{Genre: model.Some("Drama")}, true},
		{"different genre", model.FilterCriteria{Genre: model.Some("Drama")}, model.FilterCriteria{Genre: model.Some("Comedy")}, false},
		{"genre vs absent", model.FilterCriteria{Genre: model.Some("")}, model.FilterCriteria{}, false},
		{"same year and genre", model.FilterCriteria{}.WithGenre("War").WithYear(1917), model.FilterCriteria{}.WithYear(1917).WithGenre("War"), true},
		{"different year", model.FilterCriteria{Year: model.Some(2001)}, model.FilterCriteria{Year: model.Some(2010)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestFilterCriteriaWithDoesNotMutate(t *testing.T) {
	base := model.FilterCriteria{Genre: model.Some("Drama")}
	changed := base.WithYear(1999)

	_, ok := base.Year.Get()
	assert.False(t, ok)
	year, ok := changed.Year.Get()
	assert.True(t, ok)
	assert.Equal(t, 1999, year)
}

func TestParseFilterKind(t *testing.T) {
	kind, err := model.ParseFilterKind("genre")
	assert.NoError(t, err)
	assert.Equal(t, model.FilterKindGenre, kind)

	kind, err = model.ParseFilterKind("year")
	assert.NoError(t, err)
	assert.Equal(t, model.FilterKindYear, kind)

	_, err = model.ParseFilterKind("country")
	assert.ErrorIs(t, err, model.ErrUnknownFilterKind)
}

func TestOptional(t *testing.T) {
	assert.Equal(t, "fallback", model.None[string]().OrElse("fallback"))
	assert.Equal(t, "value", model.Some("value").OrElse("fallback"))
	assert.True(t, model.Some(0).IsPresent())
}
