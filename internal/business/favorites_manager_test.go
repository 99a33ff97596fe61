package business_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/favorites/internal/business"
	"github.com/Agurato/favorites/internal/model"
)

type staticLoader struct {
	films []model.Film
	err   error
}

func (sl staticLoader) GetFavorites() ([]model.Film, error) {
	return sl.films, sl.err
}

func newScreen(t *testing.T, films []model.Film) (*business.FavoritesManager, *business.FavoriteListPresenter, *business.FilterOptionsPresenter) {
	t.Helper()
	fm, err := business.NewFavoritesManagerFromLoader(staticLoader{films: films}, business.NewFilterer())
	require.NoError(t, err)
	list := business.NewFavoriteListPresenter(nil, fm)
	options := business.NewFilterOptionsPresenter(nil, fm)
	fm.Attach(list, options)
	return fm, list, options
}

func TestFavoritesManagerLoaderError(t *testing.T) {
	_, err := business.NewFavoritesManagerFromLoader(staticLoader{err: errors.New("boom")}, business.NewFilterer())
	assert.Error(t, err)
}

func TestFavoritesManagerAttach(t *testing.T) {
	films := sampleFilms()
	_, list, _ := newScreen(t, films)
	assert.Equal(t, films, list.Favorites())
	assert.Equal(t, business.BannerHidden, list.Banner())
}

func TestFavoritesManagerUnfavorite(t *testing.T) {
	films := sampleFilms()
	fm, list, _ := newScreen(t, films)

	require.True(t, list.RequestUnfavoriteAt(1))
	assert.Equal(t, []model.Film{films[0], films[2], films[3]}, list.Favorites())
	assert.Len(t, fm.Films(), 3)

	// Unfavoriting a film that is already gone changes nothing
	list.RequestUnfavorite(films[1])
	assert.Len(t, list.Favorites(), 3)
}

func TestFavoritesManagerSelectAndRemoveFilter(t *testing.T) {
	films := sampleFilms()
	fm, list, options := newScreen(t, films)

	require.NoError(t, fm.LoadOptions(model.FilterKindGenre))
	assert.Equal(t, model.FilterKindGenre, options.Kind())
	options.SelectRow(0) // Comedy

	assert.Equal(t, business.BannerVisible, list.Banner())
	assert.Equal(t, []model.Film{films[0], films[2]}, list.Favorites())

	require.NoError(t, fm.LoadOptions(model.FilterKindYear))
	options.SelectRow(1) // 2001
	criteria, ok := list.Filter().Get()
	require.True(t, ok)
	assert.Equal(t, model.FilterCriteria{Genre: model.Some("Comedy"), Year: model.Some(2001)}, criteria)
	assert.Equal(t, []model.Film{films[0], films[2]}, list.Favorites())

	list.RequestRemoveFilter()
	assert.Equal(t, business.BannerHidden, list.Banner())
	assert.False(t, fm.Filter().IsPresent())
	assert.Equal(t, films, list.Favorites())
}

func TestFavoritesManagerStaleOption(t *testing.T) {
	fm, list, options := newScreen(t, sampleFilms())
	require.NoError(t, fm.LoadOptions(model.FilterKindYear))

	options.SelectRow(42)
	assert.Equal(t, business.BannerHidden, list.Banner())
	assert.False(t, fm.Filter().IsPresent())

	assert.ErrorIs(t, fm.LoadOptions(model.FilterKind(9)), model.ErrUnknownFilterKind)
}

func TestFavoritesManagerSelectsDisplayedOption(t *testing.T) {
	films := sampleFilms()
	fm, list, options := newScreen(t, films)
	require.NoError(t, fm.LoadOptions(model.FilterKindGenre))
	displayed := options.Options()
	require.Equal(t, "Crime", displayed[1].Label)

	// The favorites change while the options are on screen
	list.RequestUnfavorite(films[0])
	list.RequestUnfavorite(films[2])

	options.SelectRow(1)
	criteria, ok := list.Filter().Get()
	require.True(t, ok)
	assert.Equal(t, model.FilterCriteria{Genre: model.Some("Crime")}, criteria)
	assert.Equal(t, []model.Film{films[3]}, list.Favorites())
}

func TestFavoritesManagerIgnoresSelectionOfOtherKind(t *testing.T) {
	fm, list, _ := newScreen(t, sampleFilms())
	require.NoError(t, fm.LoadOptions(model.FilterKindGenre))

	fm.OptionSelected(0, model.FilterKindYear)
	assert.False(t, fm.Filter().IsPresent())
	assert.Equal(t, business.BannerHidden, list.Banner())
}

func TestFavoritesManagerFilmsIsACopy(t *testing.T) {
	fm, list, _ := newScreen(t, sampleFilms())

	films := fm.Films()
	films[0].Title = "Changed"
	shown := list.Favorites()
	shown[0].Title = "Changed"

	assert.Equal(t, "Amélie", fm.Films()[0].Title)
	assert.Equal(t, "Amélie", list.Favorites()[0].Title)
}
