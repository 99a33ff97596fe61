package business

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/favorites/internal/model"
)

// FavoritesLoader supplies the initial favorites
type FavoritesLoader interface {
	GetFavorites() ([]model.Film, error)
}

// FavoritesManager is the authoritative favorites store and owner of the active filter.
// It reacts to the intents raised by the favorites list and the filter options presenters.
type FavoritesManager struct {
	films    []model.Film
	filter   model.Optional[model.FilterCriteria]
	filterer *Filterer

	list    *FavoriteListPresenter
	options *FilterOptionsPresenter
}

// NewFavoritesManager creates a manager holding films
func NewFavoritesManager(films []model.Film, filterer *Filterer) *FavoritesManager {
	fm := &FavoritesManager{
		films:    append([]model.Film(nil), films...),
		filterer: filterer,
	}
	fm.filterer.SetFilms(fm.films)
	return fm
}

// NewFavoritesManagerFromLoader creates a manager holding the favorites returned by fl
func NewFavoritesManagerFromLoader(fl FavoritesLoader, filterer *Filterer) (*FavoritesManager, error) {
	films, err := fl.GetFavorites()
	if err != nil {
		return nil, err
	}
	return NewFavoritesManager(films, filterer), nil
}

// Attach binds the presenters driven by the manager, and pushes the current state to the list
func (fm *FavoritesManager) Attach(list *FavoriteListPresenter, options *FilterOptionsPresenter) {
	fm.list = list
	fm.options = options
	fm.push()
}

// Films returns a copy of all favorites, ignoring the filter
func (fm *FavoritesManager) Films() []model.Film {
	return append([]model.Film(nil), fm.films...)
}

// Filter returns the active filter
func (fm *FavoritesManager) Filter() model.Optional[model.FilterCriteria] {
	return fm.filter
}

// SetFilter replaces the active filter and refreshes the list
func (fm *FavoritesManager) SetFilter(filter model.Optional[model.FilterCriteria]) {
	fm.filter = filter
	fm.push()
}

// LoadOptions fills the options presenter with the options of kind
func (fm *FavoritesManager) LoadOptions(kind model.FilterKind) error {
	options, err := fm.filterer.Options(kind)
	if err != nil {
		return err
	}
	if fm.options != nil {
		fm.options.SetOptions(options, kind)
	}
	return nil
}

// Unfavorited removes film from the favorites
func (fm *FavoritesManager) Unfavorited(film model.Film) {
	before := len(fm.films)
	fm.films = lo.Reject(fm.films, func(f model.Film, _ int) bool {
		return f.ID == film.ID
	})
	if len(fm.films) == before {
		log.Debug().Str("filmID", film.ID.Hex()).Msg("Film already removed from favorites")
		return
	}
	log.Info().Str("filmID", film.ID.Hex()).Str("title", film.Title).Msg("Removed film from favorites")
	fm.filterer.SetFilms(fm.films)
	fm.push()
}

// FilterRemoved clears the active filter
func (fm *FavoritesManager) FilterRemoved() {
	log.Info().Msg("Removing favorites filter")
	fm.SetFilter(model.None[model.FilterCriteria]())
}

// OptionSelected merges the option displayed at row into the active filter.
// The row is resolved against the options currently loaded in the options presenter; a stale row is ignored.
func (fm *FavoritesManager) OptionSelected(row int, kind model.FilterKind) {
	if fm.options == nil {
		return
	}
	options := fm.options.Options()
	if row < 0 || row >= len(options) || options[row].Kind != kind {
		log.Debug().Int("row", row).Stringer("kind", kind).Msg("Ignoring selection of stale option")
		return
	}
	criteria, _ := fm.filter.Get()
	criteria, ok := fm.filterer.Select(criteria, options[row])
	if !ok {
		log.Debug().Int("row", row).Stringer("kind", kind).Msg("Ignoring selection of stale option")
		return
	}
	log.Info().Int("row", row).Stringer("kind", kind).Str("value", options[row].Value).Msg("Filter option selected")
	fm.SetFilter(model.Some(criteria))
}

// push sends the filter and the filtered favorites to the list
func (fm *FavoritesManager) push() {
	if fm.list == nil {
		return
	}
	fm.list.SetFilter(fm.filter)
	fm.list.SetFavorites(fm.filterer.Apply(fm.films, fm.filter))
}
