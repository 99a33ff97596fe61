package business

import (
	"github.com/rs/zerolog/log"

	"github.com/Agurato/favorites/internal/model"
)

// BannerState is the visibility of the "remove filter" banner
type BannerState int

const (
	BannerHidden BannerState = iota
	BannerVisible
)

func (b BannerState) String() string {
	if b == BannerVisible {
		return "visible"
	}
	return "hidden"
}

// FavoriteListView is the render layer of the favorites list
type FavoriteListView interface {
	FavoritesChanged()
	BannerChanged(state BannerState)
}

// FavoriteListListener owns the favorites store and the active filter, and reacts to the list intents
type FavoriteListListener interface {
	Unfavorited(film model.Film)
	FilterRemoved()
}

// FavoriteListPresenter holds the favorites being displayed and the active filter.
// It never mutates the favorites itself: intents are forwarded to the listener,
// which is expected to call SetFavorites or SetFilter in return.
type FavoriteListPresenter struct {
	view     FavoriteListView
	listener FavoriteListListener

	favorites []model.Film
	filter    model.Optional[model.FilterCriteria]
	banner    BannerState
}

// NewFavoriteListPresenter creates a presenter with an empty list and a hidden banner.
// view and listener may be nil.
func NewFavoriteListPresenter(view FavoriteListView, listener FavoriteListListener) *FavoriteListPresenter {
	return &FavoriteListPresenter{
		view:     view,
		listener: listener,
		banner:   BannerHidden,
	}
}

// SetFavorites replaces the displayed favorites. films are expected to be already filtered.
func (p *FavoriteListPresenter) SetFavorites(films []model.Film) {
	p.favorites = append([]model.Film(nil), films...)
	if p.view != nil {
		p.view.FavoritesChanged()
	}
}

// SetFilter stores the active filter and recomputes the banner visibility
func (p *FavoriteListPresenter) SetFilter(filter model.Optional[model.FilterCriteria]) {
	p.filter = filter
	p.banner = bannerFor(filter)
	log.Debug().Str("banner", p.banner.String()).Msg("Filter applied")
	if p.view != nil {
		p.view.BannerChanged(p.banner)
	}
}

// bannerFor shows the banner only for a criteria with at least one field set
func bannerFor(filter model.Optional[model.FilterCriteria]) BannerState {
	criteria, ok := filter.Get()
	switch {
	case !ok:
		return BannerHidden
	case criteria.IsEmpty():
		return BannerHidden
	default:
		return BannerVisible
	}
}

// RequestUnfavorite forwards the unfavorite intent for film to the listener
func (p *FavoriteListPresenter) RequestUnfavorite(film model.Film) {
	if p.listener == nil {
		return
	}
	p.listener.Unfavorited(film)
}

// RequestUnfavoriteAt forwards the unfavorite intent for the film displayed at row.
// A stale row is ignored.
func (p *FavoriteListPresenter) RequestUnfavoriteAt(row int) bool {
	film, ok := p.FilmAt(row)
	if !ok {
		log.Debug().Int("row", row).Int("rows", len(p.favorites)).Msg("Ignoring unfavorite on stale row")
		return false
	}
	p.RequestUnfavorite(film)
	return true
}

// RequestRemoveFilter forwards the remove filter intent to the listener
func (p *FavoriteListPresenter) RequestRemoveFilter() {
	if p.listener == nil {
		return
	}
	p.listener.FilterRemoved()
}

// FilmAt returns the film displayed at row, or false if row is out of bounds
func (p *FavoriteListPresenter) FilmAt(row int) (model.Film, bool) {
	if row < 0 || row >= len(p.favorites) {
		return model.Film{}, false
	}
	return p.favorites[row], true
}

// Favorites returns a copy of the displayed favorites
func (p *FavoriteListPresenter) Favorites() []model.Film {
	return append([]model.Film(nil), p.favorites...)
}

// Filter returns the active filter
func (p *FavoriteListPresenter) Filter() model.Optional[model.FilterCriteria] {
	return p.filter
}

// Banner returns the current banner visibility
func (p *FavoriteListPresenter) Banner() BannerState {
	return p.banner
}
