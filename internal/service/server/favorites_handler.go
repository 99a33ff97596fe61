package server

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/favorites/internal/business"
	"github.com/Agurato/favorites/internal/model"
)

// FavoritesManager owns the favorites and the active filter
type FavoritesManager interface {
	business.FavoriteListListener
	business.FilterOptionsListener

	Attach(list *business.FavoriteListPresenter, options *business.FilterOptionsPresenter)
	LoadOptions(kind model.FilterKind) error
	SetFilter(filter model.Optional[model.FilterCriteria])
}

// FavoritesFilterer parses filters from URL params
type FavoritesFilterer interface {
	ParseParamsFilters(params string) (model.Optional[model.FilterCriteria], error)
}

// FavoritesHandler is the render layer of the favorites screen.
// Every screen event goes through mu, so the presenters only ever see one caller at a time.
type FavoritesHandler struct {
	*Server
	FavoritesManager
	FavoritesFilterer

	mu      sync.Mutex
	list    *business.FavoriteListPresenter
	options *business.FilterOptionsPresenter

	listRevision    int
	bannerRevision  int
	optionsRevision int
}

func NewFavoritesHandler(fm FavoritesManager, ff FavoritesFilterer) *FavoritesHandler {
	fh := &FavoritesHandler{
		FavoritesManager:  fm,
		FavoritesFilterer: ff,
	}
	fh.list = business.NewFavoriteListPresenter(fh, fm)
	fh.options = business.NewFilterOptionsPresenter(fh, fm)
	fm.Attach(fh.list, fh.options)
	return fh
}

// FavoritesChanged marks the list rows for redraw
func (fh *FavoritesHandler) FavoritesChanged() {
	fh.listRevision++
	log.Debug().Int("revision", fh.listRevision).Int("rows", len(fh.list.Favorites())).Msg("Favorites changed")
}

// BannerChanged marks the filter banner for redraw
func (fh *FavoritesHandler) BannerChanged(state business.BannerState) {
	fh.bannerRevision++
	log.Debug().Int("revision", fh.bannerRevision).Stringer("banner", state).Msg("Banner changed")
}

// OptionsChanged marks the filter options for redraw
func (fh *FavoritesHandler) OptionsChanged() {
	fh.optionsRevision++
	log.Debug().Int("revision", fh.optionsRevision).Stringer("kind", fh.options.Kind()).Msg("Filter options changed")
}

// GETFavorites displays the favorites list and the filter banner
func (fh *FavoritesHandler) GETFavorites(c *gin.Context) {
	fh.mu.Lock()
	defer fh.mu.Unlock()

	lang := fh.Server.language(c)
	criteria, _ := fh.list.Filter().Get()
	genre, hasGenre := criteria.Genre.Get()
	year, hasYear := criteria.Year.Get()

	fh.Server.RenderHTML(c, http.StatusOK, "pages/favorites.go.html", gin.H{
		"title":             fh.Localize(lang, model.KeyFavoritesTabTitle),
		"films":             fh.list.Favorites(),
		"bannerVisible":     fh.list.Banner() == business.BannerVisible,
		"hasFilterGenre":    hasGenre,
		"filterGenre":       genre,
		"hasFilterYear":     hasYear,
		"filterYear":        year,
		"removeFilterTitle": fh.Localize(lang, model.KeyRemoveFilterButton),
		"unfavoriteText":    fh.Localize(lang, model.KeyUnfavoriteMovieAction),
		"filterByGenre":     fh.Localize(lang, model.KeyFilterByGenre),
		"filterByYear":      fh.Localize(lang, model.KeyFilterByYear),
		"emptyText":         fh.Localize(lang, model.KeyEmptyFavorites),
		"revision":          fh.listRevision,
	})
}

// POSTUnfavorite handles the unfavorite action of a row. A stale row is silently ignored.
func (fh *FavoritesHandler) POSTUnfavorite(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		fh.Server.Error404(c)
		return
	}

	fh.mu.Lock()
	fh.list.RequestUnfavoriteAt(row)
	fh.mu.Unlock()

	c.Redirect(http.StatusSeeOther, business.FavoritesTabPath)
}

// POSTRemoveFilter handles the banner's remove filter button
func (fh *FavoritesHandler) POSTRemoveFilter(c *gin.Context) {
	fh.mu.Lock()
	fh.list.RequestRemoveFilter()
	fh.mu.Unlock()

	c.Redirect(http.StatusSeeOther, business.FavoritesTabPath)
}

// GETFilterParams applies a filter given as URL params, such as /genre/comedy/year/2001
func (fh *FavoritesHandler) GETFilterParams(c *gin.Context) {
	filter, err := fh.FavoritesFilterer.ParseParamsFilters(c.Param("params"))
	if err != nil {
		log.Debug().Err(err).Msg("Could not parse filter params")
		fh.Server.Error404(c)
		return
	}

	fh.mu.Lock()
	fh.FavoritesManager.SetFilter(filter)
	fh.mu.Unlock()

	c.Redirect(http.StatusSeeOther, business.FavoritesTabPath)
}

// GETFilterOptions displays the options of a filter kind
func (fh *FavoritesHandler) GETFilterOptions(c *gin.Context) {
	kind, err := model.ParseFilterKind(c.Param("kind"))
	if err != nil {
		fh.Server.Error404(c)
		return
	}

	fh.mu.Lock()
	defer fh.mu.Unlock()

	if err := fh.FavoritesManager.LoadOptions(kind); err != nil {
		log.Error().Err(err).Stringer("kind", kind).Msg("Could not load filter options")
		fh.Server.Error404(c)
		return
	}

	lang := fh.Server.language(c)
	titleKey := model.KeyFilterByGenre
	if kind == model.FilterKindYear {
		titleKey = model.KeyFilterByYear
	}
	fh.Server.RenderHTML(c, http.StatusOK, "pages/options.go.html", gin.H{
		"title":    fh.Localize(lang, titleKey),
		"kind":     kind.String(),
		"options":  fh.options.Options(),
		"revision": fh.optionsRevision,
	})
}

// POSTSelectOption handles the selection of an option row
func (fh *FavoritesHandler) POSTSelectOption(c *gin.Context) {
	kind, err := model.ParseFilterKind(c.Param("kind"))
	if err != nil {
		fh.Server.Error404(c)
		return
	}
	row, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		fh.Server.Error404(c)
		return
	}

	fh.mu.Lock()
	defer fh.mu.Unlock()

	// The options page of another kind may have been opened since this one was rendered
	if fh.options.Kind() != kind {
		if err := fh.FavoritesManager.LoadOptions(kind); err != nil {
			fh.Server.Error404(c)
			return
		}
	}
	fh.options.SelectRow(row)

	c.Redirect(http.StatusSeeOther, business.FavoritesTabPath)
}
