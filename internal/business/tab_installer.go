package business

import (
	"github.com/rs/zerolog/log"

	"github.com/Agurato/favorites/internal/model"
)

const (
	FavoritesTabTitle = "Favorites"
	FavoritesTabIcon  = "favorite"
	FavoritesTabPath  = "/favorites"
)

// FavoritesTabInstaller registers the favorites screen into the tab bar
type FavoritesTabInstaller struct {
	tabBar *model.TabBar
	tab    model.Tab
}

func NewFavoritesTabInstaller(tabBar *model.TabBar) *FavoritesTabInstaller {
	return &FavoritesTabInstaller{
		tabBar: tabBar,
		tab: model.Tab{
			Title: FavoritesTabTitle,
			Icon:  FavoritesTabIcon,
			Path:  FavoritesTabPath,
		},
	}
}

// Tab returns the tab registered by the installer
func (ti FavoritesTabInstaller) Tab() model.Tab {
	return ti.tab
}

// Start appends the favorites tab after the tabs already registered
func (ti FavoritesTabInstaller) Start() {
	ti.tabBar.Tabs = append(ti.tabBar.Tabs, ti.tab)
	log.Info().Str("path", ti.tab.Path).Int("tabs", len(ti.tabBar.Tabs)).Msg("Starting favorites tab")
}
