package business_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Agurato/favorites/internal/business"
	"github.com/Agurato/favorites/internal/model"
)

func TestFavoritesTabInstaller(t *testing.T) {
	t.Run("EmptyTabBar", func(t *testing.T) {
		var tabBar model.TabBar
		business.NewFavoritesTabInstaller(&tabBar).Start()
		assert.Equal(t, []model.Tab{{Title: "Favorites", Icon: "favorite", Path: "/favorites"}}, tabBar.Tabs)
	})

	t.Run("AppendsAfterExistingTabs", func(t *testing.T) {
		tabBar := model.TabBar{Tabs: []model.Tab{{Title: "Catalog", Path: "/catalog"}}}
		installer := business.NewFavoritesTabInstaller(&tabBar)
		installer.Start()
		assert.Len(t, tabBar.Tabs, 2)
		assert.Equal(t, "Catalog", tabBar.Tabs[0].Title)
		assert.Equal(t, installer.Tab(), tabBar.Tabs[1])
	})
}
