package server

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Agurato/favorites/internal/business"
	"github.com/Agurato/favorites/internal/model"
)

const (
	// LanguageKey is the session key for the selected language
	LanguageKey = "language"
)

//go:embed templates
var templatesFS embed.FS

// Localizer resolves display strings in a language
type Localizer interface {
	Localize(lang model.Language, key string) string
	Supports(lang model.Language) bool
}

// Server holds what every page needs: the tab bar, the language and the localizer
type Server struct {
	tabBar          *model.TabBar
	defaultLanguage model.Language
	Localizer
}

// NewServer initializes the router
func NewServer(cookieSecret string, defaultLanguage model.Language, tabBar *model.TabBar, localizer Localizer, favoritesHandler *FavoritesHandler) *gin.Engine {
	srv := &Server{
		tabBar:          tabBar,
		defaultLanguage: defaultLanguage,
		Localizer:       localizer,
	}
	favoritesHandler.Server = srv

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger)
	router.SetTrustedProxies(nil)

	// Cookies
	store := cookie.NewStore([]byte(cookieSecret))
	router.Use(sessions.Sessions("favorites-session", store))

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"add": func(a int, b int) int {
			return a + b
		},
		"join": func(elems []string, sep string) string {
			return strings.Join(lo.Filter(elems, func(elem string, _ int) bool {
				return len(elem) > 0
			}), sep)
		},
		"hexID": func(id primitive.ObjectID) string {
			return id.Hex()
		},
		"lower": strings.ToLower,
	}).ParseFS(templatesFS, "templates/*.go.html", "templates/pages/*.go.html"))
	router.SetHTMLTemplate(tmpl)

	// 404
	router.NoRoute(srv.Error404)

	router.GET("/", srv.GETIndex)
	router.POST("/language", srv.POSTLanguage)

	router.GET("/favorites", favoritesHandler.GETFavorites)
	router.POST("/favorites/unfavorite/:idx", favoritesHandler.POSTUnfavorite)
	router.POST("/favorites/unfilter", favoritesHandler.POSTRemoveFilter)
	router.GET("/favorites/params/*params", favoritesHandler.GETFilterParams)
	router.GET("/favorites/filter/:kind", favoritesHandler.GETFilterOptions)
	router.POST("/favorites/filter/:kind/select/:idx", favoritesHandler.POSTSelectOption)

	return router
}

// RenderHTML renders HTML pages and adds the tab bar and language to the template objects
func (s *Server) RenderHTML(c *gin.Context, code int, name string, obj gin.H) {
	lang := s.language(c)
	obj["language"] = lang
	obj["languages"] = model.Languages
	obj["tabs"] = lo.Map(s.tabBar.Tabs, func(tab model.Tab, _ int) gin.H {
		return gin.H{
			"Title":  s.tabTitle(lang, tab),
			"Path":   tab.Path,
			"Icon":   tab.Icon,
			"Active": strings.HasPrefix(c.Request.URL.Path, tab.Path),
		}
	})
	c.HTML(code, name, obj)
}

// Error404 displays the 404 page
func (s *Server) Error404(c *gin.Context) {
	s.RenderHTML(c, http.StatusNotFound, "pages/404.go.html", gin.H{
		"title": "404 - Not Found",
	})
}

// GETIndex redirects to the first registered tab
func (s *Server) GETIndex(c *gin.Context) {
	if len(s.tabBar.Tabs) == 0 {
		s.Error404(c)
		return
	}
	c.Redirect(http.StatusSeeOther, s.tabBar.Tabs[0].Path)
}

// POSTLanguage stores the selected language in the session
func (s *Server) POSTLanguage(c *gin.Context) {
	lang := model.Language(strings.TrimSpace(c.PostForm("language")))
	if !s.Localizer.Supports(lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}
	session := sessions.Default(c)
	session.Set(LanguageKey, string(lang))
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("Could not save session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server had trouble saving the language"})
		return
	}
	redirect := c.PostForm("redirect")
	if !strings.HasPrefix(redirect, "/") {
		redirect = "/"
	}
	c.Redirect(http.StatusSeeOther, redirect)
}

// language returns the language of the session, falling back to the default one
func (s *Server) language(c *gin.Context) model.Language {
	session := sessions.Default(c)
	if lang, ok := session.Get(LanguageKey).(string); ok {
		return model.Language(lang)
	}
	return s.defaultLanguage
}

func (s *Server) tabTitle(lang model.Language, tab model.Tab) string {
	if tab.Path == business.FavoritesTabPath {
		return s.Localizer.Localize(lang, model.KeyFavoritesTabTitle)
	}
	return tab.Title
}

// requestLogger logs every request with zerolog
func requestLogger(c *gin.Context) {
	c.Next()
	log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Msg("Request")
}
