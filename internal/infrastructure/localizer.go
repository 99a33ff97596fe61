package infrastructure

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/Agurato/favorites/internal/model"
)

// InvalidLanguage is displayed instead of a string when no language is selected
const InvalidLanguage = "#INVALID_LANGUAGE#"

var translations = map[model.Language]map[string]string{
	model.LanguageEnglish: {
		model.KeyUnfavoriteMovieAction: "Unfavorite",
		model.KeyRemoveFilterButton:    "Remove filter",
		model.KeyFavoritesTabTitle:     "Favorites",
		model.KeyFilterByGenre:         "Filter by genre",
		model.KeyFilterByYear:          "Filter by year",
		model.KeyEmptyFavorites:        "You have no favorite movies yet",
	},
	model.LanguagePortuguese: {
		model.KeyUnfavoriteMovieAction: "Desfavoritar",
		model.KeyRemoveFilterButton:    "Remover filtro",
		model.KeyFavoritesTabTitle:     "Favoritos",
		model.KeyFilterByGenre:         "Filtrar por gênero",
		model.KeyFilterByYear:          "Filtrar por ano",
		model.KeyEmptyFavorites:        "Você ainda não tem filmes favoritos",
	},
	model.LanguageFrench: {
		model.KeyUnfavoriteMovieAction: "Retirer des favoris",
		model.KeyRemoveFilterButton:    "Retirer le filtre",
		model.KeyFavoritesTabTitle:     "Favoris",
		model.KeyFilterByGenre:         "Filtrer par genre",
		model.KeyFilterByYear:          "Filtrer par année",
		model.KeyEmptyFavorites:        "Vous n'avez pas encore de films favoris",
	},
}

// Localizer resolves display strings from the message catalog
type Localizer struct {
	catalog *catalog.Builder
	matcher language.Matcher
}

// NewLocalizer builds the message catalog for every supported language
func NewLocalizer() *Localizer {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	tags := make([]language.Tag, 0, len(model.Languages))
	for _, lang := range model.Languages {
		tag := language.Make(string(lang))
		tags = append(tags, tag)
		for key, msg := range translations[lang] {
			if err := builder.SetString(tag, key, msg); err != nil {
				log.Error().Err(err).Str("language", string(lang)).Str("key", key).Msg("Could not add string to catalog")
			}
		}
	}
	return &Localizer{
		catalog: builder,
		matcher: language.NewMatcher(tags),
	}
}

// Localize returns the string for key in lang, or InvalidLanguage if lang is not set
func (l Localizer) Localize(lang model.Language, key string) string {
	if lang == "" {
		return InvalidLanguage
	}
	tag, err := language.Parse(string(lang))
	if err != nil {
		log.Debug().Err(err).Str("language", string(lang)).Msg("Invalid language code")
		return InvalidLanguage
	}
	_, index, confidence := l.matcher.Match(tag)
	if confidence == language.No {
		return InvalidLanguage
	}
	tag = language.Make(string(model.Languages[index]))
	return message.NewPrinter(tag, message.Catalog(l.catalog)).Sprintf(key)
}

// Supports returns true if strings exist for lang
func (l Localizer) Supports(lang model.Language) bool {
	tag, err := language.Parse(string(lang))
	if err != nil {
		return false
	}
	_, _, confidence := l.matcher.Match(tag)
	return confidence != language.No
}
