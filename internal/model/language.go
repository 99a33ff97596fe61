package model

// Language is an application language code
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
	LanguageFrench     Language = "fr"
)

// Languages lists the languages the application ships strings for
var Languages = []Language{LanguageEnglish, LanguagePortuguese, LanguageFrench}

// Keys of the localized strings
const (
	KeyUnfavoriteMovieAction = "unfavoriteMovieActionText"
	KeyRemoveFilterButton    = "removeFilterButtonTitle"
	KeyFavoritesTabTitle     = "favoritesTabTitle"
	KeyFilterByGenre         = "filterByGenre"
	KeyFilterByYear          = "filterByYear"
	KeyEmptyFavorites        = "emptyFavorites"
)
