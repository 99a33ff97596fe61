package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/favorites/internal/business"
	"github.com/Agurato/favorites/internal/infrastructure"
	"github.com/Agurato/favorites/internal/model"
	"github.com/Agurato/favorites/internal/service/server"
)

// Environment variables names
const (
	EnvCookieSecret    = "COOKIE_SECRET"
	EnvFavoritesPath   = "FAVORITES_PATH"
	EnvDefaultLanguage = "DEFAULT_LANGUAGE"
	EnvListenAddr      = "LISTEN_ADDR"
	EnvLogLevel        = "LOG_LEVEL"
)

func main() {
	godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	level, err := zerolog.ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	catalog := infrastructure.NewCatalog(os.Getenv(EnvFavoritesPath))
	filterer := business.NewFilterer()
	fm, err := business.NewFavoritesManagerFromLoader(catalog, filterer)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load favorites")
	}

	tabBar := &model.TabBar{}
	business.NewFavoritesTabInstaller(tabBar).Start()

	localizer := infrastructure.NewLocalizer()
	defaultLanguage := model.Language(os.Getenv(EnvDefaultLanguage))
	if defaultLanguage == "" {
		defaultLanguage = model.LanguageEnglish
	}

	favoritesHandler := server.NewFavoritesHandler(fm, filterer)
	router := server.NewServer(os.Getenv(EnvCookieSecret), defaultLanguage, tabBar, localizer, favoritesHandler)

	addr := os.Getenv(EnvListenAddr)
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("Starting server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
