package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Agurato/favorites/internal/model"
)

// Catalog reads the favorite films from a JSON file
type Catalog struct {
	path string
}

// NewCatalog uses the JSON file at path. An empty path yields no favorites.
func NewCatalog(path string) *Catalog {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}
		log.Info().Str("path", path).Msg("Using favorites file")
	}
	return &Catalog{
		path: path,
	}
}

// GetFavorites reads and decodes the favorites file
func (c Catalog) GetFavorites() ([]model.Film, error) {
	if c.path == "" {
		return []model.Film{}, nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("could not read favorites file: %w", err)
	}
	var films []model.Film
	if err := json.Unmarshal(data, &films); err != nil {
		return nil, fmt.Errorf("could not decode favorites file '%s': %w", c.path, err)
	}
	for i := range films {
		if films[i].ID.IsZero() {
			films[i].ID = primitive.NewObjectID()
			log.Debug().Str("title", films[i].Title).Str("filmID", films[i].ID.Hex()).Msg("Assigned ID to favorite")
		}
	}
	log.Debug().Int("films", len(films)).Msg("Loaded favorites")
	return films, nil
}
