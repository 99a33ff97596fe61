package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Film is a favorited film. It is owned by the favorites store and only read by the presenters.
type Film struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Genres      []string           `json:"genres"`
	ReleaseYear int                `json:"releaseYear"`
	PosterPath  string             `json:"posterPath,omitempty"`
}

// Genre returns the primary genre of the film, or an empty string
func (f Film) Genre() string {
	if len(f.Genres) == 0 {
		return ""
	}
	return f.Genres[0]
}

// HasGenre returns true if genre is one of the film's genres
func (f Film) HasGenre(genre string) bool {
	for _, g := range f.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
