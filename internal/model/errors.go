package model

import "errors"

var (
	ErrUnknownFilterKind = errors.New("unknown filter kind")
	ErrInvalidParams     = errors.New("invalid filter parameters")
	ErrFilmNotFound      = errors.New("film not found")
)
