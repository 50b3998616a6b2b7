package api

import (
	"context"

	"github.com/ytget/rickmorty/internal/model"
)

// CharacterFetcher defines the read operations the views depend on.
type CharacterFetcher interface {
	// ListCharacters returns every character exposed by the collection endpoint
	ListCharacters(ctx context.Context) ([]model.Character, error)

	// GetCharacter returns a single character by numeric id
	GetCharacter(ctx context.Context, id int) (model.Character, error)

	// SearchByName returns the characters whose name matches the filter
	SearchByName(ctx context.Context, name string) ([]model.Character, error)
}

// ImageFetcher loads avatar images referenced by Character.Image.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Fetcher is the full client surface used by the GUI.
type Fetcher interface {
	CharacterFetcher
	ImageFetcher
}
