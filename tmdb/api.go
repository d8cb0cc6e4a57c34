package tmdb

import (
	"context"
)

// API defines the client surface consumed by the application layers.
type API interface {
	// ListMovies retrieves the first page of a movie list category
	ListMovies(ctx context.Context, endpoint ListEndpoint) ([]Movie, error)

	// ListMoviesPage retrieves one page of a movie list category
	ListMoviesPage(ctx context.Context, endpoint ListEndpoint, page int) (*MoviesPage, error)

	// Configuration retrieves the images configuration
	Configuration(ctx context.Context) (*ImagesConfiguration, error)

	// LanguageCodes retrieves the supported ISO 639-1 language codes
	LanguageCodes(ctx context.Context) ([]string, error)
}

var _ API = (*Client)(nil)
