package tmdb

import (
	"fmt"
	"strings"
)

// ListEndpoint selects one of the four movie list categories TMDB serves.
type ListEndpoint string

// The closed set of supported movie list endpoints.
const (
	EndpointPopular    ListEndpoint = "popular"
	EndpointTopRated   ListEndpoint = "top_rated"
	EndpointUpcoming   ListEndpoint = "upcoming"
	EndpointNowPlaying ListEndpoint = "now_playing"
)

// ListEndpoints returns all supported endpoints in display order.
func ListEndpoints() []ListEndpoint {
	return []ListEndpoint{
		EndpointPopular,
		EndpointTopRated,
		EndpointUpcoming,
		EndpointNowPlaying,
	}
}

// ParseListEndpoint converts a user-supplied category name into a
// ListEndpoint. Hyphens are accepted in place of underscores.
func ParseListEndpoint(s string) (ListEndpoint, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	endpoint := ListEndpoint(normalized)
	if err := endpoint.validate(); err != nil {
		return "", err
	}
	return endpoint, nil
}

// String returns the endpoint path segment as used in request URLs.
func (e ListEndpoint) String() string {
	return string(e)
}

// Title returns a human-readable name for the endpoint.
func (e ListEndpoint) Title() string {
	switch e {
	case EndpointPopular:
		return "Popular"
	case EndpointTopRated:
		return "Top Rated"
	case EndpointUpcoming:
		return "Upcoming"
	case EndpointNowPlaying:
		return "Now Playing"
	}
	return string(e)
}

func (e ListEndpoint) validate() error {
	switch e {
	case EndpointPopular, EndpointTopRated, EndpointUpcoming, EndpointNowPlaying:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidEndpoint, string(e))
}
