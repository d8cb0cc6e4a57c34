// Package catalog orchestrates fetching several movie list categories in
// parallel. The TMDB client stays stateless and policy-free; request
// sequencing and throttling live here, on the caller side.
package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/filmgrid/filmgrid/tmdb"
)

const (
	// TMDB allows roughly 40 requests per 10 seconds.
	defaultRequestsPerSecond = 4
	maxParallelFetches       = 4
)

// Section is one fetched category, in the order the server returned it.
type Section struct {
	Endpoint tmdb.ListEndpoint
	Movies   []tmdb.Movie
}

// Fetcher fetches movie list categories concurrently.
type Fetcher struct {
	api     tmdb.API
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewFetcher creates a Fetcher with the default request rate.
func NewFetcher(api tmdb.API, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
		logger:  logger,
	}
}

// SetLimiter replaces the rate limiter. Intended for tests and callers with
// their own throttling policy.
func (f *Fetcher) SetLimiter(limiter *rate.Limiter) {
	if limiter != nil {
		f.limiter = limiter
	}
}

// FetchAll fetches the given categories in parallel and returns them in the
// requested order. The fetch fails as a unit: one failing category fails
// the whole call.
func (f *Fetcher) FetchAll(ctx context.Context, endpoints []tmdb.ListEndpoint) ([]Section, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)

	sections := make([]Section, len(endpoints))
	for i, endpoint := range endpoints {
		g.Go(func() error {
			if err := f.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("rate limit wait: %w", err)
			}

			movies, err := f.api.ListMovies(ctx, endpoint)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", endpoint, err)
			}

			f.logger.Debug().
				Str("endpoint", endpoint.String()).
				Int("count", len(movies)).
				Msg("Fetched movie listing")

			sections[i] = Section{Endpoint: endpoint, Movies: movies}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sections, nil
}
