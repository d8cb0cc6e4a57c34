// Package tmdb provides a client for The Movie Database (TMDB) v3 API.
//
// The client covers the listing surface needed to browse categorized movie
// lists: the four movie list endpoints (popular, top rated, upcoming, now
// playing), the images configuration used to compose poster and backdrop
// URLs, and the supported-language catalog.
//
// # Usage
//
// Create a client with your TMDB API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient("your-api-key", logger,
//		tmdb.WithLanguage("en-US"),
//		tmdb.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	movies, err := client.ListMovies(ctx, tmdb.EndpointPopular)
//
// Each call is a single, stateless round trip. The client holds no mutable
// state between calls and is safe for concurrent use; callers are free to
// fetch several lists in parallel.
//
// # Response classification
//
// Every response body is classified into exactly one of three shapes before
// a value is returned: the expected success shape, the TMDB error envelope
// (status_code plus status_message), or unrecognized. The error envelope
// becomes an *APIError carrying the remote code and message; an
// unrecognized payload becomes an *UnexpectedResponseError after the
// offending URL and payload are logged. No partially validated value is
// ever returned.
//
// # Error handling
//
//   - ErrMissingAPIKey: client constructed without an API key
//   - *APIError: failure reported by TMDB itself
//   - *UnexpectedResponseError: payload matched neither success nor error shape
//
// Transport failures (timeouts, DNS, connection resets) propagate to the
// caller as-is; the client performs no retries and enforces no deadlines of
// its own beyond the HTTP client timeout it is configured with.
package tmdb
