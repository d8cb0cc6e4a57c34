package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgrid/filmgrid/tmdb"
)

// stubAPI implements tmdb.API with canned values.
type stubAPI struct {
	page      *tmdb.MoviesPage
	config    *tmdb.ImagesConfiguration
	languages []string
	err       error

	lastEndpoint tmdb.ListEndpoint
	lastPage     int
}

func (s *stubAPI) ListMovies(ctx context.Context, endpoint tmdb.ListEndpoint) ([]tmdb.Movie, error) {
	page, err := s.ListMoviesPage(ctx, endpoint, 1)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *stubAPI) ListMoviesPage(_ context.Context, endpoint tmdb.ListEndpoint, page int) (*tmdb.MoviesPage, error) {
	s.lastEndpoint = endpoint
	s.lastPage = page
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func (s *stubAPI) Configuration(context.Context) (*tmdb.ImagesConfiguration, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.config, nil
}

func (s *stubAPI) LanguageCodes(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.languages, nil
}

func newTestServer(t *testing.T, api tmdb.API) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(api, zerolog.Nop(), nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleMovies(t *testing.T) {
	api := &stubAPI{
		page: &tmdb.MoviesPage{
			Page:         1,
			Results:      []tmdb.Movie{{ID: 27205, Title: "Inception"}},
			TotalPages:   10,
			TotalResults: 200,
		},
	}
	srv := newTestServer(t, api)

	resp, err := http.Get(srv.URL + "/api/movies/popular")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, tmdb.EndpointPopular, api.lastEndpoint)
	assert.Equal(t, 1, api.lastPage)

	var page tmdb.MoviesPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Inception", page.Results[0].Title)
}

func TestHandleMoviesPageParameter(t *testing.T) {
	api := &stubAPI{page: &tmdb.MoviesPage{Page: 2}}
	srv := newTestServer(t, api)

	resp, err := http.Get(srv.URL + "/api/movies/top_rated?page=2")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, tmdb.EndpointTopRated, api.lastEndpoint)
	assert.Equal(t, 2, api.lastPage)
}

func TestHandleMoviesBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "unknown category", path: "/api/movies/trending", wantStatus: http.StatusNotFound},
		{name: "bad page", path: "/api/movies/popular?page=zero", wantStatus: http.StatusBadRequest},
		{name: "negative page", path: "/api/movies/popular?page=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &stubAPI{page: &tmdb.MoviesPage{}})

			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleMoviesRemoteError(t *testing.T) {
	api := &stubAPI{err: &tmdb.APIError{StatusCode: 7, Message: "Invalid API key"}}
	srv := newTestServer(t, api)

	resp, err := http.Get(srv.URL + "/api/movies/popular")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(7), body["status_code"])
	assert.Equal(t, "Invalid API key", body["status_message"])
}

func TestHandleMoviesTransportError(t *testing.T) {
	api := &stubAPI{err: errors.New("connection reset")}
	srv := newTestServer(t, api)

	resp, err := http.Get(srv.URL + "/api/movies/popular")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "upstream request failed", body["error"], "transport details stay out of responses")
}

func TestHandleConfiguration(t *testing.T) {
	api := &stubAPI{
		config: &tmdb.ImagesConfiguration{
			Images: tmdb.ImageSettings{BaseURL: "http://x/", SecureBaseURL: "https://x/"},
		},
	}
	srv := newTestServer(t, api)

	resp, err := http.Get(srv.URL + "/api/configuration")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg tmdb.ImagesConfiguration
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	assert.Equal(t, "http://x/", cfg.Images.BaseURL)
}

func TestHandleLanguages(t *testing.T) {
	api := &stubAPI{languages: []string{"en", "fi"}}
	srv := newTestServer(t, api)

	resp, err := http.Get(srv.URL + "/api/languages")
	require.NoError(t, err)
	defer resp.Body.Close()

	var codes []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&codes))
	assert.Equal(t, []string{"en", "fi"}, codes)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, &stubAPI{languages: []string{"en"}})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/languages", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedOrigin(t *testing.T) {
	api := &stubAPI{languages: []string{"en"}}
	handler := New(api, zerolog.Nop(), []string{"http://allowed.example"}).Handler()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/languages", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://allowed.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "http://allowed.example", resp.Header.Get("Access-Control-Allow-Origin"))
}
