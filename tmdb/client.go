package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultLanguage is the language tag used when none is configured.
	DefaultLanguage = "en-US"

	defaultTimeout = 30 * time.Second
)

// Client is a TMDB API client.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client. It fails fast with ErrMissingAPIKey
// when no API key is supplied so that misconfiguration surfaces at startup
// rather than on the first request.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:  DefaultBaseURL,
		apiKey:   apiKey,
		language: DefaultLanguage,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// get performs one GET round trip and returns the request URL alongside the
// raw body. Transport failures are wrapped and propagated; no retries.
func (c *Client) get(ctx context.Context, path string, params url.Values) (string, []byte, error) {
	requestURL := c.endpointURL(path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return requestURL, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return requestURL, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return requestURL, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return requestURL, body, nil
}

// endpointURL builds the request URL from base URL, path, API key and any
// extra query parameters.
func (c *Client) endpointURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	return fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
}

// unexpectedResponse logs the offending URL and payload for diagnosis and
// returns the matching error. This is the only branch with a side effect.
func (c *Client) unexpectedResponse(requestURL string, body []byte) error {
	c.logger.Error().
		Str("url", requestURL).
		Str("payload", string(body)).
		Msg("Unexpected response from TMDB")
	return &UnexpectedResponseError{URL: requestURL}
}
