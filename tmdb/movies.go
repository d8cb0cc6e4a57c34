package tmdb

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// moviesEnvelope probes the listing success shape. Results is a pointer so
// a payload without a results field is told apart from an empty list.
type moviesEnvelope struct {
	Page         int      `json:"page"`
	Results      *[]Movie `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// ListMovies retrieves the first page of the given movie list category, in
// the order the server returned it.
func (c *Client) ListMovies(ctx context.Context, endpoint ListEndpoint) ([]Movie, error) {
	page, err := c.ListMoviesPage(ctx, endpoint, 1)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// ListMoviesPage retrieves one page of the given movie list category.
// Pages are 1-based; values below 2 request the first page.
func (c *Client) ListMoviesPage(ctx context.Context, endpoint ListEndpoint, page int) (*MoviesPage, error) {
	if err := endpoint.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("language", c.language)
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}

	requestURL, body, err := c.get(ctx, "/movie/"+endpoint.String(), params)
	if err != nil {
		return nil, err
	}

	if apiErr := classifyError(body); apiErr != nil {
		return nil, apiErr
	}

	var envelope moviesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Results == nil {
		return nil, c.unexpectedResponse(requestURL, body)
	}

	return &MoviesPage{
		Page:         envelope.Page,
		Results:      *envelope.Results,
		TotalPages:   envelope.TotalPages,
		TotalResults: envelope.TotalResults,
	}, nil
}
