package tmdb

import (
	"context"
	"encoding/json"
)

// Configuration retrieves the TMDB images configuration. The payload must
// carry a non-empty images.base_url to classify as a success.
func (c *Client) Configuration(ctx context.Context) (*ImagesConfiguration, error) {
	requestURL, body, err := c.get(ctx, "/configuration", nil)
	if err != nil {
		return nil, err
	}

	if apiErr := classifyError(body); apiErr != nil {
		return nil, apiErr
	}

	var cfg ImagesConfiguration
	if err := json.Unmarshal(body, &cfg); err != nil || cfg.Images.BaseURL == "" {
		return nil, c.unexpectedResponse(requestURL, body)
	}

	return &cfg, nil
}
