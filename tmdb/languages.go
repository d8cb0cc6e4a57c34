package tmdb

import (
	"context"
	"encoding/json"
)

// languageEntry probes one entry of the language catalog. Pointer fields
// distinguish missing fields from empty strings.
type languageEntry struct {
	EnglishName *string `json:"english_name"`
	ISO6391     *string `json:"iso_639_1"`
	Name        *string `json:"name"`
}

// Languages retrieves the full supported-language catalog in response
// order. Every entry must carry an English name, an ISO 639-1 code and a
// localized name to classify as a success.
func (c *Client) Languages(ctx context.Context) ([]Language, error) {
	requestURL, body, err := c.get(ctx, "/configuration/languages", nil)
	if err != nil {
		return nil, err
	}

	if apiErr := classifyError(body); apiErr != nil {
		return nil, apiErr
	}

	var entries []languageEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, c.unexpectedResponse(requestURL, body)
	}

	languages := make([]Language, 0, len(entries))
	for _, entry := range entries {
		if entry.EnglishName == nil || entry.ISO6391 == nil || entry.Name == nil {
			return nil, c.unexpectedResponse(requestURL, body)
		}
		languages = append(languages, Language{
			EnglishName: *entry.EnglishName,
			ISO6391:     *entry.ISO6391,
			Name:        *entry.Name,
		})
	}

	return languages, nil
}

// LanguageCodes retrieves the supported ISO 639-1 language codes in
// response order.
func (c *Client) LanguageCodes(ctx context.Context) ([]string, error) {
	languages, err := c.Languages(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(languages))
	for _, language := range languages {
		codes = append(codes, language.ISO6391)
	}

	return codes, nil
}
