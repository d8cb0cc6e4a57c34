package tmdb

// Movie represents a single movie as returned by the TMDB list endpoints.
// Fields are passed through from the API unmodified.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// Year returns the release year as a string, or "" when no release date is
// known.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// ReleaseYear returns the release year as an int, or 0 when no release date
// is known.
func (m Movie) ReleaseYear() int {
	year := 0
	for _, r := range m.Year() {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

// MoviesPage is one page of a movie listing, in the order the server
// returned it.
type MoviesPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// ImagesConfiguration describes the base URLs and size buckets TMDB
// supports for composing image URLs. Fetched once via Configuration.
type ImagesConfiguration struct {
	Images     ImageSettings `json:"images"`
	ChangeKeys []string      `json:"change_keys"`
}

// ImageSettings holds the image base URLs and the enumerated size buckets.
type ImageSettings struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// ImageURL composes an absolute image URL from a path fragment such as
// "/abc123.jpg" and a size bucket such as "w500" or "original". It prefers
// the secure base URL and returns "" for an empty path.
func (c *ImagesConfiguration) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	base := c.Images.SecureBaseURL
	if base == "" {
		base = c.Images.BaseURL
	}
	return base + size + path
}

// Language is one entry of the TMDB supported-language catalog.
type Language struct {
	EnglishName string `json:"english_name"`
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
}
