// Package grid renders fetched movie sections as a terminal grid. Pure
// rendering: no I/O, no fetching.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/filmgrid/filmgrid/catalog"
	"github.com/filmgrid/filmgrid/tmdb"
)

const (
	// DefaultColumns is the number of movie cards per row.
	DefaultColumns = 4

	cardWidth = 24
)

// Options controls grid rendering.
type Options struct {
	// Columns is the number of cards per row; values below 1 fall back to
	// DefaultColumns.
	Columns int
	// NoColor strips foreground colors, for non-TTY output.
	NoColor bool
}

type styles struct {
	header lipgloss.Style
	card   lipgloss.Style
	title  lipgloss.Style
	meta   lipgloss.Style
	empty  lipgloss.Style
}

func newStyles(noColor bool) styles {
	s := styles{
		header: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cardWidth),
		title:  lipgloss.NewStyle().Bold(true),
		meta:   lipgloss.NewStyle(),
		empty:  lipgloss.NewStyle().Italic(true),
	}
	if !noColor {
		s.header = s.header.Foreground(lipgloss.Color("212"))
		s.card = s.card.BorderForeground(lipgloss.Color("240"))
		s.meta = s.meta.Foreground(lipgloss.Color("245"))
		s.empty = s.empty.Foreground(lipgloss.Color("245"))
	}
	return s
}

// Render lays out the sections one after another, each as a header followed
// by rows of movie cards. Section and movie order is preserved.
func Render(sections []catalog.Section, opts Options) string {
	columns := opts.Columns
	if columns < 1 {
		columns = DefaultColumns
	}
	st := newStyles(opts.NoColor)

	var out strings.Builder
	for i, section := range sections {
		if i > 0 {
			out.WriteString("\n")
		}

		header := fmt.Sprintf("%s (%d)", section.Endpoint.Title(), len(section.Movies))
		out.WriteString(st.header.Render(header))
		out.WriteString("\n")

		if len(section.Movies) == 0 {
			out.WriteString(st.empty.Render("no movies"))
			out.WriteString("\n")
			continue
		}

		for row := 0; row < len(section.Movies); row += columns {
			end := min(row+columns, len(section.Movies))
			cards := make([]string, 0, columns)
			for _, movie := range section.Movies[row:end] {
				cards = append(cards, renderCard(movie, st))
			}
			out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
			out.WriteString("\n")
		}
	}

	return out.String()
}

func renderCard(movie tmdb.Movie, st styles) string {
	title := truncate(movie.Title, cardWidth-4)

	meta := fmt.Sprintf("★ %.1f", movie.VoteAverage)
	if year := movie.Year(); year != "" {
		meta = year + "  " + meta
	}

	content := st.title.Render(title) + "\n" + st.meta.Render(meta)
	return st.card.Render(content)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
