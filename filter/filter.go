// Package filter compiles expr expressions and applies them to movie
// listings. Filtering is a caller-side concern; listings come back from the
// TMDB client in server order and stay in that order after filtering.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/filmgrid/filmgrid/tmdb"
)

// Filter is a compiled filter expression.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression over movie fields. Available
// variables: Title, OriginalTitle, Language, Overview, Year, Rating, Votes,
// Popularity, Adult. Helper functions: contains, startsWith, endsWith,
// lower, upper.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty filter expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(tmdb.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &Filter{program: program, expression: expression}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single movie.
func (f *Filter) Match(movie tmdb.Movie) (bool, error) {
	result, err := expr.Run(f.program, buildEnv(movie))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: movie.Title,
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: movie.Title,
			Err:        fmt.Errorf("expression returned %T, expected bool", result),
		}
	}

	return matched, nil
}

// Apply returns the movies matching the filter, preserving input order.
func (f *Filter) Apply(movies []tmdb.Movie) ([]tmdb.Movie, error) {
	matched := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		ok, err := f.Match(movie)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, movie)
		}
	}
	return matched, nil
}

// buildEnv exposes movie fields and string helpers to the expression.
func buildEnv(movie tmdb.Movie) map[string]interface{} {
	return map[string]interface{}{
		"ID":            movie.ID,
		"Title":         movie.Title,
		"OriginalTitle": movie.OriginalTitle,
		"Language":      movie.OriginalLanguage,
		"Overview":      movie.Overview,
		"Year":          movie.ReleaseYear(),
		"Rating":        movie.VoteAverage,
		"Votes":         movie.VoteCount,
		"Popularity":    movie.Popularity,
		"Adult":         movie.Adult,

		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
