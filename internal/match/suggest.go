package match

import (
	"sort"
	"strings"

	"classloader/internal/classid"
)

const (
	// DefaultMinScore is the minimum similarity for a suggestion.
	DefaultMinScore = 0.7
	// DefaultMaxSuggestions caps the number of suggestions returned.
	DefaultMaxSuggestions = 3
)

// NormalizeClass folds case and maps both namespace and legacy
// separators to "/", after trimming surrounding separators.
func NormalizeClass(class string) string {
	s := classid.Trim(class)
	s = strings.ReplaceAll(s, classid.NamespaceSeparator, "/")
	s = strings.ReplaceAll(s, classid.LegacySeparator, "/")

	return strings.ToLower(s)
}

// Candidate is a known identifier and its similarity to the query.
type Candidate struct {
	Class string
	Score float64
}

// Rank scores every known identifier against class, best first.
// Ties are broken alphabetically so results are stable.
func Rank(class string, known []string) []Candidate {
	query := NormalizeClass(class)
	ranked := make([]Candidate, 0, len(known))

	for _, k := range known {
		ranked = append(ranked, Candidate{Class: k, Score: Similarity(query, NormalizeClass(k))})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Class < ranked[j].Class
	})

	return ranked
}

// Suggest returns up to limit known identifiers scoring at least minScore.
func Suggest(class string, known []string, limit int, minScore float64) []string {
	var out []string

	for _, c := range Rank(class, known) {
		if c.Score < minScore || len(out) >= limit {
			break
		}

		out = append(out, c.Class)
	}

	return out
}
