// Package fuzzy resolves free-text item names against a member's stored names.
//
// Resolution is deterministic for a given candidate set: an exact normalized
// match always wins, otherwise the best similarity score at or above the
// threshold is chosen, ties going to the shorter name and then to the most
// recently added row.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// DefaultThreshold is the minimum similarity accepted as a match
const DefaultThreshold = 0.6

// Candidate is a stored name the query may resolve to
type Candidate struct {
	Key  string // normalized name
	Name string
	Seq  string // sortable row id, larger is newer
}

// Match is the outcome of a successful resolution
type Match struct {
	Candidate
	Score float64
	Exact bool
}

// Resolver maps queries to candidates
type Resolver struct {
	threshold float64
}

// NewResolver creates a resolver; a threshold outside (0,1] falls back to DefaultThreshold
func NewResolver(threshold float64) *Resolver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Resolver{threshold: threshold}
}

// Threshold returns the acceptance threshold
func (r *Resolver) Threshold() float64 {
	return r.threshold
}

// Normalize trims, collapses inner whitespace and case-folds an item name
func Normalize(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// Resolve returns the best candidate for query, or false when nothing reaches the threshold
func (r *Resolver) Resolve(query string, candidates []Candidate) (Match, bool) {
	key := Normalize(query)
	if key == "" || len(candidates) == 0 {
		return Match{}, false
	}

	var best Match
	found := false
	for _, c := range candidates {
		if c.Key == key {
			m := Match{Candidate: c, Score: 1, Exact: true}
			if !found || !best.Exact || newer(c, best.Candidate) {
				best = m
				found = true
			}
			continue
		}
		if found && best.Exact {
			continue
		}
		score := Similarity(key, c.Key)
		if score < r.threshold {
			continue
		}
		m := Match{Candidate: c, Score: score}
		if !found || better(m, best) {
			best = m
			found = true
		}
	}
	return best, found
}

// Matches reports whether two names refer to the same item under this resolver
func (r *Resolver) Matches(a, b string) bool {
	ka, kb := Normalize(a), Normalize(b)
	if ka == "" || kb == "" {
		return false
	}
	return ka == kb || Similarity(ka, kb) >= r.threshold
}

// Score rates query against a stored key; ok is false below the threshold
func (r *Resolver) Score(query, key string) (score float64, ok bool) {
	q := Normalize(query)
	if q == "" || key == "" {
		return 0, false
	}
	score = Similarity(q, key)
	return score, score >= r.threshold
}

func better(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	la, lb := utf8.RuneCountInString(a.Key), utf8.RuneCountInString(b.Key)
	if la != lb {
		return la < lb
	}
	if a.Seq != b.Seq {
		return a.Seq > b.Seq
	}
	return a.Key < b.Key
}

func newer(a, b Candidate) bool {
	if a.Seq != b.Seq {
		return a.Seq > b.Seq
	}
	return a.Name < b.Name
}
