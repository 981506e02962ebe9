// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: ba98c53a-8c51-4a75-87ae-1f036f75ecf7

// Package matcher suggests known tag names for mistyped input.
package matcher

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// minSuggestScore is the lowest ScoreMatch result offered as a suggestion.
const minSuggestScore = 45

// Suggest returns up to limit names from candidates that resemble query,
// best first. Subsequence matches ("kwds" for "Keywords") rank ahead of
// edit-distance matches.
func Suggest(query string, candidates []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	var out []string
	add := func(name string) bool {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
		return len(out) >= limit
	}

	ranks := fuzzy.RankFindFold(query, candidates)
	sort.Sort(ranks)
	for _, r := range ranks {
		if add(r.Target) {
			return out
		}
	}
	for _, r := range RankResults(query, candidates, minSuggestScore) {
		if add(candidates[r.Index]) {
			return out
		}
	}
	return out
}

// Contains reports whether query is a case-insensitive subsequence of
// name.
func Contains(name, query string) bool {
	return fuzzy.MatchFold(query, name)
}
