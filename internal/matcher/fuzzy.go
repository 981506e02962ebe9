// file: internal/matcher/fuzzy.go
// version: 2.0.0
// guid: 1c97818d-3605-44db-bf25-f588527194e6

package matcher

import (
	"sort"
	"strings"
	"unicode"
)

// FuzzyResult holds a scored search result.
type FuzzyResult struct {
	Index int // index into the original slice
	Score int // 0-100, higher is better
}

// LevenshteinDistance computes the case-insensitive edit distance between
// two strings.
func LevenshteinDistance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Two-row DP
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// ScoreMatch scores how well query matches a tag name. Returns 0-100.
// CamelCase names are split into words, so "date" scores well against
// "DigitalCreationDate".
func ScoreMatch(query, target string) int {
	q := normalize(query)
	t := normalize(target)
	if q == "" || t == "" {
		return 0
	}

	// Exact match ignoring case and separators
	if q == t {
		return 100
	}

	score := 0
	if strings.HasPrefix(t, q) {
		score = 90
	} else if strings.Contains(t, q) {
		// Shorter targets are more specific
		ratio := float64(len(q)) / float64(len(t))
		score = 60 + int(ratio*25)
	}

	for _, w := range splitWords(target) {
		w = strings.ToLower(w)
		if strings.HasPrefix(w, q) {
			score = max(score, 80)
		}
		score = max(score, similarity(q, w, 70))
	}
	return max(score, similarity(q, t, 50))
}

// similarity maps the edit distance between a and b onto [0, scale].
func similarity(a, b string, scale int) int {
	n := max(len(a), len(b))
	if n == 0 {
		return 0
	}
	s := int((1.0 - float64(LevenshteinDistance(a, b))/float64(n)) * float64(scale))
	return max(s, 0)
}

// RankResults scores each candidate against the query and returns results
// sorted by score descending. Only results with score >= minScore are
// returned; ties keep candidate order.
func RankResults(query string, candidates []string, minScore int) []FuzzyResult {
	var results []FuzzyResult
	for i, c := range candidates {
		if s := ScoreMatch(query, c); s >= minScore {
			results = append(results, FuzzyResult{Index: i, Score: s})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// normalize lowercases and keeps only letters and digits.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitWords splits "CopyrightNotice" or "copyright notice" into words.
func splitWords(s string) []string {
	var words []string
	start := -1
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
		case start < 0:
			start = i
		case unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]):
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}
