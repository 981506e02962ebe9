// file: internal/matcher/fuzzy_test.go
// version: 2.0.0
// guid: 1ef83378-d58a-4aad-9c5f-e8769983dc1c

package matcher

import (
	"reflect"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"caption", "captoin", 2},
		{"Keywords", "keywords", 0}, // case insensitive
	}
	for _, tt := range tests {
		got := LevenshteinDistance(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScoreMatch(t *testing.T) {
	tests := []struct {
		query, target string
		minExpected   int
		maxExpected   int
	}{
		// Exact match ignoring case and separators
		{"caption", "Caption", 100, 100},
		{"copyright notice", "CopyrightNotice", 100, 100},
		// Prefix
		{"Copy", "CopyrightNotice", 90, 90},
		// Word inside a CamelCase name
		{"date", "DigitalCreationDate", 80, 90},
		// Typo
		{"keywrds", "Keywords", 55, 70},
		// No match
		{"xyzzy", "Caption", 0, 20},
		// Empty
		{"", "Caption", 0, 0},
		{"Caption", "", 0, 0},
	}
	for _, tt := range tests {
		score := ScoreMatch(tt.query, tt.target)
		if score < tt.minExpected || score > tt.maxExpected {
			t.Errorf("ScoreMatch(%q, %q) = %d, want [%d, %d]",
				tt.query, tt.target, score, tt.minExpected, tt.maxExpected)
		}
	}
}

func TestScoreMatch_Ranking(t *testing.T) {
	query := "city"
	exact := ScoreMatch(query, "City")
	prefix := ScoreMatch(query, "CityCode")
	fuzzy := ScoreMatch(query, "Credit")

	if exact <= prefix {
		t.Errorf("exact (%d) should beat prefix (%d)", exact, prefix)
	}
	if prefix <= fuzzy {
		t.Errorf("prefix (%d) should beat fuzzy (%d)", prefix, fuzzy)
	}
}

func TestRankResults(t *testing.T) {
	candidates := []string{"Headline", "Caption", "Captions", "Contact"}
	results := RankResults("Caption", candidates, 10)

	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].Index != 1 {
		t.Errorf("expected index 1 first, got %d (score %d)", results[0].Index, results[0].Score)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted: score[%d]=%d > score[%d]=%d",
				i, results[i].Score, i-1, results[i-1].Score)
		}
	}
}

func TestRankResults_MinScore(t *testing.T) {
	results := RankResults("Caption", []string{"Caption", "SizeMode"}, 90)
	if len(results) != 1 {
		t.Errorf("expected 1 result with minScore 90, got %d", len(results))
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Hello, World!", "helloworld"},
		{"  Sub-location  ", "sublocation"},
		{"ICC_Profile", "iccprofile"},
	}
	for _, tt := range tests {
		got := normalize(tt.input)
		if got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"DigitalCreationDate", []string{"Digital", "Creation", "Date"}},
		{"UNO", []string{"UNO"}},
		{"ICC_Profile", []string{"ICC", "Profile"}},
		{"copyright notice", []string{"copyright", "notice"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := splitWords(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitWords(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
