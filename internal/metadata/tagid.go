// file: internal/metadata/tagid.go
// version: 1.0.0
// guid: 70b579b3-6657-42a6-a214-50794d54e897

package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/matcher"
)

// UnknownTagError reports a tag name or number that could not be
// resolved, with close matches from the tag table.
type UnknownTagError struct {
	Input       string
	Suggestions []string
}

func (e *UnknownTagError) Error() string {
	msg := fmt.Sprintf("%q is not a known tag", e.Input)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Unwrap makes errors.Is(err, iptc.ErrNotFound) hold.
func (e *UnknownTagError) Unwrap() error { return iptc.ErrNotFound }

// ParseTagID resolves "R:T" (record 1-9, tag 0-255) or a canonical tag
// name such as "Caption". Numeric IDs need not be in the tag table.
func ParseTagID(s string) (iptc.Record, iptc.Tag, error) {
	s = strings.TrimSpace(s)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		rs, ts, ok := strings.Cut(s, ":")
		if !ok {
			return 0, 0, &UnknownTagError{Input: s}
		}
		r, err1 := strconv.ParseUint(rs, 10, 8)
		t, err2 := strconv.ParseUint(ts, 10, 8)
		if err1 != nil || err2 != nil || r < 1 || r > 9 {
			return 0, 0, &UnknownTagError{Input: s}
		}
		return iptc.Record(r), iptc.Tag(t), nil
	}

	if r, t, ok := iptc.FindTagByName(s); ok {
		return r, t, nil
	}
	return 0, 0, &UnknownTagError{Input: s, Suggestions: matcher.Suggest(s, iptc.TagNames(), 3)}
}

// ParseTagRef parses a tag ID with an optional "#N" suffix selecting the
// match after N skipped ones. anchored reports whether the suffix was
// present.
func ParseTagRef(s string) (r iptc.Record, t iptc.Tag, skip int, anchored bool, err error) {
	id, idx, found := strings.Cut(strings.TrimSpace(s), "#")
	if found {
		n, convErr := strconv.Atoi(idx)
		if convErr != nil || n < 0 {
			return 0, 0, 0, false, fmt.Errorf("invalid match index %q in %q", idx, s)
		}
		skip, anchored = n, true
	}
	r, t, err = ParseTagID(id)
	return r, t, skip, anchored, err
}

// FormatTagID renders (r, t) the way tag listings do ("2:120").
func FormatTagID(r iptc.Record, t iptc.Tag) string {
	return fmt.Sprintf("%d:%03d", r, t)
}
