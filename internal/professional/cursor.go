package professional

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor points at the last index member of a page. Members sharing a score
// are ordered by member, so both parts are needed to resume without gaps.
// The zero Cursor means the first page on input and the last page on output.
type Cursor struct {
	Score  float64
	Member string
}

func (c Cursor) IsZero() bool {
	return c.Member == ""
}

func (c Cursor) String() string {
	if c.IsZero() {
		return ""
	}
	return strconv.FormatFloat(c.Score, 'f', -1, 64) + ":" + c.Member
}

func ParseCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	score, member, ok := strings.Cut(s, ":")
	if !ok || member == "" {
		return Cursor{}, ErrInvalidCursor
	}
	f, err := strconv.ParseFloat(score, 64)
	if err != nil || f < 0 {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Score: f, Member: member}, nil
}
