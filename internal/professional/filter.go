package professional

import "strings"

// Filter narrows index queries. Empty fields match everything.
type Filter struct {
	State string
	City  string
}

func (f Filter) Matches(r Record) bool {
	if f.State != "" && !strings.EqualFold(r.State, f.State) {
		return false
	}
	if f.City != "" && !strings.EqualFold(r.City, f.City) {
		return false
	}
	return true
}
