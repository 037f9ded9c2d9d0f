package professional

// Dedup keeps the first record seen for each phone, preserving order.
// Records without a phone are dropped and counted as removed.
func Dedup(records []Record) ([]Record, int) {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))

	for _, r := range records {
		if r.Phone == "" {
			continue
		}
		if _, dup := seen[r.Phone]; dup {
			continue
		}
		seen[r.Phone] = struct{}{}
		out = append(out, r)
	}
	return out, len(records) - len(out)
}

// Validate drops records missing any of the required fields.
func Validate(records []Record, required []string) ([]Record, int) {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if CheckRequired(r, required) != nil {
			continue
		}
		out = append(out, r)
	}
	return out, len(records) - len(out)
}
