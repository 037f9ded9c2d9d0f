package professional

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalRecords renders records the way artifacts are written: indented UTF-8
// without HTML escaping, and "[]" for an empty set.
func MarshalRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return buf.Bytes(), nil
}
