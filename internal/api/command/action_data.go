package command

import (
	"bytes"
	"encoding/json"
)

// RawField holds a JSON value and whether its key appeared in the body. An
// explicit null counts as present.
type RawField struct {
	Set   bool
	Value json.RawMessage
}

func (f *RawField) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Value = append(f.Value[:0], data...)
	return nil
}

// NormalizeActionData turns the raw action_data value into the text stored in
// the database. A JSON string is stored as its contents, which must themselves
// be valid JSON. Any other JSON value is stored as its compact encoding.
func NormalizeActionData(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", ErrInvalidActionData
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", ErrInvalidActionData
		}
		if !json.Valid([]byte(s)) {
			return "", ErrInvalidActionData
		}
		return s, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", ErrInvalidActionData
	}
	return buf.String(), nil
}
