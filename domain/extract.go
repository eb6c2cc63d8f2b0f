package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject recovers a JSON object embedded in free-form backend
// output: the substring between the first '{' and the last '}' is parsed
// as JSON. Best-effort by contract — it assumes at most one top-level
// payload per response and that surrounding prose carries no braces.
func ExtractJSONObject(raw string) (map[string]any, error) {
	var payload map[string]any
	if err := ExtractJSONInto(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ExtractJSONInto applies the same brace-scan recovery but unmarshals
// the payload into v.
func ExtractJSONInto(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < 0 || start >= end {
		return ErrExtractionFailed
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return nil
}
