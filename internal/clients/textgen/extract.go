package textgen

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

// ExtractJSONObject returns the span from the first '{' to the last '}'.
// Models tend to wrap JSON in prose or code fences, so no stricter parsing is done.
func ExtractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.Generation("no JSON object found in model output").
			WithMeta("output_length", len(raw))
	}
	return raw[start : end+1], nil
}

// DecodeJSONObject extracts the JSON object from raw and decodes it into target
func DecodeJSONObject(raw string, target any) error {
	obj, err := ExtractJSONObject(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), target); err != nil {
		return errors.WrapWithCode(err, errors.CodeGeneration, "malformed JSON in model output")
	}
	return nil
}
