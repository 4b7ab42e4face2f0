package textgen

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric field of model output. Models return numbers, numeric
// strings or prose for these fields, so decoding never fails; an unusable
// value is simply marked invalid.
type Number struct {
	value float64
	valid bool
}

// UnmarshalJSON accepts a JSON number or a string holding one
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.value, n.valid = f, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n.value, n.valid = f, true
	return nil
}

// NewNumber returns a valid Number, mostly for tests
func NewNumber(v float64) Number {
	return Number{value: v, valid: true}
}

// Valid reports whether the field held a usable number
func (n Number) Valid() bool {
	return n.valid
}

// IntOr rounds the value to an int, or returns def when invalid
func (n Number) IntOr(def int) int {
	if !n.valid {
		return def
	}
	return int(math.Round(n.value))
}

// ClampedIntOr is IntOr clamped to [lo, hi]. The clamp happens before the
// conversion so out of range model values cannot overflow int.
func (n Number) ClampedIntOr(def, lo, hi int) int {
	if !n.valid {
		return min(max(def, lo), hi)
	}
	return int(math.Round(min(max(n.value, float64(lo)), float64(hi))))
}
