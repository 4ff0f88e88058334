package util

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64 safely converts an any to a finite float64.
// Handles float64, float32, int64, int and string types.
// Returns 0 for nil, unsupported types, unparsable strings, NaN and ±Inf.
func ToFloat64(v any) float64 {
	if v == nil {
		return 0
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case string:
		parsed, ok := parseNumber(strings.TrimSpace(n))
		if !ok {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseNumber reads decimal numbers plus unsigned 0x, 0o and 0b integer
// literals, the forms a browser number field accepts. Hex floats such as
// "0x1p4" and underscore separators are rejected.
func parseNumber(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NonNegative returns f, or 0 when f is negative or not finite.
func NonNegative(f float64) float64 {
	if !(f > 0) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
