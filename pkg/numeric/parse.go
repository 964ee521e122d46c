// Package numeric provides tolerant parsing of raw field input.
package numeric

import (
	"strconv"
	"strings"
)

// Parse coerces arbitrary raw input into a float64. Every character other
// than digits, '.', and '-' is stripped before parsing; input that still
// fails to parse becomes 0. Parse never returns an error.
func Parse(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	val, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return val
}
