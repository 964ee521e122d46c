// Package format renders engine metrics for display. The engine itself
// returns exact numbers; infinities and NaN must survive to this layer,
// which renders them as a dash.
package format

import (
	"fmt"
	"math"
)

// Dash is rendered in place of metrics with no finite value, such as a
// cash-on-cash return on a zero cash basis.
const Dash = "—"

// IsDisplayable reports whether a metric has a finite value to show.
func IsDisplayable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Percent returns a percentage string with one decimal (e.g., "12.5%").
func Percent(v float64) string {
	if !IsDisplayable(v) {
		return Dash
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Ratio returns a coverage-ratio string with two decimals (e.g., "1.25").
func Ratio(v float64) string {
	if !IsDisplayable(v) {
		return Dash
	}
	return fmt.Sprintf("%.2f", v)
}
