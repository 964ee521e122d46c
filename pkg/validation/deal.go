// Package validation provides deal-input validation utilities. Findings are
// warnings, never errors: the engine accepts any input and degrades to 0 or
// infinity where a formula requires it.
package validation

import "fmt"

// ValidateFinancing checks a strategy's core purchase-and-loan inputs and
// returns warnings for values that will produce degenerate metrics.
func ValidateFinancing(strategy string, basePrice, downPct, termYears float64) []string {
	var warnings []string

	if basePrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s: base value is %.0f - rate-linked fields will resolve to 0", strategy, basePrice))
	}
	if downPct > 100 {
		warnings = append(warnings, fmt.Sprintf("%s: down payment of %.2f%% exceeds the purchase price", strategy, downPct))
	}
	if downPct < 0 {
		warnings = append(warnings, fmt.Sprintf("%s: down payment of %.2f%% is negative", strategy, downPct))
	}
	if termYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s: loan term of %.0f years - debt service will be 0", strategy, termYears))
	}

	return warnings
}

// ValidateOccupancy checks an occupancy percentage; the empty string means
// no finding.
func ValidateOccupancy(strategy string, occPct float64) string {
	if occPct > 100 {
		return fmt.Sprintf("%s: occupancy of %.1f%% exceeds 100%%", strategy, occPct)
	}
	if occPct < 0 {
		return fmt.Sprintf("%s: occupancy of %.1f%% is negative", strategy, occPct)
	}
	return ""
}

// ValidateUnitCount checks that a unit collection satisfies its minimum
// size; the empty string means no finding.
func ValidateUnitCount(strategy string, count, min int) string {
	if count < min {
		return fmt.Sprintf("%s: %d unit(s) configured, at least %d required", strategy, count, min)
	}
	return ""
}

// ValidateStressRate flags a stress-tested rate below the note rate, which
// understates the lender's view; the empty string means no finding.
func ValidateStressRate(strategy string, stressRate, noteRate float64) string {
	if stressRate < noteRate {
		return fmt.Sprintf("%s: stress rate %.2f%% is below the note rate %.2f%%", strategy, stressRate, noteRate)
	}
	return ""
}
