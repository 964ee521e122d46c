// Package amortize provides loan sizing and payment primitives.
package amortize

import (
	"math"

	"github.com/dealscope/underwriter/pkg/constants"
)

// LoanAmount calculates the financed amount for a purchase given a down
// payment percentage. The result is never negative.
func LoanAmount(price, downPct float64) float64 {
	return math.Max(price*(1-downPct/constants.PercentageMultiplier), 0)
}

// MonthlyPayment calculates the monthly principal-and-interest payment for a
// loan using the standard fixed-rate amortization formula. No rounding is
// applied. Degenerate inputs (zero term, zero loan) yield 0.
func MonthlyPayment(loan, annualRatePct, termYears float64) float64 {
	n := termYears * constants.MonthsPerYear
	if annualRatePct == 0 {
		// For zero interest, simply divide the loan by the term
		if n == 0 {
			return 0
		}
		return loan / n
	}
	if loan == 0 || n == 0 {
		return 0
	}

	periodicRate := annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, n)
	return loan * periodicRate * power / (power - 1.00)
}

// MonthlyInterestOnly calculates the interest-only payment on a balance,
// as charged during a construction or bridge phase.
func MonthlyInterestOnly(balance, annualRatePct float64) float64 {
	return balance * annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
