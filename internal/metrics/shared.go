// Package metrics derives investment metrics from strategy input records.
// Every calculator is a pure function: no errors, no state, and degenerate
// inputs yield 0 or a signed infinity rather than a failure.
package metrics

import (
	"math"

	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/constants"
)

// CashOnCash annualizes a monthly cash flow against the cash invested, as a
// percentage. A non-positive cash basis yields a signed infinity so the
// presentation layer can render it distinctly from any finite return.
func CashOnCash(monthlyCashFlow, cashBasis float64) float64 {
	if cashBasis > 0 {
		return monthlyCashFlow * constants.MonthsPerYear / cashBasis * constants.PercentageMultiplier
	}
	if monthlyCashFlow > 0 {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// NightlyRevenue converts a nightly rate and occupancy percentage into
// average monthly revenue.
func NightlyRevenue(adr, occupancyPct float64) float64 {
	return adr * constants.DaysPerMonth * occupancyPct / constants.PercentageMultiplier
}

// financedLoan adds the renovation budget to the purchase loan when the
// renovation is rolled into financing.
func financedLoan(purchaseLoan float64, f deal.Financing) float64 {
	if f.RenoFinanced {
		return purchaseLoan + f.Renovation
	}
	return purchaseLoan
}

// cashToClose is the cash required at closing: down payment and closing
// costs, plus the renovation budget when it is paid out of pocket.
func cashToClose(f deal.Financing) float64 {
	cash := f.DownAmt + f.ClosingCosts
	if !f.RenoFinanced {
		cash += f.Renovation
	}
	return cash
}
