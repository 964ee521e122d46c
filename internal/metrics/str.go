package metrics

import (
	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/amortize"
	"github.com/dealscope/underwriter/pkg/constants"
)

// STRMetrics is the derived view of a short-term rental deal.
type STRMetrics struct {
	PurchaseLoan      float64
	Loan              float64
	MonthlyPI         float64
	PITI              float64
	Revenue           float64
	OperatingExpenses float64
	CashFlow          float64
	CashToClose       float64
	CashOnCashPct     float64
}

// ComputeSTR derives the short-term rental metrics. Revenue comes from the
// nightly rate and occupancy; staging is an upfront cash cost alongside the
// down payment and closing costs.
func ComputeSTR(d *deal.STR) STRMetrics {
	purchaseLoan := amortize.LoanAmount(d.Purchase, d.DownPct)
	loan := financedLoan(purchaseLoan, d.Financing)
	pi := amortize.MonthlyPayment(loan, d.Rate, d.TermYears)
	piti := pi + d.TaxYear/constants.MonthsPerYear + d.InsuranceMo

	revenue := NightlyRevenue(d.ADR, d.Occupancy)
	opex := revenue*(d.CohostPct+d.PlatformPct+d.MaintPct+d.CapexPct)/constants.PercentageMultiplier +
		d.CleaningFee*d.StaysPerMo + d.HOA + d.Utilities + d.SuppliesMo
	cashFlow := revenue - piti - opex
	cashIn := cashToClose(d.Financing) + d.Staging

	return STRMetrics{
		PurchaseLoan:      purchaseLoan,
		Loan:              loan,
		MonthlyPI:         pi,
		PITI:              piti,
		Revenue:           revenue,
		OperatingExpenses: opex,
		CashFlow:          cashFlow,
		CashToClose:       cashIn,
		CashOnCashPct:     CashOnCash(cashFlow, cashIn),
	}
}
