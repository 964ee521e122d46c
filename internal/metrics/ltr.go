package metrics

import (
	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/amortize"
	"github.com/dealscope/underwriter/pkg/constants"
)

// LTRMetrics is the derived view of a long-term rental deal.
type LTRMetrics struct {
	PurchaseLoan      float64
	Loan              float64
	MonthlyPI         float64
	PITI              float64
	OperatingExpenses float64
	CashFlow          float64
	CashToClose       float64
	CashOnCashPct     float64
}

// ComputeLTR derives the long-term rental metrics. Percentage operating
// costs apply to the monthly rent.
func ComputeLTR(d *deal.LTR) LTRMetrics {
	purchaseLoan := amortize.LoanAmount(d.Purchase, d.DownPct)
	loan := financedLoan(purchaseLoan, d.Financing)
	pi := amortize.MonthlyPayment(loan, d.Rate, d.TermYears)
	piti := pi + d.TaxYear/constants.MonthsPerYear + d.InsuranceMo

	opex := d.HOA + d.Utilities + d.Rent*(d.PMPct+d.MaintPct+d.CapexPct)/constants.PercentageMultiplier
	cashFlow := d.Rent - piti - opex
	cashIn := cashToClose(d.Financing)

	return LTRMetrics{
		PurchaseLoan:      purchaseLoan,
		Loan:              loan,
		MonthlyPI:         pi,
		PITI:              piti,
		OperatingExpenses: opex,
		CashFlow:          cashFlow,
		CashToClose:       cashIn,
		CashOnCashPct:     CashOnCash(cashFlow, cashIn),
	}
}
