package metrics

import (
	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/amortize"
	"github.com/dealscope/underwriter/pkg/constants"
)

// MultiMetrics is the derived view of a multi-unit deal.
type MultiMetrics struct {
	PurchaseLoan      float64
	Loan              float64
	MonthlyPI         float64
	PITI              float64
	TotalRent         float64
	OperatingExpenses float64
	CashFlow          float64
	CashToClose       float64
	CashOnCashPct     float64
}

// ComputeMulti derives the multi-unit metrics. The rent basis is the sum of
// unit rents; percentage operating costs apply to that total.
func ComputeMulti(d *deal.Multi, units []deal.MultiUnit) MultiMetrics {
	totalRent := 0.0
	for _, u := range units {
		totalRent += u.Rent
	}

	purchaseLoan := amortize.LoanAmount(d.Purchase, d.DownPct)
	loan := financedLoan(purchaseLoan, d.Financing)
	pi := amortize.MonthlyPayment(loan, d.Rate, d.TermYears)
	piti := pi + d.TaxYear/constants.MonthsPerYear + d.InsuranceMo

	opex := d.HOA + d.Utilities + totalRent*(d.PMPct+d.MaintPct+d.CapexPct)/constants.PercentageMultiplier
	cashFlow := totalRent - piti - opex
	cashIn := cashToClose(d.Financing)

	return MultiMetrics{
		PurchaseLoan:      purchaseLoan,
		Loan:              loan,
		MonthlyPI:         pi,
		PITI:              piti,
		TotalRent:         totalRent,
		OperatingExpenses: opex,
		CashFlow:          cashFlow,
		CashToClose:       cashIn,
		CashOnCashPct:     CashOnCash(cashFlow, cashIn),
	}
}
