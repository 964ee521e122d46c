package metrics

import (
	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/amortize"
	"github.com/dealscope/underwriter/pkg/constants"
)

// RoomScenario is one occupancy scenario of a by-the-room deal.
type RoomScenario struct {
	Revenue           float64
	OperatingExpenses float64
	CashFlow          float64
	CashOnCashPct     float64
}

// RoomMetrics is the derived view of a by-the-room deal. Two scenarios are
// produced side by side: LivingIn excludes the owner-occupied unit's rent,
// MovedOut counts every unit.
type RoomMetrics struct {
	PurchaseLoan float64
	Loan         float64
	MonthlyPI    float64
	PITI         float64
	CashToClose  float64
	MovedOut     RoomScenario
	LivingIn     RoomScenario
}

// ComputeRoom derives the by-the-room metrics from the record and its unit
// collection. When no unit is owner-occupied the two scenarios coincide.
func ComputeRoom(d *deal.Room, units []deal.RoomUnit) RoomMetrics {
	totalRent := 0.0
	ownerRent := 0.0
	for _, u := range units {
		totalRent += u.Rent
		if u.OwnerOccupied {
			ownerRent = u.Rent
		}
	}

	purchaseLoan := amortize.LoanAmount(d.Purchase, d.DownPct)
	loan := financedLoan(purchaseLoan, d.Financing)
	pi := amortize.MonthlyPayment(loan, d.Rate, d.TermYears)
	piti := pi + d.TaxYear/constants.MonthsPerYear + d.InsuranceMo
	cashIn := cashToClose(d.Financing)

	scenario := func(revenue float64) RoomScenario {
		opex := d.HOA + d.Utilities + revenue*(d.PMPct+d.MaintPct+d.CapexPct)/constants.PercentageMultiplier
		cashFlow := revenue - piti - opex
		return RoomScenario{
			Revenue:           revenue,
			OperatingExpenses: opex,
			CashFlow:          cashFlow,
			CashOnCashPct:     CashOnCash(cashFlow, cashIn),
		}
	}

	return RoomMetrics{
		PurchaseLoan: purchaseLoan,
		Loan:         loan,
		MonthlyPI:    pi,
		PITI:         piti,
		CashToClose:  cashIn,
		MovedOut:     scenario(totalRent),
		LivingIn:     scenario(totalRent - ownerRent),
	}
}
