package metrics

import (
	"math"

	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/amortize"
	"github.com/dealscope/underwriter/pkg/constants"
)

// LenderView is the stress-tested underwriting the lender runs: income after
// a vacancy haircut, lean operating costs, and debt service at the stress
// rate rather than the note rate.
type LenderView struct {
	Loan                  float64
	GrossMonthlyIncome    float64
	EffectiveGrossIncome  float64
	OperatingExpenses     float64
	NOI                   float64
	PrimaryDebtService    float64
	HardMoneyPayment      float64
	HardMoneyService      float64
	TotalDebtService      float64
	DSCR                  float64
	Pass                  bool
	AnnualCashFlow        float64
	AnnualCashFlowAfterHM float64
}

// InvestorView is the same deal at the note rate with the investor's own
// expense assumptions, shown with and without the hard-money bridge payment.
type InvestorView struct {
	Loan                 float64
	MonthlyPI            float64
	PITI                 float64
	GrossMonthlyIncome   float64
	OperatingExpenses    float64
	CashFlowWithHM       float64
	CashFlowAfterHM      float64
	CashToClose          float64
	CashOnCashWithHMPct  float64
	CashOnCashAfterHMPct float64
}

// DSCRMetrics pairs the two views computed from one input set.
type DSCRMetrics struct {
	Lender   LenderView
	Investor InvestorView
}

// ComputeDSCR derives both underwriting views. The gross income basis
// follows the property type: flat rent for a long-term rental, nightly
// revenue for a short-term one.
func ComputeDSCR(d *deal.DSCR) DSCRMetrics {
	loan := amortize.LoanAmount(d.Purchase, d.DownPct)

	grossIncome := d.LTRRent
	if d.PropertyType == deal.KindSTR {
		grossIncome = NightlyRevenue(d.STRAdr, d.STROcc)
	}

	hmPayment := 0.0
	if d.RenoFinancedHM {
		hmPayment = amortize.MonthlyPayment(d.Renovation, d.HMRate, d.HMTermYears)
	}

	lender := computeLenderView(d, loan, grossIncome, hmPayment)
	investor := computeInvestorView(d, loan, grossIncome, hmPayment)

	return DSCRMetrics{Lender: lender, Investor: investor}
}

func computeLenderView(d *deal.DSCR, loan, grossIncome, hmPayment float64) LenderView {
	egi := grossIncome * constants.MonthsPerYear * (1 - d.StressVacancyPct/constants.PercentageMultiplier)
	opex := d.TaxYear + d.InsuranceMo*constants.MonthsPerYear + d.HOA*constants.MonthsPerYear
	noi := egi - opex

	primaryDS := amortize.MonthlyPayment(loan, d.StressRatePct, d.TermYears) * constants.MonthsPerYear
	hmService := hmPayment * constants.MonthsPerYear
	totalDS := primaryDS + hmService

	dscr := math.Inf(1)
	if totalDS > 0 {
		dscr = noi / totalDS
	}

	return LenderView{
		Loan:                  loan,
		GrossMonthlyIncome:    grossIncome,
		EffectiveGrossIncome:  egi,
		OperatingExpenses:     opex,
		NOI:                   noi,
		PrimaryDebtService:    primaryDS,
		HardMoneyPayment:      hmPayment,
		HardMoneyService:      hmService,
		TotalDebtService:      totalDS,
		DSCR:                  dscr,
		Pass:                  dscr >= d.MinDSCR,
		AnnualCashFlow:        noi - totalDS,
		AnnualCashFlowAfterHM: noi - primaryDS,
	}
}

func computeInvestorView(d *deal.DSCR, loan, grossIncome, hmPayment float64) InvestorView {
	pi := amortize.MonthlyPayment(loan, d.Rate, d.TermYears)
	piti := pi + d.TaxYear/constants.MonthsPerYear + d.InsuranceMo

	var opex float64
	if d.PropertyType == deal.KindLTR {
		opex = grossIncome*(d.InvPMPct+d.InvMaintPct+d.InvCapexPct)/constants.PercentageMultiplier +
			d.HOA + d.InvUtilities
	} else {
		opex = grossIncome*(d.InvPMPct+d.InvPlatformPct+d.InvMaintPct+d.InvCapexPct)/constants.PercentageMultiplier +
			d.InvCleaningFee*d.InvStaysPerMo + d.HOA + d.InvUtilities + d.InvSuppliesMo
	}

	cfWithHM := grossIncome - piti - opex - hmPayment
	cfAfterHM := grossIncome - piti - opex

	cashIn := d.DownAmt + d.ClosingCosts
	if !d.RenoFinancedHM {
		cashIn += d.Renovation
	}

	return InvestorView{
		Loan:                 loan,
		MonthlyPI:            pi,
		PITI:                 piti,
		GrossMonthlyIncome:   grossIncome,
		OperatingExpenses:    opex,
		CashFlowWithHM:       cfWithHM,
		CashFlowAfterHM:      cfAfterHM,
		CashToClose:          cashIn,
		CashOnCashWithHMPct:  CashOnCash(cfWithHM, cashIn),
		CashOnCashAfterHMPct: CashOnCash(cfAfterHM, cashIn),
	}
}
