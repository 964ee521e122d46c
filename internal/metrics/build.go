package metrics

import (
	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/pkg/amortize"
	"github.com/dealscope/underwriter/pkg/constants"
)

// BuildMetrics is the derived view of a new-construction project across both
// phases: the construction loan and the stabilized post-refinance hold.
type BuildMetrics struct {
	LoanableBase        float64
	ConstructionLoan    float64
	ConstructionPayment float64
	TotalProjectCost    float64
	UpfrontCash         float64

	PermanentLoan   float64
	CashOutAtRefi   float64
	NetCashInvested float64
	MonthlyPI       float64
	PITI            float64

	Revenue           float64
	OperatingExpenses float64
	CashFlow          float64
	CashOnCashPct     float64
	ReturnOnCostPct   float64
}

// ComputeBuild derives the two-phase new-construction metrics. Land cost
// joins the loanable base only when financed, and drops out of the project
// cost entirely when the land is already owned. Stabilized cash-on-cash is
// measured against net cash invested after the refinance cash-out; return on
// cost uses the total project cost as its denominator.
func ComputeBuild(d *deal.Build, units []deal.BuildUnit) BuildMetrics {
	loanableBase := d.HardCosts + d.SoftCosts + d.Buffer
	if d.LandAcquisition == deal.LandFinance {
		loanableBase += d.LandCost
	}

	constructionLoan := loanableBase * d.ConstructionLTC / constants.PercentageMultiplier
	constructionPayment := amortize.MonthlyInterestOnly(constructionLoan, d.ConstructionRate)

	totalProjectCost := d.HardCosts + d.SoftCosts + d.Buffer
	if d.LandAcquisition != deal.LandOwned {
		totalProjectCost += d.LandCost
	}
	upfrontCash := totalProjectCost - constructionLoan

	permanentLoan := d.ARV * d.RefiLTV / constants.PercentageMultiplier
	cashOut := permanentLoan - constructionLoan
	netCashInvested := upfrontCash - cashOut

	pi := amortize.MonthlyPayment(permanentLoan, d.RefiRate, d.RefiTermYears)
	piti := pi + d.TotalTaxYear/constants.MonthsPerYear + d.TotalInsYear/constants.MonthsPerYear

	totalRevenue := 0.0
	unitOpex := 0.0
	for _, u := range units {
		revenue, opex := buildUnitEconomics(u)
		totalRevenue += revenue
		unitOpex += opex
	}

	propertyOpex := totalRevenue*(d.MaintPct+d.CapexPct)/constants.PercentageMultiplier + d.TotalHOA + d.TotalUtilities
	totalOpex := unitOpex + propertyOpex
	cashFlow := totalRevenue - piti - totalOpex

	returnOnCost := 0.0
	if totalProjectCost > 0 {
		returnOnCost = cashFlow * constants.MonthsPerYear / totalProjectCost * constants.PercentageMultiplier
	}

	return BuildMetrics{
		LoanableBase:        loanableBase,
		ConstructionLoan:    constructionLoan,
		ConstructionPayment: constructionPayment,
		TotalProjectCost:    totalProjectCost,
		UpfrontCash:         upfrontCash,
		PermanentLoan:       permanentLoan,
		CashOutAtRefi:       cashOut,
		NetCashInvested:     netCashInvested,
		MonthlyPI:           pi,
		PITI:                piti,
		Revenue:             totalRevenue,
		OperatingExpenses:   totalOpex,
		CashFlow:            cashFlow,
		CashOnCashPct:       CashOnCash(cashFlow, netCashInvested),
		ReturnOnCostPct:     returnOnCost,
	}
}

// buildUnitEconomics returns the monthly revenue and unit-level operating
// cost for one stabilized unit under its chosen rental treatment.
func buildUnitEconomics(u deal.BuildUnit) (revenue, opex float64) {
	if u.Strategy == deal.KindLTR {
		revenue = u.LTRRent
		opex = revenue * u.LTRPMPct / constants.PercentageMultiplier
		return revenue, opex
	}

	revenue = NightlyRevenue(u.STRAdr, u.STROcc)
	cleaning := u.STRCleaningFee * u.STRStaysPerMo
	if u.STRCleaningByGuest {
		cleaning = 0
	}
	opex = revenue*(u.STRCohostPct+u.STRPlatformPct)/constants.PercentageMultiplier + u.STRSuppliesMo + cleaning
	return revenue, opex
}
