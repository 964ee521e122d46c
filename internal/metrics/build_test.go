package metrics

import (
	"math"
	"testing"

	"github.com/dealscope/underwriter/internal/deal"
)

func buildTestProject() (deal.Build, []deal.BuildUnit) {
	d := deal.Build{
		PropertyType:    deal.PropertySFH,
		LandAcquisition: deal.LandCash,
		LandCost:        100000, HardCosts: 400000, SoftCosts: 50000, Buffer: 50000,
		ConstructionLTC: 80, ConstructionRate: 9.5, ConstructionTermMo: 12,
		ARV: 750000, RefiLTV: 75, RefiRate: 6.8, RefiTermYears: 30,
		TotalTaxYear: 9000, TotalTaxRate: 1.2, TotalInsYear: 2100,
		MaintPct: 5, CapexPct: 5,
	}
	unit := deal.BuildUnit{
		Strategy: deal.KindLTR,
		LTRRent:  2500, LTRPMPct: 8,
		STRAdr: 200, STROcc: 75, STRCohostPct: 15, STRPlatformPct: 3,
		STRSuppliesMo: 150, STRCleaningFee: 120, STRStaysPerMo: 10,
	}
	return d, []deal.BuildUnit{unit.Clone()}
}

func TestComputeBuildConstructionPhase(t *testing.T) {
	d, units := buildTestProject()
	m := ComputeBuild(&d, units)

	// Cash-purchased land stays out of the loanable base but inside the
	// project cost.
	if m.LoanableBase != 500000 {
		t.Errorf("loanable base = %v, expected 500000", m.LoanableBase)
	}
	if m.ConstructionLoan != 400000 {
		t.Errorf("construction loan = %v, expected 400000", m.ConstructionLoan)
	}
	if math.Abs(m.ConstructionPayment-3166.67) > 0.01 {
		t.Errorf("construction payment = %.2f, expected 3166.67", m.ConstructionPayment)
	}
	if m.TotalProjectCost != 600000 {
		t.Errorf("total project cost = %v, expected 600000", m.TotalProjectCost)
	}
	if m.UpfrontCash != 200000 {
		t.Errorf("upfront cash = %v, expected 200000", m.UpfrontCash)
	}
}

func TestComputeBuildStabilizedPhase(t *testing.T) {
	d, units := buildTestProject()
	m := ComputeBuild(&d, units)

	if m.PermanentLoan != 562500 {
		t.Errorf("permanent loan = %v, expected 562500", m.PermanentLoan)
	}
	if m.CashOutAtRefi != 162500 {
		t.Errorf("cash out at refi = %v, expected 162500", m.CashOutAtRefi)
	}
	if m.NetCashInvested != 37500 {
		t.Errorf("net cash invested = %v, expected 37500", m.NetCashInvested)
	}

	if m.Revenue != 2500 {
		t.Errorf("revenue = %v, expected 2500 from the single LTR unit", m.Revenue)
	}
	// Unit PM plus property-level maintenance and capex.
	expectedOpex := 2500*0.08 + 2500*0.10
	if math.Abs(m.OperatingExpenses-expectedOpex) > 0.01 {
		t.Errorf("operating expenses = %.2f, expected %.2f", m.OperatingExpenses, expectedOpex)
	}

	expectedPITI := m.MonthlyPI + 9000.0/12 + 2100.0/12
	if math.Abs(m.PITI-expectedPITI) > 0.01 {
		t.Errorf("PITI = %.2f, expected %.2f", m.PITI, expectedPITI)
	}

	expectedROC := m.CashFlow * 12 / 600000 * 100
	if math.Abs(m.ReturnOnCostPct-expectedROC) > 1e-9 {
		t.Errorf("return on cost = %v, expected %v", m.ReturnOnCostPct, expectedROC)
	}
}

func TestComputeBuildLandAcquisition(t *testing.T) {
	tests := []struct {
		name                 string
		acquisition          deal.LandAcquisition
		expectedLoanableBase float64
		expectedProjectCost  float64
	}{
		{
			name:                 "Cash purchase",
			acquisition:          deal.LandCash,
			expectedLoanableBase: 500000,
			expectedProjectCost:  600000,
		},
		{
			name:                 "Financed land joins the loanable base",
			acquisition:          deal.LandFinance,
			expectedLoanableBase: 600000,
			expectedProjectCost:  600000,
		},
		{
			name:                 "Owned land drops out entirely",
			acquisition:          deal.LandOwned,
			expectedLoanableBase: 500000,
			expectedProjectCost:  500000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, units := buildTestProject()
			d.LandAcquisition = tt.acquisition
			m := ComputeBuild(&d, units)

			if m.LoanableBase != tt.expectedLoanableBase {
				t.Errorf("loanable base = %v, expected %v", m.LoanableBase, tt.expectedLoanableBase)
			}
			if m.TotalProjectCost != tt.expectedProjectCost {
				t.Errorf("total project cost = %v, expected %v", m.TotalProjectCost, tt.expectedProjectCost)
			}
		})
	}
}

func TestComputeBuildSTRUnits(t *testing.T) {
	d, units := buildTestProject()
	units[0].Strategy = deal.KindSTR
	m := ComputeBuild(&d, units)

	expectedRevenue := 200 * 30.44 * 0.75
	if math.Abs(m.Revenue-expectedRevenue) > 0.01 {
		t.Errorf("revenue = %.2f, expected %.2f", m.Revenue, expectedRevenue)
	}

	// Cohost and platform percentages plus supplies and cleaning, then
	// property-level maintenance and capex.
	unitOpex := expectedRevenue*0.18 + 150 + 120*10
	expectedOpex := unitOpex + expectedRevenue*0.10
	if math.Abs(m.OperatingExpenses-expectedOpex) > 0.01 {
		t.Errorf("operating expenses = %.2f, expected %.2f", m.OperatingExpenses, expectedOpex)
	}
}

func TestComputeBuildGuestCoveredCleaning(t *testing.T) {
	d, units := buildTestProject()
	units[0].Strategy = deal.KindSTR
	withCleaning := ComputeBuild(&d, units)

	units[0].STRCleaningByGuest = true
	withoutCleaning := ComputeBuild(&d, units)

	saved := withCleaning.OperatingExpenses - withoutCleaning.OperatingExpenses
	if math.Abs(saved-1200) > 0.01 {
		t.Errorf("guest-covered cleaning saved %.2f, expected 1200", saved)
	}
}

func TestComputeBuildMultipleUnits(t *testing.T) {
	d, units := buildTestProject()
	d.PropertyType = deal.PropertyTriplex
	units = append(units, units[0].Clone(), units[0].Clone())
	m := ComputeBuild(&d, units)

	if m.Revenue != 7500 {
		t.Errorf("revenue = %v across three units, expected 7500", m.Revenue)
	}
}

func TestComputeBuildZeroProjectCost(t *testing.T) {
	d, units := buildTestProject()
	d.LandAcquisition = deal.LandOwned
	d.HardCosts, d.SoftCosts, d.Buffer = 0, 0, 0
	m := ComputeBuild(&d, units)

	if m.ReturnOnCostPct != 0 {
		t.Errorf("return on cost = %v with zero project cost, expected 0", m.ReturnOnCostPct)
	}
}
