package deal

// Session-start defaults for every strategy. These mirror a representative
// mid-market deal per strategy and are overlaid by the deal configuration
// file when one is provided.

// DefaultLTR returns the long-term rental defaults.
func DefaultLTR() LTR {
	return LTR{
		Financing: Financing{
			Purchase: 350000, DownPct: 20, DownAmt: 70000, ClosingCosts: 10500,
			Renovation: 15000, Rate: 6.5, TermYears: 30,
		},
		OperatingCosts: OperatingCosts{
			TaxYear: 4200, TaxRate: 1.2, InsuranceMo: 125,
			PMPct: 8, MaintPct: 5, CapexPct: 5,
		},
		Rent: 2800,
	}
}

// DefaultRoom returns the by-the-room defaults.
func DefaultRoom() Room {
	return Room{
		Financing: Financing{
			Purchase: 450000, DownPct: 5, DownAmt: 22500, ClosingCosts: 13500,
			Renovation: 20000, Rate: 6.0, TermYears: 30,
		},
		OperatingCosts: OperatingCosts{
			TaxYear: 5400, TaxRate: 1.2, InsuranceMo: 150, HOA: 50,
			Utilities: 400, MaintPct: 5, CapexPct: 5,
		},
	}
}

// DefaultRoomUnits returns the starting rental-unit collection: three rooms
// (the first owner-occupied) and one ADU.
func DefaultRoomUnits() []RoomUnit {
	units := []RoomUnit{
		NewRoomUnit(RoomUnitRoom, 850),
		NewRoomUnit(RoomUnitRoom, 800),
		NewRoomUnit(RoomUnitRoom, 800),
		NewRoomUnit(RoomUnitADU, 1200),
	}
	units[0].OwnerOccupied = true
	return units
}

// DefaultSTR returns the short-term rental defaults.
func DefaultSTR() STR {
	return STR{
		Financing: Financing{
			Purchase: 400000, DownPct: 25, DownAmt: 100000, ClosingCosts: 12000,
			Renovation: 25000, Rate: 7.0, TermYears: 30,
		},
		OperatingCosts: OperatingCosts{
			TaxYear: 4800, TaxRate: 1.2, InsuranceMo: 200, HOA: 100,
			Utilities: 500, MaintPct: 5, CapexPct: 5,
		},
		Staging: 15000, ADR: 250, Occupancy: 75, SuppliesMo: 150,
		CohostPct: 15, PlatformPct: 3, CleaningFee: 150, StaysPerMo: 8,
	}
}

// DefaultMulti returns the multi-unit defaults.
func DefaultMulti() Multi {
	return Multi{
		Financing: Financing{
			Purchase: 600000, DownPct: 25, DownAmt: 150000, ClosingCosts: 18000,
			Renovation: 30000, Rate: 7.2, TermYears: 30,
		},
		OperatingCosts: OperatingCosts{
			TaxYear: 7200, TaxRate: 1.2, InsuranceMo: 250,
			PMPct: 8, MaintPct: 5, CapexPct: 5,
		},
	}
}

// DefaultMultiUnits returns the starting multi-family unit collection.
func DefaultMultiUnits() []MultiUnit {
	return []MultiUnit{NewMultiUnit(1500), NewMultiUnit(1500)}
}

// DefaultMultiUnitRent is the rent given to an added unit when the
// collection is empty.
const DefaultMultiUnitRent = 1500

// DefaultDSCR returns the DSCR underwriting defaults.
func DefaultDSCR() DSCR {
	return DSCR{
		PropertyType: KindLTR,
		Purchase:     500000, DownPct: 25, DownAmt: 125000, ClosingCosts: 15000,
		Rate: 7.5, TermYears: 30,
		HMRate: 12, HMTermYears: 1,
		LTRRent: 4000, STRAdr: 300, STROcc: 70,
		TaxYear: 6000, TaxRate: 1.2, InsuranceMo: 175,
		StressVacancyPct: 5, StressRatePct: 9.5, MinDSCR: 1.0,
		InvPMPct: 15, InvMaintPct: 5, InvCapexPct: 5, InvUtilities: 300,
		InvPlatformPct: 3, InvSuppliesMo: 150, InvStaysPerMo: 8,
	}
}

// DefaultBuild returns the new-construction defaults.
func DefaultBuild() Build {
	return Build{
		PropertyType:    PropertySFH,
		LandAcquisition: LandCash,
		LandCost:        100000, HardCosts: 400000, SoftCosts: 50000, Buffer: 50000,
		ConstructionLTC: 80, ConstructionRate: 9.5, ConstructionTermMo: 12,
		ARV: 750000, RefiLTV: 75, RefiRate: 6.8, RefiTermYears: 30,
		TotalTaxYear: 9000, TotalTaxRate: 1.2, TotalInsYear: 2100,
		MaintPct: 5, CapexPct: 5,
	}
}

// DefaultBuildUnit returns the settings for a newly added build unit when no
// existing unit is available to clone.
func DefaultBuildUnit() BuildUnit {
	u := BuildUnit{
		Strategy: KindLTR,
		LTRRent:  2500, LTRPMPct: 8,
		STRAdr: 200, STROcc: 75, STRCohostPct: 15, STRPlatformPct: 3,
		STRSuppliesMo: 150, STRCleaningFee: 120, STRStaysPerMo: 10,
	}
	return u.Clone()
}

// DefaultBuildUnits returns the starting new-build unit collection.
func DefaultBuildUnits() []BuildUnit {
	return []BuildUnit{DefaultBuildUnit()}
}
