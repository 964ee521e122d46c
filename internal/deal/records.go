package deal

// Record is the reducer's view of a strategy input record: a flat mapping of
// named numeric fields. Unknown fields read as 0 and writes to them are
// dropped, so an edit can never fail.
type Record interface {
	Get(f Field) float64
	Set(f Field, v float64)
}

// Financing holds the purchase-and-loan fields shared by the rental
// strategies.
type Financing struct {
	Purchase     float64
	DownPct      float64
	DownAmt      float64
	ClosingCosts float64
	Renovation   float64
	Rate         float64
	TermYears    float64
	RenoFinanced bool
}

func (f *Financing) get(field Field) (float64, bool) {
	switch field {
	case FieldPurchase:
		return f.Purchase, true
	case FieldDownPct:
		return f.DownPct, true
	case FieldDownAmt:
		return f.DownAmt, true
	case FieldClosingCosts:
		return f.ClosingCosts, true
	case FieldRenovation:
		return f.Renovation, true
	case FieldRate:
		return f.Rate, true
	case FieldTerm:
		return f.TermYears, true
	}
	return 0, false
}

func (f *Financing) set(field Field, v float64) bool {
	switch field {
	case FieldPurchase:
		f.Purchase = v
	case FieldDownPct:
		f.DownPct = v
	case FieldDownAmt:
		f.DownAmt = v
	case FieldClosingCosts:
		f.ClosingCosts = v
	case FieldRenovation:
		f.Renovation = v
	case FieldRate:
		f.Rate = v
	case FieldTerm:
		f.TermYears = v
	default:
		return false
	}
	return true
}

// OperatingCosts holds the recurring property-cost fields shared by the
// rental strategies. Percentage fields are percent-of-revenue; the revenue
// basis varies by strategy.
type OperatingCosts struct {
	TaxYear     float64
	TaxRate     float64
	InsuranceMo float64
	HOA         float64
	Utilities   float64
	PMPct       float64
	MaintPct    float64
	CapexPct    float64
}

func (o *OperatingCosts) get(field Field) (float64, bool) {
	switch field {
	case FieldTaxYear:
		return o.TaxYear, true
	case FieldTaxRate:
		return o.TaxRate, true
	case FieldInsuranceMo:
		return o.InsuranceMo, true
	case FieldHOA:
		return o.HOA, true
	case FieldUtilities:
		return o.Utilities, true
	case FieldPMPct:
		return o.PMPct, true
	case FieldMaintPct:
		return o.MaintPct, true
	case FieldCapexPct:
		return o.CapexPct, true
	}
	return 0, false
}

func (o *OperatingCosts) set(field Field, v float64) bool {
	switch field {
	case FieldTaxYear:
		o.TaxYear = v
	case FieldTaxRate:
		o.TaxRate = v
	case FieldInsuranceMo:
		o.InsuranceMo = v
	case FieldHOA:
		o.HOA = v
	case FieldUtilities:
		o.Utilities = v
	case FieldPMPct:
		o.PMPct = v
	case FieldMaintPct:
		o.MaintPct = v
	case FieldCapexPct:
		o.CapexPct = v
	default:
		return false
	}
	return true
}

// LTR is the long-term rental input record.
type LTR struct {
	Financing
	OperatingCosts
	Rent float64
}

func (r *LTR) Get(field Field) float64 {
	if v, ok := r.Financing.get(field); ok {
		return v
	}
	if v, ok := r.OperatingCosts.get(field); ok {
		return v
	}
	if field == FieldRent {
		return r.Rent
	}
	return 0
}

func (r *LTR) Set(field Field, v float64) {
	if r.Financing.set(field, v) || r.OperatingCosts.set(field, v) {
		return
	}
	if field == FieldRent {
		r.Rent = v
	}
}

// Room is the by-the-room (house hack) input record; its revenue comes from
// the session's rental-unit collection.
type Room struct {
	Financing
	OperatingCosts
}

func (r *Room) Get(field Field) float64 {
	if v, ok := r.Financing.get(field); ok {
		return v
	}
	if v, ok := r.OperatingCosts.get(field); ok {
		return v
	}
	return 0
}

func (r *Room) Set(field Field, v float64) {
	if r.Financing.set(field, v) {
		return
	}
	r.OperatingCosts.set(field, v)
}

// Multi is the multi-unit input record; revenue comes from the session's
// unit collection. Percentage costs apply to total rent.
type Multi struct {
	Financing
	OperatingCosts
}

func (r *Multi) Get(field Field) float64 {
	if v, ok := r.Financing.get(field); ok {
		return v
	}
	if v, ok := r.OperatingCosts.get(field); ok {
		return v
	}
	return 0
}

func (r *Multi) Set(field Field, v float64) {
	if r.Financing.set(field, v) {
		return
	}
	r.OperatingCosts.set(field, v)
}

// STR is the short-term rental input record. PMPct on the embedded costs is
// unused; cohost percentage takes its place.
type STR struct {
	Financing
	OperatingCosts
	Staging     float64
	ADR         float64
	Occupancy   float64
	SuppliesMo  float64
	CohostPct   float64
	PlatformPct float64
	CleaningFee float64
	StaysPerMo  float64
}

func (r *STR) Get(field Field) float64 {
	if v, ok := r.Financing.get(field); ok {
		return v
	}
	if v, ok := r.OperatingCosts.get(field); ok {
		return v
	}
	switch field {
	case FieldStaging:
		return r.Staging
	case FieldADR:
		return r.ADR
	case FieldOccupancy:
		return r.Occupancy
	case FieldSuppliesMo:
		return r.SuppliesMo
	case FieldCohostPct:
		return r.CohostPct
	case FieldPlatformPct:
		return r.PlatformPct
	case FieldCleaningFee:
		return r.CleaningFee
	case FieldStaysPerMo:
		return r.StaysPerMo
	}
	return 0
}

func (r *STR) Set(field Field, v float64) {
	if r.Financing.set(field, v) || r.OperatingCosts.set(field, v) {
		return
	}
	switch field {
	case FieldStaging:
		r.Staging = v
	case FieldADR:
		r.ADR = v
	case FieldOccupancy:
		r.Occupancy = v
	case FieldSuppliesMo:
		r.SuppliesMo = v
	case FieldCohostPct:
		r.CohostPct = v
	case FieldPlatformPct:
		r.PlatformPct = v
	case FieldCleaningFee:
		r.CleaningFee = v
	case FieldStaysPerMo:
		r.StaysPerMo = v
	}
}

// RentalKind distinguishes long- and short-term rental treatment where a
// record supports both.
type RentalKind string

const (
	KindLTR RentalKind = "LTR"
	KindSTR RentalKind = "STR"
)

// DSCR is the debt-service-coverage underwriting record. One input set
// drives both the lender view (stress-tested) and the investor view
// (realistic expenses).
type DSCR struct {
	PropertyType RentalKind

	Purchase     float64
	DownPct      float64
	DownAmt      float64
	ClosingCosts float64
	Rate         float64
	TermYears    float64

	Renovation     float64
	RenoFinancedHM bool
	HMRate         float64
	HMTermYears    float64

	LTRRent float64
	STRAdr  float64
	STROcc  float64

	TaxYear     float64
	TaxRate     float64
	InsuranceMo float64
	HOA         float64

	StressVacancyPct float64
	StressRatePct    float64
	MinDSCR          float64

	InvPMPct       float64
	InvMaintPct    float64
	InvCapexPct    float64
	InvUtilities   float64
	InvPlatformPct float64
	InvSuppliesMo  float64
	InvCleaningFee float64
	InvStaysPerMo  float64
}

func (r *DSCR) Get(field Field) float64 {
	switch field {
	case FieldPurchase:
		return r.Purchase
	case FieldDownPct:
		return r.DownPct
	case FieldDownAmt:
		return r.DownAmt
	case FieldClosingCosts:
		return r.ClosingCosts
	case FieldRate:
		return r.Rate
	case FieldTerm:
		return r.TermYears
	case FieldRenovation:
		return r.Renovation
	case FieldHMRate:
		return r.HMRate
	case FieldHMTerm:
		return r.HMTermYears
	case FieldLTRRent:
		return r.LTRRent
	case FieldSTRAdr:
		return r.STRAdr
	case FieldSTROcc:
		return r.STROcc
	case FieldTaxYear:
		return r.TaxYear
	case FieldTaxRate:
		return r.TaxRate
	case FieldInsuranceMo:
		return r.InsuranceMo
	case FieldHOA:
		return r.HOA
	case FieldStressVacancy:
		return r.StressVacancyPct
	case FieldStressRate:
		return r.StressRatePct
	case FieldMinDSCR:
		return r.MinDSCR
	case FieldInvPMPct:
		return r.InvPMPct
	case FieldInvMaintPct:
		return r.InvMaintPct
	case FieldInvCapexPct:
		return r.InvCapexPct
	case FieldInvUtilities:
		return r.InvUtilities
	case FieldInvPlatformPct:
		return r.InvPlatformPct
	case FieldInvSuppliesMo:
		return r.InvSuppliesMo
	case FieldInvCleaningFee:
		return r.InvCleaningFee
	case FieldInvStaysPerMo:
		return r.InvStaysPerMo
	}
	return 0
}

func (r *DSCR) Set(field Field, v float64) {
	switch field {
	case FieldPurchase:
		r.Purchase = v
	case FieldDownPct:
		r.DownPct = v
	case FieldDownAmt:
		r.DownAmt = v
	case FieldClosingCosts:
		r.ClosingCosts = v
	case FieldRate:
		r.Rate = v
	case FieldTerm:
		r.TermYears = v
	case FieldRenovation:
		r.Renovation = v
	case FieldHMRate:
		r.HMRate = v
	case FieldHMTerm:
		r.HMTermYears = v
	case FieldLTRRent:
		r.LTRRent = v
	case FieldSTRAdr:
		r.STRAdr = v
	case FieldSTROcc:
		r.STROcc = v
	case FieldTaxYear:
		r.TaxYear = v
	case FieldTaxRate:
		r.TaxRate = v
	case FieldInsuranceMo:
		r.InsuranceMo = v
	case FieldHOA:
		r.HOA = v
	case FieldStressVacancy:
		r.StressVacancyPct = v
	case FieldStressRate:
		r.StressRatePct = v
	case FieldMinDSCR:
		r.MinDSCR = v
	case FieldInvPMPct:
		r.InvPMPct = v
	case FieldInvMaintPct:
		r.InvMaintPct = v
	case FieldInvCapexPct:
		r.InvCapexPct = v
	case FieldInvUtilities:
		r.InvUtilities = v
	case FieldInvPlatformPct:
		r.InvPlatformPct = v
	case FieldInvSuppliesMo:
		r.InvSuppliesMo = v
	case FieldInvCleaningFee:
		r.InvCleaningFee = v
	case FieldInvStaysPerMo:
		r.InvStaysPerMo = v
	}
}

// PropertyType is the structural type of a new-construction project; it
// determines the unit count.
type PropertyType string

const (
	PropertySFH      PropertyType = "SFH"
	PropertyTownhome PropertyType = "Townhome"
	PropertyCondo    PropertyType = "Condo"
	PropertyDuplex   PropertyType = "Duplex"
	PropertyTriplex  PropertyType = "Triplex"
	PropertyQuadplex PropertyType = "Quadplex"
)

// UnitCount returns the number of rentable units for the property type.
func (p PropertyType) UnitCount() int {
	switch p {
	case PropertyDuplex:
		return 2
	case PropertyTriplex:
		return 3
	case PropertyQuadplex:
		return 4
	}
	return 1
}

// LandAcquisition describes how the land for a new build is acquired.
type LandAcquisition string

const (
	LandCash    LandAcquisition = "cash"
	LandFinance LandAcquisition = "finance"
	LandOwned   LandAcquisition = "owned"
)

// Build is the new-construction input record. Phase one is the construction
// loan against project costs; phase two is the refinance against ARV.
type Build struct {
	PropertyType    PropertyType
	LandAcquisition LandAcquisition

	LandCost  float64
	HardCosts float64
	SoftCosts float64
	Buffer    float64

	ConstructionLTC    float64
	ConstructionRate   float64
	ConstructionTermMo float64

	ARV           float64
	RefiLTV       float64
	RefiRate      float64
	RefiTermYears float64

	TotalTaxYear   float64
	TotalTaxRate   float64
	TotalInsYear   float64
	TotalHOA       float64
	TotalUtilities float64
	MaintPct       float64
	CapexPct       float64

	ApplyToAll bool
}

func (r *Build) Get(field Field) float64 {
	switch field {
	case FieldLandCost:
		return r.LandCost
	case FieldHardCosts:
		return r.HardCosts
	case FieldSoftCosts:
		return r.SoftCosts
	case FieldBuffer:
		return r.Buffer
	case FieldConstructionLTC:
		return r.ConstructionLTC
	case FieldConstructionRate:
		return r.ConstructionRate
	case FieldConstructionTermMo:
		return r.ConstructionTermMo
	case FieldARV:
		return r.ARV
	case FieldRefiLTV:
		return r.RefiLTV
	case FieldRefiRate:
		return r.RefiRate
	case FieldRefiTerm:
		return r.RefiTermYears
	case FieldTotalTaxYear:
		return r.TotalTaxYear
	case FieldTotalTaxRate:
		return r.TotalTaxRate
	case FieldTotalInsYear:
		return r.TotalInsYear
	case FieldTotalHOA:
		return r.TotalHOA
	case FieldTotalUtilities:
		return r.TotalUtilities
	case FieldMaintPct:
		return r.MaintPct
	case FieldCapexPct:
		return r.CapexPct
	}
	return 0
}

func (r *Build) Set(field Field, v float64) {
	switch field {
	case FieldLandCost:
		r.LandCost = v
	case FieldHardCosts:
		r.HardCosts = v
	case FieldSoftCosts:
		r.SoftCosts = v
	case FieldBuffer:
		r.Buffer = v
	case FieldConstructionLTC:
		r.ConstructionLTC = v
	case FieldConstructionRate:
		r.ConstructionRate = v
	case FieldConstructionTermMo:
		r.ConstructionTermMo = v
	case FieldARV:
		r.ARV = v
	case FieldRefiLTV:
		r.RefiLTV = v
	case FieldRefiRate:
		r.RefiRate = v
	case FieldRefiTerm:
		r.RefiTermYears = v
	case FieldTotalTaxYear:
		r.TotalTaxYear = v
	case FieldTotalTaxRate:
		r.TotalTaxRate = v
	case FieldTotalInsYear:
		r.TotalInsYear = v
	case FieldTotalHOA:
		r.TotalHOA = v
	case FieldTotalUtilities:
		r.TotalUtilities = v
	case FieldMaintPct:
		r.MaintPct = v
	case FieldCapexPct:
		r.CapexPct = v
	}
}
