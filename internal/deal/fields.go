// Package deal defines the six strategy input records, the field schema with
// role tags that drives cross-field linking, the unit collections, and the
// session that owns all of it.
package deal

// Strategy identifies one of the six acquisition calculators.
type Strategy string

const (
	StrategyLTR   Strategy = "ltr"
	StrategyRoom  Strategy = "room"
	StrategySTR   Strategy = "str"
	StrategyMulti Strategy = "multi"
	StrategyBuild Strategy = "build"
	StrategyDSCR  Strategy = "dscr"
)

// Name returns the human-readable calculator name.
func (s Strategy) Name() string {
	switch s {
	case StrategyLTR:
		return "Long-Term Rental"
	case StrategyRoom:
		return "By-the-Room"
	case StrategySTR:
		return "Short-Term Rental"
	case StrategyMulti:
		return "Multi-Unit"
	case StrategyBuild:
		return "New Build"
	case StrategyDSCR:
		return "DSCR Loan"
	}
	return string(s)
}

// Field names a single numeric or boolean input on a strategy record.
type Field string

// Fields shared across strategies.
const (
	FieldPurchase     Field = "purchase"
	FieldDownPct      Field = "downPct"
	FieldDownAmt      Field = "downAmt"
	FieldClosingCosts Field = "closingCosts"
	FieldRenovation   Field = "renovation"
	FieldRate         Field = "rate"
	FieldTerm         Field = "term"
	FieldTaxYear      Field = "taxYear"
	FieldTaxRate      Field = "taxRate"
	FieldInsuranceMo  Field = "insuranceMo"
	FieldHOA          Field = "hoa"
	FieldUtilities    Field = "utilities"
	FieldPMPct        Field = "pmPct"
	FieldMaintPct     Field = "maintPct"
	FieldCapexPct     Field = "capexPct"
	FieldRent         Field = "rent"
	FieldRenoFinanced Field = "renoFinanced"
)

// Short-term rental fields.
const (
	FieldStaging     Field = "staging"
	FieldADR         Field = "adr"
	FieldOccupancy   Field = "occupancy"
	FieldSuppliesMo  Field = "suppliesMo"
	FieldCohostPct   Field = "cohostPct"
	FieldPlatformPct Field = "platformPct"
	FieldCleaningFee Field = "cleaningFee"
	FieldStaysPerMo  Field = "staysPerMo"
)

// DSCR fields.
const (
	FieldRenoFinancedHM Field = "renoFinancedHM"
	FieldHMRate         Field = "hmRate"
	FieldHMTerm         Field = "hmTerm"
	FieldLTRRent        Field = "ltrRent"
	FieldSTRAdr         Field = "strAdr"
	FieldSTROcc         Field = "strOcc"
	FieldStressVacancy  Field = "stressVacancy"
	FieldStressRate     Field = "stressRate"
	FieldMinDSCR        Field = "minDscr"
	FieldInvPMPct       Field = "invPmPct"
	FieldInvMaintPct    Field = "invMaintPct"
	FieldInvCapexPct    Field = "invCapexPct"
	FieldInvUtilities   Field = "invUtilities"
	FieldInvPlatformPct Field = "invPlatformPct"
	FieldInvSuppliesMo  Field = "invSuppliesMo"
	FieldInvCleaningFee Field = "invCleaningFee"
	FieldInvStaysPerMo  Field = "invStaysPerMo"
)

// New-build fields.
const (
	FieldARV                Field = "arv"
	FieldLandCost           Field = "landCost"
	FieldHardCosts          Field = "hardCosts"
	FieldSoftCosts          Field = "softCosts"
	FieldBuffer             Field = "buffer"
	FieldConstructionLTC    Field = "constructionLtc"
	FieldConstructionRate   Field = "constructionRate"
	FieldConstructionTermMo Field = "constructionTermMo"
	FieldRefiLTV            Field = "refiLtv"
	FieldRefiRate           Field = "refiRate"
	FieldRefiTerm           Field = "refiTerm"
	FieldTotalTaxYear       Field = "totalTaxYear"
	FieldTotalTaxRate       Field = "totalTaxRate"
	FieldTotalInsYear       Field = "totalInsYear"
	FieldTotalHOA           Field = "totalHoa"
	FieldTotalUtilities     Field = "totalUtilities"
	FieldApplyToAll         Field = "applyToAll"
)

// New-build per-unit fields.
const (
	FieldUnitLTRRent         Field = "ltrRent"
	FieldUnitLTRPMPct        Field = "ltrPmPct"
	FieldUnitSTRAdr          Field = "strAdr"
	FieldUnitSTROcc          Field = "strOcc"
	FieldUnitSTRCohostPct    Field = "strCohostPct"
	FieldUnitSTRPlatformPct  Field = "strPlatformPct"
	FieldUnitSTRSuppliesMo   Field = "strSuppliesMo"
	FieldUnitSTRCleaningFee  Field = "strCleaningFee"
	FieldUnitSTRStaysPerMo   Field = "strStaysPerMo"
	FieldUnitCleaningByGuest Field = "strCleaningByGuest"
)

// Role classifies a field's part in cross-field linking. Roles are fixed at
// schema definition so the reducer never inspects field names.
type Role int

const (
	// RolePlain fields are set directly with no propagation.
	RolePlain Role = iota
	// RoleBasePrice fields (purchase price, ARV) re-derive the linked
	// down-payment amount and tax amount when edited.
	RoleBasePrice
	// RoleDownPct re-derives the down-payment amount from the base price.
	RoleDownPct
	// RoleDownAmt re-derives the down-payment percentage from the base price.
	RoleDownAmt
	// RoleTaxAmt re-derives the tax rate from the base price.
	RoleTaxAmt
	// RoleTaxRate re-derives the annual tax amount from the base price.
	RoleTaxRate
)

// Schema describes one strategy's editable numeric fields, their linking
// roles, and its boolean flags.
type Schema struct {
	Strategy Strategy

	// Fields lists every numeric field in a stable order.
	Fields []Field
	// Roles tags each numeric field with its linking role.
	Roles map[Field]Role
	// Flags lists the boolean fields.
	Flags []Field

	// Linked field names; empty when the strategy lacks that link.
	Base     Field
	DownPct  Field
	DownAmt  Field
	TaxYear  Field
	TaxRate  Field
}

// Has reports whether the schema contains the numeric field.
func (s *Schema) Has(f Field) bool {
	_, ok := s.Roles[f]
	return ok
}

// HasFlag reports whether the schema contains the boolean field.
func (s *Schema) HasFlag(f Field) bool {
	for _, flag := range s.Flags {
		if flag == f {
			return true
		}
	}
	return false
}

func newSchema(strategy Strategy, fields []Field, flags []Field, base, downPct, downAmt, taxYear, taxRate Field) *Schema {
	roles := make(map[Field]Role, len(fields))
	for _, f := range fields {
		roles[f] = RolePlain
	}
	if base != "" {
		roles[base] = RoleBasePrice
	}
	if downPct != "" {
		roles[downPct] = RoleDownPct
		roles[downAmt] = RoleDownAmt
	}
	if taxRate != "" {
		roles[taxRate] = RoleTaxRate
		roles[taxYear] = RoleTaxAmt
	}
	return &Schema{
		Strategy: strategy,
		Fields:   fields,
		Roles:    roles,
		Flags:    flags,
		Base:     base,
		DownPct:  downPct,
		DownAmt:  downAmt,
		TaxYear:  taxYear,
		TaxRate:  taxRate,
	}
}

var baseFields = []Field{
	FieldPurchase, FieldDownPct, FieldDownAmt, FieldClosingCosts,
	FieldRenovation, FieldRate, FieldTerm, FieldTaxYear, FieldTaxRate,
	FieldInsuranceMo, FieldHOA, FieldUtilities, FieldPMPct, FieldMaintPct,
	FieldCapexPct,
}

// LTRSchema covers the long-term rental record.
var LTRSchema = newSchema(StrategyLTR,
	append(append([]Field{}, baseFields...), FieldRent),
	[]Field{FieldRenoFinanced},
	FieldPurchase, FieldDownPct, FieldDownAmt, FieldTaxYear, FieldTaxRate)

// RoomSchema covers the by-the-room record; revenue lives in the unit
// collection, not the record.
var RoomSchema = newSchema(StrategyRoom,
	append([]Field{}, baseFields...),
	[]Field{FieldRenoFinanced},
	FieldPurchase, FieldDownPct, FieldDownAmt, FieldTaxYear, FieldTaxRate)

// MultiSchema covers the multi-unit record.
var MultiSchema = newSchema(StrategyMulti,
	append([]Field{}, baseFields...),
	[]Field{FieldRenoFinanced},
	FieldPurchase, FieldDownPct, FieldDownAmt, FieldTaxYear, FieldTaxRate)

// STRSchema covers the short-term rental record. Property management is a
// cohost percentage, so the shared pmPct field is absent.
var STRSchema = newSchema(StrategySTR,
	[]Field{
		FieldPurchase, FieldDownPct, FieldDownAmt, FieldClosingCosts,
		FieldRenovation, FieldStaging, FieldRate, FieldTerm, FieldTaxYear,
		FieldTaxRate, FieldInsuranceMo, FieldHOA, FieldUtilities,
		FieldMaintPct, FieldCapexPct, FieldADR, FieldOccupancy,
		FieldSuppliesMo, FieldCohostPct, FieldPlatformPct, FieldCleaningFee,
		FieldStaysPerMo,
	},
	[]Field{FieldRenoFinanced},
	FieldPurchase, FieldDownPct, FieldDownAmt, FieldTaxYear, FieldTaxRate)

// DSCRSchema covers the DSCR underwriting record.
var DSCRSchema = newSchema(StrategyDSCR,
	[]Field{
		FieldPurchase, FieldDownPct, FieldDownAmt, FieldClosingCosts,
		FieldRate, FieldTerm, FieldRenovation, FieldHMRate, FieldHMTerm,
		FieldLTRRent, FieldSTRAdr, FieldSTROcc, FieldTaxYear, FieldTaxRate,
		FieldInsuranceMo, FieldHOA, FieldStressVacancy, FieldStressRate,
		FieldMinDSCR, FieldInvPMPct, FieldInvMaintPct, FieldInvCapexPct,
		FieldInvUtilities, FieldInvPlatformPct, FieldInvSuppliesMo,
		FieldInvCleaningFee, FieldInvStaysPerMo,
	},
	[]Field{FieldRenoFinancedHM},
	FieldPurchase, FieldDownPct, FieldDownAmt, FieldTaxYear, FieldTaxRate)

// BuildSchema covers the new-construction record. The base value is the ARV
// and the tax pair carries the total_ prefix semantics of the whole project;
// there is no down-payment pair.
var BuildSchema = newSchema(StrategyBuild,
	[]Field{
		FieldLandCost, FieldHardCosts, FieldSoftCosts, FieldBuffer,
		FieldConstructionLTC, FieldConstructionRate, FieldConstructionTermMo,
		FieldARV, FieldRefiLTV, FieldRefiRate, FieldRefiTerm,
		FieldTotalTaxYear, FieldTotalTaxRate, FieldTotalInsYear,
		FieldTotalHOA, FieldTotalUtilities, FieldMaintPct, FieldCapexPct,
	},
	[]Field{FieldApplyToAll},
	FieldARV, "", "", FieldTotalTaxYear, FieldTotalTaxRate)

// BuildUnitFields lists the numeric fields of a new-build unit in a stable
// order; unit fields are all plain.
var BuildUnitFields = []Field{
	FieldUnitLTRRent, FieldUnitLTRPMPct, FieldUnitSTRAdr, FieldUnitSTROcc,
	FieldUnitSTRCohostPct, FieldUnitSTRPlatformPct, FieldUnitSTRSuppliesMo,
	FieldUnitSTRCleaningFee, FieldUnitSTRStaysPerMo,
}

// SchemaFor returns the schema for a strategy, nil if unknown.
func SchemaFor(strategy Strategy) *Schema {
	switch strategy {
	case StrategyLTR:
		return LTRSchema
	case StrategyRoom:
		return RoomSchema
	case StrategySTR:
		return STRSchema
	case StrategyMulti:
		return MultiSchema
	case StrategyBuild:
		return BuildSchema
	case StrategyDSCR:
		return DSCRSchema
	}
	return nil
}
