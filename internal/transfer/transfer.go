// Package transfer moves deal inputs between strategies. A push extracts a
// canonical snapshot from the source record, then merges it onto the
// destination. The merge treats a zero as "no value to push": a zero in the
// snapshot never overwrites whatever the destination already holds.
package transfer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/internal/metrics"
)

// ErrUnsupportedRoute is returned for a push the mapper does not support:
// any route touching the new-build strategy, or a same-strategy push.
var ErrUnsupportedRoute = errors.New("transfer: unsupported route")

// Snapshot is the canonical field set extracted from a source strategy. The
// rent is a single derived figure: flat rent for a long-term rental, summed
// unit rents for by-the-room and multi-unit, nightly-revenue-per-month for a
// short-term rental. ADR and occupancy ride along only when the source has
// them.
type Snapshot struct {
	Purchase     float64
	DownPct      float64
	DownAmt      float64
	ClosingCosts float64
	Renovation   float64
	Rate         float64
	TermYears    float64

	TaxYear     float64
	TaxRate     float64
	InsuranceMo float64
	HOA         float64
	Utilities   float64
	PMPct       float64
	MaintPct    float64
	CapexPct    float64

	Rent      float64
	ADR       float64
	Occupancy float64
}

// Extract builds the canonical snapshot from one strategy's current state.
func Extract(s *deal.Session, source deal.Strategy) (Snapshot, error) {
	switch source {
	case deal.StrategyLTR:
		return fromFinancingCosts(s.LTR.Financing, s.LTR.OperatingCosts, s.LTR.Rent), nil
	case deal.StrategyRoom:
		rent := 0.0
		for _, u := range s.RoomUnits {
			rent += u.Rent
		}
		return fromFinancingCosts(s.Room.Financing, s.Room.OperatingCosts, rent), nil
	case deal.StrategySTR:
		snap := fromFinancingCosts(s.STR.Financing, s.STR.OperatingCosts, metrics.NightlyRevenue(s.STR.ADR, s.STR.Occupancy))
		snap.ADR = s.STR.ADR
		snap.Occupancy = s.STR.Occupancy
		return snap, nil
	case deal.StrategyMulti:
		rent := 0.0
		for _, u := range s.MultiUnits {
			rent += u.Rent
		}
		return fromFinancingCosts(s.Multi.Financing, s.Multi.OperatingCosts, rent), nil
	case deal.StrategyDSCR:
		d := &s.DSCR
		return Snapshot{
			Purchase:     d.Purchase,
			DownPct:      d.DownPct,
			DownAmt:      d.DownAmt,
			ClosingCosts: d.ClosingCosts,
			Renovation:   d.Renovation,
			Rate:         d.Rate,
			TermYears:    d.TermYears,
			TaxYear:      d.TaxYear,
			TaxRate:      d.TaxRate,
			InsuranceMo:  d.InsuranceMo,
			HOA:          d.HOA,
			Utilities:    d.InvUtilities,
			PMPct:        d.InvPMPct,
			MaintPct:     d.InvMaintPct,
			CapexPct:     d.InvCapexPct,
			Rent:         d.LTRRent,
			ADR:          d.STRAdr,
			Occupancy:    d.STROcc,
		}, nil
	}
	return Snapshot{}, ErrUnsupportedRoute
}

func fromFinancingCosts(f deal.Financing, o deal.OperatingCosts, rent float64) Snapshot {
	return Snapshot{
		Purchase:     f.Purchase,
		DownPct:      f.DownPct,
		DownAmt:      f.DownAmt,
		ClosingCosts: f.ClosingCosts,
		Renovation:   f.Renovation,
		Rate:         f.Rate,
		TermYears:    f.TermYears,
		TaxYear:      o.TaxYear,
		TaxRate:      o.TaxRate,
		InsuranceMo:  o.InsuranceMo,
		HOA:          o.HOA,
		Utilities:    o.Utilities,
		PMPct:        o.PMPct,
		MaintPct:     o.MaintPct,
		CapexPct:     o.CapexPct,
		Rent:         rent,
	}
}

// fieldValue pairs a destination field name with the snapshot value bound
// for it.
type fieldValue struct {
	field deal.Field
	value float64
}

// canonicalFields lists the snapshot under canonical field names. Rent, ADR,
// and occupancy are included; destinations whose schemas lack them drop them
// during the merge.
func (snap Snapshot) canonicalFields() []fieldValue {
	return []fieldValue{
		{deal.FieldPurchase, snap.Purchase},
		{deal.FieldDownPct, snap.DownPct},
		{deal.FieldDownAmt, snap.DownAmt},
		{deal.FieldClosingCosts, snap.ClosingCosts},
		{deal.FieldRenovation, snap.Renovation},
		{deal.FieldRate, snap.Rate},
		{deal.FieldTerm, snap.TermYears},
		{deal.FieldTaxYear, snap.TaxYear},
		{deal.FieldTaxRate, snap.TaxRate},
		{deal.FieldInsuranceMo, snap.InsuranceMo},
		{deal.FieldHOA, snap.HOA},
		{deal.FieldUtilities, snap.Utilities},
		{deal.FieldPMPct, snap.PMPct},
		{deal.FieldMaintPct, snap.MaintPct},
		{deal.FieldCapexPct, snap.CapexPct},
		{deal.FieldRent, snap.Rent},
		{deal.FieldADR, snap.ADR},
		{deal.FieldOccupancy, snap.Occupancy},
	}
}

// dscrFields remaps the snapshot onto the debt-service record's field names:
// the derived rent becomes the long-term rent input, ADR and occupancy feed
// the short-term inputs, and the operating percentages land on the
// investor-view fields.
func (snap Snapshot) dscrFields() []fieldValue {
	return []fieldValue{
		{deal.FieldPurchase, snap.Purchase},
		{deal.FieldDownPct, snap.DownPct},
		{deal.FieldDownAmt, snap.DownAmt},
		{deal.FieldClosingCosts, snap.ClosingCosts},
		{deal.FieldRenovation, snap.Renovation},
		{deal.FieldRate, snap.Rate},
		{deal.FieldTerm, snap.TermYears},
		{deal.FieldTaxYear, snap.TaxYear},
		{deal.FieldTaxRate, snap.TaxRate},
		{deal.FieldInsuranceMo, snap.InsuranceMo},
		{deal.FieldHOA, snap.HOA},
		{deal.FieldLTRRent, snap.Rent},
		{deal.FieldSTRAdr, snap.ADR},
		{deal.FieldSTROcc, snap.Occupancy},
		{deal.FieldInvUtilities, snap.Utilities},
		{deal.FieldInvPMPct, snap.PMPct},
		{deal.FieldInvMaintPct, snap.MaintPct},
		{deal.FieldInvCapexPct, snap.CapexPct},
	}
}

// ApplyTo merges the snapshot onto a destination strategy. Fields absent
// from the destination's schema and zero-valued snapshot fields are skipped.
func ApplyTo(s *deal.Session, dest deal.Strategy, snap Snapshot) error {
	rec, schema := s.RecordFor(dest)
	if rec == nil || dest == deal.StrategyBuild {
		return ErrUnsupportedRoute
	}

	fields := snap.canonicalFields()
	if dest == deal.StrategyDSCR {
		fields = snap.dscrFields()
	}

	for _, fv := range fields {
		if fv.value == 0 || !schema.Has(fv.field) {
			continue
		}
		rec.Set(fv.field, fv.value)
	}
	return nil
}

// Push extracts from the source and merges onto the destination. A push to
// or from the new-build strategy, or onto the source itself, is unsupported.
func Push(logger *zap.Logger, s *deal.Session, source, dest deal.Strategy) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if source == dest {
		return ErrUnsupportedRoute
	}

	snap, err := Extract(s, source)
	if err != nil {
		return err
	}
	if err := ApplyTo(s, dest, snap); err != nil {
		return err
	}

	logger.Debug("pushed deal inputs",
		zap.String("op", "transfer.Push"),
		zap.String("source", string(source)),
		zap.String("dest", string(dest)),
	)
	return nil
}
