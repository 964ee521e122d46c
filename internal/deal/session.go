package deal

import (
	"go.uber.org/zap"

	"github.com/dealscope/underwriter/pkg/constants"
	"github.com/dealscope/underwriter/pkg/mathutil"
	"github.com/dealscope/underwriter/pkg/numeric"
)

// Session owns the state of all six calculators for one underwriting
// session. Every operation is a synchronous, in-place state transition; no
// state crosses strategy boundaries except through the transfer package.
type Session struct {
	logger *zap.Logger

	LTR   LTR
	Room  Room
	STR   STR
	Multi Multi
	Build Build
	DSCR  DSCR

	RoomUnits  []RoomUnit
	MultiUnits []MultiUnit
	BuildUnits []BuildUnit
}

// NewSession creates a session populated with the strategy defaults.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger:     logger,
		LTR:        DefaultLTR(),
		Room:       DefaultRoom(),
		STR:        DefaultSTR(),
		Multi:      DefaultMulti(),
		Build:      DefaultBuild(),
		DSCR:       DefaultDSCR(),
		RoomUnits:  DefaultRoomUnits(),
		MultiUnits: DefaultMultiUnits(),
		BuildUnits: DefaultBuildUnits(),
	}
}

// RecordFor returns a strategy's record and schema, nil for an unknown
// strategy.
func (s *Session) RecordFor(strategy Strategy) (Record, *Schema) {
	switch strategy {
	case StrategyLTR:
		return &s.LTR, LTRSchema
	case StrategyRoom:
		return &s.Room, RoomSchema
	case StrategySTR:
		return &s.STR, STRSchema
	case StrategyMulti:
		return &s.Multi, MultiSchema
	case StrategyBuild:
		return &s.Build, BuildSchema
	case StrategyDSCR:
		return &s.DSCR, DSCRSchema
	}
	return nil, nil
}

// ApplyEdit routes a raw field edit through the linking reducer. Edits to
// unknown strategies or fields are dropped.
func (s *Session) ApplyEdit(strategy Strategy, field Field, raw string) {
	rec, schema := s.RecordFor(strategy)
	if rec == nil {
		return
	}
	ApplyEdit(rec, schema, field, raw)
	s.afterEdit(strategy, field)
	s.logger.Debug("applied field edit",
		zap.String("op", "deal.ApplyEdit"),
		zap.String("strategy", string(strategy)),
		zap.String("field", string(field)),
	)
}

// ApplyValue is ApplyEdit for an already-numeric value.
func (s *Session) ApplyValue(strategy Strategy, field Field, v float64) {
	rec, schema := s.RecordFor(strategy)
	if rec == nil {
		return
	}
	ApplyValue(rec, schema, field, v)
	s.afterEdit(strategy, field)
}

// afterEdit applies derived defaults triggered by an edit. The only case is
// the DSCR stress rate, which tracks the note rate until the user overrides
// it again.
func (s *Session) afterEdit(strategy Strategy, field Field) {
	if strategy == StrategyDSCR && field == FieldRate {
		s.DSCR.StressRatePct = mathutil.Round(s.DSCR.Rate + constants.StressRateSpreadPct)
	}
}

// SetFlag sets a boolean field on a strategy record.
func (s *Session) SetFlag(strategy Strategy, field Field, on bool) {
	switch {
	case strategy == StrategyLTR && field == FieldRenoFinanced:
		s.LTR.RenoFinanced = on
	case strategy == StrategyRoom && field == FieldRenoFinanced:
		s.Room.RenoFinanced = on
	case strategy == StrategySTR && field == FieldRenoFinanced:
		s.STR.RenoFinanced = on
	case strategy == StrategyMulti && field == FieldRenoFinanced:
		s.Multi.RenoFinanced = on
	case strategy == StrategyDSCR && field == FieldRenoFinancedHM:
		s.DSCR.RenoFinancedHM = on
	case strategy == StrategyBuild && field == FieldApplyToAll:
		s.SetApplyToAll(on)
	}
}

// SetDSCRPropertyType switches the underwritten property type and resets the
// stress assumptions to that type's lending defaults. The fields remain
// editable afterwards.
func (s *Session) SetDSCRPropertyType(kind RentalKind) {
	s.DSCR.PropertyType = kind
	if kind == KindSTR {
		s.DSCR.StressVacancyPct = constants.STRStressVacancyPct
		s.DSCR.MinDSCR = constants.STRMinDSCR
	} else {
		s.DSCR.StressVacancyPct = constants.LTRStressVacancyPct
		s.DSCR.MinDSCR = constants.LTRMinDSCR
	}
	s.DSCR.StressRatePct = mathutil.Round(s.DSCR.Rate + constants.StressRateSpreadPct)
	s.logger.Debug("reset stress assumptions",
		zap.String("op", "deal.SetDSCRPropertyType"),
		zap.String("propertyType", string(kind)),
	)
}

// AddRoomUnit appends a rental unit and returns its id.
func (s *Session) AddRoomUnit(t RoomUnitType, rent float64) string {
	unit := NewRoomUnit(t, rent)
	s.RoomUnits = append(s.RoomUnits, unit)
	return unit.ID
}

// RemoveRoomUnit removes a rental unit by id; unknown ids are ignored.
func (s *Session) RemoveRoomUnit(id string) {
	for i, u := range s.RoomUnits {
		if u.ID == id {
			s.RoomUnits = append(s.RoomUnits[:i], s.RoomUnits[i+1:]...)
			return
		}
	}
}

// UpdateRoomUnitRent sets a rental unit's rent from raw input.
func (s *Session) UpdateRoomUnitRent(id, raw string) {
	for i := range s.RoomUnits {
		if s.RoomUnits[i].ID == id {
			s.RoomUnits[i].Rent = numeric.Parse(raw)
			return
		}
	}
}

// SetOwnerOccupiedUnit marks one rental unit as owner-occupied and clears
// the flag on every other unit.
func (s *Session) SetOwnerOccupiedUnit(id string) {
	for i := range s.RoomUnits {
		s.RoomUnits[i].OwnerOccupied = s.RoomUnits[i].ID == id
	}
}

// AddMultiUnit appends a unit, cloning the last unit's rent, and returns its
// id.
func (s *Session) AddMultiUnit() string {
	rent := float64(DefaultMultiUnitRent)
	if n := len(s.MultiUnits); n > 0 {
		rent = s.MultiUnits[n-1].Rent
	}
	unit := NewMultiUnit(rent)
	s.MultiUnits = append(s.MultiUnits, unit)
	return unit.ID
}

// RemoveMultiUnit removes a unit by id. A multi-unit deal keeps at least one
// unit; removing the last one is a no-op.
func (s *Session) RemoveMultiUnit(id string) {
	if len(s.MultiUnits) <= 1 {
		return
	}
	for i, u := range s.MultiUnits {
		if u.ID == id {
			s.MultiUnits = append(s.MultiUnits[:i], s.MultiUnits[i+1:]...)
			return
		}
	}
}

// UpdateMultiUnitRent sets a unit's rent from raw input.
func (s *Session) UpdateMultiUnitRent(id, raw string) {
	for i := range s.MultiUnits {
		if s.MultiUnits[i].ID == id {
			s.MultiUnits[i].Rent = numeric.Parse(raw)
			return
		}
	}
}

// SetBuildPropertyType switches the project's property type and resizes the
// unit collection to match: growth clones the first unit under fresh ids,
// shrinkage truncates from the tail. Existing ids and order are preserved.
func (s *Session) SetBuildPropertyType(t PropertyType) {
	s.Build.PropertyType = t
	want := t.UnitCount()
	switch have := len(s.BuildUnits); {
	case want > have:
		template := DefaultBuildUnit()
		if have > 0 {
			template = s.BuildUnits[0]
		}
		for i := have; i < want; i++ {
			s.BuildUnits = append(s.BuildUnits, template.Clone())
		}
	case want < have:
		s.BuildUnits = s.BuildUnits[:want]
	}
	s.logger.Debug("resized build unit collection",
		zap.String("op", "deal.SetBuildPropertyType"),
		zap.String("propertyType", string(t)),
		zap.Int("units", len(s.BuildUnits)),
	)
}

// UpdateBuildUnit sets one numeric field on a build unit from raw input.
// With apply-to-all enabled, an edit to the first unit propagates the edited
// field to every unit.
func (s *Session) UpdateBuildUnit(id string, field Field, raw string) {
	idx := s.buildUnitIndex(id)
	if idx < 0 {
		return
	}
	v := numeric.Parse(raw)
	s.BuildUnits[idx].Set(field, v)
	if s.Build.ApplyToAll && idx == 0 {
		for i := 1; i < len(s.BuildUnits); i++ {
			s.BuildUnits[i].Set(field, v)
		}
	}
}

// SetBuildUnitFlag sets the guest-covered-cleaning flag on a build unit,
// with the same first-unit propagation as UpdateBuildUnit.
func (s *Session) SetBuildUnitFlag(id string, field Field, on bool) {
	if field != FieldUnitCleaningByGuest {
		return
	}
	idx := s.buildUnitIndex(id)
	if idx < 0 {
		return
	}
	s.BuildUnits[idx].STRCleaningByGuest = on
	if s.Build.ApplyToAll && idx == 0 {
		for i := 1; i < len(s.BuildUnits); i++ {
			s.BuildUnits[i].STRCleaningByGuest = on
		}
	}
}

// SetBuildUnitStrategy switches a build unit between LTR and STR treatment,
// with the same first-unit propagation as UpdateBuildUnit.
func (s *Session) SetBuildUnitStrategy(id string, kind RentalKind) {
	idx := s.buildUnitIndex(id)
	if idx < 0 {
		return
	}
	s.BuildUnits[idx].Strategy = kind
	if s.Build.ApplyToAll && idx == 0 {
		for i := 1; i < len(s.BuildUnits); i++ {
			s.BuildUnits[i].Strategy = kind
		}
	}
}

// SetApplyToAll toggles first-unit propagation. Enabling it immediately
// copies the first unit's settings over every unit, preserving ids.
func (s *Session) SetApplyToAll(on bool) {
	s.Build.ApplyToAll = on
	if !on || len(s.BuildUnits) == 0 {
		return
	}
	first := s.BuildUnits[0]
	for i := 1; i < len(s.BuildUnits); i++ {
		id := s.BuildUnits[i].ID
		s.BuildUnits[i] = first
		s.BuildUnits[i].ID = id
	}
}

func (s *Session) buildUnitIndex(id string) int {
	for i := range s.BuildUnits {
		if s.BuildUnits[i].ID == id {
			return i
		}
	}
	return -1
}
