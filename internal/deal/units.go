package deal

import "github.com/google/uuid"

// RoomUnitType is the kind of rentable space in a by-the-room deal.
type RoomUnitType string

const (
	RoomUnitRoom RoomUnitType = "Room"
	RoomUnitADU  RoomUnitType = "ADU"
	RoomUnitUnit RoomUnitType = "Unit"
)

// RoomUnit is one rentable space in a by-the-room deal. At most one unit is
// owner-occupied at a time.
type RoomUnit struct {
	ID            string
	Type          RoomUnitType
	Rent          float64
	OwnerOccupied bool
}

// NewRoomUnit creates a room unit with a fresh session-stable id.
func NewRoomUnit(t RoomUnitType, rent float64) RoomUnit {
	return RoomUnit{ID: uuid.NewString(), Type: t, Rent: rent}
}

// MultiUnit is one unit in a multi-family deal.
type MultiUnit struct {
	ID   string
	Rent float64
}

// NewMultiUnit creates a multi-family unit with a fresh session-stable id.
func NewMultiUnit(rent float64) MultiUnit {
	return MultiUnit{ID: uuid.NewString(), Rent: rent}
}

// BuildUnit is one rentable unit of a new-construction project. Each unit is
// independently underwritten as a long- or short-term rental.
type BuildUnit struct {
	ID       string
	Strategy RentalKind

	LTRRent  float64
	LTRPMPct float64

	STRAdr             float64
	STROcc             float64
	STRCohostPct       float64
	STRPlatformPct     float64
	STRSuppliesMo      float64
	STRCleaningFee     float64
	STRStaysPerMo      float64
	STRCleaningByGuest bool
}

// Clone returns a copy of the unit under a fresh id.
func (u BuildUnit) Clone() BuildUnit {
	c := u
	c.ID = uuid.NewString()
	return c
}

func (u *BuildUnit) Get(field Field) float64 {
	switch field {
	case FieldUnitLTRRent:
		return u.LTRRent
	case FieldUnitLTRPMPct:
		return u.LTRPMPct
	case FieldUnitSTRAdr:
		return u.STRAdr
	case FieldUnitSTROcc:
		return u.STROcc
	case FieldUnitSTRCohostPct:
		return u.STRCohostPct
	case FieldUnitSTRPlatformPct:
		return u.STRPlatformPct
	case FieldUnitSTRSuppliesMo:
		return u.STRSuppliesMo
	case FieldUnitSTRCleaningFee:
		return u.STRCleaningFee
	case FieldUnitSTRStaysPerMo:
		return u.STRStaysPerMo
	}
	return 0
}

func (u *BuildUnit) Set(field Field, v float64) {
	switch field {
	case FieldUnitLTRRent:
		u.LTRRent = v
	case FieldUnitLTRPMPct:
		u.LTRPMPct = v
	case FieldUnitSTRAdr:
		u.STRAdr = v
	case FieldUnitSTROcc:
		u.STROcc = v
	case FieldUnitSTRCohostPct:
		u.STRCohostPct = v
	case FieldUnitSTRPlatformPct:
		u.STRPlatformPct = v
	case FieldUnitSTRSuppliesMo:
		u.STRSuppliesMo = v
	case FieldUnitSTRCleaningFee:
		u.STRCleaningFee = v
	case FieldUnitSTRStaysPerMo:
		u.STRStaysPerMo = v
	}
}
