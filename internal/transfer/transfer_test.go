package transfer

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/dealscope/underwriter/internal/deal"
)

func TestExtractDerivedRent(t *testing.T) {
	s := deal.NewSession(zap.NewNop())

	tests := []struct {
		name         string
		source       deal.Strategy
		expectedRent float64
	}{
		{
			name:         "Flat rent from long-term rental",
			source:       deal.StrategyLTR,
			expectedRent: 2800,
		},
		{
			name:         "Unit sum from by-the-room",
			source:       deal.StrategyRoom,
			expectedRent: 3650, // 850 + 800 + 800 + 1200
		},
		{
			name:         "Nightly revenue from short-term rental",
			source:       deal.StrategySTR,
			expectedRent: 5707.5, // 250 * 30.44 * 0.75
		},
		{
			name:         "Unit sum from multi-unit",
			source:       deal.StrategyMulti,
			expectedRent: 3000,
		},
		{
			name:         "Long-term rent input from DSCR",
			source:       deal.StrategyDSCR,
			expectedRent: 4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Extract(s, tt.source)
			if err != nil {
				t.Fatalf("Extract(%s) error = %v", tt.source, err)
			}
			if math.Abs(snap.Rent-tt.expectedRent) > 0.01 {
				t.Errorf("rent = %v, expected %v", snap.Rent, tt.expectedRent)
			}
		})
	}
}

func TestExtractSTRCarriesNightlyInputs(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	snap, err := Extract(s, deal.StrategySTR)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if snap.ADR != 250 || snap.Occupancy != 75 {
		t.Errorf("ADR/occupancy = %v/%v, expected 250/75", snap.ADR, snap.Occupancy)
	}
}

func TestExtractDSCRRemapsInvestorFields(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	snap, err := Extract(s, deal.StrategyDSCR)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if snap.Utilities != 300 {
		t.Errorf("utilities = %v, expected investor-view 300", snap.Utilities)
	}
	if snap.PMPct != 15 {
		t.Errorf("pm percent = %v, expected investor-view 15", snap.PMPct)
	}
	if snap.ADR != 300 || snap.Occupancy != 70 {
		t.Errorf("ADR/occupancy = %v/%v, expected 300/70", snap.ADR, snap.Occupancy)
	}
}

func TestPushSTRToLTR(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	if err := Push(zap.NewNop(), s, deal.StrategySTR, deal.StrategyLTR); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if s.LTR.Purchase != 400000 {
		t.Errorf("purchase = %v, expected 400000 from the STR record", s.LTR.Purchase)
	}
	if math.Abs(s.LTR.Rent-5707.5) > 0.01 {
		t.Errorf("rent = %v, expected derived 5707.50", s.LTR.Rent)
	}
	// The STR record has no pm field, so the zero never lands.
	if s.LTR.PMPct != 8 {
		t.Errorf("pm percent = %v, expected preserved 8", s.LTR.PMPct)
	}
}

func TestPushLTRToSTRRemapsNothingOntoADR(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	if err := Push(zap.NewNop(), s, deal.StrategyLTR, deal.StrategySTR); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if s.STR.Purchase != 350000 {
		t.Errorf("purchase = %v, expected 350000", s.STR.Purchase)
	}
	// The long-term source has no nightly inputs; the destination keeps its
	// own.
	if s.STR.ADR != 250 || s.STR.Occupancy != 75 {
		t.Errorf("ADR/occupancy = %v/%v, expected preserved 250/75", s.STR.ADR, s.STR.Occupancy)
	}
}

func TestPushLTRToDSCRInverseMapping(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	if err := Push(zap.NewNop(), s, deal.StrategyLTR, deal.StrategyDSCR); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if s.DSCR.Purchase != 350000 {
		t.Errorf("purchase = %v, expected 350000", s.DSCR.Purchase)
	}
	if s.DSCR.LTRRent != 2800 {
		t.Errorf("long-term rent = %v, expected remapped 2800", s.DSCR.LTRRent)
	}
	if s.DSCR.InvPMPct != 8 {
		t.Errorf("investor pm percent = %v, expected remapped 8", s.DSCR.InvPMPct)
	}
	// The long-term source carries no utilities; the investor default stays.
	if s.DSCR.InvUtilities != 300 {
		t.Errorf("investor utilities = %v, expected preserved 300", s.DSCR.InvUtilities)
	}
	// The shared tax pair lands on the canonical fields.
	if s.DSCR.TaxYear != 4200 || s.DSCR.TaxRate != 1.2 {
		t.Errorf("taxes = %v/%v, expected 4200/1.2", s.DSCR.TaxYear, s.DSCR.TaxRate)
	}
}

func TestPushZeroNeverOverwrites(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	s.LTR.Renovation = 0
	s.Multi.Renovation = 30000

	if err := Push(zap.NewNop(), s, deal.StrategyLTR, deal.StrategyMulti); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if s.Multi.Renovation != 30000 {
		t.Errorf("renovation = %v, expected preserved 30000 against a zero push", s.Multi.Renovation)
	}
	if s.Multi.Purchase != 350000 {
		t.Errorf("purchase = %v, expected 350000", s.Multi.Purchase)
	}
}

func TestPushUnsupportedRoutes(t *testing.T) {
	s := deal.NewSession(zap.NewNop())

	tests := []struct {
		name   string
		source deal.Strategy
		dest   deal.Strategy
	}{
		{
			name:   "New-build source",
			source: deal.StrategyBuild,
			dest:   deal.StrategyLTR,
		},
		{
			name:   "New-build destination",
			source: deal.StrategyLTR,
			dest:   deal.StrategyBuild,
		},
		{
			name:   "Same-strategy push",
			source: deal.StrategySTR,
			dest:   deal.StrategySTR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Push(zap.NewNop(), s, tt.source, tt.dest)
			if !errors.Is(err, ErrUnsupportedRoute) {
				t.Errorf("Push(%s, %s) error = %v, expected ErrUnsupportedRoute",
					tt.source, tt.dest, err)
			}
		})
	}
}

func TestPushDSCRToSTR(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	if err := Push(zap.NewNop(), s, deal.StrategyDSCR, deal.StrategySTR); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if s.STR.ADR != 300 || s.STR.Occupancy != 70 {
		t.Errorf("ADR/occupancy = %v/%v, expected 300/70 from the DSCR inputs",
			s.STR.ADR, s.STR.Occupancy)
	}
	if s.STR.Purchase != 500000 {
		t.Errorf("purchase = %v, expected 500000", s.STR.Purchase)
	}
	if s.STR.Utilities != 300 {
		t.Errorf("utilities = %v, expected investor-view 300", s.STR.Utilities)
	}
}
