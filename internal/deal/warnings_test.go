package deal

import (
	"strings"
	"testing"
)

func TestWarningsCleanOnDefaults(t *testing.T) {
	s := NewSession(nil)
	if warnings := s.Warnings(); len(warnings) != 0 {
		t.Errorf("default session produced warnings: %v", warnings)
	}
}

func TestWarningsFlagDegenerateInputs(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(s *Session)
		expectContain string
	}{
		{
			name: "Zero purchase price",
			mutate: func(s *Session) {
				s.ApplyValue(StrategyLTR, FieldPurchase, 0)
			},
			expectContain: "Long-Term Rental",
		},
		{
			name: "Occupancy above 100%",
			mutate: func(s *Session) {
				s.ApplyValue(StrategySTR, FieldOccupancy, 120)
			},
			expectContain: "occupancy",
		},
		{
			name: "Down payment above 100%",
			mutate: func(s *Session) {
				s.ApplyValue(StrategyMulti, FieldDownPct, 150)
			},
			expectContain: "Multi-Unit",
		},
		{
			name: "Stress rate below note rate",
			mutate: func(s *Session) {
				s.ApplyValue(StrategyDSCR, FieldStressRate, 5)
			},
			expectContain: "stress rate",
		},
		{
			name: "Zero loan term",
			mutate: func(s *Session) {
				s.ApplyValue(StrategyRoom, FieldTerm, 0)
			},
			expectContain: "By-the-Room",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(nil)
			tt.mutate(s)

			warnings := s.Warnings()
			if len(warnings) == 0 {
				t.Fatalf("expected warnings, got none")
			}
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.expectContain) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v missing %q", warnings, tt.expectContain)
			}
		})
	}
}
