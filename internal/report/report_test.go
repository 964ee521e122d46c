package report

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/dealscope/underwriter/internal/deal"
)

func TestComputeCoversAllStrategies(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	analysis := Compute(zap.NewNop(), s)

	if analysis.LTR.Loan != 280000 {
		t.Errorf("LTR loan = %v, expected 280000", analysis.LTR.Loan)
	}
	if analysis.Room.MovedOut.Revenue != 3650 {
		t.Errorf("room moved-out revenue = %v, expected 3650", analysis.Room.MovedOut.Revenue)
	}
	if math.Abs(analysis.STR.Revenue-5707.5) > 0.01 {
		t.Errorf("STR revenue = %v, expected 5707.5", analysis.STR.Revenue)
	}
	if analysis.Multi.TotalRent != 3000 {
		t.Errorf("multi total rent = %v, expected 3000", analysis.Multi.TotalRent)
	}
	if analysis.Build.ConstructionLoan != 400000 {
		t.Errorf("construction loan = %v, expected 400000", analysis.Build.ConstructionLoan)
	}
	if analysis.DSCR.Lender.Loan != 375000 {
		t.Errorf("DSCR loan = %v, expected 375000", analysis.DSCR.Lender.Loan)
	}
}

func TestSectionsLayout(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	analysis := Compute(zap.NewNop(), s)
	sections := analysis.Sections()

	if len(sections) != 6 {
		t.Fatalf("sections = %d, expected 6", len(sections))
	}

	expectedNames := []string{
		"Long-Term Rental", "By-the-Room", "Short-Term Rental",
		"Multi-Unit", "New Build", "DSCR Loan",
	}
	for i, name := range expectedNames {
		if sections[i].Name != name {
			t.Errorf("section %d = %q, expected %q", i, sections[i].Name, name)
		}
		if len(sections[i].Metrics) == 0 {
			t.Errorf("section %q has no metrics", sections[i].Name)
		}
	}
}

func TestSectionsMetricKinds(t *testing.T) {
	s := deal.NewSession(zap.NewNop())
	sections := Compute(zap.NewNop(), s).Sections()

	for _, section := range sections {
		for _, m := range section.Metrics {
			switch m.Kind {
			case Currency, Percent, Ratio:
			default:
				t.Errorf("%s / %s has unknown kind %v", section.Name, m.Label, m.Kind)
			}
		}
	}
}

func TestPassLabel(t *testing.T) {
	s := deal.NewSession(zap.NewNop())

	// Defaults underwrite just below coverage at the stressed rate.
	analysis := Compute(zap.NewNop(), s)
	if analysis.PassLabel() != "FAIL" {
		t.Errorf("pass label = %q, expected FAIL on defaults", analysis.PassLabel())
	}

	// Raising the rent comfortably clears the minimum.
	s.ApplyValue(deal.StrategyDSCR, deal.FieldLTRRent, 6000)
	analysis = Compute(zap.NewNop(), s)
	if analysis.PassLabel() != "PASS" {
		t.Errorf("pass label = %q, expected PASS at higher rent", analysis.PassLabel())
	}
}

func TestComputeNilLogger(t *testing.T) {
	s := deal.NewSession(nil)
	// A nil logger falls back to a no-op logger rather than panicking.
	analysis := Compute(nil, s)
	if analysis.LTR.Loan != 280000 {
		t.Errorf("LTR loan = %v, expected 280000", analysis.LTR.Loan)
	}
}
