package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/dealscope/underwriter/internal/deal"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deal.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigurationEmptyPath(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration(\"\") error = %v", err)
	}
	if conf.Output.Format != "" || len(conf.Deal.LTR.Fields) != 0 {
		t.Errorf("empty path produced a non-empty configuration: %+v", conf)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/deal.yaml")
	if err == nil {
		t.Errorf("LoadConfiguration() on a missing file returned no error")
	}
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: console
output:
  format: csv
deal:
  ltr:
    fields:
      purchase: 400000
      downPct: 25
      rent: 3100
    renoFinanced: true
  dscr:
    propertyType: STR
  multi:
    units:
      - rent: 1600
      - rent: 1700
      - rent: 1800
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
	if conf.Deal.LTR.RenoFinanced == nil || !*conf.Deal.LTR.RenoFinanced {
		t.Errorf("LTR renoFinanced not decoded as true")
	}
	if conf.Deal.DSCR.PropertyType != "STR" {
		t.Errorf("DSCR property type = %q, expected STR", conf.Deal.DSCR.PropertyType)
	}
	if len(conf.Deal.Multi.Units) != 3 {
		t.Errorf("multi units = %d, expected 3", len(conf.Deal.Multi.Units))
	}
}

func TestApplyToRecomputesLinkedFields(t *testing.T) {
	conf := &Configuration{}
	conf.Deal.LTR.Fields = map[string]float64{
		"purchase": 400000,
		"downpct":  25, // keys arrive lowercased from the loader
	}

	s := deal.NewSession(zap.NewNop())
	conf.ApplyTo(s)

	if s.LTR.Purchase != 400000 {
		t.Errorf("purchase = %v, expected 400000", s.LTR.Purchase)
	}
	if s.LTR.DownPct != 25 {
		t.Errorf("down percent = %v, expected 25", s.LTR.DownPct)
	}
	if math.Abs(s.LTR.DownAmt-100000) > 0.01 {
		t.Errorf("down amount = %v, expected recomputed 100000", s.LTR.DownAmt)
	}
	// The tax amount follows the new base at the default rate.
	if math.Abs(s.LTR.TaxYear-4800) > 0.01 {
		t.Errorf("tax amount = %v, expected recomputed 4800", s.LTR.TaxYear)
	}
}

func TestApplyToReplacesUnitCollections(t *testing.T) {
	conf := &Configuration{}
	conf.Deal.Room.Units = []RoomUnitConfig{
		{Type: "Room", Rent: 900, OwnerOccupied: true},
		{Type: "ADU", Rent: 1400},
	}
	conf.Deal.Multi.Units = []MultiUnitConfig{
		{Rent: 1600}, {Rent: 1700}, {Rent: 1800},
	}

	s := deal.NewSession(zap.NewNop())
	conf.ApplyTo(s)

	if len(s.RoomUnits) != 2 {
		t.Fatalf("room units = %d, expected 2", len(s.RoomUnits))
	}
	if !s.RoomUnits[0].OwnerOccupied || s.RoomUnits[1].OwnerOccupied {
		t.Errorf("owner-occupied flag not applied to the configured unit")
	}
	if s.RoomUnits[1].Type != deal.RoomUnitADU {
		t.Errorf("unit type = %v, expected ADU", s.RoomUnits[1].Type)
	}

	if len(s.MultiUnits) != 3 {
		t.Fatalf("multi units = %d, expected 3", len(s.MultiUnits))
	}
	if s.MultiUnits[2].Rent != 1800 {
		t.Errorf("third unit rent = %v, expected 1800", s.MultiUnits[2].Rent)
	}
}

func TestApplyToDSCRPropertyTypeBeforeFields(t *testing.T) {
	stress := 12.0
	conf := &Configuration{}
	conf.Deal.DSCR.PropertyType = "STR"
	conf.Deal.DSCR.Fields = map[string]float64{
		"stressrate": stress,
	}

	s := deal.NewSession(zap.NewNop())
	conf.ApplyTo(s)

	if s.DSCR.PropertyType != deal.KindSTR {
		t.Errorf("property type = %v, expected STR", s.DSCR.PropertyType)
	}
	// The type switch resets the stress defaults, then the configured
	// override lands on top.
	if s.DSCR.StressVacancyPct != 15 || s.DSCR.MinDSCR != 1.25 {
		t.Errorf("stress defaults = %v/%v, expected 15/1.25",
			s.DSCR.StressVacancyPct, s.DSCR.MinDSCR)
	}
	if s.DSCR.StressRatePct != stress {
		t.Errorf("stress rate = %v, expected configured %v", s.DSCR.StressRatePct, stress)
	}
}

func TestApplyToBuild(t *testing.T) {
	applyToAll := true
	conf := &Configuration{}
	conf.Deal.Build = BuildConfig{
		PropertyType:    "Duplex",
		LandAcquisition: "finance",
		ApplyToAll:      &applyToAll,
		Fields: map[string]float64{
			"arv":       900000,
			"hardcosts": 450000,
		},
		Units: []BuildUnitConfig{
			{Strategy: "STR", Fields: map[string]float64{"stradr": 220}},
		},
	}

	s := deal.NewSession(zap.NewNop())
	conf.ApplyTo(s)

	if len(s.BuildUnits) != 2 {
		t.Fatalf("build units = %d, expected 2 for a duplex", len(s.BuildUnits))
	}
	if s.Build.LandAcquisition != deal.LandFinance {
		t.Errorf("land acquisition = %v, expected finance", s.Build.LandAcquisition)
	}
	if s.Build.ARV != 900000 {
		t.Errorf("ARV = %v, expected 900000", s.Build.ARV)
	}
	// The ARV edit re-derives the project tax amount at the default rate.
	if math.Abs(s.Build.TotalTaxYear-10800) > 0.01 {
		t.Errorf("project taxes = %v, expected recomputed 10800", s.Build.TotalTaxYear)
	}

	// Unit overrides apply to the first unit and, with apply-to-all enabled
	// afterwards, copy over the rest.
	for i, u := range s.BuildUnits {
		if u.Strategy != deal.KindSTR {
			t.Errorf("unit %d strategy = %v, expected STR", i, u.Strategy)
		}
		if u.STRAdr != 220 {
			t.Errorf("unit %d ADR = %v, expected 220", i, u.STRAdr)
		}
	}
}
