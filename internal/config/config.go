// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config and applying it to
// an underwriting session.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dealscope/underwriter/internal/deal"
)

// Configuration holds all configuration for the underwriter.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Deal    DealConfig    `yaml:"deal,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DealConfig holds per-strategy input overrides. Anything not configured
// keeps its session default.
type DealConfig struct {
	LTR   StrategyConfig `yaml:"ltr,omitempty"`
	Room  RoomConfig     `yaml:"room,omitempty"`
	STR   StrategyConfig `yaml:"str,omitempty"`
	Multi MultiConfig    `yaml:"multi,omitempty"`
	Build BuildConfig    `yaml:"build,omitempty"`
	DSCR  DSCRConfig     `yaml:"dscr,omitempty"`
}

// StrategyConfig holds the numeric field overrides for one strategy, keyed
// by field name, plus the renovation-financing flag.
type StrategyConfig struct {
	Fields       map[string]float64 `yaml:"fields,omitempty"`
	RenoFinanced *bool              `yaml:"renoFinanced,omitempty"`
}

// RoomConfig adds the rental-unit list to the strategy overrides. A
// non-empty unit list replaces the default units entirely.
type RoomConfig struct {
	StrategyConfig `mapstructure:",squash"`
	Units          []RoomUnitConfig `yaml:"units,omitempty"`
}

// RoomUnitConfig describes one configured rental unit.
type RoomUnitConfig struct {
	Type          string  `yaml:"type,omitempty"` // Room, ADU, Unit
	Rent          float64 `yaml:"rent,omitempty"`
	OwnerOccupied bool    `yaml:"ownerOccupied,omitempty"`
}

// MultiConfig adds the unit list to the strategy overrides.
type MultiConfig struct {
	StrategyConfig `mapstructure:",squash"`
	Units          []MultiUnitConfig `yaml:"units,omitempty"`
}

// MultiUnitConfig describes one configured multi-family unit.
type MultiUnitConfig struct {
	Rent float64 `yaml:"rent,omitempty"`
}

// DSCRConfig holds the debt-service strategy overrides. PropertyType is
// applied before the field overrides so the stress defaults it rewrites
// remain overridable.
type DSCRConfig struct {
	Fields         map[string]float64 `yaml:"fields,omitempty"`
	PropertyType   string             `yaml:"propertyType,omitempty"` // LTR, STR
	RenoFinancedHM *bool              `yaml:"renoFinancedHM,omitempty"`
}

// BuildConfig holds the new-construction overrides. PropertyType resizes
// the unit collection; per-unit overrides then apply positionally.
type BuildConfig struct {
	Fields          map[string]float64 `yaml:"fields,omitempty"`
	PropertyType    string             `yaml:"propertyType,omitempty"`
	LandAcquisition string             `yaml:"landAcquisition,omitempty"` // cash, finance, owned
	ApplyToAll      *bool              `yaml:"applyToAll,omitempty"`
	Units           []BuildUnitConfig  `yaml:"units,omitempty"`
}

// BuildUnitConfig describes one configured build unit.
type BuildUnitConfig struct {
	Strategy               string             `yaml:"strategy,omitempty"` // LTR, STR
	Fields                 map[string]float64 `yaml:"fields,omitempty"`
	CleaningCoveredByGuest *bool              `yaml:"cleaningCoveredByGuest,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields an empty configuration, leaving
// every session default in place.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return &Configuration{}, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ApplyTo lays the configured overrides over a session's defaults. Field
// values route through the session's edit path so linked fields recompute
// exactly as they would for an interactive edit.
func (conf *Configuration) ApplyTo(s *deal.Session) {
	applyFields(s, deal.StrategyLTR, conf.Deal.LTR.Fields)
	applyFlag(s, deal.StrategyLTR, deal.FieldRenoFinanced, conf.Deal.LTR.RenoFinanced)

	applyFields(s, deal.StrategyRoom, conf.Deal.Room.Fields)
	applyFlag(s, deal.StrategyRoom, deal.FieldRenoFinanced, conf.Deal.Room.RenoFinanced)
	if len(conf.Deal.Room.Units) > 0 {
		s.RoomUnits = nil
		ownerID := ""
		for _, u := range conf.Deal.Room.Units {
			id := s.AddRoomUnit(roomUnitType(u.Type), u.Rent)
			if u.OwnerOccupied {
				ownerID = id
			}
		}
		if ownerID != "" {
			s.SetOwnerOccupiedUnit(ownerID)
		}
	}

	applyFields(s, deal.StrategySTR, conf.Deal.STR.Fields)
	applyFlag(s, deal.StrategySTR, deal.FieldRenoFinanced, conf.Deal.STR.RenoFinanced)

	applyFields(s, deal.StrategyMulti, conf.Deal.Multi.Fields)
	applyFlag(s, deal.StrategyMulti, deal.FieldRenoFinanced, conf.Deal.Multi.RenoFinanced)
	if len(conf.Deal.Multi.Units) > 0 {
		s.MultiUnits = nil
		for _, u := range conf.Deal.Multi.Units {
			s.MultiUnits = append(s.MultiUnits, deal.NewMultiUnit(u.Rent))
		}
	}

	if conf.Deal.DSCR.PropertyType != "" {
		s.SetDSCRPropertyType(deal.RentalKind(strings.ToUpper(conf.Deal.DSCR.PropertyType)))
	}
	applyFields(s, deal.StrategyDSCR, conf.Deal.DSCR.Fields)
	applyFlag(s, deal.StrategyDSCR, deal.FieldRenoFinancedHM, conf.Deal.DSCR.RenoFinancedHM)

	conf.applyBuild(s)
}

func (conf *Configuration) applyBuild(s *deal.Session) {
	b := conf.Deal.Build

	if b.PropertyType != "" {
		s.SetBuildPropertyType(deal.PropertyType(b.PropertyType))
	}
	if b.LandAcquisition != "" {
		s.Build.LandAcquisition = deal.LandAcquisition(strings.ToLower(b.LandAcquisition))
	}
	applyFields(s, deal.StrategyBuild, b.Fields)

	for i, u := range b.Units {
		if i >= len(s.BuildUnits) {
			break
		}
		id := s.BuildUnits[i].ID
		if u.Strategy != "" {
			s.SetBuildUnitStrategy(id, deal.RentalKind(strings.ToUpper(u.Strategy)))
		}
		for _, field := range deal.BuildUnitFields {
			if v, ok := lookupField(u.Fields, field); ok {
				s.BuildUnits[i].Set(field, v)
			}
		}
		if u.CleaningCoveredByGuest != nil {
			s.SetBuildUnitFlag(id, deal.FieldUnitCleaningByGuest, *u.CleaningCoveredByGuest)
		}
	}

	if b.ApplyToAll != nil {
		s.SetApplyToAll(*b.ApplyToAll)
	}
}

// applyFields walks the strategy's schema in declaration order and applies
// any configured value through the linking reducer. Schema order makes the
// link propagation deterministic regardless of map iteration.
func applyFields(s *deal.Session, strategy deal.Strategy, fields map[string]float64) {
	if len(fields) == 0 {
		return
	}
	_, schema := s.RecordFor(strategy)
	for _, field := range schema.Fields {
		if v, ok := lookupField(fields, field); ok {
			s.ApplyValue(strategy, field, v)
		}
	}
}

// lookupField finds a configured value for a field name. Lookup is
// case-insensitive because the config loader lowercases all keys.
func lookupField(fields map[string]float64, field deal.Field) (float64, bool) {
	if v, ok := fields[string(field)]; ok {
		return v, true
	}
	v, ok := fields[strings.ToLower(string(field))]
	return v, ok
}

func applyFlag(s *deal.Session, strategy deal.Strategy, field deal.Field, on *bool) {
	if on != nil {
		s.SetFlag(strategy, field, *on)
	}
}

func roomUnitType(t string) deal.RoomUnitType {
	switch strings.ToUpper(t) {
	case "ADU":
		return deal.RoomUnitADU
	case "UNIT":
		return deal.RoomUnitUnit
	}
	return deal.RoomUnitRoom
}
