package deal

import "github.com/dealscope/underwriter/pkg/validation"

// Warnings performs general validation of the session's inputs and returns
// non-fatal findings for the caller to surface.
func (s *Session) Warnings() []string {
	var warnings []string

	appendIf := func(w string) {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	warnings = append(warnings, validation.ValidateFinancing(StrategyLTR.Name(), s.LTR.Purchase, s.LTR.DownPct, s.LTR.TermYears)...)
	warnings = append(warnings, validation.ValidateFinancing(StrategyRoom.Name(), s.Room.Purchase, s.Room.DownPct, s.Room.TermYears)...)
	warnings = append(warnings, validation.ValidateFinancing(StrategySTR.Name(), s.STR.Purchase, s.STR.DownPct, s.STR.TermYears)...)
	warnings = append(warnings, validation.ValidateFinancing(StrategyMulti.Name(), s.Multi.Purchase, s.Multi.DownPct, s.Multi.TermYears)...)
	warnings = append(warnings, validation.ValidateFinancing(StrategyDSCR.Name(), s.DSCR.Purchase, s.DSCR.DownPct, s.DSCR.TermYears)...)
	warnings = append(warnings, validation.ValidateFinancing(StrategyBuild.Name(), s.Build.ARV, 0, s.Build.RefiTermYears)...)

	appendIf(validation.ValidateOccupancy(StrategySTR.Name(), s.STR.Occupancy))
	appendIf(validation.ValidateOccupancy(StrategyDSCR.Name(), s.DSCR.STROcc))
	for _, u := range s.BuildUnits {
		if u.Strategy == KindSTR {
			appendIf(validation.ValidateOccupancy(StrategyBuild.Name(), u.STROcc))
		}
	}

	appendIf(validation.ValidateUnitCount(StrategyMulti.Name(), len(s.MultiUnits), 1))
	appendIf(validation.ValidateUnitCount(StrategyBuild.Name(), len(s.BuildUnits), 1))

	appendIf(validation.ValidateStressRate(StrategyDSCR.Name(), s.DSCR.StressRatePct, s.DSCR.Rate))

	return warnings
}
