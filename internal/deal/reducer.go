package deal

import (
	"github.com/dealscope/underwriter/pkg/mathutil"
	"github.com/dealscope/underwriter/pkg/numeric"
)

// ApplyEdit parses a raw field value and writes it through ApplyValue.
func ApplyEdit(rec Record, s *Schema, field Field, raw string) {
	ApplyValue(rec, s, field, numeric.Parse(raw))
}

// ApplyValue writes a field and recomputes at most one linked field,
// according to the edited field's schema role. Propagation never cascades:
// a recomputed field is written directly, not re-applied. Fields absent from
// the schema are ignored.
func ApplyValue(rec Record, s *Schema, field Field, v float64) {
	role, ok := s.Roles[field]
	if !ok {
		return
	}
	rec.Set(field, v)

	switch role {
	case RoleBasePrice:
		// The base value itself was just written; re-derive both
		// dollar amounts from their rates.
		if s.DownAmt != "" {
			rec.Set(s.DownAmt, mathutil.ApplyPercentage(v, rec.Get(s.DownPct)))
		}
		if s.TaxYear != "" {
			rec.Set(s.TaxYear, mathutil.ApplyPercentage(v, rec.Get(s.TaxRate)))
		}
	case RoleDownPct:
		rec.Set(s.DownAmt, mathutil.ApplyPercentage(rec.Get(s.Base), v))
	case RoleDownAmt:
		rec.Set(s.DownPct, mathutil.CalculatePercentage(v, rec.Get(s.Base)))
	case RoleTaxAmt:
		rec.Set(s.TaxRate, mathutil.CalculatePercentage(v, rec.Get(s.Base)))
	case RoleTaxRate:
		rec.Set(s.TaxYear, mathutil.ApplyPercentage(rec.Get(s.Base), v))
	}
}
