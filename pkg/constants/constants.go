// Package constants provides shared constants for the underwriter application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerMonth is the average number of days in a month, used to
	// convert a nightly rate and occupancy into monthly revenue
	DaysPerMonth = 30.44

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// DSCR stress-test defaults. Applied when the underwritten property type
// changes; the stress rate default also tracks every base-rate edit.
const (
	// LTRStressVacancyPct is the default income haircut for long-term rentals
	LTRStressVacancyPct = 5.0

	// LTRMinDSCR is the default minimum coverage ratio for long-term rentals
	LTRMinDSCR = 1.0

	// STRStressVacancyPct is the default income haircut for short-term rentals
	STRStressVacancyPct = 15.0

	// STRMinDSCR is the default minimum coverage ratio for short-term rentals
	STRMinDSCR = 1.25

	// StressRateSpreadPct is added to the note rate to form the default
	// stress-tested rate
	StressRateSpreadPct = 2.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default deal configuration file name
	DefaultConfigFile = "deal.yaml"
)
