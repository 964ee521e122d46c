// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dealscope/underwriter/internal/report"
	"github.com/dealscope/underwriter/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(analysis report.Analysis) {
	p := message.NewPrinter(language.English)
	sections := analysis.Sections()
	for i, section := range sections {
		fmt.Printf("--- %s ---\n", section.Name)
		for _, m := range section.Metrics {
			_, _ = p.Printf("%-30s %s\n", m.Label, renderValue(m))
		}
		if section.Name == "DSCR Loan" {
			fmt.Printf("%-30s %s\n", "Coverage Test", analysis.PassLabel())
		}
		if i < len(sections)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(analysis report.Analysis) {
	fmt.Printf("\"strategy\",\"metric\",\"value\"\n")
	for _, section := range analysis.Sections() {
		for _, m := range section.Metrics {
			if !format.IsDisplayable(m.Value) {
				fmt.Printf("\"%s\",\"%s\",\"%s\"\n", section.Name, m.Label, format.Dash)
				continue
			}
			fmt.Printf("\"%s\",\"%s\",\"%.2f\"\n", section.Name, m.Label, m.Value)
		}
	}
	fmt.Printf("\"DSCR Loan\",\"Coverage Test\",\"%s\"\n", analysis.PassLabel())
}

func renderValue(m report.Metric) string {
	switch m.Kind {
	case report.Percent:
		return format.Percent(m.Value)
	case report.Ratio:
		return format.Ratio(m.Value)
	}
	return format.Currency(m.Value)
}
