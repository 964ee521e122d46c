// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/dealscope/underwriter/internal/report"
)

// FindSection finds a strategy section by name in the rendered analysis.
// Returns a pointer to the section if found, nil otherwise.
func FindSection(sections []report.Section, name string) *report.Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

// FindMetric finds a labeled metric within a section.
// Returns a pointer to the metric if found, nil otherwise.
func FindMetric(section *report.Section, label string) *report.Metric {
	if section == nil {
		return nil
	}
	for i := range section.Metrics {
		if section.Metrics[i].Label == label {
			return &section.Metrics[i]
		}
	}
	return nil
}
