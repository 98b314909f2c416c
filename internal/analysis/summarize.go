// Package analysis turns per-page extractions into a Summary and the
// Summary into the six-dimension AnalysisReport.
package analysis

import "EmploymentReport/internal/domain"

// Summarize folds page extractions into a Summary. Sources are counted
// whether or not a page yielded numbers; averages cover only the found values.
func Summarize(pages []domain.PageExtraction) domain.Summary {
	s := domain.Summary{
		EmploymentRates: []float64{},
		SigningRates:    []float64{},
		GraduateCounts:  []string{},
		Sources:         []string{},
	}
	for _, p := range pages {
		s.Add(p)
	}
	return s
}
