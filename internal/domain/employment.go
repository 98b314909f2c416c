package domain

// PageExtraction is the numeric signal pulled from a single scraped page.
// Nil fields were not found on the page; a found zero stays distinguishable.
type PageExtraction struct {
	TotalGraduates *string  `json:"total_graduates,omitempty"`
	EmploymentRate *float64 `json:"employment_rate,omitempty"`
	SigningRate    *float64 `json:"signing_rate,omitempty"`
	SourceURL      string   `json:"source_url"`
	SearchQuery    string   `json:"search_query"`
	ContentLength  int      `json:"content_length"`
}

// HasData reports whether any field was extracted.
func (p PageExtraction) HasData() bool {
	return p.EmploymentRate != nil || p.SigningRate != nil || (p.TotalGraduates != nil && *p.TotalGraduates != "")
}

// Summary aggregates extractions across all scraped sources.
// Add keeps the averages in step with the sequences; code that edits the
// sequences directly must call Recompute afterwards.
type Summary struct {
	TotalSources      int       `json:"total_sources"`
	EmploymentRates   []float64 `json:"employment_rates"`
	SigningRates      []float64 `json:"signing_rates"`
	GraduateCounts    []string  `json:"graduate_counts"`
	Sources           []string  `json:"sources"`
	AvgEmploymentRate *float64  `json:"avg_employment_rate,omitempty"`
	AvgSigningRate    *float64  `json:"avg_signing_rate,omitempty"`
}

// Add folds one page into the summary and refreshes the averages. The page
// counts as a source even when it carries no numbers.
func (s *Summary) Add(p PageExtraction) {
	if p.EmploymentRate != nil {
		s.EmploymentRates = append(s.EmploymentRates, *p.EmploymentRate)
	}
	if p.SigningRate != nil {
		s.SigningRates = append(s.SigningRates, *p.SigningRate)
	}
	if p.TotalGraduates != nil && *p.TotalGraduates != "" {
		s.GraduateCounts = append(s.GraduateCounts, *p.TotalGraduates)
	}
	s.Sources = append(s.Sources, p.SourceURL)
	s.TotalSources++
	s.Recompute()
}

// Recompute refreshes both averages from the backing sequences.
func (s *Summary) Recompute() {
	s.AvgEmploymentRate = mean(s.EmploymentRates)
	s.AvgSigningRate = mean(s.SigningRates)
}

// EmploymentAverage returns the mean employment rate, 0 when absent.
func (s Summary) EmploymentAverage() float64 {
	return valueOrZero(s.AvgEmploymentRate)
}

// SigningAverage returns the mean signing rate, 0 when absent.
func (s Summary) SigningAverage() float64 {
	return valueOrZero(s.AvgSigningRate)
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
