package domain

// RateRange is the observed min/max of a rate sequence (fractions).
type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Spread is Max-Min.
func (r RateRange) Spread() float64 {
	return r.Max - r.Min
}

// CoreIndicators are the indicators derived from the scraped Summary.
type CoreIndicators struct {
	TotalSources        int       `json:"total_sources"`
	AvgEmploymentRate   float64   `json:"avg_employment_rate"`
	AvgSigningRate      float64   `json:"avg_signing_rate"`
	EmploymentRateRange RateRange `json:"employment_rate_range"`
	SigningRateRange    RateRange `json:"signing_rate_range"`
}

// RegionProfile describes one geographic region.
type RegionProfile struct {
	AvgEmploymentRate float64  `json:"avg_employment_rate"`
	Characteristics   string   `json:"characteristics"`
	HotProvinces      []string `json:"hot_provinces"`
}

// RegionalAnalysis groups the three regions covered by the report.
type RegionalAnalysis struct {
	EastCoast     RegionProfile `json:"east_coast"`
	CentralRegion RegionProfile `json:"central_region"`
	WestRegion    RegionProfile `json:"west_region"`
}

// MajorProfile describes one family of majors.
type MajorProfile struct {
	EmploymentRate float64  `json:"employment_rate"`
	TopMajors      []string `json:"top_majors"`
	Trend          string   `json:"trend"`
}

// MajorAnalysis groups the four major families.
type MajorAnalysis struct {
	STEM          MajorProfile `json:"stem_majors"`
	Humanities    MajorProfile `json:"humanities_majors"`
	SocialScience MajorProfile `json:"social_science_majors"`
	Arts          MajorProfile `json:"arts_majors"`
}

// SchoolProfile describes one school category.
type SchoolProfile struct {
	EmploymentRate  float64 `json:"employment_rate"`
	AvgSalary       string  `json:"avg_salary"`
	Characteristics string  `json:"characteristics"`
}

// SchoolTypeAnalysis groups the three school categories.
type SchoolTypeAnalysis struct {
	Elite      SchoolProfile `json:"985_211_universities"`
	General    SchoolProfile `json:"general_universities"`
	Vocational SchoolProfile `json:"vocational_colleges"`
}

// FreelanceAnalysis covers flexible employment.
type FreelanceAnalysis struct {
	FreelanceRate     float64  `json:"freelance_rate"`
	GrowthTrend       string   `json:"growth_trend"`
	PopularCategories []string `json:"popular_categories"`
	Challenges        []string `json:"challenges"`
	Opportunities     []string `json:"opportunities"`
}

// AnalysisReport is built once per run from a Summary and never mutated.
type AnalysisReport struct {
	CoreIndicators     CoreIndicators     `json:"core_indicators"`
	Trends             []string           `json:"trends"`
	RegionalAnalysis   RegionalAnalysis   `json:"regional_analysis"`
	MajorAnalysis      MajorAnalysis      `json:"major_analysis"`
	SchoolTypeAnalysis SchoolTypeAnalysis `json:"school_type_analysis"`
	FreelanceAnalysis  FreelanceAnalysis  `json:"freelance_analysis"`
}

// Dimensions is the number of analysis sections.
func (AnalysisReport) Dimensions() int {
	return 6
}
