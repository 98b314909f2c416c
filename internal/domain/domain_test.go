package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageExtractionHasData(t *testing.T) {
	zero, empty, count := 0.0, "", "820万"

	assert.False(t, PageExtraction{}.HasData())
	assert.False(t, PageExtraction{TotalGraduates: &empty}.HasData())
	assert.True(t, PageExtraction{TotalGraduates: &count}.HasData())
	assert.True(t, PageExtraction{SigningRate: &zero}.HasData())
}

func TestSummaryRecompute(t *testing.T) {
	s := Summary{EmploymentRates: []float64{80, 90}}
	s.Recompute()

	require.NotNil(t, s.AvgEmploymentRate)
	assert.InDelta(t, 85.0, *s.AvgEmploymentRate, 1e-9)
	assert.Nil(t, s.AvgSigningRate)
	assert.Zero(t, s.SigningAverage())

	s.EmploymentRates = append(s.EmploymentRates, 100)
	s.Recompute()
	assert.InDelta(t, 90.0, s.EmploymentAverage(), 1e-9)
}

func TestSummaryAddKeepsAveragesCurrent(t *testing.T) {
	rate := func(v float64) *float64 { return &v }
	empty, count := "", "820万"

	var s Summary
	s.Add(PageExtraction{EmploymentRate: rate(80), SourceURL: "a"})
	require.NotNil(t, s.AvgEmploymentRate)
	assert.InDelta(t, 80.0, *s.AvgEmploymentRate, 1e-9)
	assert.Nil(t, s.AvgSigningRate)

	s.Add(PageExtraction{EmploymentRate: rate(90), SigningRate: rate(0), TotalGraduates: &count, SourceURL: "b"})
	s.Add(PageExtraction{TotalGraduates: &empty, SourceURL: "c"})

	assert.Equal(t, 3, s.TotalSources)
	assert.Equal(t, []string{"a", "b", "c"}, s.Sources)
	assert.Equal(t, []string{"820万"}, s.GraduateCounts)
	assert.InDelta(t, 85.0, s.EmploymentAverage(), 1e-9)
	require.NotNil(t, s.AvgSigningRate)
	assert.Zero(t, *s.AvgSigningRate)
}

func TestSummaryJSONOmitsAbsentAverages(t *testing.T) {
	raw, err := json.Marshal(Summary{})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "avg_employment_rate")
	assert.NotContains(t, string(raw), "avg_signing_rate")
}

func TestWithMessageDoesNotAlias(t *testing.T) {
	base := PipelineState{Messages: make([]Message, 1, 8)}

	a := base.WithMessage(Message{Content: "a"})
	b := base.WithMessage(Message{Content: "b"})

	assert.Len(t, base.Messages, 1)
	assert.Equal(t, "a", a.Messages[1].Content)
	assert.Equal(t, "b", b.Messages[1].Content)
}

func TestRateRangeSpread(t *testing.T) {
	assert.InDelta(t, 0.1, RateRange{Min: 0.8, Max: 0.9}.Spread(), 1e-9)
	assert.Equal(t, 6, AnalysisReport{}.Dimensions())
}
