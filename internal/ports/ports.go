package ports

import (
	"context"

	"EmploymentReport/internal/domain"
)

// URLHarvester discovers candidate source pages for a query.
type URLHarvester interface {
	Harvest(ctx context.Context, query string, maxPages, resultsPerPage int) []string
}

// PageFetcher retrieves raw page text. Failures surface as "".
type PageFetcher interface {
	Fetch(ctx context.Context, url string) string
}

// DataCollector produces the aggregated scrape for a pipeline run.
type DataCollector interface {
	Collect(ctx context.Context) (domain.Summary, error)
}

// Generator is the opaque text-generation capability (LLM).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReportStore persists the final report and returns where it went.
type ReportStore interface {
	Save(ctx context.Context, content string) (string, error)
}

// Notifier surfaces human-readable progress of a run.
type Notifier interface {
	StageStarted(stage domain.Stage, title string)
	StageDone(stage domain.Stage, lines ...string)
	Verdict(approved bool, score int, detail string)
	Warn(message string)
	Finished(state domain.PipelineState)
}
