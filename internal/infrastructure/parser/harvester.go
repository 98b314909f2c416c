package parser

import (
	"context"
	"log/slog"
	"time"

	"EmploymentReport/internal/pacing"
	"EmploymentReport/internal/ports"
	"EmploymentReport/internal/search"
)

// Harvester implements ports.URLHarvester across several search engines.
type Harvester struct {
	engines   []search.Engine
	fetcher   ports.PageFetcher
	pageDelay time.Duration
	logger    *slog.Logger
}

var _ ports.URLHarvester = (*Harvester)(nil)

// NewHarvester wires engines with the page fetcher; pageDelay is the idle
// pause after each result page before the next one from the same engine.
func NewHarvester(engines []search.Engine, fetcher ports.PageFetcher, pageDelay time.Duration, log *slog.Logger) *Harvester {
	return &Harvester{
		engines:   engines,
		fetcher:   fetcher,
		pageDelay: pageDelay,
		logger:    log,
	}
}

// Harvest collects result URLs from every engine, then dedupes and filters them.
func (h *Harvester) Harvest(ctx context.Context, query string, maxPages, resultsPerPage int) []string {
	var merged []string
	for _, engine := range h.engines {
		urls := h.harvestEngine(ctx, engine, query, maxPages, resultsPerPage)
		h.info("engine harvested", "engine", engine.Name(), "query", query, "urls", len(urls))
		merged = append(merged, urls...)
	}

	unique := search.Dedupe(merged)
	filtered := search.FilterURLs(unique)
	h.info("harvest done", "query", query, "raw", len(merged), "unique", len(unique), "kept", len(filtered))
	return filtered
}

// harvestEngine walks result pages until maxPages or the first failed page.
func (h *Harvester) harvestEngine(ctx context.Context, engine search.Engine, query string, maxPages, resultsPerPage int) []string {
	pacer := pacing.New(h.pageDelay)

	var collected []string
	for page := 1; page <= maxPages; page++ {
		if err := pacer.Wait(ctx); err != nil {
			h.warn("harvest interrupted", "engine", engine.Name(), "page", page, "error", err)
			break
		}

		pageURL, err := engine.PageURL(query, page, resultsPerPage)
		if err != nil {
			h.warn("build page url", "engine", engine.Name(), "page", page, "error", err)
			break
		}

		body := h.fetcher.Fetch(ctx, pageURL)
		pacer.Done()
		if body == "" {
			h.warn("result page failed, stop paginating", "engine", engine.Name(), "page", page)
			break
		}

		urls := engine.ExtractURLs(body)
		h.debug("result page parsed", "engine", engine.Name(), "page", page, "urls", len(urls))
		collected = append(collected, urls...)
	}
	return collected
}

func (h *Harvester) debug(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}

func (h *Harvester) info(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Info(msg, args...)
	}
}

func (h *Harvester) warn(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Warn(msg, args...)
	}
}
