package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"EmploymentReport/internal/analysis"
	"EmploymentReport/internal/domain"
	"EmploymentReport/internal/extract"
	"EmploymentReport/internal/pacing"
	"EmploymentReport/internal/ports"
)

// CollectorOptions mirrors config.SearchConfig without importing it.
// ScrapeDelay and QueryDelay are idle pauses after each page and each query.
type CollectorOptions struct {
	Queries          []string
	MaxPages         int
	ResultsPerPage   int
	PagesToScrape    int
	MinContentLength int
	ScrapeDelay      time.Duration
	QueryDelay       time.Duration
}

// Collector implements ports.DataCollector: harvest, scrape, extract, summarize.
type Collector struct {
	harvester ports.URLHarvester
	fetcher   ports.PageFetcher
	opts      CollectorOptions
	logger    *slog.Logger
}

var _ ports.DataCollector = (*Collector)(nil)

// NewCollector wires the harvester and page fetcher.
func NewCollector(harvester ports.URLHarvester, fetcher ports.PageFetcher, opts CollectorOptions, log *slog.Logger) *Collector {
	return &Collector{harvester: harvester, fetcher: fetcher, opts: opts, logger: log}
}

// Collect runs every query in order. Only cancellation is reported as an
// error; unreachable pages just contribute nothing.
func (c *Collector) Collect(ctx context.Context) (domain.Summary, error) {
	queryPacer := pacing.New(c.opts.QueryDelay)

	var pages []domain.PageExtraction
	for _, query := range c.opts.Queries {
		if err := queryPacer.Wait(ctx); err != nil {
			return domain.Summary{}, fmt.Errorf("collect %q: %w", query, err)
		}

		found, err := c.scrapeQuery(ctx, query)
		queryPacer.Done()
		if err != nil {
			return domain.Summary{}, err
		}
		pages = append(pages, found...)
	}

	summary := analysis.Summarize(pages)
	c.info("collection done", "queries", len(c.opts.Queries), "sources", summary.TotalSources)
	return summary, nil
}

func (c *Collector) scrapeQuery(ctx context.Context, query string) ([]domain.PageExtraction, error) {
	urls := c.harvester.Harvest(ctx, query, c.opts.MaxPages, c.opts.ResultsPerPage)
	if c.opts.PagesToScrape > 0 && len(urls) > c.opts.PagesToScrape {
		urls = urls[:c.opts.PagesToScrape]
	}
	c.info("scraping query", "query", query, "urls", len(urls))

	pacer := pacing.New(c.opts.ScrapeDelay)

	var out []domain.PageExtraction
	for i, url := range urls {
		if err := pacer.Wait(ctx); err != nil {
			return nil, fmt.Errorf("scrape %q: %w", query, err)
		}

		page := c.fetcher.Fetch(ctx, url)
		pacer.Done()
		if page == "" {
			continue
		}

		data := extract.FromHTML(page)
		if !data.HasData() && data.ContentLength <= c.opts.MinContentLength {
			c.debug("page skipped", "url", url, "length", data.ContentLength)
			continue
		}

		data.SourceURL = url
		data.SearchQuery = query
		out = append(out, data)
		c.debug("page kept", "index", i+1, "url", url, "has_data", data.HasData())
	}
	return out, nil
}

func (c *Collector) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Collector) info(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}
