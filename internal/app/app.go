package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"EmploymentReport/internal/config"
	"EmploymentReport/internal/domain"
	"EmploymentReport/internal/infrastructure/console"
	"EmploymentReport/internal/infrastructure/fetcher"
	"EmploymentReport/internal/infrastructure/llm"
	"EmploymentReport/internal/infrastructure/parser"
	"EmploymentReport/internal/infrastructure/storage"
	"EmploymentReport/internal/logging"
	"EmploymentReport/internal/review"
	"EmploymentReport/internal/search"
	"EmploymentReport/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	pipeline  *usecase.Pipeline
	generator llm.Generator
	notifier  *console.Notifier
	logger    *slog.Logger
}

// New builds a runnable application. out receives the console progress.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger, out io.Writer) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging)
	}

	registry := search.NewRegistry(
		parser.NewBingEngine(""),
		parser.NewSogouEngine(""),
	)
	engines, err := registry.Select(cfg.Search.Engines)
	if err != nil {
		return nil, fmt.Errorf("select engines: %w", err)
	}

	pageFetcher := fetcher.New(fetcher.Options{
		Timeout:    cfg.Fetcher.Timeout.Duration,
		UserAgents: cfg.Fetcher.UserAgents,
	}, baseLogger.With("component", "fetcher"))

	harvester := parser.NewHarvester(engines, pageFetcher, cfg.Search.PageDelay.Duration, baseLogger.With("component", "harvester"))

	collector := usecase.NewCollector(harvester, pageFetcher, usecase.CollectorOptions{
		Queries:          cfg.Search.ActiveQueries(),
		MaxPages:         cfg.Search.MaxPages,
		ResultsPerPage:   cfg.Search.ResultsPerPage,
		PagesToScrape:    cfg.Search.PagesToScrape,
		MinContentLength: cfg.Search.MinContentLength,
		ScrapeDelay:      cfg.Search.ScrapeDelay.Duration,
		QueryDelay:       cfg.Search.QueryDelay.Duration,
	}, baseLogger.With("component", "collector"))

	generator, err := llm.NewGenerator(ctx, cfg.Generator, baseLogger.With("component", "llm", "provider", cfg.Generator.Provider))
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}

	notifier := console.NewNotifier(out)
	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Collector:    collector,
		Generator:    generator,
		Store:        storage.NewFileStore(cfg.Output.Path),
		Notifier:     notifier,
		Critic:       review.New(),
		MaxRevisions: cfg.Review.MaxRevisions,
		Logger:       baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:       cfg,
		pipeline:  pipeline,
		generator: generator,
		notifier:  notifier,
		logger:    baseLogger,
	}, nil
}

// Run performs a single report generation.
func (a *Application) Run(ctx context.Context) (domain.PipelineState, error) {
	a.notifier.Banner("2024-2025年高校本科生就业情况分析报告生成系统", "多阶段报告生成流程：抓取 → 分析 → 撰写 → 审核 → 保存")
	a.logger.Info("starting run",
		"engines", a.cfg.Search.Engines,
		"queries", len(a.cfg.Search.ActiveQueries()),
		"provider", a.cfg.Generator.Provider,
		"model", a.cfg.Generator.Model,
		"max_revisions", a.cfg.Review.MaxRevisions,
		"output", a.cfg.Output.Path,
	)
	return a.pipeline.Run(ctx)
}

// Close releases the generator.
func (a *Application) Close() error {
	if a.generator == nil {
		return nil
	}
	return a.generator.Close()
}
