package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"EmploymentReport/internal/app"
	"EmploymentReport/internal/config"
	"EmploymentReport/internal/logging"
	"EmploymentReport/internal/usecase"
)

type rootOptions struct {
	configPath   string
	outputPath   string
	logLevel     string
	maxRevisions int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "employmentreport",
		Short: "Generate the 2024-2025 graduate employment report",
		Long: `Scrapes search results for graduate employment statistics, analyzes them, drafts a Markdown report,
polishes it with a text generator and revises it until the rule-based review approves it.

Configuration is read from --config (or $EMPLOYMENT_REPORT_CONFIG); flags override file and environment values.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Report output path")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&opts.maxRevisions, "max-revisions", 0, "Maximum rewrite attempts, 0 for unbounded")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	overrides := config.Overrides{LogLevel: opts.logLevel, OutputPath: opts.outputPath}
	if cmd.Flags().Changed("max-revisions") {
		overrides.MaxRevisions = &opts.maxRevisions
	}
	if err := cfg.Apply(overrides); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}

	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := application.Close(); cerr != nil {
			logger.Warn("close application", "error", cerr)
		}
	}()

	if _, err := application.Run(ctx); err != nil {
		var stageErr *usecase.StageError
		if errors.As(err, &stageErr) {
			logger.Error("pipeline stopped", "stage", stageErr.Stage, "error", stageErr.Err)
		}
		return err
	}
	return nil
}
