// Package llm holds the text generators used to polish and revise reports.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"EmploymentReport/internal/config"
	"EmploymentReport/internal/ports"
)

// Generator is a ports.Generator that owns releasable resources.
type Generator interface {
	ports.Generator
	Close() error
}

// NewGenerator picks the backend named by cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.GeneratorConfig, log *slog.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenAI, "":
		return NewChatClient(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}
