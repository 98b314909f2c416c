package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "EMPLOYMENT_REPORT_CONFIG"
	logLevelEnv     = "LOG_LEVEL"
	llmProviderEnv  = "LLM_PROVIDER"
	llmEndpointEnv  = "LLM_ENDPOINT"
	llmModelEnv     = "LLM_MODEL"
	llmAPIKeyEnv    = "LLM_API_KEY"
	outputPathEnv   = "REPORT_OUTPUT_PATH"
	maxRevisionsEnv = "REPORT_MAX_REVISIONS"
)

// Generator providers understood by the llm package.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Search    SearchConfig    `yaml:"search"`
	Fetcher   FetcherConfig   `yaml:"fetcher"`
	Generator GeneratorConfig `yaml:"generator"`
	Review    ReviewConfig    `yaml:"review"`
	Output    OutputConfig    `yaml:"output"`
}

// LoggingConfig selects slog level and handler format (text|json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// SearchConfig drives harvesting and page scraping.
type SearchConfig struct {
	Engines          []string `yaml:"engines" validate:"min=1,dive,oneof=bing sogou"`
	Queries          []string `yaml:"queries" validate:"min=1,dive,required"`
	QueryLimit       int      `yaml:"queryLimit" validate:"gte=0"`
	MaxPages         int      `yaml:"maxPages" validate:"gte=1"`
	ResultsPerPage   int      `yaml:"resultsPerPage" validate:"gte=1"`
	PagesToScrape    int      `yaml:"pagesToScrape" validate:"gte=1"`
	MinContentLength int      `yaml:"minContentLength" validate:"gte=0"`
	PageDelay        Duration `yaml:"pageDelay"`
	ScrapeDelay      Duration `yaml:"scrapeDelay"`
	QueryDelay       Duration `yaml:"queryDelay"`
}

// ActiveQueries returns the queries the collector will actually run.
func (s SearchConfig) ActiveQueries() []string {
	if s.QueryLimit <= 0 || s.QueryLimit >= len(s.Queries) {
		return s.Queries
	}
	return s.Queries[:s.QueryLimit]
}

// FetcherConfig tunes the page fetcher.
type FetcherConfig struct {
	Timeout    Duration `yaml:"timeout"`
	UserAgents []string `yaml:"userAgents"`
}

// GeneratorConfig defines how to reach the text generator.
type GeneratorConfig struct {
	Provider     string   `yaml:"provider" validate:"oneof=openai gemini"`
	Endpoint     string   `yaml:"endpoint" validate:"required_if=Provider openai"`
	Model        string   `yaml:"model" validate:"required"`
	APIKey       string   `yaml:"apiKey" validate:"required_if=Provider gemini"`
	SystemPrompt string   `yaml:"systemPrompt"`
	Temperature  float64  `yaml:"temperature" validate:"gte=0,lte=2"`
	Timeout      Duration `yaml:"timeout"`
}

// ReviewConfig bounds the revision loop; zero keeps it unbounded.
type ReviewConfig struct {
	MaxRevisions int `yaml:"maxRevisions" validate:"gte=0"`
}

// OutputConfig points at the single report file.
type OutputConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// Overrides carries command-line values; zero values leave config untouched.
type Overrides struct {
	LogLevel     string
	OutputPath   string
	MaxRevisions *int
}

// Load reads defaults, the optional YAML file and environment overrides, then validates.
// An empty path falls back to $EMPLOYMENT_REPORT_CONFIG.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		// Decoding over the defaults keeps every key the file omits.
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply layers command-line overrides on top of a loaded config.
func (c *Config) Apply(o Overrides) error {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.OutputPath != "" {
		c.Output.Path = o.OutputPath
	}
	if o.MaxRevisions != nil {
		c.Review.MaxRevisions = *o.MaxRevisions
	}
	return c.Validate()
}

// Validate checks struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(llmProviderEnv); v != "" {
		c.Generator.Provider = strings.ToLower(v)
	}
	if v := os.Getenv(llmEndpointEnv); v != "" {
		c.Generator.Endpoint = v
	}
	if v := os.Getenv(llmModelEnv); v != "" {
		c.Generator.Model = v
	}
	if v := os.Getenv(llmAPIKeyEnv); v != "" {
		c.Generator.APIKey = v
	}
	if v := os.Getenv(outputPathEnv); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv(maxRevisionsEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", maxRevisionsEnv, v, err)
		}
		c.Review.MaxRevisions = n
	}
	return nil
}

// Default mirrors the behaviour of a run without any configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Search: SearchConfig{
			Engines: []string{"bing", "sogou"},
			Queries: []string{
				"2024年 高校本科毕业生 就业率",
				"2024-2025 大学生 就业数据 统计",
				"2024届 本科生 就业情况 报告",
				"高校 毕业生 签约率 2024",
				"大学生 就业趋势 2024 2025",
				"高校毕业生就业质量报告 2024",
				"本科生就业数据 2024年",
			},
			QueryLimit:       5,
			MaxPages:         5,
			ResultsPerPage:   10,
			PagesToScrape:    30,
			MinContentLength: 1000,
			PageDelay:        DurationOf(time.Second),
			ScrapeDelay:      DurationOf(2 * time.Second),
			QueryDelay:       DurationOf(3 * time.Second),
		},
		Fetcher: FetcherConfig{Timeout: DurationOf(30 * time.Second)},
		Generator: GeneratorConfig{
			Provider:     ProviderOpenAI,
			Endpoint:     "http://localhost:11434/v1/chat/completions",
			Model:        "qwen2.5:7b",
			SystemPrompt: "你是一个专业的就业数据分析助手，负责生成高质量的高校就业分析报告。",
			Temperature:  0.7,
			Timeout:      DurationOf(5 * time.Minute),
		},
		Review: ReviewConfig{MaxRevisions: 5},
		Output: OutputConfig{Path: "reports/2024-2025高校本科生就业情况分析报告.md"},
	}
}
