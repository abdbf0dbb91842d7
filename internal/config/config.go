package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOutput = "summary_report.pdf"

	DefaultTemperature float32 = 0.3
)

// ErrMissingAPIKey is wrapped by Validate when a required credential is unset.
var ErrMissingAPIKey = errors.New("missing API key")

type Config struct {
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Report     ReportConfig     `yaml:"report"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type GeminiConfig struct {
	APIKey           string `yaml:"-"`
	Model            string `yaml:"model"`
	TranscriptPrompt string `yaml:"transcript_prompt"`
	DeleteUploaded   bool   `yaml:"delete_uploaded"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type SummarizerConfig struct {
	Provider    string  `yaml:"provider"`
	MaxTokens   int     `yaml:"max_tokens"`
	// Temperature is a pointer so an explicit 0 is kept.
	Temperature *float32 `yaml:"temperature"`
}

type ReportConfig struct {
	Output   string  `yaml:"output"`
	Title    string  `yaml:"title"`
	PageSize string  `yaml:"page_size"`
	Margin   float64 `yaml:"margin"`
	Font     string  `yaml:"font"`
	FontFile string  `yaml:"font_file"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path. An empty path yields a zero Config
// that Validate fills with defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads envFile into the process environment when it exists and
// copies the API keys into c. Variables already set in the environment win.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	c.Gemini.APIKey = strings.TrimSpace(os.Getenv(EnvGeminiAPIKey))
	c.OpenAI.APIKey = strings.TrimSpace(os.Getenv(EnvOpenAIAPIKey))
	return nil
}

func (c *Config) Validate() error {
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAI
	}
	c.Summarizer.Provider = strings.ToLower(c.Summarizer.Provider)
	if c.Summarizer.Provider != ProviderOpenAI && c.Summarizer.Provider != ProviderGemini {
		return fmt.Errorf("summarizer.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Summarizer.Provider)
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf("%s is required: %w", EnvGeminiAPIKey, ErrMissingAPIKey)
	}
	if c.Summarizer.Provider == ProviderOpenAI && c.OpenAI.APIKey == "" {
		return fmt.Errorf("%s is required: %w", EnvOpenAIAPIKey, ErrMissingAPIKey)
	}

	if c.Summarizer.MaxTokens < 0 {
		return fmt.Errorf("summarizer.max_tokens must not be negative")
	}
	if t := c.Summarizer.Temperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("summarizer.temperature must be within [0, 2]")
	}
	if c.Report.Margin < 0 {
		return fmt.Errorf("report.margin must not be negative")
	}
	if c.Report.FontFile != "" {
		if _, err := os.Stat(c.Report.FontFile); err != nil {
			return fmt.Errorf("report.font_file: %w", err)
		}
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.Gemini.TranscriptPrompt == "" {
		c.Gemini.TranscriptPrompt = "Generate a transcript of the speech."
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Summarizer.MaxTokens == 0 {
		c.Summarizer.MaxTokens = 400
	}
	if c.Summarizer.Temperature == nil {
		t := DefaultTemperature
		c.Summarizer.Temperature = &t
	}
	if c.Report.Output == "" {
		c.Report.Output = DefaultOutput
	}
	if c.Report.Title == "" {
		c.Report.Title = "Summary Report"
	}
	if c.Report.PageSize == "" {
		c.Report.PageSize = "A4"
	}
	if c.Report.Margin == 0 {
		c.Report.Margin = 30
	}
	if c.Report.Font == "" {
		c.Report.Font = "Helvetica"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
