package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/meeting-report/internal/chat"
	"github.com/nguyentantai21042004/meeting-report/internal/config"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/processor"
	"github.com/nguyentantai21042004/meeting-report/internal/spinner"
	"github.com/nguyentantai21042004/meeting-report/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-report/pkg/executor"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

const defaultConfigPath = "config.yaml"

var version = "dev"

type rootOptions struct {
	configPath string
	envFile    string
	output     string
	provider   string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "report <audio-file>",
		Short: "Transcribe a recording and render its summary as a PDF",
		Long: `report uploads an audio (or video) recording to Gemini, transcribes it,
summarizes the transcript and writes a report with a summary, the actions
that should be taken and any upcoming deadlines.

API keys are read from GEMINI_API_KEY and OPENAI_API_KEY, either in the
environment or in the env file.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "YAML config file, ignored if the default is absent")
	persistent.StringVar(&opts.envFile, "env-file", ".env", "env file holding the API keys")
	persistent.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file, .pdf or .docx (default "+config.DefaultOutput+")")
	flags.StringVar(&opts.provider, "provider", "", "summarizer provider: openai or gemini")

	cmd.AddCommand(newChatCommand(opts))
	return cmd
}

func newChatCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat with the Gemini model",
		Long: `chat opens a conversation with the configured Gemini model. Type a
message per line; "exit" or end of input ends the chat. Only GEMINI_API_KEY
is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}
}

func execute() error {
	return newRootCommand().Execute()
}

// loadConfig resolves file, env and flag settings, failing before any
// network call when credentials are missing.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(opts.envFile); err != nil {
		return nil, err
	}

	if opts.output != "" {
		cfg.Report.Output = opts.output
	}
	if opts.provider != "" {
		cfg.Summarizer.Provider = opts.provider
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions, inputPath string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	spin, log := newOutput(cfg)
	log.Debug(ctx, "Configuration loaded (provider=%s, output=%s)", cfg.Summarizer.Provider, cfg.Report.Output)

	genaiClient, err := newGenaiClient(ctx, cfg)
	if err != nil {
		return err
	}

	params := summarizer.Params{
		MaxTokens:   cfg.Summarizer.MaxTokens,
		Temperature: *cfg.Summarizer.Temperature,
	}

	var sum summarizer.Summarizer
	switch cfg.Summarizer.Provider {
	case config.ProviderGemini:
		params.Model = cfg.Gemini.Model
		sum = summarizer.NewGemini(genaiClient, params, log)
	default:
		oaCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			oaCfg.BaseURL = cfg.OpenAI.BaseURL
		}
		params.Model = cfg.OpenAI.Model
		sum = summarizer.NewOpenAI(openai.NewClientWithConfig(oaCfg), params, log)
	}

	tr := transcriber.New(genaiClient, cfg.Gemini.Model, cfg.Gemini.TranscriptPrompt, log)
	proc := processor.New(cfg, tr, sum, executor.New(), spin, log)

	res, err := proc.Process(ctx, inputPath, cfg.Report.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintln(out, res.Summary)
	fmt.Fprintf(out, "\nReport saved at: %s\n", res.OutputPath)
	return nil
}

// runChat needs only the Gemini key, so the summarizer provider is pinned
// to gemini before validation.
func runChat(cmd *cobra.Command, opts *rootOptions) error {
	chatOpts := *opts
	chatOpts.provider = config.ProviderGemini
	cfg, err := loadConfig(cmd, &chatOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	spin, log := newOutput(cfg)
	genaiClient, err := newGenaiClient(ctx, cfg)
	if err != nil {
		return err
	}

	session, err := chat.NewSession(ctx, genaiClient, cfg.Gemini.Model)
	if err != nil {
		return err
	}
	log.Debug(ctx, "Chat session started (model=%s)", cfg.Gemini.Model)

	return chat.New(session, spin, log).Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

// newOutput builds the stderr spinner and a logger that clears the
// spinner line before each entry.
func newOutput(cfg *config.Config) (*spinner.Spinner, logger.Logger) {
	spin := spinner.New(os.Stderr)
	return spin, logger.New(cfg.Logging.Level, cfg.Logging.Format, spin.Wrap(os.Stderr))
}

func newGenaiClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}
