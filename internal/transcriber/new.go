package transcriber

import (
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"google.golang.org/genai"
)

const defaultPollInterval = 2 * time.Second

type implTranscriber struct {
	files        FileService
	models       ContentGenerator
	model        string
	prompt       string
	pollInterval time.Duration
	logger       logger.Logger
}

// New creates a Transcriber on top of an existing genai client.
func New(client *genai.Client, model, prompt string, log logger.Logger) Transcriber {
	return newTranscriber(client.Files, client.Models, model, prompt, log)
}

func newTranscriber(files FileService, models ContentGenerator, model, prompt string, log logger.Logger) *implTranscriber {
	return &implTranscriber{
		files:        files,
		models:       models,
		model:        model,
		prompt:       prompt,
		pollInterval: defaultPollInterval,
		logger:       log,
	}
}
