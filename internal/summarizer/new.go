package summarizer

import (
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

type openAISummarizer struct {
	client ChatClient
	params Params
	logger logger.Logger
}

// NewOpenAI creates a Summarizer backed by the chat completions API.
func NewOpenAI(client *openai.Client, params Params, log logger.Logger) Summarizer {
	return &openAISummarizer{client: client, params: params, logger: log}
}

type geminiSummarizer struct {
	models ContentGenerator
	params Params
	logger logger.Logger
}

// NewGemini creates a Summarizer backed by Gemini generateContent.
func NewGemini(client *genai.Client, params Params, log logger.Logger) Summarizer {
	return &geminiSummarizer{models: client.Models, params: params, logger: log}
}
