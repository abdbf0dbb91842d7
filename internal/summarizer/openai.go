package summarizer

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the subset of *openai.Client used here.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Summarize sends the transcript with the fixed system instruction and
// returns the first choice. Errors are returned as-is; nothing is retried.
func (s *openAISummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.params.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userMessage(transcript)},
		},
		MaxTokens:   s.params.MaxTokens,
		Temperature: requestTemperature(s.params.Temperature),
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptySummary
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonLength {
		s.logger.Warn(ctx, "Summary hit max_tokens=%d and may be truncated", s.params.MaxTokens)
	}

	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		return "", ErrEmptySummary
	}
	return text, nil
}

// requestTemperature maps 0 to the smallest positive float32. go-openai
// omits a zero Temperature from the request, which the API reads as 1.
func requestTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
