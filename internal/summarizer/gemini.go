package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ContentGenerator is the subset of *genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Summarize sends the transcript to Gemini with the instruction as the
// system prompt.
func (s *geminiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		MaxOutputTokens:   int32(s.params.MaxTokens),
		Temperature:       genai.Ptr(s.params.Temperature),
	}

	result, err := s.models.GenerateContent(ctx, s.params.Model, genai.Text(userMessage(transcript)), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" && !part.Thought {
				text += part.Text
			}
		}
		if cand := result.Candidates[0]; cand.FinishReason == genai.FinishReasonMaxTokens {
			s.logger.Warn(ctx, "Summary hit max_tokens=%d and may be truncated", s.params.MaxTokens)
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
	}

	return "", ErrEmptySummary
}
