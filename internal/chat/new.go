package chat

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/spinner"
	"google.golang.org/genai"
)

const (
	greeting = "Hello"
	welcome  = "Great to meet you. What would you like to know?"
)

type implChat struct {
	session Session
	spinner *spinner.Spinner
	logger  logger.Logger
}

// New creates a Chat over session.
func New(session Session, spin *spinner.Spinner, log logger.Logger) Chat {
	return &implChat{
		session: session,
		spinner: spin,
		logger:  log,
	}
}

// NewSession starts a Gemini chat seeded with a greeting exchange.
func NewSession(ctx context.Context, client *genai.Client, model string) (Session, error) {
	session, err := client.Chats.Create(ctx, model, nil, seedHistory())
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return session, nil
}

func seedHistory() []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(greeting, genai.RoleUser),
		genai.NewContentFromText(welcome, genai.RoleModel),
	}
}
