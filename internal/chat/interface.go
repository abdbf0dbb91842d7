package chat

import (
	"context"
	"io"

	"google.golang.org/genai"
)

// Session is the subset of *genai.Chat used here.
type Session interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Chat runs an interactive conversation over a line-oriented reader.
type Chat interface {
	Run(ctx context.Context, in io.Reader, out io.Writer) error
}
