package summarizer

import "context"

// Summarizer turns a transcript into the three-section summary text.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
