package processor

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/report"
)

// ErrUnsupportedInput is returned for inputs that are neither audio nor a
// video container ffmpeg can extract audio from.
var ErrUnsupportedInput = errors.New("unsupported input file")

// Processor runs one recording through upload, transcription,
// summarization and rendering.
type Processor interface {
	Process(ctx context.Context, inputPath, outputPath string) (*Result, error)
}

// Result describes one completed Process run.
type Result struct {
	InputPath       string
	OutputPath      string
	TranscriptChars int
	Summary         string
	Document        *report.Document
	Duration        time.Duration
}
