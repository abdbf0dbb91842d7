package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/report"
	"github.com/nguyentantai21042004/meeting-report/internal/spinner"
	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
)

// Process runs upload, transcription, summarization and rendering in
// order. Any failure aborts the run before the report is written.
func (p *implProcessor) Process(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting report for: %s", inputPath)

	// Step 1: Make sure we have an audio file
	audioPath, cleanup, err := p.prepareAudio(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("prepare audio: %w", err)
	}
	defer cleanup()

	// Step 2: Upload
	p.logger.Info(ctx, "Uploading the file...")
	asset, err := spinner.Run(p.spinner, "Uploading...", func() (*transcriber.Asset, error) {
		return p.transcriber.Upload(ctx, audioPath)
	})
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	p.logger.Info(ctx, "Uploaded file: %s (%s)", asset.Name, asset.MIMEType)

	// Step 3: Transcribe
	p.logger.Info(ctx, "Generating transcript...")
	transcript, err := spinner.Run(p.spinner, "Processing transcription...", func() (string, error) {
		return p.transcriber.Transcribe(ctx, asset)
	})
	if p.cfg.Gemini.DeleteUploaded {
		p.deleteUploaded(ctx, asset)
	}
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Debug(ctx, "Transcript has %d characters", len(transcript))

	// Step 4: Summarize
	p.logger.Info(ctx, "Summarizing the transcript with %s...", p.cfg.Summarizer.Provider)
	summary, err := spinner.Run(p.spinner, "Summarizing...", func() (string, error) {
		return p.summarizer.Summarize(ctx, transcript)
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	// Step 5: Parse and render
	doc, err := report.Parse(summary)
	if err != nil {
		p.logger.Debug(ctx, "Unparseable summary:\n%s", summary)
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	if p.cfg.Report.Title != "" {
		doc.Title = p.cfg.Report.Title
	}

	p.logger.Info(ctx, "Generating report file...")
	if err := p.writerFor(outputPath).Write(doc, outputPath); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "Report saved at: %s (%s)", outputPath, duration.Round(time.Millisecond))

	return &Result{
		InputPath:       inputPath,
		OutputPath:      outputPath,
		TranscriptChars: len(transcript),
		Summary:         summary,
		Document:        doc,
		Duration:        duration,
	}, nil
}
