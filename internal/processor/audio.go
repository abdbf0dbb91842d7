package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
)

var videoFormats = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv"}

func isVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range videoFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// prepareAudio returns a path Gemini can take as audio. Video inputs get
// their audio track extracted into a temp dir that cleanup removes.
func (p *implProcessor) prepareAudio(ctx context.Context, inputPath string) (string, func(), error) {
	noop := func() {}

	info, err := os.Stat(inputPath)
	if err != nil {
		return "", noop, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return "", noop, fmt.Errorf("%s is a directory: %w", inputPath, ErrUnsupportedInput)
	}

	if transcriber.IsAudioFile(inputPath) {
		return inputPath, noop, nil
	}
	if !isVideoFile(inputPath) {
		return "", noop, fmt.Errorf("%s: %w", filepath.Ext(inputPath), ErrUnsupportedInput)
	}

	if _, err := p.executor.LookPath(p.cfg.FFmpeg.BinaryPath); err != nil {
		return "", noop, fmt.Errorf("video input needs ffmpeg: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "meeting-report-*")
	if err != nil {
		return "", noop, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { p.cleanupTempDir(ctx, tempDir) }

	audioPath, err := p.extractAudio(ctx, inputPath, tempDir)
	if err != nil {
		cleanup()
		return "", noop, err
	}
	return audioPath, cleanup, nil
}

// extractAudio extracts the audio track from a video file as 16kHz mono WAV.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath, dir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(dir, base+".wav")

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
