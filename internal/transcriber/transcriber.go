package transcriber

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"
)

var audioMIMETypes = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".aiff": "audio/aiff",
	".aif":  "audio/aiff",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
}

// ErrEmptyTranscript is returned when Gemini answers without any text.
var ErrEmptyTranscript = errors.New("empty transcript from Gemini")

// IsAudioFile reports whether path has an extension Gemini accepts as audio.
func IsAudioFile(path string) bool {
	_, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

func mimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := audioMIMETypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// Upload sends the file at path to the Files API and waits until Gemini
// has finished processing it.
func (t *implTranscriber) Upload(ctx context.Context, path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	file, err := t.files.Upload(ctx, f, &genai.UploadFileConfig{
		MIMEType:    mimeTypeFor(path),
		DisplayName: filepath.Base(path),
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	t.logger.Debug(ctx, "Uploaded %s as %s (state %s)", path, file.Name, file.State)

	file, err = t.waitActive(ctx, file)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Name:        file.Name,
		URI:         file.URI,
		MIMEType:    file.MIMEType,
		DisplayName: file.DisplayName,
	}, nil
}

func (t *implTranscriber) waitActive(ctx context.Context, file *genai.File) (*genai.File, error) {
	for file.State == genai.FileStateProcessing {
		timer := time.NewTimer(t.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		next, err := t.files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("get file %s: %w", file.Name, err)
		}
		file = next
	}

	if file.State == genai.FileStateFailed {
		msg := "unknown error"
		if file.Error != nil && file.Error.Message != "" {
			msg = file.Error.Message
		}
		return nil, fmt.Errorf("file %s failed processing: %s", file.Name, msg)
	}
	return file, nil
}

// Transcribe asks the model for a transcript of the uploaded asset.
func (t *implTranscriber) Transcribe(ctx context.Context, asset *Asset) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(t.prompt),
		genai.NewPartFromURI(asset.URI, asset.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := t.models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(result)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

// Delete removes the uploaded asset from the Files API.
func (t *implTranscriber) Delete(ctx context.Context, asset *Asset) error {
	if _, err := t.files.Delete(ctx, asset.Name, nil); err != nil {
		return fmt.Errorf("delete file %s: %w", asset.Name, err)
	}
	return nil
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && !part.Thought && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
