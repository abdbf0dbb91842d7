package transcriber

import (
	"context"
	"io"

	"google.golang.org/genai"
)

// Asset is a file already uploaded to the Gemini Files API.
type Asset struct {
	Name        string
	URI         string
	MIMEType    string
	DisplayName string
}

// Transcriber uploads audio and turns it into transcript text.
type Transcriber interface {
	Upload(ctx context.Context, path string) (*Asset, error)
	Transcribe(ctx context.Context, asset *Asset) (string, error)
	Delete(ctx context.Context, asset *Asset) error
}

// FileService is the subset of *genai.Files used here.
type FileService interface {
	Upload(ctx context.Context, r io.Reader, config *genai.UploadFileConfig) (*genai.File, error)
	Get(ctx context.Context, name string, config *genai.GetFileConfig) (*genai.File, error)
	Delete(ctx context.Context, name string, config *genai.DeleteFileConfig) (*genai.DeleteFileResponse, error)
}

// ContentGenerator is the subset of *genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}
