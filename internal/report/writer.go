package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer renders a Document to path, replacing any existing file. A failed
// Write leaves no file behind.
type Writer interface {
	Write(doc *Document, path string) error
}

// Options controls page layout.
type Options struct {
	PageSize string
	Margin   float64
	Font     string
	// FontFile, when set, embeds a TrueType font for PDF output so text
	// outside Windows-1252 renders.
	FontFile string
}

// WriterFor picks a Writer from the output extension: ".docx" gets a Word
// document, anything else a PDF.
func WriterFor(path string, opts Options) Writer {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return NewDocxWriter(opts)
	}
	return NewPDFWriter(opts)
}

// createTemp creates an empty temp file next to dest and returns its path.
func createTemp(dest string) (string, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-report-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// commit moves tmp over dest, removing tmp on failure.
func commit(tmp, dest string) error {
	_ = os.Chmod(tmp, 0644)
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", dest, err)
	}
	return nil
}

// replaceFile writes data to dest through a temp file in the same directory.
func replaceFile(dest string, data []byte) error {
	tmp, err := createTemp(dest)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	return commit(tmp, dest)
}
