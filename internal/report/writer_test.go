package report

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestPDFRenderContent(t *testing.T) {
	w := NewPDFWriter(Options{})
	w.compress = false

	data, err := w.Render(mustParse(t, fullSummary))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", data[:min(len(data), 16)])
	}
	for _, want := range []string{
		"Summary Report",
		"Summary:",
		"Team discussed X.",
		"What Should Be Done:",
		"Task A",
		"Task B",
		"Upcoming Tasks and Deadlines:",
		"Task A: Jan 1",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("PDF missing %q", want)
		}
	}
}

func TestPDFRenderOmitsDeadlines(t *testing.T) {
	w := NewPDFWriter(Options{})
	w.compress = false

	data, err := w.Render(mustParse(t, "Summary: Quick.\n\nWhat Should Be Done:\n- One"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte(DeadlinesHeading)) {
		t.Error("PDF contains the deadlines heading for a two-segment summary")
	}
}

func TestPDFWriteIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary_report.pdf")
	doc := mustParse(t, fullSummary)
	w := NewPDFWriter(Options{PageSize: "A4", Margin: 30})

	if err := w.Write(doc, path); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Write(doc, path); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("rendering the same document twice produced different bytes")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want only the report", len(entries))
	}
}

func TestPDFWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := NewPDFWriter(Options{}).Write(mustParse(t, fullSummary), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("existing file was not replaced")
	}
}

func TestPDFWriteBadPageSizeLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	w := NewPDFWriter(Options{PageSize: "Napkin"})

	if err := w.Write(mustParse(t, fullSummary), path); err == nil {
		t.Fatal("Write() with unknown page size should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output file exists after failed write: %v", err)
	}
}

func TestPDFRenderLatin1Text(t *testing.T) {
	w := NewPDFWriter(Options{})
	w.compress = false

	data, err := w.Render(mustParse(t, "Summary: Café menu – €5 budget.\n\nWhat Should Be Done:\n- Order crème brûlée"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Windows-1252 bytes for é and the bullet glyph.
	for _, want := range []string{"Caf\xe9 menu", "\x95", "cr\xe8me br\xfbl\xe9e"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("PDF missing %q", want)
		}
	}
}

func TestPDFWriteUnencodableTextFails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"vietnamese", "Summary: Cuộc họp bàn về ngân sách.\n\nWhat Should Be Done:\n- Gửi báo cáo", 'ộ'},
		{"cjk item", "Summary: Budget.\n\nWhat Should Be Done:\n- 会议记录", '会'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.pdf")
			err := NewPDFWriter(Options{}).Write(mustParse(t, tt.text), path)
			if !errors.Is(err, ErrUnencodableText) {
				t.Fatalf("Write() error = %v, want ErrUnencodableText", err)
			}
			var encErr *EncodingError
			if !errors.As(err, &encErr) || encErr.Rune != tt.want {
				t.Errorf("EncodingError = %+v, want rune %q", encErr, tt.want)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("output file exists after failed write: %v", err)
			}
		})
	}
}

func TestPDFRenderWithFontFile(t *testing.T) {
	const font = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	if _, err := os.Stat(font); err != nil {
		t.Skipf("font not available: %v", err)
	}

	w := NewPDFWriter(Options{FontFile: font})
	data, err := w.Render(mustParse(t, "Summary: Cuộc họp bàn về ngân sách.\n\nWhat Should Be Done:\n- Gửi báo cáo"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
	if !bytes.Contains(data, []byte("DejaVuSans")) {
		t.Error("PDF does not embed the configured font")
	}
}

func TestPDFRenderMissingFontFile(t *testing.T) {
	w := NewPDFWriter(Options{FontFile: filepath.Join(t.TempDir(), "missing.ttf")})
	if _, err := w.Render(mustParse(t, fullSummary)); err == nil {
		t.Error("Render() with missing font file should fail")
	}
}

func TestDocxWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")

	if err := NewDocxWriter(Options{}).Write(mustParse(t, fullSummary), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	defer zr.Close()

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		body = string(b)
	}

	for _, want := range []string{"Summary Report", "Team discussed X.", "• Task B", "• Task A: Jan 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestWriterFor(t *testing.T) {
	if _, ok := WriterFor("report.DOCX", Options{}).(*DocxWriter); !ok {
		t.Error("WriterFor(.DOCX) is not a DocxWriter")
	}
	if _, ok := WriterFor("summary_report.pdf", Options{}).(*PDFWriter); !ok {
		t.Error("WriterFor(.pdf) is not a PDFWriter")
	}
	if _, ok := WriterFor("report", Options{}).(*PDFWriter); !ok {
		t.Error("WriterFor(no ext) is not a PDFWriter")
	}
}
