package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	titleSize   = 20
	headingSize = 14
	bodySize    = 11
	lineHeight  = 15
	sectionGap  = 12
	bulletWidth = 14
)

// fixedDate is stamped into the PDF info dictionary so equal documents
// produce equal bytes.
var fixedDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFWriter lays a Document out as a single-column PDF.
type PDFWriter struct {
	opts     Options
	compress bool
}

// NewPDFWriter fills unset options with A4, 30pt margins and Helvetica.
func NewPDFWriter(opts Options) *PDFWriter {
	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	if opts.Margin == 0 {
		opts.Margin = 30
	}
	if opts.Font == "" {
		opts.Font = "Helvetica"
	}
	return &PDFWriter{opts: opts, compress: true}
}

// Render lays doc out and returns the PDF bytes.
func (w *PDFWriter) Render(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", w.opts.PageSize, "")
	pdf.SetMargins(w.opts.Margin, w.opts.Margin, w.opts.Margin)
	pdf.SetAutoPageBreak(true, w.opts.Margin)
	pdf.SetCompression(w.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(fixedDate)
	pdf.SetModificationDate(fixedDate)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("meeting-report", true)

	font, bullet := w.opts.Font, "\x95"
	if w.opts.FontFile != "" {
		data, err := os.ReadFile(w.opts.FontFile)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		font, bullet = fontFamily(w.opts.FontFile), "•"
		pdf.AddUTF8FontFromBytes(font, "", data)
		pdf.AddUTF8FontFromBytes(font, "B", data)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load font %s: %w", w.opts.FontFile, err)
		}
	} else {
		encoded, err := encodeDocument(doc)
		if err != nil {
			return nil, err
		}
		doc = encoded
	}

	pdf.AddPage()

	pdf.SetFont(font, "B", titleSize)
	pdf.CellFormat(0, titleSize+6, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(sectionGap)

	for _, sec := range doc.Sections {
		pdf.SetFont(font, "B", headingSize)
		pdf.CellFormat(0, headingSize+6, sec.Heading+":", "", 1, "L", false, 0, "")

		pdf.SetFont(font, "", bodySize)
		switch sec.Kind {
		case KindParagraph:
			pdf.MultiCell(0, lineHeight, sec.Text, "", "L", false)
		case KindBullets:
			for _, item := range sec.Items {
				pdf.CellFormat(bulletWidth, lineHeight, bullet, "", 0, "C", false, 0, "")
				pdf.MultiCell(0, lineHeight, item, "", "L", false)
			}
		case KindLines:
			for _, item := range sec.Items {
				pdf.MultiCell(0, lineHeight, bullet+" "+item, "", "L", false)
			}
		}
		pdf.Ln(sectionGap)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("output pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders doc and replaces path with the result.
func (w *PDFWriter) Write(doc *Document, path string) error {
	data, err := w.Render(doc)
	if err != nil {
		return err
	}
	return replaceFile(path, data)
}

// fontFamily names an embedded font after its file.
func fontFamily(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// encodeDocument converts every string in doc to Windows-1252, the encoding
// of the core PDF fonts. Text outside that code page is an *EncodingError.
func encodeDocument(doc *Document) (*Document, error) {
	enc := func(s string) (string, error) {
		out, err := charmap.Windows1252.NewEncoder().String(s)
		if err != nil {
			return "", newEncodingError(s)
		}
		return out, nil
	}

	title, err := enc(doc.Title)
	if err != nil {
		return nil, err
	}
	out := &Document{Title: title, Sections: make([]Section, 0, len(doc.Sections))}
	for _, sec := range doc.Sections {
		heading, err := enc(sec.Heading)
		if err != nil {
			return nil, err
		}
		text, err := enc(sec.Text)
		if err != nil {
			return nil, err
		}
		items := make([]string, 0, len(sec.Items))
		for _, item := range sec.Items {
			e, err := enc(item)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		}
		out.Sections = append(out.Sections, Section{Heading: heading, Kind: sec.Kind, Text: text, Items: items})
	}
	return out, nil
}

func newEncodingError(s string) *EncodingError {
	e := charmap.Windows1252.NewEncoder()
	for _, r := range s {
		if _, err := e.String(string(r)); err != nil {
			return &EncodingError{Text: s, Rune: r}
		}
	}
	return &EncodingError{Text: s, Rune: '\uFFFD'}
}
