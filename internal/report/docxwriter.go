package report

import (
	"fmt"
	"os"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont      = "Times New Roman"
	docxTitleSize = 16
	docxHeadSize  = 14
	docxBodySize  = 12
)

// DocxWriter renders a Document as a Word file.
type DocxWriter struct {
	font string
}

// NewDocxWriter ignores page options; Word applies its own page setup.
func NewDocxWriter(opts Options) *DocxWriter {
	font := docxFont
	if opts.Font != "" && opts.Font != "Helvetica" {
		font = opts.Font
	}
	return &DocxWriter{font: font}
}

// Write builds a .docx with the same structure as the PDF and replaces
// path with it.
func (w *DocxWriter) Write(doc *Document, path string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new docx: %w", err)
	}

	w.addRun(d.AddParagraph(""), doc.Title, true, docxTitleSize)
	d.AddParagraph("")

	for _, sec := range doc.Sections {
		w.addRun(d.AddParagraph(""), sec.Heading+":", true, docxHeadSize)

		switch sec.Kind {
		case KindParagraph:
			w.addRun(d.AddParagraph(""), sec.Text, false, docxBodySize)
		case KindBullets, KindLines:
			for _, item := range sec.Items {
				w.addRun(d.AddParagraph(""), "• "+item, false, docxBodySize)
			}
		}
		d.AddParagraph("")
	}

	tmp, err := createTemp(path)
	if err != nil {
		return err
	}
	if err := d.SaveTo(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save docx: %w", err)
	}
	return commit(tmp, path)
}

func (w *DocxWriter) addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(w.font).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
