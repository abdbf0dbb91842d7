// Package report turns the three-section summary text returned by the
// summarizer into a Document and renders it to PDF or DOCX.
package report

const (
	DefaultTitle = "Summary Report"

	SummaryHeading   = "Summary"
	ActionsHeading   = "What Should Be Done"
	DeadlinesHeading = "Upcoming Tasks and Deadlines"
)

// Kind tells a writer how to lay out a section body.
type Kind int

const (
	// KindParagraph is a flowing block of text.
	KindParagraph Kind = iota
	// KindBullets is a bulleted list.
	KindBullets
	// KindLines is one plain line per entry.
	KindLines
)

// Section is one heading with either paragraph text or list items.
type Section struct {
	Heading string
	Kind    Kind
	Text    string
	Items   []string
}

// Document is a parsed summary ready for rendering.
type Document struct {
	Title    string
	Sections []Section
}

// Section returns the section with the given heading, or nil.
func (d *Document) Section(heading string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Heading == heading {
			return &d.Sections[i]
		}
	}
	return nil
}
