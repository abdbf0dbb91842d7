package report

import (
	"errors"
	"fmt"
)

// ErrMalformedSummary matches every ParseError via errors.Is.
var ErrMalformedSummary = errors.New("malformed summary")

// ErrUnencodableText matches every EncodingError via errors.Is.
var ErrUnencodableText = errors.New("text not representable in the PDF font")

// ParseError reports summary text that does not have enough blank-line
// separated segments to fill the required sections.
type ParseError struct {
	Segments int
	Want     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("summary has %d segment(s), need at least %d (%q and %q separated by a blank line)",
		e.Segments, e.Want, SummaryHeading, ActionsHeading)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedSummary
}

// EncodingError reports text the built-in PDF fonts cannot draw. Setting
// report.font_file to a TrueType font with the needed glyphs avoids it.
type EncodingError struct {
	Text string
	Rune rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) in %q has no glyph in the built-in PDF fonts; set report.font_file to a Unicode TrueType font",
		e.Rune, e.Rune, e.Text)
}

func (e *EncodingError) Unwrap() error {
	return ErrUnencodableText
}
