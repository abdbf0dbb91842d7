package report

import (
	"strings"
)

const minSegments = 2

var bulletMarkers = []string{"- ", "* ", "• ", "•"}

// Segments splits text on empty lines. Segments are trimmed and empty ones
// dropped, so runs of blank lines count as a single separator.
func Segments(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var segments []string
	for _, seg := range strings.Split(text, "\n\n") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Parse builds a Document from summary text of the form
//
//	Summary: ...
//
//	What Should Be Done:
//	- ...
//
//	Upcoming Tasks and Deadlines:
//	- ...
//
// The deadlines segment is optional. Fewer than two segments yields a
// *ParseError. Segments after the third are ignored.
func Parse(text string) (*Document, error) {
	segments := Segments(text)
	if len(segments) < minSegments {
		return nil, &ParseError{Segments: len(segments), Want: minSegments}
	}

	doc := &Document{Title: DefaultTitle}

	doc.Sections = append(doc.Sections, Section{
		Heading: SummaryHeading,
		Kind:    KindParagraph,
		Text:    cleanInline(stripLabel(segments[0], SummaryHeading)),
	})

	doc.Sections = append(doc.Sections, Section{
		Heading: ActionsHeading,
		Kind:    KindBullets,
		Items:   ListItems(segments[1], ActionsHeading),
	})

	if len(segments) > 2 {
		doc.Sections = append(doc.Sections, Section{
			Heading: DeadlinesHeading,
			Kind:    KindLines,
			Items:   ListItems(segments[2], DeadlinesHeading),
		})
	}

	return doc, nil
}

// ListItems strips the heading label from segment and returns one entry per
// non-blank line, trimmed and without its list marker.
func ListItems(segment, heading string) []string {
	body := stripLabel(strings.ReplaceAll(segment, "\r\n", "\n"), heading)

	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = cleanInline(stripMarker(line))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// stripLabel removes a leading "Heading:" (optionally wrapped in ** or
// prefixed with #) from s.
func stripLabel(s, heading string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimLeft(s, "#"))

	label := heading + ":"
	for _, candidate := range []string{"**" + label + "**", "**" + heading + "**:", label} {
		if len(s) >= len(candidate) && strings.EqualFold(s[:len(candidate)], candidate) {
			return strings.TrimSpace(s[len(candidate):])
		}
	}
	return s
}

// stripMarker removes one list marker. A bare "-" or "*" directly before
// the text counts, but "--" and "**" do not.
func stripMarker(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	if len(line) > 1 && (line[0] == '-' || line[0] == '*') && line[1] != line[0] {
		return strings.TrimSpace(line[1:])
	}
	return line
}

// cleanInline drops Markdown emphasis and code markers.
func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return strings.TrimSpace(s)
}
