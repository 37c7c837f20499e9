// Package format renders ordered caption segments as plain text, a
// structured record, or a browsable HTML document with collapsible
// timestamped sections. It is pure: no I/O, no failure modes on valid
// segment sequences.
package format

import (
	"fmt"
	"html"
	"strings"
)

// sectionWindowSecs is the paragraph boundary interval for the doc
// rendering. A segment whose start is at least this far past the current
// section's anchor opens a new section.
const sectionWindowSecs = 30.0

// previewRunes is how much of a section's text appears in its summary bar.
const previewRunes = 75

// DefaultDocTitle is used when the caller supplies no document title.
const DefaultDocTitle = "Transcript"

// Snippet is the narrow view of a caption segment the formatter needs.
// Both the live-fetch segment and the stored database row implement it,
// so either source can feed any rendering.
type Snippet interface {
	GetText() string
	GetStart() float64
	GetDuration() float64
}

// SegmentJSON is the wire shape of one segment in the structured rendering.
type SegmentJSON struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptJSON is the structured rendering: a pass-through of the raw
// ordered segments plus identifying context. No grouping is applied.
type TranscriptJSON struct {
	VideoID      string        `json:"video_id"`
	SegmentCount int           `json:"segment_count"`
	Segments     []SegmentJSON `json:"segments"`
}

// Text renders segments as plain text, one line per segment, ignoring
// timing entirely. No trailing newline is added.
func Text[S Snippet](segments []S) string {
	lines := make([]string, len(segments))
	for i, seg := range segments {
		lines[i] = seg.GetText()
	}
	return strings.Join(lines, "\n")
}

// JSON builds the structured rendering for a video's segments.
func JSON[S Snippet](videoID string, segments []S) *TranscriptJSON {
	out := &TranscriptJSON{
		VideoID:      videoID,
		SegmentCount: len(segments),
		Segments:     make([]SegmentJSON, len(segments)),
	}
	for i, seg := range segments {
		out.Segments[i] = SegmentJSON{
			Text:     seg.GetText(),
			Start:    seg.GetStart(),
			Duration: seg.GetDuration(),
		}
	}
	return out
}

// section is one time-windowed group of consecutive segments.
type section struct {
	anchorStart float64
	texts       []string
}

// groupSections applies the shared grouping algorithm: the first segment
// anchors a section at its own start; each later segment either joins the
// current section or, once 30 seconds past the anchor, flushes it and
// anchors a new one. Out-of-order starts are not validated; sections may
// overlap but grouping never fails.
func groupSections[S Snippet](segments []S) []section {
	var sections []section
	var current *section

	for _, seg := range segments {
		start := seg.GetStart()
		text := seg.GetText()

		switch {
		case current == nil:
			current = &section{anchorStart: start, texts: []string{text}}
		case start-current.anchorStart >= sectionWindowSecs:
			sections = append(sections, *current)
			current = &section{anchorStart: start, texts: []string{text}}
		default:
			current.texts = append(current.texts, text)
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// Timestamp converts a start offset in seconds to an MM:SS label.
// Minutes are not capped at 59: 3661s renders as "61:01".
func Timestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Doc renders segments as a complete HTML document with one collapsible
// block per section. The summary bar shows the section's anchor time as
// MM:SS plus a short preview of its text; the body holds the full section
// text. An empty segment sequence yields an empty string, not a shell
// document.
func Doc[S Snippet](segments []S, title string) string {
	if title == "" {
		title = DefaultDocTitle
	}

	sections := groupSections(segments)
	if len(sections) == 0 {
		return ""
	}

	blocks := make([]string, len(sections))
	for i, sec := range sections {
		blocks[i] = detailsBlock(Timestamp(sec.anchorStart), strings.Join(sec.texts, " "))
	}

	var doc strings.Builder
	doc.WriteString(strings.Replace(docHead, "{title}", html.EscapeString(title), 2))
	doc.WriteString(strings.Join(blocks, "\n\n"))
	doc.WriteString(docFoot)
	return doc.String()
}

// detailsBlock wraps one section in a <details>/<summary> panel. The
// preview is the first 75 runes of the body with an ellipsis when cut.
func detailsBlock(timestamp, body string) string {
	preview := body
	if runes := []rune(body); len(runes) > previewRunes {
		preview = string(runes[:previewRunes]) + "..."
	}
	return fmt.Sprintf("<details>\n"+
		"<summary><span class=\"timestamp\">%s</span> %s</summary>\n"+
		"<div class=\"panel-content\">%s</div>\n"+
		"</details>",
		timestamp, html.EscapeString(preview), html.EscapeString(body))
}
