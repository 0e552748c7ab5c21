package markup

import (
	"regexp"
	"strings"
)

// LineKind classifies a formatted line.
type LineKind int

const (
	LinePlain LineKind = iota
	LineBullet
	LineNumbered
	LineStatus
)

func (k LineKind) String() string {
	switch k {
	case LineBullet:
		return "bullet"
	case LineNumbered:
		return "numbered"
	case LineStatus:
		return "status"
	}
	return "plain"
}

// Fragment is one unit of a formatted line: either a literal run of text
// or a resolved formatting span. Exactly one of Literal and Span is set.
type Fragment struct {
	Literal string
	Span    *Span
}

// Source returns the fragment's original source text, re-attaching
// delimiters for formatted fragments.
func (f Fragment) Source() string {
	if f.Span != nil {
		return f.Span.Source()
	}
	return f.Literal
}

// Line is the formatting result for one physical line of a message.
// Content is the text the fragments were resolved over: the original line,
// or the marker-stripped remainder for list items. Results are computed
// fresh on every call and are not cached.
type Line struct {
	Kind      LineKind
	Marker    string
	Content   string
	Fragments []Fragment
}

// BulletMarker is the glyph rendered for bullet items regardless of which
// source character (• or -) introduced them.
const BulletMarker = "•"

var (
	bulletStrip   = regexp.MustCompile(`^\s*[•\-]\s*`)
	numberedLead  = regexp.MustCompile(`^\d+\.`)
	numberedStrip = regexp.MustCompile(`^\s*\d+\.\s*`)
)

// statusGlyphs are the alert markers whose presence anywhere in a line
// tags it as a status line.
var statusGlyphs = []string{"🔴", "🟡", "🟢", "⚠️", "🚨", "✅"}

// Format splits a message body on line breaks and formats each line
// independently, preserving input order.
func Format(content string) []Line {
	raw := strings.Split(content, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = FormatLine(l)
	}
	return lines
}

// FormatLine classifies one line and resolves its formatting spans. It is
// total over all string inputs: malformed markup degrades to literal text
// and no input produces an error.
//
// Classification order is fixed and significant: bullet, numbered, status,
// plain. List checks win over status, status over plain. For list items
// the spans are resolved over the marker-stripped content, so markup never
// leaks into a marker prefix. For status lines nothing is stripped; the
// status tag is an additive wrapper over the fully resolved line.
func FormatLine(line string) Line {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, BulletMarker) || strings.HasPrefix(trimmed, "-") {
		// Anchored replace strips only the leading marker, never bullets
		// appearing later in the text.
		content := bulletStrip.ReplaceAllString(line, "")
		return Line{
			Kind:      LineBullet,
			Marker:    BulletMarker,
			Content:   content,
			Fragments: assemble(content),
		}
	}

	if marker := numberedLead.FindString(trimmed); marker != "" {
		// The captured number is preserved as-is; items are not renumbered.
		content := numberedStrip.ReplaceAllString(line, "")
		return Line{
			Kind:      LineNumbered,
			Marker:    marker,
			Content:   content,
			Fragments: assemble(content),
		}
	}

	if containsStatusGlyph(line) {
		return Line{Kind: LineStatus, Content: line, Fragments: assemble(line)}
	}

	return Line{Kind: LinePlain, Content: line, Fragments: assemble(line)}
}

func containsStatusGlyph(line string) bool {
	for _, g := range statusGlyphs {
		if strings.Contains(line, g) {
			return true
		}
	}
	return false
}

// assemble stitches literal fragments and resolved spans into one ordered
// sequence. Concatenating every fragment's Source in order reconstructs
// text exactly. Empty literals between adjacent spans are skipped; an
// empty input yields no fragments.
func assemble(text string) []Fragment {
	spans := resolveOverlaps(tokenize(text))
	if len(spans) == 0 {
		if text == "" {
			return nil
		}
		return []Fragment{{Literal: text}}
	}

	var frags []Fragment
	pos := 0
	for i := range spans {
		s := spans[i]
		if s.Start > pos {
			frags = append(frags, Fragment{Literal: text[pos:s.Start]})
		}
		frags = append(frags, Fragment{Span: &s})
		pos = s.End
	}
	if pos < len(text) {
		frags = append(frags, Fragment{Literal: text[pos:]})
	}
	return frags
}
