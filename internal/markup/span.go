// Package markup converts assistant message text containing lightweight
// inline markup (bold, italic, inline code, list markers, status glyphs)
// into a structured sequence of renderable fragments. It is a pure,
// stateless transformation: each line is formatted independently and the
// same input always produces the same output.
package markup

import (
	"regexp"
	"sort"
)

// SpanKind identifies an inline formatting pattern.
type SpanKind int

const (
	SpanBold SpanKind = iota
	SpanItalic
	SpanCode
)

func (k SpanKind) String() string {
	switch k {
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	}
	return "unknown"
}

// Span is one detected markup occurrence within a line. Start and End are
// byte offsets into the line; End is exclusive and includes the closing
// delimiter. Text is the capture with delimiters stripped.
type Span struct {
	Start int
	End   int
	Kind  SpanKind
	Text  string
}

// Source reconstructs the span's original delimited text.
func (s Span) Source() string {
	switch s.Kind {
	case SpanBold:
		return "**" + s.Text + "**"
	case SpanCode:
		return "`" + s.Text + "`"
	default:
		return "*" + s.Text + "*"
	}
}

// The three inline patterns. Captures are lazy so adjacent occurrences on
// one line match separately, and an empty capture (delimiters with nothing
// between them) is valid. Delimiters cannot be escaped: a literal * inside
// a code span is indistinguishable from markup. Known limitation.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
	codePattern   = regexp.MustCompile("`(.*?)`")
)

// spanPatterns fixes the evaluation order. The order is observable: when
// spans of different kinds start at the same offset, the earlier kind wins
// overlap resolution.
var spanPatterns = []struct {
	kind SpanKind
	re   *regexp.Regexp
}{
	{SpanBold, boldPattern},
	{SpanItalic, italicPattern},
	{SpanCode, codePattern},
}

// tokenize collects every candidate span of all three kinds. Each kind is
// matched independently across the whole line, so candidates of different
// kinds may overlap; resolveOverlaps decides which survive.
func tokenize(line string) []Span {
	var spans []Span
	for _, p := range spanPatterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(line, -1) {
			spans = append(spans, Span{
				Start: m[0],
				End:   m[1],
				Kind:  p.kind,
				Text:  line[m[2]:m[3]],
			})
		}
	}
	return spans
}

// resolveOverlaps sorts candidates by start offset and drops any span that
// begins before the previous accepted span ended. The sort is stable, so
// equal starts keep tokenize's emission order (bold, italic, code). This
// is a greedy first-wins scan, not an optimal interval selection: on
// `**a*b*c**` the bold span is kept and the inner italics are dropped, and
// that tie-break is part of the observable output.
func resolveOverlaps(spans []Span) []Span {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	resolved := spans[:0]
	lastEnd := 0
	for _, s := range spans {
		if s.Start >= lastEnd {
			resolved = append(resolved, s)
			lastEnd = s.End
		}
	}
	return resolved
}
