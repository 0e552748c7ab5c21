package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fragmentSource(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Source())
	}
	return b.String()
}

func TestFormatLineClassification(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantKind    LineKind
		wantMarker  string
		wantContent string
	}{
		{
			name:        "plain",
			line:        "just some text",
			wantKind:    LinePlain,
			wantContent: "just some text",
		},
		{
			name:        "dash bullet normalizes marker",
			line:        "- item one",
			wantKind:    LineBullet,
			wantMarker:  "•",
			wantContent: "item one",
		},
		{
			name:        "glyph bullet",
			line:        "• item two",
			wantKind:    LineBullet,
			wantMarker:  "•",
			wantContent: "item two",
		},
		{
			name:        "indented bullet",
			line:        "  - indented",
			wantKind:    LineBullet,
			wantMarker:  "•",
			wantContent: "indented",
		},
		{
			name:        "only leading marker is stripped",
			line:        "- first - second",
			wantKind:    LineBullet,
			wantMarker:  "•",
			wantContent: "first - second",
		},
		{
			name:        "numbered keeps original number",
			line:        "12. twelfth step",
			wantKind:    LineNumbered,
			wantMarker:  "12.",
			wantContent: "twelfth step",
		},
		{
			name:        "numbered with bold content",
			line:        "1. **first** item",
			wantKind:    LineNumbered,
			wantMarker:  "1.",
			wantContent: "**first** item",
		},
		{
			name:        "status line keeps full content",
			line:        "🔴 Central line **suspended**",
			wantKind:    LineStatus,
			wantContent: "🔴 Central line **suspended**",
		},
		{
			name:        "bullet wins over status glyph",
			line:        "- 🚨 siren in text",
			wantKind:    LineBullet,
			wantMarker:  "•",
			wantContent: "🚨 siren in text",
		},
		{
			name:        "number mid-line stays plain",
			line:        "wait 5. then go",
			wantKind:    LinePlain,
			wantContent: "wait 5. then go",
		},
		{
			name:        "empty line",
			line:        "",
			wantKind:    LinePlain,
			wantContent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLine(tt.line)
			if got.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Marker != tt.wantMarker {
				t.Errorf("marker = %q, want %q", got.Marker, tt.wantMarker)
			}
			if got.Content != tt.wantContent {
				t.Errorf("content = %q, want %q", got.Content, tt.wantContent)
			}
		})
	}
}

func TestFormatLineFragments(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Fragment
	}{
		{
			name: "bold inside list item resolved over stripped content",
			line: "1. **first** item",
			want: []Fragment{
				{Span: &Span{Start: 0, End: 9, Kind: SpanBold, Text: "first"}},
				{Literal: " item"},
			},
		},
		{
			name: "status line keeps bold span",
			line: "🔴 **closed**",
			want: []Fragment{
				{Literal: "🔴 "},
				{Span: &Span{Start: 5, End: 15, Kind: SpanBold, Text: "closed"}},
			},
		},
		{
			name: "unterminated bold resolves as empty italic plus literal",
			line: "**no closer",
			want: []Fragment{
				{Span: &Span{Start: 0, End: 2, Kind: SpanItalic, Text: ""}},
				{Literal: "no closer"},
			},
		},
		{
			name: "bare bullet marker yields no fragments",
			line: "- ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLine(tt.line)
			if diff := cmp.Diff(tt.want, got.Fragments); diff != "" {
				t.Errorf("FormatLine(%q) fragments mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestFormatLineRoundTrip(t *testing.T) {
	// Re-attaching delimiters to formatted fragments and concatenating in
	// order must reproduce the marker-stripped content exactly.
	lines := []string{
		"plain text with no markup",
		"**bold** then *italic* then `code`",
		"- bullet with **bold** tail",
		"7. numbered `cmd` step",
		"🟡 partial **closure** on *district* line",
		"**a*b*c**",
		"**no closer",
		"edge `` empty `` captures",
		"",
		"   leading and trailing   ",
	}

	for _, line := range lines {
		got := FormatLine(line)
		if src := fragmentSource(got.Fragments); src != got.Content {
			t.Errorf("round-trip failed for %q: fragments %q != content %q", line, src, got.Content)
		}
	}
}

func TestFormatLineIdempotent(t *testing.T) {
	lines := []string{
		"- item with **bold**",
		"🚨 alert *now*",
		"3. `code` step",
		"plain",
	}
	for _, line := range lines {
		first := FormatLine(line)
		second := FormatLine(line)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("FormatLine(%q) not idempotent (-first +second):\n%s", line, diff)
		}
	}
}

func TestFormatSplitsLines(t *testing.T) {
	lines := Format("intro\n- one\n- two\n\n✅ done")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	wantKinds := []LineKind{LinePlain, LineBullet, LineBullet, LinePlain, LineStatus}
	for i, want := range wantKinds {
		if lines[i].Kind != want {
			t.Errorf("line %d kind = %v, want %v", i, lines[i].Kind, want)
		}
	}
	if len(lines[3].Fragments) != 0 {
		t.Errorf("blank line should have no fragments, got %+v", lines[3].Fragments)
	}
}
