package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/itszrong/evacplan/internal/markup"
)

// testStyles returns styles bound to a non-TTY writer so rendering is
// deterministic (no color escape sequences) across environments.
func testStyles(t *testing.T) *Styles {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "render")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return NewStyles(f)
}

func TestRenderLinePlain(t *testing.T) {
	s := testStyles(t)
	got := s.RenderLine(markup.FormatLine("hello world"))
	if got != "hello world" {
		t.Errorf("RenderLine = %q", got)
	}
}

func TestRenderLineBulletMarker(t *testing.T) {
	s := testStyles(t)
	got := s.RenderLine(markup.FormatLine("- item"))
	if !strings.HasPrefix(got, listIndent+"•") {
		t.Errorf("bullet line %q missing marker prefix", got)
	}
	if !strings.Contains(got, "item") {
		t.Errorf("bullet line %q missing content", got)
	}
}

func TestRenderLineNumberedKeepsNumber(t *testing.T) {
	s := testStyles(t)
	got := s.RenderLine(markup.FormatLine("7. seventh"))
	if !strings.Contains(got, "7.") {
		t.Errorf("numbered line %q lost its marker", got)
	}
}

func TestRenderLineStrippedFallback(t *testing.T) {
	s := testStyles(t)
	// A bare marker strips to nothing; the marker itself still renders.
	got := s.RenderLine(markup.FormatLine("- "))
	if !strings.Contains(got, "•") {
		t.Errorf("stripped bullet %q lost marker", got)
	}
}

func TestRenderLineSpanTextOnly(t *testing.T) {
	s := testStyles(t)
	// Delimiters must not leak into rendered output.
	got := s.RenderLine(markup.FormatLine("**bold** and `code`"))
	if strings.Contains(got, "*") || strings.Contains(got, "`") {
		t.Errorf("delimiters leaked into render: %q", got)
	}
	for _, want := range []string{"bold", " and ", "code"} {
		if !strings.Contains(got, want) {
			t.Errorf("render %q missing %q", got, want)
		}
	}
}

func TestRenderMessageLineCount(t *testing.T) {
	s := testStyles(t)
	got := s.RenderMessage("one\ntwo\nthree", 0)
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("expected 2 newlines, got %d in %q", n, got)
	}
}

func TestRenderMessageWraps(t *testing.T) {
	s := testStyles(t)
	long := strings.Repeat("word ", 30)
	got := s.RenderMessage(long, 20)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line longer than wrap width: %q", line)
		}
	}
}
