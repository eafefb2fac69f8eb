package frame

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func wrapContext() *gg.Context {
	dc := gg.NewContext(10, 10)
	dc.SetFont(headerFace(20))
	return dc
}

func TestWrapShortNameSingleLine(t *testing.T) {
	dc := wrapContext()
	lines := wrapHeader(dc, "Alex", 1000)
	if len(lines) != 1 || lines[0] != "Alex" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestWrapBreaksAtWords(t *testing.T) {
	dc := wrapContext()
	w, _ := dc.MeasureString("first second")
	// width fits one word but not both
	lines := wrapHeader(dc, "first second", w*0.7)
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestWrapUnbrokenTokenFallsBackToRunes(t *testing.T) {
	dc := wrapContext()
	token := strings.Repeat("M", 40)
	w, _ := dc.MeasureString("MMMM")
	lines := wrapHeader(dc, token, w)
	if len(lines) <= 1 {
		t.Fatalf("expected multiple lines for an unbreakable token, got %q", lines)
	}
	// nothing lost in the split
	if strings.Join(lines, "") != token {
		t.Fatalf("runes lost: %q", lines)
	}
	for _, line := range lines {
		if lw, _ := dc.MeasureString(line); lw > w {
			t.Fatalf("line %q wider than limit", line)
		}
	}
}

func TestWrapMixedWordsAndLongToken(t *testing.T) {
	dc := wrapContext()
	w, _ := dc.MeasureString("hello")
	lines := wrapHeader(dc, "hi "+strings.Repeat("x", 30)+" yo", w*1.2)
	if len(lines) < 3 {
		t.Fatalf("lines = %q", lines)
	}
}

func TestWrapEmptyString(t *testing.T) {
	dc := wrapContext()
	if lines := wrapHeader(dc, "", 100); len(lines) != 0 {
		t.Fatalf("lines = %q", lines)
	}
}
