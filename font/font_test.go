package font

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderWidth(t *testing.T) {
	cases := []struct {
		message string
		width   int
	}{
		{"A", 5},
		{"PI", 11},
		{"Pizza!", 35},
		{"ZZ ZZ", 29},
	}
	for _, c := range cases {
		bm, err := Render(c.message, 1)
		if err != nil {
			t.Fatalf("Render(%q): %v", c.message, err)
		}
		if bm.Width() != c.width {
			t.Errorf("Render(%q): width %d, want %d", c.message, bm.Width(), c.width)
		}
		for r := 0; r < Rows; r++ {
			if len(bm[r]) != c.width {
				t.Errorf("Render(%q): row %d has length %d, want %d", c.message, r, len(bm[r]), c.width)
			}
		}
	}
}

func TestRenderGapColumns(t *testing.T) {
	bm, err := Render("I!", 1)
	if err != nil {
		t.Fatal(err)
	}
	// Column 5 is the single gap between the two glyphs.
	for r := 0; r < Rows; r++ {
		if bm[r][5] != '0' {
			t.Errorf("row %d: gap column is %q, want '0'", r, bm[r][5])
		}
	}
	// No leading or trailing gap: both glyphs touch the edges.
	if bm.Width() != 11 {
		t.Errorf("width %d, want 11", bm.Width())
	}
}

func TestRenderUnsupportedCharacter(t *testing.T) {
	_, err := Render("PX", 1)
	if err == nil {
		t.Fatal("expected error for unsupported character")
	}
	if !strings.Contains(err.Error(), "'X'") {
		t.Errorf("error %q does not name the character", err)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render("Pizza!", 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render("Pizza!", 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated renders differ (-first +second):\n%s", diff)
	}
}

func TestLowercaseAliases(t *testing.T) {
	for _, ch := range "piza" {
		lower, ok := Lookup(ch)
		if !ok {
			t.Fatalf("no glyph for %q", ch)
		}
		upper, _ := Lookup(ch - ('a' - 'A'))
		if diff := cmp.Diff(upper, lower); diff != "" {
			t.Errorf("glyph for %q differs from uppercase:\n%s", ch, diff)
		}
	}
}

func TestCount(t *testing.T) {
	bm, err := Render("!", 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := bm.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
}
