package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(10, 2)

	if n := c.DrawText(1, 0, "Köln", StyleLabel); n != 4 {
		t.Errorf("DrawText(Köln) used %d columns, want 4", n)
	}
	if got := c.Row(0); got != " Köln     " {
		t.Errorf("Row(0) = %q", got)
	}

	if n := c.DrawText(0, 1, "東京", StyleLabel); n != 4 {
		t.Errorf("DrawText(東京) used %d columns, want 4", n)
	}
	if got := c.Row(1); got != "東京      " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestCanvasClipsOutOfRange(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(-1, 0, 'x', StyleLabel)
	c.Set(3, 0, 'x', StyleLabel)
	c.Set(0, 5, 'x', StyleLabel)
	c.DrawText(1, 0, "abcdef", StyleLabel)

	if got := c.Row(0); got != " ab" {
		t.Errorf("Row(0) = %q, want %q", got, " ab")
	}
	if c.Get(9, 9).Char != ' ' {
		t.Error("Get outside the canvas should return a blank cell")
	}
}

func TestTruncateAndPad(t *testing.T) {
	testCases := []struct {
		in    string
		width int
		trunc string
		pad   string
	}{
		{"Berlin Hbf", 20, "Berlin Hbf", "Berlin Hbf          "},
		{"Frankfurt (Main) Hbf", 10, "Frankfurt…", "Frankfurt…"},
		{"abc", 0, "", ""},
	}

	for _, tc := range testCases {
		if got := Truncate(tc.in, tc.width); got != tc.trunc {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.trunc)
		}
		if got := PadRight(tc.in, tc.width); got != tc.pad {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.pad)
		}
	}
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(5, 1)

	c := NewCanvas(3, 1)
	c.DrawText(0, 0, "abc", StyleLabel)
	c.Blit(screen, 2, 0)
	screen.Show()

	r, _, _, _ := screen.GetContent(3, 0)
	if r != 'b' {
		t.Errorf("screen cell (3,0) = %q, want 'b'", r)
	}
}
