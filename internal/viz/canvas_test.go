package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.PixelWidth() != 8 || c.PixelHeight() != 8 {
		t.Fatalf("unexpected pixel size %dx%d", c.PixelWidth(), c.PixelHeight())
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != blank|0x1|0x80 {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet mismatch")
	}

	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.Grid[0][0] != blank {
		t.Error("Clear did not reset cell")
	}
}

func TestCanvas_InkKeepsOrigin(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetInk(0, 0, OriginInk)
	c.SetInk(1, 1, 3)
	if c.Ink[0][0] != OriginInk {
		t.Errorf("origin ink overwritten: %d", c.Ink[0][0])
	}

	c.SetInk(2, 0, 2)
	if c.Ink[0][1] != 2 {
		t.Errorf("expected ink 2, got %d", c.Ink[0][1])
	}
}

func TestCanvas_DrawDashed(t *testing.T) {
	solid := NewCanvas(10, 1)
	solid.DrawLine(0, 0, 19, 0)
	dashed := NewCanvas(10, 1)
	dashed.DrawDashed(0, 0, 19, 0, 1, 2)

	lit := func(c *Canvas) int {
		n := 0
		for x := 0; x < c.PixelWidth(); x++ {
			if c.IsSet(x, 0) {
				n++
			}
		}
		return n
	}
	if lit(solid) != 20 {
		t.Errorf("solid line lit %d pixels, want 20", lit(solid))
	}
	if lit(dashed) != 10 {
		t.Errorf("dashed line lit %d pixels, want 10", lit(dashed))
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetInk(0, 0, 1)

	plain := c.Render(nil, "")
	if plain != c.String() {
		t.Error("Render without palette should match String")
	}

	out := c.Render([]lipgloss.Color{"#ff0000"}, "#ffffff")
	if !strings.Contains(out, string(rune(blank|0x1))) {
		t.Errorf("rendered output lost the lit cell: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}
