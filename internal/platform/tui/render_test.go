package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Clear()
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '█', core.ColorYellow)
	s.SetColor(3, 0, 'o', core.ColorBrightYellow)
	s.DrawText(0, 1, "coins")

	got := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	want := []string{"ab█o  ", "coins "}

	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStyleForFallsBackToDefault(t *testing.T) {
	unknown := core.ColorBrightWhite + 1
	if got, want := styleFor(unknown).Render("x"), palette[core.ColorDefault].Render("x"); got != want {
		t.Errorf("styleFor(unknown) rendered %q, want %q", got, want)
	}
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
