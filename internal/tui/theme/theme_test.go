package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestStyleRating_ByBand(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	for _, rating := range []int{0, 2, 5} {
		styled := th.StyleRating(rating, 5, "***")
		if !strings.Contains(styled, "\x1b[") {
			t.Fatalf("expected styled rating for %d, got %q", rating, styled)
		}
		if !strings.Contains(styled, "***") {
			t.Fatalf("expected rating text preserved for %d, got %q", rating, styled)
		}
	}

	high := th.StyleRating(5, 5, "x")
	low := th.StyleRating(0, 5, "x")
	if high == low {
		t.Fatalf("expected different styles for high and low ratings, got %q", high)
	}
}

func TestStyleRating_EmptyUnchanged(t *testing.T) {
	th := Default()
	if got := th.StyleRating(3, 5, ""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()
	if got := th.RenderActiveLine(false, "plain"); got != "plain" {
		t.Fatalf("inactive line should be unchanged, got %q", got)
	}
	if got := th.RenderActiveLine(true, "plain"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled active line, got %q", got)
	}
}
