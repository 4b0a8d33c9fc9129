package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/connoisseur/internal/tui/theme"

	"github.com/glabrego/connoisseur/internal/journal"
)

func Toolbar(reviewMode, inDetail bool) string {
	if inDetail {
		return "esc back | ? help | q quit"
	}
	if reviewMode {
		return "j/k move | enter view | s sort | d display | tab recommendations | ? help | q quit"
	}
	return "j/k move | enter view | tab reviews | ? help | q quit"
}

func Header(reviewMode bool, th tuitheme.Theme) string {
	mode := "recommendations"
	if reviewMode {
		mode = "reviews"
	}
	return th.Title.Render("Connoisseur") + " " + th.ModePill.Render(mode)
}

func Footer(sortMethod journal.SortMethod, display journal.DisplayMode, shown int, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("sort") + " " + th.MetaValue.Render(string(sortMethod)),
		th.MetaLabel.Render("display") + " " + th.MetaValue.Render(string(display)),
		th.MetaValue.Render(fmt.Sprintf("%d shown", shown)),
	}
	return strings.Join(parts, " • ")
}

func StatusLine(status string, warning bool, th tuitheme.Theme) string {
	if status == "" {
		return th.StateIdle.Render("Ready")
	}
	if warning {
		return th.StateWarn.Render(status)
	}
	return th.StateIdle.Render(status)
}
