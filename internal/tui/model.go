// Package tui is the full-screen journal browser started by the browse
// command.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/connoisseur/internal/journal"
	tuitheme "github.com/glabrego/connoisseur/internal/tui/theme"
	"github.com/glabrego/connoisseur/internal/tui/view"
)

// SaveFunc persists the journal. The browser calls it after preference
// changes and once more on quit.
type SaveFunc func(ctx context.Context, snap journal.Snapshot) error

type pane int

const (
	reviewPane pane = iota
	recommendationPane
)

type saveSuccessMsg struct {
	quit bool
}

type saveErrorMsg struct {
	err  error
	quit bool
}

type clearStatusMsg struct {
	id int
}

const statusTimeout = 4 * time.Second

type Model struct {
	reviews   *journal.ReviewList
	recs      *journal.RecommendationList
	saveFn    SaveFunc
	theme     tuitheme.Theme
	pane      pane
	cursor    int
	inDetail  bool
	detailTop int
	showHelp  bool
	width     int
	height    int
	status    string
	statusID  int
	err       error
	quitting  bool
}

func NewModel(reviews *journal.ReviewList, recs *journal.RecommendationList, saveFn SaveFunc) Model {
	return Model{
		reviews: reviews,
		recs:    recs,
		saveFn:  saveFn,
		theme:   tuitheme.Default(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Err reports the last save failure, if any, so the caller can surface it
// once the program has exited.
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case saveSuccessMsg:
		m.err = nil
		if msg.quit {
			return m, tea.Quit
		}
		return m, nil
	case saveErrorMsg:
		m.err = msg.err
		if msg.quit {
			return m, tea.Quit
		}
		return m.setStatus("Could not save: " + msg.err.Error())
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, m.saveCmd(true)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}

		if m.showHelp {
			if msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if m.inDetail {
			switch msg.String() {
			case "esc", "backspace":
				m.inDetail = false
				m.detailTop = 0
			case "up", "k":
				if m.detailTop > 0 {
					m.detailTop--
				}
			case "down", "j":
				if m.detailTop < m.maxDetailTop() {
					m.detailTop++
				}
			case "[":
				m.moveCursorBy(-1)
				m.detailTop = 0
			case "]":
				m.moveCursorBy(1)
				m.detailTop = 0
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			m.moveCursorBy(-1)
		case "down", "j":
			m.moveCursorBy(1)
		case "pgup", "ctrl+b":
			m.moveCursorBy(-pageStep(m.height, m.status != ""))
		case "pgdown", "ctrl+f":
			m.moveCursorBy(pageStep(m.height, m.status != ""))
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = clampCursor(m.size()-1, m.size())
		case "tab":
			if m.pane == reviewPane {
				m.pane = recommendationPane
			} else {
				m.pane = reviewPane
			}
			m.cursor = 0
		case "enter":
			if m.size() > 0 {
				m.inDetail = true
				m.detailTop = 0
			}
		case "s":
			if m.pane == reviewPane {
				return m.cycleSort()
			}
		case "d":
			if m.pane == reviewPane {
				return m.toggleDisplay()
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(view.Header(m.pane == reviewPane, m.theme))
	b.WriteString("\n")

	switch {
	case m.showHelp:
		b.WriteString("Help (? to close)\n\n")
		b.WriteString(helpView())
		b.WriteString("\n")
	case m.inDetail:
		b.WriteString(view.Toolbar(m.pane == reviewPane, true))
		b.WriteString("\n\n")
		b.WriteString(m.detailView())
	default:
		b.WriteString(view.Toolbar(m.pane == reviewPane, false))
		b.WriteString("\n\n")
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(view.StatusLine(m.status, m.err != nil && m.status != "", m.theme))
	b.WriteString("\n")
	b.WriteString(view.Footer(m.reviews.SortMethod(), m.reviews.Display(), m.size(), m.theme))
	b.WriteString("\n")
	return b.String()
}

func (m Model) listView() string {
	if m.size() == 0 {
		if m.pane == reviewPane {
			return "No reviews yet.\n"
		}
		return "No recommendations yet.\n"
	}

	start, end := visibleWindow(m.size(), m.cursor, m.listHeight())
	var b strings.Builder
	if m.pane == reviewPane {
		reviews := m.reviews.Reviews()
		for i := start; i < end; i++ {
			b.WriteString(view.RenderReviewLine(view.ReviewLineParams{
				Review:    reviews[i],
				Rating:    m.reviews.RenderRating(reviews[i]),
				MaxRating: m.reviews.MaxRating(),
				Pos:       i,
				Active:    i == m.cursor,
				Cursor:    true,
				Width:     m.contentWidth(),
			}, m.theme))
			b.WriteString("\n")
		}
		return b.String()
	}

	recs := m.recs.List()
	for i := start; i < end; i++ {
		b.WriteString(view.RenderRecommendationLine(view.RecommendationLineParams{
			Recommendation: recs[i],
			Pos:            i,
			Active:         i == m.cursor,
			Cursor:         true,
			Width:          m.contentWidth(),
		}, m.theme))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) detailView() string {
	lines := m.detailLines()
	if len(lines) == 0 {
		return "Nothing selected.\n"
	}
	top := min(max(m.detailTop, 0), len(lines)-1)
	end := len(lines)
	if h := m.detailBodyHeight(); top+h < end {
		end = top + h
	}
	return strings.Join(lines[top:end], "\n") + "\n"
}

func (m Model) detailLines() []string {
	if m.size() == 0 {
		return nil
	}
	if m.pane == reviewPane {
		review := m.reviews.Reviews()[m.cursor]
		return view.ReviewDetailLines(review, m.reviews.RenderRating(review), m.reviews.MaxRating(), m.contentWidth(), view.WrapText, m.theme)
	}
	return view.RecommendationDetailLines(m.recs.List()[m.cursor], m.contentWidth(), view.WrapText, m.theme)
}

func (m Model) maxDetailTop() int {
	return max(len(m.detailLines())-m.detailBodyHeight(), 0)
}

func (m Model) cycleSort() (tea.Model, tea.Cmd) {
	methods := journal.SortMethods()
	next := methods[0]
	for i, method := range methods {
		if method == m.reviews.SortMethod() {
			next = methods[(i+1)%len(methods)]
			break
		}
	}
	if err := m.reviews.Sort(string(next)); err != nil {
		m.err = err
		return m.setStatus(err.Error())
	}
	m.cursor = 0
	m, cmd := m.setStatus("Sorted by " + string(next))
	return m, tea.Batch(cmd, m.saveCmd(false))
}

func (m Model) toggleDisplay() (tea.Model, tea.Cmd) {
	next := journal.DisplayAsterisks
	if m.reviews.Display() == journal.DisplayAsterisks {
		next = journal.DisplayStars
	}
	if err := m.reviews.ChangeDisplay(string(next)); err != nil {
		m.err = err
		return m.setStatus(err.Error())
	}
	m, cmd := m.setStatus("Ratings shown as " + string(next))
	return m, tea.Batch(cmd, m.saveCmd(false))
}

func (m Model) setStatus(status string) (Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, statusTimeout)
}

func (m Model) saveCmd(quit bool) tea.Cmd {
	if m.saveFn == nil {
		if quit {
			return tea.Quit
		}
		return nil
	}
	saveFn := m.saveFn
	snap := journal.Capture(m.reviews, m.recs)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := saveFn(ctx, snap); err != nil {
			return saveErrorMsg{err: fmt.Errorf("save journal: %w", err), quit: quit}
		}
		return saveSuccessMsg{quit: quit}
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) size() int {
	if m.pane == reviewPane {
		return m.reviews.Len()
	}
	return m.recs.Len()
}

func (m *Model) moveCursorBy(delta int) {
	m.cursor = clampCursor(m.cursor+delta, m.size())
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width - 1
	}
	return 80
}

func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	return pageStep(m.height, m.status != "")
}

func (m Model) detailBodyHeight() int {
	if m.height > 0 {
		if h := m.height - 6; h > 3 {
			return h
		}
	}
	return 16
}

func helpView() string {
	lines := []string{
		"Navigation:",
		"  j/k or arrows move, g/G jump top/bottom, pgup/pgdown jump page",
		"  tab switches between reviews and recommendations",
		"Detail:",
		"  enter opens an entry, [ ] step through entries, esc returns to the list",
		"Reviews:",
		"  s cycles the sort order, d switches stars and asterisks",
		"Quit:",
		"  q saves the journal and quits",
	}
	return strings.Join(lines, "\n")
}
