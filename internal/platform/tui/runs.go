package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// maxRuns is how many journaled runs the table loads.
const maxRuns = 100

// runsView is the session leaderboard opened from the game-over screen.
type runsView struct {
	journal *storage.Journal
	entries []storage.RunEntry
	table   table.Model
	width   int
	height  int
	err     error
}

func newRunsView(j *storage.Journal, width, height int) *runsView {
	v := &runsView{journal: j, width: width, height: height}
	v.table = v.createTable()
	v.load()
	return v
}

// createTable creates a table sized to the terminal.
func (v *runsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Speed", Width: 7},
		{Title: "Cause", Width: 10},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, v.height-8)), // Leave room for title, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the best runs from the journal into the table.
func (v *runsView) load() {
	entries, err := v.journal.Top(maxRuns)
	v.entries = entries
	v.err = err

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Ticks),
			fmt.Sprintf("%.2fx", e.Speed),
			e.Cause,
			e.FinishedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// resize rebuilds the table for new terminal dimensions.
func (v *runsView) resize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.load()
}

// update handles a key while the view is open. It reports whether the
// view should close and whether the program should quit.
func (v *runsView) update(msg tea.KeyMsg, keys KeyMap) (closeView, quit bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return false, true, nil
	case key.Matches(msg, keys.Back):
		return true, false, nil
	}
	v.table, cmd = v.table.Update(msg)
	return false, false, cmd
}

// view renders the table, or a placeholder when nothing is journaled yet.
func (v *runsView) view(h help.Model, keys KeyMap) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION RUNS", v.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(v.content()), v.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(h.View(RunsHelp{keys})))

	return b.String()
}

func (v *runsView) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if v.err != nil {
		return emptyStyle.Render("Cannot read runs: " + v.err.Error())
	}
	if len(v.entries) == 0 {
		return emptyStyle.Render("No runs finished yet.")
	}
	return v.table.View()
}

// centerText centers each line of text within width using lipgloss.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
