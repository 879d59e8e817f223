package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bomberquest/internal/registry"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = 100
	maxRecentRuns      = 50
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "scores/levels/runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardView selects what the table lists.
type scoreboardView int

const (
	viewScores scoreboardView = iota
	viewLevels                // Per-level attempts and best time
	viewRuns                  // Most recent level runs
	viewCount
)

func (v scoreboardView) title() string {
	switch v {
	case viewLevels:
		return "LEVEL RECORDS"
	case viewRuns:
		return "RECENT RUNS"
	default:
		return "HIGH SCORES"
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	modes      []registry.GameInfo
	modeCursor int
	store      *storage.Store
	view       scoreboardView
	scores     []storage.ScoreEntry
	levels     []storage.LevelStats
	runs       []storage.RunResult
	summary    *storage.ModeSummary
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) currentMode() (registry.GameInfo, bool) {
	if len(m.modes) == 0 {
		return registry.GameInfo{}, false
	}
	return m.modes[m.modeCursor], true
}

// createTable builds an empty table with the columns of the current view.
func (m *ScoreboardModel) createTable() table.Model {
	width := m.width - 4
	if m.wide() {
		width -= sidebarWidth + 3
	}

	var columns []table.Column
	switch m.view {
	case viewLevels:
		columns = []table.Column{
			{Title: "Level", Width: max(16, min(width-26, 28))},
			{Title: "Tries", Width: 6},
			{Title: "Wins", Width: 6},
			{Title: "Best", Width: 8},
		}
	case viewRuns:
		columns = []table.Column{
			{Title: "Level", Width: 16},
			{Title: "Outcome", Width: 10},
			{Title: "Time", Width: 7},
			{Title: "Reason", Width: max(12, min(width-39, 22))},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: max(14, min(width-22, 20))},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	th := GetTheme()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Controls.GetForeground()).
		BorderBottom(true).
		Bold(true)
	s.Selected = th.MenuItemActive
	t.SetStyles(s)

	return t
}

// reload fetches the data of the selected mode from the store.
func (m *ScoreboardModel) reload() {
	m.scores, m.levels, m.runs, m.summary = nil, nil, nil, nil
	mode, ok := m.currentMode()
	if ok && m.store != nil {
		m.scores, _ = m.store.TopScores(mode.ID, maxScores)
		m.levels, _ = m.store.GetLevelStats(mode.ID)
		m.runs, _ = m.store.RecentRuns(mode.ID, maxRecentRuns)
		m.summary, _ = m.store.ModeSummary(mode.ID)
	}
	m.fillTable()
}

// fillTable copies the current view's data into the table.
func (m *ScoreboardModel) fillTable() {
	var rows []table.Row
	switch m.view {
	case viewLevels:
		for _, ls := range m.levels {
			best := "-"
			if ls.Victories > 0 {
				best = fmt.Sprintf("%.1fs", ls.BestTime)
			}
			rows = append(rows, table.Row{
				ls.LevelID, strconv.Itoa(ls.Attempts), strconv.Itoa(ls.Victories), best,
			})
		}
	case viewRuns:
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				r.LevelID, r.Outcome, fmt.Sprintf("%.1fs", r.Duration), r.Reason,
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) rowCount() int {
	switch m.view {
	case viewLevels:
		return len(m.levels)
	case viewRuns:
		return len(m.runs)
	default:
		return len(m.scores)
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.view = (m.view + 1) % viewCount
			m.table = m.createTable()
			m.fillTable()
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + len(m.modes) - 1) % len(m.modes)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	t := GetTheme()
	var b strings.Builder

	title := m.view.title()
	if mode, ok := m.currentMode(); ok {
		title += " - " + mode.Title
	}
	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Controls.GetForeground()).
		Padding(0, 1)

	if m.wide() {
		sidebar := panel.Width(sidebarWidth).Render(m.renderModeList())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", panel.Render(m.renderTable())))
	} else {
		b.WriteString(centerText(m.renderModeTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(panel.Render(m.renderTable()), m.width))
	}
	b.WriteString("\n")

	if line := m.summaryLine(); line != "" {
		b.WriteString(centerText(t.MenuDescription.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString(t.Controls.Render(m.help.View(m.keys)))
	return b.String()
}

// renderModeList lists the modes with the cursor on the selected one.
func (m ScoreboardModel) renderModeList() string {
	t := GetTheme()
	var b strings.Builder
	b.WriteString("Modes\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	for i, mode := range m.modes {
		name := truncate(mode.Title, sidebarWidth-6)
		if i == m.modeCursor {
			b.WriteString(t.MenuItemActive.Render("> " + name))
		} else {
			b.WriteString(t.MenuItemNormal.Render("  " + name))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderModeTabs is the narrow-terminal replacement for the mode list.
func (m ScoreboardModel) renderModeTabs() string {
	mode, ok := m.currentMode()
	if !ok {
		return ""
	}
	t := GetTheme()
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		name := truncate(g.Title, 12)
		if i == m.modeCursor {
			tabs[i] = t.MenuItemActive.Render("[" + name + "]")
		} else {
			tabs[i] = t.MenuItemNormal.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = t.MenuItemActive.Render("< " + mode.Title + " >")
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if m.rowCount() > 0 {
		return m.table.View()
	}
	return GetTheme().MenuDescription.
		Italic(true).
		Padding(2, 4).
		Render("Nothing recorded yet.\nClear a maze to set a record!")
}

// summaryLine describes the selected mode in one line.
func (m ScoreboardModel) summaryLine() string {
	s := m.summary
	if s == nil || (s.Sessions == 0 && s.Runs == 0) {
		return ""
	}
	return fmt.Sprintf("%d runs, %d clears (%.0f%%), best %d, last played %s",
		s.Runs, s.Clears, s.ClearRate()*100, s.HighScore, s.LastPlayed.Format("Jan 02"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
