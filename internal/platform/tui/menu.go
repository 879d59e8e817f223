package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/registry"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

// MenuItem is one selectable game mode.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Stats       storage.ModeSummary // Zero when never played or no store
}

// record is the short stats suffix shown next to a played mode.
func (it MenuItem) record() string {
	if it.Stats.Runs == 0 && it.Stats.HighScore == 0 {
		return ""
	}
	return fmt.Sprintf("best %d, %d/%d cleared", it.Stats.HighScore, it.Stats.Clears, it.Stats.Runs)
}

// MenuModel is the mode picker shown at startup.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered modes. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.ModeSummary
	if store != nil {
		stats, _ = store.ModeSummaries()
	}

	var items []MenuItem
	for _, info := range registry.List() {
		item := MenuItem{GameID: info.ID, Title: info.Title, Description: info.Description}
		if s, ok := stats[info.ID]; ok {
			item.Stats = *s
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(0, m.cursor-1)

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	t := GetTheme()
	w := m.config.ScreenW
	var b strings.Builder

	line := func(s string) {
		b.WriteString(centerText(s, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	line(t.MenuTitle.Render("B O M B E R Q U E S T"))
	b.WriteString("\n")
	line(t.MenuDescription.Render("Blast the walls. Defeat the enemies. Find the exit."))
	b.WriteString("\n")

	for i, item := range m.items {
		text := "  " + item.Title
		style := t.MenuItemNormal
		if i == m.cursor {
			text = "> " + item.Title
			style = t.MenuItemActive
		}
		if rec := item.record(); rec != "" {
			text += "  (" + rec + ")"
		}
		line(style.Render(text))
	}

	if m.cursor < len(m.items) {
		if desc := m.items[m.cursor].Description; desc != "" {
			b.WriteString("\n")
			line(t.MenuDescription.Render(desc))
		}
	}

	b.WriteString("\n")
	line(t.Controls.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"))

	return b.String()
}

// Selected returns the chosen mode, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads possibly styled text to sit in the middle of width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu in its own program and reports the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
