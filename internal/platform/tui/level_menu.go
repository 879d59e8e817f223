package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// LevelMenuModel is the level picker shown before a campaign starts.
type LevelMenuModel struct {
	cursor       int // 0 is "Start from Beginning", i is level i
	width        int
	height       int
	keyMapper    *KeyMapper
	levelNames   []string
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int // Index of the first visible level
}

// NewLevelMenuModel creates a level picker over the given level names.
func NewLevelMenuModel(levelNames []string, width, height int) LevelMenuModel {
	return LevelMenuModel{
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		levelNames: levelNames,
		choosing:   true,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levelNames) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levelNames) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleLevels is how many level rows fit between header and footer.
func (m LevelMenuModel) visibleLevels() int {
	return max(3, m.height-11)
}

// updateScroll adjusts scroll offset to keep the cursor visible.
func (m *LevelMenuModel) updateScroll() {
	if m.cursor == 0 {
		m.scrollOffset = 0
		return
	}
	idx := m.cursor - 1
	visible := m.visibleLevels()
	if idx < m.scrollOffset {
		m.scrollOffset = idx
	} else if idx >= m.scrollOffset+visible {
		m.scrollOffset = idx - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	t := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("B O M B E R Q U E S T"), m.width))
	b.WriteString("\n\n")

	if len(m.levelNames) == 0 {
		b.WriteString(centerText(t.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(t.Controls.Render("Esc: Back  |  Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText(t.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	item := func(active bool, text string) {
		cursor, style := "  ", t.MenuItemNormal
		if active {
			cursor, style = "> ", t.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+text), m.width))
		b.WriteString("\n")
	}

	item(m.cursor == 0, "Start from Beginning")

	if m.scrollOffset > 0 {
		b.WriteString(centerText(t.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	endIdx := min(m.scrollOffset+m.visibleLevels(), len(m.levelNames))
	for i := m.scrollOffset; i < endIdx; i++ {
		item(m.cursor == i+1, fmt.Sprintf("%2d. %s", i+1, m.levelNames[i]))
	}

	if endIdx < len(m.levelNames) {
		b.WriteString(centerText(t.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(t.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selection for the current level set and
// returns the selection, or nil when the user backed out.
func RunLevelSelector(cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelMenuModel(bomberquest.LevelNames(), cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
