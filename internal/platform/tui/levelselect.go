package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmelnyk/shadowstep/internal/levels"
	"github.com/tmelnyk/shadowstep/internal/storage"
)

// levelItem adapts a level to the bubbles list item interface.
type levelItem struct {
	level levels.Level
	stats *storage.LevelStats
}

func (i levelItem) Title() string { return i.level.Name }

func (i levelItem) Description() string {
	size := "empty"
	if len(i.level.Rows) > 0 {
		size = fmt.Sprintf("%dx%d", len(i.level.Rows[0]), len(i.level.Rows))
	}
	if i.stats == nil || i.stats.Attempts == 0 {
		return size + ", not played yet"
	}
	if i.stats.BestTurns == 0 {
		return fmt.Sprintf("%s, %d attempts, never cleared", size, i.stats.Attempts)
	}
	return fmt.Sprintf("%s, %d attempts, best %d turns", size, i.stats.Attempts, i.stats.BestTurns)
}

func (i levelItem) FilterValue() string { return i.level.Name }

// LevelSelectModel is the Bubble Tea model for the level picker.
type LevelSelectModel struct {
	list     list.Model
	selected *levels.Level
	quitting bool
}

// NewLevelSelectModel creates a level picker over the given levels,
// annotated with per-level stats when a store is available.
func NewLevelSelectModel(lvls []levels.Level, store *storage.Store, width, height int) LevelSelectModel {
	var allStats map[string]*storage.LevelStats
	if store != nil {
		allStats, _ = store.AllStats()
	}

	items := make([]list.Item, 0, len(lvls))
	for _, lvl := range lvls {
		items = append(items, levelItem{level: lvl, stats: allStats[lvl.ID]})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("229")).
		BorderForeground(lipgloss.Color("57"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("241")).
		BorderForeground(lipgloss.Color("57"))

	l := list.New(items, delegate, width, height)
	l.Title = "Shadowstep: pick a level"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return LevelSelectModel{list: l}
}

// Init initializes the picker.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list consume keys while filtering
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(levelItem); ok {
				selected := item.level
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m LevelSelectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen level, or nil when the player quit.
func (m LevelSelectModel) Selected() *levels.Level {
	return m.selected
}

// RunLevelSelect runs the level picker and returns the chosen level.
// A nil level means the player quit without choosing.
func RunLevelSelect(lvls []levels.Level, store *storage.Store, width, height int) (*levels.Level, error) {
	model := NewLevelSelectModel(lvls, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := finalModel.(LevelSelectModel); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
