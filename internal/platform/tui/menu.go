package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoronov/bugcross/internal/assets"
	"github.com/avoronov/bugcross/internal/core"
)

// AvatarMenuModel is the Bubble Tea model for the pre-game avatar picker.
type AvatarMenuModel struct {
	atlas     *assets.Atlas
	choices   []assets.PlayerChoice
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *assets.PlayerChoice
}

// NewAvatarMenuModel creates a new avatar menu model.
func NewAvatarMenuModel(atlas *assets.Atlas, cfg core.RuntimeConfig) AvatarMenuModel {
	return AvatarMenuModel{
		atlas:     atlas,
		choices:   atlas.Players(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m AvatarMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m AvatarMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m AvatarMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.choices) > 0 {
			selected := m.choices[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the game
		}
	}

	return m, nil
}

// View renders the menu.
func (m AvatarMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  B U G   C R O S S I N G  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Choose your character", m.width))
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		glyph := '?'
		var style lipgloss.Style
		if s, err := m.atlas.Sprite(choice.ID); err == nil {
			glyph = s.Glyph
			if st, ok := colorStyles[s.Color]; ok {
				style = st
			}
		}

		line := fmt.Sprintf("%s%s %s", cursor, style.Render(string(glyph)), choice.Name)
		// The styled glyph carries invisible ANSI codes; center on the
		// plain length instead.
		pad := (m.width - (len(cursor) + 2 + len(choice.Name))) / 2
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen avatar, or nil if none was selected.
func (m AvatarMenuModel) Selected() *assets.PlayerChoice {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m AvatarMenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m AvatarMenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// AvatarMenuResult holds the result of running the avatar menu.
type AvatarMenuResult struct {
	Avatar string
	Config core.RuntimeConfig
	Quit   bool
}

// RunAvatarMenu runs the avatar picker and returns the selection result.
func RunAvatarMenu(atlas *assets.Atlas, cfg core.RuntimeConfig) (AvatarMenuResult, error) {
	model := NewAvatarMenuModel(atlas, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return AvatarMenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(AvatarMenuModel)
	if !ok {
		return AvatarMenuResult{Config: cfg, Quit: true}, nil
	}

	result := AvatarMenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Avatar = m.Selected().ID
	return result, nil
}
