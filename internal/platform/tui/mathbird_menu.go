package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathbird/internal/config"
	"github.com/vovakirdan/mathbird/internal/core"
)

// MathbirdSelection holds the user's choices from the ride setup screen.
type MathbirdSelection struct {
	Preset config.DifficultyPreset
}

// presetOption pairs a preset with its menu description.
type presetOption struct {
	preset config.DifficultyPreset
	label  string
	detail string
}

var presetOptions = []presetOption{
	{config.DifficultyEasy, "Easy", "add and subtract within 10"},
	{config.DifficultyNormal, "Normal", "all four operations, tables to 9"},
	{config.DifficultyHard, "Hard", "all four operations, bigger numbers"},
}

// MathbirdSetupModel lets users pick a question difficulty before the math
// ride starts. Presets shape operand ranges only; the ride itself always
// moves at the same pace.
type MathbirdSetupModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection MathbirdSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewMathbirdSetupModel creates a new setup model with Normal preselected.
func NewMathbirdSetupModel(width, height int) MathbirdSetupModel {
	return MathbirdSetupModel{
		cursor:    1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MathbirdSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MathbirdSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MathbirdSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presetOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = MathbirdSelection{Preset: presetOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the setup screen.
func (m MathbirdSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M A T H   B I R D", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select question difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range presetOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, opt.label, opt.detail)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MathbirdSetupModel) Selected() *MathbirdSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MathbirdSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MathbirdSetupModel) WantsBack() bool {
	return m.back
}

// RunMathbirdSetup runs the ride setup screen and returns the selection.
// A nil selection means the user backed out or quit.
func RunMathbirdSetup(cfg core.RuntimeConfig) (*MathbirdSelection, error) {
	model := NewMathbirdSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MathbirdSetupModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
