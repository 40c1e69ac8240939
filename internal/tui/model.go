// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/typings/internal/engine"
)

// Share of the terminal width used by the word block.
const contentShare = 0.60

var (
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	nextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#89CFF0"))
	onTrackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	typoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#228B22"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E30B5C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	engine *engine.Engine
	log    logrus.FieldLogger
	source string

	input textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int

	errMsg string
}

// NewModel wraps an engine in a typing TUI. source names the word list in the log.
func NewModel(eng *engine.Engine, log logrus.FieldLogger, source string) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "start typing"
	input.CharLimit = 64
	input.Width = 24
	input.Focus()

	return &Model{
		engine: eng,
		log:    log,
		source: source,
		input:  input,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		}
	}

	if m.engine.Complete() {
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		wasStarted := m.engine.Started()
		m.engine.OnInputChanged(value)
		if !wasStarted && m.engine.Started() {
			m.log.WithField("words", len(m.engine.Words())).Debug("run started")
		}
	}
	return m, cmd
}

func (m *Model) submit() {
	m.engine.OnSubmitWord()
	m.input.Reset()
	if !m.engine.Complete() {
		return
	}
	metrics := m.engine.Metrics()
	m.log.WithFields(logrus.Fields{
		"wpm":      metrics.WPM,
		"accuracy": metrics.Accuracy,
		"elapsed":  m.engine.Elapsed().Round(time.Millisecond).String(),
	}).Debug("run finished")
}

func (m *Model) reset() {
	m.input.Reset()
	if err := m.engine.Reset(); err != nil {
		m.log.WithError(err).WithField("source", m.source).Error("failed to start a new test")
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

// View implements tea.Model.
func (m *Model) View() string {
	runes := buildStyledRunes(m.engine.Words())
	var words string
	contentWidth := int(float64(m.width) * contentShare)
	if m.width == 0 || contentWidth < 1 {
		words = renderStyledRunes(runes)
	} else {
		words = lipgloss.NewStyle().Width(contentWidth).Render(wrapStyledRunes(runes, contentWidth))
	}

	sections := []string{words, "", m.renderInput(), "", m.renderFooter()}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderInput() string {
	if m.engine.Complete() {
		return footerStyle.Render("done, press tab for a new test")
	}
	return m.input.View()
}

func (m *Model) renderFooter() string {
	metrics := m.engine.Metrics()
	segments := []string{
		fmt.Sprintf("Words %d", metrics.WordsTyped),
		fmt.Sprintf("WPM %d", metrics.WPM),
		fmt.Sprintf("Accuracy %d%%", metrics.Accuracy),
	}
	if elapsed := m.engine.Elapsed(); elapsed > 0 {
		segments = append(segments, fmt.Sprintf("Time %s", elapsed.Round(time.Second)))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
