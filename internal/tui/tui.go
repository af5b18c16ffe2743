package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/text-adventure/internal/engine"
)

// screen is the session's renderer. The session calls it synchronously
// from inside HandleKey, so it only caches what to draw and the bubbletea
// model picks that up on the next View.
type screen struct {
	session          *engine.Session
	inventoryVisible bool
	width            int
	redraws          int

	location string
	choices  string
}

func (s *screen) Enable()  { s.inventoryVisible = true }
func (s *screen) Disable() { s.inventoryVisible = false }
func (s *screen) Toggle()  { s.inventoryVisible = !s.inventoryVisible }

// Redraw re-reads everything from the session.
func (s *screen) Redraw() {
	s.redraws++
	if s.session == nil {
		return
	}
	s.location = renderLocation(s.session.View(), s.width)
	s.choices = renderChoices(s.session.Choices())
}

type keyMap struct {
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
}

type model struct {
	session  *engine.Session
	screen   *screen
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
	status   string
}

// NewModel attaches a renderer to session and begins it.
func NewModel(session *engine.Session) (tea.Model, error) {
	sc := &screen{session: session}
	session.SetRenderer(sc)
	if err := session.Begin(); err != nil {
		return nil, err
	}

	m := model{
		session:  session,
		screen:   sc,
		viewport: viewport.New(80, 20),
		help:     help.New(),
		keys:     defaultKeys,
	}
	m.viewport.SetContent(sc.location)
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.session.Close()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown) {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			return m, nil
		}

		// Terminals report presses only, so every press is followed by an
		// immediate release.
		_, err := m.session.HandleKey(string(msg.Runes))
		m.session.KeyReleased()

		m.status = ""
		var unsupported *engine.UnsupportedActionError
		if errors.As(err, &unsupported) {
			m.status = "You can't use the " + unsupported.Item + " here."
		} else if err != nil {
			m.status = err.Error()
		}
		m.layout()
		m.viewport.GotoTop()
		// Game keys never reach the viewport; its letter bindings overlap
		// them. Scrolling goes through pgup and pgdown above.
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Height = max(msg.Height-6, 0)
		m.layout()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// layout fits the viewport beside the inventory panel, if shown, and
// re-renders the location at the new width.
func (m *model) layout() {
	if m.width > 0 {
		m.viewport.Width = m.mainWidth()
		if m.screen.width != m.mainWidth() {
			m.screen.width = m.mainWidth()
			m.screen.Redraw()
		}
	}
	m.viewport.SetContent(m.screen.location)
}

func (m model) mainWidth() int {
	if m.screen.inventoryVisible {
		return int(float64(m.width) * 0.70)
	}
	return m.width
}

func (m model) View() string {
	main := m.viewport.View()
	if m.screen.inventoryVisible {
		panelWidth := int(float64(m.width) * 0.25)
		panel := renderInventory(m.session.View(), panelWidth, m.viewport.Height)
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, panel)
	}

	s := lipgloss.JoinVertical(lipgloss.Left,
		main,
		"\n"+m.screen.choices,
		statusStyle.Render(m.status),
		helpStyle.Render(m.help.View(m.keys)),
	)
	return "\n" + s + "\n"
}

// Run begins session and drives it from the terminal until the player quits.
func Run(session *engine.Session) error {
	m, err := NewModel(session)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
