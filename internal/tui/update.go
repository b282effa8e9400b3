package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/starrating/internal/rating"
)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case RefreshMsg:
		if m.widget.State() == rating.Active {
			m.setErr(m.widget.Render(m.ctx))
			m.clampCursor()
		}
		return m, nil

	case reloadFailedMsg:
		m.setErr(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.widget.State() == rating.Active {
			m.widget.Destroy(m.ctx)
			m.err = nil
			return m, nil
		}
		m.setErr(m.widget.Init(m.ctx))
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			return m, nil
		}
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Reset):
		m.setErr(m.widget.Init(m.ctx))
		m.clampCursor()
		return m, nil
	}

	if m.widget.State() != rating.Active {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Right):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Select):
		m.activate(m.cursor)
	case key.Matches(msg, m.keys.Pick):
		m.activate(int(msg.String()[0] - '0'))
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.widget.State() != rating.Active || msg.Y != iconRow {
		return m, nil
	}

	m.activate(m.hitTest(msg.X))
	return m, nil
}

// activate forwards an activation of the icon at position to the element.
// Positions without an icon reach the element as an untargeted activation.
func (m *Model) activate(position int) {
	m.widget.Element().ActivateIcon(m.ctx, position)
	if position >= 1 {
		m.cursor = position
	}
	m.clampCursor()
	m.err = nil
}

// reloadCmd re-reads the settings source and asks for a redraw on success.
func (m Model) reloadCmd() tea.Cmd {
	reload, ctx := m.reload, m.ctx
	return func() tea.Msg {
		if err := reload(ctx); err != nil {
			return reloadFailedMsg{err: err}
		}
		return RefreshMsg{}
	}
}

func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		m.logger.Warn(m.ctx, "widget operation failed", "error", err)
	}
}
