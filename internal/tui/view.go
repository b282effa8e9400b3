package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/starrating/internal/rating"
)

// iconRow is the line of the view holding the icons.
const iconRow = 1

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(m.heading()),
		m.renderIcons(),
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	} else if status := m.status(); status != "" {
		sections = append(sections, statusStyle.Render(status))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) heading() string {
	if m.widget.State() != rating.Active {
		return fmt.Sprintf("%s (inactive)", m.title)
	}
	return fmt.Sprintf("%s %s/%d", m.title, m.widget.Value(), len(m.widget.Element().Icons()))
}

func (m Model) renderIcons() string {
	icons := m.widget.Element().Icons()
	if len(icons) == 0 {
		return plainStyle.Render(m.widget.Element().Text())
	}

	cells := make([]string, 0, len(icons))
	for _, icon := range icons {
		style := outlineStyle
		if icon.State == rating.Filled {
			style = filledStyle
		}
		if icon.Index == m.cursor {
			style = style.Inherit(cursorStyle)
		}
		cells = append(cells, style.Render(m.glyphs.Glyph(icon)))
	}
	return strings.Join(cells, " ")
}

func (m Model) status() string {
	if m.feed == nil || m.feed.last == "" {
		return ""
	}
	if len(m.feed.args) == 0 {
		return m.feed.last
	}
	args := make([]string, 0, len(m.feed.args))
	for _, arg := range m.feed.args {
		args = append(args, fmt.Sprint(arg))
	}
	return fmt.Sprintf("%s (%s)", m.feed.last, strings.Join(args, ", "))
}

// hitTest maps a column of the icon row to the 1-based icon position, or 0
// when the column falls between icons.
func (m Model) hitTest(x int) int {
	start := 0
	for i, icon := range m.widget.Element().Icons() {
		width := lipgloss.Width(m.glyphs.Glyph(icon))
		if x >= start && x < start+width {
			return i + 1
		}
		start += width + 1
	}
	return 0
}
