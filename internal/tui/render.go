package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tatianab/text-adventure/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F87FF")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// renderLocation draws the current location: its title, wrapped
// description, visible items and, in an examining state, the selected
// item's detail.
func renderLocation(v engine.View, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(wrap(v.Description, width)))
	b.WriteString("\n\n")

	if len(v.Connections) > 0 {
		b.WriteString("Exits:\n")
		for _, c := range v.Connections {
			b.WriteString("  " + entry(c.Key, c.Descriptor) + "\n")
		}
		b.WriteString("\n")
	}

	if len(v.Items) > 0 {
		b.WriteString("You see:\n")
		for _, item := range v.Items {
			b.WriteString("  " + entry(item.Key, item.Name) + "\n")
		}
		b.WriteString("\n")
	}

	if v.Selected != nil {
		b.WriteString(fmt.Sprintf("Selected: %s\n", v.Selected.Name))
		if v.State == engine.ExaminingLocationItem || v.State == engine.ExaminingInventoryItem {
			detail := v.Selected.Detail
			if detail == "" {
				detail = "Nothing remarkable."
			}
			b.WriteString(detailStyle.Render(wrap(detail, width)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderInventory draws the inventory panel.
func renderInventory(v engine.View, width, height int) string {
	content := titleStyle.Render("INVENTORY") + "\n"
	if len(v.Inventory) == 0 {
		content += "(empty)"
	}
	for _, item := range v.Inventory {
		content += entry(item.Key, item.Name) + "\n"
	}
	return panelStyle.Width(width).Height(height).Render(content)
}

// renderChoices draws the keys the player can press, in matching order.
func renderChoices(choices []engine.Choice) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		parts = append(parts, entry(c.Key, c.Label))
	}
	return strings.Join(parts, "  ")
}

// entry formats a keyed line as "[ K ] Label".
func entry(k, label string) string {
	return keyStyle.Render(fmt.Sprintf("[ %s ]", k)) + " " + label
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
