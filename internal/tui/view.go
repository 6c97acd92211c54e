package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	hlBgColor   = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"}
	cyanColor   = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#8BE9FD"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(hlBgColor)

	nameStyle = lipgloss.NewStyle().
			Foreground(cyanColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

// Table renders items as aligned rows under a header. The row at cursor is
// highlighted; pass -1 for none.
func Table(items []Item, cursor int) string {
	width := len("MODE")
	for _, it := range items {
		if len(it.Name) > width {
			width = len(it.Name)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %s  %5s  %8s", pad("MODE", width), "BOUND", "DISABLED")))
	b.WriteString("\n")
	for i, it := range items {
		marker := "  "
		if i == cursor {
			marker = cursorStyle.Render("> ")
		}
		row := fmt.Sprintf("%s  %5d  %8d", nameStyle.Render(pad(it.Name, width)), it.Bound, it.Disabled)
		if i == cursor {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(" " + marker + row + "\n")
	}
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("modality"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("  No modes.\n\n")
	} else {
		b.WriteString(Table(m.items, m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/k ↓/j move · enter apply · q/esc quit"))
	b.WriteString("\n")
	return b.String()
}
