package form

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// MinLeftWidth is the minimum character width for the table pane.
const MinLeftWidth = 36

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}

	titleText = lipgloss.NewStyle().Bold(true)
	mutedText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	errorText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	infoText  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})

	labelText        = lipgloss.NewStyle().Width(labelWidth)
	focusedLabelText = labelText.Foreground(accentColor).Bold(true)
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimColor)
}

// tableStyles returns the contact table styles: underlined header and an
// accent-colored cursor row.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "15"}).
		Background(accentColor).
		Bold(false)
	return s
}

// PaneWidths calculates the table and form pane widths from a total width.
// The table pane gets 1/2 (minimum MinLeftWidth), the form pane the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 2
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}

// columnWidths splits the table's inner width across name, phone and email,
// giving email the remainder.
func columnWidths(inner int) [3]int {
	// Each column renders one cell of padding on both sides.
	avail := inner - 6
	if avail < 3 {
		return [3]int{1, 1, 1}
	}
	name := avail * 3 / 10
	phone := avail * 3 / 10
	return [3]int{name, phone, avail - name - phone}
}
