package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MetricCard is one dashboard counter tile. Filter is the selector the
// card activates when clicked in the interactive dashboard.
type MetricCard struct {
	Title  string
	Value  int
	Filter string
}

// RenderMetricCards renders the four counter tiles in a row, highlighting
// the card whose filter is currently selected.
func RenderMetricCards(cards []MetricCard, selected string) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := fmt.Sprintf("%s\n%s",
			StyleBold.Render(fmt.Sprintf("%d", c.Value)),
			StyleMuted.Render(c.Title),
		)
		if c.Filter == selected {
			rendered = append(rendered, StyleCardSelected.Render(body))
		} else {
			rendered = append(rendered, StyleCard.Render(body))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
