package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/speechdrill/internal/ui/theme"
)

// ProgressBar shows how far through the session deck the user is.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// Fraction is Current/Total clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Current)/float64(p.Total), 0), 1)
}

// View renders the bar followed by "current/total".
func (p ProgressBar) View() string {
	label := fmt.Sprintf("  %d/%d", p.Current, p.Total)
	barWidth := max(p.Width-len(label), 4)

	filled := int(float64(barWidth) * p.Fraction())
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		theme.Hint.Render(label)
}
