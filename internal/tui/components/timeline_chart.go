package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// TimelineChart renders comparison timeline points as two survival rows per age
type TimelineChart struct {
	Title  string
	Points []compare.TimelinePoint
}

// NewTimelineChart creates a chart over the given points
func NewTimelineChart(title string, points []compare.TimelinePoint) *TimelineChart {
	return &TimelineChart{Title: title, Points: points}
}

// Render returns the styled chart
func (c *TimelineChart) Render() string {
	if len(c.Points) == 0 {
		return tuistyles.InfoStyle.Render("No remaining years to chart")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.TitleStyle.Render(c.Title))
		b.WriteString("\n")
	}

	original := lipgloss.NewStyle().Foreground(tuistyles.ColorOriginal)
	modified := lipgloss.NewStyle().Foreground(tuistyles.ColorModified)

	for _, p := range c.Points {
		b.WriteString(fmt.Sprintf("%-22s %s %s\n",
			p.Label,
			original.Render(cell(p.Original)),
			modified.Render(cell(p.Modified))))
	}

	b.WriteString("\n")
	b.WriteString(original.Render("■ original") + "  " + modified.Render("■ modified"))
	return b.String()
}

func cell(alive bool) string {
	if alive {
		return "■"
	}
	return "·"
}
