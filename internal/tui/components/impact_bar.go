package components

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// ImpactBar draws a factor's year delta as a horizontal bar. Gains fill with
// solid cells, losses with shaded cells; the bar is capped at Width cells.
type ImpactBar struct {
	Label string
	Years decimal.Decimal
	Scale decimal.Decimal // years represented by a full bar
	Width int
}

// NewImpactBar creates a bar where Width cells cover ten years
func NewImpactBar(label string, years decimal.Decimal) *ImpactBar {
	return &ImpactBar{
		Label: label,
		Years: years,
		Scale: decimal.NewFromInt(10),
		Width: 20,
	}
}

// WithWidth sets the bar width in cells
func (b *ImpactBar) WithWidth(width int) *ImpactBar {
	b.Width = width
	return b
}

// Cells returns how many cells the delta fills
func (b *ImpactBar) Cells() int {
	if b.Scale.IsZero() || b.Width <= 0 {
		return 0
	}
	cells := b.Years.Abs().Div(b.Scale).Mul(decimal.NewFromInt(int64(b.Width))).Round(0).IntPart()
	if cells > int64(b.Width) {
		cells = int64(b.Width)
	}
	return int(cells)
}

// Bar returns the unstyled bar glyphs
func (b *ImpactBar) Bar() string {
	glyph := "█"
	if b.Years.IsNegative() {
		glyph = "░"
	}
	return strings.Repeat(glyph, b.Cells())
}

// Render returns the label, padded bar and signed delta on one line
func (b *ImpactBar) Render() string {
	bar := b.Bar()
	pad := strings.Repeat(" ", b.Width-b.Cells())
	return fmt.Sprintf("%-20s %s%s %s",
		tuistyles.MetricLabelStyle.Render(b.Label),
		tuistyles.ToneStyle(b.Years).Render(bar), pad,
		tuistyles.Signed(b.Years))
}

// RenderPlain is Render without color, for width measurement and tests
func (b *ImpactBar) RenderPlain() string {
	return fmt.Sprintf("%-20s %-*s %s", b.Label, b.Width, b.Bar(), calculation.FormatSignedYears(b.Years))
}
