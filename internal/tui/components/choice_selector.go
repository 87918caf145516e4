package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// ChoiceSelector cycles through the choices of one factor in table order
type ChoiceSelector struct {
	Factor    domain.Factor
	Label     string
	Options   []calculation.ChoiceImpact
	Index     int
	IsFocused bool

	// unknown holds a choice the table does not list, shown until the user moves off it
	unknown domain.Choice
}

// NewChoiceSelector creates a selector over the table's choices for f
func NewChoiceSelector(table *calculation.ImpactTable, f domain.Factor) *ChoiceSelector {
	return &ChoiceSelector{
		Factor:  f,
		Label:   calculation.FactorName(f),
		Options: table.Choices(f),
	}
}

// SetFocused sets the focus state
func (c *ChoiceSelector) SetFocused(focused bool) *ChoiceSelector {
	c.IsFocused = focused
	return c
}

// Select moves to choice ch. A choice missing from the table is kept as is
// and scores zero.
func (c *ChoiceSelector) Select(ch domain.Choice) {
	for i, o := range c.Options {
		if o.Choice == ch {
			c.Index = i
			c.unknown = ""
			return
		}
	}
	c.Index = 0
	c.unknown = ch
}

// Choice returns the selected choice
func (c *ChoiceSelector) Choice() domain.Choice {
	if c.unknown != "" || len(c.Options) == 0 {
		return c.unknown
	}
	return c.Options[c.Index].Choice
}

// Years returns the delta of the selected choice
func (c *ChoiceSelector) Years() decimal.Decimal {
	if c.unknown != "" || len(c.Options) == 0 {
		return decimal.Zero
	}
	return c.Options[c.Index].Years
}

// Next moves to the following choice, stopping at the last one
func (c *ChoiceSelector) Next() bool {
	if c.unknown != "" {
		c.unknown = ""
		return len(c.Options) > 0
	}
	if c.Index+1 >= len(c.Options) {
		return false
	}
	c.Index++
	return true
}

// Prev moves to the preceding choice, stopping at the first one
func (c *ChoiceSelector) Prev() bool {
	if c.unknown != "" {
		c.unknown = ""
		return len(c.Options) > 0
	}
	if c.Index == 0 {
		return false
	}
	c.Index--
	return true
}

// Render returns the factor label, selected choice and its delta
func (c *ChoiceSelector) Render() string {
	labelStyle := tuistyles.UnselectedItemStyle
	cursor := "  "
	if c.IsFocused {
		labelStyle = tuistyles.SelectedItemStyle
		cursor = "▸ "
	}

	value := calculation.ChoiceLabel(c.Factor, c.Choice())
	if c.IsFocused {
		value = "◀ " + value + " ▶"
	}

	return fmt.Sprintf("%s%s %s %s",
		cursor,
		labelStyle.Width(20).Render(c.Label),
		lipgloss.NewStyle().Width(28).Render(value),
		tuistyles.Signed(c.Years()))
}

// RenderOptions lists every choice with its delta, marking the selected one
func (c *ChoiceSelector) RenderOptions() string {
	var b strings.Builder
	for i, o := range c.Options {
		marker := "○"
		style := tuistyles.UnselectedItemStyle
		if c.unknown == "" && i == c.Index {
			marker = "●"
			style = tuistyles.SelectedItemStyle
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", marker,
			style.Width(26).Render(calculation.ChoiceLabel(c.Factor, o.Choice)),
			tuistyles.Signed(o.Years)))
	}
	return b.String()
}
