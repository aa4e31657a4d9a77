// Package tooltip builds the overlay shown for a selected item.
package tooltip

import (
	"fmt"
	"math"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// LineAnchorY is the fixed vertical offset of tooltips covering several series.
const LineAnchorY = 50

// Clamp keeps the anchor x within [margin, width-margin] so the overlay stays inside the plot.
func Clamp(anchor domain.Position, width, margin float64) domain.Position {
	lo, hi := margin, width-margin
	if hi < lo {
		hi = lo
	}
	anchor.X = math.Min(math.Max(anchor.X, lo), hi)
	return anchor
}

// Builder accumulates tooltip lines.
type Builder struct {
	t domain.Tooltip
}

func New(title string) *Builder {
	return &Builder{t: domain.Tooltip{Title: title}}
}

func (b *Builder) Line(label, value string) *Builder {
	b.t.Lines = append(b.t.Lines, domain.TooltipLine{Label: label, Value: value})
	return b
}

func (b *Builder) Value(label string, v float64) *Builder {
	return b.Line(label, Int(v))
}

// Percent adds a share line, omitted when the share is undefined.
func (b *Builder) Percent(label string, pct int, ok bool) *Builder {
	if !ok {
		return b
	}
	return b.Line(label, fmt.Sprintf("%d%%", pct))
}

func (b *Builder) At(anchor domain.Position, width, margin float64) *domain.Tooltip {
	t := b.t
	t.Anchor = Clamp(anchor, width, margin)
	return &t
}

// Int renders v truncated toward zero, the way values are labelled on the charts.
func Int(v float64) string {
	return fmt.Sprintf("%d", int(v))
}

// Signed renders a change with an explicit sign.
func Signed(v float64) string {
	if v >= 0 {
		return "+" + Int(v)
	}
	return Int(v)
}

func Range(lo, hi float64) string {
	return Int(lo) + " - " + Int(hi)
}
