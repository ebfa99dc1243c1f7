// Copyright (c) 2026, The Linearscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linearscale provides a linear scale indicator widget for Cogent
// Core: a rectangular gauge that renders a ruler of tick marks, optional
// numeric labels, and a value-driven gradient fill along a range.
package linearscale

import (
	"fmt"
	"image"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
)

// Scale is a linear scale indicator: a read-only gauge that renders a ruler
// of tick marks along its range, with numeric labels on the major ticks and
// a gradient sweep across the ticks below the current value. The orientation
// is derived from the content box: wider than tall renders horizontally
// (ticks left to right), otherwise vertically (ticks bottom to top), with
// ticks projecting inward from the side given by [Scale.Align].
type Scale struct {
	core.WidgetBase

	// Value is the current value indicated by the scale. It is always
	// clamped to [Scale.Min, Scale.Max]. Use [Scale.SetValue] to set it.
	Value int `set:"-"`

	// Min is the minimum value of the range. It defaults to 0.
	// Use [Scale.SetRange] to set it.
	Min int `set:"-"`

	// Max is the maximum value of the range. It defaults to 100.
	// Use [Scale.SetRange] to set it.
	Max int `set:"-"`

	// LineCount is the total number of tick lines rendered across the
	// range. It defaults to 26. Use [Scale.SetTicks] to set it.
	LineCount int `set:"-"`

	// LabelCount is the number of major ticks that receive a numeric
	// label. It defaults to 6. Use [Scale.SetTicks] to set it.
	LabelCount int `set:"-"`

	// Align is the side of the scale that the ticks project from.
	// It defaults to [Left]. Use [Scale.SetAlign] to set it.
	Align Alignments `set:"-"`

	// Format, if non-nil, is used to format tick label values instead of
	// plain integer formatting. It only affects the next render, so
	// [Scale.SetFormat] does not request a redraw.
	Format func(value int) string `set:"-" json:"-" xml:"-"`

	// TickLength is the projected length of a major tick, from the aligned
	// edge inward. Minor ticks are half as long. It should be set in a
	// Styler, just like the main style object is.
	TickLength units.Value

	// LineWidth is the stroke width of the ticks below the current value.
	LineWidth units.Value

	// EndLineWidth is the stroke width of the ticks at or beyond the
	// current value.
	EndLineWidth units.Value

	// LineColor is the color that the tick gradient sweeps toward as the
	// tick index grows. It should be set in a Styler.
	LineColor image.Image

	// GradientColor is the color of the tick at the minimum end of the
	// scale; ticks below the current value blend from it toward
	// [Scale.LineColor]. It should be set in a Styler.
	GradientColor image.Image

	// EndColor is the color of the ticks at or beyond the current value.
	// It should be set in a Styler.
	EndColor image.Image
}

// Alignments are the sides of the scale that the ticks project from.
// Top and Bottom apply to horizontal scales and Left and Right to vertical
// ones, but the pairing is not enforced: whichever alignment is stored is
// used for the derived orientation (a horizontal scale treats anything other
// than [Top] as [Bottom], and a vertical one treats anything other than
// [Left] as [Right]).
type Alignments int32

const (
	// Top projects ticks downward from the top edge, with labels below them.
	Top Alignments = iota

	// Bottom projects ticks upward from the bottom edge, with labels above them.
	Bottom

	// Left projects ticks rightward from the left edge, with labels after them.
	Left

	// Right projects ticks leftward from the right edge, with labels before them.
	Right
)

func (a Alignments) String() string {
	switch a {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Alignments(%d)", int(a))
}

// NewScale returns a new [Scale] with the given optional parent.
func NewScale(parent ...tree.Node) *Scale {
	return tree.New[Scale](parent...)
}

func (ls *Scale) Init() {
	ls.WidgetBase.Init()
	ls.Max = 100
	ls.LineCount = 26
	ls.LabelCount = 6
	ls.Align = Left
	ls.Styler(func(s *styles.Style) {
		ls.TickLength = units.Dp(12)
		ls.LineWidth = units.Dp(2)
		ls.EndLineWidth = units.Dp(1)
		ls.LineColor = colors.Scheme.Primary.Base
		ls.GradientColor = colors.Scheme.Tertiary.Base
		ls.EndColor = colors.Scheme.OutlineVariant

		s.Background = colors.Scheme.SurfaceContainerLow
		s.Border.Radius = styles.BorderRadiusSmall
		s.Padding.Set(units.Dp(8))
	})
	ls.FinalStyler(func(s *styles.Style) {
		if ls.Align == Top || ls.Align == Bottom {
			s.Min.X.Em(16)
			s.Min.Y.Em(4)
		} else {
			s.Min.X.Em(4)
			s.Min.Y.Em(16)
		}
	})
}

func (ls *Scale) WidgetValue() any { return &ls.Value }

// SetValue sets the current value, clamped to [Scale.Min, Scale.Max], and
// requests a render. It is a no-op if the given value equals the stored one.
func (ls *Scale) SetValue(value int) *Scale {
	if ls.Value == value {
		return ls
	}
	ls.Value = min(max(value, ls.Min), ls.Max)
	ls.NeedsRender()
	return ls
}

// SetRange sets the minimum and maximum values of the scale and requests a
// render. If the current value falls outside the new range, it is re-clamped
// through [Scale.SetValue]. It is a no-op if both bounds are unchanged.
// Callers are responsible for keeping the minimum at or below the maximum.
func (ls *Scale) SetRange(minVal, maxVal int) *Scale {
	if ls.Min == minVal && ls.Max == maxVal {
		return ls
	}
	ls.Min = minVal
	ls.Max = maxVal
	if ls.Value > maxVal {
		ls.SetValue(maxVal)
	}
	if ls.Value < minVal {
		ls.SetValue(minVal)
	}
	ls.NeedsRender()
	return ls
}

// SetTicks sets the total number of tick lines and the number of labeled
// major ticks, and requests a render. A lineCount less than 1 is silently
// ignored, leaving both counts unchanged. It is a no-op if both counts are
// unchanged.
func (ls *Scale) SetTicks(lineCount, labelCount int) *Scale {
	if lineCount < 1 {
		return ls
	}
	if ls.LineCount == lineCount && ls.LabelCount == labelCount {
		return ls
	}
	ls.LineCount = lineCount
	ls.LabelCount = labelCount
	ls.NeedsRender()
	return ls
}

// SetAlign sets the side of the scale that the ticks project from and
// requests a render. It is a no-op if the alignment is unchanged.
func (ls *Scale) SetAlign(align Alignments) *Scale {
	if ls.Align == align {
		return ls
	}
	ls.Align = align
	ls.NeedsRender()
	return ls
}

// SetFormat sets the label formatting function. It does not request a
// render, as the formatter only takes effect on the next render pass.
func (ls *Scale) SetFormat(f func(value int) string) *Scale {
	ls.Format = f
	return ls
}

func (ls *Scale) WidgetTooltip(pos image.Point) (string, image.Point) {
	res := ls.Tooltip
	if res != "" {
		res += " "
	}
	res += fmt.Sprintf("(value: %d, minimum: %d, maximum: %d)", ls.Value, ls.Min, ls.Max)
	return res, ls.DefaultTooltipPos()
}
