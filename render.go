// Copyright (c) 2026, The Linearscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearscale

import (
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/text/rich"
)

func (ls *Scale) Render() {
	ls.WidgetBase.Render() // background box
	ls.renderScale(&ls.Scene.Painter)
}

// renderScale emits the tick lines and labels for one render pass, in
// ascending tick index order, each major tick's label immediately after its
// line. It holds no state between passes: all geometry and style values are
// read fresh from the widget.
func (ls *Scale) renderScale(pc *paint.Painter) {
	if ls.LineCount <= 1 {
		return
	}
	pos := ls.Geom.Pos.Content
	sz := ls.Geom.Size.Actual.Content
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	horiz := sz.X >= sz.Y
	length := sz.X
	if !horiz {
		length = sz.Y
	}
	level := tickLevel(ls.Value, ls.Min, ls.Max, ls.LineCount)
	step := majorStep(ls.LineCount, ls.LabelCount)

	uc := &ls.Styles.UnitContext
	ls.TickLength.ToDots(uc)
	ls.LineWidth.ToDots(uc)
	ls.EndLineWidth.ToDots(uc)

	lineColor := colors.ToUniform(ls.LineColor)
	gradColor := colors.ToUniform(ls.GradientColor)

	pc.Fill.Color = nil
	for i := 0; i < ls.LineCount; i++ {
		minor := minorTick(i, step)
		tlen := ls.TickLength.Dots
		if minor {
			tlen /= 2
		}
		p1, p2 := tickEndpoints(pos, sz, ls.Align, horiz, tickAt(length, i, ls.LineCount), tlen)
		if i >= level {
			pc.Stroke.Color = ls.EndColor
			pc.Stroke.Width.Dot(ls.EndLineWidth.Dots)
		} else {
			mix := colors.BlendRGB(blendPercent(i, ls.LineCount), lineColor, gradColor)
			pc.Stroke.Color = colors.Uniform(mix)
			pc.Stroke.Width.Dot(ls.LineWidth.Dots)
		}
		pc.Line(p1.X, p1.Y, p2.X, p2.Y)
		pc.PathDone()
		if !minor && ls.LabelCount > 0 {
			ls.renderLabel(pc, i, p1, p2, tlen, horiz)
		}
	}
	pc.Stroke.Color = nil
}

// labelText returns the label text for the given tick value.
func (ls *Scale) labelText(value int) string {
	if ls.Format != nil {
		return ls.Format(value)
	}
	return strconv.Itoa(value)
}

// renderLabel measures and draws the label for major tick i, adjacent to the
// tick with endpoints p1, p2: centered on the tick position along the primary
// axis and offset outward past the tick on the secondary axis.
func (ls *Scale) renderLabel(pc *paint.Painter, i int, p1, p2 math32.Vector2, tlen float32, horiz bool) {
	if ls.Scene == nil || ls.Scene.TextShaper == nil {
		return
	}
	txt := ls.labelText(tickValue(i, ls.Min, ls.Max, ls.LineCount))
	sty, tsty := ls.Styles.NewRichText()
	lns := ls.Scene.TextShaper.WrapLines(rich.NewText(sty, []rune(txt)), sty, tsty,
		&core.AppearanceSettings.Text, math32.Vec2(10000, 1000))
	lsz := lns.Bounds.Size()
	pad := ls.Styles.Padding.Dots()

	var lp math32.Vector2
	if horiz {
		lp.X = p1.X - lsz.X/2
		if ls.Align == Top {
			lp.Y = p2.Y + pad.Bottom
		} else {
			lp.Y = p1.Y - tlen - lsz.Y/8
		}
	} else {
		lp.Y = p1.Y - lsz.Y/2
		if ls.Align == Left {
			lp.X = p2.X
		} else {
			lp.X = p1.X - lsz.X
		}
	}
	pc.DrawText(lns, lp)
}
