// Copyright (c) 2026, The Linearscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearscale

import "cogentcore.org/core/math32"

// majorStep returns the tick index stride between major (labeled) ticks.
// A stride of 0 means that only index 0 is major.
func majorStep(lineCount, labelCount int) int {
	if labelCount > 1 {
		return lineCount / (labelCount - 1)
	}
	return 0
}

// minorTick reports whether tick i is minor: unlabeled and half length.
func minorTick(i, step int) bool {
	if step <= 0 {
		return i != 0
	}
	return i%step != 0
}

// tickLevel returns the tick index at and after which ticks are rendered as
// beyond the current value. A degenerate range (max == min) yields 0, so
// every tick renders that way.
func tickLevel(value, minVal, maxVal, lineCount int) int {
	if maxVal == minVal {
		return 0
	}
	return (value - minVal) * lineCount / (maxVal - minVal)
}

// tickValue returns the numeric label value for tick i, evenly spaced across
// the range by tick index, independent of the current value.
func tickValue(i, minVal, maxVal, lineCount int) int {
	if maxVal == minVal || lineCount <= 1 {
		return minVal
	}
	return (maxVal-minVal)*i/(lineCount-1) + minVal
}

// blendPercent returns the gradient mix percentage for tick i: 0 is pure
// gradient color, approaching the main line color as i grows.
func blendPercent(i, lineCount int) float32 {
	return 100 * float32(i) / float32(lineCount)
}

// tickAt returns the position of tick i along the primary axis, linearly
// interpolated across the given axis length, measured from the start edge.
func tickAt(length float32, i, lineCount int) float32 {
	return math32.Round(length * float32(i) / float32(lineCount-1))
}

// tickEndpoints returns the two endpoints of the line segment for one tick.
// pos and size describe the indicator area (the widget content box), at is
// the tick position along the primary axis, and tlen is the projection
// length from the aligned edge inward. Horizontal scales anchor tick 0 at
// the left edge, vertical scales at the bottom edge.
func tickEndpoints(pos, size math32.Vector2, align Alignments, horiz bool, at, tlen float32) (p1, p2 math32.Vector2) {
	if horiz {
		x := pos.X + at
		if align == Top {
			return math32.Vec2(x, pos.Y), math32.Vec2(x, pos.Y+tlen)
		}
		return math32.Vec2(x, pos.Y+size.Y-tlen), math32.Vec2(x, pos.Y+size.Y)
	}
	y := pos.Y + size.Y - at
	if align == Left {
		return math32.Vec2(pos.X, y), math32.Vec2(pos.X+tlen, y)
	}
	return math32.Vec2(pos.X+size.X-tlen, y), math32.Vec2(pos.X+size.X, y)
}
