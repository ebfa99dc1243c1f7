// Copyright (c) 2026, The Linearscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearscale

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"cogentcore.org/core/core"
	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b)
	assert.Equal(t, 0, ls.Value)
	assert.Equal(t, 0, ls.Min)
	assert.Equal(t, 100, ls.Max)
	assert.Equal(t, 26, ls.LineCount)
	assert.Equal(t, 6, ls.LabelCount)
	assert.Equal(t, Left, ls.Align)
	b.AssertRender(t, "scale/basic")
}

func TestScaleValue(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b).SetValue(50)
	assert.Equal(t, 50, ls.Value)
	b.AssertRender(t, "scale/value")
}

func TestScaleValueClamp(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b)
	ls.SetValue(150)
	assert.Equal(t, 100, ls.Value)
	ls.SetValue(-20)
	assert.Equal(t, 0, ls.Value)

	// setting the stored value again is a no-op
	ls.SetValue(ls.Value)
	assert.Equal(t, 0, ls.Value)
}

func TestScaleRangeReclamp(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b).SetRange(0, 200).SetValue(150)
	assert.Equal(t, 150, ls.Value)
	ls.SetRange(0, 50)
	assert.Equal(t, 50, ls.Value)
	ls.SetRange(75, 100)
	assert.Equal(t, 75, ls.Value)
}

func TestScaleTicksRejected(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b)
	ls.SetTicks(0, 5)
	assert.Equal(t, 26, ls.LineCount)
	assert.Equal(t, 6, ls.LabelCount)
	ls.SetTicks(11, 3)
	assert.Equal(t, 11, ls.LineCount)
	assert.Equal(t, 3, ls.LabelCount)
}

func TestScaleAlign(t *testing.T) {
	for _, al := range []Alignments{Top, Bottom, Left, Right} {
		b := core.NewBody()
		NewScale(b).SetAlign(al).SetValue(50)
		b.AssertRender(t, "scale/align-"+strings.ToLower(al.String()))
	}
}

func TestScaleFormat(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b).SetFormat(func(v int) string {
		return fmt.Sprintf("%d%%", v)
	})
	assert.Equal(t, "50%", ls.labelText(50))
	b.AssertRender(t, "scale/format")
}

func TestScaleDegenerateRange(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b).SetRange(5, 5)
	assert.Equal(t, 5, ls.Value)
	b.AssertRender(t, "scale/degenerate")
}

func TestScaleSingleLabel(t *testing.T) {
	b := core.NewBody()
	NewScale(b).SetTicks(26, 1).SetValue(50)
	b.AssertRender(t, "scale/single-label")
}

func TestScaleTooltip(t *testing.T) {
	b := core.NewBody()
	ls := NewScale(b).SetValue(42)
	tt, _ := ls.WidgetTooltip(image.Point{})
	assert.Equal(t, "(value: 42, minimum: 0, maximum: 100)", tt)
	ls.SetTooltip("Pressure")
	tt, _ = ls.WidgetTooltip(image.Point{})
	assert.Equal(t, "Pressure (value: 42, minimum: 0, maximum: 100)", tt)
}
