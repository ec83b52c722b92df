// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectDemoSet(t *testing.T) {
	shapes := DemoSet()
	stats := Collect(shapes)

	wantTotalArea := 15.0 + math.Pi*16.0 + 6.0 + 15.0 + math.Pi*6.25

	assert.Equal(t, 5, stats.Count)
	assert.InDelta(t, wantTotalArea, stats.TotalArea, 1e-9)
	assert.InDelta(t, 105.90, stats.TotalArea, 0.005)

	avg, err := stats.AverageArea()
	assert.NoError(t, err)
	assert.InDelta(t, wantTotalArea/5.0, avg, 1e-9)
}

func TestCollectEmpty(t *testing.T) {
	stats := Collect(nil)
	assert.Equal(t, 0, stats.Count)

	_, err := stats.AverageArea()
	assert.ErrorIs(t, err, ErrEmptyCollection)

	_, err = stats.AveragePerimeter()
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestCollectUsesMemoizedValues(t *testing.T) {
	fig := &countingFigure{}
	shapes := []*Shape{Wrap(fig)}

	// Prime the caches, then fold twice. The formulas must not re-run.
	_ = shapes[0].Area()
	_ = shapes[0].Perimeter()
	_ = Collect(shapes)
	second := Collect(shapes)

	assert.Equal(t, 1, fig.areaCalls)
	assert.Equal(t, 1, fig.perimeterCalls)
	assert.InDelta(t, 42.0, second.TotalArea, 1e-9)
	assert.InDelta(t, 24.0, second.TotalPerimeter, 1e-9)
}
