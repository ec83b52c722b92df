// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingFigure counts formula invocations so memoization is observable.
type countingFigure struct {
	areaCalls      int
	perimeterCalls int
}

func (f *countingFigure) Kind() string { return "Counting" }

func (f *countingFigure) DimensionLabel() string { return "Calls" }

func (f *countingFigure) Dimensions(precision int) string { return "n/a" }

func (f *countingFigure) ComputeArea() float64 { f.areaCalls++; return 42.0 }

func (f *countingFigure) ComputePerimeter() float64 { f.perimeterCalls++; return 24.0 }

func TestRectangleFormulas(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantArea      float64
		wantPerimeter float64
	}{
		{name: "5x3", width: 5, height: 3, wantArea: 15, wantPerimeter: 16},
		{name: "2.5x6", width: 2.5, height: 6, wantArea: 15, wantPerimeter: 17},
		{name: "unit square", width: 1, height: 1, wantArea: 1, wantPerimeter: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewRectangle(tt.width, tt.height)
			assert.NoError(t, err)
			assert.InDelta(t, tt.wantArea, s.Area(), 1e-9)
			assert.InDelta(t, tt.wantPerimeter, s.Perimeter(), 1e-9)
			assert.Equal(t, "Rectangle", s.Name())
		})
	}
}

func TestCircleFormulas(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{name: "r=4", radius: 4},
		{name: "r=2.5", radius: 2.5},
		{name: "r=1", radius: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewCircle(tt.radius)
			assert.NoError(t, err)
			assert.InDelta(t, math.Pi*tt.radius*tt.radius, s.Area(), 1e-12)
			assert.InDelta(t, 2*math.Pi*tt.radius, s.Perimeter(), 1e-12)
			assert.Equal(t, "Circumference", s.PerimeterLabel())
		})
	}
}

func TestTriangleFormulas(t *testing.T) {
	// 3-4-5 right triangle: area is exactly 6, perimeter exactly 12.
	s, err := NewTriangle(3, 4, 5)
	assert.NoError(t, err)
	assert.InDelta(t, 6.0, s.Area(), 1e-9)
	assert.InDelta(t, 12.0, s.Perimeter(), 1e-9)
}

func TestInvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Shape, error)
	}{
		{name: "zero width", make: func() (*Shape, error) { return NewRectangle(0, 3) }},
		{name: "negative height", make: func() (*Shape, error) { return NewRectangle(5, -3) }},
		{name: "zero radius", make: func() (*Shape, error) { return NewCircle(0) }},
		{name: "negative radius", make: func() (*Shape, error) { return NewCircle(-1) }},
		{name: "zero side", make: func() (*Shape, error) { return NewTriangle(0, 4, 5) }},
		{name: "degenerate triangle", make: func() (*Shape, error) { return NewTriangle(1, 1, 10) }},
		{name: "flat triangle", make: func() (*Shape, error) { return NewTriangle(1, 2, 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.make()
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func TestMemoization(t *testing.T) {
	fig := &countingFigure{}
	s := Wrap(fig)

	first := s.Area()
	second := s.Area()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fig.areaCalls, "area formula should run exactly once")

	// Perimeter has its own cell and is untouched until first read.
	assert.Equal(t, 0, fig.perimeterCalls)
	_ = s.Perimeter()
	_ = s.Perimeter()
	assert.Equal(t, 1, fig.perimeterCalls, "perimeter formula should run exactly once")
}

func TestDescribe(t *testing.T) {
	s, err := NewCircle(4)
	assert.NoError(t, err)

	want := "Shape: Circle\n" +
		"Radius: 4.00\n" +
		"Area: 50.27\n" +
		"Circumference: 25.13\n" +
		"------------------------"
	assert.Equal(t, want, s.Describe(2))
}
