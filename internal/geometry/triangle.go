// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"fmt"
	"math"
)

// Triangle is defined by its three side lengths. The semi-perimeter feeds
// both Heron's formula and the perimeter, so it is precomputed at
// construction.
type Triangle struct {
	a, b, c       float64
	semiPerimeter float64
}

// NewTriangle validates the side lengths and returns the wrapped shape.
// Sides that violate the triangle inequality are rejected here rather than
// letting Heron's radicand go negative and leak a NaN into aggregate sums.
func NewTriangle(a, b, c float64) (*Shape, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("triangle %g,%g,%g: %w: sides must be positive",
			a, b, c, ErrInvalidGeometry)
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return nil, fmt.Errorf("triangle %g,%g,%g: %w: sides violate the triangle inequality",
			a, b, c, ErrInvalidGeometry)
	}
	return Wrap(&Triangle{a: a, b: b, c: c, semiPerimeter: (a + b + c) / 2.0}), nil
}

func (t *Triangle) Kind() string { return "Triangle" }

func (t *Triangle) DimensionLabel() string { return "Sides" }

func (t *Triangle) Dimensions(precision int) string {
	return fmt.Sprintf("%.*f, %.*f, %.*f",
		precision, t.a, precision, t.b, precision, t.c)
}

func (t *Triangle) Sides() (a, b, c float64) { return t.a, t.b, t.c }

// ComputeArea applies Heron's formula. The constructor guarantees the
// radicand is non-negative.
func (t *Triangle) ComputeArea() float64 {
	s := t.semiPerimeter
	return math.Sqrt(s * (s - t.a) * (s - t.b) * (s - t.c))
}

func (t *Triangle) ComputePerimeter() float64 {
	return 2.0 * t.semiPerimeter
}
