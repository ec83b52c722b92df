// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geometry

import "fmt"

// Rectangle is an axis-aligned rectangle defined by width and height.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle validates the measurements and returns the wrapped shape.
func NewRectangle(width, height float64) (*Shape, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rectangle %gx%g: %w: dimensions must be positive",
			width, height, ErrInvalidGeometry)
	}
	return Wrap(&Rectangle{width: width, height: height}), nil
}

func (r *Rectangle) Kind() string { return "Rectangle" }

func (r *Rectangle) DimensionLabel() string { return "Dimensions" }

func (r *Rectangle) Dimensions(precision int) string {
	return fmt.Sprintf("%.*f x %.*f", precision, r.width, precision, r.height)
}

func (r *Rectangle) Width() float64 { return r.width }

func (r *Rectangle) Height() float64 { return r.height }

func (r *Rectangle) ComputeArea() float64 {
	return r.width * r.height
}

func (r *Rectangle) ComputePerimeter() float64 {
	return 2.0 * (r.width + r.height)
}
