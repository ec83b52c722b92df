// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"fmt"
	"math"
)

// Circle is defined by its radius. The squared radius is precomputed at
// construction since the area formula is the only consumer.
type Circle struct {
	radius        float64
	radiusSquared float64
}

// NewCircle validates the radius and returns the wrapped shape.
func NewCircle(radius float64) (*Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle r=%g: %w: radius must be positive",
			radius, ErrInvalidGeometry)
	}
	return Wrap(&Circle{radius: radius, radiusSquared: radius * radius}), nil
}

func (c *Circle) Kind() string { return "Circle" }

func (c *Circle) DimensionLabel() string { return "Radius" }

func (c *Circle) PerimeterLabel() string { return "Circumference" }

func (c *Circle) Dimensions(precision int) string {
	return fmt.Sprintf("%.*f", precision, c.radius)
}

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) ComputeArea() float64 {
	return math.Pi * c.radiusSquared
}

func (c *Circle) ComputePerimeter() float64 {
	return 2.0 * math.Pi * c.radius
}
