// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrInvalidGeometry is returned by constructors when measurements
	// cannot describe a real figure.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrEmptyCollection is returned when an average is requested over a
	// collection with no shapes.
	ErrEmptyCollection = errors.New("empty shape collection")
)

// Figure is the capability set every concrete shape variant provides:
// the two closed-form metric formulas plus enough display metadata to
// describe itself.
type Figure interface {
	Kind() string
	DimensionLabel() string
	Dimensions(precision int) string
	ComputeArea() float64
	ComputePerimeter() float64
}

// perimeterNamer is implemented by figures whose perimeter metric goes by
// another name in reports (a circle's circumference).
type perimeterNamer interface {
	PerimeterLabel() string
}

// Shape pairs a Figure with the shared memoization layer. The formulas run
// at most once per shape; measurements are fixed at construction so the
// cached values never need invalidation. The unset->set transition is
// guarded by sync.OnceValue, which keeps the accessors safe for concurrent
// readers.
type Shape struct {
	name      string
	figure    Figure
	area      func() float64
	perimeter func() float64
}

// Wrap builds a Shape around the given figure. Callers normally reach this
// through the New* constructors, which validate measurements first.
func Wrap(f Figure) *Shape {
	return &Shape{
		name:      f.Kind(),
		figure:    f,
		area:      sync.OnceValue(f.ComputeArea),
		perimeter: sync.OnceValue(f.ComputePerimeter),
	}
}

// Name returns the display name fixed at construction.
func (s *Shape) Name() string { return s.name }

// Figure returns the underlying concrete variant.
func (s *Shape) Figure() Figure { return s.figure }

// Area returns the memoized area, computing it on first call.
func (s *Shape) Area() float64 { return s.area() }

// Perimeter returns the memoized perimeter, computing it on first call.
func (s *Shape) Perimeter() float64 { return s.perimeter() }

// PerimeterLabel returns the report label for the perimeter metric.
func (s *Shape) PerimeterLabel() string {
	if n, ok := s.figure.(perimeterNamer); ok {
		return n.PerimeterLabel()
	}
	return "Perimeter"
}

// Describe reports the shape's name, defining measurements and both metrics
// as a fixed-point text block.
func (s *Shape) Describe(precision int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shape: %s\n", s.name)
	fmt.Fprintf(&b, "%s: %s\n", s.figure.DimensionLabel(), s.figure.Dimensions(precision))
	fmt.Fprintf(&b, "Area: %.*f\n", precision, s.Area())
	fmt.Fprintf(&b, "%s: %.*f\n", s.PerimeterLabel(), precision, s.Perimeter())
	b.WriteString("------------------------")
	return b.String()
}
