// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geometry

// DemoSet returns the canonical demonstration collection. The measurements
// are fixed known-good values, so the figures are built directly rather than
// through the validating constructors.
func DemoSet() []*Shape {
	return []*Shape{
		Wrap(&Rectangle{width: 5.0, height: 3.0}),
		Wrap(&Circle{radius: 4.0, radiusSquared: 16.0}),
		Wrap(&Triangle{a: 3.0, b: 4.0, c: 5.0, semiPerimeter: 6.0}),
		Wrap(&Rectangle{width: 2.5, height: 6.0}),
		Wrap(&Circle{radius: 2.5, radiusSquared: 6.25}),
	}
}
