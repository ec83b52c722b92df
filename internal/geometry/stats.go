// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geometry

// Stats holds aggregate metrics folded from a shape collection. It is a
// transient value recomputed on demand, never stored.
type Stats struct {
	TotalArea      float64
	TotalPerimeter float64
	Count          int
}

// Collect folds the collection into aggregate statistics using the memoized
// accessors, so each shape's formulas still run at most once.
func Collect(shapes []*Shape) Stats {
	stats := Stats{Count: len(shapes)}
	for _, shape := range shapes {
		stats.TotalArea += shape.Area()
		stats.TotalPerimeter += shape.Perimeter()
	}
	return stats
}

// AverageArea returns the mean area. An empty collection is an explicit
// error, not an Inf/NaN to propagate.
func (s Stats) AverageArea() (float64, error) {
	if s.Count == 0 {
		return 0, ErrEmptyCollection
	}
	return s.TotalArea / float64(s.Count), nil
}

// AveragePerimeter returns the mean perimeter, with the same empty-collection
// policy as AverageArea.
func (s Stats) AveragePerimeter() (float64, error) {
	if s.Count == 0 {
		return 0, ErrEmptyCollection
	}
	return s.TotalPerimeter / float64(s.Count), nil
}
