// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package geometry models the shape catalog. Concrete figures implement the
// Figure formulas; Shape wraps a figure with memoized Area/Perimeter
// accessors and aggregate statistics fold over a collection of shapes.
package geometry
