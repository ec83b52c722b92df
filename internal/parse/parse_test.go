// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/shapectl/internal/geometry"
)

func TestShapesCompact(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantKind string
		wantArea float64
	}{
		{name: "rect", arg: "rect:5x3", wantKind: "Rectangle", wantArea: 15},
		{name: "rectangle alias", arg: "rectangle:2.5x6", wantKind: "Rectangle", wantArea: 15},
		{name: "uppercase delimiter", arg: "rect:5X3", wantKind: "Rectangle", wantArea: 15},
		{name: "circle", arg: "circle:4", wantKind: "Circle", wantArea: 50.26548245743669},
		{name: "short circle", arg: "c:4", wantKind: "Circle", wantArea: 50.26548245743669},
		{name: "triangle", arg: "tri:3,4,5", wantKind: "Triangle", wantArea: 6},
		{name: "triangle with spaces", arg: "triangle:3, 4, 5", wantKind: "Triangle", wantArea: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes, err := Shapes([]string{tt.arg})
			assert.NoError(t, err)
			assert.Len(t, shapes, 1)
			assert.Equal(t, tt.wantKind, shapes[0].Name())
			assert.InDelta(t, tt.wantArea, shapes[0].Area(), 1e-9)
		})
	}
}

func TestShapesJSON(t *testing.T) {
	arg := `[{"kind":"rectangle","width":5,"height":3},
	         {"kind":"circle","radius":4},
	         {"kind":"triangle","sides":[3,4,5]}]`

	shapes, err := Shapes([]string{arg})
	assert.NoError(t, err)
	assert.Len(t, shapes, 3)
	assert.Equal(t, "Rectangle", shapes[0].Name())
	assert.Equal(t, "Circle", shapes[1].Name())
	assert.Equal(t, "Triangle", shapes[2].Name())
}

func TestShapesJSONObject(t *testing.T) {
	shapes, err := Shapes([]string{`{"kind":"circle","radius":2.5}`})
	assert.NoError(t, err)
	assert.Len(t, shapes, 1)
	assert.InDelta(t, 2.5, shapes[0].Figure().(*geometry.Circle).Radius(), 1e-9)
}

func TestShapesErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{name: "unknown kind", arg: "hexagon:5"},
		{name: "missing dimensions", arg: "rect:"},
		{name: "no delimiter", arg: "rect:5"},
		{name: "bad number", arg: "circle:big"},
		{name: "two sides", arg: "tri:3,4"},
		{name: "invalid json", arg: `{"kind":`},
		{name: "json missing kind", arg: `{"radius":4}`},
		{name: "json missing field", arg: `{"kind":"rectangle","width":5}`},
		{name: "json unknown kind", arg: `{"kind":"pentagon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Shapes([]string{tt.arg})
			assert.Error(t, err)
		})
	}
}

func TestShapesGeometryPolicy(t *testing.T) {
	// Construction policy errors surface through the parser unchanged.
	_, err := Shapes([]string{"tri:1,1,10"})
	assert.ErrorIs(t, err, geometry.ErrInvalidGeometry)

	_, err = Shapes([]string{"rect:0x3"})
	assert.ErrorIs(t, err, geometry.ErrInvalidGeometry)
}
