// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/shapectl/internal/geometry"
)

// Shapes turns command-line shape specs into a shape collection. Each arg is
// either a compact spec (rect:5x3, circle:4, tri:3,4,5) or an inline JSON
// object/array of objects.
func Shapes(args []string) ([]*geometry.Shape, error) {
	//nolint:prealloc // JSON args may expand to any number of shapes.
	var shapes []*geometry.Shape

	for _, arg := range args {
		parsed, err := One(arg)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, parsed...)
	}

	log.Debugf("parsed %d shapes from %d args", len(shapes), len(args))
	return shapes, nil
}

// One parses a single argument. JSON args may yield several shapes.
func One(arg string) ([]*geometry.Shape, error) {
	trimmed := strings.TrimSpace(arg)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return fromJSON(trimmed)
	}

	shape, err := fromCompact(trimmed)
	if err != nil {
		return nil, err
	}
	return []*geometry.Shape{shape}, nil
}

// fromCompact parses the kind:dimensions shorthand.
func fromCompact(arg string) (*geometry.Shape, error) {
	kind, dims, found := strings.Cut(arg, ":")
	if !found || dims == "" {
		return nil, fmt.Errorf("bad shape spec %q: want kind:dimensions", arg)
	}

	switch strings.ToLower(kind) {
	case "rect", "rectangle", "r":
		w, h, err := splitPair(dims, "x")
		if err != nil {
			return nil, fmt.Errorf("bad shape spec %q: %w", arg, err)
		}
		return geometry.NewRectangle(w, h)
	case "circle", "c":
		r, err := strconv.ParseFloat(dims, 64)
		if err != nil {
			return nil, fmt.Errorf("bad shape spec %q: radius is not a number", arg)
		}
		return geometry.NewCircle(r)
	case "tri", "triangle", "t":
		sides, err := splitFloats(dims, ",")
		if err != nil || len(sides) != 3 {
			return nil, fmt.Errorf("bad shape spec %q: want three comma-separated sides", arg)
		}
		return geometry.NewTriangle(sides[0], sides[1], sides[2])
	default:
		return nil, fmt.Errorf("bad shape spec %q: unknown kind %q", arg, kind)
	}
}

// fromJSON parses an inline JSON object or array of objects of the form
// {"kind":"rectangle","width":5,"height":3}, {"kind":"circle","radius":4} or
// {"kind":"triangle","sides":[3,4,5]}.
func fromJSON(arg string) ([]*geometry.Shape, error) {
	if !gjson.Valid(arg) {
		return nil, fmt.Errorf("bad shape spec: invalid JSON: %s", arg)
	}

	doc := gjson.Parse(arg)
	entries := []gjson.Result{doc}
	if doc.IsArray() {
		entries = doc.Array()
	}

	//nolint:prealloc
	var shapes []*geometry.Shape
	for _, entry := range entries {
		shape, err := fromJSONObject(entry)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}

	return shapes, nil
}

func fromJSONObject(obj gjson.Result) (*geometry.Shape, error) {
	kind := obj.Get("kind")
	if !kind.Exists() {
		return nil, fmt.Errorf("bad shape spec: missing kind in %s", obj.Raw)
	}

	switch strings.ToLower(kind.String()) {
	case "rect", "rectangle":
		width, height := obj.Get("width"), obj.Get("height")
		if !width.Exists() || !height.Exists() {
			return nil, fmt.Errorf("bad shape spec: rectangle needs width and height in %s", obj.Raw)
		}
		return geometry.NewRectangle(width.Float(), height.Float())
	case "circle":
		radius := obj.Get("radius")
		if !radius.Exists() {
			return nil, fmt.Errorf("bad shape spec: circle needs radius in %s", obj.Raw)
		}
		return geometry.NewCircle(radius.Float())
	case "tri", "triangle":
		sides := obj.Get("sides").Array()
		if len(sides) != 3 {
			return nil, fmt.Errorf("bad shape spec: triangle needs three sides in %s", obj.Raw)
		}
		return geometry.NewTriangle(sides[0].Float(), sides[1].Float(), sides[2].Float())
	default:
		return nil, fmt.Errorf("bad shape spec: unknown kind %q in %s", kind.String(), obj.Raw)
	}
}

func splitPair(s string, delim string) (float64, float64, error) {
	left, right, found := strings.Cut(strings.ToLower(s), delim)
	if !found {
		return 0, 0, fmt.Errorf("want WIDTH%sHEIGHT", delim)
	}
	a, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", left)
	}
	b, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", right)
	}
	return a, b, nil
}

func splitFloats(s string, delim string) ([]float64, error) {
	parts := strings.Split(s, delim)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		out = append(out, v)
	}
	return out, nil
}
