// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/shapectl/internal/geometry"
)

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"shapectl", "demo"})
	assert.NoError(t, err)
	assert.Equal(t, "shapectl", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"browse", "calc", "demo", "stats"}, names)
}

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "text", value: "text"},
		{name: "table", value: "table"},
		{name: "json", value: "json"},
		{name: "yaml", value: "yaml"},
		{name: "raw is not supported", value: "raw", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, OutputValidator)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetMetaMissing(t *testing.T) {
	assert.Zero(t, GetMeta(nil))
}

func TestProcessShape(t *testing.T) {
	rect, err := geometry.NewRectangle(7.0, 2.0)
	assert.NoError(t, err)

	var buf bytes.Buffer
	ProcessShape(&buf, rect, 2)

	want := "Processing Rectangle:\n" +
		"Shape: Rectangle\n" +
		"Dimensions: 7.00 x 2.00\n" +
		"Area: 14.00\n" +
		"Perimeter: 18.00\n" +
		"------------------------\n"
	assert.Equal(t, want, buf.String())
}
