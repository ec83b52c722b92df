// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/shapectl/internal/geometry"
	"github.com/staranto/shapectl/internal/meta"
	"github.com/staranto/shapectl/internal/output"
)

// DemoCommandAction runs the canned demonstration: describe the built-in
// five-shape set, print summary statistics, then push two more shapes
// through the variant-agnostic processing path.
func DemoCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	opts := RenderOptions(cmd)
	w := io.Writer(os.Stdout)

	fmt.Fprintln(w, "=== Polymorphism Demo: Shape Calculator ===")
	fmt.Fprintln(w)

	shapes := geometry.DemoSet()

	fmt.Fprintln(w, "Individual Shape Information:")
	if err := output.Render(w, shapes, opts); err != nil {
		return err
	}

	fmt.Fprintln(w)
	stats := geometry.Collect(shapes)
	if err := output.Summary(w, stats, opts); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Demonstrating dispatch through the common interface:")

	rect, _ := geometry.NewRectangle(7.0, 2.0)
	circle, _ := geometry.NewCircle(3.0)
	ProcessShape(w, rect, opts.Precision)
	ProcessShape(w, circle, opts.Precision)

	return nil
}

// ProcessShape reports a single shape without knowing its concrete variant.
func ProcessShape(w io.Writer, shape *geometry.Shape, precision int) {
	fmt.Fprintf(w, "Processing %s:\n", shape.Name())
	fmt.Fprintln(w, shape.Describe(precision))
}

// DemoCommandBuilder constructs the cli.Command for "demo".
func DemoCommandBuilder(meta meta.Meta) *cli.Command {
	cb := CommandBuilder{
		Name:      "demo",
		Usage:     "run the built-in shape demonstration",
		UsageText: `shapectl demo [options]`,
		Action:    DemoCommandAction,
		Meta:      meta,
	}
	return cb.Build()
}
