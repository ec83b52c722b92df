// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/shapectl/internal/meta"
	"github.com/staranto/shapectl/internal/output"
)

// CalcCommandAction parses shape specs from the args and renders the
// per-shape report in the requested output mode.
func CalcCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	shapes, err := ShapeArgs(cmd, true)
	if err != nil {
		return err
	}

	return output.Render(os.Stdout, shapes, RenderOptions(cmd))
}

// CalcCommandBuilder constructs the cli.Command for "calc".
func CalcCommandBuilder(meta meta.Meta) *cli.Command {
	cb := CommandBuilder{
		Name:      "calc",
		Usage:     "compute area and perimeter for the given shapes",
		UsageText: `shapectl calc SPEC... [options]`,
		Action:    CalcCommandAction,
		Meta:      meta,
	}
	return cb.Build()
}
