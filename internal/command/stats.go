// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/shapectl/internal/geometry"
	"github.com/staranto/shapectl/internal/meta"
	"github.com/staranto/shapectl/internal/output"
)

// StatsCommandAction folds the given shapes into aggregate statistics and
// prints the summary block.
func StatsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	shapes, err := ShapeArgs(cmd, true)
	if err != nil {
		return err
	}

	stats := geometry.Collect(shapes)
	return output.Summary(os.Stdout, stats, RenderOptions(cmd))
}

// StatsCommandBuilder constructs the cli.Command for "stats".
func StatsCommandBuilder(meta meta.Meta) *cli.Command {
	cb := CommandBuilder{
		Name:      "stats",
		Usage:     "aggregate statistics for the given shapes",
		UsageText: `shapectl stats SPEC... [options]`,
		Action:    StatsCommandAction,
		Meta:      meta,
	}
	return cb.Build()
}
