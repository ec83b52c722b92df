// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/shapectl/internal/geometry"
	"github.com/staranto/shapectl/internal/meta"
	"github.com/staranto/shapectl/internal/tui"
)

// BrowseCommandAction opens the interactive shape browser over the given
// specs, or the demo set when none are given.
func BrowseCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	shapes, err := ShapeArgs(cmd, false)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		shapes = geometry.DemoSet()
	}

	return tui.Browse(shapes, int(cmd.Int("precision")))
}

// BrowseCommandBuilder constructs the cli.Command for "browse".
func BrowseCommandBuilder(meta meta.Meta) *cli.Command {
	cb := CommandBuilder{
		Name:      "browse",
		Usage:     "browse shapes interactively",
		UsageText: `shapectl browse [SPEC...] [options]`,
		Action:    BrowseCommandAction,
		Meta:      meta,
	}
	return cb.Build()
}
