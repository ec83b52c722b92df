// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/staranto/shapectl/internal/geometry"
	"github.com/staranto/shapectl/internal/meta"
	"github.com/staranto/shapectl/internal/output"
	"github.com/staranto/shapectl/internal/parse"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// RenderOptions resolves the shared output flags into render options.
func RenderOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Mode:      cmd.String("output"),
		Color:     cmd.Bool("color"),
		Titles:    cmd.Bool("titles"),
		Sort:      cmd.String("sort"),
		Human:     cmd.Bool("human"),
		Precision: int(cmd.Int("precision")),
	}
}

// ShapeArgs parses the command's positional args into shapes. Commands that
// require at least one spec pass required=true.
func ShapeArgs(cmd *cli.Command, required bool) ([]*geometry.Shape, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		if required {
			return nil, errors.New("no shape specs given (try rect:5x3, circle:4 or tri:3,4,5)")
		}
		return nil, nil
	}
	return parse.Shapes(args)
}

// CommandBuilder constructs a cli.Command for report-emitting subcommands
// using a consistent pattern: metadata, the shared flag set, and a validator
// run before the action.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: append(cb.Flags, NewGlobalFlags(cb.Name)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: cb.Action,
	}
}
