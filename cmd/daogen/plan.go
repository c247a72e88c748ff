package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/syssam/daogen/compiler/gen"
)

func (a *app) planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "export the mapped tables and statements",
		Flags: schemaFlags(
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "json, yaml or msgpack", Value: "json"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.merge(cmd)
			if err != nil {
				return err
			}
			if s.Format == "" {
				s.Format = cmd.String("format")
			}
			return a.plan(ctx, s, cmd.String("out"))
		},
	}
}

// plan writes the plan set of the schema. Entities that failed to map are
// logged and left out; the mapping error is returned after writing.
func (a *app) plan(ctx context.Context, s *Settings, out string) error {
	format, err := gen.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	g, err := a.graph(ctx, s)
	if err != nil {
		return err
	}
	a.logFailed(g)
	if s.FailFast && g.Err() != nil {
		return g.Err()
	}
	var w io.Writer = a.stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := g.Plans().Encode(w, format); err != nil {
		return err
	}
	return g.Err()
}
