package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/syssam/daogen/compiler/gen"
	gensql "github.com/syssam/daogen/compiler/gen/sql"
)

func (a *app) generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate the data access package",
		Flags: schemaFlags(
			&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Usage: "output directory", Value: "dao"},
			&cli.StringFlag{Name: "package", Aliases: []string{"p"}, Usage: "package name of the generated code"},
			&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "regenerate when the schema changes"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.merge(cmd)
			if err != nil {
				return err
			}
			if s.Target == "" {
				s.Target = cmd.String("target")
			}
			run := func(ctx context.Context) error { return a.generate(ctx, s) }
			if err := run(ctx); err != nil && !cmd.Bool("watch") {
				return err
			} else if err != nil {
				a.logger.WithError(err).Error("generation failed")
			}
			if cmd.Bool("watch") {
				return a.watch(ctx, s.Schema, run)
			}
			return nil
		},
	}
}

// generate runs one generation pass into the target directory.
func (a *app) generate(ctx context.Context, s *Settings) error {
	g, err := a.graph(ctx, s)
	if err != nil {
		return err
	}
	log := a.logger.WithField("pass", g.Pass)
	a.logFailed(g)
	if err := gensql.Generate(ctx, g, gen.NewDirSink(s.Target)); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"entities": len(g.Nodes()),
		"target":   s.Target,
	}).Info("generated")
	return nil
}

// watch reruns fn whenever the schema source changes, until ctx is done.
func (a *app) watch(ctx context.Context, source string, fn func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	dir, match := watchTarget(source)
	if err := w.Add(dir); err != nil {
		return err
	}
	a.logger.WithField("dir", dir).Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write|fsnotify.Create) || !match(ev.Name) {
				continue
			}
			a.logger.WithField("file", ev.Name).Debug("schema changed")
			if err := fn(ctx); err != nil {
				a.logger.WithError(err).Error("generation failed")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.WithError(err).Warn("watcher error")
		}
	}
}

// watchTarget returns the directory to watch for a schema source and the
// filter of relevant file events.
func watchTarget(source string) (string, func(string) bool) {
	if ext := filepath.Ext(source); ext == ".yaml" || ext == ".yml" || ext == ".json" {
		abs, _ := filepath.Abs(source)
		return filepath.Dir(source), func(name string) bool {
			n, _ := filepath.Abs(name)
			return n == abs
		}
	}
	dir := strings.TrimSuffix(source, "/...")
	return dir, func(name string) bool {
		return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
	}
}
