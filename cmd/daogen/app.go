package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/syssam/daogen/compiler/gen"
	gensql "github.com/syssam/daogen/compiler/gen/sql"
	"github.com/syssam/daogen/compiler/load"
	"github.com/syssam/daogen/schema"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	stdout, stderr io.Writer
	logger         *logrus.Logger
	settings       *Settings
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "daogen",
		Usage:     "generate data access code from entity declarations",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file (default " + DefaultConfigFile + " if present)"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "log-json", Usage: "log in JSON format"},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.generateCommand(),
			a.planCommand(),
			a.applyCommand(),
		},
	}
}

// before builds the logger and reads the config file.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger, err := newLogger(a.stderr, cmd.String("log-level"), cmd.Bool("log-json"))
	if err != nil {
		return ctx, err
	}
	a.logger = logger
	if a.settings, err = readSettings(cmd.String("config")); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func newLogger(w io.Writer, level string, json bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("daogen: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}

// schemaFlags are shared by all commands.
func schemaFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{Name: "schema", Aliases: []string{"s"}, Usage: "descriptor file (.yaml, .json) or Go package pattern"},
		&cli.BoolFlag{Name: "fail-fast", Usage: "stop before emitting anything if an entity is invalid"},
	}, extra...)
}

// merge overrides the config file settings with the flags set on cmd.
func (a *app) merge(cmd *cli.Command) (*Settings, error) {
	s := *a.settings
	for name, dst := range map[string]*string{
		"schema":  &s.Schema,
		"target":  &s.Target,
		"package": &s.Package,
		"format":  &s.Format,
		"driver":  &s.Driver,
		"dsn":     &s.DSN,
	} {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	if cmd.IsSet("fail-fast") {
		s.FailFast = cmd.Bool("fail-fast")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// descriptors loads the entities of the schema source.
func descriptors(ctx context.Context, source string) ([]*schema.Descriptor, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml", ".json":
		return load.ReadFile(source)
	default:
		return load.Packages(ctx, source)
	}
}

// graph loads the schema and maps it.
func (a *app) graph(ctx context.Context, s *Settings) (*gen.Graph, error) {
	descs, err := descriptors(ctx, s.Schema)
	if err != nil {
		return nil, err
	}
	opts := []gen.Option{
		gen.WithLogger(a.logger),
		gen.WithGenerator(gensql.NewDialect()),
		gen.WithFailFast(s.FailFast),
		gen.WithWorkers(s.Workers),
	}
	if s.Package != "" {
		opts = append(opts, gen.WithPackage(s.Package))
	}
	if s.Target != "" {
		opts = append(opts, gen.WithTarget(s.Target))
	}
	if s.Header != "" {
		opts = append(opts, gen.WithHeader(s.Header))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, descs...), nil
}

// logFailed reports the entities that failed to map.
func (a *app) logFailed(g *gen.Graph) {
	for _, r := range g.Failed() {
		a.logger.WithField("entity", r.Entity).WithError(r.Err).Error("invalid entity")
	}
}
