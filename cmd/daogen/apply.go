package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/syssam/daogen/dialect"
	"github.com/syssam/daogen/dialect/sql"
)

// DSNEnv is the environment variable read when --dsn is not set.
const DSNEnv = "DAOGEN_DSN"

func (a *app) applyCommand() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "create the tables of the schema in a database",
		Flags: schemaFlags(
			&cli.StringFlag{Name: "driver", Aliases: []string{"d"}, Usage: "mysql or sqlite", Value: dialect.MySQL},
			&cli.StringFlag{Name: "dsn", Usage: "data source name (default $" + DSNEnv + ")"},
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file to load", Value: ".env"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := loadEnv(cmd.String("env-file")); err != nil {
				return err
			}
			s, err := a.merge(cmd)
			if err != nil {
				return err
			}
			if s.Driver == "" {
				s.Driver = cmd.String("driver")
			}
			if s.DSN == "" {
				s.DSN = os.Getenv(DSNEnv)
			}
			if s.DSN == "" {
				return fmt.Errorf("daogen: no data source name, set --dsn or %s", DSNEnv)
			}
			return a.apply(ctx, s)
		},
	}
}

// loadEnv loads a dotenv file if it exists.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("daogen: load %s: %w", path, err)
	}
	return nil
}

// apply creates the tables in creation order.
func (a *app) apply(ctx context.Context, s *Settings) error {
	g, err := a.graph(ctx, s)
	if err != nil {
		return err
	}
	a.logFailed(g)
	if s.FailFast && g.Err() != nil {
		return g.Err()
	}
	drv, err := sql.Open(s.Driver, s.DSN)
	if err != nil {
		return err
	}
	defer drv.Close()
	stats := sql.NewStatsDriver(sql.Debug(drv, a.logger), sql.WithSlowQueryLog(a.logger))
	for _, p := range g.Plans().Plans {
		if err := sql.NewExecutor(stats, p).CreateTable(ctx); err != nil {
			return err
		}
		a.logger.WithField("table", p.Table.Name).Info("table created")
	}
	a.logger.WithFields(stats.QueryStats().Stats().Fields()).Debug("apply done")
	return g.Err()
}
