// Command daogen generates data access code from entity declarations.
//
//	daogen generate --schema entities.yaml --target ./dao --package dao
//	daogen plan --schema entities.yaml --format json --out plan.json
//	daogen apply --schema entities.yaml --driver mysql --dsn "root:pass@tcp(localhost:3306)/app"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newApp(os.Stdout, os.Stderr).command().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
