// Applies goose migrations: migrate [up|down|status|version|redo|reset]
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/nestling/pkg/config"
)

func main() {
	cfg, err := config.LoadMigrate(config.DefaultEnvFile)
	if err != nil {
		log.Fatal("loading config error: ", err)
	}
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	db, err := sql.Open("postgres", cfg.Postgres.PG().ConnString()+"?sslmode=disable")
	if err != nil {
		log.Fatal("opening db error: ", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err = goose.Run(command, db, cfg.MigrationsDir, os.Args[min(len(os.Args), 2):]...); err != nil {
		log.Fatalf("goose %s error: %v", command, err)
	}
}
