package main

import (
	"aftas/config"
	"aftas/migrations"
	"database/sql"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Env()
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to open database", "error", err)
	}
	defer db.Close()

	if len(os.Args) > 1 && os.Args[1] == "down" {
		err = migrations.Down(db, cfg.DatabaseSchema)
	} else {
		err = migrations.Up(db, cfg.DatabaseSchema)
	}
	if err != nil {
		log.Fatal("Migration failed", "error", err)
	}
	log.Info("Migrations applied", "schema", cfg.DatabaseSchema)
}
