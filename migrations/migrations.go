package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

// Up creates dbSchema and applies every pending migration inside it.
// The connection must have dbSchema on its search_path.
func Up(db *sql.DB, dbSchema string) error {
	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q", dbSchema)); err != nil {
		return err
	}
	goose.SetBaseFS(files)
	goose.SetTableName(dbSchema + ".goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "sql")
}

// Down rolls back the latest migration.
func Down(db *sql.DB, dbSchema string) error {
	goose.SetBaseFS(files)
	goose.SetTableName(dbSchema + ".goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Down(db, "sql")
}
