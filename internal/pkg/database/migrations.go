package database

import (
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// MigrateDatabase applies all pending goose migrations from the given
// filesystem before the vending service starts accepting requests. It opens
// its own database/sql connection because goose does not speak pgx natively.
func MigrateDatabase(databaseUrl string, migrations fs.FS, dir, driverName, dialect string) error {
	db, err := sql.Open(driverName, databaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return err
	}

	return nil
}
