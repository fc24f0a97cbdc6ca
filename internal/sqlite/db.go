package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sort"

	"github.com/rpggio/commissions/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: a single local user, and ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations applies the embedded schema files in order.
// Every statement is idempotent, so running against an existing database is safe.
func (db *DB) RunMigrations() error {
	names, err := fs.Glob(migrations.FS, "*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(data)); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", name, err)
		}
	}

	return nil
}
