package sqlite

import (
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const DriverName = "sqlite3"

// New opens the SQLite database at path, defaulting to SQLITE_PATH or
// ./storage/talon.db. Every connection to ":memory:" is a separate database,
// so the pool is pinned to one connection there.
func New(path string) (*sqlx.DB, error) {
	if path == "" {
		path = os.Getenv("SQLITE_PATH")
	}
	if path == "" {
		path = "./storage/talon.db"
	}

	db, err := sqlx.Connect(DriverName, dsn(path))
	if err != nil {
		return nil, err
	}

	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

func dsn(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}
