package db

import (
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not know
	// about out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the store named by dsn. A postgres:// URL selects the
// pgx driver; anything else is treated as a SQLite file path or URI.
// Queries throughout the project are written with ? placeholders and
// rebound per driver via sqlx.
func Open(dsn string) (*sqlx.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
	}
	database, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "pgx" {
		database.SetMaxOpenConns(20)
		database.SetMaxIdleConns(5)
		database.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// SQLite serializes writers; a single connection avoids
		// table-lock errors under concurrent requests.
		database.SetMaxOpenConns(1)
	}
	if err := database.Ping(); err != nil {
		return nil, err
	}
	return database, nil
}
