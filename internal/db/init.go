// Package db opens the relational store, bootstraps its schema and runs
// background maintenance against it.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	// DefaultSQLitePath is used when the DSN is empty.
	DefaultSQLitePath = "/tmp/starwars.db"

	sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

// ParseDSN picks the dialect for dsn and returns the data source name the
// matching driver expects.
func ParseDSN(dsn string) (Dialect, string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return Postgres, dsn
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	if path == "" {
		path = DefaultSQLitePath
	}
	if strings.Contains(path, "?") {
		return SQLite, path + "&" + sqlitePragmas
	}
	return SQLite, path + "?" + sqlitePragmas
}

// Open connects to the store selected by dsn, verifies the connection and
// creates the schema if it does not exist.
func Open(ctx context.Context, dsn string) (*sql.DB, Dialect, error) {
	dialect, source := ParseDSN(dsn)

	db, err := sql.Open(string(dialect), source)
	if err != nil {
		return nil, dialect, fmt.Errorf("open %s: %w", dialect, err)
	}

	if dialect == SQLite {
		// A single writer avoids SQLITE_BUSY between pooled connections.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, dialect, fmt.Errorf("ping %s: %w", dialect, err)
	}

	if _, err := db.ExecContext(ctx, schemaFor(dialect)); err != nil {
		db.Close()
		return nil, dialect, fmt.Errorf("create schema: %w", err)
	}

	return db, dialect, nil
}
