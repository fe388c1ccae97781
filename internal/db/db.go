// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the optional generation-history store for Passgen.
// It abstracts the underlying database (SQLite by default, PostgreSQL or
// MySQL for shared setups) behind a small interface so the rest of the
// application never touches SQL directly. Only generation metadata is
// stored; generated secrets never reach this package.
package db // import "github.com/InsolentFlunkey/password-generator/internal/db"

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	// SQL drivers for the optional shared backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	store Store
	//go:embed migrations
	embeddedMigrations embed.FS
	// sqlOpenFunc allows tests to override database opening behavior.
	sqlOpenFunc = sql.Open
)

// Init opens the history store for the given type and DSN, runs migrations,
// and installs it as the package default used by the helper functions.
func Init(dbType, dsn string) (Store, error) {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	store = s
	return s, nil
}

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// SetStore installs a store as the package default. Tests use this to inject
// in-memory stores.
func SetStore(s Store) {
	store = s
}

// NewStoreFromDSN opens a sql.DB for the given DSN, runs migrations, and
// returns a Store backed by a long-lived *bun.DB.
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}
	switch dbType {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported history database type: %q", dbType)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Conservative pool defaults for a single-user desktop tool; override via
	// environment for shared backends.
	maxOpen := envInt("PASSGEN_DB_MAX_OPEN_CONNS", 5)
	maxIdle := envInt("PASSGEN_DB_MAX_IDLE_CONNS", 5)

	// In-memory SQLite gives each connection its own database; keep a single
	// connection so the schema stays visible. Tests rely on this.
	if dbType == "sqlite" && strings.Contains(dsn, ":memory:") {
		maxOpen = 1
		maxIdle = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	dbLogf("db: opened %s driver in %s (max open=%d)", driverName, time.Since(start), maxOpen)

	if err := RunMigrations(sqlDB, dbType); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &historyStore{bun: createBunDB(sqlDB, dbType)}, nil
}

// envInt reads a non-negative integer from an environment variable, falling
// back to def when unset or malformed.
func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunMigrations applies the embedded migrations for a given database connection.
func RunMigrations(db *sql.DB, dbType string) error {
	start := time.Now()
	dbLogf("db: starting migrations for %s", dbType)
	migrationsPath := fmt.Sprintf("migrations/%s", dbType)

	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(name, ".up.sql") {
			ups = append(ups, name)
		}
	}
	sort.Strings(ups)

	if err := ensureSchemaMigrationsTable(db, dbType); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		var exists int
		query := "SELECT 1 FROM schema_migrations WHERE version = ?"
		if dbType == "postgres" {
			query = "SELECT 1 FROM schema_migrations WHERE version = $1"
		}
		err := db.QueryRow(query, version).Scan(&exists)
		if err == nil {
			continue // already applied
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}

		data, err := embeddedMigrations.ReadFile(path.Join(migrationsPath, fname))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", fname, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", version, err)
		}
		if _, err := tx.Exec(string(data)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", version, err)
		}

		insertQuery := "INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)"
		if dbType == "postgres" {
			insertQuery = "INSERT INTO schema_migrations(version, applied_at) VALUES($1, $2)"
		}
		if _, err := tx.Exec(insertQuery, version, time.Now()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
	}

	dbLogf("db: applied migrations for %s in %s", dbType, time.Since(start))
	return nil
}

// ensureSchemaMigrationsTable creates the migration bookkeeping table when absent.
func ensureSchemaMigrationsTable(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case "postgres":
		ddl = "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ)"
	case "mysql":
		ddl = "CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(255) PRIMARY KEY, applied_at TIMESTAMP NULL)"
	default:
		ddl = "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME)"
	}
	_, err := db.Exec(ddl)
	return err
}
