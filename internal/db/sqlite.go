package db

import (
	"fmt"
	"os"
	"path/filepath"

	"aviation-management/recordstore/internal/constants"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	// modernc registers itself as "sqlite"; teach sqlx its placeholder
	// style so named queries rebind correctly.
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Open opens or creates the store file at path and makes sure the schema
// exists. Reopening an existing file is idempotent. An unreachable or
// unwritable path surfaces as ErrStorageUnavailable.
func Open(path string) (*sqlx.DB, error) {
	conn, err := sqlx.Connect(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrStorageUnavailable, path, err)
	}

	// One shared handle per store. At most one logical caller issues
	// statements at a time, and :memory: stores would otherwise get a
	// fresh empty database per pooled connection.
	conn.SetMaxOpenConns(1)

	if err := ensureSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// OpenInMemory opens a transient store that lives only as long as the
// connection. Used by tests and dev tooling.
func OpenInMemory() (*sqlx.DB, error) {
	return Open(":memory:")
}

// DefaultPath resolves a store name under baseDir's database/
// subdirectory, creating the directory on demand.
func DefaultPath(baseDir string, name constants.StoreName) (string, error) {
	dir := filepath.Join(baseDir, constants.DatabaseDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %q: %v", ErrStorageUnavailable, dir, err)
	}
	return filepath.Join(dir, string(name)), nil
}

func ensureSchema(conn *sqlx.DB) error {
	var version int
	if err := conn.Get(&version, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("unsupported schema version %d (newest known is %d)", version, SchemaVersion)
	}

	if _, err := conn.Exec(Schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	if version < SchemaVersion {
		if _, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			return fmt.Errorf("stamp schema version: %w", err)
		}
	}
	return nil
}
