package db

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// The three failure classes the store actually produces. Anything else
// coming out of the engine is passed through wrapped but unclassified.
var (
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("record not found")
)

// Classify maps driver errors onto the store's taxonomy: sql.ErrNoRows
// becomes ErrNotFound, the SQLITE_CONSTRAINT result-code family becomes
// ErrConstraintViolation. Callers match with errors.Is.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}
