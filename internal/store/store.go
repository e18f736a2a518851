// Package store holds the per-entity-family facades the rest of the app
// talks to. A facade owns the connection lifecycle for one database file
// and hands out the repositories derived from it.
//
// Error policy: every wrapper propagates typed errors by default. A
// swallow-and-fall-back mode for callers that prefer empty results over
// failures is opt-in through the Lenient option, and it always logs what
// it swallowed.
package store

import (
	"context"
	"database/sql"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/logging"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	lenient bool
	logger  *zap.SugaredLogger
}

// Lenient makes the facade's convenience wrappers log failures and return
// empty/zero fallbacks instead of propagating them. Raw repository calls
// are never affected.
func Lenient() Option {
	return func(o *options) { o.lenient = true }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{logger: logging.GetLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base carries what every facade shares: the handle, the error policy and
// the logger.
type base struct {
	conn    *sqlx.DB
	lenient bool
	log     *zap.SugaredLogger
}

// swallow reports whether err should be hidden from the caller. In
// lenient mode the error is logged and the wrapper substitutes its empty
// fallback; otherwise the error propagates untouched.
func (b *base) swallow(op string, err error) bool {
	if err == nil || !b.lenient {
		return false
	}
	b.log.Errorw("store operation failed", "op", op, "error", err.Error())
	return true
}

func (b *base) Close() error {
	return b.conn.Close()
}

// health pings the handle and counts rows in each listed table.
func (b *base) health(ctx context.Context, tables ...constants.TableName) entities.StoreHealth {
	if err := b.conn.PingContext(ctx); err != nil {
		return entities.StoreHealth{Status: entities.StatusDown, Details: err.Error()}
	}

	h := entities.StoreHealth{Status: entities.StatusUp}
	for _, table := range tables {
		var n sql.NullInt64
		// Table names come from the constants package, never from input.
		if err := b.conn.GetContext(ctx, &n, `SELECT COUNT(*) FROM "`+string(table)+`"`); err != nil {
			return entities.StoreHealth{Status: entities.StatusDown, Details: err.Error()}
		}
		h.Tables = append(h.Tables, entities.TableStatus{Table: string(table), Rows: n.Int64})
	}
	return h
}
