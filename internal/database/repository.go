package database

import (
	"context"
	"database/sql"
	"time"
)

// Store provides access to columns and cards. Reads go straight to the database;
// mutations run through WithTx so every write of one operation commits or rolls
// back as a unit.
type Store struct {
	db  *sql.DB
	now func() time.Time

	Columns *ColumnRepo
	Cards   *CardRepo
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a new Store wrapping the given database connection.
func NewStore(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Columns = &ColumnRepo{db: db, now: s.now}
	s.Cards = &CardRepo{db: db, now: s.now}
	return s
}

// DB returns the underlying database handle
func (s *Store) DB() *sql.DB {
	return s.db
}

// Tx is a transaction-scoped view of the store. It is only valid inside the
// function passed to WithTx.
type Tx struct {
	Columns *ColumnRepo
	Cards   *CardRepo
}

// WithTx runs fn in a single transaction. If fn returns an error, or panics,
// every write is rolled back; otherwise the transaction is committed once.
func (s *Store) WithTx(ctx context.Context, fn func(*Tx) error) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(&Tx{
			Columns: &ColumnRepo{db: tx, now: s.now},
			Cards:   &CardRepo{db: tx, now: s.now},
		})
	})
}
