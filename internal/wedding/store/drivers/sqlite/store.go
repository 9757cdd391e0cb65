package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

var _ store.Store = (*Store)(nil)

// NewStore opens the database at dsn. ":memory:" gives a private
// in-memory database, useful in tests.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection keeps the pragma below in force and lets an
	// in-memory database survive between calls. SQLite serialises writers
	// anyway.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Invites() store.Invites                     { return &invitesRepo{q: s.q} }
func (s *Store) Guests() store.Guests                       { return &guestsRepo{q: s.q} }
func (s *Store) RSVPs() store.RSVPs                         { return &rsvpsRepo{q: s.q} }
func (s *Store) MealSelections() store.MealSelections       { return &mealSelectionsRepo{q: s.q} }
func (s *Store) QuestionResponses() store.QuestionResponses { return &questionResponsesRepo{q: s.q} }
func (s *Store) MealOptions() store.MealOptions             { return &mealOptionsRepo{q: s.q} }
func (s *Store) Questions() store.Questions                 { return &questionsRepo{q: s.q} }
func (s *Store) Settings() store.Settings                   { return &settingsRepo{q: s.q} }
func (s *Store) EmailTemplates() store.EmailTemplates       { return &emailTemplatesRepo{q: s.q} }
func (s *Store) AdminUsers() store.AdminUsers               { return &adminUsersRepo{q: s.q} }
func (s *Store) Sessions() store.Sessions                   { return &sessionsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns SQLite constraint failures into store sentinels.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return store.ErrAlreadyExists
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return store.ErrConflict
		case sqlite3lib.SQLITE_CONSTRAINT_TRIGGER:
			// ON DELETE RESTRICT is enforced as a trigger.
			if strings.Contains(sqliteErr.Error(), "FOREIGN KEY") {
				return store.ErrConflict
			}
		}
	}
	return err
}

// mapAffected reports ErrNotFound when a write by id touched nothing.
func mapAffected(n int64, err error) error {
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
