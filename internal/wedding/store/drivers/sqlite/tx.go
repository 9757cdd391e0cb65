package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the outer DB stays open

func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Invites() store.Invites               { return &invitesRepo{q: t.q} }
func (t *txStore) Guests() store.Guests                 { return &guestsRepo{q: t.q} }
func (t *txStore) RSVPs() store.RSVPs                   { return &rsvpsRepo{q: t.q} }
func (t *txStore) MealSelections() store.MealSelections { return &mealSelectionsRepo{q: t.q} }
func (t *txStore) QuestionResponses() store.QuestionResponses {
	return &questionResponsesRepo{q: t.q}
}
func (t *txStore) MealOptions() store.MealOptions       { return &mealOptionsRepo{q: t.q} }
func (t *txStore) Questions() store.Questions           { return &questionsRepo{q: t.q} }
func (t *txStore) Settings() store.Settings             { return &settingsRepo{q: t.q} }
func (t *txStore) EmailTemplates() store.EmailTemplates { return &emailTemplatesRepo{q: t.q} }
func (t *txStore) AdminUsers() store.AdminUsers         { return &adminUsersRepo{q: t.q} }
func (t *txStore) Sessions() store.Sessions             { return &sessionsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx is opened
