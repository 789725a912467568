// Package testutil provides shared test helpers for creating temporary
// databases and card fixtures.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/hnakamura/decksched/internal/card"
	"github.com/hnakamura/decksched/internal/config"
	"github.com/hnakamura/decksched/internal/database"
	"github.com/hnakamura/decksched/internal/deck"
)

// OpenTestDB opens a fresh SQLite database in a temp directory with all
// migrations applied. The database is closed when the test finishes.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "decksched.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, database.ApplyMigrations(context.Background(), db))
	return db
}

// CreateDeck inserts a deck and returns it. A zero parentID creates a
// root deck.
func CreateDeck(t *testing.T, db *sqlx.DB, name string, parentID int64, newPerDay, revPerDay int) *deck.Deck {
	t.Helper()

	d := &deck.Deck{
		Name:      name,
		NewPerDay: newPerDay,
		RevPerDay: revPerDay,
	}
	if parentID != 0 {
		d.ParentID = sql.NullInt64{Int64: parentID, Valid: true}
	}
	require.NoError(t, deck.NewDBRepository(db).Create(context.Background(), d))
	return d
}

// CreateCard inserts a note and one card over it, returning the card.
func CreateCard(t *testing.T, db *sqlx.DB, deckID int64, queue card.Queue, cardType card.Type, due int64) *card.Card {
	t.Helper()

	cards := card.NewDBRepository(db)
	now := time.Now().Unix()
	n := &card.Note{
		Front:     "front",
		Back:      "back",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, cards.CreateNote(context.Background(), n))

	c := &card.Card{
		NoteID:    n.ID,
		DeckID:    deckID,
		Queue:     queue,
		Type:      cardType,
		Due:       due,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, cards.Create(context.Background(), c))
	return c
}

// CreateSibling inserts a second card over an existing note.
func CreateSibling(t *testing.T, db *sqlx.DB, noteID, deckID int64, queue card.Queue, cardType card.Type, due int64) *card.Card {
	t.Helper()

	now := time.Now().Unix()
	c := &card.Card{
		NoteID:    noteID,
		DeckID:    deckID,
		Ord:       1,
		Queue:     queue,
		Type:      cardType,
		Due:       due,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, card.NewDBRepository(db).Create(context.Background(), c))
	return c
}
