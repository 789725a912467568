// Package collection is the storage collaborator: it implements the
// scheduler's store interface over the card and deck repositories and
// exposes the user-initiated mutations (bury, suspend, import) that the
// scheduler only hears about as reset signals.
package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hnakamura/decksched/internal/card"
	"github.com/hnakamura/decksched/internal/database"
	"github.com/hnakamura/decksched/internal/deck"
	"github.com/hnakamura/decksched/internal/scheduler"
)

// Collection bundles the repositories over one database handle.
type Collection struct {
	db    *sqlx.DB
	decks *deck.DBRepository
	cards *card.DBRepository
}

// New creates a Collection over an open database.
func New(db *sqlx.DB) *Collection {
	return &Collection{
		db:    db,
		decks: deck.NewDBRepository(db),
		cards: card.NewDBRepository(db),
	}
}

// Close closes the underlying database.
func (c *Collection) Close() error {
	return c.db.Close()
}

// DeckHierarchy returns all decks ordered by name (parents first).
func (c *Collection) DeckHierarchy(ctx context.Context) ([]deck.Deck, error) {
	return c.decks.List(ctx)
}

// CountDue counts a deck's directly owned cards of the given kind.
// Both learning kinds count the whole remaining day, matching what the
// due tree displays.
func (c *Collection) CountDue(ctx context.Context, t scheduler.Timing, deckID int64, kind scheduler.QueueKind, limit int) (int, error) {
	if limit <= 0 {
		return 0, nil
	}
	switch kind {
	case scheduler.KindNew:
		return c.cards.CountNew(ctx, deckID, limit)
	case scheduler.KindReview:
		return c.cards.CountReviewDue(ctx, deckID, t.Today, limit)
	default:
		return c.cards.CountLearn(ctx, deckID, t.Cutoff.Unix(), t.Today, limit)
	}
}

// ListDue returns a deck's directly owned cards of the given kind in
// due order, up to limit.
func (c *Collection) ListDue(ctx context.Context, t scheduler.Timing, deckID int64, kind scheduler.QueueKind, limit int) ([]card.Queued, error) {
	switch kind {
	case scheduler.KindNew:
		return c.cards.ListNew(ctx, deckID, limit)
	case scheduler.KindReview:
		return c.cards.ListReviewDue(ctx, deckID, t.Today, limit)
	case scheduler.KindLearn:
		return c.cards.ListLearnDue(ctx, deckID, t.Now.Unix(), limit)
	case scheduler.KindDayLearn:
		return c.cards.ListLearnAhead(ctx, deckID, t.Now.Unix(), t.Cutoff.Unix(), t.Today, limit)
	}
	return nil, fmt.Errorf("unknown queue kind %d", kind)
}

// GetCard returns the card with the given id.
func (c *Collection) GetCard(ctx context.Context, id int64) (*card.Card, error) {
	return c.cards.Get(ctx, id)
}

// SaveAnswer persists one answered review atomically: the card's next
// state, the review log, sibling burial in storage, and the charge
// against the daily limits of the card's deck and its ancestors.
func (c *Collection) SaveAnswer(ctx context.Context, t scheduler.Timing, crd *card.Card, log *card.ReviewLog, limitDecks []int64, newDelta, revDelta int) error {
	return database.RunInTx(ctx, c.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txCards := card.NewDBRepository(tx)
		txDecks := deck.NewDBRepository(tx)

		if err := txCards.Update(ctx, crd); err != nil {
			return err
		}
		if err := txCards.CreateReviewLog(ctx, log); err != nil {
			return err
		}
		if err := txCards.BurySiblings(ctx, crd.NoteID, crd.ID); err != nil {
			return err
		}
		if newDelta != 0 || revDelta != 0 {
			if err := txDecks.AddTakenToday(ctx, limitDecks, newDelta, revDelta, t.Today); err != nil {
				return err
			}
		}
		return nil
	})
}

// Note returns the source note for a card.
func (c *Collection) Note(ctx context.Context, noteID int64) (*card.Note, error) {
	return c.cards.GetNote(ctx, noteID)
}

// Deck returns one deck by id.
func (c *Collection) Deck(ctx context.Context, id int64) (*deck.Deck, error) {
	return c.decks.Get(ctx, id)
}

// DeckByName returns one deck by its full name.
func (c *Collection) DeckByName(ctx context.Context, name string) (*deck.Deck, error) {
	return c.decks.GetByName(ctx, name)
}

// UpdateDeckLimits changes a deck's configured daily limits.
func (c *Collection) UpdateDeckLimits(ctx context.Context, id int64, newPerDay, revPerDay int) error {
	return c.decks.UpdateLimits(ctx, id, newPerDay, revPerDay)
}

// BuryCard manually buries a card until unburied or the next day.
func (c *Collection) BuryCard(ctx context.Context, id int64) error {
	return c.cards.SetQueue(ctx, []int64{id}, card.QueueUserBuried)
}

// SuspendCard removes a card from study until unsuspended.
func (c *Collection) SuspendCard(ctx context.Context, id int64) error {
	return c.cards.SetQueue(ctx, []int64{id}, card.QueueSuspended)
}

// UnsuspendCards returns suspended cards to their natural queues.
func (c *Collection) UnsuspendCards(ctx context.Context, ids []int64) error {
	return c.cards.Unsuspend(ctx, ids)
}

// UnburyAll restores every buried card, as happens at the start of a
// new study day.
func (c *Collection) UnburyAll(ctx context.Context) error {
	return c.cards.RestoreBuried(ctx, nil)
}

// ReviewsToday counts answers recorded on the given scheduling day.
func (c *Collection) ReviewsToday(ctx context.Context, day int) (int, error) {
	return c.cards.CountReviewsOnDay(ctx, day)
}

// EnsureDeckPath returns the deck with the given "::"-separated name,
// creating it and any missing ancestors with the given default limits.
func (c *Collection) EnsureDeckPath(ctx context.Context, name string, newPerDay, revPerDay int) (*deck.Deck, error) {
	var (
		parent *deck.Deck
		d      *deck.Deck
		err    error
	)
	for _, path := range deck.PathComponents(name) {
		d, err = c.decks.GetByName(ctx, path)
		if errors.Is(err, deck.ErrNotFound) {
			d = &deck.Deck{
				Name:      path,
				NewPerDay: newPerDay,
				RevPerDay: revPerDay,
			}
			if parent != nil {
				d.ParentID = sql.NullInt64{Int64: parent.ID, Valid: true}
			}
			if err = c.decks.Create(ctx, d); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		parent = d
	}
	return d, nil
}

// AddNote creates a note and its cards in the given deck. A reverse
// note produces two sibling cards. New cards are appended at the end of
// the introduction order.
func (c *Collection) AddNote(ctx context.Context, deckID int64, front, back string, reverse bool, createdAt int64) (*card.Note, error) {
	pos, err := c.cards.NextNewPosition(ctx)
	if err != nil {
		return nil, err
	}

	n := &card.Note{Front: front, Back: back, CreatedAt: createdAt, UpdatedAt: createdAt}
	err = database.RunInTx(ctx, c.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txCards := card.NewDBRepository(tx)
		if err := txCards.CreateNote(ctx, n); err != nil {
			return err
		}
		ords := 1
		if reverse {
			ords = 2
		}
		for ord := 0; ord < ords; ord++ {
			crd := &card.Card{
				NoteID:     n.ID,
				DeckID:     deckID,
				Ord:        ord,
				Queue:      card.QueueNew,
				Type:       card.TypeNew,
				Due:        pos,
				EaseFactor: 0,
				CreatedAt:  createdAt,
				UpdatedAt:  createdAt,
			}
			if err := txCards.Create(ctx, crd); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}
