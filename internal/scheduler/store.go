package scheduler

import (
	"context"

	"github.com/hnakamura/decksched/internal/card"
	"github.com/hnakamura/decksched/internal/deck"
)

//go:generate mockgen -source=store.go -destination=../mocks/scheduler/mock_store.go -package=mock_scheduler Store

// Store is the persistence collaborator the scheduler reads cards and
// decks from. Mutations are expected to have committed before the
// scheduler is asked to patch or rebuild its caches.
type Store interface {
	// DeckHierarchy returns all decks with parent links and configured
	// limits, ordered so parents precede their children.
	DeckHierarchy(ctx context.Context) ([]deck.Deck, error)

	// CountDue counts cards of the given kind directly owned by the
	// deck (not descendants), capped at limit.
	CountDue(ctx context.Context, t Timing, deckID int64, kind QueueKind, limit int) (int, error)

	// ListDue returns up to limit cards of the given kind directly
	// owned by the deck, in due order.
	ListDue(ctx context.Context, t Timing, deckID int64, kind QueueKind, limit int) ([]card.Queued, error)

	// GetCard returns the card with the given id, or card.ErrNotFound.
	GetCard(ctx context.Context, id int64) (*card.Card, error)

	// SaveAnswer atomically persists the answered card's new state,
	// appends the review log, buries queued siblings in storage, and
	// charges the answer against the daily limits of limitDecks.
	SaveAnswer(ctx context.Context, t Timing, c *card.Card, log *card.ReviewLog, limitDecks []int64, newDelta, revDelta int) error
}
