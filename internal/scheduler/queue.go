package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hnakamura/decksched/internal/deck"
)

// errStaleGeneration marks a refill whose results arrived after a newer
// reset. Discarded silently, never surfaced to callers.
var errStaleGeneration = errors.New("stale generation")

// refill tops up one queue lazily. If the queue already has entries it
// is a no-op. Otherwise decks are probed in order: the first deck that
// yields cards fills the queue and probing stops; decks that yield
// nothing are dropped from the probe list until the next reset.
// Emptiness after refill is a weak signal — it proves only that the
// probe list is exhausted, not that no cards remain.
func (s *Scheduler) refill(ctx context.Context, k QueueKind) (bool, error) {
	sess := s.sess
	gen := sess.gen
	q := &sess.queues[k]
	if !q.empty() {
		return true, nil
	}

	for len(sess.probes[k]) > 0 {
		deckID := sess.probes[k][0]
		lim := s.fillLimit(k, deckID)
		if lim > 0 {
			cards, err := s.store.ListDue(ctx, sess.timing, deckID, k, lim)
			if err != nil {
				return false, fmt.Errorf("list due(%s, deck %d): %w", k, deckID, err)
			}
			if sess.gen != gen {
				slog.Debug("discarding stale refill", "session", sess.id, "generation", gen, "kind", k)
				return false, errStaleGeneration
			}
			if len(cards) > 0 {
				entries := make([]queueEntry, 0, len(cards))
				for _, c := range cards {
					entries = append(entries, queueEntry{cardID: c.CardID, noteID: c.NoteID, due: c.Due})
				}
				q.append(entries)
				return true, nil
			}
		}
		// Nothing left in this deck; never probe it again this session.
		sess.probes[k] = sess.probes[k][1:]
	}
	return false, nil
}

// fillLimit bounds one probe: the per-probe queue cap, further clamped
// by the deck's effective daily limit for limited kinds.
func (s *Scheduler) fillLimit(k QueueKind, deckID int64) int {
	lim := s.cfg.QueueLimit
	n, ok := s.sess.tree.Node(deckID)
	if !ok {
		return lim
	}
	switch k {
	case KindNew:
		lim = minLimit(lim, n.EffNewLimit)
	case KindReview:
		lim = minLimit(lim, n.EffRevLimit)
	}
	if lim == deck.Unlimited {
		return s.cfg.QueueLimit
	}
	return lim
}
