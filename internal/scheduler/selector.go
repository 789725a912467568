package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hnakamura/decksched/internal/card"
)

// GetNextCard returns the card to present next, or nil when nothing is
// left to study. The returned card stays at the front of its queue;
// repeated calls without an intervening answer return the same card.
func (s *Scheduler) GetNextCard(ctx context.Context) (*card.Card, error) {
	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		c, err := s.pickCard(ctx)
		if errors.Is(err, errStaleGeneration) {
			// A concurrent reset superseded this pass; the caller's
			// next call runs against the fresh session.
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
		if s.sess.totalCount() == 0 {
			return nil, nil
		}
		// Counts claim cards remain but every probe list is exhausted:
		// the counts went stale. One rebuild settles it; if the second
		// pass still finds nothing, report done rather than spin.
		if attempt == 0 {
			slog.Debug("queues exhausted with non-zero counts, rebuilding",
				"session", s.sess.id, "new", s.sess.newCount,
				"review", s.sess.revCount, "learn", s.sess.learnCount)
			if err := s.rebuild(ctx); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// pickCard walks the queues in priority order, refilling lazily. Queues
// whose remaining count is zero are skipped without touching storage.
func (s *Scheduler) pickCard(ctx context.Context) (*card.Card, error) {
	for _, k := range s.evalOrder() {
		if s.sess.count(k) <= 0 {
			continue
		}
		for {
			ok, err := s.refill(ctx, k)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			e, _ := s.sess.queues[k].front()
			c, err := s.store.GetCard(ctx, e.cardID)
			if errors.Is(err, card.ErrNotFound) {
				s.sess.dropCard(k, e.cardID)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("get card %d: %w", e.cardID, err)
			}
			if !c.Queue.Active() {
				// Storage mutated behind the cache; drop the entry and
				// keep going instead of failing the whole call.
				slog.Debug("dropping unstudyable queued card",
					"card", c.ID, "queue", int(c.Queue))
				s.sess.dropCard(k, e.cardID)
				continue
			}
			return c, nil
		}
	}
	return nil, nil
}

// evalOrder is the single auditable configuration point for queue
// priority. Due learning always leads; day-learning always trails.
func (s *Scheduler) evalOrder() [numKinds]QueueKind {
	if s.cfg.NewFirst {
		return [numKinds]QueueKind{KindLearn, KindNew, KindReview, KindDayLearn}
	}
	return [numKinds]QueueKind{KindLearn, KindReview, KindNew, KindDayLearn}
}
