package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hnakamura/decksched/internal/card"
	"github.com/hnakamura/decksched/internal/srs"
)

// Config holds the scheduler's tunables.
type Config struct {
	// QueueLimit caps how many cards one deck probe loads into a queue.
	QueueLimit int
	// ReportLimit caps displayed counts and count queries.
	ReportLimit int
	// RolloverHour is the local hour at which the scheduling day ends.
	RolloverHour int
	// NewFirst serves new cards before reviews instead of after.
	NewFirst bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		QueueLimit:   50,
		ReportLimit:  1000,
		RolloverHour: 4,
	}
}

// Counts are the displayed due counts for one deck.
type Counts struct {
	New    int
	Review int
	Learn  int
}

// Scheduler owns one study session per scope and serves cards from it.
// It assumes a single logical owner: callers serialize access. Work
// that straddles a reset is detected by the session generation counter
// and discarded rather than applied.
type Scheduler struct {
	store  Store
	engine *srs.Engine
	cfg    Config
	clock  func() time.Time

	scope      int64
	sess       *session
	haveQueues bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the wall clock. Tests use this to pin the day.
func WithClock(clock func() time.Time) Option {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// WithScope restricts the session to one deck's subtree. Zero studies
// the whole collection.
func WithScope(deckID int64) Option {
	return func(s *Scheduler) {
		s.scope = deckID
	}
}

// New creates a Scheduler over the given store and answer engine.
func New(store Store, engine *srs.Engine, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:  store,
		engine: engine,
		cfg:    cfg,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset rebuilds the due tree, clears all queues, and restores the deck
// probe lists to the scope's descendants. This is the only operation
// that walks the whole hierarchy; every external mutation site may call
// it unconditionally.
func (s *Scheduler) Reset(ctx context.Context) error {
	return s.rebuild(ctx)
}

func (s *Scheduler) rebuild(ctx context.Context) error {
	if s.sess == nil {
		s.sess = newSession(s.scope)
	}
	sess := s.sess
	sess.gen++
	gen := sess.gen

	t := TimingFor(s.clock(), s.cfg.RolloverHour)
	tree, err := s.buildTree(ctx, t)
	if err != nil {
		return err
	}
	if sess.gen != gen {
		// A newer reset superseded this rebuild while it ran.
		slog.Debug("discarding stale rebuild", "session", sess.id, "generation", gen)
		return nil
	}

	sess.timing = t
	sess.tree = tree
	decks := tree.SubtreeDecks(s.scope)
	for k := range sess.queues {
		sess.queues[k].clear()
		sess.probes[k] = append([]int64(nil), decks...)
	}
	sess.newCount, sess.revCount, sess.learnCount = tree.Totals(s.scope)
	s.haveQueues = true

	slog.Debug("scheduler reset",
		"session", sess.id, "generation", sess.gen, "scope", s.scope,
		"new", sess.newCount, "review", sess.revCount, "learn", sess.learnCount)
	return nil
}

// ensureSession makes sure queues exist and belong to the current
// scheduling day. Crossing the day boundary forces a full reset.
func (s *Scheduler) ensureSession(ctx context.Context) error {
	t := TimingFor(s.clock(), s.cfg.RolloverHour)
	if s.sess == nil || !s.haveQueues || s.sess.timing.Today != t.Today {
		return s.rebuild(ctx)
	}
	s.sess.timing.Now = t.Now
	return nil
}

// Answer grades the card, persists its next state and the review log
// through the store, and removes the card and its queued siblings from
// the session. It never triggers a full reset; sibling burial is the
// one incremental patch on the hot path.
func (s *Scheduler) Answer(ctx context.Context, cardID int64, quality int, takenMs int64) error {
	if err := s.ensureSession(ctx); err != nil {
		return err
	}
	t := s.sess.timing

	c, err := s.store.GetCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf("get card %d: %w", cardID, err)
	}
	if !c.Queue.Active() {
		return fmt.Errorf("card %d is suspended or buried", cardID)
	}

	wasNew := c.Type == card.TypeNew
	wasReview := c.Queue == card.QueueReview

	next := s.engine.Next(*c, quality, t.Now, t.Today, t.Cutoff)
	log := &card.ReviewLog{
		CardID:       c.ID,
		Quality:      quality,
		IntervalDays: next.IntervalDays,
		EaseFactor:   next.EaseFactor,
		TakenMs:      takenMs,
		Day:          t.Today,
		ReviewedAt:   t.Now.Unix(),
	}

	var newDelta, revDelta int
	if wasNew {
		newDelta = 1
	} else if wasReview {
		revDelta = 1
	}
	limitDecks := s.sess.tree.SelfAndAncestors(c.DeckID)

	if err := s.store.SaveAnswer(ctx, t, &next, log, limitDecks, newDelta, revDelta); err != nil {
		return fmt.Errorf("save answer for card %d: %w", cardID, err)
	}

	s.sess.consume(c.ID, c.NoteID)
	s.sess.tree.ChargeTaken(c.DeckID, newDelta, revDelta)
	// A card that lands back in today's learning ladder is still part of
	// this session's workload.
	if (next.Queue == card.QueueLearn && next.Due <= t.Cutoff.Unix()) ||
		(next.Queue == card.QueueDayLearn && int(next.Due) <= t.Today) {
		s.sess.learnCount++
	}
	return nil
}

// DeckCounts returns the displayed counts for one deck from the current
// due tree. Between a mutation and the next reset the values may under-
// or over-count siblings; that staleness is documented behavior.
func (s *Scheduler) DeckCounts(ctx context.Context, deckID int64) (Counts, error) {
	if err := s.ensureSession(ctx); err != nil {
		return Counts{}, err
	}
	n, ok := s.sess.tree.Node(deckID)
	if !ok {
		return Counts{}, fmt.Errorf("deck %d: %w", deckID, errNotFoundInTree)
	}
	return Counts{New: n.New, Review: n.Rev, Learn: n.Learn}, nil
}

// DueTree returns the current due tree, rebuilding the session first if
// needed. Callers must not mutate it.
func (s *Scheduler) DueTree(ctx context.Context) (*DueTree, error) {
	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}
	return s.sess.tree, nil
}

var errNotFoundInTree = errors.New("not present in due tree")
