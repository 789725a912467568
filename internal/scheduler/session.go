package scheduler

import "github.com/google/uuid"

// queueEntry is one queued card. The note id travels with the card so
// sibling burial never needs a storage lookup.
type queueEntry struct {
	cardID int64
	noteID int64
	due    int64
}

type cardQueue struct {
	entries []queueEntry
}

func (q *cardQueue) empty() bool {
	return len(q.entries) == 0
}

func (q *cardQueue) front() (queueEntry, bool) {
	if len(q.entries) == 0 {
		return queueEntry{}, false
	}
	return q.entries[0], true
}

func (q *cardQueue) append(entries []queueEntry) {
	q.entries = append(q.entries, entries...)
}

func (q *cardQueue) clear() {
	q.entries = q.entries[:0]
}

// removeCard removes the entry with the given card id, if present.
func (q *cardQueue) removeCard(cardID int64) (queueEntry, bool) {
	for i, e := range q.entries {
		if e.cardID == cardID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return e, true
		}
	}
	return queueEntry{}, false
}

// removeNote removes every entry sharing the note id.
func (q *cardQueue) removeNote(noteID int64) int {
	kept := q.entries[:0]
	removed := 0
	for _, e := range q.entries {
		if e.noteID == noteID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	return removed
}

// session is the scheduler state for one study scope: the four queues,
// the per-queue deck probe lists, the due tree, remaining counts, and
// the generation counter that detects work superseded by a reset.
// Single-writer; callers serialize access externally.
type session struct {
	id    uuid.UUID
	scope int64

	gen    uint64
	timing Timing
	tree   *DueTree

	queues [numKinds]cardQueue
	probes [numKinds][]int64

	// Remaining counts for the scope, initialized from the due tree on
	// every rebuild and decremented as cards are answered. Burying a
	// sibling does not decrement, so these may overstate what is
	// actually left; that inaccuracy is accepted until the next reset.
	newCount   int
	revCount   int
	learnCount int
}

func newSession(scope int64) *session {
	return &session{
		id:    uuid.New(),
		scope: scope,
	}
}

// count returns the remaining count backing the given queue kind. Both
// learning kinds share one counter.
func (s *session) count(k QueueKind) int {
	switch k {
	case KindNew:
		return s.newCount
	case KindReview:
		return s.revCount
	default:
		return s.learnCount
	}
}

func (s *session) decrement(k QueueKind) {
	switch k {
	case KindNew:
		if s.newCount > 0 {
			s.newCount--
		}
	case KindReview:
		if s.revCount > 0 {
			s.revCount--
		}
	default:
		if s.learnCount > 0 {
			s.learnCount--
		}
	}
}

func (s *session) totalCount() int {
	return s.newCount + s.revCount + s.learnCount
}

// consume removes the answered card from whichever queue holds it and,
// with it, every queued sibling from all four queues. Incremental by
// design: it runs on every answer and must stay O(queued cards).
func (s *session) consume(cardID, noteID int64) {
	for k := range s.queues {
		if _, ok := s.queues[k].removeCard(cardID); ok {
			s.decrement(QueueKind(k))
			break
		}
	}
	for k := range s.queues {
		s.queues[k].removeNote(noteID)
	}
}

// dropCard discards a single queue entry that storage reports as no
// longer studyable. Siblings stay queued.
func (s *session) dropCard(k QueueKind, cardID int64) {
	if _, ok := s.queues[k].removeCard(cardID); ok {
		s.decrement(k)
	}
}
