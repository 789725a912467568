// Package scheduler decides which card a learner sees next. It keeps
// four lazily filled queues of due cards, a deck due tree whose counts
// are clamped by per-deck daily limits inherited down the hierarchy,
// and a reset protocol that keeps both consistent with out-of-band
// mutations.
package scheduler

// QueueKind identifies one of the four scheduler queues.
type QueueKind int

const (
	// KindLearn holds learning cards whose due timestamp has passed.
	// Checked first so short-interval relearning is not starved.
	KindLearn QueueKind = iota
	// KindReview holds cards due for spaced review today.
	KindReview
	// KindNew holds cards never studied.
	KindNew
	// KindDayLearn holds learning cards due later today, checked only
	// after everything else is exhausted.
	KindDayLearn

	numKinds
)

func (k QueueKind) String() string {
	switch k {
	case KindLearn:
		return "learn"
	case KindReview:
		return "review"
	case KindNew:
		return "new"
	case KindDayLearn:
		return "day-learn"
	}
	return "unknown"
}
