package scheduler

import "context"

// Mutation identifies an out-of-band change made through the storage
// layer that the scheduler's caches must be reconciled with.
type Mutation int

const (
	MutationAnswer Mutation = iota
	MutationUndo
	MutationBury
	MutationUnbury
	MutationSuspend
	MutationUnsuspend
	MutationReschedule
	MutationDeckConfig
	MutationContentEdit
)

func (m Mutation) String() string {
	switch m {
	case MutationAnswer:
		return "answer"
	case MutationUndo:
		return "undo"
	case MutationBury:
		return "bury"
	case MutationUnbury:
		return "unbury"
	case MutationSuspend:
		return "suspend"
	case MutationUnsuspend:
		return "unsuspend"
	case MutationReschedule:
		return "reschedule"
	case MutationDeckConfig:
		return "deck-config"
	case MutationContentEdit:
		return "content-edit"
	}
	return "unknown"
}

// requiresReset is the invalidation table. Answers are patched
// incrementally (sibling burial happens inside Answer); every other
// mutation is a rare user action where a full rebuild is acceptable.
// Content edits don't touch scheduling fields, but resetting anyway is
// an accepted inefficiency rather than a correctness requirement.
func (m Mutation) requiresReset() bool {
	return m != MutationAnswer
}

// ApplyMutation reconciles the session with a mutation that already
// committed at the storage layer.
func (s *Scheduler) ApplyMutation(ctx context.Context, m Mutation) error {
	if !m.requiresReset() {
		return nil
	}
	return s.Reset(ctx)
}
