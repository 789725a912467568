// Package card provides card domain models and repository interfaces.
package card

// Queue classifies where a card currently sits in the scheduler.
// The due field's meaning depends on the queue: a unix timestamp for
// learning cards, a day number for review and day-learning cards, and
// an ordering position for new cards.
type Queue int

const (
	QueueNew           Queue = 0
	QueueLearn         Queue = 1
	QueueReview        Queue = 2
	QueueDayLearn      Queue = 3
	QueueSuspended     Queue = -1
	QueueSiblingBuried Queue = -2
	QueueUserBuried    Queue = -3
)

// Buried reports whether the queue is one of the buried states.
func (q Queue) Buried() bool {
	return q == QueueSiblingBuried || q == QueueUserBuried
}

// Active reports whether cards in this queue are eligible for study.
func (q Queue) Active() bool {
	return q >= QueueNew
}

// Type records how far a card has progressed, independent of any
// temporary queue state such as burial or suspension.
type Type int

const (
	TypeNew Type = iota
	TypeLearning
	TypeReview
	TypeRelearning
)

// Card is a single reviewable unit. Cards generated from the same note
// are siblings and share the note id.
type Card struct {
	ID           int64   `db:"id"`
	NoteID       int64   `db:"note_id"`
	DeckID       int64   `db:"deck_id"`
	Ord          int     `db:"ord"`
	Queue        Queue   `db:"queue"`
	Type         Type    `db:"card_type"`
	Due          int64   `db:"due"`
	IntervalDays int     `db:"interval_days"`
	EaseFactor   float64 `db:"ease_factor"`
	Streak       int     `db:"streak"`
	Lapses       int     `db:"lapses"`
	Reps         int     `db:"reps"`
	StepsLeft    int     `db:"steps_left"`
	CreatedAt    int64   `db:"created_at"`
	UpdatedAt    int64   `db:"updated_at"`
}

// Note is the source content a card was generated from. A note with a
// reverse card produces two siblings (ord 0 and 1).
type Note struct {
	ID        int64  `db:"id"`
	Front     string `db:"front"`
	Back      string `db:"back"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

// Queued is the slim projection loaded into scheduler queues.
type Queued struct {
	CardID int64 `db:"id"`
	NoteID int64 `db:"note_id"`
	Due    int64 `db:"due"`
}

// ReviewLog records one answered review for statistics and debugging.
type ReviewLog struct {
	ID           int64   `db:"id"`
	CardID       int64   `db:"card_id"`
	Quality      int     `db:"quality"`
	IntervalDays int     `db:"interval_days"`
	EaseFactor   float64 `db:"ease_factor"`
	TakenMs      int64   `db:"taken_ms"`
	Day          int     `db:"day"`
	ReviewedAt   int64   `db:"reviewed_at"`
}
