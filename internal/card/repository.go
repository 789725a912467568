package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hnakamura/decksched/internal/database"
)

// ErrNotFound is returned when a referenced card or note does not exist.
var ErrNotFound = errors.New("card not found")

// Repository defines operations for managing cards, notes, and review logs.
type Repository interface {
	Get(ctx context.Context, id int64) (*Card, error)
	GetNote(ctx context.Context, id int64) (*Note, error)
	Create(ctx context.Context, c *Card) error
	CreateNote(ctx context.Context, n *Note) error
	Update(ctx context.Context, c *Card) error

	ListNew(ctx context.Context, deckID int64, limit int) ([]Queued, error)
	ListLearnDue(ctx context.Context, deckID, now int64, limit int) ([]Queued, error)
	ListLearnAhead(ctx context.Context, deckID, now, cutoff int64, today, limit int) ([]Queued, error)
	ListReviewDue(ctx context.Context, deckID int64, today, limit int) ([]Queued, error)

	CountNew(ctx context.Context, deckID int64, limit int) (int, error)
	CountLearn(ctx context.Context, deckID, cutoff int64, today, limit int) (int, error)
	CountReviewDue(ctx context.Context, deckID int64, today, limit int) (int, error)

	SetQueue(ctx context.Context, ids []int64, q Queue) error
	BurySiblings(ctx context.Context, noteID, exceptCardID int64) error
	NextNewPosition(ctx context.Context) (int64, error)
	RestoreBuried(ctx context.Context, deckIDs []int64) error
	Unsuspend(ctx context.Context, ids []int64) error

	CreateReviewLog(ctx context.Context, log *ReviewLog) error
	CountReviewsOnDay(ctx context.Context, day int) (int, error)
}

// DBRepository implements Repository over sqlx. It accepts either a
// *sqlx.DB or a *sqlx.Tx so callers can reuse it inside transactions.
type DBRepository struct {
	db sqlx.ExtContext
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{db: db}
}

// Get returns the card with the given id.
func (r *DBRepository) Get(ctx context.Context, id int64) (*Card, error) {
	var c Card
	err := sqlx.GetContext(ctx, r.db, &c, "SELECT * FROM cards WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card) > %w", err)
	}
	return &c, nil
}

// GetNote returns the note with the given id.
func (r *DBRepository) GetNote(ctx context.Context, id int64) (*Note, error) {
	var n Note
	err := sqlx.GetContext(ctx, r.db, &n, "SELECT * FROM notes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(note) > %w", err)
	}
	return &n, nil
}

// Create inserts a new card. The id is assigned if unset.
func (r *DBRepository) Create(ctx context.Context, c *Card) error {
	if c.ID == 0 {
		c.ID = database.NewID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (id, note_id, deck_id, ord, queue, card_type, due, interval_days, ease_factor, streak, lapses, reps, steps_left, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.NoteID, c.DeckID, c.Ord, c.Queue, c.Type, c.Due, c.IntervalDays,
		c.EaseFactor, c.Streak, c.Lapses, c.Reps, c.StepsLeft, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert card) > %w", err)
	}
	return nil
}

// CreateNote inserts a new note. The id is assigned if unset.
func (r *DBRepository) CreateNote(ctx context.Context, n *Note) error {
	if n.ID == 0 {
		n.ID = database.NewID()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notes (id, front, back, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		n.ID, n.Front, n.Back, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert note) > %w", err)
	}
	return nil
}

// Update persists a card's scheduling state.
func (r *DBRepository) Update(ctx context.Context, c *Card) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards SET deck_id = ?, queue = ?, card_type = ?, due = ?, interval_days = ?,
			ease_factor = ?, streak = ?, lapses = ?, reps = ?, steps_left = ?, updated_at = ?
		WHERE id = ?`,
		c.DeckID, c.Queue, c.Type, c.Due, c.IntervalDays,
		c.EaseFactor, c.Streak, c.Lapses, c.Reps, c.StepsLeft, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update card) > %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNew returns up to limit new cards directly owned by the deck,
// ordered by their introduction position.
func (r *DBRepository) ListNew(ctx context.Context, deckID int64, limit int) ([]Queued, error) {
	var cards []Queued
	if err := sqlx.SelectContext(ctx, r.db, &cards,
		"SELECT id, note_id, due FROM cards WHERE deck_id = ? AND queue = ? ORDER BY due, ord LIMIT ?",
		deckID, QueueNew, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(new cards) > %w", err)
	}
	return cards, nil
}

// ListLearnDue returns learning cards in the deck whose due timestamp
// has already passed.
func (r *DBRepository) ListLearnDue(ctx context.Context, deckID, now int64, limit int) ([]Queued, error) {
	var cards []Queued
	if err := sqlx.SelectContext(ctx, r.db, &cards,
		"SELECT id, note_id, due FROM cards WHERE deck_id = ? AND queue = ? AND due <= ? ORDER BY due LIMIT ?",
		deckID, QueueLearn, now, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learn due cards) > %w", err)
	}
	return cards, nil
}

// ListLearnAhead returns learning cards due later today: intraday
// learning cards due between now and the day cutoff, and day-learning
// cards due today.
func (r *DBRepository) ListLearnAhead(ctx context.Context, deckID, now, cutoff int64, today, limit int) ([]Queued, error) {
	var cards []Queued
	if err := sqlx.SelectContext(ctx, r.db, &cards,
		`SELECT id, note_id, due FROM cards WHERE deck_id = ?
			AND ((queue = ? AND due > ? AND due <= ?) OR (queue = ? AND due <= ?))
		ORDER BY due LIMIT ?`,
		deckID, QueueLearn, now, cutoff, QueueDayLearn, today, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learn ahead cards) > %w", err)
	}
	return cards, nil
}

// ListReviewDue returns review cards in the deck due today or earlier.
func (r *DBRepository) ListReviewDue(ctx context.Context, deckID int64, today, limit int) ([]Queued, error) {
	var cards []Queued
	if err := sqlx.SelectContext(ctx, r.db, &cards,
		"SELECT id, note_id, due FROM cards WHERE deck_id = ? AND queue = ? AND due <= ? ORDER BY due LIMIT ?",
		deckID, QueueReview, today, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review due cards) > %w", err)
	}
	return cards, nil
}

// CountNew counts new cards directly owned by the deck, capped at limit.
func (r *DBRepository) CountNew(ctx context.Context, deckID int64, limit int) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count,
		"SELECT count(*) FROM (SELECT 1 FROM cards WHERE deck_id = ? AND queue = ? LIMIT ?) sub",
		deckID, QueueNew, limit); err != nil {
		return 0, fmt.Errorf("db.GetContext(count new) > %w", err)
	}
	return count, nil
}

// CountLearn counts learning cards in the deck due before the day ends,
// capped at limit.
func (r *DBRepository) CountLearn(ctx context.Context, deckID, cutoff int64, today, limit int) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count,
		`SELECT count(*) FROM (SELECT 1 FROM cards WHERE deck_id = ?
			AND ((queue = ? AND due <= ?) OR (queue = ? AND due <= ?)) LIMIT ?) sub`,
		deckID, QueueLearn, cutoff, QueueDayLearn, today, limit); err != nil {
		return 0, fmt.Errorf("db.GetContext(count learn) > %w", err)
	}
	return count, nil
}

// CountReviewDue counts review cards in the deck due today or earlier,
// capped at limit.
func (r *DBRepository) CountReviewDue(ctx context.Context, deckID int64, today, limit int) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count,
		"SELECT count(*) FROM (SELECT 1 FROM cards WHERE deck_id = ? AND queue = ? AND due <= ? LIMIT ?) sub",
		deckID, QueueReview, today, limit); err != nil {
		return 0, fmt.Errorf("db.GetContext(count review due) > %w", err)
	}
	return count, nil
}

// SetQueue moves the given cards into the given queue. Used for manual
// bury, sibling bury, and suspend.
func (r *DBRepository) SetQueue(ctx context.Context, ids []int64, q Queue) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("UPDATE cards SET queue = ? WHERE id IN (?)", q, ids)
	if err != nil {
		return fmt.Errorf("sqlx.In(set queue) > %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.ExecContext(set queue) > %w", err)
	}
	return nil
}

// BurySiblings moves the note's other new and review cards into the
// sibling-buried queue so one study day never shows two cards from the
// same note. Learning cards are left alone; their timers keep running.
func (r *DBRepository) BurySiblings(ctx context.Context, noteID, exceptCardID int64) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE cards SET queue = ? WHERE note_id = ? AND id <> ? AND queue IN (?, ?)",
		QueueSiblingBuried, noteID, exceptCardID, QueueNew, QueueReview); err != nil {
		return fmt.Errorf("db.ExecContext(bury siblings) > %w", err)
	}
	return nil
}

// NextNewPosition returns the position to assign to the next created
// new card, after all existing new cards.
func (r *DBRepository) NextNewPosition(ctx context.Context) (int64, error) {
	var pos int64
	if err := sqlx.GetContext(ctx, r.db, &pos,
		"SELECT coalesce(max(due), 0) + 1 FROM cards WHERE queue = ?", QueueNew); err != nil {
		return 0, fmt.Errorf("db.GetContext(next new position) > %w", err)
	}
	return pos, nil
}

// RestoreBuried returns buried cards in the given decks to the queue
// implied by their card type. An empty deck list restores everywhere.
func (r *DBRepository) RestoreBuried(ctx context.Context, deckIDs []int64) error {
	restore := `UPDATE cards SET queue = CASE card_type WHEN ? THEN ? ELSE card_type END WHERE queue IN (?, ?)`
	args := []interface{}{TypeRelearning, QueueLearn, QueueSiblingBuried, QueueUserBuried}
	if len(deckIDs) > 0 {
		query, inArgs, err := sqlx.In(restore+" AND deck_id IN (?)", append(args, deckIDs)...)
		if err != nil {
			return fmt.Errorf("sqlx.In(restore buried) > %w", err)
		}
		if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), inArgs...); err != nil {
			return fmt.Errorf("db.ExecContext(restore buried) > %w", err)
		}
		return nil
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(restore), args...); err != nil {
		return fmt.Errorf("db.ExecContext(restore buried) > %w", err)
	}
	return nil
}

// Unsuspend returns suspended cards to the queue implied by their card type.
func (r *DBRepository) Unsuspend(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(
		"UPDATE cards SET queue = CASE card_type WHEN ? THEN ? ELSE card_type END WHERE queue = ? AND id IN (?)",
		TypeRelearning, QueueLearn, QueueSuspended, ids)
	if err != nil {
		return fmt.Errorf("sqlx.In(unsuspend) > %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.ExecContext(unsuspend) > %w", err)
	}
	return nil
}

// CreateReviewLog inserts a review log entry. The id is assigned if unset.
func (r *DBRepository) CreateReviewLog(ctx context.Context, log *ReviewLog) error {
	if log.ID == 0 {
		log.ID = database.NewID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_logs (id, card_id, quality, interval_days, ease_factor, taken_ms, day, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID, log.CardID, log.Quality, log.IntervalDays, log.EaseFactor,
		log.TakenMs, log.Day, log.ReviewedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review_log) > %w", err)
	}
	return nil
}

// CountReviewsOnDay counts answers recorded on the given scheduling day.
func (r *DBRepository) CountReviewsOnDay(ctx context.Context, day int) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count,
		"SELECT count(*) FROM review_logs WHERE day = ?", day); err != nil {
		return 0, fmt.Errorf("db.GetContext(count reviews on day) > %w", err)
	}
	return count, nil
}
