package deck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hnakamura/decksched/internal/database"
)

// ErrNotFound is returned when a referenced deck does not exist.
var ErrNotFound = errors.New("deck not found")

// Repository defines operations for managing decks.
type Repository interface {
	List(ctx context.Context) ([]Deck, error)
	Get(ctx context.Context, id int64) (*Deck, error)
	GetByName(ctx context.Context, name string) (*Deck, error)
	Create(ctx context.Context, d *Deck) error
	UpdateLimits(ctx context.Context, id int64, newPerDay, revPerDay int) error
	AddTakenToday(ctx context.Context, ids []int64, newDelta, revDelta, today int) error
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

// List returns all decks ordered by name, which places every parent
// before its children.
func (r *DBRepository) List(ctx context.Context) ([]Deck, error) {
	var decks []Deck
	if err := sqlx.SelectContext(ctx, r.db, &decks, "SELECT * FROM decks ORDER BY name"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(decks) > %w", err)
	}
	return decks, nil
}

// Get returns the deck with the given id.
func (r *DBRepository) Get(ctx context.Context, id int64) (*Deck, error) {
	var d Deck
	err := sqlx.GetContext(ctx, r.db, &d, "SELECT * FROM decks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck) > %w", err)
	}
	return &d, nil
}

// GetByName returns the deck with the given full name, or ErrNotFound.
func (r *DBRepository) GetByName(ctx context.Context, name string) (*Deck, error) {
	var d Deck
	err := sqlx.GetContext(ctx, r.db, &d, "SELECT * FROM decks WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck by name) > %w", err)
	}
	return &d, nil
}

// Create inserts a new deck. The id is assigned if unset.
func (r *DBRepository) Create(ctx context.Context, d *Deck) error {
	if d.ID == 0 {
		d.ID = database.NewID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decks (id, name, parent_id, new_per_day, rev_per_day, new_taken_today, rev_taken_today, counters_day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.ParentID, d.NewPerDay, d.RevPerDay,
		d.NewTakenToday, d.RevTakenToday, d.CountersDay)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert deck) > %w", err)
	}
	return nil
}

// UpdateLimits changes a deck's configured daily limits.
func (r *DBRepository) UpdateLimits(ctx context.Context, id int64, newPerDay, revPerDay int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE decks SET new_per_day = ?, rev_per_day = ? WHERE id = ?",
		newPerDay, revPerDay, id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update deck limits) > %w", err)
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

// AddTakenToday bumps the taken-today counters on the given decks.
// Counters left over from an earlier day are replaced rather than
// incremented, which performs the day-boundary reset lazily.
func (r *DBRepository) AddTakenToday(ctx context.Context, ids []int64, newDelta, revDelta, today int) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(
		`UPDATE decks SET
			new_taken_today = CASE WHEN counters_day = ? THEN new_taken_today + ? ELSE ? END,
			rev_taken_today = CASE WHEN counters_day = ? THEN rev_taken_today + ? ELSE ? END,
			counters_day = ?
		WHERE id IN (?)`,
		today, newDelta, newDelta, today, revDelta, revDelta, today, ids)
	if err != nil {
		return fmt.Errorf("sqlx.In(update taken today) > %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.ExecContext(update taken today) > %w", err)
	}
	return nil
}
