// Package deck provides deck domain models and repository interfaces.
package deck

import (
	"database/sql"
	"strings"
)

// Unlimited marks a per-day limit with no configured cap.
const Unlimited = -1

// NameSeparator joins parent and child deck names, e.g. "Spanish::Verbs".
const NameSeparator = "::"

// Deck is a named collection node in the deck hierarchy.
// The taken-today counters belong to the scheduling day stored in
// CountersDay; counters from an older day are treated as zero.
type Deck struct {
	ID            int64         `db:"id"`
	Name          string        `db:"name"`
	ParentID      sql.NullInt64 `db:"parent_id"`
	NewPerDay     int           `db:"new_per_day"`
	RevPerDay     int           `db:"rev_per_day"`
	NewTakenToday int           `db:"new_taken_today"`
	RevTakenToday int           `db:"rev_taken_today"`
	CountersDay   int           `db:"counters_day"`
}

// RemainingNewToday returns how many new cards this deck may still
// introduce today, ignoring ancestor limits. Unlimited if unconfigured.
func (d Deck) RemainingNewToday(today int) int {
	return remaining(d.NewPerDay, d.NewTakenToday, d.CountersDay, today)
}

// RemainingRevToday returns how many reviews this deck may still take
// today, ignoring ancestor limits. Unlimited if unconfigured.
func (d Deck) RemainingRevToday(today int) int {
	return remaining(d.RevPerDay, d.RevTakenToday, d.CountersDay, today)
}

func remaining(perDay, taken, countersDay, today int) int {
	if perDay < 0 {
		return Unlimited
	}
	if countersDay != today {
		taken = 0
	}
	rem := perDay - taken
	if rem < 0 {
		rem = 0
	}
	return rem
}

// BaseName returns the last component of the deck name.
func (d Deck) BaseName() string {
	parts := strings.Split(d.Name, NameSeparator)
	return parts[len(parts)-1]
}

// PathComponents splits a full deck name into its ancestor chain,
// e.g. "A::B::C" -> ["A", "A::B", "A::B::C"].
func PathComponents(name string) []string {
	parts := strings.Split(name, NameSeparator)
	paths := make([]string, 0, len(parts))
	for i := range parts {
		paths = append(paths, strings.Join(parts[:i+1], NameSeparator))
	}
	return paths
}
