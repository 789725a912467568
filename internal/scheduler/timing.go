package scheduler

import "time"

// Timing pins one scheduling day: the wall clock, the day number, and
// the moment the day ends. Review cards are due by day number; learning
// cards by unix timestamp.
type Timing struct {
	Now    time.Time
	Today  int
	Cutoff time.Time
}

// TimingFor computes the scheduling day containing now. The day rolls
// over at rolloverHour local time rather than midnight, so late-night
// studying stays within one day.
func TimingFor(now time.Time, rolloverHour int) Timing {
	shifted := now.Add(-time.Duration(rolloverHour) * time.Hour)
	y, m, d := shifted.Date()
	today := int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
	cutoff := time.Date(y, m, d, rolloverHour, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	return Timing{Now: now, Today: today, Cutoff: cutoff}
}
