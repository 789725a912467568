package srs

import (
	"time"

	"github.com/hnakamura/decksched/internal/card"
)

// Config holds the tunable parameters of the engine.
type Config struct {
	// LearningStepsMinutes are the delays a card walks through before
	// graduating to review. Also used for relearning after a lapse.
	LearningStepsMinutes []int
	// MaxIntervalDays caps review intervals. Zero means no cap.
	MaxIntervalDays int
}

// DefaultConfig returns the stock two-step ladder.
func DefaultConfig() Config {
	return Config{
		LearningStepsMinutes: []int{1, 10},
		MaxIntervalDays:      36500,
	}
}

// Engine computes a card's next scheduling state from an answer grade.
// It is a pure function of the card, the grade, and the clock; callers
// persist the returned state.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine with the given config. An empty step
// ladder falls back to the default.
func NewEngine(cfg Config) *Engine {
	if len(cfg.LearningStepsMinutes) == 0 {
		cfg.LearningStepsMinutes = DefaultConfig().LearningStepsMinutes
	}
	return &Engine{cfg: cfg}
}

// Next returns the card's state after answering with the given quality
// grade (1-5, below 3 is a failure). today is the scheduling day number
// and cutoff is the end of the current scheduling day; they decide
// whether a learning step lands in the intraday or the day-learning queue.
func (e *Engine) Next(c card.Card, quality int, now time.Time, today int, cutoff time.Time) card.Card {
	c.Reps++
	c.UpdatedAt = now.Unix()

	correct := Correct(quality)
	switch c.Type {
	case card.TypeNew:
		c.Type = card.TypeLearning
		c.StepsLeft = len(e.cfg.LearningStepsMinutes)
		if correct {
			// Seeing the card counts as completing the first step.
			e.advanceLearning(&c, quality, now, today, cutoff)
		} else {
			c.Streak = 0
			e.scheduleStep(&c, now, today, cutoff)
		}
	case card.TypeLearning, card.TypeRelearning:
		if correct {
			e.advanceLearning(&c, quality, now, today, cutoff)
		} else {
			c.Streak = 0
			c.StepsLeft = len(e.cfg.LearningStepsMinutes)
			e.scheduleStep(&c, now, today, cutoff)
		}
	case card.TypeReview:
		if correct {
			prev := c.Streak
			c.Streak++
			c.EaseFactor = UpdateEaseFactor(c.EaseFactor, quality, prev)
			c.IntervalDays = e.capInterval(NextReviewInterval(c.IntervalDays, c.EaseFactor, quality, c.Streak))
			c.Queue = card.QueueReview
			c.Due = int64(today + c.IntervalDays)
		} else {
			prev := c.Streak
			c.Streak = 0
			c.Lapses++
			c.EaseFactor = UpdateEaseFactor(c.EaseFactor, quality, prev)
			c.IntervalDays = LapseInterval(c.IntervalDays, prev)
			c.Type = card.TypeRelearning
			c.StepsLeft = len(e.cfg.LearningStepsMinutes)
			e.scheduleStep(&c, now, today, cutoff)
		}
	}
	return c
}

func (e *Engine) advanceLearning(c *card.Card, quality int, now time.Time, today int, cutoff time.Time) {
	c.StepsLeft--
	if c.StepsLeft <= 0 {
		e.graduate(c, quality, today)
		return
	}
	e.scheduleStep(c, now, today, cutoff)
}

func (e *Engine) graduate(c *card.Card, quality int, today int) {
	c.StepsLeft = 0
	if c.Type == card.TypeRelearning {
		// Lapsed cards keep their reduced interval.
		if c.IntervalDays < 1 {
			c.IntervalDays = 1
		}
		c.Streak = 1
	} else {
		c.Streak = 1
		c.EaseFactor = UpdateEaseFactor(c.EaseFactor, quality, 0)
		c.IntervalDays = NextReviewInterval(0, c.EaseFactor, quality, c.Streak)
	}
	c.Type = card.TypeReview
	c.Queue = card.QueueReview
	c.Due = int64(today + c.IntervalDays)
}

// scheduleStep schedules the card's current step. Steps that land past
// the day cutoff move the card into the day-learning queue for tomorrow.
func (e *Engine) scheduleStep(c *card.Card, now time.Time, today int, cutoff time.Time) {
	idx := len(e.cfg.LearningStepsMinutes) - c.StepsLeft
	if idx < 0 {
		idx = 0
	}
	if idx >= len(e.cfg.LearningStepsMinutes) {
		idx = len(e.cfg.LearningStepsMinutes) - 1
	}
	due := now.Add(time.Duration(e.cfg.LearningStepsMinutes[idx]) * time.Minute)
	if due.Before(cutoff) {
		c.Queue = card.QueueLearn
		c.Due = due.Unix()
	} else {
		c.Queue = card.QueueDayLearn
		c.Due = int64(today + 1)
	}
}

func (e *Engine) capInterval(days int) int {
	if e.cfg.MaxIntervalDays > 0 && days > e.cfg.MaxIntervalDays {
		return e.cfg.MaxIntervalDays
	}
	return days
}
