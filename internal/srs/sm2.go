// Package srs computes the next scheduling state of a card after an
// answer: an SM-2 style easiness factor drives review intervals, and a
// learning-step ladder moves new and lapsed cards back to review.
package srs

import "math"

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Correct reports whether a quality grade (1-5) counts as correct.
func Correct(quality int) bool {
	return quality >= 3
}

// UpdateEaseFactor applies the SM-2 ease adjustment for one grade. The
// penalty for a wrong answer shrinks with the card's prior correct
// streak, so a single slip on a mature card does not crater its ease.
func UpdateEaseFactor(ef float64, quality int, previousCorrectStreak int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}
	q := float64(quality)
	delta := 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if quality < 3 {
		delta *= penaltyScale(previousCorrectStreak)
	}
	return math.Max(ef+delta, MinEaseFactor)
}

// penaltyScale dampens the ease penalty on well-learned cards.
func penaltyScale(streak int) float64 {
	switch {
	case streak >= 10:
		return 0.37
	case streak >= 6:
		return 0.56
	case streak >= 3:
		return 0.74
	}
	return 1
}

// NextReviewInterval returns the next review interval in days. The
// first two correct answers pin the interval at 1 and 6 days; after
// that it grows by the ease factor. Wrong answers hand off to
// LapseInterval.
func NextReviewInterval(lastInterval int, ef float64, quality int, correctStreak int) int {
	if ef == 0 {
		ef = DefaultEaseFactor
	}
	if quality < 3 {
		return LapseInterval(lastInterval, correctStreak)
	}
	switch correctStreak {
	case 1:
		return 1
	case 2:
		return 6
	}
	if lastInterval == 0 {
		lastInterval = 6
	}
	return int(math.Ceil(float64(lastInterval) * ef))
}

// LapseInterval shrinks the interval after a wrong answer rather than
// resetting it, keeping part of the progress a mature card had earned.
// Cards with a short streak start over at one day.
func LapseInterval(lastInterval int, previousCorrectStreak int) int {
	if previousCorrectStreak <= 2 {
		return 1
	}
	multiplier := 0.5
	switch {
	case previousCorrectStreak >= 10:
		multiplier = 0.7
	case previousCorrectStreak >= 6:
		multiplier = 0.6
	}
	next := int(math.Ceil(float64(lastInterval) * multiplier))
	if next < 1 {
		return 1
	}
	return next
}
