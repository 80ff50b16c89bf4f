package models

import (
	"time"

	"github.com/google/uuid"
)

// reviewOffsets is the Ebbinghaus spaced repetition schedule: review a missed
// topic 1, 3, 7, 21 and 30 days after the error.
var reviewOffsets = [5]int{1, 3, 7, 21, 30}

// ErrorEntry records a single missed topic. The review schedule is generated
// exactly once at creation and never recomputed; only CompletedReviews is
// mutated afterwards, and it is always a subset of ReviewDates.
type ErrorEntry struct {
	ID               string      `json:"id"`
	Subject          string      `json:"subject"`
	Topic            string      `json:"topic"`
	ErrorDate        time.Time   `json:"error_date"`
	ReviewDates      []time.Time `json:"review_dates"`
	CompletedReviews []time.Time `json:"completed_reviews"`
}

// NewErrorEntry creates an entry with its five-session review schedule.
func NewErrorEntry(subject, topic string, errorDate time.Time) ErrorEntry {
	day := DateOnly(errorDate)
	dates := make([]time.Time, 0, len(reviewOffsets))
	for _, offset := range reviewOffsets {
		dates = append(dates, day.AddDate(0, 0, offset))
	}
	return ErrorEntry{
		ID:          uuid.NewString(),
		Subject:     subject,
		Topic:       topic,
		ErrorDate:   day,
		ReviewDates: dates,
	}
}

func (e ErrorEntry) isCompleted(day time.Time) bool {
	for _, c := range e.CompletedReviews {
		if c.Equal(day) {
			return true
		}
	}
	return false
}

// DueOn reports whether the given day is a scheduled, not yet completed
// review session.
func (e ErrorEntry) DueOn(day time.Time) bool {
	day = DateOnly(day)
	for _, d := range e.ReviewDates {
		if d.Equal(day) && !e.isCompleted(day) {
			return true
		}
	}
	return false
}

// PendingReviews counts scheduled sessions on or before today that have not
// been completed.
func (e ErrorEntry) PendingReviews(today time.Time) int {
	today = DateOnly(today)
	count := 0
	for _, d := range e.ReviewDates {
		if !d.After(today) && !e.isCompleted(d) {
			count++
		}
	}
	return count
}

// CompleteReview marks one scheduled session as done. Dates outside the
// schedule are ignored so CompletedReviews stays a subset of ReviewDates;
// the call is idempotent.
func (e *ErrorEntry) CompleteReview(on time.Time) bool {
	day := DateOnly(on)
	for _, d := range e.ReviewDates {
		if d.Equal(day) {
			if e.isCompleted(day) {
				return false
			}
			e.CompletedReviews = append(e.CompletedReviews, day)
			return true
		}
	}
	return false
}
