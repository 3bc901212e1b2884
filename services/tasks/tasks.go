package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names handled by the cron worker.
const (
	TypeDailyDigest     = "digest:daily"
	TypeFeedingReminder = "feeding:reminder"
)

// DailyDigestPayload names the day a digest reports on.
type DailyDigestPayload struct {
	Date string `json:"date"` // "YYYY-MM-DD"
}

// FeedingReminderPayload identifies a feeding slot that is due.
type FeedingReminderPayload struct {
	BookingID string `json:"bookingId"`
	PetName   string `json:"petName"`
	Time      string `json:"time"` // "HH:MM"
}

// NewDailyDigestTask builds the once-a-day bookings digest task.
func NewDailyDigestTask(payload DailyDigestPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.MaxRetry(3)}
	return asynq.NewTask(TypeDailyDigest, b), opts, nil
}

// NewFeedingReminderTask builds a feeding reminder scheduled for fireAt.
func NewFeedingReminderTask(payload FeedingReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}
	return asynq.NewTask(TypeFeedingReminder, b), opts, nil
}
