package models

import "time"

// FeedingRecord is a feeding log entry from the feedingHistory collection.
type FeedingRecord struct {
	ID            string        `bson:"id" json:"id"`
	BookingID     string        `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	UserID        string        `bson:"userId,omitempty" json:"userId,omitempty"`
	PetID         string        `bson:"petId,omitempty" json:"petId,omitempty"`
	PetName       string        `bson:"petName,omitempty" json:"petName,omitempty"`
	OwnerName     string        `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	RoomType      string        `bson:"roomType,omitempty" json:"roomType,omitempty"`
	RoomNumber    string        `bson:"roomNumber,omitempty" json:"roomNumber,omitempty"`
	FoodBrand     string        `bson:"foodBrand,omitempty" json:"foodBrand,omitempty"`
	SpecificTimes []FeedingTime `bson:"specificTimes,omitempty" json:"specificTimes,omitempty"`
	Schedule      *FeedingTime  `bson:"schedule,omitempty" json:"schedule,omitempty"` // legacy single-slot field
	ScheduledAt   time.Time     `bson:"scheduledAt" json:"scheduledAt"`
	Status        string        `bson:"status,omitempty" json:"status,omitempty"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Picture       string        `bson:"picture,omitempty" json:"picture,omitempty"`
}

type FeedingTime struct {
	Time string `bson:"time" json:"time"` // "HH:MM"
}

// DisplayTimes resolves which times a record is shown under: the explicit
// list when present, then the scheduled instant, then the legacy slot.
func (r *FeedingRecord) DisplayTimes() []string {
	if len(r.SpecificTimes) > 0 {
		times := make([]string, 0, len(r.SpecificTimes))
		for _, t := range r.SpecificTimes {
			if t.Time != "" {
				times = append(times, t.Time)
			}
		}
		if len(times) > 0 {
			return times
		}
	}
	if !r.ScheduledAt.IsZero() {
		return []string{r.ScheduledAt.Format("15:04")}
	}
	if r.Schedule != nil && r.Schedule.Time != "" {
		return []string{r.Schedule.Time}
	}
	return nil
}
