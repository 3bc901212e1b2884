package bookingRepo

import (
	"context"

	"furytails/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest submissions first.
	GetAll() ([]models.Booking, error)
	// GetByStatuses retrieves bookings whose status is in the given set,
	// newest submissions first.
	GetByStatuses(statuses []string) ([]models.Booking, error)
	// GetByDate retrieves bookings whose effective date fields match a
	// "YYYY-MM-DD" date.
	GetByDate(date string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// UpdateFields applies a partial update to a booking and stamps
	// updatedAt.
	UpdateFields(id string, fields bson.M) error
	// AppendAdminNote appends a note to a booking's admin notes.
	AppendAdminNote(id string, note string) error
	// CountByStatus counts bookings with the given status; an empty
	// status counts everything.
	CountByStatus(status string) (int64, error)
	// Watch invokes onChange for every collection change until the
	// context is cancelled. Returns an error when the deployment does
	// not support change streams.
	Watch(ctx context.Context, onChange func()) error
}
