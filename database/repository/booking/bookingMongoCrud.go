package bookingRepo

import (
	"fmt"
	"time"

	"furytails/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if b.Timestamp.IsZero() {
		b.Timestamp = time.Now()
	}
	b.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to a booking and stamps updatedAt.
func (r *MongoBookingRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return nil
}

// AppendAdminNote appends a note to a booking's admin notes. Documents
// that still hold a bare string note are rewritten as an array first.
func (r *MongoBookingRepo) AppendAdminNote(id string, note string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var current struct {
		AdminNotes models.Notes `bson:"adminNotes"`
	}
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&current)
	if err != nil {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	notes := append([]string(current.AdminNotes), note)
	update := bson.M{"$set": bson.M{"adminNotes": notes, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to append note to booking %s: %w", id, err)
	}
	return nil
}
