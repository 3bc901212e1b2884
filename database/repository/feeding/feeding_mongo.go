package feedingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"furytails/database"
	"furytails/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no feeding record matches the given id.
var ErrNotFound = errors.New("feeding record not found")

// FeedingRepository defines methods for feeding history data access.
type FeedingRepository interface {
	// GetByID retrieves a feeding record by its unique ID.
	GetByID(id string) (*models.FeedingRecord, error)
	// GetPage retrieves one page of records, newest scheduledAt first.
	// Page numbering starts at 1.
	GetPage(page, pageSize int) ([]models.FeedingRecord, error)
	// Create inserts a feeding record.
	Create(rec *models.FeedingRecord) error
	// Count counts all feeding records.
	Count() (int64, error)
	// Watch invokes onChange for every collection change until the
	// context is cancelled.
	Watch(ctx context.Context, onChange func()) error
}

// MongoFeedingRepo implements FeedingRepository using MongoDB.
type MongoFeedingRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedingRepo creates a new instance of FeedingRepository using MongoDB.
func NewMongoFeedingRepo() FeedingRepository {
	repo := &MongoFeedingRepo{coll: database.Collection("feedingHistory")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "scheduledAt", Value: -1}}},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a feeding record by its unique ID.
func (r *MongoFeedingRepo) GetByID(id string) (*models.FeedingRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rec models.FeedingRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("feeding record %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch feeding record %s: %w", id, err)
	}
	return &rec, nil
}

// GetPage retrieves one page of records, newest scheduledAt first.
func (r *MongoFeedingRepo) GetPage(page, pageSize int) ([]models.FeedingRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "scheduledAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feeding records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.FeedingRecord
	for cursor.Next(ctx) {
		var rec models.FeedingRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode feeding record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Create inserts a feeding record.
func (r *MongoFeedingRepo) Create(rec *models.FeedingRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if rec.ScheduledAt.IsZero() {
		rec.ScheduledAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to create feeding record: %w", err)
	}
	return nil
}

// Count counts all feeding records.
func (r *MongoFeedingRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count feeding records: %w", err)
	}
	return count, nil
}

// Watch streams collection changes to onChange until ctx is cancelled.
func (r *MongoFeedingRepo) Watch(ctx context.Context, onChange func()) error {
	stream, err := r.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return fmt.Errorf("failed to open feeding change stream: %w", err)
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		onChange()
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("feeding change stream closed: %w", err)
	}
	return nil
}
