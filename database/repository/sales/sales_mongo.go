package salesRepo

import (
	"context"
	"fmt"
	"time"

	"furytails/database"
	"furytails/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SalesRepository defines methods for sales report data access.
type SalesRepository interface {
	// Create inserts a sales report record.
	Create(report *models.SalesReport) error
	// GetByBookingID retrieves the report created for a booking; nil
	// when none exists.
	GetByBookingID(bookingID string) (*models.SalesReport, error)
	// GetAll retrieves all sales reports, newest first.
	GetAll() ([]models.SalesReport, error)
}

// MongoSalesRepo implements SalesRepository using MongoDB.
type MongoSalesRepo struct {
	coll *mongo.Collection
}

// NewMongoSalesRepo creates a new instance of SalesRepository using MongoDB.
func NewMongoSalesRepo() SalesRepository {
	repo := &MongoSalesRepo{coll: database.Collection("salesReports")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSalesRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a sales report record.
func (r *MongoSalesRepo) Create(report *models.SalesReport) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create sales report: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the report created for a booking; nil when
// none exists.
func (r *MongoSalesRepo) GetByBookingID(bookingID string) (*models.SalesReport, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var report models.SalesReport
	err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch sales report for booking %s: %w", bookingID, err)
	}
	return &report, nil
}

// GetAll retrieves all sales reports, newest first.
func (r *MongoSalesRepo) GetAll() ([]models.SalesReport, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sales reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.SalesReport
	for cursor.Next(ctx) {
		var rep models.SalesReport
		if err := cursor.Decode(&rep); err != nil {
			return nil, fmt.Errorf("failed to decode sales report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
