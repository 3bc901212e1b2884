package models

import "time"

// SalesReport is the per-booking record written to the salesReports
// collection when a booking is accepted. Amounts come from the shared
// charge calculator; customer and stay fields are denormalized for the
// sales views.
type SalesReport struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	UserID        string    `bson:"userId,omitempty" json:"userId,omitempty"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerEmail string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	PetName       string    `bson:"petName,omitempty" json:"petName,omitempty"`
	ServiceType   string    `bson:"serviceType" json:"serviceType"`
	SizeCategory  string    `bson:"sizeCategory,omitempty" json:"sizeCategory,omitempty"`
	RoomType      string    `bson:"roomType,omitempty" json:"roomType,omitempty"`
	CheckInDate   string    `bson:"checkInDate,omitempty" json:"checkInDate,omitempty"`
	CheckOutDate  string    `bson:"checkOutDate,omitempty" json:"checkOutDate,omitempty"`
	NumberOfDays  int       `bson:"numberOfDays" json:"numberOfDays"`
	TotalAmount   float64   `bson:"totalAmount" json:"totalAmount"`
	DownPayment   float64   `bson:"downPayment" json:"downPayment"`
	Balance       float64   `bson:"balance" json:"balance"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// SalesRow is a computed sales-view row. Rows are rebuilt from bookings on
// every listing so edits and status changes are always reflected.
type SalesRow struct {
	TransactionNo int     `json:"transactionNo"` // descending, newest first
	BookingID     string  `json:"bookingId"`
	SaleDate      string  `json:"saleDate"` // "YYYY-MM-DD"
	CustomerName  string  `json:"customerName"`
	PetName       string  `json:"petName"`
	ServiceType   string  `json:"serviceType"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"totalAmount"`
	DownPayment   float64 `json:"downPayment"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"paymentStatus"`
}

// SalesSummary aggregates a sales listing.
type SalesSummary struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCollected  float64 `json:"totalCollected"`
	Outstanding     float64 `json:"outstanding"`
	CollectionRate  float64 `json:"collectionRate"` // percent, 0 when no revenue
	CheckedOutCount int     `json:"checkedOutCount"`
	PendingCount    int     `json:"pendingCount"` // approved, not yet checked out
	PaidCount       int     `json:"paidCount"`
	UnpaidCount     int     `json:"unpaidCount"`
}
