package sales

import (
	bookingRepo "furytails/database/repository/booking"
	"furytails/models"
)

// SalesService builds the sales views. Rows are recomputed from the
// bookings collection on every listing so edits and status changes are
// always reflected.
type SalesService interface {
	// List returns filtered sales rows, newest first, with descending
	// transaction numbers.
	List(filter Filter) ([]models.SalesRow, error)
	// Summary aggregates the rows a filter selects.
	Summary(filter Filter) (*models.SalesSummary, error)
	// WeeklyRevenue totals settled bookings for the Monday-start week
	// containing now.
	WeeklyRevenue() (float64, error)
}

// DefaultSalesService implements SalesService.
type DefaultSalesService struct {
	Bookings bookingRepo.BookingRepository
}
