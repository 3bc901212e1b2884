package booking

import (
	"context"
	"time"

	bookingRepo "furytails/database/repository/booking"
	salesRepo "furytails/database/repository/sales"
	"furytails/models"
	"furytails/services/notification"
	"furytails/services/pricing"
)

// BookingService manages the booking lifecycle and its list views.
type BookingService interface {
	// Get retrieves one booking.
	Get(id string) (*models.Booking, error)
	// ListPending lists bookings for the review queue, optionally
	// narrowed by status and date filter.
	ListPending(status string, filter DateFilter) ([]models.Booking, error)
	// ListApproved lists active bookings, today's check-ins first.
	ListApproved(status string) ([]models.Booking, error)
	// ListReports lists decided bookings as report rows.
	ListReports(status string) ([]ReportRow, error)
	// Charge previews the canonical charge for a booking.
	Charge(id string) (*pricing.Charge, error)

	// Accept approves a pending booking, records the admin note and
	// writes its sales report.
	Accept(ctx context.Context, id, note string) (*models.Booking, error)
	// Reject declines a pending booking for a coded reason.
	Reject(ctx context.Context, id, reasonCode, detail string) (*models.Booking, error)
	// CheckIn marks an approved booking as checked in.
	CheckIn(ctx context.Context, id, note string) (*models.Booking, error)
	// Checkout settles a stay at the given instant and returns the
	// final charge for the days actually stayed.
	Checkout(ctx context.Context, id string, at time.Time) (*models.Booking, *pricing.Charge, error)
	// ExtendDaily moves a stay to new check-in/check-out dates.
	ExtendDaily(ctx context.Context, id, checkInDate, checkOutDate string) (*models.Booking, error)
	// ExtendHourly extends a stay's checkout time by 1-24 hours.
	ExtendHourly(ctx context.Context, id string, hours int, from time.Time) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	SalesRepo       salesRepo.SalesRepository
	NotificationSvc notification.NotificationService
}
