package booking

import (
	"fmt"
	"sort"
	"time"

	"furytails/models"
	"furytails/services/pricing"
)

// approvedStatuses are the statuses shown on the active bookings board.
var approvedStatuses = []string{
	models.StatusApproved,
	models.StatusCheckedIn,
	models.StatusExtended,
	models.StatusCheckedOut,
}

// reportStatuses are the statuses shown on the booking reports page.
var reportStatuses = []string{
	models.StatusApproved,
	models.StatusRejected,
}

// ReportRow is one line of the booking reports view.
type ReportRow struct {
	ReportID     string `json:"reportId"` // "RPT001", newest first
	BookingID    string `json:"bookingId"`
	Date         string `json:"date"`
	CustomerName string `json:"customerName"`
	PetName      string `json:"petName"`
	ServiceType  string `json:"serviceType"`
	Status       string `json:"status"`
	Duration     string `json:"duration"`
}

// Get retrieves one booking.
func (s *DefaultBookingService) Get(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListPending lists bookings for the review queue, newest submissions
// first. An empty or "all" status keeps every booking; "Accepted" is an
// alias the console uses for approved ones.
func (s *DefaultBookingService) ListPending(status string, filter DateFilter) ([]models.Booking, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	if status == "Accepted" {
		status = models.StatusApproved
	}

	now := time.Now()
	var out []models.Booking
	for _, b := range all {
		if status != "" && status != FilterAll && b.Status != status {
			continue
		}
		if !filter.Matches(b.EffectiveDate(), now) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// ListApproved lists active bookings. Today's check-ins sort first so
// the front desk sees arrivals at the top; the rest order by date,
// most recent first.
func (s *DefaultBookingService) ListApproved(status string) ([]models.Booking, error) {
	statuses := approvedStatuses
	if status != "" && status != FilterAll {
		statuses = []string{status}
	}
	bookings, err := s.Repo.GetByStatuses(statuses)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	sort.SliceStable(bookings, func(i, j int) bool {
		di, dj := bookings[i].EffectiveDate(), bookings[j].EffectiveDate()
		if (di == today) != (dj == today) {
			return di == today
		}
		return di > dj
	})
	return bookings, nil
}

// ListReports lists decided bookings as numbered report rows.
func (s *DefaultBookingService) ListReports(status string) ([]ReportRow, error) {
	statuses := reportStatuses
	if status != "" && status != FilterAll {
		statuses = []string{status}
	}
	bookings, err := s.Repo.GetByStatuses(statuses)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(bookings))
	for i, b := range bookings {
		rows = append(rows, ReportRow{
			ReportID:     fmt.Sprintf("RPT%03d", i+1),
			BookingID:    b.ID,
			Date:         b.EffectiveDate(),
			CustomerName: b.OwnerName(),
			PetName:      b.PetInformation.PetName,
			ServiceType:  b.ServiceType,
			Status:       b.Status,
			Duration:     durationLabel(&b),
		})
	}
	return rows, nil
}

// Charge previews the canonical charge for a booking.
func (s *DefaultBookingService) Charge(id string) (*pricing.Charge, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	c := pricing.CalculateCharge(b)
	return &c, nil
}

// durationLabel renders a booking's stay length. Grooming visits are
// always a single day.
func durationLabel(b *models.Booking) string {
	if !b.IsBoarding() {
		return "1 day"
	}
	c := pricing.CalculateCharge(b)
	if c.NumberOfDays == 0 {
		return "-"
	}
	if c.NumberOfDays == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", c.NumberOfDays)
}
