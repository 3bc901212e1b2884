package sales

import (
	"math"
	"time"

	"furytails/models"
	"furytails/services/pricing"
	"furytails/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// salesStatuses are the booking statuses that appear in sales views.
var salesStatuses = []string{
	models.StatusApproved,
	models.StatusRejected,
	models.StatusCheckedOut,
	models.StatusCompleted,
}

// List returns filtered sales rows, newest first. Transaction numbers
// count down so the newest sale carries the highest number. Settled
// bookings whose stored payment status lags behind are reconciled to
// Paid as a side effect.
func (s *DefaultSalesService) List(filter Filter) ([]models.SalesRow, error) {
	bookings, err := s.Bookings.GetByStatuses(salesStatuses)
	if err != nil {
		return nil, err
	}
	s.reconcilePaymentStatus(bookings)

	now := time.Now()
	var rows []models.SalesRow
	for i := range bookings {
		b := &bookings[i]
		if !filter.matches(b, now) {
			continue
		}
		c := pricing.CalculateCharge(b)
		rows = append(rows, models.SalesRow{
			BookingID:     b.ID,
			SaleDate:      b.EffectiveDate(),
			CustomerName:  b.OwnerName(),
			PetName:       b.PetInformation.PetName,
			ServiceType:   b.ServiceType,
			Status:        b.Status,
			TotalAmount:   c.TotalAmount,
			DownPayment:   c.DownPayment,
			Balance:       c.Balance,
			PaymentStatus: c.PaymentStatus,
		})
	}
	for i := range rows {
		rows[i].TransactionNo = len(rows) - i
	}
	return rows, nil
}

// Summary aggregates the rows a filter selects. Rejected bookings count
// toward no money figure.
func (s *DefaultSalesService) Summary(filter Filter) (*models.SalesSummary, error) {
	rows, err := s.List(filter)
	if err != nil {
		return nil, err
	}

	var sum models.SalesSummary
	for _, row := range rows {
		switch row.Status {
		case models.StatusRejected:
			continue
		case models.StatusCheckedOut, models.StatusCompleted:
			sum.CheckedOutCount++
		case models.StatusApproved:
			sum.PendingCount++
		}
		sum.TotalRevenue += row.TotalAmount
		sum.TotalCollected += row.TotalAmount - row.Balance
		sum.Outstanding += row.Balance
		if row.PaymentStatus == models.PaymentPaid {
			sum.PaidCount++
		} else {
			sum.UnpaidCount++
		}
	}
	if sum.TotalRevenue > 0 {
		sum.CollectionRate = math.Round(sum.TotalCollected/sum.TotalRevenue*10000) / 100
	}
	return &sum, nil
}

// WeeklyRevenue totals settled bookings for the current Monday-start week.
func (s *DefaultSalesService) WeeklyRevenue() (float64, error) {
	bookings, err := s.Bookings.GetByStatuses([]string{models.StatusCheckedOut, models.StatusCompleted})
	if err != nil {
		return 0, err
	}

	start, end := weekWindow(time.Now())
	var total float64
	for i := range bookings {
		b := &bookings[i]
		d, ok := pricing.ParseDate(b.EffectiveDate())
		if !ok || d.Before(start) || d.After(end) {
			continue
		}
		total += pricing.CalculateCharge(b).TotalAmount
	}
	return total, nil
}

// reconcilePaymentStatus persists Paid on settled bookings whose stored
// status lags, best effort.
func (s *DefaultSalesService) reconcilePaymentStatus(bookings []models.Booking) {
	for i := range bookings {
		b := &bookings[i]
		if !b.IsCheckedOut() || b.PaymentDetails.PaymentStatus == models.PaymentPaid {
			continue
		}
		err := s.Bookings.UpdateFields(b.ID, bson.M{"paymentDetails.paymentStatus": models.PaymentPaid})
		if err != nil {
			utils.GetLogger().Warn("failed to reconcile payment status",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		b.PaymentDetails.PaymentStatus = models.PaymentPaid
	}
}

// weekWindow returns the Monday-start week containing t, as inclusive
// civil dates.
func weekWindow(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}
