package sales

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"furytails/models"
)

type stubBookingRepo struct {
	bookings []*models.Booking
}

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }
func (r *stubBookingRepo) GetAll() ([]models.Booking, error)         { return nil, nil }
func (r *stubBookingRepo) GetByDate(string) ([]models.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) Create(*models.Booking) error      { return nil }
func (r *stubBookingRepo) AppendAdminNote(_, _ string) error { return nil }
func (r *stubBookingRepo) CountByStatus(string) (int64, error) {
	return int64(len(r.bookings)), nil
}
func (r *stubBookingRepo) Watch(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return nil
}

func (r *stubBookingRepo) GetByStatuses(statuses []string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		for _, s := range statuses {
			if b.Status == s {
				out = append(out, *b)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubBookingRepo) UpdateFields(id string, fields bson.M) error {
	for _, b := range r.bookings {
		if b.ID != id {
			continue
		}
		if status, ok := fields["paymentDetails.paymentStatus"].(string); ok {
			b.PaymentDetails.PaymentStatus = status
		}
		return nil
	}
	return nil
}

func saleBooking(id, status, checkIn, checkOut string, down float64) *models.Booking {
	return &models.Booking{
		ID:          id,
		ServiceType: models.ServiceBoarding,
		Status:      status,
		Timestamp:   time.Now(),
		PetInformation: models.PetInformation{
			PetName:   "Mochi",
			PetWeight: "12", // medium, 600/day
		},
		OwnerInformation: models.OwnerInformation{FirstName: "Rio", LastName: "Santos"},
		BoardingDetails: &models.BoardingDetails{
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
		},
		PaymentDetails: models.PaymentDetails{DownPaymentAmount: models.Amount(down)},
	}
}

func TestListNumbersTransactionsNewestFirst(t *testing.T) {
	first := saleBooking("s1", models.StatusApproved, "2024-01-01", "2024-01-04", 0)
	first.Timestamp = time.Now().Add(-2 * time.Hour)
	second := saleBooking("s2", models.StatusApproved, "2024-02-01", "2024-02-03", 0)
	second.Timestamp = time.Now().Add(-time.Hour)
	third := saleBooking("s3", models.StatusApproved, "2024-03-01", "2024-03-02", 0)

	svc := &DefaultSalesService{Bookings: &stubBookingRepo{bookings: []*models.Booking{first, second, third}}}
	rows, err := svc.List(Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "s3", rows[0].BookingID)
	assert.Equal(t, 3, rows[0].TransactionNo)
	assert.Equal(t, 1, rows[2].TransactionNo)
	assert.Equal(t, "2024-03-01", rows[0].SaleDate)
}

func TestListReconcilesSettledPaymentStatus(t *testing.T) {
	b := saleBooking("s1", models.StatusCheckedOut, "2024-01-01", "2024-01-04", 500)
	b.PaymentDetails.PaymentStatus = models.PaymentUnpaid
	repo := &stubBookingRepo{bookings: []*models.Booking{b}}

	svc := &DefaultSalesService{Bookings: repo}
	rows, err := svc.List(Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, models.PaymentPaid, rows[0].PaymentStatus)
	assert.Zero(t, rows[0].Balance)
	assert.Equal(t, models.PaymentPaid, b.PaymentDetails.PaymentStatus, "persisted")
}

func TestSummary(t *testing.T) {
	// 3 days x 600 = 1800, 500 down: active with 1300 outstanding.
	active := saleBooking("s1", models.StatusApproved, "2024-01-01", "2024-01-04", 500)
	// Settled: full 1200 collected.
	settled := saleBooking("s2", models.StatusCheckedOut, "2024-01-01", "2024-01-03", 400)
	// Rejected rows count toward no money figure.
	rejected := saleBooking("s3", models.StatusRejected, "2024-01-01", "2024-01-05", 0)

	svc := &DefaultSalesService{Bookings: &stubBookingRepo{bookings: []*models.Booking{active, settled, rejected}}}
	sum, err := svc.Summary(Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3000.0, sum.TotalRevenue)
	assert.Equal(t, 1700.0, sum.TotalCollected) // 500 down + 1200 settled
	assert.Equal(t, 1300.0, sum.Outstanding)
	assert.InDelta(t, 56.67, sum.CollectionRate, 0.01)
	assert.Equal(t, 1, sum.CheckedOutCount)
	assert.Equal(t, 1, sum.PendingCount)
	assert.Equal(t, 1, sum.PaidCount)
	assert.Equal(t, 1, sum.UnpaidCount)
}

func TestFilterByStatusAndSettlement(t *testing.T) {
	active := saleBooking("s1", models.StatusApproved, "2024-01-01", "2024-01-04", 0)
	settled := saleBooking("s2", models.StatusCheckedOut, "2024-01-01", "2024-01-03", 0)

	svc := &DefaultSalesService{Bookings: &stubBookingRepo{bookings: []*models.Booking{active, settled}}}

	rows, err := svc.List(Filter{Status: models.StatusApproved})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].BookingID)

	rows, err = svc.List(Filter{CheckedOut: "yes"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s2", rows[0].BookingID)

	rows, err = svc.List(Filter{CheckedOut: "no"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].BookingID)
}

func TestFilterCustomWindow(t *testing.T) {
	in := saleBooking("s1", models.StatusApproved, "2024-03-05", "2024-03-07", 0)
	out := saleBooking("s2", models.StatusApproved, "2024-06-05", "2024-06-07", 0)

	svc := &DefaultSalesService{Bookings: &stubBookingRepo{bookings: []*models.Booking{in, out}}}
	rows, err := svc.List(Filter{Range: RangeCustom, Start: "2024-03-01", End: "2024-03-31"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].BookingID)
}

func TestWeeklyRevenue(t *testing.T) {
	monday, _ := weekWindow(time.Now())
	thisWeek := saleBooking("s1", models.StatusCheckedOut,
		monday.Format("2006-01-02"), monday.AddDate(0, 0, 2).Format("2006-01-02"), 0)
	lastMonth := saleBooking("s2", models.StatusCheckedOut,
		monday.AddDate(0, -1, 0).Format("2006-01-02"), monday.AddDate(0, -1, 2).Format("2006-01-02"), 0)
	unsettled := saleBooking("s3", models.StatusApproved,
		monday.Format("2006-01-02"), monday.AddDate(0, 0, 1).Format("2006-01-02"), 0)

	svc := &DefaultSalesService{Bookings: &stubBookingRepo{bookings: []*models.Booking{thisWeek, lastMonth, unsettled}}}
	total, err := svc.WeeklyRevenue()
	require.NoError(t, err)
	assert.Equal(t, 1200.0, total, "only this week's settled stays count")
}

func TestWeekWindowStartsMonday(t *testing.T) {
	// 2024-05-15 is a Wednesday.
	start, end := weekWindow(time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-05-13", start.Format("2006-01-02"))
	assert.Equal(t, "2024-05-19", end.Format("2006-01-02"))

	// A Monday is its own week start; a Sunday closes the prior Monday's week.
	start, _ = weekWindow(time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-05-13", start.Format("2006-01-02"))
	start, end = weekWindow(time.Date(2024, 5, 19, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-05-13", start.Format("2006-01-02"))
	assert.Equal(t, "2024-05-19", end.Format("2006-01-02"))
}
