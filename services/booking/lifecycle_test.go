package booking

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	bookingRepo "furytails/database/repository/booking"
	"furytails/models"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bs ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bs {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeBookingRepo) GetByStatuses(statuses []string) ([]models.Booking, error) {
	all, _ := r.GetAll()
	var out []models.Booking
	for _, b := range all {
		for _, s := range statuses {
			if b.Status == s {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	all, _ := r.GetAll()
	var out []models.Booking
	for _, b := range all {
		if b.Date == date || b.EffectiveDate() == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) UpdateFields(id string, fields bson.M) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
	}
	for k, v := range fields {
		switch k {
		case "status":
			b.Status = v.(string)
		case "paymentDetails.paymentStatus":
			b.PaymentDetails.PaymentStatus = v.(string)
		case "extended":
			b.Extended = v.(bool)
		case "extensionType":
			b.ExtensionType = v.(string)
		case "extensionCompleted":
			b.ExtensionCompleted = v.(bool)
		case "boardingDetails.checkInDate":
			b.BoardingDetails.CheckInDate = v.(string)
		case "boardingDetails.checkOutDate":
			b.BoardingDetails.CheckOutDate = v.(string)
		case "boardingDetails.checkOutTime":
			b.BoardingDetails.CheckOutTime = v.(string)
		case "boardingDetails.hourlyExtension":
			b.BoardingDetails.HourlyExtension = v.(bool)
		case "boardingDetails.extensionHours":
			b.BoardingDetails.ExtensionHours = v.(int)
		}
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) AppendAdminNote(id string, note string) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
	}
	b.AdminNotes = append(b.AdminNotes, note)
	return nil
}

func (r *fakeBookingRepo) CountByStatus(status string) (int64, error) {
	if status == "" {
		return int64(len(r.bookings)), nil
	}
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Watch(ctx context.Context, onChange func()) error {
	<-ctx.Done()
	return nil
}

type fakeSalesRepo struct {
	reports []*models.SalesReport
}

func (r *fakeSalesRepo) Create(report *models.SalesReport) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeSalesRepo) GetByBookingID(bookingID string) (*models.SalesReport, error) {
	for _, rep := range r.reports {
		if rep.BookingID == bookingID {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *fakeSalesRepo) GetAll() ([]models.SalesReport, error) {
	out := make([]models.SalesReport, 0, len(r.reports))
	for _, rep := range r.reports {
		out = append(out, *rep)
	}
	return out, nil
}

func pendingBoarding(id string) *models.Booking {
	return &models.Booking{
		ID:          id,
		UserID:      "owner-1",
		ServiceType: models.ServiceBoarding,
		Status:      models.StatusPending,
		Timestamp:   time.Now(),
		PetInformation: models.PetInformation{
			PetName:   "Biscuit",
			PetWeight: "12",
		},
		OwnerInformation: models.OwnerInformation{
			FirstName: "Dana", LastName: "Cruz",
		},
		BoardingDetails: &models.BoardingDetails{
			CheckInDate:  "2024-01-01",
			CheckOutDate: "2024-01-04",
		},
		VaccinationRecord: &models.VaccinationRecord{ImageURL: "https://img.example/vax.jpg"},
	}
}

func newService(repo *fakeBookingRepo) (*DefaultBookingService, *fakeSalesRepo) {
	sales := &fakeSalesRepo{}
	return &DefaultBookingService{Repo: repo, SalesRepo: sales}, sales
}

func TestAcceptApprovesAndWritesSalesReport(t *testing.T) {
	repo := newFakeBookingRepo(pendingBoarding("b1"))
	svc, sales := newService(repo)

	b, err := svc.Accept(context.Background(), "b1", "verified vaccination card")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, b.Status)
	assert.Contains(t, []string(b.AdminNotes), "verified vaccination card")

	require.Len(t, sales.reports, 1)
	report := sales.reports[0]
	assert.Equal(t, "b1", report.BookingID)
	assert.Equal(t, "Dana Cruz", report.CustomerName)
	assert.Equal(t, 3, report.NumberOfDays)
	assert.Equal(t, 1800.0, report.TotalAmount)
	assert.Equal(t, 1800.0, report.Balance)
}

func TestAcceptRefusesBoardingWithoutVaccination(t *testing.T) {
	b := pendingBoarding("b1")
	b.VaccinationRecord = nil
	repo := newFakeBookingRepo(b)
	svc, sales := newService(repo)

	_, err := svc.Accept(context.Background(), "b1", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	stored, _ := repo.GetByID("b1")
	assert.Equal(t, models.StatusPending, stored.Status, "no write on refusal")
	assert.Empty(t, sales.reports)
}

func TestAcceptAllowsGroomingWithoutVaccination(t *testing.T) {
	b := pendingBoarding("b1")
	b.ServiceType = models.ServiceGrooming
	b.BoardingDetails = nil
	b.GroomingDetails = &models.GroomingDetails{GroomingCheckInDate: "2024-02-10"}
	b.VaccinationRecord = nil
	repo := newFakeBookingRepo(b)
	svc, sales := newService(repo)

	got, err := svc.Accept(context.Background(), "b1", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	require.Len(t, sales.reports, 1)
	assert.Equal(t, 600.0, sales.reports[0].TotalAmount, "flat grooming rate for a medium pet")
}

func TestAcceptRefusesNonPending(t *testing.T) {
	b := pendingBoarding("b1")
	b.Status = models.StatusApproved
	repo := newFakeBookingRepo(b)
	svc, _ := newService(repo)

	_, err := svc.Accept(context.Background(), "b1", "")
	var sErr *StateError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, models.StatusApproved, sErr.Current)
}

func TestRejectRequiresKnownReason(t *testing.T) {
	repo := newFakeBookingRepo(pendingBoarding("b1"))
	svc, _ := newService(repo)

	_, err := svc.Reject(context.Background(), "b1", "not-a-reason", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	stored, _ := repo.GetByID("b1")
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestRejectRecordsReasonNote(t *testing.T) {
	repo := newFakeBookingRepo(pendingBoarding("b1"))
	svc, _ := newService(repo)

	b, err := svc.Reject(context.Background(), "b1", models.ReasonVaccinationMissing, "expired card")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, b.Status)
	assert.Contains(t, []string(b.AdminNotes), "Missing or Invalid Vaccination Record - expired card")
}

func TestCheckInRequiresApproved(t *testing.T) {
	repo := newFakeBookingRepo(pendingBoarding("b1"))
	svc, _ := newService(repo)

	_, err := svc.CheckIn(context.Background(), "b1", "")
	var sErr *StateError
	require.ErrorAs(t, err, &sErr)

	repo.bookings["b1"].Status = models.StatusApproved
	b, err := svc.CheckIn(context.Background(), "b1", "kennel 4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, b.Status)
	assert.Contains(t, []string(b.AdminNotes), "kennel 4")
}

func TestCheckoutSettlesActualStay(t *testing.T) {
	b := pendingBoarding("b1")
	b.Status = models.StatusCheckedIn
	b.BoardingDetails.CheckOutDate = "2024-01-10"
	b.PaymentDetails.DownPaymentAmount = 500
	repo := newFakeBookingRepo(b)
	svc, _ := newService(repo)

	// Leaving early on Jan 3: three days stayed, not the nine booked.
	at := time.Date(2024, 1, 3, 11, 30, 0, 0, time.UTC)
	got, charge, err := svc.Checkout(context.Background(), "b1", at)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCheckedOut, got.Status)
	assert.Equal(t, models.PaymentPaid, got.PaymentDetails.PaymentStatus)
	assert.Equal(t, 3, charge.NumberOfDays)
	assert.Equal(t, 1800.0, charge.TotalAmount)
	assert.Zero(t, charge.Balance, "settled stays carry no balance")
}

func TestCheckoutFromExtendedCompletesExtension(t *testing.T) {
	b := pendingBoarding("b1")
	b.Status = models.StatusExtended
	repo := newFakeBookingRepo(b)
	svc, _ := newService(repo)

	got, _, err := svc.Checkout(context.Background(), "b1", time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, got.ExtensionCompleted)
}

func TestExtendDailyValidatesDates(t *testing.T) {
	b := pendingBoarding("b1")
	b.Status = models.StatusCheckedIn
	repo := newFakeBookingRepo(b)
	svc, _ := newService(repo)

	_, err := svc.ExtendDaily(context.Background(), "b1", "2024-01-05", "2024-01-03")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	got, err := svc.ExtendDaily(context.Background(), "b1", "2024-01-01", "2024-01-06")
	require.NoError(t, err)
	assert.Equal(t, models.StatusExtended, got.Status)
	assert.True(t, got.Extended)
	assert.Equal(t, "daily", got.ExtensionType)
	assert.Equal(t, "2024-01-06", got.BoardingDetails.CheckOutDate)
}

func TestExtendRefusesMissingBoardingDetails(t *testing.T) {
	b := pendingBoarding("b1")
	b.Status = models.StatusCheckedIn
	b.BoardingDetails = nil
	repo := newFakeBookingRepo(b)
	svc, _ := newService(repo)

	var vErr *ValidationError

	_, err := svc.ExtendDaily(context.Background(), "b1", "2024-01-01", "2024-01-06")
	require.ErrorAs(t, err, &vErr)

	_, err = svc.ExtendHourly(context.Background(), "b1", 6, time.Now())
	require.ErrorAs(t, err, &vErr)

	// The refusal happens before any write: the booking is unchanged.
	got, err := repo.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, got.Status)
	assert.False(t, got.Extended)
}

func TestExtendHourly(t *testing.T) {
	b := pendingBoarding("b1")
	b.Status = models.StatusCheckedIn
	b.BoardingDetails.CheckOutTime = "14:00"
	repo := newFakeBookingRepo(b)
	svc, _ := newService(repo)

	for _, hours := range []int{0, 25} {
		_, err := svc.ExtendHourly(context.Background(), "b1", hours, time.Now())
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "hours %d", hours)
	}

	got, err := svc.ExtendHourly(context.Background(), "b1", 12, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.StatusExtended, got.Status)
	assert.True(t, got.BoardingDetails.HourlyExtension)
	assert.Equal(t, 12, got.BoardingDetails.ExtensionHours)
	// 2024-01-04 14:00 + 12h rolls into the next day.
	assert.Equal(t, "2024-01-05", got.BoardingDetails.CheckOutDate)
	assert.Equal(t, "02:00", got.BoardingDetails.CheckOutTime)
}
