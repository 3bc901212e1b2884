package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furytails/models"
)

func TestSizeCategory(t *testing.T) {
	cases := []struct {
		weight float64
		want   Size
	}{
		{0.5, SizeSmall},
		{9.9, SizeSmall},
		{10, SizeMedium},
		{26, SizeMedium},
		{26.5, SizeLarge},
		{34, SizeLarge},
		{34.1, SizeXL},
		{38, SizeXL},
		{38.1, SizeXXL},
		{120, SizeXXL},
		{0, SizeNA},
		{-3, SizeNA},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SizeCategory(c.weight), "weight %v", c.weight)
	}
}

func TestSizeCategoryFromString(t *testing.T) {
	assert.Equal(t, SizeMedium, SizeCategoryFromString("12"))
	assert.Equal(t, SizeMedium, SizeCategoryFromString(" 12.5 "))
	assert.Equal(t, SizeNA, SizeCategoryFromString(""))
	assert.Equal(t, SizeNA, SizeCategoryFromString("heavy"))
}

func TestDailyRateCoversEveryCategory(t *testing.T) {
	rates := map[Size]float64{
		SizeSmall:  500,
		SizeMedium: 600,
		SizeLarge:  700,
		SizeXL:     800,
		SizeXXL:    900,
		SizeNA:     0,
	}
	for size, want := range rates {
		assert.Equal(t, want, DailyRate(size), "size %s", size)
	}
}

func TestDaysCharged(t *testing.T) {
	day := func(s string) time.Time {
		d, ok := ParseDate(s)
		require.True(t, ok)
		return d
	}

	assert.Equal(t, 3, DaysCharged(day("2024-01-01"), day("2024-01-04")))
	assert.Equal(t, 1, DaysCharged(day("2024-01-01"), day("2024-01-01")), "same day bills one day")
	assert.Equal(t, 3, DaysCharged(day("2024-01-04"), day("2024-01-01")), "reversed dates still bill")

	in := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysCharged(in, out), "partial day rounds up")
}

func boardingBooking(weight, in, out string) *models.Booking {
	return &models.Booking{
		ServiceType:    models.ServiceBoarding,
		Status:         models.StatusApproved,
		PetInformation: models.PetInformation{PetWeight: weight},
		BoardingDetails: &models.BoardingDetails{
			CheckInDate:  in,
			CheckOutDate: out,
		},
	}
}

func TestCalculateChargeBoarding(t *testing.T) {
	b := boardingBooking("12", "2024-01-01", "2024-01-04")
	c := CalculateCharge(b)

	assert.Equal(t, SizeMedium, c.Size)
	assert.Equal(t, 3, c.NumberOfDays)
	assert.Equal(t, 1800.0, c.TotalAmount)
	assert.Equal(t, 1800.0, c.Balance)
	assert.Equal(t, models.PaymentUnpaid, c.PaymentStatus)
}

func TestCalculateChargeDownPayment(t *testing.T) {
	b := boardingBooking("12", "2024-01-01", "2024-01-04")
	b.PaymentDetails.DownPaymentAmount = 500
	c := CalculateCharge(b)

	assert.Equal(t, 500.0, c.DownPayment)
	assert.Equal(t, 1300.0, c.Balance)
}

func TestCalculateChargeMissingDates(t *testing.T) {
	for _, b := range []*models.Booking{
		boardingBooking("12", "", "2024-01-04"),
		boardingBooking("12", "2024-01-01", ""),
		boardingBooking("12", "not-a-date", "2024-01-04"),
		{ServiceType: models.ServiceBoarding, PetInformation: models.PetInformation{PetWeight: "12"}},
	} {
		c := CalculateCharge(b)
		assert.Zero(t, c.TotalAmount)
		assert.Zero(t, c.NumberOfDays)
	}
}

func TestCalculateChargeGroomingIgnoresDates(t *testing.T) {
	b := &models.Booking{
		ServiceType:    models.ServiceGrooming,
		Status:         models.StatusPending,
		PetInformation: models.PetInformation{PetWeight: "30"},
		GroomingDetails: &models.GroomingDetails{
			GroomingCheckInDate: "2024-06-01",
		},
	}
	c1 := CalculateCharge(b)

	b.GroomingDetails.GroomingCheckInDate = "2024-12-25"
	c2 := CalculateCharge(b)

	assert.Equal(t, 700.0, c1.TotalAmount)
	assert.Equal(t, c1.TotalAmount, c2.TotalAmount)
	assert.Zero(t, c1.NumberOfDays)
}

func TestCalculateChargeUnknownWeight(t *testing.T) {
	b := boardingBooking("", "2024-01-01", "2024-01-04")
	c := CalculateCharge(b)

	assert.Equal(t, SizeNA, c.Size)
	assert.Zero(t, c.TotalAmount)
}

func TestCheckedOutBookingIsSettled(t *testing.T) {
	for _, status := range []string{models.StatusCheckedOut, models.StatusCompleted} {
		b := boardingBooking("12", "2024-01-01", "2024-01-04")
		b.Status = status
		b.PaymentDetails.DownPaymentAmount = 500

		c := CalculateCharge(b)
		assert.Equal(t, 1800.0, c.TotalAmount, status)
		assert.Zero(t, c.Balance, status)
		assert.Equal(t, models.PaymentPaid, c.PaymentStatus, status)
	}
}

func TestCalculateChargeAt(t *testing.T) {
	b := boardingBooking("12", "2024-01-01", "2024-01-10")

	// Leaves two days in: only the actual stay is billed.
	early := time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC)
	c := CalculateChargeAt(b, early)
	assert.Equal(t, 3, c.NumberOfDays)
	assert.Equal(t, 1800.0, c.TotalAmount)

	// Same-day departure still bills a full day.
	sameDay := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	c = CalculateChargeAt(b, sameDay)
	assert.Equal(t, 1, c.NumberOfDays)
	assert.Equal(t, 600.0, c.TotalAmount)
}
