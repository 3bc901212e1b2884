package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"furytails/models"
)

// Size is a pet weight category. Every booking charge derives from it.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
	SizeXL     Size = "XL"
	SizeXXL    Size = "XXL"
	SizeNA     Size = "N/A" // weight missing or unparseable
)

// Daily rates per size category, in pesos.
var dailyRates = map[Size]float64{
	SizeSmall:  500,
	SizeMedium: 600,
	SizeLarge:  700,
	SizeXL:     800,
	SizeXXL:    900,
	SizeNA:     0,
}

// SizeCategory maps a weight in kilograms to its category.
// Non-positive or NaN weights fall into SizeNA.
func SizeCategory(weightKg float64) Size {
	switch {
	case math.IsNaN(weightKg) || weightKg <= 0:
		return SizeNA
	case weightKg < 10:
		return SizeSmall
	case weightKg <= 26:
		return SizeMedium
	case weightKg <= 34:
		return SizeLarge
	case weightKg <= 38:
		return SizeXL
	default:
		return SizeXXL
	}
}

// SizeCategoryFromString parses free-text weight from the intake form.
func SizeCategoryFromString(weight string) Size {
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return SizeNA
	}
	return SizeCategory(w)
}

// DailyRate returns the per-day boarding rate (and flat grooming rate)
// for a size category.
func DailyRate(s Size) float64 {
	return dailyRates[s]
}

// DaysCharged counts billable days between two instants: the absolute
// difference rounded up to whole 24-hour periods, never less than one.
func DaysCharged(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// ParseDate parses a "YYYY-MM-DD" document date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Charge is the computed money state of a booking.
type Charge struct {
	Size          Size    `json:"sizeCategory"`
	NumberOfDays  int     `json:"numberOfDays"` // zero for grooming
	TotalAmount   float64 `json:"totalAmount"`
	DownPayment   float64 `json:"downPayment"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"paymentStatus"`
}

// CalculateCharge computes the charge for a booking from its stored
// fields. Malformed input never fails: missing weights price at zero and
// boarding stays without two parseable dates charge nothing.
//
// A checked-out or completed booking is settled: its balance is zero and
// its payment status Paid regardless of the recorded down payment.
func CalculateCharge(b *models.Booking) Charge {
	return calculate(b, time.Time{})
}

// CalculateChargeAt computes the charge with the stay ending at an
// effective checkout instant instead of the booked checkout date. Used
// when settling at the counter, where the actual days stayed govern.
func CalculateChargeAt(b *models.Booking, effectiveCheckOut time.Time) Charge {
	return calculate(b, effectiveCheckOut)
}

func calculate(b *models.Booking, effectiveCheckOut time.Time) Charge {
	size := SizeCategoryFromString(b.PetInformation.PetWeight)
	rate := DailyRate(size)

	c := Charge{Size: size}
	switch {
	case b.ServiceType == models.ServiceGrooming:
		c.TotalAmount = rate
	case b.BoardingDetails != nil:
		in, okIn := ParseDate(b.BoardingDetails.CheckInDate)
		if !okIn {
			break
		}
		out := effectiveCheckOut
		if out.IsZero() {
			parsed, okOut := ParseDate(b.BoardingDetails.CheckOutDate)
			if !okOut {
				break
			}
			out = parsed
		}
		c.NumberOfDays = DaysCharged(in, out)
		c.TotalAmount = rate * float64(c.NumberOfDays)
	}

	c.DownPayment = float64(b.PaymentDetails.DownPaymentAmount)
	c.Balance = c.TotalAmount - c.DownPayment
	c.PaymentStatus = b.PaymentDetails.PaymentStatus
	if c.PaymentStatus == "" {
		c.PaymentStatus = models.PaymentUnpaid
	}
	if b.IsCheckedOut() {
		c.Balance = 0
		c.PaymentStatus = models.PaymentPaid
	}
	return c
}
