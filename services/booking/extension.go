package booking

import (
	"context"
	"time"

	"furytails/models"
	"furytails/services/pricing"

	"go.mongodb.org/mongo-driver/bson"
)

// ExtendDaily moves a checked-in stay to new check-in/check-out dates.
func (s *DefaultBookingService) ExtendDaily(ctx context.Context, id, checkInDate, checkOutDate string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !b.IsBoarding() {
		return nil, NewValidationError("only boarding bookings can be extended")
	}
	if b.BoardingDetails == nil {
		return nil, NewValidationError("booking %s has no boarding details on record", id)
	}
	if !b.CanCheckout() {
		return nil, &StateError{Action: "extend", Current: b.Status}
	}

	in, okIn := pricing.ParseDate(checkInDate)
	out, okOut := pricing.ParseDate(checkOutDate)
	if !okIn || !okOut {
		return nil, NewValidationError("extension dates must be YYYY-MM-DD")
	}
	if out.Before(in) {
		return nil, NewValidationError("extension check-out cannot precede check-in")
	}

	fields := bson.M{
		"boardingDetails.checkInDate":  checkInDate,
		"boardingDetails.checkOutDate": checkOutDate,
		"status":                       models.StatusExtended,
		"extended":                     true,
		"extensionType":                "daily",
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	b.BoardingDetails.CheckInDate = checkInDate
	b.BoardingDetails.CheckOutDate = checkOutDate
	b.Status = models.StatusExtended
	b.Extended = true
	b.ExtensionType = "daily"
	return b, nil
}

// ExtendHourly extends a stay's checkout by 1-24 hours past its current
// checkout time. When the stored checkout has no time of day, the
// extension counts from the given instant.
func (s *DefaultBookingService) ExtendHourly(ctx context.Context, id string, hours int, from time.Time) (*models.Booking, error) {
	if hours < 1 || hours > 24 {
		return nil, NewValidationError("hourly extensions must be between 1 and 24 hours")
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !b.IsBoarding() {
		return nil, NewValidationError("only boarding bookings can be extended")
	}
	if b.BoardingDetails == nil {
		return nil, NewValidationError("booking %s has no boarding details on record", id)
	}
	if !b.CanCheckout() {
		return nil, &StateError{Action: "extend", Current: b.Status}
	}

	base := from
	if d, ok := pricing.ParseDate(b.BoardingDetails.CheckOutDate); ok {
		base = d
		if t, err := time.Parse("15:04", b.BoardingDetails.CheckOutTime); err == nil {
			base = base.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}
	newCheckout := base.Add(time.Duration(hours) * time.Hour)

	fields := bson.M{
		"boardingDetails.checkOutDate":    newCheckout.Format("2006-01-02"),
		"boardingDetails.checkOutTime":    newCheckout.Format("15:04"),
		"boardingDetails.hourlyExtension": true,
		"boardingDetails.extensionHours":  hours,
		"status":                          models.StatusExtended,
		"extended":                        true,
		"extensionType":                   "hourly",
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	b.BoardingDetails.CheckOutDate = newCheckout.Format("2006-01-02")
	b.BoardingDetails.CheckOutTime = newCheckout.Format("15:04")
	b.BoardingDetails.HourlyExtension = true
	b.BoardingDetails.ExtensionHours = hours
	b.Status = models.StatusExtended
	b.Extended = true
	b.ExtensionType = "hourly"
	return b, nil
}
