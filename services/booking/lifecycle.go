package booking

import (
	"context"
	"time"

	"furytails/models"
	"furytails/services/pricing"
	"furytails/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Accept approves a pending booking. Boarding bookings must carry a
// vaccination record image before they can be approved. On success a
// sales report is written and the owner is notified; neither side
// effect can fail the acceptance itself.
func (s *DefaultBookingService) Accept(ctx context.Context, id, note string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !b.CanAccept() {
		return nil, &StateError{Action: "accept", Current: b.Status}
	}
	if b.IsBoarding() && !b.HasVaccinationRecord() {
		return nil, NewValidationError("cannot approve boarding booking %s without a vaccination record", id)
	}

	if err := s.Repo.UpdateFields(id, bson.M{"status": models.StatusApproved}); err != nil {
		return nil, err
	}
	if note == "" {
		note = "Booking approved"
	}
	if err := s.Repo.AppendAdminNote(id, note); err != nil {
		utils.GetLogger().Warn("failed to record acceptance note",
			zap.String("bookingId", id), zap.Error(err))
	}
	b.Status = models.StatusApproved
	b.AdminNotes = append(b.AdminNotes, note)

	if err := s.createSalesReport(b); err != nil {
		utils.GetLogger().Error("failed to create sales report for accepted booking",
			zap.String("bookingId", id), zap.Error(err))
	}
	s.notifyOwner(ctx, b, "Booking Approved",
		"Your "+b.ServiceType+" booking for "+b.PetInformation.PetName+" has been approved.")

	return b, nil
}

// Reject declines a pending booking for a coded reason. Unknown reason
// codes fail before any write.
func (s *DefaultBookingService) Reject(ctx context.Context, id, reasonCode, detail string) (*models.Booking, error) {
	reasonText, ok := models.RejectionReasonText(reasonCode)
	if !ok {
		return nil, NewValidationError("unknown rejection reason %q", reasonCode)
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !b.CanAccept() {
		return nil, &StateError{Action: "reject", Current: b.Status}
	}

	if err := s.Repo.UpdateFields(id, bson.M{"status": models.StatusRejected}); err != nil {
		return nil, err
	}
	note := models.RejectionNote(reasonText, detail)
	if err := s.Repo.AppendAdminNote(id, note); err != nil {
		utils.GetLogger().Warn("failed to record rejection note",
			zap.String("bookingId", id), zap.Error(err))
	}
	b.Status = models.StatusRejected
	b.AdminNotes = append(b.AdminNotes, note)

	s.notifyOwner(ctx, b, "Booking Update",
		"Your "+b.ServiceType+" booking for "+b.PetInformation.PetName+" was declined: "+reasonText+".")

	return b, nil
}

// CheckIn marks an approved booking as checked in.
func (s *DefaultBookingService) CheckIn(ctx context.Context, id, note string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !b.CanCheckIn() {
		return nil, &StateError{Action: "check in", Current: b.Status}
	}

	if err := s.Repo.UpdateFields(id, bson.M{"status": models.StatusCheckedIn}); err != nil {
		return nil, err
	}
	if note != "" {
		if err := s.Repo.AppendAdminNote(id, note); err != nil {
			utils.GetLogger().Warn("failed to record check-in note",
				zap.String("bookingId", id), zap.Error(err))
		}
		b.AdminNotes = append(b.AdminNotes, note)
	}
	b.Status = models.StatusCheckedIn
	return b, nil
}

// Checkout settles a stay. The final charge bills the days actually
// stayed: check-in at midnight through the end of the checkout day.
func (s *DefaultBookingService) Checkout(ctx context.Context, id string, at time.Time) (*models.Booking, *pricing.Charge, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if !b.CanCheckout() {
		return nil, nil, &StateError{Action: "check out", Current: b.Status}
	}

	wasExtended := b.Status == models.StatusExtended
	endOfDay := time.Date(at.Year(), at.Month(), at.Day(), 23, 59, 59, 0, time.UTC)
	b.Status = models.StatusCheckedOut
	charge := pricing.CalculateChargeAt(b, endOfDay)

	fields := bson.M{
		"status":                       models.StatusCheckedOut,
		"paymentDetails.paymentStatus": models.PaymentPaid,
	}
	if wasExtended {
		fields["extensionCompleted"] = true
		b.ExtensionCompleted = true
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, nil, err
	}
	b.PaymentDetails.PaymentStatus = models.PaymentPaid

	s.notifyOwner(ctx, b, "Checked Out",
		b.PetInformation.PetName+" has been checked out. Thank you for choosing FuryTails!")

	return b, &charge, nil
}

// createSalesReport writes the salesReports record for an accepted
// booking using the shared charge calculator.
func (s *DefaultBookingService) createSalesReport(b *models.Booking) error {
	c := pricing.CalculateCharge(b)

	report := &models.SalesReport{
		ID:            uuid.NewString(),
		BookingID:     b.ID,
		UserID:        b.UserID,
		CustomerName:  b.OwnerName(),
		CustomerEmail: b.OwnerInformation.Email,
		PetName:       b.PetInformation.PetName,
		ServiceType:   b.ServiceType,
		SizeCategory:  string(c.Size),
		NumberOfDays:  c.NumberOfDays,
		TotalAmount:   c.TotalAmount,
		DownPayment:   c.DownPayment,
		Balance:       c.Balance,
		PaymentStatus: c.PaymentStatus,
		CreatedAt:     time.Now(),
	}
	if b.BoardingDetails != nil {
		report.RoomType = b.BoardingDetails.SelectedRoomType
		report.CheckInDate = b.BoardingDetails.CheckInDate
		report.CheckOutDate = b.BoardingDetails.CheckOutDate
	} else if b.GroomingDetails != nil {
		report.CheckInDate = b.GroomingDetails.GroomingCheckInDate
	}
	return s.SalesRepo.Create(report)
}

// notifyOwner pushes a status notice to the booking owner, best effort.
func (s *DefaultBookingService) notifyOwner(ctx context.Context, b *models.Booking, title, body string) {
	if s.NotificationSvc == nil || b.UserID == "" {
		return
	}
	data := map[string]string{"bookingId": b.ID, "status": b.Status}
	if err := s.NotificationSvc.SendUserPush(ctx, b.UserID, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify booking owner",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
