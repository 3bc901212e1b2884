package handlers

import (
	"errors"
	"net/http"
	"time"

	bookingRepo "furytails/database/repository/booking"
	bookingSvc "furytails/services/booking"
	"furytails/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking queue and its lifecycle actions.
type BookingHandler struct {
	Svc bookingSvc.BookingService
}

// respondBookingError maps service errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var vErr *bookingSvc.ValidationError
	var sErr *bookingSvc.StateError
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", vErr.Message)
	case errors.As(err, &sErr):
		utils.JSONError(c, http.StatusConflict, "Booking is not in the right state", sErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}

// ListPendingHandler handles GET /bookings/pending.
func (h *BookingHandler) ListPendingHandler(c *gin.Context) {
	filter := bookingSvc.DateFilter{
		Preset: c.DefaultQuery("range", bookingSvc.FilterAll),
		Start:  c.Query("start"),
		End:    c.Query("end"),
	}
	rows, err := h.Svc.ListPending(c.Query("status"), filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows, "count": len(rows)})
}

// ListApprovedHandler handles GET /bookings/approved.
func (h *BookingHandler) ListApprovedHandler(c *gin.Context) {
	rows, err := h.Svc.ListApproved(c.Query("status"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows, "count": len(rows)})
}

// ListReportsHandler handles GET /bookings/reports.
func (h *BookingHandler) ListReportsHandler(c *gin.Context) {
	rows, err := h.Svc.ListReports(c.Query("status"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": rows, "count": len(rows)})
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetChargeHandler handles GET /bookings/:id/charge.
func (h *BookingHandler) GetChargeHandler(c *gin.Context) {
	charge, err := h.Svc.Charge(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, charge)
}

// AcceptBookingHandler handles POST /bookings/:id/accept.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&req)

	b, err := h.Svc.Accept(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	logger.Info("Booking approved", zap.String("id", b.ID))
	c.JSON(http.StatusOK, b)
}

// RejectBookingHandler handles POST /bookings/:id/reject.
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Reason string `json:"reason" binding:"required"`
		Detail string `json:"detail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Svc.Reject(c.Request.Context(), c.Param("id"), req.Reason, req.Detail)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	logger.Info("Booking rejected", zap.String("id", b.ID), zap.String("reason", req.Reason))
	c.JSON(http.StatusOK, b)
}

// CheckInBookingHandler handles POST /bookings/:id/checkin.
func (h *BookingHandler) CheckInBookingHandler(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&req)

	b, err := h.Svc.CheckIn(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckoutBookingHandler handles POST /bookings/:id/checkout. The bill
// covers the days actually stayed, not the days booked.
func (h *BookingHandler) CheckoutBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	b, charge, err := h.Svc.Checkout(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	logger.Info("Booking checked out",
		zap.String("id", b.ID),
		zap.Float64("totalAmount", charge.TotalAmount))
	c.JSON(http.StatusOK, gin.H{"booking": b, "charge": charge})
}

// ExtendBookingHandler handles POST /bookings/:id/extend. Daily
// extensions carry new dates; hourly extensions carry an hour count.
func (h *BookingHandler) ExtendBookingHandler(c *gin.Context) {
	var req struct {
		Type         string `json:"type" binding:"required"`
		CheckInDate  string `json:"checkInDate"`
		CheckOutDate string `json:"checkOutDate"`
		Hours        int    `json:"hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	var (
		b   interface{}
		err error
	)
	switch req.Type {
	case "daily":
		b, err = h.Svc.ExtendDaily(c.Request.Context(), c.Param("id"), req.CheckInDate, req.CheckOutDate)
	case "hourly":
		b, err = h.Svc.ExtendHourly(c.Request.Context(), c.Param("id"), req.Hours, time.Now())
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "extension type must be 'daily' or 'hourly'")
		return
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
