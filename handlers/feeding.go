package handlers

import (
	"errors"
	"net/http"
	"strconv"

	feedingRepo "furytails/database/repository/feeding"
	"furytails/services/feeding"
	"furytails/utils"

	"github.com/gin-gonic/gin"
)

// FeedingHandler serves the feeding reports view.
type FeedingHandler struct {
	Svc feeding.FeedingService
}

// ListFeedingHandler handles GET /feeding. Pages are fixed at ten
// records, newest first.
func (h *FeedingHandler) ListFeedingHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid page number", c.Query("page"))
		return
	}

	result, err := h.Svc.ListPage(page)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list feeding records", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFeedingHandler handles GET /feeding/:id.
func (h *FeedingHandler) GetFeedingHandler(c *gin.Context) {
	rec, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, feedingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Feeding record not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch feeding record", err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}
