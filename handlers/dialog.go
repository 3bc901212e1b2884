package handlers

import (
	"errors"
	"net/http"

	"furytails/services/dialog"
	"furytails/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DialogHandler exposes the console's single-slot dialog manager.
type DialogHandler struct {
	Manager *dialog.Manager
}

// OpenDialogHandler handles POST /dialogs. At most one dialog is open
// at a time; an overlapping open is refused rather than replacing the
// pending one.
func (h *DialogHandler) OpenDialogHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Kind    string `json:"kind" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	opened, results, err := h.Manager.Open(dialog.Kind(req.Kind), req.Title, req.Message)
	if err != nil {
		if errors.Is(err, dialog.ErrBusy) {
			utils.JSONError(c, http.StatusConflict, "A dialog is already open", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to open dialog", err.Error())
		return
	}

	// Drain the outcome so the slot's channel never blocks a resolver.
	go func(id string) {
		res := <-results
		logger.Debug("Dialog resolved",
			zap.String("id", id),
			zap.Bool("confirmed", res.Confirmed))
	}(opened.ID)

	c.JSON(http.StatusCreated, opened)
}

// CurrentDialogHandler handles GET /dialogs/current.
func (h *DialogHandler) CurrentDialogHandler(c *gin.Context) {
	req, ok := h.Manager.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"open": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": true, "dialog": req})
}

// ResolveDialogHandler handles POST /dialogs/:id/resolve.
func (h *DialogHandler) ResolveDialogHandler(c *gin.Context) {
	var req struct {
		Confirmed bool   `json:"confirmed"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.Manager.Resolve(c.Param("id"), dialog.Result{Confirmed: req.Confirmed, Notes: req.Notes})
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No open dialog with that id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dialog resolved"})
}

// DismissDialogHandler handles DELETE /dialogs/:id. Dismissal resolves
// the dialog unconfirmed.
func (h *DialogHandler) DismissDialogHandler(c *gin.Context) {
	if err := h.Manager.Dismiss(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "No open dialog with that id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dialog dismissed"})
}
