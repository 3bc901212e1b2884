package handlers

import (
	"errors"
	"net/http"

	userRepo "furytails/database/repository/user"
	userSvc "furytails/services/user"
	"furytails/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the customer roster and pets views.
type UserHandler struct {
	Svc userSvc.UserService
}

// ListUsersHandler handles GET /users.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Svc.ListCustomers()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetUserHandler handles GET /users/:id.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	usr, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", id)
			return
		}
		logger.Error("User lookup failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetSessionHandler handles GET /session. It returns the signed-in
// admin's own account, resolved from the verified token.
func (h *UserHandler) GetSessionHandler(c *gin.Context) {
	id, ok := c.Get("userID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No active session", "")
		return
	}
	usr, err := h.Svc.Get(id.(string))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No account found for this session", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListPetsHandler handles GET /pets. Pets are derived from bookings.
func (h *UserHandler) ListPetsHandler(c *gin.Context) {
	pets, err := h.Svc.ListPets()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list pets", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets, "count": len(pets)})
}
