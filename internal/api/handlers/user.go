package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Marco-XM/arixyDashboardBack/internal/api/middleware"
	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles dashboard account management requests
type UserHandler struct {
	userService *services.UserService
	logService  *services.LogService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService *services.UserService, logService *services.LogService) *UserHandler {
	return &UserHandler{
		userService: userService,
		logService:  logService,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListUsers returns all dashboard accounts with the user role, except
// the caller
// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	users, err := h.userService.ListUsersExcluding(string(models.RoleUser), callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListAdmins returns all dashboard accounts with the admin role, except
// the caller
// GET /api/users/admins
func (h *UserHandler) ListAdmins(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	admins, err := h.userService.ListUsersExcluding(string(models.RoleAdmin), callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": admins})
}

// CountUsers returns the number of user accounts excluding the caller
// GET /api/users/count
func (h *UserHandler) CountUsers(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	count, err := h.userService.CountUsersExcluding(string(models.RoleUser), callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CountAdmins returns the number of admin accounts excluding the caller
// GET /api/users/admins/count
func (h *UserHandler) CountAdmins(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	count, err := h.userService.CountUsersExcluding(string(models.RoleAdmin), callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count admins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ValidateUser confirms an account exists and returns its identity
// GET /api/users/:id/validate
func (h *UserHandler) ValidateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"username": user.Username,
		"role":     user.Role,
	})
}

// GetUsername returns the username for an account
// GET /api/users/:id/username
func (h *UserHandler) GetUsername(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

func (h *UserHandler) deleteAccount(c *gin.Context, role string) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, _ := middleware.GetUserIDFromContext(c)
	if id == callerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	user, err := h.userService.DeleteUser(id, role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	h.logService.LogInfo(callerID, models.LogModuleUser, "delete", "User account deleted", gin.H{"deleted_id": user.ID, "role": role})

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"user":    user,
	})
}

// DeleteUser removes a user account
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	h.deleteAccount(c, string(models.RoleUser))
}

// DeleteAdmin removes an admin account
// DELETE /api/users/admins/:id
func (h *UserHandler) DeleteAdmin(c *gin.Context) {
	h.deleteAccount(c, string(models.RoleAdmin))
}
