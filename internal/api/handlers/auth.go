package handlers

import (
	"errors"
	"net/http"

	"github.com/Marco-XM/arixyDashboardBack/internal/api/middleware"
	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body. Identifier may be a
// username or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// SignupRequest represents the account creation request body
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Role     string `json:"role"`
}

// AuthHandler handles authentication related requests
type AuthHandler struct {
	userService *services.UserService
	jwtManager  *middleware.JWTManager
	logService  *services.LogService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(userService *services.UserService, jwtManager *middleware.JWTManager, logService *services.LogService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
		logService:  logService,
	}
}

// login verifies credentials against accounts with the given role and
// issues a token on success.
func (h *AuthHandler) login(c *gin.Context, role string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.userService.VerifyPassword(req.Identifier, req.Password)
	if err != nil || user.Role != role {
		h.logService.LogLogin(0, req.Identifier, c.ClientIP(), false, err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid login credentials",
		})
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	h.logService.LogLogin(user.ID, req.Identifier, c.ClientIP(), true, nil)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"token":      token,
		"expires_at": expiresAt,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// AdminLogin handles dashboard admin login
// POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, string(models.RoleAdmin))
}

// UserLogin handles dashboard user login
// POST /api/auth/user/login
func (h *AuthHandler) UserLogin(c *gin.Context) {
	h.login(c, string(models.RoleUser))
}

// Signup handles account creation requests
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	role := req.Role
	if role == "" {
		role = string(models.RoleUser)
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already in use"})
		case errors.Is(err, services.ErrPasswordTooShort), errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	h.logService.LogInfo(user.ID, models.LogModuleAuth, "signup", "Account created", gin.H{"role": user.Role})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// GetCurrentUser returns the current authenticated user info
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
