package controllers

import (
	"net/http"

	"lab_downtime_server/config"
	"lab_downtime_server/internal/auth"
	"lab_downtime_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// AuthController handles admin authentication HTTP requests
type AuthController struct {
	sessions *auth.SessionStore
}

// NewAuthController creates a new auth controller
func NewAuthController(sessions *auth.SessionStore) *AuthController {
	return &AuthController{sessions: sessions}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	Session *auth.Session `json:"session,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Login checks the presented admin secret and issues a session token.
// Wrong secret and unconfigured secret produce the identical response.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		colors.PrintError("Invalid login request: %v", err)
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	if !config.GetAdminAuth().Check(req.Token) {
		colors.PrintWarning("Admin login failed from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
			Message: "Admin token is incorrect",
		})
		return
	}

	session := ac.sessions.Issue()
	colors.PrintSuccess("Admin session issued from %s", c.ClientIP())
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   session.Token,
	})
}

// Logout revokes the current admin session
func (ac *AuthController) Logout(c *gin.Context) {
	if session, exists := c.Get("admin_session"); exists {
		ac.sessions.Revoke(session.(auth.Session).Token)
	}
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logout successful",
	})
}

// Me returns the current admin session status and expiry
func (ac *AuthController) Me(c *gin.Context) {
	sessionInterface, exists := c.Get("admin_session")
	if !exists {
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Error:   "Unauthorized",
			Message: "Admin session required",
		})
		return
	}

	session := sessionInterface.(auth.Session)
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Session is active",
		Session: &session,
	})
}
