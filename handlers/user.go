package handlers

import (
	"net/http"

	"tripwise/services/user"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the identity endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := callerID(c)
	profile, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("User not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SignOutHandler handles DELETE /api/users/signout. The presented token is
// revoked; other sessions are unaffected.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	token, _ := c.Get("authToken")
	tokenString, _ := token.(string)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.Service.SignOut(c.Request.Context(), tokenString); err != nil {
		logger.Error("Sign-out failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Sign-out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
