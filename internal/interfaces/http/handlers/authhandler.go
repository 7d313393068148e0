package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"upravdom/internal/application/auth/usecases"
	"upravdom/internal/shared/constants"
	"upravdom/internal/shared/logger"
	"upravdom/internal/shared/utils"
)

type AuthHandler struct {
	loginUC       usecases.LoginExecutor
	registerUC    usecases.RegisterUserExecutor
	currentUserUC usecases.GetCurrentUserExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	registerUC usecases.RegisterUserExecutor,
	currentUserUC usecases.GetCurrentUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		registerUC:    registerUC,
		currentUserUC: currentUserUC,
		logger:        logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=20"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Position  string    `json:"position,omitempty"`
}

type RegisterRequest struct {
	Username                   string `json:"username" binding:"required,max=20"`
	Password                   string `json:"password" binding:"required,min=8"`
	Position                   string `json:"position,omitempty"`
	OrganizationID             *uint  `json:"organization_id,omitempty"`
	ImplementingOrganizationID *uint  `json:"implementing_organization_id,omitempty"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.UserID,
		Username:  result.Username,
		Position:  result.Position,
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterUserCommand{
		Username:                   req.Username,
		Password:                   req.Password,
		Position:                   req.Position,
		OrganizationID:             req.OrganizationID,
		ImplementingOrganizationID: req.ImplementingOrganizationID,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.currentUserUC.Execute(c.Request.Context(), userID.(uint))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user_id":                      result.UserID,
		"username":                     result.Username,
		"position":                     result.Position,
		"organization_id":              result.OrganizationID,
		"implementing_organization_id": result.ImplementingOrganizationID,
	})
}
