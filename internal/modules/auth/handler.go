package auth

import (
	"errors"
	"log"
	"net/http"

	"kabstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Verify handles GET /auth/verify. Reaching it at all means the token
// was valid; it returns the current user so clients can refresh state.
func (h *Handler) Verify(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// SendOTP handles POST /auth/password-reset/send-otp.
func (h *Handler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "a valid email is required")
		return
	}

	if err := h.service.SendOTP(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "OTP sent")
}

// VerifyOTP handles POST /auth/password-reset/verify-otp.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and otp are required")
		return
	}

	if err := h.service.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "OTP verified")
}

// ResetPassword handles POST /auth/password-reset/reset-password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email, otp and newPassword (min 6 chars) are required")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Password updated")
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidOTP):
		response.Error(c, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, ErrOTPExpired):
		response.Error(c, http.StatusBadRequest, "OTP expired")
	default:
		log.Printf("auth: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}
}
