package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts login and password reset on the public group
// and token verification on the authenticated group.
func RegisterRoutes(public, authed *gin.RouterGroup, h *Handler) {
	a := public.Group("/auth")
	{
		a.POST("/login", h.Login)
		a.POST("/password-reset/send-otp", h.SendOTP)
		a.POST("/password-reset/verify-otp", h.VerifyOTP)
		a.POST("/password-reset/reset-password", h.ResetPassword)
	}

	authed.GET("/auth/verify", h.Verify)
}
