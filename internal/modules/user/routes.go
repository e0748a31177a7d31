package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts self-service routes on the authenticated group
// and account management under admin.
func RegisterRoutes(authed, admin *gin.RouterGroup, h *Handler) {
	authed.GET("/users/me", h.Me)
	authed.PUT("/users/me/profile-image", h.SetProfileImage)
	authed.DELETE("/users/me/profile-image", h.RemoveProfileImage)

	u := admin.Group("/users")
	{
		u.GET("", h.List)
		u.GET("/:id", h.Get)
		u.POST("", h.Create)
		u.PUT("/:id", h.Update)
		u.DELETE("/:id", h.Delete)
	}
}
