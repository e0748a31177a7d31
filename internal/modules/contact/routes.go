package contact

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.POST("/contact", h.Create)

	ct := admin.Group("/contact")
	{
		ct.GET("", h.List)
		ct.GET("/feed", h.Feed)
		ct.GET("/:id", h.Get)
		ct.PUT("/:id/status", h.UpdateStatus)
		ct.POST("/:id/reply", h.Reply)
		ct.DELETE("/:id", h.Delete)
	}
}
