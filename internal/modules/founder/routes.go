package founder

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/founder", h.Get)
	admin.PUT("/founder", h.Update)
}
