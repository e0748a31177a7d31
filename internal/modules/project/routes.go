package project

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/projects", h.List)
	public.GET("/projects/:id", h.Get)

	p := admin.Group("/projects")
	{
		p.GET("/all", h.ListAll)
		p.POST("", h.Create)
		p.PUT("/:id", h.Update)
		p.DELETE("/:id", h.Delete)
		p.DELETE("/:id/media/:index", h.DeleteMedia)
	}
}
