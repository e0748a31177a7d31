package portfolio

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the portfolio routes: reads are public, all
// mutations go on the admin-gated group.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/portfolio", h.Get)

	p := admin.Group("/portfolio")
	{
		p.PUT("/about", h.UpdateAbout)
		p.PUT("/skills", h.UpdateSkills)
		p.PUT("/experiences", h.UpdateExperiences)

		p.POST("/hero", h.AddHero)
		p.PUT("/hero/:index", h.ReplaceHero)
		p.DELETE("/hero/:index", h.DeleteHero)

		p.POST("/works", h.AddWork)
		p.PUT("/works/:index", h.UpdateWork)
		p.DELETE("/works/:index", h.DeleteWork)
	}
}
