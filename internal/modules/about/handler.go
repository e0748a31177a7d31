package about

import (
	"log"
	"net/http"

	"kabstudio/internal/pkg/response"
	"kabstudio/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *repository.AboutRepository
}

func NewHandler(repo *repository.AboutRepository) *Handler {
	return &Handler{repo: repo}
}

type updateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mission string `json:"mission"`
	Vision  string `json:"vision"`
}

// Get handles GET /about. Creates the singleton on first access.
func (h *Handler) Get(c *gin.Context) {
	a, err := h.repo.GetOrCreate(c.Request.Context())
	if err != nil {
		log.Printf("about: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Update handles PUT /about (admin).
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.repo.GetOrCreate(c.Request.Context())
	if err != nil {
		log.Printf("about: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}

	if req.Title != "" {
		a.Title = req.Title
	}
	if req.Content != "" {
		a.Content = req.Content
	}
	if req.Mission != "" {
		a.Mission = req.Mission
	}
	if req.Vision != "" {
		a.Vision = req.Vision
	}

	if err := h.repo.Save(c.Request.Context(), a); err != nil {
		log.Printf("about: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/about", h.Get)
	admin.PUT("/about", h.Update)
}
