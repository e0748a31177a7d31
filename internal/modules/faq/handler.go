package faq

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kabstudio/internal/domain"
	"kabstudio/internal/pkg/response"
	"kabstudio/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	repo *repository.FAQRepository
}

func NewHandler(repo *repository.FAQRepository) *Handler {
	return &Handler{repo: repo}
}

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// List handles GET /faqs: active items in display order.
func (h *Handler) List(c *gin.Context) {
	faqs, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, faqs)
}

// ListAll handles GET /faqs/all (admin).
func (h *Handler) ListAll(c *gin.Context) {
	faqs, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, faqs)
}

// Create handles POST /faqs (admin).
func (h *Handler) Create(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "question and answer are required")
		return
	}

	f := &domain.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		IsActive: true,
	}
	if req.Order != nil {
		f.Order = *req.Order
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}

	if err := h.repo.Create(c.Request.Context(), f); err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

// Update handles PUT /faqs/:id (admin).
func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	f, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundOrServerError(c, err)
		return
	}

	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "question and answer are required")
		return
	}

	f.Question = req.Question
	f.Answer = req.Answer
	if req.Order != nil {
		f.Order = *req.Order
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}

	if err := h.repo.Save(c.Request.Context(), f); err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Delete handles DELETE /faqs/:id (admin).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetByID(c.Request.Context(), id); err != nil {
		notFoundOrServerError(c, err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "FAQ deleted")
}

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/faqs", h.List)

	f := admin.Group("/faqs")
	{
		f.GET("/all", h.ListAll)
		f.POST("", h.Create)
		f.PUT("/:id", h.Update)
		f.DELETE("/:id", h.Delete)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid FAQ ID")
		return 0, false
	}
	return id, true
}

func notFoundOrServerError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "FAQ not found")
		return
	}
	serverError(c, err)
}

func serverError(c *gin.Context, err error) {
	log.Printf("faq: %v", err)
	response.Error(c, http.StatusInternalServerError, "Server Error")
}
