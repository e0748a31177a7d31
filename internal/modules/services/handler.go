// Package services exposes the marketing-site service offerings
// (videography, photography, branding, ...) as order-sorted CRUD.
package services

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
	repo *repository.ServiceRepository
}

func NewHandler(repo *repository.ServiceRepository) *Handler {
	return &Handler{repo: repo}
}

type serviceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// List handles GET /services: active items in display order.
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAll handles GET /services/all (admin).
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create handles POST /services (admin).
func (h *Handler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and description are required")
		return
	}

	s := &domain.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, s)
}

// Update handles PUT /services/:id (admin).
func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	s, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundOrServerError(c, err)
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and description are required")
		return
	}

	s.Title = req.Title
	s.Description = req.Description
	if req.Icon != "" {
		s.Icon = req.Icon
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := h.repo.Save(c.Request.Context(), s); err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s)
}

// Delete handles DELETE /services/:id (admin).
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
	response.SuccessMessage(c, http.StatusOK, "Service deleted")
}

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/services", h.List)

	s := admin.Group("/services")
	{
		s.GET("/all", h.ListAll)
		s.POST("", h.Create)
		s.PUT("/:id", h.Update)
		s.DELETE("/:id", h.Delete)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return 0, false
	}
	return id, true
}

func notFoundOrServerError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "Service not found")
		return
	}
	serverError(c, err)
}

func serverError(c *gin.Context, err error) {
	log.Printf("services: %v", err)
	response.Error(c, http.StatusInternalServerError, "Server Error")
}
