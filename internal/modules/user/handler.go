package user

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kabstudio/internal/media"
	"kabstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /users (admin).
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Get handles GET /users/:id (admin).
func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Create handles POST /users (admin).
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "name, email and password (min 6 chars) are required")
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// Update handles PUT /users/:id (admin).
func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Delete handles DELETE /users/:id (admin).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "User deleted")
}

// Me handles GET /users/me.
func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// SetProfileImage handles PUT /users/me/profile-image (multipart field
// "image").
func (h *Handler) SetProfileImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrNoImage.Error())
		return
	}
	file, err := media.FromMultipart(fh)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.SetProfileImage(c.Request.Context(), c.GetInt64("user_id"), file)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// RemoveProfileImage handles DELETE /users/me/profile-image.
func (h *Handler) RemoveProfileImage(c *gin.Context) {
	u, err := h.service.RemoveProfileImage(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "role must be one of: admin, user")
	case errors.Is(err, media.ErrEmptyFile),
		errors.Is(err, media.ErrFileTooLarge),
		errors.Is(err, media.ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("user: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}
