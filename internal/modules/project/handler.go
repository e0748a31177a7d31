package project

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"
	"kabstudio/internal/pkg/response"
	"kabstudio/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /projects. Public callers see active projects only,
// optionally filtered with ?category=.
func (h *Handler) List(c *gin.Context) {
	projects, err := h.service.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// ListAll handles GET /projects/all (admin).
func (h *Handler) ListAll(c *gin.Context) {
	projects, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// Get handles GET /projects/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /projects (multipart).
func (h *Handler) Create(c *gin.Context) {
	input, ok := projectInput(c)
	if !ok {
		return
	}
	if errs := validator.Validate(input); errs != nil {
		response.Error(c, http.StatusBadRequest, "title, category and type are required")
		return
	}

	files, ok := mediaFiles(c)
	if !ok {
		return
	}

	p, err := h.service.Create(c.Request.Context(), input, files)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Update handles PUT /projects/:id (multipart; new files append).
func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	input, ok := projectInput(c)
	if !ok {
		return
	}
	files, ok := mediaFiles(c)
	if !ok {
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, input, files)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// DeleteMedia handles DELETE /projects/:id/media/:index.
func (h *Handler) DeleteMedia(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Index out of range")
		return
	}

	p, err := h.service.DeleteMedia(c.Request.Context(), id, index)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Delete handles DELETE /projects/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Project deleted")
}

func projectInput(c *gin.Context) (ProjectInput, bool) {
	input := ProjectInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Type:        c.PostForm("type"),
		YoutubeURL:  c.PostForm("youtubeUrl"),
	}

	if raw := c.PostForm("isActive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "isActive must be a boolean")
			return ProjectInput{}, false
		}
		input.IsActive = &v
	}
	if raw := c.PostForm("order"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "order must be an integer")
			return ProjectInput{}, false
		}
		input.Order = &v
	}
	return input, true
}

func mediaFiles(c *gin.Context) ([]media.File, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, true
	}
	files, err := media.FromMultipartAll(form.File["media"])
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return files, true
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "Project not found")
	case errors.Is(err, collection.ErrIndexOutOfRange):
		response.Error(c, http.StatusBadRequest, "Index out of range")
	case errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrYoutubeURLRequired),
		errors.Is(err, ErrNoMediaFiles),
		errors.Is(err, media.ErrEmptyFile),
		errors.Is(err, media.ErrFileTooLarge),
		errors.Is(err, media.ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("project: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}
}
