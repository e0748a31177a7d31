package founder

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"
	"kabstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /founder.
func (h *Handler) Get(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Update handles PUT /founder (multipart). keepImages is a JSON-encoded
// array of existing URLs to retain; "images" files are appended after it.
func (h *Handler) Update(c *gin.Context) {
	name := c.PostForm("name")
	message := c.PostForm("message")

	var keepURLs []string
	if raw := c.PostForm("keepImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &keepURLs); err != nil {
			response.Error(c, http.StatusBadRequest, "keepImages must be a JSON array of URLs")
			return
		}
	}

	var files []media.File
	if form, err := c.MultipartForm(); err == nil {
		files, err = media.FromMultipartAll(form.File["images"])
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	f, err := h.service.Update(c.Request.Context(), name, message, keepURLs, files)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, collection.ErrCapacityExceeded):
		response.Error(c, http.StatusBadRequest, "Maximum 3 images allowed")
	case errors.Is(err, media.ErrEmptyFile),
		errors.Is(err, media.ErrFileTooLarge),
		errors.Is(err, media.ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("founder: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}
}
