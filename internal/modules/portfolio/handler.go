package portfolio

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"
	"kabstudio/internal/pkg/response"
	"kabstudio/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /portfolio. Creates an empty portfolio on first access.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// UpdateAbout handles PUT /portfolio/about.
func (h *Handler) UpdateAbout(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "aboutText and experienceYears are required")
		return
	}

	p, err := h.service.UpdateAbout(c.Request.Context(), req.AboutText, req.ExperienceYears)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// UpdateSkills handles PUT /portfolio/skills.
func (h *Handler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "skills array is required")
		return
	}

	p, err := h.service.UpdateSkills(c.Request.Context(), req.Skills)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// UpdateExperiences handles PUT /portfolio/experiences.
func (h *Handler) UpdateExperiences(c *gin.Context) {
	var req UpdateExperiencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "experiences array is required")
		return
	}

	p, err := h.service.UpdateExperiences(c.Request.Context(), req.Experiences)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// AddHero handles POST /portfolio/hero (multipart, field "image").
func (h *Handler) AddHero(c *gin.Context) {
	file, ok := h.heroFile(c)
	if !ok {
		return
	}

	p, err := h.service.AddHeroImage(c.Request.Context(), file)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// ReplaceHero handles PUT /portfolio/hero/:index.
func (h *Handler) ReplaceHero(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	file, ok := h.heroFile(c)
	if !ok {
		return
	}

	p, err := h.service.ReplaceHeroImage(c.Request.Context(), index, file)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// DeleteHero handles DELETE /portfolio/hero/:index.
func (h *Handler) DeleteHero(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	p, err := h.service.DeleteHeroImage(c.Request.Context(), index)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// AddWork handles POST /portfolio/works (multipart).
func (h *Handler) AddWork(c *gin.Context) {
	input := SampleWorkInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        c.PostForm("type"),
		YoutubeURL:  c.PostForm("youtubeUrl"),
	}
	if errs := validator.Validate(input); errs != nil {
		response.Error(c, http.StatusBadRequest, "title and type are required")
		return
	}

	files, ok := mediaFiles(c)
	if !ok {
		return
	}

	p, err := h.service.AddSampleWork(c.Request.Context(), input, files)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// UpdateWork handles PUT /portfolio/works/:index. The removeIndices form
// field is a JSON-encoded int array addressing the pre-update mediaUrls.
func (h *Handler) UpdateWork(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	input := SampleWorkInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        c.PostForm("type"),
		YoutubeURL:  c.PostForm("youtubeUrl"),
	}

	if raw := c.PostForm("removeIndices"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.RemoveIndices); err != nil {
			response.Error(c, http.StatusBadRequest, "removeIndices must be a JSON array of integers")
			return
		}
	}

	files, ok := mediaFiles(c)
	if !ok {
		return
	}

	p, err := h.service.UpdateSampleWork(c.Request.Context(), index, input, files)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// DeleteWork handles DELETE /portfolio/works/:index.
func (h *Handler) DeleteWork(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	p, err := h.service.DeleteSampleWork(c.Request.Context(), index)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) heroFile(c *gin.Context) (media.File, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required")
		return media.File{}, false
	}
	file, err := media.FromMultipart(fh)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return media.File{}, false
	}
	return file, true
}

// mediaFiles reads the optional "media" multipart files.
func mediaFiles(c *gin.Context) ([]media.File, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// no multipart body at all is fine for youtube works
		return nil, true
	}
	files, err := media.FromMultipartAll(form.File["media"])
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return files, true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Index out of range")
		return 0, false
	}
	return index, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, collection.ErrCapacityExceeded):
		response.Error(c, http.StatusBadRequest, "Maximum 3 images allowed")
	case errors.Is(err, collection.ErrIndexOutOfRange):
		response.Error(c, http.StatusBadRequest, "Index out of range")
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrYoutubeURLRequired),
		errors.Is(err, ErrNoMediaFiles),
		errors.Is(err, ErrNoImage),
		errors.Is(err, media.ErrEmptyFile),
		errors.Is(err, media.ErrFileTooLarge),
		errors.Is(err, media.ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("portfolio: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}
}
