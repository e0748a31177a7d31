package asset

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

// Handler delivers finished work (videos, photo sets) to portal users.
// Creation, text edits and deletion are admin actions; a user can only
// read their own assets.
type Handler struct {
	assets *repository.AssetRepository
	users  *repository.UserRepository
}

func NewHandler(assets *repository.AssetRepository, users *repository.UserRepository) *Handler {
	return &Handler{assets: assets, users: users}
}

type createRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Type   string `json:"type" binding:"required"`
	URL    string `json:"url" binding:"required"`
	Text   string `json:"text"`
}

type updateRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create handles POST /assets (admin "send to user").
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "userId, type and url are required")
		return
	}

	t := domain.AssetType(req.Type)
	if !t.Valid() {
		response.Error(c, http.StatusBadRequest, "type must be one of: video, photo")
		return
	}

	if _, err := h.users.GetByID(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		serverError(c, err)
		return
	}

	a := &domain.Asset{
		UserID: req.UserID,
		Type:   t,
		URL:    req.URL,
		Text:   req.Text,
	}
	if err := h.assets.Create(c.Request.Context(), a); err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// ListMine handles GET /assets/my (any authenticated user).
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	assets, err := h.assets.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, assets)
}

// ListByUser handles GET /assets/user/:userId, admins or the owning
// user only.
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if c.GetString("role") != string(domain.RoleAdmin) && c.GetInt64("user_id") != userID {
		response.Error(c, http.StatusForbidden, "Access denied: insufficient permissions")
		return
	}

	assets, err := h.assets.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, assets)
}

// Update handles PUT /assets/:id (admin, text only).
func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "text is required")
		return
	}

	a, err := h.assets.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundOrServerError(c, err)
		return
	}

	a.Text = req.Text
	if err := h.assets.Save(c.Request.Context(), a); err != nil {
		serverError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Delete handles DELETE /assets/:id (admin).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.assets.GetByID(c.Request.Context(), id); err != nil {
		notFoundOrServerError(c, err)
		return
	}
	if err := h.assets.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Asset deleted")
}

// RegisterRoutes mounts asset routes. The authed group requires a valid
// token (any role); writes additionally sit behind the admin group.
func RegisterRoutes(authed, admin *gin.RouterGroup, h *Handler) {
	authed.GET("/assets/my", h.ListMine)
	authed.GET("/assets/user/:userId", h.ListByUser)

	a := admin.Group("/assets")
	{
		a.POST("", h.Create)
		a.PUT("/:id", h.Update)
		a.DELETE("/:id", h.Delete)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid asset ID")
		return 0, false
	}
	return id, true
}

func notFoundOrServerError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "Asset not found")
		return
	}
	serverError(c, err)
}

func serverError(c *gin.Context, err error) {
	log.Printf("asset: %v", err)
	response.Error(c, http.StatusInternalServerError, "Server Error")
}
