package contact

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kabstudio/internal/mailer"
	"kabstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cross-origin handshakes are fine; auth happens in middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// Create handles POST /contact (public contact form).
func (h *Handler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "name, email, subject and message are required")
		return
	}

	contact, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contact)
}

// List handles GET /contact (admin), newest first.
func (h *Handler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contacts)
}

// Get handles GET /contact/:id (admin). Viewing moves new -> read.
func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	contact, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contact)
}

// UpdateStatus handles PUT /contact/:id/status (admin).
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "status is required")
		return
	}

	contact, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contact)
}

// Reply handles POST /contact/:id/reply (admin).
func (h *Handler) Reply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "reply body is required")
		return
	}

	contact, err := h.service.Reply(c.Request.Context(), id, req.Body)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contact)
}

// Delete handles DELETE /contact/:id (admin).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Contact deleted")
}

// Feed handles GET /contact/feed: upgrades to a websocket and registers
// the admin for new-contact broadcasts until the socket closes.
func (h *Handler) Feed(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("contact feed upgrade: %v", err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	// drain control frames; exit when the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "Contact not found")
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrEmptyReply):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, mailer.ErrDispatchFailed):
		log.Printf("contact: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	default:
		log.Printf("contact: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}
}
