package announcements

import (
	"net/http"

	"hr-portal/internal/domain/forms"
	"hr-portal/internal/infra/backend"
	"hr-portal/internal/infra/completion"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	backend     *backend.Client
	completions *completion.Client
}

func NewHandler(b *backend.Client, cc *completion.Client) *Handler {
	return &Handler{backend: b, completions: cc}
}

// POST /api/announcements/draft
// Generates a suggested announcement body from a title and category.
func (h *Handler) Draft(c *gin.Context) {
	var input struct {
		Title    string `json:"title" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := h.completions.DraftAnnouncement(c.Request.Context(), input.Title, input.Category)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"body": body})
}

// POST /api/announcements
func (h *Handler) Create(c *gin.Context) {
	var form forms.Announcement
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := forms.Validate(form); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	status, body, err := h.backend.Forward(c.Request.Context(), http.MethodPost, "/api/announcements", form)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Backend unavailable"})
		return
	}
	c.Data(status, "application/json", body)
}

// GET /api/announcements
func (h *Handler) List(c *gin.Context) {
	status, body, err := h.backend.Forward(c.Request.Context(), http.MethodGet, "/api/announcements", nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Backend unavailable"})
		return
	}
	c.Data(status, "application/json", body)
}
