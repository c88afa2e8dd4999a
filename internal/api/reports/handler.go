package reports

import (
	"io"
	"net/http"
	"regexp"

	"hr-portal/internal/infra/backend"
	"hr-portal/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

var endpointPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

type Handler struct {
	exports *ExportClient
}

func NewHandler(b *backend.Client) *Handler {
	return &Handler{exports: NewExportClient(b)}
}

// GET /api/attendance-report/:endpoint?yearMonth=2025-03
func (h *Handler) ExportAttendance(c *gin.Context) {
	endpoint := c.Param("endpoint")
	if !endpointPattern.MatchString(endpoint) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report endpoint"})
		return
	}

	if h.exports.Busy() {
		c.JSON(http.StatusConflict, gin.H{"error": "An export is already in progress"})
		return
	}

	dl, err := h.exports.Export(c.Request.Context(), endpoint, c.Query("yearMonth"))
	metrics.ObserveExport(endpoint, err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to export report"})
		return
	}
	defer dl.Body.Close()

	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	if dl.Disposition != "" {
		c.Header("Content-Disposition", dl.Disposition)
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, dl.Body); err != nil {
		// Headers are gone already; nothing left to do but note the break.
		_ = c.Error(err)
	}
}
