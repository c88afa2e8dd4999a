package clienterrors

import (
	"context"
	"net/http"
	"time"

	"hr-portal/internal/infra/logingest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	ingest *logingest.Client
}

func NewHandler(ingest *logingest.Client) *Handler {
	return &Handler{ingest: ingest}
}

// POST /api/log-client-error
//
// Accepts whatever the browser managed to capture; every field is optional
// and malformed extras are ignored. The endpoint never fails the caller —
// an error pipeline that errors out just loses the report twice.
func (h *Handler) Report(c *gin.Context) {
	var input struct {
		Message   string `json:"message"`
		Stack     string `json:"stack"`
		Digest    string `json:"digest"`
		Href      string `json:"href"`
		UserAgent string `json:"userAgent"`
	}
	// Ignore bind errors: a half-formed report is still a report.
	_ = c.ShouldBindJSON(&input)

	report := logingest.Report{
		ReportID:  uuid.NewString(),
		Message:   input.Message,
		Stack:     input.Stack,
		Digest:    input.Digest,
		Href:      input.Href,
		UserAgent: input.UserAgent,
	}
	if report.UserAgent == "" {
		report.UserAgent = c.Request.UserAgent()
	}

	// Flush outlives the request; the browser shouldn't wait on ingestion.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		h.ingest.Flush(ctx, report)
	}()

	c.JSON(http.StatusOK, gin.H{"reportId": report.ReportID})
}
