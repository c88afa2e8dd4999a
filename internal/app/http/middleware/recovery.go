package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"hr-portal/internal/infra/logingest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecoveryReporter converts panics into 500 responses and ships them through
// the same log ingestion pipeline browsers report into. The diagnostics
// endpoint exists purely to trip this path on demand.
func RecoveryReporter(ingest *logingest.Client) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		report := logingest.Report{
			ReportID:  uuid.NewString(),
			Message:   fmt.Sprintf("%v", recovered),
			Stack:     string(debug.Stack()),
			Href:      c.Request.URL.String(),
			UserAgent: c.Request.UserAgent(),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			ingest.Flush(ctx, report)
		}()

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":    "Internal server error",
			"reportId": report.ReportID,
		})
	})
}
