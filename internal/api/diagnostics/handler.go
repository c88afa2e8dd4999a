package diagnostics

import "github.com/gin-gonic/gin"

// GET /api/diagnostics/throw
//
// Deliberately raises an unhandled error so the recovery middleware and the
// log ingestion pipeline can be verified end to end from the browser. Gated
// behind settings.manage; it exists for operators, not users.
func Throw(c *gin.Context) {
	panic("diagnostics: deliberate test error")
}
