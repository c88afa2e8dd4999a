package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizeRouter() *gin.Engine {
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	})
	return r
}

func TestSanitize_StripsMarkupFromStrings(t *testing.T) {
	r := sanitizeRouter()
	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"title":"<script>alert(1)</script>Party","nested":{"body":"<b>hi</b>"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Party", body["title"])
	nested := body["nested"].(map[string]interface{})
	assert.Equal(t, "hi", nested["body"])
}

func TestSanitize_RejectsMalformedJSON(t *testing.T) {
	r := sanitizeRouter()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitize_IgnoresNonJSONAndGETs(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
