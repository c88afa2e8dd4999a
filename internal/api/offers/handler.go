package offers

import (
	"net/http"
	"strings"
	"time"

	"hr-portal/internal/app/http/middleware"
	"hr-portal/internal/domain/documents"

	"github.com/gin-gonic/gin"
)

// Handler renders offer-letter previews. The letter body stays a template
// on the client; this endpoint resolves the placeholder fields by merging
// recruiter input over system autofill and reports which tokens are still
// unresolved so the UI can flag an incomplete document.
type Handler struct {
	companyName string
}

func NewHandler(companyName string) *Handler {
	return &Handler{companyName: companyName}
}

// POST /api/offer-letters/preview
func (h *Handler) Preview(c *gin.Context) {
	var input struct {
		Template string                 `json:"template" binding:"required"`
		Fields   map[string]interface{} `json:"fields"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := documents.Interpolate(input.Template, toSource(input.Fields), h.autofill(c))

	c.JSON(http.StatusOK, gin.H{
		"fields":     fields,
		"unresolved": unresolvedKeys(input.Template, fields),
	})
}

// autofill supplies the system-derived defaults: today's date and the
// company block. Recruiter input always wins over these.
func (h *Handler) autofill(c *gin.Context) documents.Source {
	company := h.companyName
	if s := middleware.CurrentSession(c); s != nil && s.Identity.TenantID != "" {
		company = s.Identity.TenantID
	}

	return documents.Source{
		"date": documents.String(time.Now().Format("January 2, 2006")),
		"company": documents.Object(map[string]string{
			"name": company,
		}),
	}
}

// toSource narrows a JSON field map to the engine's tagged values: strings
// stay scalars, one level of nested objects keeps its string members, and
// everything else is dropped.
func toSource(in map[string]interface{}) documents.Source {
	src := make(documents.Source, len(in))
	for key, v := range in {
		switch val := v.(type) {
		case string:
			src[key] = documents.String(val)
		case map[string]interface{}:
			fields := make(map[string]string)
			for nk, nv := range val {
				if s, ok := nv.(string); ok {
					fields[nk] = s
				}
			}
			src[key] = documents.Object(fields)
		}
	}
	return src
}

// unresolvedKeys lists template keys whose resolved value is still the
// literal placeholder.
func unresolvedKeys(template string, fields documents.Fields) []string {
	out := []string{}
	for _, key := range documents.Placeholders(template) {
		root := key
		if i := strings.Index(key, "."); i >= 0 {
			root = key[:i]
		}
		v, ok := fields[root]
		if !ok {
			continue
		}

		if !strings.Contains(key, ".") {
			if s, ok := v.Scalar(); ok && s == "{{"+key+"}}" {
				out = append(out, key)
			}
			continue
		}

		nested := strings.Split(key, ".")[1]
		if s, ok := v.Field(nested); ok && s == "{{"+key+"}}" {
			out = append(out, key)
		}
	}
	return out
}
