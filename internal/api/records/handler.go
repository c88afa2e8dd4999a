package records

import (
	"net/http"
	"time"

	"hr-portal/internal/domain/assets"
	"hr-portal/internal/domain/forms"
	"hr-portal/internal/infra/backend"

	"github.com/gin-gonic/gin"
)

// Handler fronts the HR record forms: each endpoint binds the declared
// contract, returns field-level messages on failure, and forwards accepted
// submissions to the backend untouched. All record storage and business
// rules live behind the backend API.
type Handler struct {
	backend *backend.Client
}

func NewHandler(b *backend.Client) *Handler {
	return &Handler{backend: b}
}

func (h *Handler) submit(c *gin.Context, form any, backendPath string) {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := forms.Validate(form); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	status, body, err := h.backend.Forward(c.Request.Context(), http.MethodPost, backendPath, form)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Backend unavailable"})
		return
	}
	c.Data(status, "application/json", body)
}

// POST /api/assets
func (h *Handler) CreateAsset(c *gin.Context) {
	var f forms.Asset
	h.submit(c, &f, "/api/assets")
}

// POST /api/bonuses
func (h *Handler) CreateBonus(c *gin.Context) {
	var f forms.Bonus
	h.submit(c, &f, "/api/bonuses")
}

// POST /api/company-taxes
func (h *Handler) CreateCompanyTax(c *gin.Context) {
	var f forms.CompanyTax
	h.submit(c, &f, "/api/company-taxes")
}

// POST /api/departments
func (h *Handler) CreateDepartment(c *gin.Context) {
	var f forms.Department
	h.submit(c, &f, "/api/departments")
}

// POST /api/expenses
func (h *Handler) CreateExpense(c *gin.Context) {
	var f forms.Expense
	h.submit(c, &f, "/api/expenses")
}

// POST /api/pay-groups
func (h *Handler) CreatePayGroup(c *gin.Context) {
	var f forms.PayGroup
	h.submit(c, &f, "/api/pay-groups")
}

// POST /api/job-roles
func (h *Handler) CreateJobRole(c *gin.Context) {
	var f forms.JobRole
	h.submit(c, &f, "/api/job-roles")
}

// POST /api/loans
func (h *Handler) CreateLoan(c *gin.Context) {
	var f forms.Loan
	h.submit(c, &f, "/api/loans")
}

// POST /api/onboarding-profiles
func (h *Handler) CreateOnboardingProfile(c *gin.Context) {
	var f forms.OnboardingProfile
	h.submit(c, &f, "/api/onboarding-profiles")
}

// POST /api/pay-frequencies
func (h *Handler) CreatePayFrequency(c *gin.Context) {
	var f forms.PayFrequency
	h.submit(c, &f, "/api/pay-frequencies")
}

// POST /api/salary-breakdowns
func (h *Handler) CreateSalaryBreakdown(c *gin.Context) {
	var f forms.SalaryBreakdown
	h.submit(c, &f, "/api/salary-breakdowns")
}

// POST /api/assets/depreciation
// Computes the straight-line depreciated value for the asset register view.
func (h *Handler) AssetDepreciation(c *gin.Context) {
	var input struct {
		PurchasePrice   string `json:"purchasePrice" binding:"required"`
		PurchaseDate    string `json:"purchaseDate" binding:"required"`
		UsefulLifeYears int    `json:"usefulLifeYears" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := forms.ParseAmount(input.PurchasePrice)
	if err != nil || price <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []forms.FieldError{
			{Field: "purchasePrice", Message: "must be a currency amount like 1200 or 450.50"},
		}})
		return
	}
	purchasedAt, err := time.Parse("2006-01-02", input.PurchaseDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []forms.FieldError{
			{Field: "purchaseDate", Message: "must be a date in the format 2006-01-02"},
		}})
		return
	}

	elapsed := assets.YearsElapsed(purchasedAt, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"yearsElapsed":     elapsed,
		"depreciatedValue": assets.DepreciatedValue(price, input.UsefulLifeYears, elapsed),
	})
}
