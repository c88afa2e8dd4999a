package routes

import (
	"hr-portal/config"
	announcementsapi "hr-portal/internal/api/announcements"
	authapi "hr-portal/internal/api/auth"
	"hr-portal/internal/api/clienterrors"
	"hr-portal/internal/api/diagnostics"
	"hr-portal/internal/api/integrations"
	offersapi "hr-portal/internal/api/offers"
	recordsapi "hr-portal/internal/api/records"
	reportsapi "hr-portal/internal/api/reports"
	"hr-portal/internal/app/http/middleware"
	"hr-portal/internal/domain/access"
	"hr-portal/internal/domain/session"
	"hr-portal/internal/infra/backend"
	"hr-portal/internal/infra/completion"
	"hr-portal/internal/infra/logingest"
	"hr-portal/internal/infra/metrics"
	"hr-portal/internal/infra/sessions"

	"github.com/gin-gonic/gin"
)

// Deps is everything the route table needs, built once in main.
type Deps struct {
	Cfg         *config.Config
	Store       *sessions.Store
	Monitor     *session.Monitor
	Backend     *backend.Client
	Completions *completion.Client
	Ingest      *logingest.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	authHandler := authapi.NewHandler(d.Store, d.Monitor)
	announcements := announcementsapi.NewHandler(d.Backend, d.Completions)
	records := recordsapi.NewHandler(d.Backend)
	reports := reportsapi.NewHandler(d.Backend)
	offers := offersapi.NewHandler("") // company name comes from the session tenant
	errorsHandler := clienterrors.NewHandler(d.Ingest)
	google := integrations.NewHandler(integrations.GoogleConfig{
		ClientID:     d.Cfg.GoogleClientID,
		ClientSecret: d.Cfg.GoogleClientSecret,
		RedirectURL:  d.Cfg.GoogleRedirectURL,
	})

	r.Use(middleware.RecoveryReporter(d.Ingest))
	r.Use(metrics.Middleware())
	r.Use(middleware.SessionMiddleware(d.Store, d.Monitor))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// Error reports must get through even with no session and a dying page.
	r.POST("/api/log-client-error", errorsHandler.Report)

	fallback := d.Cfg.FallbackRoute

	// Any signed-in user.
	authed := r.Group("/")
	authed.Use(middleware.SanitizeInputMiddleware())
	authed.Use(middleware.RequireCapabilities(fallback))
	authed.GET("/api/me", authHandler.Me)
	authed.POST("/api/auth/logout", authHandler.Logout)
	authed.GET("/api/announcements", announcements.List)

	// Payroll configuration area.
	payroll := r.Group("/")
	payroll.Use(middleware.SanitizeInputMiddleware())
	payroll.Use(middleware.RequireCapabilities(fallback, access.PermPayrollManage))
	payroll.POST("/api/bonuses", records.CreateBonus)
	payroll.POST("/api/loans", records.CreateLoan)
	payroll.POST("/api/company-taxes", records.CreateCompanyTax)
	payroll.POST("/api/pay-groups", records.CreatePayGroup)
	payroll.POST("/api/pay-frequencies", records.CreatePayFrequency)
	payroll.POST("/api/salary-breakdowns", records.CreateSalaryBreakdown)

	// Organization records.
	org := r.Group("/")
	org.Use(middleware.SanitizeInputMiddleware())
	org.Use(middleware.RequireCapabilities(fallback, access.PermEmployeeView))
	org.POST("/api/departments", records.CreateDepartment)
	org.POST("/api/job-roles", records.CreateJobRole)

	expenses := r.Group("/")
	expenses.Use(middleware.SanitizeInputMiddleware())
	expenses.Use(middleware.RequireCapabilities(fallback, access.PermExpenseManage))
	expenses.POST("/api/expenses", records.CreateExpense)

	assets := r.Group("/")
	assets.Use(middleware.SanitizeInputMiddleware())
	assets.Use(middleware.RequireCapabilities(fallback, access.PermAssetManage))
	assets.POST("/api/assets", records.CreateAsset)
	assets.POST("/api/assets/depreciation", records.AssetDepreciation)

	// Recruitment and onboarding.
	recruiting := r.Group("/")
	recruiting.Use(middleware.SanitizeInputMiddleware())
	recruiting.Use(middleware.RequireCapabilities(fallback, access.PermRecruitmentManage))
	recruiting.POST("/api/onboarding-profiles", records.CreateOnboardingProfile)
	recruiting.POST("/api/offer-letters/preview", offers.Preview)

	// Announcement authoring.
	announce := r.Group("/")
	announce.Use(middleware.SanitizeInputMiddleware())
	announce.Use(middleware.RequireCapabilities(fallback, access.PermAnnouncementEdit))
	announce.POST("/api/announcements", announcements.Create)
	announce.POST("/api/announcements/draft", announcements.Draft)

	// Report exports.
	exports := r.Group("/")
	exports.Use(middleware.RequireCapabilities(fallback, access.PermAttendanceReport))
	exports.GET("/api/attendance-report/:endpoint", reports.ExportAttendance)

	// Settings / operator tools.
	settings := r.Group("/")
	settings.Use(middleware.RequireCapabilities(fallback, access.PermSettingsManage))
	settings.GET("/api/integrations/google/url", google.GoogleAuthURL)
	settings.GET("/api/diagnostics/throw", diagnostics.Throw)
}
