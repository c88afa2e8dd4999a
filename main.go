package main

import (
	"time"

	"hr-portal/config"
	routes "hr-portal/internal/app/http"
	"hr-portal/internal/domain/session"
	"hr-portal/internal/infra/backend"
	"hr-portal/internal/infra/completion"
	"hr-portal/internal/infra/logingest"
	"hr-portal/internal/infra/sessions"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg := config.LoadEnv()

	store := sessions.NewStore(cfg.SessionSecret)
	monitor := session.NewMonitor(store.SignOut)
	defer monitor.Close()

	r := gin.New()
	r.Use(gin.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Cfg:         cfg,
		Store:       store,
		Monitor:     monitor,
		Backend:     backend.NewClient(cfg.BackendAPIURL),
		Completions: completion.NewClient(cfg.CompletionAPIURL, cfg.CompletionAPIKey),
		Ingest:      logingest.NewClient(cfg.LogIngestURL, cfg.LogIngestToken),
	})

	r.Run(":" + cfg.Port)
}
