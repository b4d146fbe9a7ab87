package middleware

import (
	"log/slog"
	"slices"

	"parkreserve/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	// Browser clients send Idempotency-Key on reservation creation; it has
	// to survive preflight whatever the deployment configures.
	allowHeaders := cfg.AllowHeaders
	if !slices.Contains(allowHeaders, "Idempotency-Key") {
		allowHeaders = append(slices.Clone(allowHeaders), "Idempotency-Key")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
