package middleware

import (
	"log/slog"
	"slices"

	"hotel-discounts/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets browser clients send and read the request id header
// regardless of what the configured header lists contain.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, requestIDHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, requestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"allow_methods", corsCfg.AllowMethods,
	)
	return cors.New(corsCfg)
}

func withHeader(headers []string, header string) []string {
	if slices.Contains(headers, header) {
		return headers
	}
	return append(slices.Clone(headers), header)
}
