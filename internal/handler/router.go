package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-discounts/internal/handler/api"
	"hotel-discounts/internal/handler/middleware"
	"hotel-discounts/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Pricing      *api.PricingHandler
	Discounts    *api.DiscountHandler
	Applications *api.ApplicationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodPost, Path: "/quote", Handler: h.Pricing.Quote},
			{Method: http.MethodPost, Path: "/promo-codes/validate", Handler: h.Pricing.ValidatePromoCode},
		})

		addRoutes(apiGroup.Group("/discounts"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Discounts.List},
			{Method: http.MethodPost, Path: "", Handler: h.Discounts.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Discounts.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Discounts.Update},
			{Method: http.MethodPatch, Path: "/:id/enabled", Handler: h.Discounts.SetEnabled},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Discounts.Delete},
		})

		addRoutes(apiGroup.Group("/discount-applications"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Applications.Record},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Applications.Remove},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
