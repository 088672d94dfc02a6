package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oottupura/oottupura-api/internal/config"
	"github.com/oottupura/oottupura-api/internal/presentation/http/handler"
	"github.com/oottupura/oottupura-api/internal/presentation/http/middleware"
	"github.com/oottupura/oottupura-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Report *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerReportRoutes(protected, h)
	}

	return router
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/profit-loss", h.Report.GetProfitLoss)
		reports.GET("/sales", h.Report.GetSalesReport)
		reports.GET("/cook-performance", h.Report.GetCookPerformance)
		reports.GET("/delivery-settlement", h.Report.GetDeliverySettlement)
		reports.GET("/referrals", h.Report.GetReferralReport)
		reports.GET("/vehicle-rents", h.Report.GetVehicleRentReport)
	}
}
