package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"blockfix-backend/internal/mw"
)

// RouterConfig tunes the router middleware.
type RouterConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration
}

// NewRouter creates and configures the Gin router.
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// Dashboard reads are cached briefly; everything else hits the store.
	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/properties", handler.ListProperties)
		api.POST("/properties", handler.CreateProperty)
		api.GET("/properties/:id", handler.GetProperty)

		api.GET("/maintenance", handler.ListMaintenance)
		api.POST("/maintenance", handler.CreateMaintenance)
		api.PATCH("/maintenance/:id", handler.UpdateMaintenance)
		api.DELETE("/maintenance/:id", handler.DeleteMaintenance)
		api.POST("/maintenance/:id/advance", handler.AdvanceMaintenance)
		api.POST("/maintenance/:id/convert", handler.ConvertMaintenance)

		api.GET("/contractors", handler.ListContractors)
		api.POST("/contractors", handler.CreateContractor)
		api.PATCH("/contractors/:id", handler.UpdateContractor)
		api.DELETE("/contractors/:id", handler.DeleteContractor)

		api.GET("/reports", handler.ListReports)
		api.POST("/reports", handler.GenerateReport)
		api.DELETE("/reports/:id", handler.DeleteReport)
		api.GET("/reports/:id/download", handler.DownloadReport)

		api.GET("/dashboard/stats", caching, handler.DashboardStats)
		api.GET("/dashboard/trends", caching, handler.DashboardTrends)
		api.GET("/dashboard/distribution", caching, handler.DashboardDistribution)

		api.GET("/settings", handler.GetSettings)
		api.PUT("/settings", handler.UpdateSettings)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
