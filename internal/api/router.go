package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/openrelief/disasterhub/internal/app"
	"github.com/openrelief/disasterhub/internal/cache"
	"github.com/openrelief/disasterhub/internal/handlers"
	"github.com/openrelief/disasterhub/internal/middleware"
	"github.com/openrelief/disasterhub/internal/realtime"
	"github.com/openrelief/disasterhub/internal/scraper"
	"github.com/openrelief/disasterhub/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, hub *realtime.Hub, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if hub == nil {
		return nil, fmt.Errorf("realtime hub must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.NoRoute(middleware.NotFoundHandler)

	// Health endpoint (public)
	r.GET("/health", handlers.Health())

	if cfg.Monitoring.Prometheus.Enabled {
		r.GET(cfg.Monitoring.Prometheus.Endpoint, gin.WrapH(promhttp.Handler()))
	}

	store := cache.NewDatabaseStore(db, cache.WithTTL(cfg.Cache.TTL))

	fetcher := scraper.New(
		scraper.WithURL(cfg.Scraper.URL),
		scraper.WithTimeout(cfg.Scraper.Timeout),
	)

	disasterSvc, err := services.NewDisasterService(db, hub)
	if err != nil {
		return nil, err
	}
	resourceSvc, err := services.NewResourceService(db)
	if err != nil {
		return nil, err
	}
	updateSvc, err := services.NewUpdateService(store, fetcher)
	if err != nil {
		return nil, err
	}

	disasterHandler := handlers.NewDisasterHandler(disasterSvc)
	resourceHandler := handlers.NewResourceHandler(resourceSvc)
	updateHandler := handlers.NewOfficialUpdateHandler(updateSvc)
	realtimeHandler := handlers.NewRealtimeHandler(hub)

	disasters := r.Group("/disasters")
	{
		disasters.POST("", disasterHandler.Create)
		disasters.GET("", disasterHandler.List)
		disasters.GET("/:id/social-media", handlers.SocialMedia)
		disasters.GET("/:id/resources", resourceHandler.Nearby)
		disasters.GET("/:id/official-updates", updateHandler.Get)
		disasters.POST("/:id/verify-image", handlers.VerifyImage)
	}

	r.POST("/geocode", handlers.Geocode)
	r.GET("/ws", realtimeHandler.Stream)

	return r, nil
}
