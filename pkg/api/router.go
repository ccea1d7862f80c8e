package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chromactl/pkg/api/handlers"
	"chromactl/pkg/db"
	"chromactl/pkg/profile"
	"chromactl/pkg/registry"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine   *gin.Engine
	registry *registry.Registry
	profiles *profile.Store
	history  db.HistoryStore
}

// NewRouter creates a new API router. history may be nil when the apply
// history database is not configured.
func NewRouter(reg *registry.Registry, profiles *profile.Store, history db.HistoryStore) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:   engine,
		registry: reg,
		profiles: profiles,
		history:  history,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.registry)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Devices and scanning
		devicesHandler := handlers.NewDevicesHandler(r.registry)
		v1.POST("/scan", devicesHandler.Scan)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:key", devicesHandler.GetDevice)
		}

		// Settings application
		controlHandler := handlers.NewControlHandler(r.registry, r.history)
		v1.POST("/apply", controlHandler.Apply)
		v1.POST("/apply-all", controlHandler.ApplyAll)
		v1.POST("/off", controlHandler.TurnOff)
		v1.GET("/effects", controlHandler.Effects)
		v1.GET("/history", controlHandler.History)

		// Profiles
		profilesHandler := handlers.NewProfilesHandler(r.profiles, r.registry)
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", profilesHandler.ListProfiles)
			profiles.POST("", profilesHandler.SaveProfile)
			profiles.POST("/import", profilesHandler.ImportProfiles)
			profiles.POST("/export", profilesHandler.ExportProfiles)
			profiles.POST("/prune", profilesHandler.PruneProfiles)
			profiles.GET("/:name", profilesHandler.GetProfile)
			profiles.DELETE("/:name", profilesHandler.DeleteProfile)
			profiles.POST("/:name/apply", profilesHandler.ApplyProfile)
		}
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
