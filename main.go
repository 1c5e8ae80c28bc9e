// @title Fixora API
// @version 1.0
// @description Local service marketplace: catalog discovery, sessions and role dashboards
// @host localhost:5000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/bookings"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/auth_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/dashboard_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/health_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/service_controller"
	_ "github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/docs"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/routes/marketplace_routes"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// .env is loaded by init, after the package-level config was read
	config.App = config.Load()

	if err := config.InitLogger(config.App.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer config.SyncLogger()

	// ✅ Initialize session service
	if config.App.JWTSecret == "" {
		config.Log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitSessionService(config.App.JWTSecret, config.App.JWTExpiry); err != nil {
		config.Log.Fatalf("Failed to initialize session service: %v", err)
	}
	sessions := services.GetSessionService()
	config.Log.Info("✅ Session service initialized")

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis backs the shared catalog cache and the rate limiter
	var (
		kv   catalog.KV
		rate middleware.RateStore
	)
	healthChecks := map[string]health_controller.Check{
		"postgres": config.DB.Ping,
	}
	if err := config.ConnectRedis(); err != nil {
		config.Log.Warnf("⚠️  Running without Redis: %v", err)
	} else {
		defer config.CloseRedis()
		kv = catalog.RedisKV{Client: config.RedisClient}
		rate = middleware.RedisRateStore{Client: config.RedisClient}
		healthChecks["redis"] = func(ctx context.Context) error {
			return config.RedisClient.Ping(ctx).Err()
		}
	}

	// Catalog: local store, or a read-only upstream when configured
	store := catalog.NewGormStore(config.Gorm)
	var (
		upstream catalog.Source = store
		writable catalog.Store  = store
	)
	if url := config.App.CatalogUpstreamURL; url != "" {
		upstream = catalog.NewHTTPSource(url, nil)
		writable = nil
		config.Log.Infof("✅ Catalog mirrors upstream %s (read-only)", url)
	}
	cached := catalog.NewCachedSource(catalog.WithDemoFallback(upstream), kv, config.App.CatalogCacheTTL)

	serviceDeps := service_controller.Deps{
		Catalog:      cached,
		Store:        writable,
		Cache:        cached,
		ItemsPerPage: config.App.ItemsPerPage,
	}

	// Initialize Cloudinary service (optional)
	if config.App.CloudinaryName != "" {
		images, err := services.NewCloudinaryService(config.App.CloudinaryName, config.App.CloudinaryKey, config.App.CloudinarySecret)
		if err != nil {
			config.Log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		serviceDeps.Images = images
		config.Log.Info("✅ Cloudinary initialized")
	}
	service_controller.Init(serviceDeps)

	activity := services.NewGormActivityRecorder(config.Gorm)

	auth_controller.Init(auth_controller.Deps{
		Accounts:    services.NewAuthService(services.NewGormUserStore(config.Gorm)),
		Sessions:    sessions,
		LoginEvents: config.DB,
	})

	dashboard_controller.Init(dashboard_controller.Deps{
		Catalog:  cached,
		Store:    writable,
		Ledger:   bookings.NewLedger(bookings.SeedBookings()),
		Activity: activity,
	})

	health_controller.Init(healthChecks)

	corsCfg := cors.Config{
		AllowOrigins:     config.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", middleware.RequestIDHeader},
	}

	if config.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(config.Log))
	router.Use(cors.New(corsCfg))

	router.GET("/", health_controller.Root)
	router.GET("/healthz", health_controller.Healthz)

	// Register API routes
	api := router.Group("/api/v1")
	guards := marketplace_routes.Guards{
		Sessions: sessions,
		Rate:     rate,
		Activity: activity,
	}
	marketplace_routes.SetupServiceRoutes(api, guards)
	marketplace_routes.SetupAuthRoutes(api, guards)
	marketplace_routes.SetupDashboardRoutes(api, guards)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	config.Log.Infof("🚀 Server is running on http://localhost:%s", config.App.Port)
	if err := router.Run(":" + config.App.Port); err != nil {
		config.Log.Fatalf("Server stopped: %v", err)
	}
}
