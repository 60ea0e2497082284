package http

import (
	"net/http"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/config"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

// Handlers groups everything the router mounts. The catalog resources all
// share the generic handler; the flagship screens carry their own.
type Handlers struct {
	Auth          *AuthHandler
	Bikes         *BikeHandler
	Brands        *ResourceHandler[domain.Brand]
	Models        *ResourceHandler[domain.BikeModel]
	Categories    *ResourceHandler[domain.Category]
	VehicleTypes  *ResourceHandler[domain.VehicleType]
	Cities        *ResourceHandler[domain.City]
	Stores        *ResourceHandler[domain.Store]
	Offers        *ResourceHandler[domain.Offer]
	PriceLists    *ResourceHandler[domain.PriceListEntry]
	ServiceOrders *ResourceHandler[domain.ServiceOrder]
	SpareParts    *ResourceHandler[domain.SparePart]
	Batteries     *ResourceHandler[domain.Battery]
	Pricing       *PricingHandler
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	authService *services.AuthService,
	logger ports.LoggerPort,
	handlers Handlers,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)

		authProtected := auth.Group("")
		authProtected.Use(AuthMiddleware(tokenService, authService, logger))
		{
			authProtected.POST("/logout", handlers.Auth.Logout)
			authProtected.GET("/me", handlers.Auth.Me)
		}
	}

	protected := router.Group("")
	protected.Use(AuthMiddleware(tokenService, authService, logger))

	// Bikes routes
	bikes := protected.Group("/bikes")
	{
		bikes.GET("", handlers.Bikes.List)
		bikes.GET("/references", handlers.Bikes.References)
		bikes.GET("/:id", handlers.Bikes.Get)
		bikes.POST("", handlers.Bikes.Create)
		bikes.PUT("/:id", handlers.Bikes.Update)
		bikes.DELETE("/:id", handlers.Bikes.Delete)
		bikes.PATCH("/:id/toggle-status", handlers.Bikes.ToggleStatus)
	}

	// Catalog routes
	handlers.Brands.Register(protected.Group("/brands"))
	handlers.Models.Register(protected.Group("/models"))
	handlers.Categories.Register(protected.Group("/categories"))
	handlers.VehicleTypes.Register(protected.Group("/vehicle-types"))

	// Location routes
	handlers.Cities.Register(protected.Group("/cities"))
	handlers.Stores.Register(protected.Group("/stores"))

	// Commerce routes
	handlers.Offers.Register(protected.Group("/offers"))
	handlers.PriceLists.Register(protected.Group("/price-lists"))

	// Workshop routes
	handlers.ServiceOrders.Register(protected.Group("/service-orders"))
	handlers.SpareParts.Register(protected.Group("/spare-parts"))
	handlers.Batteries.Register(protected.Group("/batteries"))

	// Pricing preview
	protected.POST("/pricing/preview", handlers.Pricing.Preview)

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
