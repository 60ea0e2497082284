package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/backend"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/handler/http"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/redis"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/config"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"

	redisClient "github.com/redis/go-redis/v9"
)

const (
	sessionTTL     = 24 * time.Hour
	warmerInterval = 10 * time.Minute
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router

	warmerStop chan struct{}
	references []func(ctx context.Context) error
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)
	sessionStore := redis.NewSessionStore(redisConn, sessionTTL)

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Backend client
	backendClient := backend.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.TimeoutParsed(),
		cfg.Backend.RetriesInt(),
		loggerAdapter,
	)
	authClient := backend.NewAuthClient(backendClient, loggerAdapter)

	// Repositories
	bikeRepo := backend.NewRepository[domain.Bike](backendClient, "bikes", loggerAdapter)
	brandRepo := backend.NewRepository[domain.Brand](backendClient, "brands", loggerAdapter)
	modelRepo := backend.NewRepository[domain.BikeModel](backendClient, "models", loggerAdapter)
	categoryRepo := backend.NewRepository[domain.Category](backendClient, "categories", loggerAdapter)
	vehicleTypeRepo := backend.NewRepository[domain.VehicleType](backendClient, "vehicle-types", loggerAdapter)
	cityRepo := backend.NewRepository[domain.City](backendClient, "cities", loggerAdapter)
	storeRepo := backend.NewRepository[domain.Store](backendClient, "stores", loggerAdapter)
	offerRepo := backend.NewRepository[domain.Offer](backendClient, "offers", loggerAdapter)
	priceListRepo := backend.NewRepository[domain.PriceListEntry](backendClient, "price-lists", loggerAdapter)
	serviceOrderRepo := backend.NewRepository[domain.ServiceOrder](backendClient, "service-orders", loggerAdapter)
	sparePartRepo := backend.NewRepository[domain.SparePart](backendClient, "spare-parts", loggerAdapter)
	batteryRepo := backend.NewRepository[domain.Battery](backendClient, "batteries", loggerAdapter)

	// Services
	bikeService := services.NewMediaService[domain.Bike](bikeRepo, "bikes", loggerAdapter, cacheAdapter)
	brandService := services.NewMediaService[domain.Brand](brandRepo, "brands", loggerAdapter, cacheAdapter)
	modelService := services.NewMediaService[domain.BikeModel](modelRepo, "models", loggerAdapter, cacheAdapter)
	categoryService := services.NewResourceService[domain.Category](categoryRepo, "categories", loggerAdapter, cacheAdapter)
	vehicleTypeService := services.NewResourceService[domain.VehicleType](vehicleTypeRepo, "vehicle-types", loggerAdapter, cacheAdapter)
	cityService := services.NewMediaService[domain.City](cityRepo, "cities", loggerAdapter, cacheAdapter)
	storeService := services.NewMediaService[domain.Store](storeRepo, "stores", loggerAdapter, cacheAdapter)
	offerService := services.NewResourceService[domain.Offer](offerRepo, "offers", loggerAdapter, cacheAdapter)
	priceListService := services.NewPriceListService(priceListRepo, loggerAdapter, cacheAdapter)
	serviceOrderService := services.NewMediaService[domain.ServiceOrder](serviceOrderRepo, "service-orders", loggerAdapter, cacheAdapter)
	sparePartService := services.NewResourceService[domain.SparePart](sparePartRepo, "spare-parts", loggerAdapter, cacheAdapter)
	batteryService := services.NewResourceService[domain.Battery](batteryRepo, "batteries", loggerAdapter, cacheAdapter)

	pricingService := services.NewPricingService(priceListService, loggerAdapter)
	imageResolver := services.NewImageResolver(cfg.Uploads.BaseURL)

	// Auth
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.DurationParsed(), loggerAdapter)
	authService := services.NewAuthService(authClient, sessionStore, tokenService, loggerAdapter)

	// HTTP Handlers
	handlers := http.Handlers{
		Auth:  http.NewAuthHandler(authService, loggerAdapter, metrics),
		Bikes: http.NewBikeHandler(bikeService, imageResolver, loggerAdapter, metrics),
		Brands: http.NewMediaHandler[domain.Brand](
			brandService, "brands", []string{"country", "is_active"},
			http.BrandValidator(), imageResolver, services.ImagesBrands, loggerAdapter, metrics),
		Models: http.NewMediaHandler[domain.BikeModel](
			modelService, "models", []string{"brand_id", "is_active"},
			http.ModelValidator(), imageResolver, services.ImagesModels, loggerAdapter, metrics),
		Categories: http.NewResourceHandler[domain.Category](
			categoryService, "categories", []string{"is_active"},
			http.CategoryValidator(), loggerAdapter, metrics),
		VehicleTypes: http.NewResourceHandler[domain.VehicleType](
			vehicleTypeService, "vehicle-types", []string{"is_active"},
			http.VehicleTypeValidator(), loggerAdapter, metrics),
		Cities: http.NewMediaHandler[domain.City](
			cityService, "cities", []string{"region", "is_active"},
			http.CityValidator(), imageResolver, services.ImagesCities, loggerAdapter, metrics),
		Stores: http.NewMediaHandler[domain.Store](
			storeService, "stores", []string{"city_id", "is_active"},
			http.StoreValidator(), imageResolver, services.ImagesStores, loggerAdapter, metrics),
		Offers:     http.NewOfferHandler(offerService, loggerAdapter, metrics),
		PriceLists: http.NewPriceListHandler(priceListService, loggerAdapter, metrics),
		ServiceOrders: http.NewMediaHandler[domain.ServiceOrder](
			serviceOrderService, "service-orders", []string{"bike_id", "store_id", "status", "is_active"},
			nil, imageResolver, services.ImagesServiceOrders, loggerAdapter, metrics),
		SpareParts: http.NewResourceHandler[domain.SparePart](
			sparePartService, "spare-parts", []string{"is_active"},
			nil, loggerAdapter, metrics),
		Batteries: http.NewResourceHandler[domain.Battery](
			batteryService, "batteries", []string{"bike_id", "is_active"},
			nil, loggerAdapter, metrics),
		Pricing: http.NewPricingHandler(pricingService, loggerAdapter, metrics),
	}

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		authService,
		loggerAdapter,
		handlers,
	)
	if err != nil {
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	app := &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
		warmerStop:   make(chan struct{}),
	}

	// The warmer keeps the dropdown reference data hot. It needs its own
	// backend credentials, so it only runs when a service token is set.
	if cfg.Backend.ServiceToken != "" {
		app.references = []func(ctx context.Context) error{
			func(ctx context.Context) error { _, err := brandService.References(ctx); return err },
			func(ctx context.Context) error { _, err := modelService.References(ctx); return err },
			func(ctx context.Context) error { _, err := categoryService.References(ctx); return err },
			func(ctx context.Context) error { _, err := vehicleTypeService.References(ctx); return err },
			func(ctx context.Context) error { _, err := cityService.References(ctx); return err },
			func(ctx context.Context) error { _, err := storeService.References(ctx); return err },
		}
		go app.warmReferences(cfg.Backend.ServiceToken)
	}

	return app, nil
}

func (a *App) warmReferences(serviceToken string) {
	ticker := time.NewTicker(warmerInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		ctx = backend.WithToken(ctx, serviceToken)
		for _, warm := range a.references {
			if err := warm(ctx); err != nil {
				a.Logger.Warn("Reference warmup failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
		cancel()

		select {
		case <-ticker.C:
		case <-a.warmerStop:
			return
		}
	}
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	close(a.warmerStop)

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
