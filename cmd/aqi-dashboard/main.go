package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"aqi-dashboard/configs"
	"aqi-dashboard/internal/application/controller"
	appmw "aqi-dashboard/internal/application/middleware"
	"aqi-dashboard/internal/application/schedule"
	"aqi-dashboard/internal/application/views"
	"aqi-dashboard/internal/domain/entity"
	apigw "aqi-dashboard/internal/domain/gateway/api"
	"aqi-dashboard/internal/domain/gateway/cache"
	"aqi-dashboard/internal/domain/usecase/airquality"
	"aqi-dashboard/internal/domain/usecase/health"
	httpclient "aqi-dashboard/pkg/http"
	"aqi-dashboard/pkg/log"
	"aqi-dashboard/pkg/msg"
	"aqi-dashboard/pkg/redis"
	"aqi-dashboard/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	if err := views.LoadTemplates(); err != nil {
		log.Fatalf("Failed to load dashboard templates: %v", err)
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	appmw.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	api := e.Group(contextPath)

	// Init AQIGateway
	aqiGateway := apigw.NewAQIGateway(
		resource.GetString("app.upstream.base-url"),
		configs.Env.AQIAPIToken,
		httpclient.ClientOptions{
			ReadTimeout:       resource.GetDuration("app.upstream.read-timeout"),
			ConnectionTimeout: resource.GetDuration("app.upstream.connection-timeout"),
		},
	)

	// Init SnapshotStore
	freshness := resource.GetDuration("app.dashboard.freshness-window")

	var redisClient *redis.Client
	var store cache.SnapshotStore
	if resource.GetString("app.cache.backend") == "redis" {
		redisConfig := redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")).
			WithCacheTTL(cache.SnapshotCacheName, freshness)
		redisClient = redis.NewClient(redisConfig)
		store = cache.NewRedisSnapshotStore(redisClient)
	} else {
		store = cache.NewMemorySnapshotStore()
	}

	// Init UseCase
	aqiUseCase := airquality.NewAirQualityUseCase(entity.Cities(), freshness, aqiGateway, store)
	healthUseCase := health.NewHealthUseCase(store)

	// Init Controller
	dashboardController := controller.NewDashboardController(api, contextPath, aqiUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	dashboardController.InitDashboardRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	if resource.GetBool("app.dashboard.refresh.enabled") {
		refreshScheduler := schedule.NewRefreshScheduler(
			aqiUseCase,
			redisClient,
			resource.GetString("app.dashboard.refresh.cron"),
			resource.GetInt("app.dashboard.refresh.lock-ttl"),
			resource.GetInt("app.dashboard.refresh.lock-refresh-interval"),
		)
		refreshScheduler.InitRefreshScheduleTasks(context.Background())
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
