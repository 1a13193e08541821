package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dashboard-api/configs"
	_ "dashboard-api/docs"
	"dashboard-api/internal/application/controller"
	"dashboard-api/internal/application/middleware"
	"dashboard-api/internal/application/processor"
	"dashboard-api/internal/application/schedule"
	apigw "dashboard-api/internal/domain/gateway/api"
	"dashboard-api/internal/domain/gateway/cache"
	"dashboard-api/internal/domain/gateway/db"
	"dashboard-api/internal/domain/gateway/queue"
	"dashboard-api/internal/domain/usecase/health"
	"dashboard-api/internal/domain/usecase/weather"
	"dashboard-api/internal/infra/aws"
	gormdb "dashboard-api/internal/infra/database/gorm"
	pkghttp "dashboard-api/pkg/http"
	"dashboard-api/pkg/log"
	"dashboard-api/pkg/msg"
	"dashboard-api/pkg/redis"
	"dashboard-api/pkg/resource"
	"dashboard-api/pkg/sqs"
)

// @title Weather Dashboard API
// @version 1.0
// @description Backend for the home weather dashboard: normalized Environment-Canada-style weather data with retry, caching and refresh telemetry.
// @BasePath /dashboard
func main() {
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init upstream gateway
	gateway := buildWeatherGateway()

	// Init Store
	maxAttempts := resource.GetInt("app.weather.max-attempts")
	store := weather.NewStore(maxAttempts)

	// Init optional components
	snapshotGateway, cacheHealthGateway := buildCacheGateways()
	historyGateway, dbHealthGateway := buildDatabaseGateways()
	queueSender, queueHealthGateway, sqsClient := buildQueueComponents(ctx)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(gateway, store, weather.Config{
		MaxAttempts:  maxAttempts,
		BaseDelay:    resource.GetDuration("app.weather.base-delay"),
		CommandQueue: resource.GetString("app.queue.command-queue"),
		WarningQueue: resource.GetString("app.queue.warning-queue"),
		HistoryKeep:  resource.GetInt("app.history.keep"),
	}, snapshotGateway, historyGateway, queueSender)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway, queueHealthGateway)

	// Pre-seed from cache and keep the cache in sync with commits
	weatherUseCase.SeedFromCache(ctx)
	go weatherUseCase.WatchSnapshots(ctx)

	// First refresh before the scheduler takes over
	go func() {
		requestID := uuid.New().String()
		if err := weatherUseCase.Refresh(ctx, requestID); err != nil {
			log.Warnf("Initial weather refresh failed (request_id: %s): %v", requestID, err)
		}
	}()

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if resource.GetBool("app.schedule.enabled") {
		scheduler := schedule.NewRefreshScheduler(weatherUseCase,
			resource.GetString("app.schedule.cron"),
			resource.GetDuration("app.schedule.refresh-timeout"))
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start refresh scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	// Init queue worker
	startRefreshWorker(ctx, sqsClient, weatherUseCase)

	// Start Routes
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

// buildWeatherGateway assembles the configured source gateway wrapped by the
// rate limiter.
func buildWeatherGateway() apigw.WeatherGateway {
	httpClient := pkghttp.NewHttpClient("", pkghttp.ClientOptions{
		FollowRedirect: true,
		DefaultHeaders: map[string]string{
			"User-Agent": resource.GetString("app.weather.user-agent"),
		},
	})

	timeout := resource.GetDuration("app.weather.timeout")
	proxyTemplates := resource.GetStringSlice("app.weather.proxy-templates")

	var gateway apigw.WeatherGateway
	switch resource.GetString("app.weather.source") {
	case "citypage":
		gateway = apigw.NewCityPageGateway(httpClient, apigw.Source{
			Name:           "citypage",
			PrimaryURL:     resource.GetString("app.weather.citypage-url"),
			ProxyTemplates: proxyTemplates,
			Timeout:        timeout,
		})
	default:
		gateway = apigw.NewGeoMetGateway(httpClient,
			apigw.Source{
				Name:           "geomet",
				PrimaryURL:     resource.GetString("app.weather.geomet-url"),
				ProxyTemplates: proxyTemplates,
				Timeout:        timeout,
			},
			apigw.Source{
				Name:       "aqhi",
				PrimaryURL: resource.GetString("app.weather.aqhi-url"),
				Timeout:    timeout,
			})
	}

	if rps := resource.GetFloat64("app.weather.rate-limit-rps"); rps > 0 {
		burst := resource.GetInt("app.weather.rate-limit-burst")
		if burst < 1 {
			burst = 1
		}
		gateway = apigw.NewRateLimitedGateway(gateway, rps, burst)
	}
	return gateway
}

func buildCacheGateways() (cache.SnapshotGateway, cache.HealthCacheGateway) {
	if !resource.GetBool("app.redis.enabled") {
		return nil, nil
	}

	config := redis.DefaultConfig()
	config.Host = resource.GetString("app.redis.host")
	config.Port = resource.GetInt("app.redis.port")
	config.Password = resource.GetString("app.redis.password")
	config.Database = resource.GetInt("app.redis.database")

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatalf("Failed to create redis client: %v", err)
	}

	snapshotCache := redis.NewCache(client, resource.GetDuration("app.redis.snapshot-ttl"))
	gateway := cache.NewRedisSnapshotGateway(snapshotCache, resource.GetString("app.redis.snapshot-key"))
	return gateway, gateway
}

func buildDatabaseGateways() (db.HistoryGateway, db.HealthDBGateway) {
	if !resource.GetBool("app.db.enabled") {
		return nil, nil
	}

	if err := gormdb.Init(); err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}

	gateway := db.NewGormHistoryGateway(gormdb.Db)
	return gateway, gateway
}

func buildQueueComponents(ctx context.Context) (queue.Sender, queue.HealthGateway, sqs.SQSClient) {
	if !resource.GetBool("app.cloud.enabled") {
		return nil, nil, nil
	}

	if err := aws.Init(ctx); err != nil {
		log.Fatalf("Failed to init AWS configuration: %v", err)
	}

	sqsClient := aws.NewSqsClient()
	sender := aws.NewSQSSenderAdapter(sqsClient)

	healthGateway := queue.NewQueueHealthGateway(sqsClient)
	if name := resource.GetString("app.queue.command-queue"); name != "" {
		healthGateway.RegisterQueue(name)
	}
	if name := resource.GetString("app.queue.warning-queue"); name != "" {
		healthGateway.RegisterQueue(name)
	}

	return sender, healthGateway, sqsClient
}

func startRefreshWorker(ctx context.Context, sqsClient sqs.SQSClient, weatherUseCase weather.UseCase) {
	if sqsClient == nil {
		return
	}

	commandQueue := resource.GetString("app.queue.command-queue")
	if commandQueue == "" {
		return
	}

	refreshProcessor := processor.NewRefreshProcessor(weatherUseCase,
		resource.GetDuration("app.schedule.refresh-timeout"))

	worker, err := sqs.NewWorker(sqsClient, commandQueue, refreshProcessor, &sqs.WorkerConfig{
		MaxNumberOfMessages: int32(resource.GetInt("app.queue.worker.max-messages")),
		WaitTimeSeconds:     int32(resource.GetInt("app.queue.worker.wait-time")),
		PoolSize:            resource.GetInt("app.queue.worker.pool-size"),
	})
	if err != nil {
		log.Errorf("Failed to create refresh worker, remote triggers disabled: %v", err)
		return
	}

	go worker.Start(ctx)
	log.Infof("Refresh command worker started on queue %s", commandQueue)
}
