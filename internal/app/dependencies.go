package app

import (
	"math/rand/v2"
	"time"

	"github.com/avc/analytics-dashboard/internal/apiclient"
	"github.com/avc/analytics-dashboard/internal/config"
	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/handlers"
	"github.com/avc/analytics-dashboard/internal/mockapi"
	"github.com/avc/analytics-dashboard/internal/repository/memory"
	"github.com/avc/analytics-dashboard/internal/service"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/avc/analytics-dashboard/internal/view"
	"github.com/avc/analytics-dashboard/internal/worker"
	"go.uber.org/zap"
)

// repositories содержит хранилища данных симулятора
type repositories struct {
	order        domain.OrderRepository
	notification domain.NotificationRepository
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	simulator *mockapi.Handler
	store     *handlers.StoreHandler
	live      *handlers.LiveHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	client     *apiclient.Client
	store      *store.Store
	services   *service.Services
	handlers   *handlerSet
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) *dependencies {
	now := time.Now
	seed := uint64(now().UnixNano())

	// Создание репозиториев
	repos := &repositories{
		order:        memory.NewOrderRepository(memory.SeedOrders(now()), now),
		notification: memory.NewNotificationRepository(memory.SeedNotifications(now()), now),
	}

	// Симулятор API и клиент к нему
	simulator := mockapi.NewHandler(
		repos.order,
		repos.notification,
		mockapi.NewDashboard(rand.New(rand.NewPCG(seed, 1))),
		rand.New(rand.NewPCG(seed, 2)),
		now,
		logger.Named("mockapi"),
	)
	client := apiclient.NewWithRand(simulator.Server(), apiclient.Config{
		Transport: apiclient.TransportConfig{
			MinDelay:    cfg.SimulatorMinDelay,
			MaxDelay:    cfg.SimulatorMaxDelay,
			FailureRate: cfg.SimulatorFailureRate,
		},
		RealTimeInterval:        cfg.RealTimeInterval,
		RealTimePushProbability: cfg.RealTimePushProbability,
	}, rand.New(rand.NewPCG(seed, 3)), logger.Named("apiclient"))

	st := store.New(store.WithClock(now), store.WithLogger(logger.Named("store")))

	// Создание сервисов
	svcs := service.NewServices(
		service.NewDashboardService(st, client, logger),
		service.NewOrdersService(st, client, cfg.OrdersPageLimit, logger),
		service.NewNotificationsService(st, client, logger),
		logger,
	)

	// Создание worker pool
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		svcs.Dashboard,
		cfg.MetricsRefreshInterval,
		logger.Named("worker"),
	)

	// Создание handlers
	hdlrs := &handlerSet{
		simulator: simulator,
		store: handlers.NewStoreHandler(
			st,
			svcs.Dashboard,
			svcs.Orders,
			svcs.Notifications,
			workerPool,
			view.NewControls(),
			logger,
		),
		live:   handlers.NewLiveHandler(st, logger),
		health: handlers.NewHealthHandler(st, logger),
	}

	return &dependencies{
		repos:      repos,
		client:     client,
		store:      st,
		services:   svcs,
		handlers:   hdlrs,
		workerPool: workerPool,
	}
}
