package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/analytics-dashboard/internal/config"
	"github.com/avc/analytics-dashboard/internal/service"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/avc/analytics-dashboard/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	store      *store.Store
	services   *service.Services
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger), nil
}

func newApp(cfg *config.Config, logger *zap.Logger) *App {
	// Инициализация зависимостей
	deps := initDependencies(cfg, logger)

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		store:      deps.store,
		services:   deps.services,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
	}
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Начальная загрузка идет в фоне, ошибки попадают в слайсы хранилища
	go func() {
		if err := a.services.Bootstrap(ctx); err != nil {
			a.logger.Warn("initial load incomplete", zap.Error(err))
		}
	}()

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
