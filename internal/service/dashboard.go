package service

import (
	"context"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardService выполняет асинхронные операции дашборда
type DashboardService struct {
	dispatcher Dispatcher
	api        domain.DashboardAPI
	logger     *zap.Logger
}

// NewDashboardService создает новый DashboardService
func NewDashboardService(dispatcher Dispatcher, api domain.DashboardAPI, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		dispatcher: dispatcher,
		api:        api,
		logger:     logger,
	}
}

// FetchDashboardData загружает полный снимок дашборда
func (s *DashboardService) FetchDashboardData(ctx context.Context) (domain.DashboardData, error) {
	return execute(ctx, s.dispatcher, s.logger, operation[domain.DashboardData]{
		service:   "dashboard",
		name:      "fetch dashboard data",
		fallback:  "Failed to fetch dashboard data",
		requestID: uuid.NewString(),
		action: func(o store.Outcome[domain.DashboardData]) store.Action {
			return store.FetchDashboardData{Outcome: o}
		},
		call: deref(s.api.GetDashboardData),
	})
}

// FetchMetrics загружает текущие метрики
func (s *DashboardService) FetchMetrics(ctx context.Context) (domain.Metrics, error) {
	return execute(ctx, s.dispatcher, s.logger, operation[domain.Metrics]{
		service:  "dashboard",
		name:     "fetch metrics",
		fallback: "Failed to fetch metrics",
		action: func(o store.Outcome[domain.Metrics]) store.Action {
			return store.FetchMetrics{Outcome: o}
		},
		call: deref(s.api.GetMetrics),
	})
}

// RefreshMetrics запрашивает обновление метрик
func (s *DashboardService) RefreshMetrics(ctx context.Context) (domain.Metrics, error) {
	return execute(ctx, s.dispatcher, s.logger, operation[domain.Metrics]{
		service:  "dashboard",
		name:     "refresh metrics",
		fallback: "Failed to refresh metrics",
		action: func(o store.Outcome[domain.Metrics]) store.Action {
			return store.RefreshMetrics{Outcome: o}
		},
		call: deref(s.api.RefreshMetrics),
	})
}
