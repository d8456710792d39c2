package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Services объединяет сервисы всех слайсов
type Services struct {
	Dashboard     *DashboardService
	Orders        *OrdersService
	Notifications *NotificationsService
	logger        *zap.Logger
}

// NewServices создает новый Services
func NewServices(
	dashboard *DashboardService,
	orders *OrdersService,
	notifications *NotificationsService,
	logger *zap.Logger,
) *Services {
	return &Services{
		Dashboard:     dashboard,
		Orders:        orders,
		Notifications: notifications,
		logger:        logger,
	}
}

// Bootstrap параллельно загружает дашборд, первую страницу заказов,
// статистику и уведомления. Ошибка одной загрузки не отменяет остальные,
// возвращается первая из ошибок.
func (s *Services) Bootstrap(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		_, err := s.Dashboard.FetchDashboardData(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Orders.FetchOrders(ctx, 1, 0)
		return err
	})
	g.Go(func() error {
		_, err := s.Orders.FetchOrderStats(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Notifications.FetchNotifications(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("bootstrap finished with errors", zap.Error(err))
		return err
	}

	s.logger.Info("bootstrap completed")
	return nil
}
