package service

import (
	"context"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPageLimit используется, когда размер страницы не задан
const DefaultPageLimit = 10

// OrdersService выполняет асинхронные операции над заказами
type OrdersService struct {
	dispatcher Dispatcher
	api        domain.OrdersAPI
	pageLimit  int
	logger     *zap.Logger
}

// NewOrdersService создает новый OrdersService
func NewOrdersService(dispatcher Dispatcher, api domain.OrdersAPI, pageLimit int, logger *zap.Logger) *OrdersService {
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}
	return &OrdersService{
		dispatcher: dispatcher,
		api:        api,
		pageLimit:  pageLimit,
		logger:     logger,
	}
}

func ordersOp[T any](name, fallback string, action func(store.Outcome[T]) store.Action, call func(context.Context) (T, error)) operation[T] {
	return operation[T]{
		service:  "orders",
		name:     name,
		fallback: fallback,
		action:   action,
		call:     call,
	}
}

// FetchOrders загружает страницу заказов. limit <= 0 означает размер по умолчанию.
func (s *OrdersService) FetchOrders(ctx context.Context, page, limit int) (domain.OrdersPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.pageLimit
	}

	op := ordersOp("fetch orders", "Failed to fetch orders",
		func(o store.Outcome[domain.OrdersPage]) store.Action { return store.FetchOrders{Outcome: o} },
		deref(func(ctx context.Context) (*domain.OrdersPage, error) {
			return s.api.GetOrders(ctx, page, limit)
		}),
	)
	op.requestID = uuid.NewString()
	return execute(ctx, s.dispatcher, s.logger, op)
}

// FetchOrder загружает заказ в selectedOrder
func (s *OrdersService) FetchOrder(ctx context.Context, id string) (domain.Order, error) {
	return execute(ctx, s.dispatcher, s.logger, ordersOp("fetch order", "Failed to fetch order",
		func(o store.Outcome[domain.Order]) store.Action { return store.FetchOrder{Outcome: o} },
		deref(func(ctx context.Context) (*domain.Order, error) {
			return s.api.GetOrder(ctx, id)
		}),
	))
}

// CreateOrder создает заказ
func (s *OrdersService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	return execute(ctx, s.dispatcher, s.logger, ordersOp("create order", "Failed to create order",
		func(o store.Outcome[domain.Order]) store.Action { return store.CreateOrder{Outcome: o} },
		deref(func(ctx context.Context) (*domain.Order, error) {
			return s.api.CreateOrder(ctx, req)
		}),
	))
}

// UpdateOrder частично обновляет заказ
func (s *OrdersService) UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error) {
	return execute(ctx, s.dispatcher, s.logger, ordersOp("update order", "Failed to update order",
		func(o store.Outcome[domain.Order]) store.Action { return store.UpdateOrder{Outcome: o} },
		deref(func(ctx context.Context) (*domain.Order, error) {
			return s.api.UpdateOrder(ctx, id, req)
		}),
	))
}

// UpdateOrderStatus меняет статус заказа
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	return execute(ctx, s.dispatcher, s.logger, ordersOp("update order status", "Failed to update order status",
		func(o store.Outcome[domain.Order]) store.Action { return store.UpdateOrderStatus{Outcome: o} },
		deref(func(ctx context.Context) (*domain.Order, error) {
			return s.api.UpdateOrderStatus(ctx, id, status)
		}),
	))
}

// DeleteOrder удаляет заказ
func (s *OrdersService) DeleteOrder(ctx context.Context, id string) error {
	_, err := execute(ctx, s.dispatcher, s.logger, ordersOp("delete order", "Failed to delete order",
		func(o store.Outcome[string]) store.Action { return store.DeleteOrder{Outcome: o} },
		func(ctx context.Context) (string, error) {
			if err := s.api.DeleteOrder(ctx, id); err != nil {
				return "", err
			}
			return id, nil
		},
	))
	return err
}

// FetchOrderStats загружает статистику заказов
func (s *OrdersService) FetchOrderStats(ctx context.Context) (domain.OrderStats, error) {
	return execute(ctx, s.dispatcher, s.logger, ordersOp("fetch order stats", "Failed to fetch order stats",
		func(o store.Outcome[domain.OrderStats]) store.Action { return store.FetchOrderStats{Outcome: o} },
		deref(s.api.GetOrderStats),
	))
}
