package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/avc/analytics-dashboard/internal/apiclient"
	"github.com/avc/analytics-dashboard/internal/domain"
	domainmocks "github.com/avc/analytics-dashboard/internal/domain/mocks"
	"github.com/avc/analytics-dashboard/internal/mockapi"
	"github.com/avc/analytics-dashboard/internal/repository/memory"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(
		store.WithClock(func() time.Time { return testNow }),
		store.WithLogger(zaptest.NewLogger(t)),
	)
	t.Cleanup(st.Close)
	return st
}

func TestDashboardService_FetchDashboardData(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewDashboardAPIMock(t)
		svc := NewDashboardService(st, api, zaptest.NewLogger(t))

		data := &domain.DashboardData{
			Metrics:     domain.Metrics{Customers: 1, Orders: 2, Revenue: 3, Growth: 4},
			TopProducts: []domain.Product{{ID: "1", Name: "Shoes"}},
		}
		api.EXPECT().GetDashboardData(mock.Anything).RunAndReturn(func(context.Context) (*domain.DashboardData, error) {
			assert.True(t, st.Dashboard().IsLoading)
			return data, nil
		}).Once()

		got, err := svc.FetchDashboardData(ctx)
		require.NoError(t, err)
		assert.Equal(t, *data, got)

		dashboard := st.Dashboard()
		assert.False(t, dashboard.IsLoading)
		assert.Empty(t, dashboard.Error)
		assert.Equal(t, data.Metrics, dashboard.Metrics)
		assert.Equal(t, data.TopProducts, dashboard.TopProducts)
		require.NotNil(t, dashboard.LastUpdated)
	})

	t.Run("API error", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewDashboardAPIMock(t)
		svc := NewDashboardService(st, api, zaptest.NewLogger(t))
		before := st.Dashboard().Metrics

		api.EXPECT().GetDashboardData(mock.Anything).Return(nil, errors.New("simulated network failure")).Once()

		_, err := svc.FetchDashboardData(ctx)
		require.Error(t, err)

		dashboard := st.Dashboard()
		assert.False(t, dashboard.IsLoading)
		assert.Equal(t, "simulated network failure", dashboard.Error)
		assert.Equal(t, before, dashboard.Metrics)
	})

	t.Run("Empty error message uses fallback", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewDashboardAPIMock(t)
		svc := NewDashboardService(st, api, zaptest.NewLogger(t))

		api.EXPECT().GetDashboardData(mock.Anything).Return(nil, errors.New("")).Once()

		_, err := svc.FetchDashboardData(ctx)
		require.Error(t, err)
		assert.Equal(t, "Failed to fetch dashboard data", st.Dashboard().Error)
	})

	t.Run("Empty response", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewDashboardAPIMock(t)
		svc := NewDashboardService(st, api, zaptest.NewLogger(t))

		api.EXPECT().GetDashboardData(mock.Anything).Return(nil, nil).Once()

		_, err := svc.FetchDashboardData(ctx)
		assert.ErrorIs(t, err, ErrEmptyResponse)
		assert.Equal(t, ErrEmptyResponse.Error(), st.Dashboard().Error)
	})

	t.Run("Closed store", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewDashboardAPIMock(t)
		svc := NewDashboardService(st, api, zaptest.NewLogger(t))
		st.Close()

		_, err := svc.FetchDashboardData(ctx)
		assert.ErrorIs(t, err, store.ErrStoreClosed)
	})
}

func TestDashboardService_Metrics(t *testing.T) {
	st := newTestStore(t)
	api := domainmocks.NewDashboardAPIMock(t)
	svc := NewDashboardService(st, api, zaptest.NewLogger(t))
	ctx := context.Background()

	t.Run("Fetch", func(t *testing.T) {
		metrics := &domain.Metrics{Customers: 4000, Orders: 1200, Revenue: 700, Growth: 20.5}
		api.EXPECT().GetMetrics(mock.Anything).Return(metrics, nil).Once()

		_, err := svc.FetchMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, *metrics, st.Dashboard().Metrics)
	})

	t.Run("Refresh", func(t *testing.T) {
		metrics := &domain.Metrics{Customers: 4005, Orders: 1201, Revenue: 712.5, Growth: 33.1}
		api.EXPECT().RefreshMetrics(mock.Anything).Return(metrics, nil).Once()

		got, err := svc.RefreshMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, *metrics, got)
		assert.Equal(t, *metrics, st.Dashboard().Metrics)
	})

	t.Run("Refresh failure", func(t *testing.T) {
		api.EXPECT().RefreshMetrics(mock.Anything).Return(nil, errors.New("")).Once()

		_, err := svc.RefreshMetrics(ctx)
		require.Error(t, err)
		assert.Equal(t, "Failed to refresh metrics", st.Dashboard().Error)
		assert.Equal(t, 4005.0, st.Dashboard().Metrics.Customers)
	})
}

// newSimulatedClient возвращает клиент к симулятору без задержек
func newSimulatedClient(t *testing.T) *apiclient.Client {
	t.Helper()
	clock := func() time.Time { return testNow }
	simulator := mockapi.NewHandler(
		memory.NewOrderRepository(memory.SeedOrders(testNow), clock),
		memory.NewNotificationRepository(memory.SeedNotifications(testNow), clock),
		mockapi.NewDashboard(rand.New(rand.NewPCG(1, 2))),
		rand.New(rand.NewPCG(3, 4)),
		clock,
		zaptest.NewLogger(t),
	)
	return apiclient.NewWithRand(simulator.Server(), apiclient.Config{}, rand.New(rand.NewPCG(5, 6)), zaptest.NewLogger(t))
}

func TestOrdersService_FetchOrdersOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
	}{
		{name: "Offset overflow", page: 1 << 62, limit: 4},
		{name: "Huge limit", page: 1, limit: int(^uint(0) >> 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			svc := NewOrdersService(st, newSimulatedClient(t), 10, zaptest.NewLogger(t))

			var err error
			require.NotPanics(t, func() {
				_, err = svc.FetchOrders(context.Background(), tt.page, tt.limit)
			})
			require.Error(t, err)

			var apiErr *apiclient.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.Status)

			orders := st.Orders()
			assert.False(t, orders.IsLoading)
			assert.NotEmpty(t, orders.Error)
			assert.Len(t, orders.Orders, 5)
			assert.Equal(t, 1, orders.CurrentPage)
		})
	}
}

func TestOrdersService_FetchOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Default limit", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewOrdersAPIMock(t)
		svc := NewOrdersService(st, api, 0, zaptest.NewLogger(t))

		page := &domain.OrdersPage{
			Orders:      []domain.Order{{ID: "ORD010"}, {ID: "ORD011"}},
			TotalCount:  25,
			CurrentPage: 2,
			TotalPages:  3,
		}
		api.EXPECT().GetOrders(mock.Anything, 2, DefaultPageLimit).Return(page, nil).Once()

		_, err := svc.FetchOrders(ctx, 2, 0)
		require.NoError(t, err)

		orders := st.Orders()
		assert.Equal(t, page.Orders, orders.Orders)
		assert.Equal(t, 25, orders.TotalCount)
		assert.Equal(t, 2, orders.CurrentPage)
		assert.Equal(t, 3, orders.TotalPages)
	})

	t.Run("Failure keeps orders", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewOrdersAPIMock(t)
		svc := NewOrdersService(st, api, 5, zaptest.NewLogger(t))

		api.EXPECT().GetOrders(mock.Anything, 1, 5).Return(nil, errors.New("HTTP 500: Internal Server Error")).Once()

		_, err := svc.FetchOrders(ctx, 0, 0)
		require.Error(t, err)

		orders := st.Orders()
		assert.Len(t, orders.Orders, 5)
		assert.False(t, orders.IsLoading)
		assert.Equal(t, "HTTP 500: Internal Server Error", orders.Error)
	})
}

func TestOrdersService_Mutations(t *testing.T) {
	st := newTestStore(t)
	api := domainmocks.NewOrdersAPIMock(t)
	svc := NewOrdersService(st, api, 10, zaptest.NewLogger(t))
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		req := domain.CreateOrderRequest{Customer: "X", Location: "L", Member: "M", Amount: 200}
		created := &domain.Order{ID: "ORD026", Customer: "X", Location: "L", Member: "M", Amount: 200, Status: domain.OrderStatusPending}
		api.EXPECT().CreateOrder(mock.Anything, req).Return(created, nil).Once()

		_, err := svc.CreateOrder(ctx, req)
		require.NoError(t, err)

		orders := st.Orders()
		assert.Equal(t, "X", orders.Orders[0].Customer)
		assert.Equal(t, 1, orders.TotalCount)
	})

	t.Run("Update status", func(t *testing.T) {
		updated := &domain.Order{ID: "ORD026", Customer: "X", Status: domain.OrderStatusCompleted}
		api.EXPECT().UpdateOrderStatus(mock.Anything, "ORD026", domain.OrderStatusCompleted).Return(updated, nil).Once()

		_, err := svc.UpdateOrderStatus(ctx, "ORD026", domain.OrderStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, st.Orders().Orders[0].Status)
	})

	t.Run("Update failure", func(t *testing.T) {
		customer := "Y"
		req := domain.UpdateOrderRequest{Customer: &customer}
		api.EXPECT().UpdateOrder(mock.Anything, "ORD999", req).Return(nil, errors.New("order not found")).Once()

		_, err := svc.UpdateOrder(ctx, "ORD999", req)
		require.Error(t, err)
		assert.Equal(t, "order not found", st.Orders().Error)
	})

	t.Run("Fetch single order", func(t *testing.T) {
		order := &domain.Order{ID: "ORD003", Customer: "Dave Gavin"}
		api.EXPECT().GetOrder(mock.Anything, "ORD003").Return(order, nil).Once()

		_, err := svc.FetchOrder(ctx, "ORD003")
		require.NoError(t, err)

		selected := st.Orders().SelectedOrder
		require.NotNil(t, selected)
		assert.Equal(t, "Dave Gavin", selected.Customer)
		assert.Empty(t, st.Orders().Error)
	})

	t.Run("Delete", func(t *testing.T) {
		api.EXPECT().DeleteOrder(mock.Anything, "ORD026").Return(nil).Once()

		require.NoError(t, svc.DeleteOrder(ctx, "ORD026"))

		orders := st.Orders()
		assert.Equal(t, "ORD001", orders.Orders[0].ID)
		assert.Equal(t, 0, orders.TotalCount)
	})

	t.Run("Stats", func(t *testing.T) {
		stats := &domain.OrderStats{TotalOrders: 25, PendingOrders: 8, CompletedOrders: 15, CancelledOrders: 2, TotalRevenue: 58073.75}
		api.EXPECT().GetOrderStats(mock.Anything).Return(stats, nil).Once()

		_, err := svc.FetchOrderStats(ctx)
		require.NoError(t, err)
		require.NotNil(t, st.Orders().Stats)
		assert.Equal(t, *stats, *st.Orders().Stats)
	})
}

func TestNotificationsService_Operations(t *testing.T) {
	st := newTestStore(t)
	api := domainmocks.NewNotificationsAPIMock(t)
	svc := NewNotificationsService(st, api, zaptest.NewLogger(t))
	ctx := context.Background()

	t.Run("Mark as read", func(t *testing.T) {
		api.EXPECT().MarkAsRead(mock.Anything, "1").Return(&domain.Notification{ID: "1", IsRead: true}, nil).Once()

		require.NoError(t, svc.MarkAsRead(ctx, "1"))
		assert.Equal(t, 2, st.Notifications().UnreadCount)
	})

	t.Run("Mark as read failure", func(t *testing.T) {
		api.EXPECT().MarkAsRead(mock.Anything, "2").Return(nil, errors.New("")).Once()

		require.Error(t, svc.MarkAsRead(ctx, "2"))

		notifications := st.Notifications()
		assert.Equal(t, "Failed to mark notification as read", notifications.Error)
		assert.Equal(t, 2, notifications.UnreadCount)
	})

	t.Run("Delete", func(t *testing.T) {
		api.EXPECT().DeleteNotification(mock.Anything, "2").Return(nil).Once()

		require.NoError(t, svc.DeleteNotification(ctx, "2"))

		notifications := st.Notifications()
		assert.Equal(t, 1, notifications.UnreadCount)
		assert.Equal(t, 7, notifications.TotalCount)
		assert.Len(t, notifications.Notifications, 7)
	})

	t.Run("Mark all as read", func(t *testing.T) {
		api.EXPECT().MarkAllAsRead(mock.Anything).Return(&domain.MarkAllReadResult{UpdatedCount: 1}, nil).Once()

		updated, err := svc.MarkAllAsRead(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		assert.Equal(t, 0, st.Notifications().UnreadCount)
	})

	t.Run("Fetch unread count", func(t *testing.T) {
		api.EXPECT().GetUnreadCount(mock.Anything).Return(4, nil).Once()

		count, err := svc.FetchUnreadCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
		assert.Equal(t, 4, st.Notifications().UnreadCount)
	})

	t.Run("Fetch notifications", func(t *testing.T) {
		page := &domain.NotificationsPage{
			Notifications: []domain.Notification{{ID: "a"}, {ID: "b", IsRead: true}},
			UnreadCount:   1,
			TotalCount:    2,
		}
		api.EXPECT().GetNotifications(mock.Anything).Return(page, nil).Once()

		_, err := svc.FetchNotifications(ctx)
		require.NoError(t, err)

		notifications := st.Notifications()
		assert.Equal(t, page.Notifications, notifications.Notifications)
		assert.Equal(t, 1, notifications.UnreadCount)
		assert.Equal(t, 2, notifications.TotalCount)
	})
}

func TestNotificationsService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Pushes are added until unsubscribe", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewNotificationsAPIMock(t)
		svc := NewNotificationsService(st, api, zaptest.NewLogger(t))

		var push func(domain.Notification)
		unsubscribed := 0
		api.EXPECT().Subscribe(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, callback func(domain.Notification)) (domain.Unsubscribe, error) {
				push = callback
				return func() { unsubscribed++ }, nil
			}).Once()

		require.NoError(t, svc.Subscribe(ctx))
		require.NoError(t, svc.Subscribe(ctx))
		assert.True(t, st.Notifications().IsRealTimeConnected)

		push(domain.Notification{ID: "notif_1", Type: domain.NotificationTypeData, Message: "Data backup finished"})

		notifications := st.Notifications()
		assert.Equal(t, "notif_1", notifications.Notifications[0].ID)
		assert.Equal(t, 4, notifications.UnreadCount)
		assert.Equal(t, 9, notifications.TotalCount)

		require.NoError(t, svc.Unsubscribe())
		require.NoError(t, svc.Unsubscribe())
		assert.Equal(t, 1, unsubscribed)
		assert.False(t, st.Notifications().IsRealTimeConnected)
	})

	t.Run("Failure", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewNotificationsAPIMock(t)
		svc := NewNotificationsService(st, api, zaptest.NewLogger(t))

		api.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(nil, errors.New("")).Once()

		require.Error(t, svc.Subscribe(ctx))

		notifications := st.Notifications()
		assert.False(t, notifications.IsRealTimeConnected)
		assert.Equal(t, "Failed to subscribe to notifications", notifications.Error)
	})

	t.Run("Push after store closed is dropped", func(t *testing.T) {
		st := newTestStore(t)
		api := domainmocks.NewNotificationsAPIMock(t)
		svc := NewNotificationsService(st, api, zaptest.NewLogger(t))

		var push func(domain.Notification)
		api.EXPECT().Subscribe(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, callback func(domain.Notification)) (domain.Unsubscribe, error) {
				push = callback
				return func() {}, nil
			}).Once()

		require.NoError(t, svc.Subscribe(ctx))
		st.Close()

		assert.NotPanics(t, func() { push(domain.Notification{ID: "late"}) })
	})
}

func TestServices_Bootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("All slices loaded", func(t *testing.T) {
		st := newTestStore(t)
		dashboardAPI := domainmocks.NewDashboardAPIMock(t)
		ordersAPI := domainmocks.NewOrdersAPIMock(t)
		notificationsAPI := domainmocks.NewNotificationsAPIMock(t)
		logger := zaptest.NewLogger(t)
		services := NewServices(
			NewDashboardService(st, dashboardAPI, logger),
			NewOrdersService(st, ordersAPI, 10, logger),
			NewNotificationsService(st, notificationsAPI, logger),
			logger,
		)

		dashboardAPI.EXPECT().GetDashboardData(mock.Anything).Return(&domain.DashboardData{Metrics: domain.Metrics{Customers: 1}}, nil).Once()
		ordersAPI.EXPECT().GetOrders(mock.Anything, 1, 10).Return(&domain.OrdersPage{TotalCount: 25, CurrentPage: 1, TotalPages: 3}, nil).Once()
		ordersAPI.EXPECT().GetOrderStats(mock.Anything).Return(&domain.OrderStats{TotalOrders: 25}, nil).Once()
		notificationsAPI.EXPECT().GetNotifications(mock.Anything).Return(&domain.NotificationsPage{TotalCount: 5}, nil).Once()

		require.NoError(t, services.Bootstrap(ctx))

		state := st.State()
		assert.Equal(t, 1.0, state.Dashboard.Metrics.Customers)
		assert.Equal(t, 25, state.Orders.TotalCount)
		require.NotNil(t, state.Orders.Stats)
		assert.Equal(t, 5, state.Notifications.TotalCount)
	})

	t.Run("One failure does not stop others", func(t *testing.T) {
		st := newTestStore(t)
		dashboardAPI := domainmocks.NewDashboardAPIMock(t)
		ordersAPI := domainmocks.NewOrdersAPIMock(t)
		notificationsAPI := domainmocks.NewNotificationsAPIMock(t)
		logger := zaptest.NewLogger(t)
		services := NewServices(
			NewDashboardService(st, dashboardAPI, logger),
			NewOrdersService(st, ordersAPI, 10, logger),
			NewNotificationsService(st, notificationsAPI, logger),
			logger,
		)

		dashboardAPI.EXPECT().GetDashboardData(mock.Anything).Return(nil, errors.New("simulated network failure")).Once()
		ordersAPI.EXPECT().GetOrders(mock.Anything, 1, 10).Return(&domain.OrdersPage{TotalCount: 25}, nil).Once()
		ordersAPI.EXPECT().GetOrderStats(mock.Anything).Return(&domain.OrderStats{TotalOrders: 25}, nil).Once()
		notificationsAPI.EXPECT().GetNotifications(mock.Anything).Return(&domain.NotificationsPage{TotalCount: 5}, nil).Once()

		err := services.Bootstrap(ctx)
		require.Error(t, err)

		state := st.State()
		assert.Equal(t, "simulated network failure", state.Dashboard.Error)
		assert.Equal(t, 25, state.Orders.TotalCount)
		assert.Equal(t, 5, state.Notifications.TotalCount)
	})
}
