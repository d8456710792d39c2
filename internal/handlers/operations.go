package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardService определяет асинхронные операции дашборда
type DashboardService interface {
	FetchDashboardData(ctx context.Context) (domain.DashboardData, error)
	FetchMetrics(ctx context.Context) (domain.Metrics, error)
	RefreshMetrics(ctx context.Context) (domain.Metrics, error)
}

// OrdersService определяет асинхронные операции над заказами
type OrdersService interface {
	FetchOrders(ctx context.Context, page, limit int) (domain.OrdersPage, error)
	FetchOrder(ctx context.Context, id string) (domain.Order, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	FetchOrderStats(ctx context.Context) (domain.OrderStats, error)
}

// NotificationsService определяет асинхронные операции над уведомлениями
type NotificationsService interface {
	FetchNotifications(ctx context.Context) (domain.NotificationsPage, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) (int, error)
	DeleteNotification(ctx context.Context, id string) error
	FetchUnreadCount(ctx context.Context) (int, error)
	Subscribe(ctx context.Context) error
	Unsubscribe() error
}

// JobResponse подтверждает постановку операции в очередь
type JobResponse struct {
	Job string `json:"job"`
}

// submit ставит операцию в очередь и отвечает 202
func (h *StoreHandler) submit(w http.ResponseWriter, name string, run func(ctx context.Context) error) {
	if err := h.pool.Submit(worker.Job{Name: name, Run: run}); err != nil {
		h.logger.Warn("failed to submit job", zap.String("job", name), zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, http.StatusAccepted, JobResponse{Job: name})
}

// FetchDashboard запускает загрузку дашборда
func (h *StoreHandler) FetchDashboard(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "fetch dashboard data", func(ctx context.Context) error {
		_, err := h.dashboard.FetchDashboardData(ctx)
		return err
	})
}

// FetchMetrics запускает загрузку метрик
func (h *StoreHandler) FetchMetrics(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "fetch metrics", func(ctx context.Context) error {
		_, err := h.dashboard.FetchMetrics(ctx)
		return err
	})
}

// RefreshMetrics запускает обновление метрик
func (h *StoreHandler) RefreshMetrics(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "refresh metrics", func(ctx context.Context) error {
		_, err := h.dashboard.RefreshMetrics(ctx)
		return err
	})
}

// FetchOrders запускает загрузку страницы заказов
func (h *StoreHandler) FetchOrders(w http.ResponseWriter, r *http.Request) {
	page, ok := queryPositive(r, "page")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	limit, ok := queryPositive(r, "limit")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.submit(w, "fetch orders", func(ctx context.Context) error {
		_, err := h.orders.FetchOrders(ctx, page, limit)
		return err
	})
}

// FetchOrder запускает загрузку заказа в selectedOrder
func (h *StoreHandler) FetchOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.submit(w, "fetch order", func(ctx context.Context) error {
		_, err := h.orders.FetchOrder(ctx, id)
		return err
	})
}

// CreateOrder запускает создание заказа
func (h *StoreHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.submit(w, "create order", func(ctx context.Context) error {
		_, err := h.orders.CreateOrder(ctx, req)
		return err
	})
}

// UpdateOrder запускает частичное обновление заказа
func (h *StoreHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.submit(w, "update order", func(ctx context.Context) error {
		_, err := h.orders.UpdateOrder(ctx, id, req)
		return err
	})
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// UpdateOrderStatus запускает смену статуса заказа
func (h *StoreHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Status.Valid() {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.submit(w, "update order status", func(ctx context.Context) error {
		_, err := h.orders.UpdateOrderStatus(ctx, id, req.Status)
		return err
	})
}

// DeleteOrder запускает удаление заказа
func (h *StoreHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.submit(w, "delete order", func(ctx context.Context) error {
		return h.orders.DeleteOrder(ctx, id)
	})
}

// FetchOrderStats запускает загрузку статистики заказов
func (h *StoreHandler) FetchOrderStats(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "fetch order stats", func(ctx context.Context) error {
		_, err := h.orders.FetchOrderStats(ctx)
		return err
	})
}

// FetchNotifications запускает загрузку уведомлений
func (h *StoreHandler) FetchNotifications(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "fetch notifications", func(ctx context.Context) error {
		_, err := h.notifications.FetchNotifications(ctx)
		return err
	})
}

// MarkNotificationAsRead запускает отметку уведомления прочитанным
func (h *StoreHandler) MarkNotificationAsRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.submit(w, "mark notification as read", func(ctx context.Context) error {
		return h.notifications.MarkAsRead(ctx, id)
	})
}

// MarkAllNotificationsAsRead запускает отметку всех уведомлений прочитанными
func (h *StoreHandler) MarkAllNotificationsAsRead(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "mark all notifications as read", func(ctx context.Context) error {
		_, err := h.notifications.MarkAllAsRead(ctx)
		return err
	})
}

// DeleteNotification запускает удаление уведомления
func (h *StoreHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.submit(w, "delete notification", func(ctx context.Context) error {
		return h.notifications.DeleteNotification(ctx, id)
	})
}

// FetchUnreadCount запускает загрузку счетчика непрочитанных
func (h *StoreHandler) FetchUnreadCount(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "fetch unread count", func(ctx context.Context) error {
		_, err := h.notifications.FetchUnreadCount(ctx)
		return err
	})
}

// SubscribeNotifications запускает подписку на живые уведомления
func (h *StoreHandler) SubscribeNotifications(w http.ResponseWriter, r *http.Request) {
	h.submit(w, "subscribe to notifications", h.notifications.Subscribe)
}

// UnsubscribeNotifications останавливает подписку на живые уведомления
func (h *StoreHandler) UnsubscribeNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Unsubscribe(); err != nil {
		h.logger.Error("failed to unsubscribe", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.Notifications())
}
