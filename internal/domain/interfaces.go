package domain

import "context"

// OrderRepository определяет методы для работы с набором заказов
type OrderRepository interface {
	List(ctx context.Context, page, limit int) (*OrdersPage, error)
	All(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	Insert(ctx context.Context, req CreateOrderRequest) (*Order, error)
	Update(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error)
	Delete(ctx context.Context, id string) error
}

// NotificationRepository определяет методы для работы с уведомлениями
type NotificationRepository interface {
	List(ctx context.Context) ([]Notification, error)
	Get(ctx context.Context, id string) (*Notification, error)
	Insert(ctx context.Context, n Notification) error
	MarkRead(ctx context.Context, id string) (*Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

// DashboardAPI определяет запросы дашборда к симулятору
type DashboardAPI interface {
	GetDashboardData(ctx context.Context) (*DashboardData, error)
	GetMetrics(ctx context.Context) (*Metrics, error)
	RefreshMetrics(ctx context.Context) (*Metrics, error)
}

// OrdersAPI определяет запросы заказов к симулятору
type OrdersAPI interface {
	GetOrders(ctx context.Context, page, limit int) (*OrdersPage, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
	DeleteOrder(ctx context.Context, id string) error
	GetOrderStats(ctx context.Context) (*OrderStats, error)
}

// Unsubscribe останавливает подписку на уведомления
type Unsubscribe func()

// NotificationsAPI определяет запросы уведомлений к симулятору
type NotificationsAPI interface {
	GetNotifications(ctx context.Context) (*NotificationsPage, error)
	MarkAsRead(ctx context.Context, id string) (*Notification, error)
	MarkAllAsRead(ctx context.Context) (*MarkAllReadResult, error)
	DeleteNotification(ctx context.Context, id string) error
	GetUnreadCount(ctx context.Context) (int, error)
	Subscribe(ctx context.Context, callback func(Notification)) (Unsubscribe, error)
}
