package domain

import "time"

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid проверяет, что статус входит в допустимый набор
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// NotificationType представляет тип уведомления
type NotificationType string

const (
	NotificationTypeBug          NotificationType = "bug"
	NotificationTypeUser         NotificationType = "user"
	NotificationTypeSubscription NotificationType = "subscription"
	NotificationTypeData         NotificationType = "data"
	NotificationTypePage         NotificationType = "page"
)

// NotificationTypes перечисляет все типы уведомлений
var NotificationTypes = []NotificationType{
	NotificationTypeBug,
	NotificationTypeUser,
	NotificationTypeSubscription,
	NotificationTypeData,
	NotificationTypePage,
}

// Valid проверяет, что тип уведомления известен
func (t NotificationType) Valid() bool {
	for _, known := range NotificationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Order представляет заказ
type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Location string      `json:"location"`
	Member   string      `json:"member"`
	Status   OrderStatus `json:"status"`
	Date     string      `json:"date"` // Отображаемая относительная дата ("Just now", "Yesterday")
	Amount   float64     `json:"amount"`
	// CreatedAt используется для сортировки по дате
	CreatedAt time.Time `json:"createdAt"`
}

// OrdersPage представляет страницу заказов
type OrdersPage struct {
	Orders      []Order `json:"orders"`
	TotalCount  int     `json:"totalCount"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
}

// OrderStats представляет агрегированную статистику заказов
type OrderStats struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// CreateOrderRequest содержит данные для создания заказа
type CreateOrderRequest struct {
	Customer string  `json:"customer"`
	Location string  `json:"location"`
	Member   string  `json:"member"`
	Amount   float64 `json:"amount"`
}

// UpdateOrderRequest содержит частичное обновление заказа.
// Nil поля не изменяются.
type UpdateOrderRequest struct {
	Customer *string      `json:"customer,omitempty"`
	Location *string      `json:"location,omitempty"`
	Member   *string      `json:"member,omitempty"`
	Status   *OrderStatus `json:"status,omitempty"`
	Amount   *float64     `json:"amount,omitempty"`
}

// Apply применяет обновление к заказу
func (u UpdateOrderRequest) Apply(order Order) Order {
	if u.Customer != nil {
		order.Customer = *u.Customer
	}
	if u.Location != nil {
		order.Location = *u.Location
	}
	if u.Member != nil {
		order.Member = *u.Member
	}
	if u.Status != nil {
		order.Status = *u.Status
	}
	if u.Amount != nil {
		order.Amount = *u.Amount
	}
	return order
}

// Notification представляет уведомление
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Time      string           `json:"time"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NotificationsPage представляет ответ со списком уведомлений
type NotificationsPage struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
	TotalCount    int            `json:"totalCount"`
}

// MarkAllReadResult представляет результат массовой отметки
type MarkAllReadResult struct {
	UpdatedCount int `json:"updatedCount"`
}

// UnreadCount представляет количество непрочитанных уведомлений
type UnreadCount struct {
	Count int `json:"count"`
}

// Metrics представляет ключевые показатели дашборда
type Metrics struct {
	Customers float64 `json:"customers"`
	Orders    float64 `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Growth    float64 `json:"growth"`
}

// MetricsPatch содержит частичное обновление метрик
type MetricsPatch struct {
	Customers *float64 `json:"customers,omitempty"`
	Orders    *float64 `json:"orders,omitempty"`
	Revenue   *float64 `json:"revenue,omitempty"`
	Growth    *float64 `json:"growth,omitempty"`
}

// ChartPoint представляет точку графика прогноза
type ChartPoint struct {
	Period    string  `json:"month"`
	Projected float64 `json:"projected"`
	Actual    float64 `json:"actual"`
}

// Product представляет товар в рейтинге продаж
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// LocationRevenue представляет долю выручки по локации
type LocationRevenue struct {
	Location   string  `json:"location"`
	Percentage float64 `json:"percentage"`
}

// DashboardData представляет полный снимок дашборда
type DashboardData struct {
	Metrics           Metrics           `json:"metrics"`
	ChartData         []ChartPoint      `json:"chartData"`
	TopProducts       []Product         `json:"topProducts"`
	RevenueByLocation []LocationRevenue `json:"revenueByLocation"`
}
