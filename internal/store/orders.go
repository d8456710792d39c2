package store

import (
	"slices"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// OrdersState содержит текущую страницу заказов
type OrdersState struct {
	Orders        []domain.Order     `json:"orders"`
	CurrentPage   int                `json:"currentPage"`
	TotalPages    int                `json:"totalPages"`
	TotalCount    int                `json:"totalCount"`
	SelectedOrder *domain.Order      `json:"selectedOrder"`
	Stats         *domain.OrderStats `json:"stats"`
	loadable

	listRequest string
}

func initialOrders(now time.Time) OrdersState {
	return OrdersState{
		Orders: []domain.Order{
			{ID: "ORD001", Customer: "David Craig", Location: "Landing Page", Member: "Machine Line Oakland",
				Status: domain.OrderStatusCompleted, Date: "Just now", Amount: 1250.0, CreatedAt: now},
			{ID: "ORD002", Customer: "Andi Morrisom", Location: "CRM Admin pages", Member: "Larry San Francisco",
				Status: domain.OrderStatusPending, Date: "4 minutes ago", Amount: 890.5, CreatedAt: now.Add(-4 * time.Minute)},
			{ID: "ORD003", Customer: "Dave Gavin", Location: "Client Project", Member: "Boggart Avenue Grads",
				Status: domain.OrderStatusCompleted, Date: "1 hour ago", Amount: 2100.75, CreatedAt: now.Add(-time.Hour)},
			{ID: "ORD004", Customer: "Georgina Night", Location: "Admin Dashboard", Member: "Restaurant Baton Rouge",
				Status: domain.OrderStatusPending, Date: "Yesterday", Amount: 675.25, CreatedAt: now.AddDate(0, 0, -1)},
			{ID: "ORD005", Customer: "Andi Lane", Location: "App Landing Page", Member: "Next Lane Growths",
				Status: domain.OrderStatusCompleted, Date: "Feb 2, 2023", Amount: 1450.0,
				CreatedAt: time.Date(2023, time.February, 2, 12, 0, 0, 0, time.UTC)},
		},
		CurrentPage: 1,
		TotalPages:  5,
	}
}

func (o OrdersState) clone() OrdersState {
	o.Orders = slices.Clone(o.Orders)
	if o.SelectedOrder != nil {
		selected := *o.SelectedOrder
		o.SelectedOrder = &selected
	}
	if o.Stats != nil {
		stats := *o.Stats
		o.Stats = &stats
	}
	return o
}

func (o *OrdersState) indexOf(id string) int {
	return slices.IndexFunc(o.Orders, func(order domain.Order) bool { return order.ID == id })
}

// replace заменяет заказ по id в списке и в выбранном заказе
func (o *OrdersState) replace(order domain.Order) {
	if i := o.indexOf(order.ID); i >= 0 {
		o.Orders[i] = order
	}
	if o.SelectedOrder != nil && o.SelectedOrder.ID == order.ID {
		selected := order
		o.SelectedOrder = &selected
	}
}

// FetchOrders загружает страницу заказов
type FetchOrders struct {
	Outcome Outcome[domain.OrdersPage]
}

func (a FetchOrders) Type() string { return "orders/fetchOrders/" + a.Outcome.Phase.String() }

func (a FetchOrders) apply(s *State, _ time.Time) {
	o := &s.Orders
	out := a.Outcome
	switch out.Phase {
	case PhasePending:
		if out.RequestID != "" {
			o.listRequest = out.RequestID
		}
		o.begin()
	case PhaseFulfilled:
		if stale(o.listRequest, out.RequestID) {
			return
		}
		o.succeed()
		o.Orders = slices.Clone(out.Value.Orders)
		o.CurrentPage = out.Value.CurrentPage
		o.TotalPages = out.Value.TotalPages
		o.TotalCount = out.Value.TotalCount
	case PhaseRejected:
		if stale(o.listRequest, out.RequestID) {
			return
		}
		o.fail(out.Err)
	}
}

// FetchOrder загружает один заказ в selectedOrder
type FetchOrder struct {
	Outcome Outcome[domain.Order]
}

func (a FetchOrder) Type() string { return "orders/fetchOrder/" + a.Outcome.Phase.String() }

func (a FetchOrder) apply(s *State, _ time.Time) {
	o := &s.Orders
	switch a.Outcome.Phase {
	case PhasePending:
		o.begin()
	case PhaseFulfilled:
		o.succeed()
		order := a.Outcome.Value
		o.SelectedOrder = &order
	case PhaseRejected:
		o.fail(a.Outcome.Err)
	}
}

// CreateOrder добавляет созданный заказ в начало страницы
type CreateOrder struct {
	Outcome Outcome[domain.Order]
}

func (a CreateOrder) Type() string { return "orders/createOrder/" + a.Outcome.Phase.String() }

func (a CreateOrder) apply(s *State, _ time.Time) {
	o := &s.Orders
	switch a.Outcome.Phase {
	case PhasePending:
		o.begin()
	case PhaseFulfilled:
		o.succeed()
		o.Orders = slices.Insert(o.Orders, 0, a.Outcome.Value)
		o.TotalCount++
	case PhaseRejected:
		o.fail(a.Outcome.Err)
	}
}

// UpdateOrder заменяет заказ по id
type UpdateOrder struct {
	Outcome Outcome[domain.Order]
}

func (a UpdateOrder) Type() string { return "orders/updateOrder/" + a.Outcome.Phase.String() }

func (a UpdateOrder) apply(s *State, _ time.Time) {
	s.Orders.applyReplace(a.Outcome)
}

// UpdateOrderStatus заменяет заказ с новым статусом по id
type UpdateOrderStatus struct {
	Outcome Outcome[domain.Order]
}

func (a UpdateOrderStatus) Type() string {
	return "orders/updateOrderStatus/" + a.Outcome.Phase.String()
}

func (a UpdateOrderStatus) apply(s *State, _ time.Time) {
	s.Orders.applyReplace(a.Outcome)
}

func (o *OrdersState) applyReplace(out Outcome[domain.Order]) {
	switch out.Phase {
	case PhasePending:
		o.begin()
	case PhaseFulfilled:
		o.succeed()
		o.replace(out.Value)
	case PhaseRejected:
		o.fail(out.Err)
	}
}

// DeleteOrder удаляет заказ по id. Value содержит id заказа.
type DeleteOrder struct {
	Outcome Outcome[string]
}

func (a DeleteOrder) Type() string { return "orders/deleteOrder/" + a.Outcome.Phase.String() }

func (a DeleteOrder) apply(s *State, _ time.Time) {
	o := &s.Orders
	switch a.Outcome.Phase {
	case PhasePending:
		o.begin()
	case PhaseFulfilled:
		o.succeed()
		id := a.Outcome.Value
		if i := o.indexOf(id); i >= 0 {
			o.Orders = slices.Delete(o.Orders, i, i+1)
			o.TotalCount = max(0, o.TotalCount-1)
		}
		if o.SelectedOrder != nil && o.SelectedOrder.ID == id {
			o.SelectedOrder = nil
		}
	case PhaseRejected:
		o.fail(a.Outcome.Err)
	}
}

// FetchOrderStats загружает агрегированную статистику
type FetchOrderStats struct {
	Outcome Outcome[domain.OrderStats]
}

func (a FetchOrderStats) Type() string { return "orders/fetchOrderStats/" + a.Outcome.Phase.String() }

func (a FetchOrderStats) apply(s *State, _ time.Time) {
	o := &s.Orders
	switch a.Outcome.Phase {
	case PhasePending:
		o.begin()
	case PhaseFulfilled:
		o.succeed()
		stats := a.Outcome.Value
		o.Stats = &stats
	case PhaseRejected:
		o.fail(a.Outcome.Err)
	}
}

// SetCurrentPage устанавливает текущую страницу
type SetCurrentPage struct {
	Page int
}

func (SetCurrentPage) Type() string { return "orders/setCurrentPage" }

func (a SetCurrentPage) apply(s *State, _ time.Time) {
	s.Orders.CurrentPage = a.Page
}

// SetSelectedOrder выбирает заказ или сбрасывает выбор при nil
type SetSelectedOrder struct {
	Order *domain.Order
}

func (SetSelectedOrder) Type() string { return "orders/setSelectedOrder" }

func (a SetSelectedOrder) apply(s *State, _ time.Time) {
	if a.Order == nil {
		s.Orders.SelectedOrder = nil
		return
	}
	selected := *a.Order
	s.Orders.SelectedOrder = &selected
}

// SetOrdersLoading устанавливает флаг загрузки заказов
type SetOrdersLoading struct {
	Loading bool
}

func (SetOrdersLoading) Type() string { return "orders/setLoading" }

func (a SetOrdersLoading) apply(s *State, _ time.Time) {
	s.Orders.IsLoading = a.Loading
}

// ClearOrdersError сбрасывает ошибку заказов
type ClearOrdersError struct{}

func (ClearOrdersError) Type() string { return "orders/clearError" }

func (ClearOrdersError) apply(s *State, _ time.Time) {
	s.Orders.Error = ""
}
