package store

import (
	"sync"
	"testing"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(WithClock(func() time.Time { return testNow }), WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(s.Close)
	return s
}

func TestStore_InitialState(t *testing.T) {
	s := newTestStore(t)

	state := s.State()
	assert.Equal(t, 3781.0, state.Dashboard.Metrics.Customers)
	assert.Len(t, state.Dashboard.ChartData, 6)
	assert.Nil(t, state.Dashboard.LastUpdated)
	assert.Len(t, state.Orders.Orders, 5)
	assert.Equal(t, 1, state.Orders.CurrentPage)
	assert.Equal(t, 5, state.Orders.TotalPages)
	assert.Equal(t, 0, state.Orders.TotalCount)
	assert.Len(t, state.Notifications.Notifications, 8)
	assert.Equal(t, 3, state.Notifications.UnreadCount)
	assert.Equal(t, 8, state.Notifications.TotalCount)
	assert.False(t, state.Notifications.IsRealTimeConnected)
	assert.Empty(t, state.Search.GlobalSearchTerm)
	assert.Empty(t, state.Search.SearchHistory)
}

func TestStore_DispatchIsVisibleToReaders(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Dispatch(SetGlobalSearchTerm{Term: "andi"}))
	assert.Equal(t, "andi", s.Search().GlobalSearchTerm)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := newTestStore(t)

	orders := s.Orders()
	orders.Orders[0].Customer = "mutated"

	assert.Equal(t, "David Craig", s.Orders().Orders[0].Customer)
}

func TestStore_Subscribe(t *testing.T) {
	s := newTestStore(t)

	var got []string
	unsubscribe := s.Subscribe(func(action Action) {
		got = append(got, action.Type())
	})

	require.NoError(t, s.Dispatch(ClearOrdersError{}))
	require.NoError(t, s.Dispatch(MarkAllAsRead{}))
	unsubscribe()
	require.NoError(t, s.Dispatch(ClearSearch{}))

	assert.Equal(t, []string{"orders/clearError", "notifications/markAllAsRead"}, got)
}

func TestStore_Close(t *testing.T) {
	s := New()
	assert.False(t, s.Closed())
	s.Close()
	s.Close()
	assert.True(t, s.Closed())

	assert.ErrorIs(t, s.Dispatch(ClearSearch{}), ErrStoreClosed)
}

func TestStore_Reset(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Dispatch(SetGlobalSearchTerm{Term: "x"}))
	require.NoError(t, s.Dispatch(DeleteOrder{Outcome: Fulfilled("", "ORD001")}))
	require.NoError(t, s.Dispatch(Reset{}))

	state := s.State()
	assert.Empty(t, state.Search.GlobalSearchTerm)
	assert.Len(t, state.Orders.Orders, 5)
	assert.Equal(t, "ORD001", state.Orders.Orders[0].ID)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := newTestStore(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Dispatch(AddNotification{Notification: domain.Notification{ID: "live", IsRead: false}})
		}()
	}
	wg.Wait()

	notifications := s.Notifications()
	assert.Len(t, notifications.Notifications, 8+n)
	assert.Equal(t, 3+n, notifications.UnreadCount)
	assert.Equal(t, 8+n, notifications.TotalCount)
}

func TestSelect(t *testing.T) {
	s := newTestStore(t)

	unread := Select(s, func(st State) int { return st.Notifications.UnreadCount })
	assert.Equal(t, 3, unread)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := InitialState(testNow)

	next := Reduce(state, DeleteOrder{Outcome: Fulfilled("", "ORD001")}, testNow)

	assert.Len(t, state.Orders.Orders, 5)
	assert.Len(t, next.Orders.Orders, 4)
}

// Каждая асинхронная операция: pending выставляет загрузку и сбрасывает ошибку,
// rejected снимает загрузку и сохраняет сообщение, не трогая данные.
func TestLifecycle_LoadingFlagRoundTrip(t *testing.T) {
	type slice struct {
		IsLoading bool
		Error     string
	}
	dashboard := func(s State) slice { return slice{s.Dashboard.IsLoading, s.Dashboard.Error} }
	orders := func(s State) slice { return slice{s.Orders.IsLoading, s.Orders.Error} }
	notifications := func(s State) slice { return slice{s.Notifications.IsLoading, s.Notifications.Error} }

	tests := []struct {
		name     string
		pending  Action
		rejected Action
		flags    func(State) slice
	}{
		{"fetch dashboard", FetchDashboardData{Pending[domain.DashboardData]("")},
			FetchDashboardData{Rejected[domain.DashboardData]("", "boom")}, dashboard},
		{"fetch metrics", FetchMetrics{Pending[domain.Metrics]("")},
			FetchMetrics{Rejected[domain.Metrics]("", "boom")}, dashboard},
		{"refresh metrics", RefreshMetrics{Pending[domain.Metrics]("")},
			RefreshMetrics{Rejected[domain.Metrics]("", "boom")}, dashboard},
		{"fetch orders", FetchOrders{Pending[domain.OrdersPage]("")},
			FetchOrders{Rejected[domain.OrdersPage]("", "boom")}, orders},
		{"fetch order", FetchOrder{Pending[domain.Order]("")},
			FetchOrder{Rejected[domain.Order]("", "boom")}, orders},
		{"create order", CreateOrder{Pending[domain.Order]("")},
			CreateOrder{Rejected[domain.Order]("", "boom")}, orders},
		{"update order", UpdateOrder{Pending[domain.Order]("")},
			UpdateOrder{Rejected[domain.Order]("", "boom")}, orders},
		{"update order status", UpdateOrderStatus{Pending[domain.Order]("")},
			UpdateOrderStatus{Rejected[domain.Order]("", "boom")}, orders},
		{"delete order", DeleteOrder{Pending[string]("")},
			DeleteOrder{Rejected[string]("", "boom")}, orders},
		{"fetch order stats", FetchOrderStats{Pending[domain.OrderStats]("")},
			FetchOrderStats{Rejected[domain.OrderStats]("", "boom")}, orders},
		{"fetch notifications", FetchNotifications{Pending[domain.NotificationsPage]("")},
			FetchNotifications{Rejected[domain.NotificationsPage]("", "boom")}, notifications},
		{"mark notification read", MarkNotificationAsRead{Pending[string]("")},
			MarkNotificationAsRead{Rejected[string]("", "boom")}, notifications},
		{"mark all notifications read", MarkAllNotificationsAsRead{Pending[int]("")},
			MarkAllNotificationsAsRead{Rejected[int]("", "boom")}, notifications},
		{"delete notification", DeleteNotification{Pending[string]("")},
			DeleteNotification{Rejected[string]("", "boom")}, notifications},
		{"fetch unread count", FetchUnreadCount{Pending[int]("")},
			FetchUnreadCount{Rejected[int]("", "boom")}, notifications},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := InitialState(testNow)
			initial.Dashboard.Error = "previous"
			initial.Orders.Error = "previous"
			initial.Notifications.Error = "previous"

			pending := Reduce(initial, tt.pending, testNow)
			assert.Equal(t, slice{IsLoading: true}, tt.flags(pending))

			rejected := Reduce(pending, tt.rejected, testNow)
			assert.Equal(t, slice{IsLoading: false, Error: "boom"}, tt.flags(rejected))

			// Данные не изменились
			assert.Equal(t, initial.Dashboard.Metrics, rejected.Dashboard.Metrics)
			assert.Equal(t, initial.Orders.Orders, rejected.Orders.Orders)
			assert.Equal(t, initial.Orders.TotalCount, rejected.Orders.TotalCount)
			assert.Equal(t, initial.Notifications.Notifications, rejected.Notifications.Notifications)
			assert.Equal(t, initial.Notifications.UnreadCount, rejected.Notifications.UnreadCount)
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pending", PhasePending.String())
	assert.Equal(t, "fulfilled", PhaseFulfilled.String())
	assert.Equal(t, "rejected", PhaseRejected.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
