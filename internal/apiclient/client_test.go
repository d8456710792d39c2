package apiclient

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/mockapi"
	"github.com/avc/analytics-dashboard/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newSimulator(t *testing.T) http.Handler {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	return mockapi.NewHandler(
		memory.NewOrderRepository(memory.SeedOrders(fixedNow), clock),
		memory.NewNotificationRepository(memory.SeedNotifications(fixedNow), clock),
		mockapi.NewDashboard(rand.New(rand.NewPCG(1, 2))),
		rand.New(rand.NewPCG(3, 4)),
		clock,
		zaptest.NewLogger(t),
	).Server()
}

func newTestClient(t *testing.T, handler http.Handler, cfg Config) *Client {
	t.Helper()
	return NewWithRand(handler, cfg, rand.New(rand.NewPCG(5, 6)), zaptest.NewLogger(t))
}

func requireAPIError(t *testing.T, err error) *APIError {
	t.Helper()
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestClient_Dashboard(t *testing.T) {
	c := newTestClient(t, newSimulator(t), Config{})
	ctx := context.Background()

	data, err := c.GetDashboardData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.ChartData, 6)
	assert.Len(t, data.TopProducts, 5)

	metrics, err := c.GetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Metrics, *metrics)

	refreshed, err := c.RefreshMetrics(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, refreshed.Customers, metrics.Customers)
}

func TestClient_Orders(t *testing.T) {
	c := newTestClient(t, newSimulator(t), Config{})
	ctx := context.Background()

	page, err := c.GetOrders(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, page.Orders, 5)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 5, page.TotalPages)

	created, err := c.CreateOrder(ctx, domain.CreateOrderRequest{Customer: "Ana", Location: "Oslo", Member: "Gold", Amount: 10})
	require.NoError(t, err)
	assert.Equal(t, "ORD026", created.ID)

	completed, err := c.UpdateOrderStatus(ctx, created.ID, domain.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, completed.Status)

	customer := "Bea"
	updated, err := c.UpdateOrder(ctx, created.ID, domain.UpdateOrderRequest{Customer: &customer})
	require.NoError(t, err)
	assert.Equal(t, "Bea", updated.Customer)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)

	got, err := c.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	stats, err := c.GetOrderStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 26, stats.TotalOrders)

	require.NoError(t, c.DeleteOrder(ctx, created.ID))

	_, err = c.GetOrder(ctx, created.ID)
	apiErr := requireAPIError(t, err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, domain.ErrOrderNotFound.Error(), apiErr.Message)
}

func TestClient_Notifications(t *testing.T) {
	c := newTestClient(t, newSimulator(t), Config{})
	ctx := context.Background()

	page, err := c.GetNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, page.UnreadCount)

	n, err := c.MarkAsRead(ctx, "1")
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	count, err := c.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	result, err := c.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UpdatedCount)

	require.NoError(t, c.DeleteNotification(ctx, "1"))

	_, err = c.MarkAsRead(ctx, "1")
	assert.Equal(t, http.StatusNotFound, requireAPIError(t, err).Status)
}

func TestClient_Errors(t *testing.T) {
	t.Run("Simulated failure", func(t *testing.T) {
		c := newTestClient(t, newSimulator(t), Config{Transport: TransportConfig{FailureRate: 1}})

		_, err := c.GetMetrics(context.Background())
		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
		assert.Equal(t, SimulatedFailureMessage, apiErr.Message)
	})

	t.Run("Body without message", func(t *testing.T) {
		teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		})
		c := newTestClient(t, teapot, Config{})

		_, err := c.GetMetrics(context.Background())
		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusTeapot, apiErr.Status)
		assert.Equal(t, "HTTP 418: I'm a teapot", apiErr.Message)
	})

	t.Run("Handler panic", func(t *testing.T) {
		broken := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})
		c := newTestClient(t, broken, Config{})

		var err error
		require.NotPanics(t, func() {
			_, err = c.GetMetrics(context.Background())
		})
		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Contains(t, apiErr.Message, "boom")
	})

	t.Run("Context cancelled during delay", func(t *testing.T) {
		c := newTestClient(t, newSimulator(t), Config{Transport: TransportConfig{MinDelay: time.Hour, MaxDelay: time.Hour}})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := c.GetOrders(ctx, 1, 10)
		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestTransport_Delay(t *testing.T) {
	tr := NewTransport(http.NotFoundHandler(), TransportConfig{MinDelay: 10 * time.Millisecond, MaxDelay: 20 * time.Millisecond}, rand.New(rand.NewPCG(7, 8)))

	for i := 0; i < 50; i++ {
		delay, fail := tr.roll()
		assert.GreaterOrEqual(t, delay, 10*time.Millisecond)
		assert.Less(t, delay, 20*time.Millisecond)
		assert.False(t, fail)
	}
}

func TestClient_Subscribe(t *testing.T) {
	t.Run("Delivers pushes until unsubscribed", func(t *testing.T) {
		c := newTestClient(t, newSimulator(t), Config{RealTimeInterval: 5 * time.Millisecond, RealTimePushProbability: 1})

		var (
			mu       sync.Mutex
			received []domain.Notification
		)
		unsubscribe, err := c.Subscribe(context.Background(), func(n domain.Notification) {
			mu.Lock()
			received = append(received, n)
			mu.Unlock()
		})
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(received) >= 2
		}, time.Second, 5*time.Millisecond)

		unsubscribe()
		unsubscribe()

		mu.Lock()
		after := len(received)
		first := received[0]
		mu.Unlock()

		time.Sleep(30 * time.Millisecond)
		mu.Lock()
		assert.Equal(t, after, len(received))
		mu.Unlock()

		assert.False(t, first.IsRead)
		_, err = c.MarkAsRead(context.Background(), first.ID)
		assert.NoError(t, err)
	})

	t.Run("Zero probability never pushes", func(t *testing.T) {
		c := newTestClient(t, newSimulator(t), Config{RealTimeInterval: 2 * time.Millisecond, RealTimePushProbability: 0})

		calls := make(chan domain.Notification, 1)
		unsubscribe, err := c.Subscribe(context.Background(), func(n domain.Notification) { calls <- n })
		require.NoError(t, err)

		time.Sleep(30 * time.Millisecond)
		unsubscribe()
		assert.Empty(t, calls)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		c := newTestClient(t, newSimulator(t), Config{RealTimeInterval: time.Millisecond})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Subscribe(ctx, func(domain.Notification) {})
		requireAPIError(t, err)
	})
}
