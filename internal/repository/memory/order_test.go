package memory

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestSeedOrders(t *testing.T) {
	orders := SeedOrders(fixedNow)

	require.Len(t, orders, 25)
	assert.Equal(t, "ORD001", orders[0].ID)
	assert.Equal(t, fixedNow, orders[0].CreatedAt)
	assert.Equal(t, fixedNow.Add(-4*time.Minute), orders[1].CreatedAt)
	assert.Equal(t, 2023, orders[4].CreatedAt.Year())
	assert.Equal(t, "ORD025", orders[24].ID)
	assert.Equal(t, fixedNow.Add(-14*day), orders[24].CreatedAt)
}

func TestOrderRepository_List(t *testing.T) {
	repo := NewOrderRepository(SeedOrders(fixedNow), clock)
	ctx := context.Background()

	t.Run("First page", func(t *testing.T) {
		page, err := repo.List(ctx, 1, 10)
		require.NoError(t, err)
		assert.Len(t, page.Orders, 10)
		assert.Equal(t, "ORD001", page.Orders[0].ID)
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("Last partial page", func(t *testing.T) {
		page, err := repo.List(ctx, 3, 10)
		require.NoError(t, err)
		assert.Len(t, page.Orders, 5)
		assert.Equal(t, "ORD021", page.Orders[0].ID)
	})

	t.Run("Past the end", func(t *testing.T) {
		page, err := repo.List(ctx, 9, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Orders)
		assert.Equal(t, 9, page.CurrentPage)
	})

	t.Run("Invalid input", func(t *testing.T) {
		_, err := repo.List(ctx, 0, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = repo.List(ctx, 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Out of range", func(t *testing.T) {
		tests := []struct {
			page, limit int
		}{
			{page: 1, limit: math.MaxInt},
			{page: 1, limit: MaxPageLimit + 1},
			{page: 1 << 62, limit: 4},
			{page: math.MaxInt, limit: MaxPageLimit},
		}
		for _, tt := range tests {
			page, err := repo.List(ctx, tt.page, tt.limit)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "page %d limit %d", tt.page, tt.limit)
			assert.Nil(t, page)
		}
	})

	t.Run("Largest limit", func(t *testing.T) {
		page, err := repo.List(ctx, 1, MaxPageLimit)
		require.NoError(t, err)
		assert.Len(t, page.Orders, 25)
		assert.Equal(t, 1, page.TotalPages)
	})
}

func TestOrderRepository_Insert(t *testing.T) {
	repo := NewOrderRepository(SeedOrders(fixedNow), clock)
	ctx := context.Background()

	order, err := repo.Insert(ctx, domain.CreateOrderRequest{Customer: "X", Location: "L", Member: "M", Amount: 200})
	require.NoError(t, err)
	assert.Equal(t, "ORD026", order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "Just now", order.Date)
	assert.Equal(t, fixedNow, order.CreatedAt)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 26)
	assert.Equal(t, "ORD026", all[0].ID)

	// Удаление не приводит к повторному использованию id
	require.NoError(t, repo.Delete(ctx, "ORD003"))
	next, err := repo.Insert(ctx, domain.CreateOrderRequest{Customer: "Y"})
	require.NoError(t, err)
	assert.Equal(t, "ORD027", next.ID)
}

func TestOrderRepository_Update(t *testing.T) {
	repo := NewOrderRepository(SeedOrders(fixedNow), clock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		status := domain.OrderStatusCancelled
		amount := 10.5
		order, err := repo.Update(ctx, "ORD002", domain.UpdateOrderRequest{Status: &status, Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, 10.5, order.Amount)
		assert.Equal(t, "Andi Morrisom", order.Customer)

		stored, err := repo.Get(ctx, "ORD002")
		require.NoError(t, err)
		assert.Equal(t, *order, *stored)
	})

	t.Run("Not found", func(t *testing.T) {
		customer := "nobody"
		_, err := repo.Update(ctx, "ORD999", domain.UpdateOrderRequest{Customer: &customer})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Invalid status", func(t *testing.T) {
		status := domain.OrderStatus("shipped")
		_, err := repo.Update(ctx, "ORD001", domain.UpdateOrderRequest{Status: &status})
		assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
	})
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := NewOrderRepository(SeedOrders(fixedNow), clock)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "ORD001"))
	require.NoError(t, repo.Delete(ctx, "ORD001"))

	_, err := repo.Get(ctx, "ORD001")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 24)
}

func TestOrderRepository_ConcurrentInsert(t *testing.T) {
	repo := NewOrderRepository(nil, clock)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Insert(ctx, domain.CreateOrderRequest{Customer: "c"})
		}()
	}
	wg.Wait()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 20)

	seen := make(map[string]bool)
	for _, o := range all {
		assert.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
}
