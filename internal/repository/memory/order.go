package memory

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// MaxPageLimit ограничивает размер страницы заказов
const MaxPageLimit = 100

// OrderRepository реализует domain.OrderRepository в памяти процесса
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	nextID int
	now    func() time.Time
}

// NewOrderRepository создает OrderRepository с начальным набором заказов
func NewOrderRepository(seed []domain.Order, now func() time.Time) *OrderRepository {
	return &OrderRepository{
		orders: slices.Clone(seed),
		nextID: len(seed) + 1,
		now:    now,
	}
}

// List возвращает страницу заказов
func (r *OrderRepository) List(ctx context.Context, page, limit int) (*domain.OrdersPage, error) {
	if page < 1 || limit < 1 || limit > MaxPageLimit || page-1 > (math.MaxInt-limit)/limit {
		return nil, fmt.Errorf("repository: page %d limit %d: %w", page, limit, domain.ErrInvalidInput)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.orders)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	return &domain.OrdersPage{
		Orders:      slices.Clone(r.orders[start:end]),
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
	}, nil
}

// All возвращает все заказы
func (r *OrderRepository) All(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.orders), nil
}

// Get возвращает заказ по id
func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrOrderNotFound
	}
	order := r.orders[i]
	return &order, nil
}

// Insert создает заказ в статусе pending и добавляет его в начало набора
func (r *OrderRepository) Insert(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := domain.Order{
		ID:        fmt.Sprintf("ORD%03d", r.nextID),
		Customer:  req.Customer,
		Location:  req.Location,
		Member:    req.Member,
		Status:    domain.OrderStatusPending,
		Date:      "Just now",
		Amount:    req.Amount,
		CreatedAt: r.now(),
	}
	r.nextID++
	r.orders = slices.Insert(r.orders, 0, order)

	return &order, nil
}

// Update применяет частичное обновление к заказу
func (r *OrderRepository) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrOrderNotFound
	}
	r.orders[i] = req.Apply(r.orders[i])
	order := r.orders[i]
	return &order, nil
}

// Delete удаляет заказ, отсутствие заказа не считается ошибкой
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.orders = slices.Delete(r.orders, i, i+1)
	}
	return nil
}

func (r *OrderRepository) indexOf(id string) int {
	return slices.IndexFunc(r.orders, func(o domain.Order) bool { return o.ID == id })
}
