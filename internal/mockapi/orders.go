package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// queryInt читает положительное целое из query, def при отсутствии
func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

// ListOrders возвращает страницу заказов
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", defaultPage)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid page")
		return
	}
	limit, ok := queryInt(r, "limit", defaultLimit)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	result, err := h.orders.List(r.Context(), page, limit)
	if err != nil {
		h.orderError(w, err)
		return
	}

	h.writeData(w, result)
}

// OrderStats возвращает статистику по всем заказам
func (h *Handler) OrderStats(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.All(r.Context())
	if err != nil {
		h.logger.Error("failed to load orders", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	h.writeData(w, computeStats(orders))
}

func computeStats(orders []domain.Order) domain.OrderStats {
	stats := domain.OrderStats{TotalOrders: len(orders)}
	revenue := decimal.Zero
	for _, o := range orders {
		switch o.Status {
		case domain.OrderStatusPending:
			stats.PendingOrders++
		case domain.OrderStatusCompleted:
			stats.CompletedOrders++
		case domain.OrderStatusCancelled:
			stats.CancelledOrders++
		}
		revenue = revenue.Add(decimal.NewFromFloat(o.Amount))
	}
	stats.TotalRevenue = revenue.InexactFloat64()
	return stats
}

// GetOrder возвращает заказ по id
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.orderError(w, err)
		return
	}
	h.writeData(w, order)
}

// CreateOrder создает заказ
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Customer) == "" || req.Amount < 0 {
		h.writeError(w, http.StatusBadRequest, "customer is required and amount must not be negative")
		return
	}
	req.Amount = roundCents(req.Amount)

	order, err := h.orders.Insert(r.Context(), req)
	if err != nil {
		h.orderError(w, err)
		return
	}

	h.writeDataStatus(w, http.StatusCreated, order)
}

// UpdateOrder частично обновляет заказ
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		h.writeError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}

	order, err := h.orders.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.orderError(w, err)
		return
	}
	h.writeData(w, order)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// UpdateOrderStatus изменяет статус заказа
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidOrderStatus.Error())
		return
	}

	order, err := h.orders.Update(r.Context(), chi.URLParam(r, "id"), domain.UpdateOrderRequest{Status: &req.Status})
	if err != nil {
		h.orderError(w, err)
		return
	}
	h.writeData(w, order)
}

// DeleteOrder удаляет заказ
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.orderError(w, err)
		return
	}
	h.writeData(w, nil)
}

func (h *Handler) orderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidOrderStatus), errors.Is(err, domain.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("order request failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
