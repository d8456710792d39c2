package mockapi

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Response представляет конверт успешного ответа
type Response struct {
	Data    any  `json:"data"`
	Success bool `json:"success"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Handler обслуживает эндпоинты симулятора поверх репозиториев
type Handler struct {
	orders        domain.OrderRepository
	notifications domain.NotificationRepository
	dashboard     *Dashboard
	logger        *zap.Logger
	now           func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewHandler создает новый Handler
func NewHandler(
	orders domain.OrderRepository,
	notifications domain.NotificationRepository,
	dashboard *Dashboard,
	rnd *rand.Rand,
	now func() time.Time,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		orders:        orders,
		notifications: notifications,
		dashboard:     dashboard,
		rnd:           rnd,
		now:           now,
		logger:        logger,
	}
}

// Routes возвращает маршруты симулятора относительно префикса /api
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/overview", h.Overview)
		r.Get("/metrics", h.Metrics)
		r.Post("/refresh-metrics", h.RefreshMetrics)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/stats", h.OrderStats)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}", h.UpdateOrder)
		r.Put("/{id}/status", h.UpdateOrderStatus)
		r.Delete("/{id}", h.DeleteOrder)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.ListNotifications)
		r.Get("/unread-count", h.UnreadCount)
		r.Put("/read-all", h.MarkAllRead)
		r.Post("/simulate", h.SimulateNotification)
		r.Put("/{id}/read", h.MarkRead)
		r.Delete("/{id}", h.DeleteNotification)
	})

	return r
}

// Server возвращает http.Handler с маршрутами под префиксом /api
func (h *Handler) Server() http.Handler {
	r := chi.NewRouter()
	r.Mount("/api", h.Routes())
	return r
}

func (h *Handler) writeData(w http.ResponseWriter, data any) {
	h.writeDataStatus(w, http.StatusOK, data)
}

func (h *Handler) writeDataStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Data: data, Success: true}); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Message: message, Status: status}); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}

// Overview возвращает снимок дашборда
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.dashboard.Overview())
}

// Metrics возвращает метрики
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.dashboard.Metrics())
}

// RefreshMetrics возвращает обновленные метрики
func (h *Handler) RefreshMetrics(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.dashboard.Refresh())
}
