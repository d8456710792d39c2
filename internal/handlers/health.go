package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// StoreStatus сообщает о состоянии хранилища
type StoreStatus interface {
	Closed() bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	store  StoreStatus
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(store StoreStatus, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
		Store:  "ok",
	}

	if h.store.Closed() {
		response.Status = "degraded"
		response.Store = "closed"
		h.logger.Warn("health check: store is closed")
	}

	w.Header().Set("Content-Type", "application/json")
	if response.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.store.Closed() {
		h.logger.Warn("readiness check failed: store is closed")
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
