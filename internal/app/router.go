package app

import (
	"github.com/avc/analytics-dashboard/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps.handlers)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Websocket не сжимается
	r.Get("/store/notifications/live", h.live.Live)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))

		// Симулятор API
		r.Mount("/api", h.simulator.Routes())

		r.Route("/store", func(r chi.Router) {
			setupStoreRoutes(r, h.store)
		})
	})
}

// setupStoreRoutes настраивает чтение состояния и запуск операций
func setupStoreRoutes(r chi.Router, s *handlers.StoreHandler) {
	r.Get("/state", s.State)
	r.Post("/reset", s.Reset)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", s.Dashboard)
		r.Post("/fetch", s.FetchDashboard)
		r.Post("/metrics/fetch", s.FetchMetrics)
		r.Post("/refresh", s.RefreshMetrics)
		r.Put("/metrics", s.PatchMetrics)
		r.Put("/loading", s.SetDashboardLoading)
		r.Post("/clear-error", s.ClearDashboardError)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/view", s.ProductsView)
		r.Post("/sort", s.ToggleProductsSort)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.Orders)
		r.Post("/", s.CreateOrder)
		r.Get("/view", s.OrdersView)
		r.Post("/sort", s.ToggleOrdersSort)
		r.Post("/fetch", s.FetchOrders)
		r.Post("/stats/fetch", s.FetchOrderStats)
		r.Put("/page", s.SetCurrentPage)
		r.Put("/selected", s.SetSelectedOrder)
		r.Put("/loading", s.SetOrdersLoading)
		r.Post("/clear-error", s.ClearOrdersError)
		r.Post("/{id}/fetch", s.FetchOrder)
		r.Put("/{id}", s.UpdateOrder)
		r.Put("/{id}/status", s.UpdateOrderStatus)
		r.Delete("/{id}", s.DeleteOrder)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", s.Notifications)
		r.Post("/fetch", s.FetchNotifications)
		r.Post("/unread-count/fetch", s.FetchUnreadCount)
		r.Put("/read-all", s.MarkAllNotificationsAsRead)
		r.Put("/read-all-local", s.MarkAllNotificationsReadLocal)
		r.Put("/connection", s.SetRealTimeConnection)
		r.Post("/subscribe", s.SubscribeNotifications)
		r.Post("/unsubscribe", s.UnsubscribeNotifications)
		r.Post("/clear-error", s.ClearNotificationsError)
		r.Put("/{id}/read", s.MarkNotificationAsRead)
		r.Put("/{id}/read-local", s.MarkNotificationReadLocal)
		r.Delete("/{id}", s.DeleteNotification)
	})

	r.Route("/search", func(r chi.Router) {
		r.Get("/", s.Search)
		r.Delete("/", s.ClearSearch)
		r.Put("/term", s.SetSearchTerm)
		r.Put("/results", s.SetSearchResults)
		r.Put("/searching", s.SetIsSearching)
		r.Post("/history", s.AddSearchHistory)
		r.Delete("/history", s.ClearSearchHistory)
	})
}
