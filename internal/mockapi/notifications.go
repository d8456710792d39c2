package mockapi

import (
	"errors"
	"net/http"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var liveMessages = []string{
	"New order received",
	"System update completed",
	"User registration pending",
	"Data backup finished",
	"Bug report submitted",
}

func countUnread(notifications []domain.Notification) int {
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	return unread
}

// ListNotifications возвращает все уведомления со счетчиками
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.List(r.Context())
	if err != nil {
		h.notificationError(w, err)
		return
	}

	h.writeData(w, domain.NotificationsPage{
		Notifications: notifications,
		UnreadCount:   countUnread(notifications),
		TotalCount:    len(notifications),
	})
}

// UnreadCount возвращает количество непрочитанных уведомлений
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.List(r.Context())
	if err != nil {
		h.notificationError(w, err)
		return
	}
	h.writeData(w, domain.UnreadCount{Count: countUnread(notifications)})
}

// MarkAllRead отмечает все уведомления прочитанными
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	updated, err := h.notifications.MarkAllRead(r.Context())
	if err != nil {
		h.notificationError(w, err)
		return
	}
	h.writeData(w, domain.MarkAllReadResult{UpdatedCount: updated})
}

// MarkRead отмечает уведомление прочитанным
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notificationError(w, err)
		return
	}
	h.writeData(w, n)
}

// DeleteNotification удаляет уведомление
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.notificationError(w, err)
		return
	}
	h.writeData(w, nil)
}

// SimulateNotification создает случайное непрочитанное уведомление
func (h *Handler) SimulateNotification(w http.ResponseWriter, r *http.Request) {
	n := h.randomNotification()
	if err := h.notifications.Insert(r.Context(), n); err != nil {
		h.notificationError(w, err)
		return
	}

	h.writeDataStatus(w, http.StatusCreated, n)
}

func (h *Handler) randomNotification() domain.Notification {
	now := h.now()

	h.rndMu.Lock()
	typ := domain.NotificationTypes[h.rnd.IntN(len(domain.NotificationTypes))]
	message := liveMessages[h.rnd.IntN(len(liveMessages))]
	h.rndMu.Unlock()

	return domain.Notification{
		ID:        "notif_" + ulid.Make().String(),
		Type:      typ,
		Message:   message,
		Time:      now.Format("3:04:05 PM"),
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (h *Handler) notificationError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotificationNotFound) {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error("notification request failed", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, "internal error")
}
