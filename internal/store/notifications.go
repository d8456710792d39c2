package store

import (
	"slices"
	"strconv"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// NotificationsState содержит уведомления, новые первыми
type NotificationsState struct {
	Notifications       []domain.Notification `json:"notifications"`
	UnreadCount         int                   `json:"unreadCount"`
	TotalCount          int                   `json:"totalCount"`
	IsRealTimeConnected bool                  `json:"isRealTimeConnected"`
	loadable

	listRequest string
}

func initialNotifications(now time.Time) NotificationsState {
	seed := []struct {
		typ     domain.NotificationType
		message string
		time    string
		isRead  bool
	}{
		{domain.NotificationTypeBug, "You have a bug that needs...", "9:00 AM", false},
		{domain.NotificationTypeUser, "New user registered", "8:45 AM", false},
		{domain.NotificationTypeBug, "You have a bug that needs...", "8:30 AM", false},
		{domain.NotificationTypeSubscription, "Andi Lane subscribed to you", "8:15 AM", true},
		{domain.NotificationTypeData, "Released a new version", "8:00 AM", true},
		{domain.NotificationTypeBug, "Submitted a bug", "7:45 AM", true},
		{domain.NotificationTypeData, "Modified a data in Figma", "7:30 AM", true},
		{domain.NotificationTypePage, "Deleted a page in Project X", "7:15 AM", true},
	}

	notifications := make([]domain.Notification, 0, len(seed))
	for i, n := range seed {
		notifications = append(notifications, domain.Notification{
			ID:        strconv.Itoa(i + 1),
			Type:      n.typ,
			Message:   n.message,
			Time:      n.time,
			IsRead:    n.isRead,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return NotificationsState{
		Notifications: notifications,
		UnreadCount:   3,
		TotalCount:    8,
	}
}

func (n NotificationsState) clone() NotificationsState {
	n.Notifications = slices.Clone(n.Notifications)
	return n
}

func (n *NotificationsState) indexOf(id string) int {
	return slices.IndexFunc(n.Notifications, func(item domain.Notification) bool { return item.ID == id })
}

// markRead отмечает уведомление прочитанным, повторная отметка ничего не меняет
func (n *NotificationsState) markRead(id string, now time.Time) {
	i := n.indexOf(id)
	if i < 0 || n.Notifications[i].IsRead {
		return
	}
	n.Notifications[i].IsRead = true
	n.Notifications[i].UpdatedAt = now
	n.UnreadCount = max(0, n.UnreadCount-1)
}

func (n *NotificationsState) markAllRead(now time.Time) {
	for i := range n.Notifications {
		n.Notifications[i].IsRead = true
		n.Notifications[i].UpdatedAt = now
	}
	n.UnreadCount = 0
}

// FetchNotifications загружает уведомления, счетчики берутся из ответа как есть
type FetchNotifications struct {
	Outcome Outcome[domain.NotificationsPage]
}

func (a FetchNotifications) Type() string {
	return "notifications/fetchNotifications/" + a.Outcome.Phase.String()
}

func (a FetchNotifications) apply(s *State, _ time.Time) {
	n := &s.Notifications
	out := a.Outcome
	switch out.Phase {
	case PhasePending:
		if out.RequestID != "" {
			n.listRequest = out.RequestID
		}
		n.begin()
	case PhaseFulfilled:
		if stale(n.listRequest, out.RequestID) {
			return
		}
		n.succeed()
		n.Notifications = slices.Clone(out.Value.Notifications)
		n.UnreadCount = out.Value.UnreadCount
		n.TotalCount = out.Value.TotalCount
	case PhaseRejected:
		if stale(n.listRequest, out.RequestID) {
			return
		}
		n.fail(out.Err)
	}
}

// MarkNotificationAsRead отмечает уведомление прочитанным через API. Value содержит id.
type MarkNotificationAsRead struct {
	Outcome Outcome[string]
}

func (a MarkNotificationAsRead) Type() string {
	return "notifications/markNotificationAsRead/" + a.Outcome.Phase.String()
}

func (a MarkNotificationAsRead) apply(s *State, now time.Time) {
	n := &s.Notifications
	switch a.Outcome.Phase {
	case PhasePending:
		n.begin()
	case PhaseFulfilled:
		n.succeed()
		n.markRead(a.Outcome.Value, now)
	case PhaseRejected:
		n.fail(a.Outcome.Err)
	}
}

// MarkAllNotificationsAsRead отмечает все уведомления прочитанными через API.
// Value содержит количество обновленных записей на сервере.
type MarkAllNotificationsAsRead struct {
	Outcome Outcome[int]
}

func (a MarkAllNotificationsAsRead) Type() string {
	return "notifications/markAllNotificationsAsRead/" + a.Outcome.Phase.String()
}

func (a MarkAllNotificationsAsRead) apply(s *State, now time.Time) {
	n := &s.Notifications
	switch a.Outcome.Phase {
	case PhasePending:
		n.begin()
	case PhaseFulfilled:
		n.succeed()
		n.markAllRead(now)
	case PhaseRejected:
		n.fail(a.Outcome.Err)
	}
}

// DeleteNotification удаляет уведомление через API. Value содержит id.
type DeleteNotification struct {
	Outcome Outcome[string]
}

func (a DeleteNotification) Type() string {
	return "notifications/deleteNotification/" + a.Outcome.Phase.String()
}

func (a DeleteNotification) apply(s *State, _ time.Time) {
	n := &s.Notifications
	switch a.Outcome.Phase {
	case PhasePending:
		n.begin()
	case PhaseFulfilled:
		n.succeed()
		i := n.indexOf(a.Outcome.Value)
		if i < 0 {
			return
		}
		if !n.Notifications[i].IsRead {
			n.UnreadCount = max(0, n.UnreadCount-1)
		}
		n.Notifications = slices.Delete(n.Notifications, i, i+1)
		n.TotalCount = max(0, n.TotalCount-1)
	case PhaseRejected:
		n.fail(a.Outcome.Err)
	}
}

// FetchUnreadCount загружает счетчик непрочитанных
type FetchUnreadCount struct {
	Outcome Outcome[int]
}

func (a FetchUnreadCount) Type() string {
	return "notifications/fetchUnreadCount/" + a.Outcome.Phase.String()
}

func (a FetchUnreadCount) apply(s *State, _ time.Time) {
	n := &s.Notifications
	switch a.Outcome.Phase {
	case PhasePending:
		n.begin()
	case PhaseFulfilled:
		n.succeed()
		n.UnreadCount = a.Outcome.Value
	case PhaseRejected:
		n.fail(a.Outcome.Err)
	}
}

// SubscribeRealTime отражает результат подписки на живые уведомления
type SubscribeRealTime struct {
	Outcome Outcome[struct{}]
}

func (a SubscribeRealTime) Type() string {
	return "notifications/subscribeToRealTimeNotifications/" + a.Outcome.Phase.String()
}

func (a SubscribeRealTime) apply(s *State, _ time.Time) {
	n := &s.Notifications
	switch a.Outcome.Phase {
	case PhasePending:
		n.begin()
	case PhaseFulfilled:
		n.succeed()
		n.IsRealTimeConnected = true
	case PhaseRejected:
		n.fail(a.Outcome.Err)
		n.IsRealTimeConnected = false
	}
}

// AddNotification добавляет уведомление в начало списка
type AddNotification struct {
	Notification domain.Notification
}

func (AddNotification) Type() string { return "notifications/addNotification" }

func (a AddNotification) apply(s *State, _ time.Time) {
	n := &s.Notifications
	n.Notifications = slices.Insert(n.Notifications, 0, a.Notification)
	if !a.Notification.IsRead {
		n.UnreadCount++
	}
	n.TotalCount++
}

// MarkAsRead локально отмечает уведомление прочитанным
type MarkAsRead struct {
	ID string
}

func (MarkAsRead) Type() string { return "notifications/markAsRead" }

func (a MarkAsRead) apply(s *State, now time.Time) {
	s.Notifications.markRead(a.ID, now)
}

// MarkAllAsRead локально отмечает все уведомления прочитанными
type MarkAllAsRead struct{}

func (MarkAllAsRead) Type() string { return "notifications/markAllAsRead" }

func (MarkAllAsRead) apply(s *State, now time.Time) {
	s.Notifications.markAllRead(now)
}

// SetRealTimeConnection устанавливает флаг живой подписки
type SetRealTimeConnection struct {
	Connected bool
}

func (SetRealTimeConnection) Type() string { return "notifications/setRealTimeConnection" }

func (a SetRealTimeConnection) apply(s *State, _ time.Time) {
	s.Notifications.IsRealTimeConnected = a.Connected
}

// ClearNotificationsError сбрасывает ошибку уведомлений
type ClearNotificationsError struct{}

func (ClearNotificationsError) Type() string { return "notifications/clearError" }

func (ClearNotificationsError) apply(s *State, _ time.Time) {
	s.Notifications.Error = ""
}
