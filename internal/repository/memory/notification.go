package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// NotificationRepository реализует domain.NotificationRepository в памяти процесса
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []domain.Notification
	now           func() time.Time
}

// NewNotificationRepository создает NotificationRepository с начальным набором
func NewNotificationRepository(seed []domain.Notification, now func() time.Time) *NotificationRepository {
	return &NotificationRepository{
		notifications: slices.Clone(seed),
		now:           now,
	}
}

// List возвращает все уведомления
func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.notifications), nil
}

// Get возвращает уведомление по id
func (r *NotificationRepository) Get(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotificationNotFound
	}
	n := r.notifications[i]
	return &n, nil
}

// Insert добавляет уведомление в начало набора
func (r *NotificationRepository) Insert(ctx context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = slices.Insert(r.notifications, 0, n)
	return nil
}

// MarkRead отмечает уведомление прочитанным
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotificationNotFound
	}
	r.notifications[i].IsRead = true
	r.notifications[i].UpdatedAt = r.now()
	n := r.notifications[i]
	return &n, nil
}

// MarkAllRead отмечает все уведомления прочитанными и возвращает число
// ранее непрочитанных
func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	updated := 0
	for i := range r.notifications {
		if !r.notifications[i].IsRead {
			updated++
		}
		r.notifications[i].IsRead = true
		r.notifications[i].UpdatedAt = now
	}
	return updated, nil
}

// Delete удаляет уведомление, отсутствие уведомления не считается ошибкой
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.notifications = slices.Delete(r.notifications, i, i+1)
	}
	return nil
}

func (r *NotificationRepository) indexOf(id string) int {
	return slices.IndexFunc(r.notifications, func(n domain.Notification) bool { return n.ID == id })
}
