package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationsService выполняет асинхронные операции над уведомлениями
// и управляет подпиской на живые уведомления
type NotificationsService struct {
	dispatcher Dispatcher
	api        domain.NotificationsAPI
	logger     *zap.Logger

	mu          sync.Mutex
	unsubscribe domain.Unsubscribe
}

// NewNotificationsService создает новый NotificationsService
func NewNotificationsService(dispatcher Dispatcher, api domain.NotificationsAPI, logger *zap.Logger) *NotificationsService {
	return &NotificationsService{
		dispatcher: dispatcher,
		api:        api,
		logger:     logger,
	}
}

func notificationsOp[T any](name, fallback string, action func(store.Outcome[T]) store.Action, call func(context.Context) (T, error)) operation[T] {
	return operation[T]{
		service:  "notifications",
		name:     name,
		fallback: fallback,
		action:   action,
		call:     call,
	}
}

// FetchNotifications загружает все уведомления
func (s *NotificationsService) FetchNotifications(ctx context.Context) (domain.NotificationsPage, error) {
	op := notificationsOp("fetch notifications", "Failed to fetch notifications",
		func(o store.Outcome[domain.NotificationsPage]) store.Action { return store.FetchNotifications{Outcome: o} },
		deref(s.api.GetNotifications),
	)
	op.requestID = uuid.NewString()
	return execute(ctx, s.dispatcher, s.logger, op)
}

// MarkAsRead отмечает уведомление прочитанным
func (s *NotificationsService) MarkAsRead(ctx context.Context, id string) error {
	_, err := execute(ctx, s.dispatcher, s.logger, notificationsOp("mark notification as read", "Failed to mark notification as read",
		func(o store.Outcome[string]) store.Action { return store.MarkNotificationAsRead{Outcome: o} },
		func(ctx context.Context) (string, error) {
			if _, err := s.api.MarkAsRead(ctx, id); err != nil {
				return "", err
			}
			return id, nil
		},
	))
	return err
}

// MarkAllAsRead отмечает все уведомления прочитанными и возвращает число обновленных
func (s *NotificationsService) MarkAllAsRead(ctx context.Context) (int, error) {
	return execute(ctx, s.dispatcher, s.logger, notificationsOp("mark all notifications as read", "Failed to mark all notifications as read",
		func(o store.Outcome[int]) store.Action { return store.MarkAllNotificationsAsRead{Outcome: o} },
		func(ctx context.Context) (int, error) {
			result, err := s.api.MarkAllAsRead(ctx)
			if err != nil {
				return 0, err
			}
			if result == nil {
				return 0, ErrEmptyResponse
			}
			return result.UpdatedCount, nil
		},
	))
}

// DeleteNotification удаляет уведомление
func (s *NotificationsService) DeleteNotification(ctx context.Context, id string) error {
	_, err := execute(ctx, s.dispatcher, s.logger, notificationsOp("delete notification", "Failed to delete notification",
		func(o store.Outcome[string]) store.Action { return store.DeleteNotification{Outcome: o} },
		func(ctx context.Context) (string, error) {
			if err := s.api.DeleteNotification(ctx, id); err != nil {
				return "", err
			}
			return id, nil
		},
	))
	return err
}

// FetchUnreadCount загружает счетчик непрочитанных
func (s *NotificationsService) FetchUnreadCount(ctx context.Context) (int, error) {
	return execute(ctx, s.dispatcher, s.logger, notificationsOp("fetch unread count", "Failed to fetch unread count",
		func(o store.Outcome[int]) store.Action { return store.FetchUnreadCount{Outcome: o} },
		s.api.GetUnreadCount,
	))
}

// Subscribe подписывается на живые уведомления. Каждое полученное
// уведомление добавляется в хранилище. Повторный вызов при активной
// подписке ничего не делает.
func (s *NotificationsService) Subscribe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unsubscribe != nil {
		return nil
	}

	_, err := execute(ctx, s.dispatcher, s.logger, notificationsOp("subscribe to notifications", "Failed to subscribe to notifications",
		func(o store.Outcome[struct{}]) store.Action { return store.SubscribeRealTime{Outcome: o} },
		func(ctx context.Context) (struct{}, error) {
			unsubscribe, err := s.api.Subscribe(ctx, s.receive)
			if err != nil {
				return struct{}{}, err
			}
			s.unsubscribe = unsubscribe
			return struct{}{}, nil
		},
	))
	return err
}

func (s *NotificationsService) receive(n domain.Notification) {
	if err := s.dispatcher.Dispatch(store.AddNotification{Notification: n}); err != nil {
		if errors.Is(err, store.ErrStoreClosed) {
			s.logger.Debug("live notification dropped", zap.String("id", n.ID))
			return
		}
		s.logger.Warn("failed to dispatch live notification", zap.String("id", n.ID), zap.Error(err))
		return
	}
	s.logger.Debug("live notification received", zap.String("id", n.ID), zap.String("type", string(n.Type)))
}

// Unsubscribe останавливает подписку и сбрасывает флаг соединения
func (s *NotificationsService) Unsubscribe() error {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	if err := s.dispatcher.Dispatch(store.SetRealTimeConnection{Connected: false}); err != nil {
		return fmt.Errorf("notifications service: failed to dispatch unsubscribe: %w", err)
	}
	return nil
}
