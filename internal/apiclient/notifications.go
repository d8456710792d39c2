package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"go.uber.org/zap"
)

// GetNotifications возвращает все уведомления со счетчиками
func (c *Client) GetNotifications(ctx context.Context) (*domain.NotificationsPage, error) {
	var page domain.NotificationsPage
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MarkAsRead отмечает уведомление прочитанным
func (c *Client) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := c.do(ctx, http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkAllAsRead отмечает все уведомления прочитанными
func (c *Client) MarkAllAsRead(ctx context.Context) (*domain.MarkAllReadResult, error) {
	var result domain.MarkAllReadResult
	if err := c.do(ctx, http.MethodPut, "/notifications/read-all", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteNotification удаляет уведомление
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(id), nil, nil)
}

// GetUnreadCount возвращает количество непрочитанных уведомлений
func (c *Client) GetUnreadCount(ctx context.Context) (int, error) {
	var count domain.UnreadCount
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

// Subscribe запускает поток живых уведомлений. На каждом тике интервала
// с заданной вероятностью симулятор создает уведомление, и оно передается
// в callback. Поток останавливается вызовом Unsubscribe или отменой ctx.
// Unsubscribe нельзя вызывать из callback.
func (c *Client) Subscribe(ctx context.Context, callback func(domain.Notification)) (domain.Unsubscribe, error) {
	if err := ctx.Err(); err != nil {
		return nil, &APIError{Message: err.Error(), Status: http.StatusInternalServerError, Err: err}
	}
	if c.cfg.RealTimeInterval <= 0 {
		return nil, &APIError{Message: "real-time interval must be positive", Status: http.StatusBadRequest}
	}

	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(c.cfg.RealTimeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-subCtx.Done():
				return
			case <-ticker.C:
			}

			if !c.chance(c.cfg.RealTimePushProbability) {
				continue
			}

			var n domain.Notification
			if err := c.do(subCtx, http.MethodPost, "/notifications/simulate", nil, &n); err != nil {
				if subCtx.Err() == nil {
					c.logger.Warn("failed to receive live notification", zap.Error(err))
				}
				continue
			}

			if subCtx.Err() != nil {
				return
			}
			callback(n)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}
