package service

import (
	"context"
	"fmt"

	"github.com/avc/analytics-dashboard/internal/store"
	"go.uber.org/zap"
)

// Dispatcher принимает действия хранилища
type Dispatcher interface {
	Dispatch(action store.Action) error
}

// operation описывает одну асинхронную операцию над хранилищем
type operation[T any] struct {
	service   string
	name      string
	fallback  string
	requestID string
	action    func(store.Outcome[T]) store.Action
	call      func(context.Context) (T, error)
}

// execute отправляет pending, выполняет вызов и отправляет fulfilled или rejected
func execute[T any](ctx context.Context, d Dispatcher, logger *zap.Logger, op operation[T]) (T, error) {
	var zero T

	logger.Debug("operation started",
		zap.String("operation", op.name),
		zap.String("request_id", op.requestID),
	)

	if err := d.Dispatch(op.action(store.Pending[T](op.requestID))); err != nil {
		return zero, fmt.Errorf("%s service: failed to dispatch %s: %w", op.service, op.name, err)
	}

	value, err := op.call(ctx)
	if err != nil {
		logger.Warn("operation failed",
			zap.String("operation", op.name),
			zap.String("request_id", op.requestID),
			zap.Error(err),
		)
		rejected := store.Rejected[T](op.requestID, rejectionMessage(err, op.fallback))
		if dErr := d.Dispatch(op.action(rejected)); dErr != nil {
			return zero, fmt.Errorf("%s service: failed to dispatch %s: %w", op.service, op.name, dErr)
		}
		return zero, fmt.Errorf("%s service: failed to %s: %w", op.service, op.name, err)
	}

	if err := d.Dispatch(op.action(store.Fulfilled(op.requestID, value))); err != nil {
		return zero, fmt.Errorf("%s service: failed to dispatch %s: %w", op.service, op.name, err)
	}
	return value, nil
}

// deref превращает вызов, возвращающий указатель, в вызов со значением
func deref[T any](fn func(context.Context) (*T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var zero T
		v, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if v == nil {
			return zero, ErrEmptyResponse
		}
		return *v, nil
	}
}
