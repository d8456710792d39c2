package domain

import "errors"

// Ошибки заказов
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// Ошибки уведомлений
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Ошибки ввода
var (
	ErrInvalidInput = errors.New("invalid input")
)
