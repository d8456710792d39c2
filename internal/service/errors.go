package service

import "errors"

// ErrEmptyResponse возвращается, когда API не вернул ни данных, ни ошибки
var ErrEmptyResponse = errors.New("empty response")

// rejectionMessage возвращает сообщение для rejected-фазы.
// Пустое сообщение ошибки заменяется fallback.
func rejectionMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
