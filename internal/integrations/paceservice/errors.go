package paceservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paceservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе фида
	ErrInvalidResponse = errors.New("paceservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что фид недоступен и его вклад в занятость принят пустым
	ErrServiceDegraded = errors.New("paceservice unavailable: graceful degradation applied")
)
