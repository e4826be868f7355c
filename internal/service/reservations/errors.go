package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrHoldExpired возвращается при попытке подтвердить истёкшее удержание
	ErrHoldExpired = errors.New("hold has expired")

	// ErrCannotConfirm возвращается при недопустимом переходе в CONFIRMED
	ErrCannotConfirm = errors.New("reservation cannot be confirmed")

	// ErrCannotCancel возвращается при недопустимом переходе в CANCELLED
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrConflict возвращается при конфликте конкурентных переходов
	ErrConflict = errors.New("concurrent transition conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
