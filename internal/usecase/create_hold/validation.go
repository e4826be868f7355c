package create_hold

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductSlug == "" {
		return fmt.Errorf("%w: productSlug is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.CustomerName != nil && len(*req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CustomerEmail != nil && !strings.Contains(*req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is malformed", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня в операционной
// таймзоне. Дата трактуется как календарная - по компонентам год/месяц/день
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	n := now.In(loc)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	nowOnly := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return dateOnly.Before(nowOnly)
}

// mapQuoteError конвертирует доменные ошибки расчёта стоимости в ошибки usecase
func mapQuoteError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownProduct):
		return ErrProductNotFound
	case errors.Is(err, domain.ErrProductNotBookable):
		return ErrProductNotBookable
	case errors.Is(err, domain.ErrUnknownSlot), errors.Is(err, domain.ErrSlotNotForProduct):
		return fmt.Errorf("%w: %v", ErrSlotNotForProduct, err)
	case errors.Is(err, domain.ErrGuestCountOutOfBounds), errors.Is(err, domain.ErrVeganCountInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidGuests, err)
	case errors.Is(err, domain.ErrOptionNotAllowed):
		return fmt.Errorf("%w: %v", ErrOptionNotAllowed, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
