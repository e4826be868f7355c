package get_availability

import (
	"fmt"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}

	if req.ToDate.IsZero() {
		return fmt.Errorf("%w: toDate is required", ErrInvalidInput)
	}

	if req.ProductSlug != nil && *req.ProductSlug == "" {
		return fmt.Errorf("%w: productSlug must not be empty", ErrInvalidInput)
	}

	return nil
}

// validateDayRange проверяет упорядоченность и размер диапазона.
// from и to уже нормализованы к началу дня в операционной таймзоне
func validateDayRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: toDate %s is before fromDate %s",
			ErrInvalidDateRange, to.Format(domain.DateFormat), from.Format(domain.DateFormat))
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > domain.MaxAvailabilityRangeDays {
		return fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLarge, days, domain.MaxAvailabilityRangeDays)
	}

	return nil
}
