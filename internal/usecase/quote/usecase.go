package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// UseCase use case для расчёта стоимости чартера
type UseCase struct {
	catalog *domain.Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog *domain.Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет use case расчёта стоимости.
// Расчёт детерминирован: одинаковый запрос всегда даёт одинаковую
// детализацию и итог
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Quote: validation failed: %v", err)
		return nil, err
	}

	q, err := uc.catalog.ComputeQuote(req.ProductSlug, domain.SlotID(req.SlotID), req.Guests, domain.QuoteOptions{
		Nobu:       req.Nobu,
		Catering:   req.Catering,
		VeganCount: req.VeganCount,
	})
	if err != nil {
		mapped := mapQuoteError(err)
		uc.logger.Warn("Quote: rejected for product=%s, slot=%s: %v", req.ProductSlug, req.SlotID, err)
		return nil, mapped
	}

	uc.logger.Info("Quote: product=%s, slot=%s, guests=%d, total=%d %s",
		req.ProductSlug, req.SlotID, req.Guests, q.TotalCents, q.Currency)

	breakdown := make([]Line, 0, len(q.Lines))
	for _, line := range q.Lines {
		breakdown = append(breakdown, Line{Label: line.Label, AmountCents: line.AmountCents})
	}

	return &Response{
		Currency:         q.Currency,
		Breakdown:        breakdown,
		TotalAmountCents: q.TotalCents,
	}, nil
}

// mapQuoteError конвертирует доменные ошибки расчёта в ошибки usecase
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
