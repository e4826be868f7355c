package create_hold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/pkg/ptr"
	"github.com/calypso-charters/CharterBookingService/pkg/txmanager"
)

// UseCase use case для создания временного удержания слота
type UseCase struct {
	catalog         *domain.Catalog
	holdTTL         time.Duration
	reservationRepo ReservationRepository
	paceClient      PaceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog *domain.Catalog,
	holdTTL time.Duration,
	reservationRepo ReservationRepository,
	paceClient PaceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         catalog,
		holdTTL:         holdTTL,
		reservationRepo: reservationRepo,
		paceClient:      paceClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания удержания.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
// с блокировкой пересекающихся строк, чтобы два конкурентных запроса на один
// слот не могли оба получить удержание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHold: product=%s, slot=%s, date=%s, guests=%d",
		req.ProductSlug, req.SlotID, req.Date.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if isDateInPast(req.Date, now, uc.catalog.Location()) {
		uc.logger.Warn("CreateHold: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Считаем стоимость; расчёт заодно валидирует продукт, слот,
	// количество гостей и опции
	slot := domain.SlotID(req.SlotID)
	quote, err := uc.catalog.ComputeQuote(req.ProductSlug, slot, req.Guests, domain.QuoteOptions{
		Nobu:       req.Nobu,
		Catering:   req.Catering,
		VeganCount: req.VeganCount,
	})
	if err != nil {
		mapped := mapQuoteError(err)
		uc.logger.Warn("CreateHold: quote rejected: %v", err)
		return nil, mapped
	}

	// 5. Разворачиваем слот в конкретный интервал
	span, err := uc.catalog.Resolve(req.Date, slot)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve slot span: %v", ErrInternal, err)
	}

	// 6. Партнёрский фид проверяем до транзакции: его занятость нельзя
	// заблокировать в нашей БД, а держать транзакцию на время HTTP-запроса
	// нельзя
	blocks := uc.paceClient.GetBusyBlocksWithGracefulDegradation(ctx, span.Start, span.End)
	for _, b := range blocks {
		if span.Overlaps(domain.TimeRange{Start: b.StartAt, End: b.EndAt}) {
			uc.logger.Warn("CreateHold: span %s blocked by partner feed", span)
			return nil, ErrSlotNotAvailable
		}
	}

	holdExpiresAt := now.Add(uc.holdTTL)

	var result *domain.Reservation

	// 7. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Живые бронирования, пересекающие интервал (FOR UPDATE)
		overlapping, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationsFilter{
			From:     span.Start,
			To:       span.End,
			OnlyLive: true,
			Now:      now,
		})
		if err != nil {
			uc.logger.Error("CreateHold: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrInternal, err)
		}

		for _, r := range overlapping {
			if r.IsLive(now) && span.Overlaps(r.Range()) {
				uc.logger.Warn("CreateHold: span %s blocked by reservation id=%s", span, r.ID)
				return ErrSlotNotAvailable
			}
		}

		// 7.2. Создаем удержание
		reservation := &domain.Reservation{
			ID:               uuid.NewString(),
			ProductSlug:      req.ProductSlug,
			SlotID:           slot,
			StartAt:          span.Start,
			EndAt:            span.End,
			Status:           domain.StatusHold,
			HoldExpiresAt:    ptr.Ptr(holdExpiresAt),
			TotalAmountCents: quote.TotalCents,
			Currency:         quote.Currency,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			Notes:            req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateHold: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 7.3. Запись аудита в той же транзакции
		payload, err := json.Marshal(holdEventPayload{
			ProductSlug:      created.ProductSlug,
			SlotID:           created.SlotID,
			Guests:           req.Guests,
			TotalAmountCents: created.TotalAmountCents,
			HoldExpiresAt:    holdExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to marshal event payload: %v", ErrInternal, err)
		}

		if err := uc.reservationRepo.InsertEvent(txCtx, &domain.BookingEvent{
			ReservationID: created.ID,
			EventType:     domain.EventHoldCreated,
			EventData:     payload,
		}); err != nil {
			uc.logger.Error("CreateHold: failed to insert audit event: %v", err)
			return fmt.Errorf("%w: failed to insert audit event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации значит, что конкурент успел первым
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateHold: serialization conflict for span %s", span)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateHold: created hold id=%s, expires=%s",
		result.ID, holdExpiresAt.Format(time.RFC3339))

	breakdown := make([]BreakdownLine, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		breakdown = append(breakdown, BreakdownLine{Label: line.Label, AmountCents: line.AmountCents})
	}

	return &Response{
		ReservationID:    result.ID,
		Status:           string(result.Status),
		StartAt:          result.StartAt,
		EndAt:            result.EndAt,
		HoldExpiresAt:    holdExpiresAt,
		TotalAmountCents: result.TotalAmountCents,
		Currency:         result.Currency,
		Breakdown:        breakdown,
	}, nil
}
