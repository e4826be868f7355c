package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	reservationRepo "github.com/calypso-charters/CharterBookingService/internal/infra/storage/reservation"
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations/models"
	"github.com/calypso-charters/CharterBookingService/pkg/ptr"
	"github.com/calypso-charters/CharterBookingService/pkg/txmanager"
)

// Service сервис жизненного цикла бронирований.
// Все переходы статусов идут через сериализуемые транзакции с блокировкой
// строки: на одно бронирование в каждый момент только один писатель
type Service struct {
	catalog         *domain.Catalog
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	catalog *domain.Catalog,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		catalog:         catalog,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// confirmEventPayload полезная нагрузка аудит-события confirmed
type confirmEventPayload struct {
	ProductSlug      string        `json:"product_slug"`
	SlotID           domain.SlotID `json:"slot_id"`
	TotalAmountCents int64         `json:"total_amount_cents"`
}

// cancelEventPayload полезная нагрузка аудит-события cancelled
type cancelEventPayload struct {
	Reason            *string `json:"reason,omitempty"`
	RefundStatus      string  `json:"refund_status"`
	RefundAmountCents int64   `json:"refund_amount_cents"`
}

// Confirm переводит удержание в CONFIRMED.
//
// Допустимый переход только HOLD -> CONFIRMED при неистёкшем hold_expires_at.
// Повторное подтверждение уже подтверждённого бронирования - идемпотентный
// no-op: клиент, повторивший запрос после таймаута сети, получает успех
func (s *Service) Confirm(ctx context.Context, reservationID string) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: reservation id=%s", reservationID)

	if reservationID == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	var result *domain.Reservation

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// GetByID внутри транзакции блокирует строку (FOR UPDATE)
		res, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Confirm: repository error for id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		switch {
		case res.Status == domain.StatusConfirmed:
			s.logger.Info("Confirm: reservation id=%s already confirmed, no-op", reservationID)
			result = res
			return nil

		case res.Status == domain.StatusCancelled:
			s.logger.Warn("Confirm: reservation id=%s is cancelled", reservationID)
			return ErrCannotConfirm

		case res.IsExpiredHold(now):
			s.logger.Warn("Confirm: hold id=%s expired at %s", reservationID, res.HoldExpiresAt.Format(time.RFC3339))
			return ErrHoldExpired
		}

		if !res.CanBeConfirmed(now) {
			return ErrCannotConfirm
		}

		if err := s.reservationRepo.Confirm(txCtx, reservationID); err != nil {
			s.logger.Error("Confirm: failed to confirm id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: Confirm - update error: %v", ErrInternal, err)
		}

		payload, err := json.Marshal(confirmEventPayload{
			ProductSlug:      res.ProductSlug,
			SlotID:           res.SlotID,
			TotalAmountCents: res.TotalAmountCents,
		})
		if err != nil {
			return fmt.Errorf("%w: Confirm - marshal event payload: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.InsertEvent(txCtx, &domain.BookingEvent{
			ReservationID: res.ID,
			EventType:     domain.EventConfirmed,
			EventData:     payload,
		}); err != nil {
			s.logger.Error("Confirm: failed to insert audit event for id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: Confirm - insert event: %v", ErrInternal, err)
		}

		res.Status = domain.StatusConfirmed
		res.HoldExpiresAt = nil
		res.UpdatedAt = now
		result = res
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("Confirm: serialization conflict for id=%s", reservationID)
			return nil, ErrConflict
		}
		return nil, err
	}

	s.logger.Info("Confirm: reservation id=%s confirmed", reservationID)
	return models.FromDomainReservation(result, now), nil
}

// Cancel отменяет подтверждённое бронирование (админ-операция).
//
// Отменяются только CONFIRMED: удержание просто оставляют истекать, а
// CANCELLED - терминальный статус. Возврат средств мокается: бронирование
// помечается refund_status=pending на полную сумму, реального списания нет
func (s *Service) Cancel(ctx context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: reservation id=%s", req.ReservationID)

	if req.ReservationID == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	now := s.timeProvider.Now()

	var result *domain.Reservation

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%s in status %s cannot be cancelled",
				req.ReservationID, res.Status)
			return ErrCannotCancel
		}

		refundAmount := res.TotalAmountCents

		if err := s.reservationRepo.Cancel(txCtx, req.ReservationID, req.CancellationReason, refundAmount); err != nil {
			s.logger.Error("Cancel: failed to cancel id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: Cancel - update error: %v", ErrInternal, err)
		}

		payload, err := json.Marshal(cancelEventPayload{
			Reason:            req.CancellationReason,
			RefundStatus:      domain.RefundStatusPending,
			RefundAmountCents: refundAmount,
		})
		if err != nil {
			return fmt.Errorf("%w: Cancel - marshal event payload: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.InsertEvent(txCtx, &domain.BookingEvent{
			ReservationID: res.ID,
			EventType:     domain.EventCancelled,
			EventData:     payload,
		}); err != nil {
			s.logger.Error("Cancel: failed to insert audit event for id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: Cancel - insert event: %v", ErrInternal, err)
		}

		res.Status = domain.StatusCancelled
		res.CancellationReason = req.CancellationReason
		res.CancelledAt = ptr.Ptr(now)
		res.RefundStatus = ptr.Ptr(domain.RefundStatusPending)
		res.RefundAmountCents = ptr.Ptr(refundAmount)
		res.UpdatedAt = now
		result = res
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("Cancel: serialization conflict for id=%s", req.ReservationID)
			return nil, ErrConflict
		}
		return nil, err
	}

	s.logger.Info("Cancel: reservation id=%s cancelled, refund %d %s pending",
		req.ReservationID, result.TotalAmountCents, result.Currency)
	return models.FromDomainReservation(result, now), nil
}

// GetByID получает бронирование по ID.
// Истёкшее удержание не переписывается в хранилище - оно просто отдаётся
// с производным флагом holdExpired
func (s *Service) GetByID(ctx context.Context, reservationID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", reservationID)

	if reservationID == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res, s.timeProvider.Now()), nil
}

// GetByDay получает все бронирования на календарный день в операционной
// таймзоне, включая отменённые и истёкшие удержания (админ-листинг)
func (s *Service) GetByDay(ctx context.Context, req *models.GetByDayRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByDay: fetching reservations for %s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Дата трактуется как календарная: компоненты год/месяц/день
	// анкерятся к началу дня в операционной таймзоне
	dayStart := s.catalog.DayStart(req.Date)

	list, err := s.reservationRepo.GetByDay(ctx, domain.ReservationsFilter{
		From: dayStart,
		To:   dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		s.logger.Error("GetByDay: repository error for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDay: fetched %d reservations for %s", len(list), req.Date.Format(domain.DateFormat))
	return models.FromDomainReservationList(list, s.timeProvider.Now()), nil
}

// SweepExpiredHolds физически удаляет истёкшие удержания.
// Гигиеническая операция фоновой зачистки: доступность корректна и без неё,
// истёкшие холды отфильтровываются на чтении
func (s *Service) SweepExpiredHolds(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	deleted, err := s.reservationRepo.DeleteExpiredHolds(ctx, now)
	if err != nil {
		s.logger.Error("SweepExpiredHolds: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepExpiredHolds - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("SweepExpiredHolds: removed %d expired holds", deleted)
	}
	return deleted, nil
}
