package get_availability

import (
	"context"
	"fmt"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// UseCase use case для получения доступности слотов по дням
type UseCase struct {
	catalog         *domain.Catalog
	reservationRepo ReservationRepository
	paceClient      PaceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog *domain.Catalog,
	reservationRepo ReservationRepository,
	paceClient PaceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         catalog,
		reservationRepo: reservationRepo,
		paceClient:      paceClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности.
// Доступность - чистая производная пересечения интервалов: слот свободен,
// если его интервал не пересекает ни одно живое бронирование и ни один
// занятый блок партнёрского фида
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Определяем набор слотов-кандидатов
	slots := uc.catalog.AllSlots()
	if req.ProductSlug != nil {
		product, err := uc.catalog.Product(*req.ProductSlug)
		if err != nil {
			uc.logger.Warn("GetAvailability: product %s not found", *req.ProductSlug)
			return nil, ErrProductNotFound
		}
		if !product.IsBookable() {
			uc.logger.Warn("GetAvailability: product %s is not bookable", *req.ProductSlug)
			return nil, ErrProductNotBookable
		}
		slots, err = uc.catalog.SlotsForProduct(*req.ProductSlug)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to resolve product slots: %v", ErrInternal, err)
		}
	}

	// 4. Нормализуем диапазон к началам дней в операционной таймзоне.
	// Даты трактуются как календарные: берём их компоненты год/месяц/день,
	// а не абсолютный момент времени
	from := uc.catalog.DayStart(req.FromDate)
	to := uc.catalog.DayStart(req.ToDate)
	if err := validateDayRange(from, to); err != nil {
		uc.logger.Warn("GetAvailability: date range validation failed: %v", err)
		return nil, err
	}

	windowEnd := to.AddDate(0, 0, 1)

	// 5. Живые бронирования, пересекающие окно [from, windowEnd)
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		From:     from,
		To:       windowEnd,
		OnlyLive: true,
		Now:      now,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Занятые блоки партнёрского фида (graceful degradation внутри клиента)
	blocks := uc.paceClient.GetBusyBlocksWithGracefulDegradation(ctx, from, windowEnd)

	// 7. Вычисляем доступность по дням
	busy := collectBusyRanges(reservations, blocks, now)

	days := make([]DayAvailability, 0, int(windowEnd.Sub(from).Hours()/24))
	for d := from; d.Before(windowEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, availabilityForDay(d, slots, busy, uc.catalog.Location()))
	}

	uc.logger.Info("GetAvailability: computed %d days, %d live reservations, %d partner blocks",
		len(days), len(reservations), len(blocks))

	return &Response{Days: days}, nil
}
