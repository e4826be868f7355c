package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/pkg/dbmetrics"
	"github.com/calypso-charters/CharterBookingService/pkg/psqlbuilder"
)

// Столбцы бронирования в порядке сканирования
var reservationColumns = []string{
	"id",
	"product_slug",
	"slot_id",
	"start_at",
	"end_at",
	"status",
	"hold_expires_at",
	"total_amount_cents",
	"currency",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"refund_status",
	"refund_amount_cents",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование (обычно HOLD).
// Если в контексте передана активная транзакция (через context.Value),
// использует её - так работает защита от гонки в create_hold:
// выборка пересечений FOR UPDATE и вставка идут в одной SERIALIZABLE транзакции.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"product_slug",
			"slot_id",
			"start_at",
			"end_at",
			"status",
			"hold_expires_at",
			"total_amount_cents",
			"currency",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
		).
		Values(
			res.ID,
			res.ProductSlug,
			res.SlotID,
			res.StartAt,
			res.EndAt,
			res.Status,
			res.HoldExpiresAt,
			res.TotalAmountCents,
			res.Currency,
			res.CustomerName,
			res.CustomerEmail,
			res.CustomerPhone,
			res.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции добавляет FOR UPDATE - confirm/cancel блокируют строку
// на время проверки статуса (single-writer per reservation).
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetWithFilter получает бронирования, пересекающиеся с окном [From, To).
//
// OnlyLive оставляет только блокирующие бронирования:
// CONFIRMED, либо HOLD с hold_expires_at > Now. Истёкшие холды отфильтровываются
// на уровне SQL - они перестают блокировать слоты сразу, без фоновой зачистки.
//
// Если используется транзакция, добавляет FOR UPDATE (для usecase создания холда).
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Пересечение полуоткрытых интервалов: start_at < To AND end_at > From
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Lt{"start_at": filter.To}).
		Where(squirrel.Gt{"end_at": filter.From}).
		OrderBy("start_at ASC")

	if filter.OnlyLive {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"status": domain.StatusConfirmed},
			squirrel.And{
				squirrel.Eq{"status": domain.StatusHold},
				squirrel.Gt{"hold_expires_at": filter.Now},
			},
		})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Confirm переводит бронирование в CONFIRMED и очищает hold_expires_at.
// Проверка допустимости перехода выполняется на уровне сервиса
// (GetByID FOR UPDATE в той же транзакции).
func (r *Repository) Confirm(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusConfirmed).
		Set("hold_expires_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Confirm - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Confirm - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины и помечает
// мок-возврат полной суммы как ожидающий обработки
func (r *Repository) Cancel(ctx context.Context, id string, reason *string, refundAmountCents int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("refund_status", domain.RefundStatusPending).
		Set("refund_amount_cents", refundAmountCents).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// GetByDay получает все бронирования, начинающиеся в окне [dayStart, dayEnd),
// включая отменённые - используется админ-листингом
func (r *Repository) GetByDay(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.GtOrEq{"start_at": filter.From}).
		Where(squirrel.Lt{"start_at": filter.To}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// DeleteExpiredHolds физически удаляет холды, истёкшие раньше before.
// Используется только фоновой зачисткой для гигиены хранилища -
// корректность доступности от этого удаления не зависит
func (r *Repository) DeleteExpiredHolds(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"status": domain.StatusHold}).
		Where(squirrel.Lt{"hold_expires_at": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// scanner минимальный интерфейс *sql.Row / *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в бронирование
func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ProductSlug,
		&res.SlotID,
		&res.StartAt,
		&res.EndAt,
		&res.Status,
		&res.HoldExpiresAt,
		&res.TotalAmountCents,
		&res.Currency,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&res.RefundStatus,
		&res.RefundAmountCents,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
