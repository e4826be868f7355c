package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/calypso-charters/CharterBookingService/pkg/dbmetrics"
)

// Код ошибки PostgreSQL для конфликта сериализации
const pqSerializationFailure = "40001"

var (
	// ErrBeginTx возвращается при ошибке начала транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization возвращается, когда сериализуемая транзакция
	// была прервана из-за конфликта с конкурентной транзакцией.
	// Вызывающий код обычно мапит эту ошибку в Conflict.
	ErrSerialization = errors.New("txmanager: serialization conflict")
)

// TransactionManager менеджер транзакций поверх обёрнутой метриками БД
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// Транзакция передаётся вложенным вызовам через context (dbmetrics.WithTx).
// Конфликт сериализации возвращается как ErrSerialization.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return wrapFnError(err)
	}

	if err := tx.Commit(); err != nil {
		return wrapCommitError(err)
	}

	return nil
}

// isSerialization распознаёт ошибку сериализации PostgreSQL (SQLSTATE 40001)
func isSerialization(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure
}

// wrapFnError распознаёт конфликт сериализации в ошибке из fn
func wrapFnError(err error) error {
	if isSerialization(err) {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return err
}

// wrapCommitError мапит ошибку COMMIT. Код 40001 проверяется на сыром
// значении до оборачивания, иначе %v сплющил бы *pq.Error из цепочки:
// конфликт сериализации в PostgreSQL всплывает чаще всего именно на COMMIT
func wrapCommitError(err error) error {
	if isSerialization(err) {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return fmt.Errorf("%w: %v", ErrCommitTx, err)
}
