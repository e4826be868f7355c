package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/calypso-charters/CharterBookingService/pkg/dbmetrics"
	"github.com/calypso-charters/CharterBookingService/pkg/txmanager"
)

const pqSerializationFailure = "40001"

var (
	// ErrBeginTx возвращается при ошибке начала транзакции
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита транзакции
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")
)

// TransactionManager менеджер транзакций поверх *sql.DB (без метрик).
// Конфликты сериализации возвращаются как txmanager.ErrSerialization,
// чтобы вызывающий код не зависел от выбранной реализации.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции,
// передавая её вложенным вызовам через context
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	// *sql.Tx удовлетворяет dbmetrics.TxExecutor
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
		return fmt.Errorf("%w: %v", txmanager.ErrSerialization, err)
	}
	return err
}

// wrapCommitError мапит ошибку COMMIT. Код 40001 проверяется на сыром
// значении до оборачивания, иначе %v сплющил бы *pq.Error из цепочки:
// конфликт сериализации в PostgreSQL всплывает чаще всего именно на COMMIT
func wrapCommitError(err error) error {
	if isSerialization(err) {
		return fmt.Errorf("%w: %v", txmanager.ErrSerialization, err)
	}
	return fmt.Errorf("%w: %v", ErrCommitTx, err)
}
