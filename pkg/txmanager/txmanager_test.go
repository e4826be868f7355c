package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrapCommitError_SerializationFailure(t *testing.T) {
	// COMMIT сериализуемой транзакции упал с SQLSTATE 40001
	err := wrapCommitError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	assert.ErrorIs(t, err, ErrSerialization)
	assert.NotErrorIs(t, err, ErrCommitTx)
}

func TestWrapCommitError_OtherFailure(t *testing.T) {
	err := wrapCommitError(errors.New("driver: bad connection"))

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NotErrorIs(t, err, ErrSerialization)
}

func TestWrapCommitError_OtherPqCode(t *testing.T) {
	// Любой другой код PostgreSQL остаётся ошибкой коммита
	err := wrapCommitError(&pq.Error{Code: "23505"})

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NotErrorIs(t, err, ErrSerialization)
}

func TestWrapFnError_SerializationFailure(t *testing.T) {
	err := wrapFnError(&pq.Error{Code: "40001"})

	assert.ErrorIs(t, err, ErrSerialization)
}

func TestWrapFnError_WrappedPqError(t *testing.T) {
	// Код распознаётся и через обёртки, пока *pq.Error остаётся в цепочке
	wrapped := fmt.Errorf("query failed: %w", &pq.Error{Code: "40001"})

	err := wrapFnError(wrapped)
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestWrapFnError_PassesThroughOtherErrors(t *testing.T) {
	sentinel := errors.New("storage: not found")

	err := wrapFnError(sentinel)
	assert.ErrorIs(t, err, sentinel)
	assert.NotErrorIs(t, err, ErrSerialization)
}
