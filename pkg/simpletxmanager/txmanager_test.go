package simpletxmanager

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/calypso-charters/CharterBookingService/pkg/txmanager"
)

func TestWrapCommitError_SerializationFailure(t *testing.T) {
	// Конфликт сериализации мапится в общий sentinel из txmanager,
	// чтобы вызывающий код не зависел от выбранной реализации
	err := wrapCommitError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	assert.ErrorIs(t, err, txmanager.ErrSerialization)
	assert.NotErrorIs(t, err, ErrCommitTx)
}

func TestWrapCommitError_OtherFailure(t *testing.T) {
	err := wrapCommitError(errors.New("driver: bad connection"))

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NotErrorIs(t, err, txmanager.ErrSerialization)
}

func TestWrapFnError_SerializationFailure(t *testing.T) {
	err := wrapFnError(&pq.Error{Code: "40001"})

	assert.ErrorIs(t, err, txmanager.ErrSerialization)
}

func TestWrapFnError_PassesThroughOtherErrors(t *testing.T) {
	sentinel := errors.New("storage: not found")

	err := wrapFnError(sentinel)
	assert.ErrorIs(t, err, sentinel)
}
