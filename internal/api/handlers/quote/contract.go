package quote

import (
	"context"

	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/quote"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
