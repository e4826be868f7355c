package get_availability

import (
	"context"

	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/get_availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
