package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "reservation not found"
	msgHoldExpired        = "hold has expired, please start over"
	msgCannotConfirm      = "reservation cannot be confirmed"
	msgConflict           = "reservation is being modified, please retry"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Confirm(r.Context(), req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /bookings/confirm - Reservation not found: id=%s", req.ReservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrHoldExpired):
			h.logger.Warn("POST /bookings/confirm - Hold expired: id=%s", req.ReservationID)
			handlers.RespondGone(w, msgHoldExpired)

		case errors.Is(err, reservations.ErrCannotConfirm):
			h.logger.Warn("POST /bookings/confirm - Cannot confirm: id=%s", req.ReservationID)
			handlers.RespondConflict(w, msgCannotConfirm)

		case errors.Is(err, reservations.ErrConflict):
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm: id=%s, error=%v", req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Reservation confirmed: id=%s", req.ReservationID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
