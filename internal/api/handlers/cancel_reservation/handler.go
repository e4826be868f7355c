package cancel_reservation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "reservation not found"
	msgCannotCancel       = "only confirmed reservations can be cancelled"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["bookingId"]

	// Тело опционально: отмена без причины допустима
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Cancel(r.Context(), req.ToServiceRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/cancel - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /admin/bookings/{id}/cancel - Cannot cancel: id=%s", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrConflict):
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/cancel - Failed to cancel: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/cancel - Reservation cancelled: id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
