package get_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgNotFound         = "reservation not found"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["bookingId"]

	if _, err := uuid.Parse(reservationID); err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID %q: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /bookings/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get reservation: id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reservation)
}
