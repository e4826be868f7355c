package get_reservations_by_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations"
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations/models"
)

const (
	msgInvalidDate = "date must be in YYYY-MM-DD format"
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

// Handle GET /api/v1/admin/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.GetByDay(r.Context(), &models.GetByDayRequest{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list reservations: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
