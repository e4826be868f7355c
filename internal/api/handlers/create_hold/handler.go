package create_hold

import (
	"errors"
	"net/http"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/create_hold"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "date must be in YYYY-MM-DD format and not in the past"
	msgProductNotFound    = "charter type not found"
	msgProductNotBookable = "charter type is not bookable online"
	msgSlotNotForProduct  = "slot is not sold for this charter type"
	msgInvalidGuests      = "invalid guest count"
	msgOptionNotAllowed   = "option is not allowed for this slot"
	msgSlotNotAvailable   = "slot is no longer available"
)

type Handler struct {
	usecase CreateHoldUseCase
	logger  Logger
}

func NewHandler(usecase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/hold
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/hold - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/hold - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrProductNotFound):
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, uc.ErrProductNotBookable):
			handlers.RespondBadRequest(w, msgProductNotBookable)

		case errors.Is(err, uc.ErrSlotNotForProduct):
			handlers.RespondBadRequest(w, msgSlotNotForProduct)

		case errors.Is(err, uc.ErrInvalidGuests):
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, uc.ErrOptionNotAllowed):
			handlers.RespondBadRequest(w, msgOptionNotAllowed)

		case errors.Is(err, uc.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, uc.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, uc.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings/hold - Slot not available: product=%s, slot=%s, date=%s",
				req.ProductSlug, req.SlotID, req.Date)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings/hold - Failed to create hold: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/hold - Hold created: id=%s, product=%s, slot=%s, date=%s",
		resp.ReservationID, req.ProductSlug, req.SlotID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
