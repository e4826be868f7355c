package quote

import (
	"errors"
	"net/http"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgProductNotFound    = "charter type not found"
	msgProductNotBookable = "charter type is not bookable online"
	msgSlotNotForProduct  = "slot is not sold for this charter type"
	msgInvalidGuests      = "invalid guest count"
	msgOptionNotAllowed   = "option is not allowed for this slot"
)

type Handler struct {
	usecase QuoteUseCase
	logger  Logger
}

func NewHandler(usecase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), req.ToUseCaseRequest())
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

		case errors.Is(err, uc.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /quote - Failed to compute quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
