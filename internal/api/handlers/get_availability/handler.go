package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	"github.com/calypso-charters/CharterBookingService/internal/domain"
	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate        = "from and to must be dates in YYYY-MM-DD format"
	msgInvalidDateRange   = "invalid date range"
	msgRangeTooLarge      = "date range is too large"
	msgProductNotFound    = "charter type not found"
	msgProductNotBookable = "charter type is not bookable online"
)

type Handler struct {
	usecase AvailabilityUseCase
	logger  Logger
}

func NewHandler(usecase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?from=YYYY-MM-DD&to=YYYY-MM-DD[&product=slug]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &uc.Request{FromDate: from, ToDate: to}
	if product := query.Get("product"); product != "" {
		req.ProductSlug = &product
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrProductNotFound):
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, uc.ErrProductNotBookable):
			handlers.RespondBadRequest(w, msgProductNotBookable)

		case errors.Is(err, uc.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, uc.ErrInvalidDateRange), errors.Is(err, uc.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
