package get_charter_types

import (
	"net/http"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

type Handler struct {
	catalog *domain.Catalog
	logger  Logger
}

func NewHandler(catalog *domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/charter-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromCatalog(h.catalog))
}
