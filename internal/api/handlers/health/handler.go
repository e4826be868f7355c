package health

import (
	"context"
	"net/http"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
)

// Pinger минимальный интерфейс проверки соединения с БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
