package get_dashboard_stats

import (
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, ok := middleware.BarbershopIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /dashboard/stats - Missing barbershop in context")
		handlers.RespondUnauthorized(w)
		return
	}

	stats, err := h.service.Stats(r.Context(), barbershopID)
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to get stats: barbershop_id=%d, error=%v", barbershopID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
