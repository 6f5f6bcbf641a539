package get_working_hours

import (
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
)

type Handler struct {
	repo   WorkingHoursRepository
	logger Logger
}

func NewHandler(repo WorkingHoursRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/working-hours
// Барбершоп берется из токена
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, ok := middleware.BarbershopIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /working-hours - Missing barbershop in context")
		handlers.RespondUnauthorized(w)
		return
	}

	entries, err := h.repo.GetByBarbershop(r.Context(), barbershopID)
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to get working hours: barbershop_id=%d, error=%v", barbershopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /working-hours - Working hours retrieved: barbershop_id=%d, ranges=%d", barbershopID, len(entries))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewItems(entries))
}
