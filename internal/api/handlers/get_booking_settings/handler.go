package get_booking_settings

import (
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-settings
// Без сохраненных настроек отдаются значения по умолчанию с isDefault=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, ok := middleware.BarbershopIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-settings - Missing barbershop in context")
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.Get(r.Context(), barbershopID)
	if err != nil {
		h.logger.Error("GET /booking-settings - Failed to get settings: barbershop_id=%d, error=%v", barbershopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-settings - Settings retrieved: barbershop_id=%d, is_default=%t", barbershopID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
