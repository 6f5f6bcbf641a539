package update_booking_settings

import (
	"errors"
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/settings"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "configuración inválida: turnos de 5 a 480 minutos, de 1 a 50 sillas, hasta 365 días de anticipación y hasta 10080 minutos de aviso"
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

// Handle PUT /api/v1/booking-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, ok := middleware.BarbershopIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking-settings - Missing barbershop in context")
		handlers.RespondUnauthorized(w)
		return
	}

	// Декодируем body
	var req UpdateBookingSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(barbershopID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /booking-settings - Invalid settings: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /booking-settings - Failed to update settings: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking-settings - Settings updated: barbershop_id=%d", barbershopID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
