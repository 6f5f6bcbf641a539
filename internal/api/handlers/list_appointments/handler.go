package list_appointments

import (
	"errors"
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/appointments"
)

const msgInvalidParams = "parámetros de búsqueda inválidos"

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

// Handle GET /api/v1/appointments
// Query params: from, to, status, q, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, ok := middleware.BarbershopIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing barbershop in context")
		handlers.RespondUnauthorized(w)
		return
	}

	serviceReq, err := ToServiceRequest(barbershopID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: barbershop_id=%d, count=%d", barbershopID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
