package replace_working_hours

import (
	"errors"
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/workinghours"
	replaceWorkingHours "github.com/barbercloud/barbercloud/internal/usecase/replace_working_hours"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidItems       = "horarios inválidos: revisá los días de la semana y la cantidad de rangos"
)

type Handler struct {
	useCase ReplaceWorkingHoursUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceWorkingHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/working-hours
// Полная замена расписания барбершопа из токена
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, ok := middleware.BarbershopIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /working-hours - Missing barbershop in context")
		handlers.RespondUnauthorized(w)
		return
	}

	// Декодируем body
	var req ReplaceWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(barbershopID))
	if err != nil {
		var violation *workinghours.ValidationError
		switch {
		case errors.As(err, &violation):
			h.logger.Warn("PUT /working-hours - Template rejected: barbershop_id=%d, kind=%s", barbershopID, violation.Kind)
			handlers.RespondBadRequest(w, violation.Message)

		case errors.Is(err, replaceWorkingHours.ErrInvalidInput):
			h.logger.Warn("PUT /working-hours - Invalid items: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondBadRequest(w, msgInvalidItems)

		default:
			h.logger.Error("PUT /working-hours - Failed to replace working hours: barbershop_id=%d, error=%v", barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours - Working hours replaced: barbershop_id=%d, ranges=%d", barbershopID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
