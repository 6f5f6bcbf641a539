package create_appointment

import (
	"errors"
	"net/http"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	createAppointment "github.com/barbercloud/barbercloud/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgInvalidInput       = "completá todos los datos de la reserva"
	msgPastDate           = "no se puede reservar en una fecha pasada"
	msgDateTooFar         = "la fecha supera el máximo de días de anticipación"
	msgClosed             = "la barbería está cerrada ese día"
	msgInvalidTimeSlot    = "el horario elegido no es un turno válido"
	msgTooLate            = "ese turno ya no se puede reservar, elegí uno más tarde"
	msgSlotNotAvailable   = "ese turno ya no tiene lugares disponibles"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Публичный эндпоинт мастера бронирования, запись создается в статусе pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %q, error=%v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Past date: barbershop_id=%d, date=%s", req.BarbershopID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far: barbershop_id=%d, date=%s", req.BarbershopID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrBarbershopClosed):
			h.logger.Warn("POST /appointments - Barbershop closed: barbershop_id=%d, date=%s", req.BarbershopID, req.Date)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: barbershop_id=%d, date=%s, time=%s",
				req.BarbershopID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: barbershop_id=%d, date=%s, time=%s",
				req.BarbershopID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLate)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot is full: barbershop_id=%d, date=%s, time=%s",
				req.BarbershopID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barbershop_id=%d, error=%v", req.BarbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, barbershop_id=%d, date=%s, time=%s",
		result.ID, result.BarbershopID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
