package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	getAvailableSlots "github.com/barbercloud/barbercloud/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarbershopID = "ID de barbería inválido"
	msgMissingDate         = "la fecha es obligatoria"
	msgInvalidDate         = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgPastDate            = "no se puede reservar en una fecha pasada"
	msgDateTooFar          = "la fecha supera el máximo de días de anticipación"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{shopId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем shopId из URL
	barbershopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil || barbershopID <= 0 {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid barbershop ID: %q", mux.Vars(r)["shopId"])
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(barbershopID, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Past date: barbershop_id=%d, date=%s", barbershopID, dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Date too far: barbershop_id=%d, date=%s", barbershopID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarbershopID)

		default:
			h.logger.Error("GET /barbershops/{id}/available-slots - Failed to get slots: barbershop_id=%d, date=%s, error=%v",
				barbershopID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/available-slots - Slots retrieved: barbershop_id=%d, date=%s, slots_count=%d",
		barbershopID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
