package get_available_slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/barbercloud/barbercloud/internal/service/slots"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarbershopID <= 0 {
		return fmt.Errorf("%w: barbershopID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	err := slots.ValidateDate(requestDate, now, advanceBookingDays)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, slots.ErrDateInPast):
		return ErrInvalidDate
	case errors.Is(err, slots.ErrDateTooFarInFuture):
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
