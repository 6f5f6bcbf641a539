package create_appointment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/slots"
	"github.com/barbercloud/barbercloud/pkg/types"
)

// normalizeRequest убирает пробелы по краям имени и телефона
func normalizeRequest(req *Request) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarbershopID <= 0 {
		return fmt.Errorf("%w: barbershopId must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone must be at most %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата подходит для записи
func validateDate(date time.Time, now time.Time, advanceBookingDays int) error {
	err := slots.ValidateDate(date, now, advanceBookingDays)
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

// validateSlotStart проверяет, что время совпадает с началом одного из слотов дня
func validateSlotStart(start types.TimeString, ranges []domain.TimeRange, slotDuration int) error {
	starts, err := slots.Generate(ranges, slotDuration)
	if err != nil {
		return fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if !slices.Contains(starts, start) {
		return fmt.Errorf("%w: %s is not a slot start", ErrInvalidTimeSlot, start)
	}

	return nil
}

// validateNotice проверяет, что запись не нарушает minBookingNoticeMinutes
func validateNotice(date time.Time, start types.TimeString, now time.Time, noticeMinutes int) error {
	if len(slots.FilterByNotice([]types.TimeString{start}, date, now, noticeMinutes)) == 0 {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, noticeMinutes)
	}
	return nil
}
