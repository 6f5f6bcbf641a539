// Package slots строит сетку слотов дня из диапазонов недельного шаблона
package slots

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/types"
)

var (
	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("slots: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("slots: date is too far in the future")

	// ErrInvalidRange возвращается для диапазона, который нельзя разобрать
	ErrInvalidRange = errors.New("slots: invalid working hours range")
)

// Generate генерирует начала слотов внутри каждого диапазона дня
// Слоты идут от начала диапазона с шагом slotDuration, слот должен целиком помещаться в диапазон
// Результат отсортирован, повторы из пересекающихся диапазонов убраны
func Generate(ranges []domain.TimeRange, slotDuration int) ([]types.TimeString, error) {
	if slotDuration <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidRange, slotDuration)
	}

	starts := make([]int, 0)
	for _, r := range ranges {
		open, err := r.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %s-%s: %v", ErrInvalidRange, r.StartTime, r.EndTime, err)
		}
		closeAt, err := r.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %s-%s: %v", ErrInvalidRange, r.StartTime, r.EndTime, err)
		}

		for start := open; start+slotDuration <= closeAt; start += slotDuration {
			starts = append(starts, start)
		}
	}

	slices.Sort(starts)
	starts = slices.Compact(starts)

	result := make([]types.TimeString, len(starts))
	for i, start := range starts {
		result[i] = types.FromMinutes(start)
	}
	return result, nil
}

// FilterByNotice оставляет слоты, начинающиеся не раньше now + notice
// date задает календарный день, слоты трактуются в часовом поясе now
func FilterByNotice(starts []types.TimeString, date, now time.Time, noticeMinutes int) []types.TimeString {
	minAllowed := now.Add(time.Duration(noticeMinutes) * time.Minute)

	result := make([]types.TimeString, 0, len(starts))
	for _, start := range starts {
		if !StartsAt(date, start, now.Location()).Before(minAllowed) {
			result = append(result, start)
		}
	}
	return result
}

// StartsAt момент начала слота в часовом поясе loc
func StartsAt(date time.Time, start types.TimeString, loc *time.Location) time.Time {
	minutes, err := start.Minutes()
	if err != nil {
		minutes = 0
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(minutes) * time.Minute)
}

// Availability считает свободные кресла для каждого слота
func Availability(starts []types.TimeString, slotDuration int, appointments []*domain.Appointment, chairs int) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(starts))

	for i, start := range starts {
		available := chairs - CountOverlapping(start, slotDuration, appointments)
		if available < 0 {
			available = 0
		}

		result[i] = domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: slotDuration,
			AvailableSpots:  available,
			TotalSpots:      chairs,
		}
	}

	return result
}

// CountOverlapping подсчитывает активные записи, пересекающиеся со слотом
// Граничащие интервалы (конец записи == начало слота) не пересекаются
//
// Примеры:
// - Слот 11:30-12:00, запись 11:20-11:40 → пересечение
// - Слот 11:30-12:00, запись 11:00-11:30 → нет (граничат)
// - Слот 11:30-12:00, запись 12:00-12:30 → нет (граничат)
func CountOverlapping(slotStart types.TimeString, slotDuration int, appointments []*domain.Appointment) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return 0
	}

	count := 0
	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}

		appointmentEnd, err := appointment.EndTime()
		if err != nil {
			continue
		}

		if appointment.StartTime.IsBefore(slotEnd) && appointmentEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// ValidateDate проверяет, что дату можно бронировать относительно now
// advanceBookingDays = 0 снимает ограничение сверху
func ValidateDate(date, now time.Time, advanceBookingDays int) error {
	day := civilDate(date)
	today := civilDate(now)

	if day.Before(today) {
		return ErrDateInPast
	}

	if advanceBookingDays > 0 && day.After(today.AddDate(0, 0, advanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	return civilDate(a).Equal(civilDate(b))
}

// civilDate календарный день без учета часового пояса
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
