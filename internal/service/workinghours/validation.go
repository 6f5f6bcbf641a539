package workinghours

import (
	"fmt"
	"slices"
	"strings"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/types"
)

// minuteRange диапазон, разобранный в минуты от полуночи
type minuteRange struct {
	start int
	end   int

	from types.TimeString
	to   types.TimeString
}

// Validate возвращает первое найденное нарушение или nil
// Дни проверяются по возрастанию, внутри дня виды нарушений идут по порядку:
// пропущенное время, неверный формат, начало >= конца, пересечение
func Validate(template domain.WeeklyTemplate) *ValidationError {
	for _, day := range domain.AllWeekdays() {
		if violation := validateDay(day, template[day]); violation != nil {
			return violation
		}
	}
	return nil
}

func validateDay(day domain.Weekday, ranges []domain.TimeRange) *ValidationError {
	// 1. Пропущенное время
	for _, r := range ranges {
		if isBlank(r.StartTime.String()) || isBlank(r.EndTime.String()) {
			return newViolation(day, ViolationMissingTime, "%s: completá hora de inicio y fin", day.Label())
		}
	}

	// 2. Формат HH:MM, заодно переводим в минуты
	parsed := make([]minuteRange, 0, len(ranges))
	for _, r := range ranges {
		start, startErr := r.StartTime.Minutes()
		end, endErr := r.EndTime.Minutes()
		if r.StartTime.Validate() != nil || r.EndTime.Validate() != nil || startErr != nil || endErr != nil {
			return newViolation(day, ViolationMalformedTime, "%s: formato de hora inválido (usá HH:MM)", day.Label())
		}
		parsed = append(parsed, minuteRange{start: start, end: end, from: r.StartTime, to: r.EndTime})
	}

	// 3. Начало строго раньше конца
	for _, p := range parsed {
		if p.start >= p.end {
			return newViolation(day, ViolationInvertedRange,
				"%s: la hora de inicio (%s) debe ser anterior a la de fin (%s)", day.Label(), p.from, p.to)
		}
	}

	// 4. Пересечения: после сортировки каждое начало не раньше предыдущего конца
	slices.SortFunc(parsed, func(a, b minuteRange) int { return a.start - b.start })
	for i := 1; i < len(parsed); i++ {
		if parsed[i].start < parsed[i-1].end {
			return newViolation(day, ViolationOverlap, "%s: hay horarios superpuestos", day.Label())
		}
	}

	return nil
}

func newViolation(day domain.Weekday, kind ViolationKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Weekday: day,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
