package workinghours

import (
	"github.com/barbercloud/barbercloud/internal/domain"
)

const (
	labelOpen   = "Abierto"
	labelClosed = "Cerrado"
)

// DayStatusLabel возвращает подпись "Abierto"/"Cerrado" для дня
func DayStatusLabel(template domain.WeeklyTemplate, day domain.Weekday) string {
	if template.IsOpen(day) {
		return labelOpen
	}
	return labelClosed
}

// SortedRanges возвращает отсортированную копию диапазонов дня для отображения
func SortedRanges(template domain.WeeklyTemplate, day domain.Weekday) []domain.TimeRange {
	ranges := domain.CloneRanges(template[day])
	sortRanges(ranges)
	return ranges
}
