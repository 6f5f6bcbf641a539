package workinghours

import (
	"iter"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// Flatten возвращает ленивую последовательность записей:
// дни по возрастанию, внутри дня в порядке диапазонов
func Flatten(template domain.WeeklyTemplate) iter.Seq[domain.WorkingHoursEntry] {
	return func(yield func(domain.WorkingHoursEntry) bool) {
		for _, day := range domain.AllWeekdays() {
			for _, r := range template[day] {
				entry := domain.WorkingHoursEntry{
					Weekday:   day,
					StartTime: r.StartTime,
					EndTime:   r.EndTime,
				}
				if !yield(entry) {
					return
				}
			}
		}
	}
}
