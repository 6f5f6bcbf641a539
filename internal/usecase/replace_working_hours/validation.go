package replace_working_hours

import (
	"fmt"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// validateRequest проверяет то, что не покрывает валидация шаблона:
// день недели вне 0..6 и число диапазонов в дне
func validateRequest(req *Request) error {
	if req.BarbershopID <= 0 {
		return fmt.Errorf("%w: barbershopID must be positive", ErrInvalidInput)
	}

	perDay := make(map[domain.Weekday]int, domain.DaysInWeek)
	for i, item := range req.Items {
		if !item.Weekday.Valid() {
			return fmt.Errorf("%w: items[%d]: weekday must be between 0 and 6, got %d",
				ErrInvalidInput, i, int(item.Weekday))
		}
		perDay[item.Weekday]++
		if perDay[item.Weekday] > domain.MaxRangesPerDay {
			return fmt.Errorf("%w: %s: at most %d ranges per day",
				ErrInvalidInput, item.Weekday.Label(), domain.MaxRangesPerDay)
		}
	}

	return nil
}
