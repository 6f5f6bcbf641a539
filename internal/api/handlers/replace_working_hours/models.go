package replace_working_hours

import (
	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/domain"
	replaceWorkingHours "github.com/barbercloud/barbercloud/internal/usecase/replace_working_hours"
	"github.com/barbercloud/barbercloud/pkg/types"
)

// ReplaceWorkingHoursRequest тело PUT запроса
type ReplaceWorkingHoursRequest struct {
	Items []WorkingHoursItem `json:"items"`
}

// WorkingHoursItem один диапазон рабочего времени
type WorkingHoursItem struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *ReplaceWorkingHoursRequest) ToUseCaseRequest(barbershopID int64) *replaceWorkingHours.Request {
	items := make([]domain.WorkingHoursEntry, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.WorkingHoursEntry{
			Weekday:   domain.Weekday(item.Weekday),
			StartTime: types.TimeString(item.StartTime),
			EndTime:   types.TimeString(item.EndTime),
		}
	}

	return &replaceWorkingHours.Request{
		BarbershopID: barbershopID,
		Items:        items,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *replaceWorkingHours.Response) handlers.ItemsResponse[WorkingHoursItem] {
	items := make([]WorkingHoursItem, len(resp.Items))
	for i, entry := range resp.Items {
		items[i] = WorkingHoursItem{
			Weekday:   int(entry.Weekday),
			StartTime: entry.StartTime.String(),
			EndTime:   entry.EndTime.String(),
		}
	}
	return handlers.NewItems(items)
}
