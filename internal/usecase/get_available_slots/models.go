package get_available_slots

import (
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarbershopID int64     // ID барбершопа
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time      // Дата, на которую запрашивались слоты
	BarbershopID int64          // ID барбершопа
	Weekday      domain.Weekday // День недели даты
	Slots        []Slot         // Список слотов, пустой если барбершоп закрыт
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	AvailableSpots  int              // Количество свободных кресел
	TotalSpots      int              // Общее количество кресел
}

func fromDomainSlots(available []domain.AvailableSlot) []Slot {
	result := make([]Slot, len(available))
	for i, s := range available {
		result[i] = Slot{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			AvailableSpots:  s.AvailableSpots,
			TotalSpots:      s.TotalSpots,
		}
	}
	return result
}
