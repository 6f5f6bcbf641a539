package replace_working_hours

import "github.com/barbercloud/barbercloud/internal/domain"

// Request модель запроса на полную замену недельного расписания
type Request struct {
	BarbershopID int64                      // ID барбершопа из токена
	Items        []domain.WorkingHoursEntry // Плоский список диапазонов, пустой = все дни закрыты
}

// Response модель ответа с сохраненным расписанием
type Response struct {
	Items []domain.WorkingHoursEntry // По дню недели, внутри дня по началу
}
