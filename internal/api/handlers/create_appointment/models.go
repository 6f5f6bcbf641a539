package create_appointment

import (
	"time"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/domain"
	createAppointment "github.com/barbercloud/barbercloud/internal/usecase/create_appointment"
	"github.com/barbercloud/barbercloud/pkg/types"
)

// CreateAppointmentRequest HTTP request model мастера бронирования
type CreateAppointmentRequest struct {
	BarbershopID  int64  `json:"barbershopId"`
	ServiceID     int64  `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"` // "2025-10-15"
	Time          string `json:"time"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	BarbershopID    int64  `json:"barbershopId"`
	ServiceID       int64  `json:"serviceId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Формат времени проверяет use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BarbershopID:  r.BarbershopID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     types.TimeString(r.Time),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		BarbershopID:    resp.BarbershopID,
		ServiceID:       resp.ServiceID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
