package update_appointment_status

import "github.com/barbercloud/barbercloud/internal/service/appointments/models"

// UpdateStatusRequest тело PUT запроса
type UpdateStatusRequest struct {
	Status string `json:"status"` // "confirmed" | "canceled"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(barbershopID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		BarbershopID: barbershopID,
		Status:       r.Status,
	}
}
