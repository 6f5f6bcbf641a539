package update_booking_settings

import "github.com/barbercloud/barbercloud/internal/service/settings/models"

// UpdateBookingSettingsRequest HTTP request model
// Передаются только изменяемые поля
type UpdateBookingSettingsRequest struct {
	SlotDurationMinutes     *int `json:"slotDurationMinutes,omitempty"`
	Chairs                  *int `json:"chairs,omitempty"`
	AdvanceBookingDays      *int `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int `json:"minBookingNoticeMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingSettingsRequest) ToServiceRequest(barbershopID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		BarbershopID:            barbershopID,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		Chairs:                  r.Chairs,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}
