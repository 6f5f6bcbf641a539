package models

import (
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	BarbershopID            int64 `json:"-"`
	SlotDurationMinutes     *int  `json:"slotDurationMinutes,omitempty"`
	Chairs                  *int  `json:"chairs,omitempty"`
	AdvanceBookingDays      *int  `json:"advanceBookingDays,omitempty"`      // 0 = без ограничений
	MinBookingNoticeMinutes *int  `json:"minBookingNoticeMinutes,omitempty"` // минимальное время до записи
}

// SettingsResponse ответ с настройками бронирования
// IsDefault = true, если барбершоп еще не сохранял свои настройки
type SettingsResponse struct {
	BarbershopID            int64      `json:"barbershopId"`
	SlotDurationMinutes     int        `json:"slotDurationMinutes"`
	Chairs                  int        `json:"chairs"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	IsDefault               bool       `json:"isDefault"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BookingSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	updatedAt := s.UpdatedAt
	return &SettingsResponse{
		BarbershopID:            s.BarbershopID,
		SlotDurationMinutes:     s.Policy.SlotDurationMinutes,
		Chairs:                  s.Policy.Chairs,
		AdvanceBookingDays:      s.Policy.AdvanceBookingDays,
		MinBookingNoticeMinutes: s.Policy.MinBookingNoticeMinutes,
		UpdatedAt:               &updatedAt,
	}
}

// FromDefaultPolicy ответ для барбершопа без сохраненных настроек
func FromDefaultPolicy(barbershopID int64, p domain.BookingPolicy) *SettingsResponse {
	return &SettingsResponse{
		BarbershopID:            barbershopID,
		SlotDurationMinutes:     p.SlotDurationMinutes,
		Chairs:                  p.Chairs,
		AdvanceBookingDays:      p.AdvanceBookingDays,
		MinBookingNoticeMinutes: p.MinBookingNoticeMinutes,
		IsDefault:               true,
	}
}

// ApplyToPolicy применяет переданные поля к политике
func (r *UpdateSettingsRequest) ApplyToPolicy(p *domain.BookingPolicy) {
	if r.SlotDurationMinutes != nil {
		p.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.Chairs != nil {
		p.Chairs = *r.Chairs
	}
	if r.AdvanceBookingDays != nil {
		p.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		p.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
}

// IsEmpty возвращает true, если не передано ни одного поля
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.SlotDurationMinutes == nil && r.Chairs == nil &&
		r.AdvanceBookingDays == nil && r.MinBookingNoticeMinutes == nil
}
