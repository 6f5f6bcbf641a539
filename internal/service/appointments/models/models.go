package models

import (
	"errors"
	"strings"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	BarbershopID int64  `json:"-"`
	Status       string `json:"status"`
}

// ListAppointmentsRequest запрос на получение записей барбершопа
type ListAppointmentsRequest struct {
	BarbershopID    int64      `json:"-"`
	StartDate       *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	EndDate         *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	Query           string     `json:"q,omitempty"`               // Поиск по имени или телефону
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BarbershopID:    r.BarbershopID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Query:           strings.TrimSpace(r.Query),
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return filter, errors.New("to must not be before from")
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	BarbershopID    int64     `json:"barbershopId"`
	ServiceID       int64     `json:"serviceId"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	Date            string    `json:"date"` // "2025-10-15"
	Time            string    `json:"time"` // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
}

// StatsResponse счетчики для дашборда администратора
type StatsResponse struct {
	Today     int `json:"today"`
	Next7Days int `json:"next7Days"`
	Total     int `json:"total"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		BarbershopID:    a.BarbershopID,
		ServiceID:       a.ServiceID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		Date:            a.Date.Format(domain.DateFormat),
		Time:            a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Items: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if item := FromDomainAppointment(appointment); item != nil {
			resp.Items = append(resp.Items, *item)
		}
	}

	return resp
}

// FromDomainStats конвертирует счетчики дашборда в DTO
func FromDomainStats(s domain.DashboardStats) *StatsResponse {
	return &StatsResponse{Today: s.Today, Next7Days: s.Next7Days, Total: s.Total}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
