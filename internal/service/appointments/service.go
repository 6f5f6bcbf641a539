package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
	appointmentRepo "github.com/barbercloud/barbercloud/internal/infra/storage/appointment"
	"github.com/barbercloud/barbercloud/internal/service/appointments/models"
	"github.com/barbercloud/barbercloud/internal/service/slots"
)

const statsWindow = 7 * 24 * time.Hour

// Service сервис для работы с записями барбершопа (панель администратора)
type Service struct {
	repo         AppointmentRepository
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
// loc - часовой пояс барбершопов, в нем считаются "сегодня" и ближайшие 7 дней
func NewService(
	repo AppointmentRepository,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:         repo,
		metrics:      metrics,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает записи барбершопа с фильтрацией
//
// Примеры использования:
// - Все активные записи: List(ctx, &ListAppointmentsRequest{BarbershopID: 7})
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Поиск клиента: Query = "gomez" или часть телефона
// - Включая отмененные: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("List: fetching appointments for barbershop=%d", req.BarbershopID)
	if req.StartDate != nil {
		logMsg += fmt.Sprintf(", from=%s", req.StartDate.Format(domain.DateFormat))
	}
	if req.EndDate != nil {
		logMsg += fmt.Sprintf(", to=%s", req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.Query != "" {
		logMsg += fmt.Sprintf(", q=%q", req.Query)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for barbershop=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for barbershop=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for barbershop=%d", len(appointments), req.BarbershopID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus подтверждает или отменяет запись
// Администратор видит только записи своего барбершопа, отмененная запись не меняется
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by barbershop=%d", id, req.Status, req.BarbershopID)

	// Валидируем статус
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Получаем запись
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем принадлежность барбершопу
	if appointment.BarbershopID != req.BarbershopID {
		s.logger.Warn("UpdateStatus: appointment id=%d belongs to barbershop=%d, not %d",
			id, appointment.BarbershopID, req.BarbershopID)
		return nil, ErrAppointmentNotFound
	}

	if !appointment.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: appointment id=%d cannot move from %s to %s", id, appointment.Status, newStatus)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
	}

	now := s.timeProvider.Now()
	if err := s.repo.UpdateStatus(ctx, id, newStatus, now); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentStatusChanged(string(newStatus))

	appointment.Status = newStatus
	appointment.UpdatedAt = now

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(appointment), nil
}

// Stats считает активные записи для дашборда
// today - записи на сегодняшнюю дату, next7Days - записи, начинающиеся в ближайшие 7 суток
func (s *Service) Stats(ctx context.Context, barbershopID int64) (*models.StatsResponse, error) {
	s.logger.Info("Stats: computing dashboard stats for barbershop=%d", barbershopID)

	now := s.timeProvider.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekEnd := now.Add(statsWindow)
	lastDay := time.Date(weekEnd.Year(), weekEnd.Month(), weekEnd.Day(), 0, 0, 0, 0, time.UTC)

	var stats domain.DashboardStats
	var err error

	// 1. Записи на сегодня
	if stats.Today, err = s.repo.CountActive(ctx, barbershopID, &today, &today); err != nil {
		s.logger.Error("Stats: failed to count today's appointments for barbershop=%d: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: Stats - count today: %v", ErrInternal, err)
	}

	// 2. Ближайшие 7 суток: границы по датам, затем фильтр по точному времени начала
	upcoming, err := s.repo.ListWithFilter(ctx, domain.AppointmentsFilter{
		BarbershopID: barbershopID,
		StartDate:    &today,
		EndDate:      &lastDay,
	})
	if err != nil {
		s.logger.Error("Stats: failed to list upcoming appointments for barbershop=%d: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: Stats - list upcoming: %v", ErrInternal, err)
	}
	for _, appointment := range upcoming {
		startsAt := slots.StartsAt(appointment.Date, appointment.StartTime, s.location)
		if !startsAt.Before(now) && !startsAt.After(weekEnd) {
			stats.Next7Days++
		}
	}

	// 3. Все активные записи
	if stats.Total, err = s.repo.CountActive(ctx, barbershopID, nil, nil); err != nil {
		s.logger.Error("Stats: failed to count appointments for barbershop=%d: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: Stats - count total: %v", ErrInternal, err)
	}

	s.logger.Info("Stats: barbershop=%d today=%d next7Days=%d total=%d",
		barbershopID, stats.Today, stats.Next7Days, stats.Total)
	return models.FromDomainStats(stats), nil
}
