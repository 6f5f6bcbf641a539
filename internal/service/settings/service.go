package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbercloud/barbercloud/internal/domain"
	settingsRepo "github.com/barbercloud/barbercloud/internal/infra/storage/settings"
	"github.com/barbercloud/barbercloud/internal/service/settings/models"
)

// Service сервис настроек бронирования барбершопа
// Если барбершоп не сохранял настройки, действуют значения из конфигурации сервиса
type Service struct {
	repo         SettingsRepository
	defaults     domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, defaults domain.BookingPolicy, logger Logger) *Service {
	return &Service{
		repo:         repo,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get получает настройки барбершопа или значения по умолчанию
func (s *Service) Get(ctx context.Context, barbershopID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching booking settings for barbershop=%d", barbershopID)

	stored, err := s.repo.GetByBarbershop(ctx, barbershopID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return models.FromDefaultPolicy(barbershopID, s.defaults), nil
		}
		s.logger.Error("Get: repository error for barbershop=%d: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(stored), nil
}

// Policy возвращает действующую политику бронирования барбершопа
// Используется при расчете слотов и создании записи
func (s *Service) Policy(ctx context.Context, barbershopID int64) (domain.BookingPolicy, error) {
	stored, err := s.repo.GetByBarbershop(ctx, barbershopID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return s.defaults, nil
		}
		return domain.BookingPolicy{}, fmt.Errorf("%w: Policy - repository error: %v", ErrInternal, err)
	}
	return stored.Policy, nil
}

// Update частично обновляет настройки барбершопа
// Отсутствующие настройки создаются поверх значений по умолчанию
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating booking settings for barbershop=%d", req.BarbershopID)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	// 1. Получаем текущие настройки
	now := s.timeProvider.Now()
	current, err := s.repo.GetByBarbershop(ctx, req.BarbershopID)
	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		current = &domain.BookingSettings{
			BarbershopID: req.BarbershopID,
			Policy:       s.defaults,
			CreatedAt:    now,
		}
	case err != nil:
		s.logger.Error("Update: repository error for barbershop=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем обновления и валидируем результат
	req.ApplyToPolicy(&current.Policy)
	if err := validatePolicy(current.Policy); err != nil {
		s.logger.Warn("Update: validation failed for barbershop=%d: %v", req.BarbershopID, err)
		return nil, err
	}

	// 3. Сохраняем
	current.UpdatedAt = now
	if err := s.repo.Upsert(ctx, current); err != nil {
		s.logger.Error("Update: repository error for barbershop=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking settings for barbershop=%d", req.BarbershopID)
	return models.FromDomainSettings(current), nil
}

func validatePolicy(p domain.BookingPolicy) error {
	if p.SlotDurationMinutes < domain.MinSlotDurationMinutes || p.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if p.Chairs < domain.MinChairs || p.Chairs > domain.MaxChairs {
		return fmt.Errorf("%w: chairs must be between %d and %d", ErrInvalidInput, domain.MinChairs, domain.MaxChairs)
	}
	if p.AdvanceBookingDays < 0 || p.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between 0 and %d", ErrInvalidInput, domain.MaxAdvanceBookingDays)
	}
	if p.MinBookingNoticeMinutes < 0 || p.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBookingNoticeMinutes)
	}
	return nil
}
