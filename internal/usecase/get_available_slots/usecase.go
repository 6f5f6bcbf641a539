package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/slots"
)

// UseCase use case для получения доступных слотов для записи
// Слоты выводятся из недельного расписания барбершопа на день недели запрошенной даты
type UseCase struct {
	workingHoursRepo WorkingHoursRepository
	appointmentRepo  AppointmentRepository
	policies         PolicyProvider
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingHoursRepo WorkingHoursRepository,
	appointmentRepo AppointmentRepository,
	policies PolicyProvider,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		workingHoursRepo: workingHoursRepo,
		appointmentRepo:  appointmentRepo,
		policies:         policies,
		location:         loc,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barbershop=%d, date=%s", req.BarbershopID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем действующую политику бронирования
	policy, err := uc.policies.Policy(ctx, req.BarbershopID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booking policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking policy: %v", ErrInternal, err)
	}

	// 4. Валидация даты с учетом политики
	if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:         req.Date,
		BarbershopID: req.BarbershopID,
		Weekday:      domain.WeekdayFromTime(req.Date),
		Slots:        []Slot{},
	}

	// 5. Получаем диапазоны работы на день недели
	ranges, err := uc.workingHoursRepo.GetByBarbershopAndWeekday(ctx, req.BarbershopID, resp.Weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}
	if len(ranges) == 0 {
		uc.logger.Info("GetAvailableSlots: barbershop=%d is closed on %s", req.BarbershopID, resp.Weekday.Label())
		return resp, nil
	}

	// 6. Генерируем слоты и отбрасываем слишком близкие к текущему времени
	starts, err := slots.Generate(ranges, policy.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}
	starts = slots.FilterByNotice(starts, req.Date, now, policy.MinBookingNoticeMinutes)

	// 7. Получаем активные записи на эту дату
	appointments, err := uc.appointmentRepo.GetActiveByDate(ctx, req.BarbershopID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Вычисляем свободные кресла для каждого слота
	resp.Slots = fromDomainSlots(slots.Availability(starts, policy.SlotDurationMinutes, appointments, policy.Chairs))

	uc.logger.Info("GetAvailableSlots: generated %d slots for barbershop=%d, date=%s",
		len(resp.Slots), req.BarbershopID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
