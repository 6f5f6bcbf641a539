package create_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/slots"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	appointmentRepo  AppointmentRepository
	workingHoursRepo WorkingHoursRepository
	policies         PolicyProvider
	txManager        TransactionManager
	metrics          Metrics
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	workingHoursRepo WorkingHoursRepository,
	policies PolicyProvider,
	txManager TransactionManager,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		workingHoursRepo: workingHoursRepo,
		policies:         policies,
		txManager:        txManager,
		metrics:          metrics,
		location:         loc,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Проверка свободных кресел и вставка выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateAppointment: barbershop=%d, service=%d, date=%s, time=%s",
		req.BarbershopID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем действующую политику бронирования
	policy, err := uc.policies.Policy(ctx, req.BarbershopID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get booking policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking policy: %v", ErrInternal, err)
	}

	// 4. Валидация даты и времени с учетом политики
	if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}
	if err := validateNotice(req.Date, req.StartTime, now, policy.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 5. Выполняем операции с БД в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем рабочие часы на день недели
		weekday := domain.WeekdayFromTime(req.Date)
		ranges, err := uc.workingHoursRepo.GetByBarbershopAndWeekday(txCtx, req.BarbershopID, weekday)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}
		if len(ranges) == 0 {
			uc.logger.Warn("CreateAppointment: barbershop=%d is closed on %s", req.BarbershopID, weekday.Label())
			return ErrBarbershopClosed
		}

		// 5.2. Время должно совпадать с началом слота
		if err := validateSlotStart(req.StartTime, ranges, policy.SlotDurationMinutes); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 5.3. Получаем активные записи на дату (с блокировкой в PostgreSQL)
		appointments, err := uc.appointmentRepo.GetActiveByDate(txCtx, req.BarbershopID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.4. Проверяем свободные кресла
		// Если кресел 2, допустимо overlapping = 0 или 1
		overlapping := slots.CountOverlapping(req.StartTime, policy.SlotDurationMinutes, appointments)
		if overlapping >= policy.Chairs {
			uc.logger.Warn("CreateAppointment: slot not available, %d/%d chairs taken", overlapping, policy.Chairs)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateAppointment: slot available, %d/%d chairs taken", overlapping, policy.Chairs)

		// 5.5. Создаем запись в статусе pending
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			BarbershopID:    req.BarbershopID,
			ServiceID:       req.ServiceID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: policy.SlotDurationMinutes,
			Status:          domain.StatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentsCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		BarbershopID:    result.BarbershopID,
		ServiceID:       result.ServiceID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
