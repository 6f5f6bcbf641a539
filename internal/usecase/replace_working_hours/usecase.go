package replace_working_hours

import (
	"context"
	"fmt"
	"slices"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/workinghours"
)

// UseCase use case для полной замены недельного расписания барбершопа
type UseCase struct {
	repo      WorkingHoursRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo WorkingHoursRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case замены расписания
// Расписание проходит ту же валидацию, что и в редакторе; при ошибке ничего не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplaceWorkingHours: barbershop=%d, items=%d", req.BarbershopID, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReplaceWorkingHours: validation failed: %v", err)
		uc.metrics.IncWorkingHoursRejected("invalid_input")
		return nil, err
	}

	// 2. Собираем шаблон и валидируем его целиком
	template := workinghours.LoadTemplate(req.Items)
	if violation := workinghours.Validate(template); violation != nil {
		uc.logger.Warn("ReplaceWorkingHours: template rejected for barbershop=%d: %v", req.BarbershopID, violation)
		uc.metrics.IncWorkingHoursRejected(string(violation.Kind))
		return nil, violation
	}

	// 3. Нормализованный порядок: по дню, внутри дня по началу
	entries := slices.Collect(workinghours.Flatten(template))

	var stored []domain.WorkingHoursEntry

	// 4. Удаляем и вставляем заново в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Replace(txCtx, req.BarbershopID, entries); err != nil {
			uc.logger.Error("ReplaceWorkingHours: failed to replace working hours: %v", err)
			return fmt.Errorf("%w: failed to replace working hours: %v", ErrInternal, err)
		}

		result, err := uc.repo.GetByBarbershop(txCtx, req.BarbershopID)
		if err != nil {
			uc.logger.Error("ReplaceWorkingHours: failed to read back working hours: %v", err)
			return fmt.Errorf("%w: failed to read back working hours: %v", ErrInternal, err)
		}

		stored = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncWorkingHoursReplaced()
	uc.logger.Info("ReplaceWorkingHours: stored %d ranges for barbershop=%d", len(stored), req.BarbershopID)

	return &Response{Items: stored}, nil
}
