package workinghours

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
)

const table = "working_hours"

// Repository репозиторий недельных шаблонов рабочего времени
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория рабочего времени
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{db: db, sb: psqlbuilder.For(driver)}
}

// GetByBarbershop получает все диапазоны барбершопа
// Порядок: день недели, затем порядок сохранения внутри дня
func (r *Repository) GetByBarbershop(ctx context.Context, barbershopID int64) ([]domain.WorkingHoursEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("weekday", "start_time", "end_time").
		From(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		OrderBy("weekday ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.WorkingHoursEntry, 0)
	for rows.Next() {
		var entry domain.WorkingHoursEntry
		if err := rows.Scan(&entry.Weekday, &entry.StartTime, &entry.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetByBarbershop - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - rows iteration: %v", ErrScanRow, err)
	}

	return entries, nil
}

// GetByBarbershopAndWeekday получает диапазоны одного дня недели
func (r *Repository) GetByBarbershopAndWeekday(ctx context.Context, barbershopID int64, weekday domain.Weekday) ([]domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("start_time", "end_time").
		From(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID, "weekday": int(weekday)}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershopAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershopAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.TimeRange, 0)
	for rows.Next() {
		var tr domain.TimeRange
		if err := rows.Scan(&tr.StartTime, &tr.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetByBarbershopAndWeekday - scan range: %v", ErrScanRow, err)
		}
		ranges = append(ranges, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershopAndWeekday - rows iteration: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// Replace заменяет весь шаблон барбершопа: удаляет старые строки и вставляет новые
// Вызывать внутри транзакции, иначе читатель может увидеть пустой шаблон
func (r *Repository) Replace(ctx context.Context, barbershopID int64, entries []domain.WorkingHoursEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insert := r.sb.Insert(table).
		Columns("barbershop_id", "weekday", "start_time", "end_time", "position")

	// position сохраняет порядок диапазонов внутри дня
	positions := make(map[domain.Weekday]int, domain.DaysInWeek)
	for _, entry := range entries {
		insert = insert.Values(barbershopID, int(entry.Weekday), entry.StartTime, entry.EndTime, positions[entry.Weekday])
		positions[entry.Weekday]++
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
