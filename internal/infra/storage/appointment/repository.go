package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"barbershop_id",
	"service_id",
	"customer_name",
	"customer_phone",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
// Дата хранится строкой YYYY-MM-DD: строковое сравнение совпадает с хронологическим в обоих диалектах
type Repository struct {
	db     DBExecutor
	sb     squirrel.StatementBuilderType
	driver string
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{db: db, sb: psqlbuilder.For(driver), driver: driver}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert(table).
		Columns(
			"barbershop_id",
			"service_id",
			"customer_name",
			"customer_phone",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"created_at",
			"updated_at",
		).
		Values(
			appointment.BarbershopID,
			appointment.ServiceID,
			appointment.CustomerName,
			appointment.CustomerPhone,
			appointment.Date.Format(domain.DateFormat),
			appointment.StartTime,
			appointment.DurationMinutes,
			appointment.Status,
			appointment.CreatedAt.UTC(),
			appointment.UpdatedAt.UTC(),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListWithFilter получает записи барбершопа с фильтрацией
// Сортировка по дате и времени по возрастанию, как в агенде
//
// Примеры:
//
//	filter := domain.AppointmentsFilter{BarbershopID: 7, Query: "gomez"}
//	status := domain.StatusPending
//	filter := domain.AppointmentsFilter{BarbershopID: 7, Status: &status}
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := scanAppointments(rows)
	q := searchQuery(filter)
	if err != nil || q == "" || r.driver != psqlbuilder.DriverSQLite {
		return appointments, err
	}

	matched := appointments[:0]
	for _, a := range appointments {
		if matchesQuery(a, q) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *Repository) listQuery(filter domain.AppointmentsFilter) (string, []interface{}, error) {
	selectBuilder := r.sb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"barbershop_id": filter.BarbershopID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": filter.EndDate.Format(domain.DateFormat)})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	// Поиск по имени или телефону клиента без учета регистра
	// LOWER в SQLite понижает только ASCII, поэтому там поиск делается после выборки
	if q := searchQuery(filter); q != "" && r.driver != psqlbuilder.DriverSQLite {
		pattern := "%" + escapeLike(q) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Expr(`LOWER(customer_name) LIKE ? ESCAPE '\'`, pattern),
			squirrel.Expr(`LOWER(customer_phone) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	return selectBuilder.OrderBy("appointment_date ASC", "start_time ASC", "id ASC").ToSql()
}

func searchQuery(filter domain.AppointmentsFilter) string {
	return strings.ToLower(strings.TrimSpace(filter.Query))
}

// escapeLike экранирует спецсимволы LIKE, чтобы % и _ искались буквально
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// matchesQuery q уже в нижнем регистре
func matchesQuery(a *domain.Appointment, q string) bool {
	return strings.Contains(strings.ToLower(a.CustomerName), q) ||
		strings.Contains(strings.ToLower(a.CustomerPhone), q)
}

// GetActiveByDate получает активные записи барбершопа на дату
// Внутри транзакции в PostgreSQL строки блокируются (FOR UPDATE) для проверки свободных кресел
func (r *Repository) GetActiveByDate(ctx context.Context, barbershopID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.sb.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"barbershop_id":    barbershopID,
			"appointment_date": date.Format(domain.DateFormat),
			"status":           activeStatusStrings(),
		}).
		OrderBy("start_time ASC")

	// SQLite не поддерживает FOR UPDATE, транзакция там и так сериализуется
	if dbmetrics.IsInTransaction(ctx) && r.driver == psqlbuilder.DriverPostgres {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Update(table).
		Set("status", string(status)).
		Set("updated_at", updatedAt.UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountActive считает активные записи барбершопа, дата в [from, to] если границы заданы
func (r *Repository) CountActive(ctx context.Context, barbershopID int64, from, to *time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID, "status": activeStatusStrings()})
	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": from.Format(domain.DateFormat)})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": to.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment domain.Appointment
		date        string
		status      string
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.BarbershopID,
		&appointment.ServiceID,
		&appointment.CustomerName,
		&appointment.CustomerPhone,
		&date,
		&appointment.StartTime,
		&appointment.DurationMinutes,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment_date %q: %v", date, err)
	}

	appointment.Date = parsed
	appointment.Status = domain.AppointmentStatus(status)
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
