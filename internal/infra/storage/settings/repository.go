package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
)

const table = "booking_settings"

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек бронирования барбершопов
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{db: db, sb: psqlbuilder.For(driver)}
}

// GetByBarbershop получает настройки барбершопа
// Если настроек нет, возвращает ErrSettingsNotFound
func (r *Repository) GetByBarbershop(ctx context.Context, barbershopID int64) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(
		"barbershop_id",
		"slot_duration_minutes",
		"chairs",
		"advance_booking_days",
		"min_booking_notice_minutes",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.BookingSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.BarbershopID,
		&settings.Policy.SlotDurationMinutes,
		&settings.Policy.Chairs,
		&settings.Policy.AdvanceBookingDays,
		&settings.Policy.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert создает или обновляет настройки барбершопа
// created_at сохраняется при обновлении
func (r *Repository) Upsert(ctx context.Context, settings *domain.BookingSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert(table).
		Columns(
			"barbershop_id",
			"slot_duration_minutes",
			"chairs",
			"advance_booking_days",
			"min_booking_notice_minutes",
			"created_at",
			"updated_at",
		).
		Values(
			settings.BarbershopID,
			settings.Policy.SlotDurationMinutes,
			settings.Policy.Chairs,
			settings.Policy.AdvanceBookingDays,
			settings.Policy.MinBookingNoticeMinutes,
			settings.CreatedAt.UTC(),
			settings.UpdatedAt.UTC(),
		).
		// ON CONFLICT поддерживается и PostgreSQL, и SQLite
		Suffix(`ON CONFLICT (barbershop_id) DO UPDATE SET
			slot_duration_minutes = excluded.slot_duration_minutes,
			chairs = excluded.chairs,
			advance_booking_days = excluded.advance_booking_days,
			min_booking_notice_minutes = excluded.min_booking_notice_minutes,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
