package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/infra/storage/storagetest"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
	"github.com/barbercloud/barbercloud/pkg/ptr"
	"github.com/barbercloud/barbercloud/pkg/types"
)

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func newAppointment(shop int64, day, start, name, phone string, status domain.AppointmentStatus) *domain.Appointment {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		BarbershopID:    shop,
		ServiceID:       3,
		CustomerName:    name,
		CustomerPhone:   phone,
		Date:            date(day),
		StartTime:       types.TimeString(start),
		DurationMinutes: 30,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func seed(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()
	for _, a := range []*domain.Appointment{
		newAppointment(1, "2025-03-10", "16:00", "Juan Pérez", "+54 11 5555-0001", domain.StatusPending),
		newAppointment(1, "2025-03-10", "10:00", "Ana Gómez", "+54 11 5555-0002", domain.StatusConfirmed),
		newAppointment(1, "2025-03-11", "10:00", "Carlos Ruiz", "+54 11 5555-0003", domain.StatusCanceled),
		newAppointment(1, "2025-03-20", "12:30", "Marta JUAREZ", "+54 11 5555-0004", domain.StatusPending),
		newAppointment(2, "2025-03-10", "10:00", "Otro Cliente", "+54 11 5555-0005", domain.StatusPending),
	} {
		_, err := repo.Create(ctx, a)
		require.NoError(t, err)
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.NewSQLite(t), psqlbuilder.DriverSQLite)

	created, err := repo.Create(ctx, newAppointment(1, "2025-03-10", "10:30", "Ana", "123", domain.StatusPending))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.BarbershopID, got.BarbershopID)
	assert.Equal(t, "2025-03-10", got.Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("10:30"), got.StartTime)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_ListWithFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.NewSQLite(t), psqlbuilder.DriverSQLite)
	seed(t, repo)

	names := func(items []*domain.Appointment) []string {
		out := make([]string, 0, len(items))
		for _, a := range items {
			out = append(out, a.CustomerName)
		}
		return out
	}

	tests := []struct {
		name   string
		filter domain.AppointmentsFilter
		want   []string
	}{
		{
			name:   "active ordered by date and time",
			filter: domain.AppointmentsFilter{BarbershopID: 1},
			want:   []string{"Ana Gómez", "Juan Pérez", "Marta JUAREZ"},
		},
		{
			name:   "including canceled",
			filter: domain.AppointmentsFilter{BarbershopID: 1, IncludeInactive: true},
			want:   []string{"Ana Gómez", "Juan Pérez", "Carlos Ruiz", "Marta JUAREZ"},
		},
		{
			name:   "status",
			filter: domain.AppointmentsFilter{BarbershopID: 1, Status: ptr.Ptr(domain.StatusCanceled)},
			want:   []string{"Carlos Ruiz"},
		},
		{
			name:   "date range",
			filter: domain.AppointmentsFilter{BarbershopID: 1, StartDate: ptr.Ptr(date("2025-03-11")), EndDate: ptr.Ptr(date("2025-03-31"))},
			want:   []string{"Marta JUAREZ"},
		},
		{
			name:   "query by name ignores case",
			filter: domain.AppointmentsFilter{BarbershopID: 1, Query: "juarez"},
			want:   []string{"Marta JUAREZ"},
		},
		{
			name:   "query by phone",
			filter: domain.AppointmentsFilter{BarbershopID: 1, Query: "0001"},
			want:   []string{"Juan Pérez"},
		},
		{
			name:   "query folds non ascii case",
			filter: domain.AppointmentsFilter{BarbershopID: 1, Query: "GÓMEZ"},
			want:   []string{"Ana Gómez"},
		},
		{
			name:   "percent is literal",
			filter: domain.AppointmentsFilter{BarbershopID: 1, Query: "%"},
			want:   []string{},
		},
		{
			name:   "underscore is literal",
			filter: domain.AppointmentsFilter{BarbershopID: 1, Query: "_"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.ListWithFilter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(items))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
	assert.Equal(t, "gómez", escapeLike("gómez"))
}

func TestRepository_ListQuery_PostgresEscapesPattern(t *testing.T) {
	repo := NewRepository(nil, psqlbuilder.DriverPostgres)

	query, args, err := repo.listQuery(domain.AppointmentsFilter{BarbershopID: 1, Status: ptr.Ptr(domain.StatusPending), Query: " 50%_OFF "})
	require.NoError(t, err)

	assert.Contains(t, query, `LOWER(customer_name) LIKE $3 ESCAPE '\'`)
	assert.Contains(t, query, `LOWER(customer_phone) LIKE $4 ESCAPE '\'`)
	assert.Equal(t, `%50\%\_off%`, args[len(args)-1])
}

func TestRepository_GetActiveByDateAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.NewSQLite(t), psqlbuilder.DriverSQLite)
	seed(t, repo)

	items, err := repo.GetActiveByDate(ctx, 1, date("2025-03-10"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, types.TimeString("10:00"), items[0].StartTime)

	items, err = repo.GetActiveByDate(ctx, 1, date("2025-03-11"))
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := repo.CountActive(ctx, 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	day, err := repo.CountActive(ctx, 1, ptr.Ptr(date("2025-03-10")), ptr.Ptr(date("2025-03-10")))
	require.NoError(t, err)
	assert.Equal(t, 2, day)
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.NewSQLite(t), psqlbuilder.DriverSQLite)

	created, err := repo.Create(ctx, newAppointment(1, "2025-03-10", "10:30", "Ana", "123", domain.StatusPending))
	require.NoError(t, err)

	updatedAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateStatus(ctx, created.ID, domain.StatusConfirmed, updatedAt))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.True(t, updatedAt.Equal(got.UpdatedAt))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, domain.StatusCanceled, updatedAt), ErrAppointmentNotFound)
}
