package create_appointment

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud/internal/domain"
	appointmentRepo "github.com/barbercloud/barbercloud/internal/infra/storage/appointment"
	"github.com/barbercloud/barbercloud/internal/infra/storage/storagetest"
	workingHoursRepo "github.com/barbercloud/barbercloud/internal/infra/storage/workinghours"
	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
	"github.com/barbercloud/barbercloud/pkg/logger"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
	"github.com/barbercloud/barbercloud/pkg/txmanager"
)

type fakePolicies struct{ policy domain.BookingPolicy }

func (f *fakePolicies) Policy(_ context.Context, _ int64) (domain.BookingPolicy, error) {
	return f.policy, nil
}

type countingMetrics struct{ created int }

func (m *countingMetrics) IncAppointmentsCreated() { m.created++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type failingAppointments struct{}

func (failingAppointments) Create(_ context.Context, _ *domain.Appointment) (*domain.Appointment, error) {
	return nil, errors.New("boom")
}

func (failingAppointments) GetActiveByDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return nil, nil
}

var art = time.FixedZone("ART", -3*60*60)

func date(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

type env struct {
	uc           *UseCase
	db           *sql.DB
	appointments *appointmentRepo.Repository
	metrics      *countingMetrics
}

// newEnv поднимает use case поверх SQLite в памяти
// Понедельник 10:00-13:00, вторник 10:00-12:00 и 16:00-18:00, 2 кресла, слот 30 минут
func newEnv(t *testing.T) *env {
	t.Helper()

	db := storagetest.NewSQLite(t)
	whRepo := workingHoursRepo.NewRepository(db, psqlbuilder.DriverSQLite)
	apRepo := appointmentRepo.NewRepository(db, psqlbuilder.DriverSQLite)

	require.NoError(t, whRepo.Replace(context.Background(), 1, []domain.WorkingHoursEntry{
		{Weekday: domain.Monday, StartTime: "10:00", EndTime: "13:00"},
		{Weekday: domain.Tuesday, StartTime: "10:00", EndTime: "12:00"},
		{Weekday: domain.Tuesday, StartTime: "16:00", EndTime: "18:00"},
	}))

	m := &countingMetrics{}
	uc := NewUseCase(
		apRepo,
		whRepo,
		&fakePolicies{policy: domain.BookingPolicy{SlotDurationMinutes: 30, Chairs: 2, AdvanceBookingDays: 14, MinBookingNoticeMinutes: 60}},
		txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil), sql.LevelDefault),
		m,
		art,
		logger.NewNop(),
	)
	// понедельник 2025-03-10, 10:40 по Буэнос-Айресу
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 13, 40, 0, 0, time.UTC)}

	return &env{uc: uc, db: db, appointments: apRepo, metrics: m}
}

func validRequest() *Request {
	return &Request{
		BarbershopID:  1,
		ServiceID:     3,
		CustomerName:  "  Juan Gómez ",
		CustomerPhone: "+54 11 5555-0000",
		Date:          date(11),
		StartTime:     "16:30",
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Juan Gómez", resp.CustomerName)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 1, e.metrics.created)

	stored, err := e.appointments.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, "2025-03-11", stored.Date.Format(domain.DateFormat))
}

func TestExecute_FullSlot(t *testing.T) {
	e := newEnv(t)

	for i := 0; i < 2; i++ {
		_, err := e.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	}

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// соседний слот свободен
	req := validRequest()
	req.StartTime = "17:00"
	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 3, e.metrics.created)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "missing name", mutate: func(r *Request) { r.CustomerName = "   " }, wantErr: ErrInvalidInput},
		{name: "missing phone", mutate: func(r *Request) { r.CustomerPhone = "" }, wantErr: ErrInvalidInput},
		{name: "missing service", mutate: func(r *Request) { r.ServiceID = 0 }, wantErr: ErrInvalidInput},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "25:00" }, wantErr: ErrInvalidInput},
		{name: "past date", mutate: func(r *Request) { r.Date = date(9) }, wantErr: ErrInvalidDate},
		{name: "too far", mutate: func(r *Request) { r.Date = date(31) }, wantErr: ErrDateTooFarInFuture},
		{name: "closed day", mutate: func(r *Request) { r.Date = date(12) }, wantErr: ErrBarbershopClosed},
		{name: "between ranges", mutate: func(r *Request) { r.StartTime = "13:00" }, wantErr: ErrInvalidTimeSlot},
		{name: "off grid", mutate: func(r *Request) { r.StartTime = "16:15" }, wantErr: ErrInvalidTimeSlot},
		{name: "last slot must fit", mutate: func(r *Request) { r.StartTime = "18:00" }, wantErr: ErrInvalidTimeSlot},
		{
			name:    "inside notice window",
			mutate:  func(r *Request) { r.Date = date(10); r.StartTime = "11:00" },
			wantErr: ErrTooLateToBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			req := validRequest()
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, e.metrics.created)
		})
	}
}

func TestExecute_TodayAfterNotice(t *testing.T) {
	e := newEnv(t)
	req := validRequest()
	req.Date = date(10)
	req.StartTime = "12:00"

	_, err := e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CreateFailureIsInternal(t *testing.T) {
	e := newEnv(t)
	e.uc.appointmentRepo = failingAppointments{}

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, e.metrics.created)
}
