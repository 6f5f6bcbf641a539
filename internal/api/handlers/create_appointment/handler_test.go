package create_appointment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/barbercloud/barbercloud/internal/usecase/create_appointment"
	"github.com/barbercloud/barbercloud/pkg/logger"
	"github.com/barbercloud/barbercloud/pkg/types"
)

const validBody = `{"barbershopId":2,"serviceId":9,"customerName":"Lucía","customerPhone":"1155550000","date":"2025-03-11","time":"10:30"}`

type fakeUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(uc CreateAppointmentUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	created := time.Date(2025, 3, 10, 13, 40, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:              41,
		BarbershopID:    2,
		ServiceID:       9,
		CustomerName:    "Lucía",
		CustomerPhone:   "1155550000",
		Date:            time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:30",
		DurationMinutes: 30,
		Status:          "pending",
		CreatedAt:       created,
		UpdatedAt:       created,
	}}

	rec := post(uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(2), uc.got.BarbershopID)
	assert.Equal(t, types.TimeString("10:30"), uc.got.StartTime)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.JSONEq(t, `{
		"id":41,"barbershopId":2,"serviceId":9,"customerName":"Lucía","customerPhone":"1155550000",
		"date":"2025-03-11","time":"10:30","durationMinutes":30,"status":"pending",
		"createdAt":"2025-03-10T13:40:00Z","updatedAt":"2025-03-10T13:40:00Z"
	}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{name: "malformed json", body: `{"barbershopId":`, wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "bad date", body: `{"barbershopId":2,"date":"11/03/2025","time":"10:30"}`, wantStatus: http.StatusBadRequest, wantError: msgInvalidDate},
		{name: "missing fields", body: validBody, ucErr: fmt.Errorf("%w: customerName is required", createAppointment.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantError: msgInvalidInput},
		{name: "past date", body: validBody, ucErr: createAppointment.ErrInvalidDate, wantStatus: http.StatusBadRequest, wantError: msgPastDate},
		{name: "too far", body: validBody, ucErr: createAppointment.ErrDateTooFarInFuture, wantStatus: http.StatusBadRequest, wantError: msgDateTooFar},
		{name: "closed", body: validBody, ucErr: createAppointment.ErrBarbershopClosed, wantStatus: http.StatusBadRequest, wantError: msgClosed},
		{name: "not a slot start", body: validBody, ucErr: createAppointment.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest, wantError: msgInvalidTimeSlot},
		{name: "notice", body: validBody, ucErr: createAppointment.ErrTooLateToBook, wantStatus: http.StatusBadRequest, wantError: msgTooLate},
		{name: "full", body: validBody, ucErr: createAppointment.ErrSlotNotAvailable, wantStatus: http.StatusConflict, wantError: msgSlotNotAvailable},
		{name: "internal", body: validBody, ucErr: fmt.Errorf("%w: tx", createAppointment.ErrInternal), wantStatus: http.StatusInternalServerError, wantError: "error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.ucErr}, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
		})
	}
}
