package replace_working_hours

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/workinghours"
	replaceWorkingHours "github.com/barbercloud/barbercloud/internal/usecase/replace_working_hours"
	"github.com/barbercloud/barbercloud/pkg/logger"
)

type fakeUseCase struct {
	got  *replaceWorkingHours.Request
	resp *replaceWorkingHours.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *replaceWorkingHours.Request) (*replaceWorkingHours.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/working-hours", strings.NewReader(body))
	return req.WithContext(middleware.WithBarbershopID(req.Context(), 5))
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &replaceWorkingHours.Response{Items: []domain.WorkingHoursEntry{
		{Weekday: domain.Tuesday, StartTime: "10:00", EndTime: "12:00"},
	}}}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(`{"items":[{"weekday":1,"startTime":"10:00","endTime":"12:00"}]}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(5), uc.got.BarbershopID)
	assert.Equal(t, []domain.WorkingHoursEntry{
		{Weekday: domain.Tuesday, StartTime: "10:00", EndTime: "12:00"},
	}, uc.got.Items)
	assert.JSONEq(t, `{"items":[{"weekday":1,"startTime":"10:00","endTime":"12:00"}]}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	violation := &workinghours.ValidationError{
		Weekday: domain.Tuesday,
		Kind:    workinghours.ViolationOverlap,
		Message: "Martes: hay horarios superpuestos",
	}

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "unknown field", body: `{"ranges":[]}`, wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{
			name:       "template violation",
			body:       `{"items":[]}`,
			ucErr:      violation,
			wantStatus: http.StatusBadRequest,
			wantError:  "Martes: hay horarios superpuestos",
		},
		{
			name:       "invalid weekday",
			body:       `{"items":[]}`,
			ucErr:      fmt.Errorf("%w: weekday 9 is out of range", replaceWorkingHours.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidItems,
		},
		{
			name:       "internal",
			body:       `{"items":[]}`,
			ucErr:      fmt.Errorf("%w: boom", replaceWorkingHours.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantError:  "error interno del servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&fakeUseCase{err: tt.ucErr}, logger.NewNop()).Handle(rec, newRequest(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
		})
	}
}

func TestHandler_Handle_Unauthorized(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("must not be called")}
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/working-hours", strings.NewReader(`{"items":[]}`))
	NewHandler(uc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
