package update_booking_settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/settings"
	"github.com/barbercloud/barbercloud/internal/service/settings/models"
	"github.com/barbercloud/barbercloud/pkg/logger"
)

type fakeService struct {
	got  *models.UpdateSettingsRequest
	resp *models.SettingsResponse
	err  error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	f.got = req
	return f.resp, f.err
}

func put(svc SettingsService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/booking-settings", strings.NewReader(body))
	req = req.WithContext(middleware.WithBarbershopID(req.Context(), 2))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{resp: &models.SettingsResponse{BarbershopID: 2, SlotDurationMinutes: 45, Chairs: 3}}

	rec := put(svc, `{"chairs":3,"slotDurationMinutes":45}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(2), svc.got.BarbershopID)
	require.NotNil(t, svc.got.Chairs)
	assert.Equal(t, 3, *svc.got.Chairs)
	require.NotNil(t, svc.got.SlotDurationMinutes)
	assert.Equal(t, 45, *svc.got.SlotDurationMinutes)
	assert.Nil(t, svc.got.AdvanceBookingDays)
	assert.Nil(t, svc.got.MinBookingNoticeMinutes)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "unknown field", body: `{"seats":2}`, wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "out of range", body: `{"chairs":0}`, svcErr: fmt.Errorf("%w: chairs must be between 1 and 50", settings.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantError: msgInvalidData},
		{name: "internal", body: `{"chairs":2}`, svcErr: fmt.Errorf("%w: db", settings.ErrInternal), wantStatus: http.StatusInternalServerError, wantError: "error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeService{err: tt.svcErr}, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
		})
	}
}
