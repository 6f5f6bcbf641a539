package get_booking_settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/settings/models"
	"github.com/barbercloud/barbercloud/pkg/logger"
)

type fakeService struct {
	resp *models.SettingsResponse
	err  error
}

func (f *fakeService) Get(_ context.Context, _ int64) (*models.SettingsResponse, error) {
	return f.resp, f.err
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-settings", nil)
	return req.WithContext(middleware.WithBarbershopID(req.Context(), 2))
}

func TestHandler_Handle_Defaults(t *testing.T) {
	svc := &fakeService{resp: &models.SettingsResponse{
		BarbershopID:            2,
		SlotDurationMinutes:     30,
		Chairs:                  1,
		AdvanceBookingDays:      30,
		MinBookingNoticeMinutes: 60,
		IsDefault:               true,
	}}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, newRequest())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"barbershopId":2,"slotDurationMinutes":30,"chairs":1,
		"advanceBookingDays":30,"minBookingNoticeMinutes":60,"isDefault":true
	}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&fakeService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/booking-settings", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&fakeService{err: errors.New("db")}, logger.NewNop()).Handle(rec, newRequest())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
