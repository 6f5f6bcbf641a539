package get_dashboard_stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/appointments/models"
	"github.com/barbercloud/barbercloud/pkg/logger"
)

type fakeService struct {
	gotID int64
	resp  *models.StatsResponse
	err   error
}

func (f *fakeService) Stats(_ context.Context, barbershopID int64) (*models.StatsResponse, error) {
	f.gotID = barbershopID
	return f.resp, f.err
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{resp: &models.StatsResponse{Today: 2, Next7Days: 5, Total: 11}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	req = req.WithContext(middleware.WithBarbershopID(req.Context(), 3))
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.gotID)
	assert.JSONEq(t, `{"today":2,"next7Days":5,"total":11}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&fakeService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
		req = req.WithContext(middleware.WithBarbershopID(req.Context(), 3))
		rec := httptest.NewRecorder()

		NewHandler(&fakeService{err: errors.New("db")}, logger.NewNop()).Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
