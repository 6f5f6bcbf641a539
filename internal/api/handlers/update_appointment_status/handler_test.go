package update_appointment_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/service/appointments"
	"github.com/barbercloud/barbercloud/internal/service/appointments/models"
	"github.com/barbercloud/barbercloud/pkg/logger"
)

type fakeService struct {
	gotID  int64
	gotReq *models.UpdateStatusRequest
	resp   *models.AppointmentResponse
	err    error
}

func (f *fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	f.gotID = id
	f.gotReq = req
	return f.resp, f.err
}

func put(svc AppointmentService, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{id}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req = req.WithContext(middleware.WithBarbershopID(req.Context(), 6))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentResponse{ID: 12, BarbershopID: 6, Status: "confirmed"}}

	rec := put(svc, "/api/v1/appointments/12/status", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), svc.gotID)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, int64(6), svc.gotReq.BarbershopID)
	assert.Equal(t, "confirmed", svc.gotReq.Status)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{name: "bad id", target: "/api/v1/appointments/x/status", body: `{"status":"confirmed"}`, wantStatus: http.StatusBadRequest, wantError: msgInvalidAppointmentID},
		{name: "empty body", target: "/api/v1/appointments/12/status", body: "", wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "bad status", target: "/api/v1/appointments/12/status", body: `{"status":"done"}`, svcErr: fmt.Errorf("%w: invalid status", appointments.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantError: msgInvalidStatus},
		{name: "not found", target: "/api/v1/appointments/12/status", body: `{"status":"canceled"}`, svcErr: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound, wantError: msgNotFound},
		{name: "canceled stays canceled", target: "/api/v1/appointments/12/status", body: `{"status":"confirmed"}`, svcErr: fmt.Errorf("%w: canceled -> confirmed", appointments.ErrInvalidTransition), wantStatus: http.StatusConflict, wantError: msgInvalidTransition},
		{name: "internal", target: "/api/v1/appointments/12/status", body: `{"status":"confirmed"}`, svcErr: fmt.Errorf("%w: db", appointments.ErrInternal), wantStatus: http.StatusInternalServerError, wantError: "error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeService{err: tt.svcErr}, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
		})
	}
}
