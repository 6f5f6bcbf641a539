package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
	"github.com/barbercloud/barbercloud/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Параметры: from, to (YYYY-MM-DD), status, q, includeInactive
func ToServiceRequest(barbershopID int64, query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		BarbershopID: barbershopID,
		Query:        query.Get("q"),
	}

	from, err := handlers.ParseOptionalDate(query.Get("from"))
	if err != nil {
		return nil, fmt.Errorf("invalid from: %w", err)
	}
	req.StartDate = from

	to, err := handlers.ParseOptionalDate(query.Get("to"))
	if err != nil {
		return nil, fmt.Errorf("invalid to: %w", err)
	}
	req.EndDate = to

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
