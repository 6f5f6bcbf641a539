package barbercloud

import (
	"bytes"
	"encoding/json"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// WorkingHoursPayload тело запроса и ответа /working-hours
type WorkingHoursPayload struct {
	Items []domain.WorkingHoursEntry `json:"items"`
}

// ErrorResponse модель ошибки от сервера
type ErrorResponse struct {
	Error string `json:"error"`
}

// decodeItems принимает как {"items": [...]}, так и голый массив
func decodeItems(body []byte) ([]domain.WorkingHoursEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []domain.WorkingHoursEntry
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var payload WorkingHoursPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}
