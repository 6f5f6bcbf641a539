package barbercloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
)

const workingHoursPath = "/api/v1/working-hours"

// maxErrorBody ограничение на чтение тела ошибки
const maxErrorBody = 64 << 10

// Client клиент для работы с API BarberCloud
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BarberCloud
// token передается как Bearer в каждом запросе, пустой token не отправляется
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetWorkingHours получает сохраненный недельный шаблон барбершопа в плоском виде
func (c *Client) GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error) {
	resp, err := c.do(ctx, http.MethodGet, workingHoursPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, remoteError(resp.StatusCode, body, http.StatusText(resp.StatusCode))
	}

	// Парсим ответ
	items, err := decodeItems(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d working hours ranges", len(items))
	return items, nil
}

// ReplaceWorkingHours заменяет весь недельный шаблон на сервере
// Ответ с кодом не 2xx возвращается как *RemoteError с сообщением сервера
func (c *Client) ReplaceWorkingHours(ctx context.Context, items []domain.WorkingHoursEntry) error {
	if items == nil {
		items = []domain.WorkingHoursEntry{}
	}

	payload, err := json.Marshal(WorkingHoursPayload{Items: items})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, http.MethodPut, workingHoursPath, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.log.Info("Replaced working hours with %d ranges", len(items))
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	remoteErr := remoteError(resp.StatusCode, body, genericSaveMessage)
	c.log.Warn("Failed to replace working hours: %s", remoteErr.Describe())
	return remoteErr
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}

// remoteError берет сообщение из {"error": "..."}, иначе подставляет fallback
func remoteError(status int, body []byte, fallback string) *RemoteError {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && strings.TrimSpace(errResp.Error) != "" {
		return &RemoteError{StatusCode: status, Message: errResp.Error}
	}
	return &RemoteError{StatusCode: status, Message: fallback}
}
