package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/goccy/go-json"
)

const defaultRetryAfter = 60 * time.Second

// HTTPCarrierClient реализует domain.CarrierClient поверх HTTP API перевозчика
type HTTPCarrierClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCarrierClient создает клиент системы отслеживания перевозчика
func NewCarrierClient(baseURL string, timeout time.Duration) *HTTPCarrierClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPCarrierClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetShipmentStatus получает статус и события отправления.
// Возвращает nil без ошибки, если перевозчику отправление пока неизвестно.
func (c *HTTPCarrierClient) GetShipmentStatus(ctx context.Context, trackingID string) (*domain.CarrierStatus, error) {
	endpoint := fmt.Sprintf("%s/api/shipments/%s/tracking", c.baseURL, url.PathEscape(trackingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("carrier client: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("carrier client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var status domain.CarrierStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return nil, fmt.Errorf("carrier client: failed to decode response: %w", err)
		}
		status.TrackingID = trackingID
		for i := range status.Events {
			status.Events[i].TrackingID = trackingID
		}
		return &status, nil

	case http.StatusNoContent:
		return nil, nil

	case http.StatusTooManyRequests:
		return nil, NewRateLimitError(parseRetryAfter(resp.Header.Get("Retry-After")))

	default:
		return nil, fmt.Errorf("carrier client: unexpected status code: %d", resp.StatusCode)
	}
}

func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
