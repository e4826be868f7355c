package paceservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент партнёрского фида Pace Shuttles
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Pace
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusyBlocks запрашивает занятые интервалы фида за окно [from, to)
func (c *Client) GetBusyBlocks(ctx context.Context, from, to time.Time) ([]BusyBlock, error) {
	payload, err := json.Marshal(busyBlocksRequest{
		FromISO: from.UTC().Format(time.RFC3339),
		ToISO:   to.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var parsed busyBlocksResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return parsed.Blocks, nil
}

// GetBusyBlocksWithGracefulDegradation запрашивает занятые интервалы с graceful degradation.
// Любая ошибка фида (сеть, не-200, кривой ответ) превращается в пустой вклад:
// недоступность партнёра никогда не ломает сам движок бронирования.
func (c *Client) GetBusyBlocksWithGracefulDegradation(ctx context.Context, from, to time.Time) []BusyBlock {
	blocks, err := c.GetBusyBlocks(ctx, from, to)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Pace feed unavailable, applying graceful degradation: %v",
			fmt.Errorf("%w: %v", ErrServiceDegraded, err))
		return nil
	}

	c.log.Info("Pace feed returned %d busy blocks for window %s..%s",
		len(blocks), from.Format(time.RFC3339), to.Format(time.RFC3339))
	return blocks
}

// DisabledClient null-реализация: фид выключен конфигурацией
type DisabledClient struct{}

// NewDisabledClient создает провайдер, который всегда возвращает пустой список
func NewDisabledClient() *DisabledClient {
	return &DisabledClient{}
}

// GetBusyBlocks возвращает пустой вклад
func (c *DisabledClient) GetBusyBlocks(ctx context.Context, from, to time.Time) ([]BusyBlock, error) {
	return nil, nil
}

// GetBusyBlocksWithGracefulDegradation возвращает пустой вклад
func (c *DisabledClient) GetBusyBlocksWithGracefulDegradation(ctx context.Context, from, to time.Time) []BusyBlock {
	return nil
}
