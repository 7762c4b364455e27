package payments

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

// Client клиент для работы с платёжным сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateIntent создает платёжное намерение для бронирования
func (c *Client) CreateIntent(ctx context.Context, req *IntentRequest) (*Intent, error) {
	url := fmt.Sprintf("%s/internal/payment-intents", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &intent, nil
}

// RequestRefund запрашивает возврат средств по бронированию
func (c *Client) RequestRefund(ctx context.Context, req *RefundRequest) error {
	url := fmt.Sprintf("%s/internal/refunds", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// CreateIntentFireAndForget создает платёжное намерение с graceful degradation:
// любая ошибка логируется и не влияет на результат бронирования.
// Платёжный статус останется pending до прихода платёжного события.
func (c *Client) CreateIntentFireAndForget(ctx context.Context, req *IntentRequest) {
	intent, err := c.CreateIntent(ctx, req)
	if err != nil {
		c.log.Error("Payments service unavailable, booking_id=%d stays pending: %v", req.BookingID, err)
		return
	}
	c.log.Info("Payment intent created: intent_id=%s, booking_id=%d, amount=%.2f",
		intent.ID, req.BookingID, req.Amount)
}

// RequestRefundFireAndForget запрашивает возврат с graceful degradation
func (c *Client) RequestRefundFireAndForget(ctx context.Context, req *RefundRequest) {
	if err := c.RequestRefund(ctx, req); err != nil {
		c.log.Error("Refund request failed for booking_id=%d: %v", req.BookingID, err)
		return
	}
	c.log.Info("Refund requested: booking_id=%d", req.BookingID)
}
