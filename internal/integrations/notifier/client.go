package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент почтового webhook
// Без URL письма только логируются
type Client struct {
	webhookURL  string
	fromAddress string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента рассылки
func NewClient(webhookURL, fromAddress string, timeout time.Duration, log Logger) *Client {
	return &Client{
		webhookURL:  strings.TrimSpace(webhookURL),
		fromAddress: fromAddress,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendEmail отправляет письмо паре
func (c *Client) SendEmail(ctx context.Context, email Email) error {
	if strings.TrimSpace(email.To) == "" || strings.TrimSpace(email.Message) == "" {
		return fmt.Errorf("%w: recipient and message are required", ErrInvalidInput)
	}
	if email.Subject == "" {
		email.Subject = DefaultSubject
	}
	if email.From == "" {
		email.From = c.fromAddress
	}

	if c.webhookURL == "" {
		c.log.Info("SendEmail: webhook is not configured, email logged only: request_id=%s, to=%s, subject=%q",
			email.RequestID, email.To, email.Subject)
		return nil
	}

	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: failed to encode email: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.log.Info("SendEmail: email dispatched: request_id=%s, to=%s", email.RequestID, email.To)
		return nil
	default:
		var errResp ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDeliveryFailed, resp.StatusCode, string(raw))
	}
}
