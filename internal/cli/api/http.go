package api

import (
	"MyWeddBlue/internal/ornament"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error - ошибочный ответ сервера (не 2xx).
type Error struct {
	Status  int
	Message string
	Invalid []ornament.FieldError
}

func (e *Error) Error() string {
	if len(e.Invalid) == 0 {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Invalid))
	for _, p := range e.Invalid {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("server returned %d: %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

// Client - клиент JSON API. Пустой HTTP использует http.DefaultClient.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New создаёт клиента к серверу по полному URL (http://host:port).
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// GetJSON выполняет GET и декодирует ответ в out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON отправляет payload методом POST.
func (c *Client) PostJSON(ctx context.Context, path string, payload, out any) error {
	return c.Do(ctx, http.MethodPost, path, payload, out)
}

// PutJSON отправляет payload методом PUT.
func (c *Client) PutJSON(ctx context.Context, path string, payload, out any) error {
	return c.Do(ctx, http.MethodPut, path, payload, out)
}

// DeleteJSON выполняет DELETE.
func (c *Client) DeleteJSON(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do выполняет запрос. Ответ не 2xx превращается в *Error; out == nil - тело игнорируется.
func (c *Client) Do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var eb struct {
			Error   string    `json:"error"`
			Invalid []ornament.FieldError `json:"invalid"`
		}
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			apiErr.Message = eb.Error
			apiErr.Invalid = eb.Invalid
		} else {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
