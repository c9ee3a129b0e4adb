// Package client talks to the events REST backend. Every record decoded
// from a response is schema-checked against the model's validate tags,
// so callers always receive well-formed canonical events or a typed
// decode error, never a half-guessed shape.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"eventManager/internal/client/mwlogger"
	"eventManager/internal/config"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/models"
	"eventManager/internal/validation"

	"github.com/go-playground/validator/v10"
)

var ErrNotFound = errors.New("event not found")

// DecodeError reports a response body that parsed as JSON but failed
// the canonical event schema.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: response failed schema check: %s", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Client struct {
	http     *http.Client
	baseURL  string
	validate *validator.Validate
}

func New(cfg config.API, log *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: mwlogger.New(log, nil),
		},
		baseURL:  cfg.BaseURL,
		validate: validator.New(),
	}
}

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	const op = "client.ListEvents"

	body, err := c.do(ctx, http.MethodGet, "/events", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var events []models.Event
	if err = json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	for i := range events {
		if err = c.validate.Struct(&events[i]); err != nil {
			return nil, &DecodeError{Op: op, Err: err}
		}
	}

	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	const op = "client.GetEvent"

	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.decodeEvent(op, body)
}

func (c *Client) CreateEvent(ctx context.Context, payload validation.CreatePayload) (*models.Event, error) {
	const op = "client.CreateEvent"

	body, err := c.do(ctx, http.MethodPost, "/events/new", payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.decodeEvent(op, body)
}

func (c *Client) UpdateEvent(ctx context.Context, id int, payload validation.UpdatePayload) (*models.Event, error) {
	const op = "client.UpdateEvent"

	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.decodeEvent(op, body)
}

func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	const op = "client.DeleteEvent"

	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// do performs one request and returns the raw body of a successful
// response. 404 maps to ErrNotFound; other non-2xx statuses surface the
// server's error envelope when one is present. No retries.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp response.Response
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Error)
		}

		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return body, nil
}

func (c *Client) decodeEvent(op string, body []byte) (*models.Event, error) {
	var event models.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	if err := c.validate.Struct(&event); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	return &event, nil
}
