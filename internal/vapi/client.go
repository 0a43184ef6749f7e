package vapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"ahudio-admin-server/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client talks to the remote voice-assistant platform
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a client for the platform at endpoint authenticated with a static bearer credential
func NewClient(endpoint, credential string) *Client {
	client := resty.New().
		SetBaseURL(endpoint).
		SetAuthToken(credential).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// ListAssistants returns every assistant of the organization
func (c *Client) ListAssistants(ctx context.Context) ([]Assistant, error) {
	var out []Assistant
	if err := c.do(ctx, resty.MethodGet, "/assistant", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAssistant(ctx context.Context, id string) (*Assistant, error) {
	var out Assistant
	if err := c.do(ctx, resty.MethodGet, "/assistant/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAssistant(ctx context.Context, payload *AssistantPayload) (*Assistant, error) {
	var out Assistant
	if err := c.do(ctx, resty.MethodPost, "/assistant", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAssistant sends a partial update (PATCH)
func (c *Client) UpdateAssistant(ctx context.Context, id string, payload *AssistantPayload) (*Assistant, error) {
	var out Assistant
	if err := c.do(ctx, resty.MethodPatch, "/assistant/"+url.PathEscape(id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAssistant(ctx context.Context, id string) error {
	return c.do(ctx, resty.MethodDelete, "/assistant/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListPhoneNumbers(ctx context.Context) ([]PhoneNumber, error) {
	var out []PhoneNumber
	if err := c.do(ctx, resty.MethodGet, "/phone-number", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPhoneNumber(ctx context.Context, id string) (*PhoneNumber, error) {
	var out PhoneNumber
	if err := c.do(ctx, resty.MethodGet, "/phone-number/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePhoneNumber(ctx context.Context, payload *PhoneNumberPayload) (*PhoneNumber, error) {
	var out PhoneNumber
	if err := c.do(ctx, resty.MethodPost, "/phone-number", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePhoneNumber sends a partial update (PATCH)
func (c *Client) UpdatePhoneNumber(ctx context.Context, id string, payload *PhoneNumberPayload) (*PhoneNumber, error) {
	var out PhoneNumber
	if err := c.do(ctx, resty.MethodPatch, "/phone-number/"+url.PathEscape(id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePhoneNumber(ctx context.Context, id string) error {
	return c.do(ctx, resty.MethodDelete, "/phone-number/"+url.PathEscape(id), nil, nil)
}

// ListCalls returns the raw call records so that callers can decode them one by one
func (c *Client) ListCalls(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	if err := c.do(ctx, resty.MethodGet, "/call", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one request and decodes a 2xx body into out (when out is not nil)
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.Error("VAPI request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("failed to call VAPI %s %s: %w", method, path, err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		logger.Warn("VAPI returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	logger.Debug("VAPI request succeeded",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode()),
	)

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode VAPI %s %s response: %w", method, path, err)
	}
	return nil
}
