package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.pindo.io"

const (
	messagePrefix = "Medical Assistance Request:\n"
	// maxSummaryLength keeps the case summary within a single SMS segment
	// after the prefix.
	maxSummaryLength = 160
)

// Result is the structured outcome of a notification attempt. Failures carry
// the gateway's error text so callers can surface it without parsing strings.
type Result struct {
	Success bool
	Message string
}

// Client sends doctor notifications through the Pindo SMS gateway.
type Client struct {
	client *resty.Client
	sender string
}

func NewClient(baseURL, token, sender string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client: resty.New().SetBaseURL(baseURL).SetAuthToken(token),
		sender: sender,
	}
}

type gatewayResponse struct {
	Status  string          `json:"status"`
	ID      json.RawMessage `json:"id"`
	Message string          `json:"message"`
}

// Notify sends a single SMS built from the fixed prefix and the truncated
// case summary. A 2xx with a success status or message id is a confirmed
// send; a 2xx without a parseable body is treated as success since the
// gateway accepted the request. Never retries.
func (c *Client) Notify(ctx context.Context, to, summary string) Result {
	if runes := []rune(summary); len(runes) > maxSummaryLength {
		summary = string(runes[:maxSummaryLength])
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"to":     to,
			"text":   messagePrefix + summary,
			"sender": c.sender,
		}).
		Post("/v1/sms/")
	if err != nil {
		slog.Error("sms gateway request failed", "error", err)
		return Result{Success: false, Message: fmt.Sprintf("Failed to send SMS: %v", err)}
	}

	if res.IsSuccess() {
		var body gatewayResponse
		if err := json.Unmarshal(res.Body(), &body); err != nil {
			return Result{Success: true, Message: "SMS sent (gateway response not JSON)"}
		}
		if body.Status == "success" || hasMessageID(body.ID) {
			return Result{Success: true, Message: "SMS sent successfully"}
		}
		return Result{Success: true, Message: "SMS queued for delivery"}
	}

	slog.Error("sms gateway returned error", "status_code", res.StatusCode(), "body", res.String())

	errorText := "Unknown error"
	var body gatewayResponse
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Message != "" {
		errorText = body.Message
	} else if len(res.Body()) > 0 {
		errorText = res.String()
	}

	return Result{Success: false, Message: "Failed to send SMS: " + errorText}
}

func hasMessageID(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
