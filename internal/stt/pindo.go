package stt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// ErrTranscriptionFailed indicates the speech endpoint returned a non-success
// status for the uploaded audio.
var ErrTranscriptionFailed = errors.New("speech endpoint rejected the audio")

// Client transcribes Kinyarwanda audio through the Pindo public
// speech-to-text endpoint.
type Client struct {
	client *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{client: resty.New().SetBaseURL(baseURL)}
}

type transcribeResponse struct {
	Data struct {
		Text string `json:"text"`
	} `json:"data"`
}

// Transcribe uploads the recording and returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetFileReader("audio", filename, audio).
		SetFormData(map[string]string{"lang": "rw"}).
		Post("/ai/stt/rw/public")
	if err != nil {
		return "", fmt.Errorf("speech-to-text request failed: %w", err)
	}

	if !res.IsSuccess() {
		slog.Error("speech-to-text returned error", "status_code", res.StatusCode(), "body", res.String())
		return "", ErrTranscriptionFailed
	}

	var body transcribeResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("unable to parse speech-to-text response: %w", err)
	}

	return body.Data.Text, nil
}
