package translate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"regexp"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the mobile translation page, which returns markup simple
// enough to extract a single result fragment from.
const DefaultBaseURL = "https://translate.google.com"

// ErrFragmentMissing indicates the response did not contain the expected
// result fragment, usually because the upstream markup changed.
var ErrFragmentMissing = errors.New("translation result fragment not found in response")

var resultFragment = regexp.MustCompile(`(?s)<div[^>]*class="result-container"[^>]*>(.*?)</div>`)

// Client fetches translations by scraping the translation endpoint's mobile
// page. This is a fragile integration point, so it stays behind the
// orchestrator's Translator interface where it can be swapped out.
type Client struct {
	client *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{client: resty.New().SetBaseURL(baseURL)}
}

// Translate converts text into the target language, given as an ISO 639 code
// such as "en" or "rw". The source language is auto-detected upstream. There
// are no retries; callers decide whether to fall back to the original text.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sl": "auto",
			"tl": target,
			"q":  text,
		}).
		Get("/m")
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}

	if !res.IsSuccess() {
		slog.Error("translation endpoint returned error", "status_code", res.StatusCode())
		return "", fmt.Errorf("translation endpoint returned status %d", res.StatusCode())
	}

	match := resultFragment.FindStringSubmatch(res.String())
	if match == nil {
		return "", ErrFragmentMissing
	}

	return html.UnescapeString(match[1]), nil
}
