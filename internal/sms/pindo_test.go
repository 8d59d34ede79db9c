package sms_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubuzima-backend/internal/sms"
)

type sentMessage struct {
	To     string `json:"to"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

func newGateway(t *testing.T, captured *sentMessage, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sms/", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestNotifySuccess(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusOK, `{"status": "success"}`)
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	result := client.Notify(context.Background(), "+250700000001", "Patient reports high fever")
	assert.True(t, result.Success)
	assert.Equal(t, "SMS sent successfully", result.Message)

	assert.Equal(t, "+250700000001", captured.To)
	assert.Equal(t, "PindoTest", captured.Sender)
	assert.Equal(t, "Medical Assistance Request:\nPatient reports high fever", captured.Text)
}

func TestNotifySuccessWithMessageID(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusCreated, `{"id": 12345}`)
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	result := client.Notify(context.Background(), "+250700000001", "summary")
	assert.True(t, result.Success)
	assert.Equal(t, "SMS sent successfully", result.Message)
}

func TestNotifyAcceptedWithoutConfirmation(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusOK, `{}`)
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	result := client.Notify(context.Background(), "+250700000001", "summary")
	assert.True(t, result.Success)
	assert.Equal(t, "SMS queued for delivery", result.Message)
}

func TestNotifyNonJSONSuccessBody(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusOK, "OK")
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	result := client.Notify(context.Background(), "+250700000001", "summary")
	assert.True(t, result.Success)
	assert.Equal(t, "SMS sent (gateway response not JSON)", result.Message)
}

func TestNotifyGatewayError(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusBadRequest, `{"message": "invalid phone number"}`)
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	result := client.Notify(context.Background(), "bogus", "summary")
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to send SMS: invalid phone number", result.Message)
}

func TestNotifyGatewayErrorPlainBody(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusServiceUnavailable, "gateway down")
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	result := client.Notify(context.Background(), "+250700000001", "summary")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "gateway down")
}

func TestNotifyTruncatesLongSummary(t *testing.T) {
	var captured sentMessage
	server := newGateway(t, &captured, http.StatusOK, `{"status": "success"}`)
	defer server.Close()

	client := sms.NewClient(server.URL, "test-token", "PindoTest")

	summary := strings.Repeat("a", 300)
	result := client.Notify(context.Background(), "+250700000001", summary)
	assert.True(t, result.Success)

	expected := "Medical Assistance Request:\n" + strings.Repeat("a", 160)
	assert.Equal(t, expected, captured.Text)
}
