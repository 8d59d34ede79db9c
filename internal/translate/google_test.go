package translate_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubuzima-backend/internal/translate"
)

func TestTranslateExtractsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/m", r.URL.Path)
		assert.Equal(t, "auto", r.URL.Query().Get("sl"))
		assert.Equal(t, "rw", r.URL.Query().Get("tl"))
		assert.Equal(t, "Hello friend", r.URL.Query().Get("q"))

		fmt.Fprint(w, `<html><body><div dir="ltr" class="result-container">Muraho inshuti</div></body></html>`)
	}))
	defer server.Close()

	client := translate.NewClient(server.URL)

	result, err := client.Translate(context.Background(), "Hello friend", "rw")
	require.NoError(t, err)
	assert.Equal(t, "Muraho inshuti", result)
}

func TestTranslateUnescapesEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="result-container">fish &amp; chips</div>`)
	}))
	defer server.Close()

	client := translate.NewClient(server.URL)

	result, err := client.Translate(context.Background(), "fish and chips", "rw")
	require.NoError(t, err)
	assert.Equal(t, "fish & chips", result)
}

func TestTranslateMissingFragment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>unexpected markup</p></body></html>`)
	}))
	defer server.Close()

	client := translate.NewClient(server.URL)

	_, err := client.Translate(context.Background(), "hello", "rw")
	assert.True(t, errors.Is(err, translate.ErrFragmentMissing))
}

func TestTranslateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := translate.NewClient(server.URL)

	_, err := client.Translate(context.Background(), "hello", "en")
	require.Error(t, err)
	assert.False(t, errors.Is(err, translate.ErrFragmentMissing))
}
