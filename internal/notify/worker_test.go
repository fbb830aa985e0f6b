package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/config"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	w := NewWorker(nil, logger, cfg)
	w.sleep = func(context.Context, time.Duration) {}
	return w
}

func testEvent() (SightingEvent, string) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	event := NewSightingEvent(&models.Sighting{
		ID:              uuid.New(),
		Latitude:        39.7684,
		Longitude:       -86.1581,
		SightingType:    models.SightingCheckpoint,
		ReportedAt:      now,
		ExpiresAt:       now.Add(30 * time.Minute),
		DeviceTokenHash: "20000.secret",
	}, "79:-173")
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestDeliver_SignsPayload(t *testing.T) {
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookSecret: "s3cret", WebhookMaxRetries: 3, WebhookTimeout: time.Second})
	event, payload := testEvent()

	require.NoError(t, w.Deliver(context.Background(), event, payload))
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.NotContains(t, gotBody, "secret", "device token must never leave the store")
}

func TestDeliver_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 3, WebhookTimeout: time.Second})
	event, payload := testEvent()

	require.NoError(t, w.Deliver(context.Background(), event, payload))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 2, WebhookTimeout: time.Second})
	event, payload := testEvent()

	err := w.Deliver(context.Background(), event, payload)
	require.Error(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDeliver_NoURL(t *testing.T) {
	w := newTestWorker(&config.Config{})
	event, payload := testEvent()
	assert.NoError(t, w.Deliver(context.Background(), event, payload))
}
