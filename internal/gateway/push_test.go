package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestAlert() *models.AlertEvent {
	return &models.AlertEvent{
		ID:            uuid.New(),
		Source:        models.SourceApp,
		Name:          "Ram Sharma",
		PrimaryPhone:  "9841000000",
		AlertTypeName: "Fire",
		Latitude:      27.7,
		Longitude:     85.3,
		Datetime:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:        models.StatusPending,
		InstituteID:   uuid.New(),
		InstituteName: "Lalitpur",
	}
}

func TestPushClient_Success(t *testing.T) {
	// Подготовка
	var received pushPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, alertNotificationPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := NewPushClient(&config.Config{PushBaseURL: srv.URL, PushTimeout: time.Second}, newTestLogger())
	alert := newTestAlert()

	// Действие
	err := client.SendAlertNotification(context.Background(), []string{"tok-1", "tok-2"}, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, received.RadarTokens)
	assert.Equal(t, alert.ID, received.AlertData.ID)
	assert.Equal(t, "Fire", received.AlertData.AlertTypeName)
	assert.Equal(t, "2025-06-01T12:00:00Z", received.AlertData.Datetime)
}

func TestPushClient_SuccessFalseIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "no subscribers"}`))
	}))
	defer srv.Close()

	client := NewPushClient(&config.Config{PushBaseURL: srv.URL, PushTimeout: time.Second}, newTestLogger())

	err := client.SendAlertNotification(context.Background(), []string{"tok-1"}, newTestAlert())

	require.Error(t, err)
	assert.ErrorContains(t, err, "no subscribers")
}

func TestPushClient_Non200IsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewPushClient(&config.Config{PushBaseURL: srv.URL, PushTimeout: time.Second}, newTestLogger())

	err := client.SendAlertNotification(context.Background(), []string{"tok-1"}, newTestAlert())

	require.Error(t, err)
	assert.ErrorContains(t, err, "502")
}

func TestPushClient_MalformedBodyIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":`))
	}))
	defer srv.Close()

	client := NewPushClient(&config.Config{PushBaseURL: srv.URL, PushTimeout: time.Second}, newTestLogger())

	err := client.SendAlertNotification(context.Background(), []string{"tok-1"}, newTestAlert())

	require.Error(t, err)
	assert.ErrorContains(t, err, "decode")
}
