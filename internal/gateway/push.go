package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
)

const alertNotificationPath = "/api/alert-notification"

// PushClient - клиент push-приёмника, рассылающего уведомления радарам
type PushClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewPushClient создает новый PushClient
func NewPushClient(cfg *config.Config, logger *logrus.Logger) *PushClient {
	return &PushClient{
		baseURL: cfg.PushBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
		logger: logger,
	}
}

// pushPayload - тело запроса к push-приёмнику
type pushPayload struct {
	RadarTokens []string  `json:"radar_tokens"`
	AlertData   alertData `json:"alert_data"`
}

// alertData - нормализованная сводка тревоги для push-уведомления
type alertData struct {
	ID            uuid.UUID `json:"id"`
	InstituteID   uuid.UUID `json:"institute_id"`
	Name          string    `json:"name"`
	PrimaryPhone  string    `json:"primary_phone"`
	AlertTypeName string    `json:"alert_type_name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Datetime      string    `json:"datetime"`
	Status        string    `json:"status"`
	Remarks       string    `json:"remarks"`
	Source        string    `json:"source"`
	Image         string    `json:"image"`
}

// pushResponse - ответ push-приёмника; успех требует success=true
type pushResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendAlertNotification отправляет одну тревогу списку радар-токенов.
// Успехом считается только HTTP 200 с телом {"success": true}.
func (c *PushClient) SendAlertNotification(ctx context.Context, tokens []string, alert *models.AlertEvent) error {
	payload := pushPayload{
		RadarTokens: tokens,
		AlertData: alertData{
			ID:            alert.ID,
			InstituteID:   alert.InstituteID,
			Name:          alert.Name,
			PrimaryPhone:  alert.PrimaryPhone,
			AlertTypeName: alert.AlertTypeDisplay(),
			Latitude:      alert.Latitude,
			Longitude:     alert.Longitude,
			Datetime:      alert.Datetime.Format(time.RFC3339),
			Status:        string(alert.Status),
			Remarks:       alert.Remarks,
			Source:        string(alert.Source),
			Image:         alert.Image,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+alertNotificationPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithFields(logrus.Fields{
		"alert_id": alert.ID,
		"tokens":   len(tokens),
	}).Info("Sending alert notification to push sink")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push sink returned status %d", resp.StatusCode)
	}

	var result pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode push response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("push sink reported failure: %s", result.Message)
	}

	return nil
}
