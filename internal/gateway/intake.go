package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/sirupsen/logrus"
)

// IncidentLocation - координаты в строковом виде, как их ожидает приёмник
type IncidentLocation struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// IncidentPayload - фиксированная форма заявки во внешний приёмник
type IncidentPayload struct {
	Location       IncidentLocation `json:"location"`
	Service        string           `json:"service"`
	ContactNo      string           `json:"contact_no"`
	Message        string           `json:"message"`
	Citizen        string           `json:"citizen"`
	DeviceLocation IncidentLocation `json:"device_location"`
}

// IntakeClient - клиент стороннего приёмника экстренных заявок
type IntakeClient struct {
	apiURL     string
	apiKey     string
	timestamp  string
	signature  string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewIntakeClient создает новый IntakeClient
func NewIntakeClient(cfg *config.Config, logger *logrus.Logger) *IntakeClient {
	return &IntakeClient{
		apiURL:    cfg.IntakeURL,
		apiKey:    cfg.IntakeAPIKey,
		timestamp: cfg.IntakeTimestamp,
		signature: cfg.IntakeSignature,
		httpClient: &http.Client{
			Timeout: cfg.IntakeTimeout,
		},
		logger: logger,
	}
}

// SubmitIncident отправляет одну заявку. Успех - HTTP 200 или 201.
func (c *IntakeClient) SubmitIncident(ctx context.Context, payload IncidentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal intake payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create intake request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("X-API-TIMESTAMP", c.timestamp)
	req.Header.Set("X-API-SIGNATURE", c.signature)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("intake request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("intake endpoint returned status %d", resp.StatusCode)
	}

	c.logger.WithField("contact_no", payload.ContactNo).Info("Incident submitted to external intake")
	return nil
}
