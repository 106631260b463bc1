package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/sirupsen/logrus"
)

// Реле-команды передаются как SMS-тексты на телефон устройства
const (
	relayOnCommand  = "RELAY,1#"
	relayOffCommand = "RELAY,0#"
)

// SMSClient - клиент SMS-шлюза. Тот же шлюз служит транспортом
// для реле-команд сиренам и тревожным кнопкам.
type SMSClient struct {
	apiURL     string
	apiKey     string
	campaignID string
	routeID    string
	senderID   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewSMSClient создает новый SMSClient
func NewSMSClient(cfg *config.Config, logger *logrus.Logger) *SMSClient {
	return &SMSClient{
		apiURL:     cfg.SMSAPIURL,
		apiKey:     cfg.SMSAPIKey,
		campaignID: cfg.SMSCampaignID,
		routeID:    cfg.SMSRouteID,
		senderID:   cfg.SMSSenderID,
		httpClient: &http.Client{
			Timeout: cfg.SMSTimeout,
		},
		logger: logger,
	}
}

// SendSMS отправляет одно сообщение на номер телефона.
// Шлюз отвечает телом "SMS-SHOOT-ID/..." при успехе и "ERR:..." при ошибке.
func (c *SMSClient) SendSMS(ctx context.Context, phone, message string) error {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("campaign", c.campaignID)
	params.Set("routeid", c.routeID)
	params.Set("type", "text")
	params.Set("contacts", phone)
	params.Set("senderid", c.senderID)
	params.Set("msg", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create sms request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read sms response: %w", err)
	}
	text := strings.TrimSpace(string(body))

	switch {
	case strings.Contains(text, "SMS-SHOOT-ID"):
		c.logger.WithField("phone", phone).Debug("SMS sent successfully")
		return nil
	case strings.Contains(text, "ERR:"):
		return fmt.Errorf("sms gateway error: %s", text)
	default:
		return fmt.Errorf("unexpected sms gateway response: %s", text)
	}
}

// SendRelayCommand отправляет реле-команду на устройство: on=true
// включает реле, on=false - выключает
func (c *SMSClient) SendRelayCommand(ctx context.Context, devicePhone string, on bool) error {
	command := relayOffCommand
	if on {
		command = relayOnCommand
	}
	return c.SendSMS(ctx, devicePhone, command)
}
