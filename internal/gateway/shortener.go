package gateway

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/sirupsen/logrus"
)

// ShortenerClient - клиент сервиса сокращения ссылок для SMS.
// Любая ошибка означает возврат исходной ссылки, а не отказ.
type ShortenerClient struct {
	apiURL     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewShortenerClient создает новый ShortenerClient
func NewShortenerClient(cfg *config.Config, logger *logrus.Logger) *ShortenerClient {
	return &ShortenerClient{
		apiURL: cfg.ShortenerURL,
		httpClient: &http.Client{
			Timeout: cfg.ShortenerTimeout,
		},
		logger: logger,
	}
}

// Shorten возвращает сокращенную версию ссылки либо исходную ссылку,
// если сервис недоступен или ответил не похожим на URL телом
func (c *ShortenerClient) Shorten(ctx context.Context, longURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?url="+url.QueryEscape(longURL), nil)
	if err != nil {
		return longURL
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Debug("URL shortener unavailable, using long URL")
		return longURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return longURL
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return longURL
	}

	short := strings.TrimSpace(string(body))
	if !strings.HasPrefix(short, "http") {
		return longURL
	}
	return short
}
