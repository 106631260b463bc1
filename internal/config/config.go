package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Push sink (радар-уведомления)
	PushBaseURL string        `env:"PUSH_BASE_URL" envDefault:"https://www.system.mylunago.com"`
	PushTimeout time.Duration `env:"PUSH_TIMEOUT" envDefault:"30s"`

	// SMS-шлюз (также транспорт для реле-команд)
	SMSAPIURL     string        `env:"SMS_API_URL" envDefault:"https://sms.kaichogroup.com/smsapi/index.php"`
	SMSAPIKey     string        `env:"SMS_API_KEY"`
	SMSCampaignID string        `env:"SMS_CAMPAIGN_ID" envDefault:"9148"`
	SMSRouteID    string        `env:"SMS_ROUTE_ID" envDefault:"130"`
	SMSSenderID   string        `env:"SMS_SENDER_ID" envDefault:"SMSBit"`
	SMSTimeout    time.Duration `env:"SMS_TIMEOUT" envDefault:"30s"`

	// Сокращатель ссылок для SMS с картой
	ShortenerURL     string        `env:"SHORTENER_URL" envDefault:"https://tinyurl.com/api-create.php"`
	ShortenerTimeout time.Duration `env:"SHORTENER_TIMEOUT" envDefault:"5s"`
	PublicSiteURL    string        `env:"PUBLIC_SITE_URL" envDefault:"https://www.mylunago.com"`

	// Внешний приёмник экстренных заявок
	IntakeURL       string        `env:"INTAKE_URL"`
	IntakeAPIKey    string        `env:"INTAKE_API_KEY"`
	IntakeTimestamp string        `env:"INTAKE_API_TIMESTAMP"`
	IntakeSignature string        `env:"INTAKE_API_SIGNATURE"`
	IntakeService   string        `env:"INTAKE_SERVICE" envDefault:"1"`
	IntakeCitizen   string        `env:"INTAKE_CITIZEN"`
	IntakeTimeout   time.Duration `env:"INTAKE_TIMEOUT" envDefault:"30s"`
	// Название института, чьи тревоги пересылаются во внешний приёмник
	ForwardInstitute string `env:"FORWARD_INSTITUTE"`

	// Минимальная задержка перед отключением реле
	RelayMinDelay time.Duration `env:"RELAY_MIN_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		PushBaseURL: getEnv("PUSH_BASE_URL", "https://www.system.mylunago.com"),
		PushTimeout: getEnvAsDuration("PUSH_TIMEOUT", 30*time.Second),

		SMSAPIURL:     getEnv("SMS_API_URL", "https://sms.kaichogroup.com/smsapi/index.php"),
		SMSAPIKey:     os.Getenv("SMS_API_KEY"),
		SMSCampaignID: getEnv("SMS_CAMPAIGN_ID", "9148"),
		SMSRouteID:    getEnv("SMS_ROUTE_ID", "130"),
		SMSSenderID:   getEnv("SMS_SENDER_ID", "SMSBit"),
		SMSTimeout:    getEnvAsDuration("SMS_TIMEOUT", 30*time.Second),

		ShortenerURL:     getEnv("SHORTENER_URL", "https://tinyurl.com/api-create.php"),
		ShortenerTimeout: getEnvAsDuration("SHORTENER_TIMEOUT", 5*time.Second),
		PublicSiteURL:    getEnv("PUBLIC_SITE_URL", "https://www.mylunago.com"),

		IntakeURL:        os.Getenv("INTAKE_URL"),
		IntakeAPIKey:     os.Getenv("INTAKE_API_KEY"),
		IntakeTimestamp:  os.Getenv("INTAKE_API_TIMESTAMP"),
		IntakeSignature:  os.Getenv("INTAKE_API_SIGNATURE"),
		IntakeService:    getEnv("INTAKE_SERVICE", "1"),
		IntakeCitizen:    os.Getenv("INTAKE_CITIZEN"),
		IntakeTimeout:    getEnvAsDuration("INTAKE_TIMEOUT", 30*time.Second),
		ForwardInstitute: os.Getenv("FORWARD_INSTITUTE"),

		RelayMinDelay: getEnvAsDuration("RELAY_MIN_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
