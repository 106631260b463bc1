package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/sirupsen/logrus"
)

// RelayGateway - транспорт реле-команд (реализуется SMS-шлюзом)
type RelayGateway interface {
	SendRelayCommand(ctx context.Context, devicePhone string, on bool) error
}

// RelayScheduler планирует однократное отключение реле после задержки.
// Каждая задача - отдельная горутина, не привязанная к жизненному циклу
// запроса: её нельзя отменить или дождаться, при перезапуске процесса
// незавершенные задачи теряются. Это принятое ограничение.
type RelayScheduler struct {
	relay       RelayGateway
	logger      *logrus.Logger
	minDelay    time.Duration
	callTimeout time.Duration
}

// NewRelayScheduler создает новый RelayScheduler
func NewRelayScheduler(relay RelayGateway, logger *logrus.Logger, cfg *config.Config) *RelayScheduler {
	minDelay := cfg.RelayMinDelay
	if minDelay <= 0 {
		minDelay = time.Second
	}
	callTimeout := cfg.SMSTimeout
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &RelayScheduler{
		relay:       relay,
		logger:      logger,
		minDelay:    minDelay,
		callTimeout: callTimeout,
	}
}

// ScheduleOff запускает отложенную отправку команды выключения реле
// и сразу возвращает управление. Задержка меньше минимальной
// поднимается до минимальной. Любая ошибка или паника внутри задачи
// логируется и никогда не распространяется наружу.
func (s *RelayScheduler) ScheduleOff(devicePhone string, delay time.Duration, alertID, buzzerID uuid.UUID) {
	if delay < s.minDelay {
		delay = s.minDelay
	}

	log := s.logger.WithFields(logrus.Fields{
		"device":   devicePhone,
		"alert_id": alertID,
		"buzzer":   buzzerID,
		"delay":    delay.String(),
	})
	log.Info("Scheduled relay OFF command")

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("Panic in scheduled relay OFF task: %v", r)
			}
		}()

		timer := time.NewTimer(delay)
		defer timer.Stop()
		<-timer.C

		ctx, cancel := context.WithTimeout(context.Background(), s.callTimeout)
		defer cancel()

		if err := s.relay.SendRelayCommand(ctx, devicePhone, false); err != nil {
			log.WithError(err).Warn("Failed to send relay OFF command")
			return
		}
		log.Info("Relay OFF command sent")
	}()
}
