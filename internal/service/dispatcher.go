package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
)

// PushGateway - push-приёмник, рассылающий уведомления радарам
type PushGateway interface {
	SendAlertNotification(ctx context.Context, tokens []string, alert *models.AlertEvent) error
}

// SMSGateway - шлюз отправки SMS
type SMSGateway interface {
	SendSMS(ctx context.Context, phone, message string) error
}

// RelayGateway - транспорт реле-команд для сирен и тревожных кнопок
type RelayGateway interface {
	SendRelayCommand(ctx context.Context, devicePhone string, on bool) error
}

// LinkShortener - сокращатель ссылок для SMS; не возвращает ошибок,
// при сбое отдает исходную ссылку
type LinkShortener interface {
	Shorten(ctx context.Context, longURL string) string
}

// RelayOffScheduler - планировщик отложенного выключения реле
type RelayOffScheduler interface {
	ScheduleOff(devicePhone string, delay time.Duration, alertID, buzzerID uuid.UUID)
}

// DispatchService определяет контракт рассылки тревоги по каналам
type DispatchService interface {
	Dispatch(ctx context.Context, alert *models.AlertEvent) *models.DispatchOutcome
}

// EligibleSource сообщает, запускает ли источник тревоги рассылку
func EligibleSource(source models.AlertSource) bool {
	switch source {
	case models.SourceApp, models.SourceGeofence, models.SourceSwitch:
		return true
	default:
		return false
	}
}

type dispatchService struct {
	resolver  RecipientResolver
	repo      RecipientRepository
	push      PushGateway
	sms       SMSGateway
	relay     RelayGateway
	shortener LinkShortener
	scheduler RelayOffScheduler
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewDispatchService создает новый DispatchService
func NewDispatchService(
	resolver RecipientResolver,
	repo RecipientRepository,
	push PushGateway,
	sms SMSGateway,
	relay RelayGateway,
	shortener LinkShortener,
	scheduler RelayOffScheduler,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		resolver:  resolver,
		repo:      repo,
		push:      push,
		sms:       sms,
		relay:     relay,
		shortener: shortener,
		scheduler: scheduler,
		logger:    logger,
		cfg:       cfg,
	}
}

// Dispatch рассылает одну тревогу: push радарам, SMS контактам,
// включение реле сиренам с отложенным выключением. Частичные сбои
// копятся в счетчиках и никогда не прерывают остальных получателей;
// наружу ошибка не возвращается ни при каком исходе.
func (s *dispatchService) Dispatch(ctx context.Context, alert *models.AlertEvent) *models.DispatchOutcome {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"alert_id": alert.ID,
		"source":   alert.Source,
	})
	log.Info("Dispatching alert")

	outcome := &models.DispatchOutcome{}

	recipients, err := s.resolver.Resolve(ctx, alert)
	if err != nil {
		// Недоступное хранилище не должно провалить запись тревоги
		log.WithError(err).Error("Recipient resolution failed, nothing dispatched")
		return outcome
	}
	if recipients.Empty() {
		log.Info("No recipients for alert, dispatch skipped")
		return outcome
	}

	s.dispatchPush(ctx, alert, recipients.RadarTokens, outcome, log)
	s.dispatchSMS(ctx, alert, recipients.Contacts, outcome, log)
	s.dispatchRelay(ctx, alert, recipients.Buzzers, outcome, log)

	log.WithFields(logrus.Fields{
		"push":  outcome.Push,
		"sms":   outcome.SMS,
		"relay": outcome.Relay,
	}).Info("Alert dispatch completed")

	return outcome
}

// dispatchPush отправляет один push-запрос со всеми токенами сразу.
// Пустой список токенов - канал просто пропускается.
func (s *dispatchService) dispatchPush(ctx context.Context, alert *models.AlertEvent, tokens []string, outcome *models.DispatchOutcome, log *logrus.Entry) {
	if len(tokens) == 0 {
		return
	}

	if err := s.push.SendAlertNotification(ctx, tokens, alert); err != nil {
		log.WithError(err).Error("Push notification failed")
		outcome.Push.Attempted = len(tokens)
		outcome.Push.Failed = len(tokens)
		return
	}
	outcome.Push.Attempted = len(tokens)
	outcome.Push.Succeeded = len(tokens)
}

// dispatchSMS рассылает сообщение помощи каждому контакту независимо
func (s *dispatchService) dispatchSMS(ctx context.Context, alert *models.AlertEvent, contacts []*models.Contact, outcome *models.DispatchOutcome, log *logrus.Entry) {
	if len(contacts) == 0 {
		return
	}

	message := s.buildHelpMessage(ctx, alert)

	for _, contact := range contacts {
		if err := s.sms.SendSMS(ctx, contact.Phone, message); err != nil {
			log.WithError(err).WithField("contact", contact.Name).Warn("Failed to send help SMS")
			outcome.SMS.Failure()
			continue
		}
		outcome.SMS.Success()
	}
}

// dispatchRelay включает реле каждой сирены и для успешно включенных
// планирует отложенное выключение. Неудавшееся включение выключения
// не планирует.
func (s *dispatchService) dispatchRelay(ctx context.Context, alert *models.AlertEvent, buzzers []*models.Buzzer, outcome *models.DispatchOutcome, log *logrus.Entry) {
	for _, buzzer := range buzzers {
		if err := s.relay.SendRelayCommand(ctx, buzzer.DevicePhone, true); err != nil {
			log.WithError(err).WithField("buzzer", buzzer.Title).Warn("Failed to send relay ON command")
			outcome.Relay.Failure()
			continue
		}
		outcome.Relay.Success()

		delay := time.Duration(buzzer.DelaySeconds) * time.Second
		s.scheduler.ScheduleOff(buzzer.DevicePhone, delay, alert.ID, buzzer.ID)

		// Тревога от физической кнопки дублирует реле на само устройство кнопки
		if alert.Source == models.SourceSwitch {
			s.mirrorSwitchRelay(ctx, alert, delay, log)
		}
	}
}

// mirrorSwitchRelay включает реле на устройстве тревожной кнопки,
// породившей тревогу, с тем же циклом отложенного выключения.
// Сбой поиска или отправки логируется и пропускается.
func (s *dispatchService) mirrorSwitchRelay(ctx context.Context, alert *models.AlertEvent, delay time.Duration, log *logrus.Entry) {
	sw, err := s.repo.SwitchByAlert(ctx, alert.InstituteID, alert.PrimaryPhone)
	if err != nil {
		log.WithError(err).Warn("Could not find switch device for alert")
		return
	}
	if sw == nil || sw.DevicePhone == "" {
		log.Warn("Switch device for alert has no phone")
		return
	}

	if err := s.relay.SendRelayCommand(ctx, sw.DevicePhone, true); err != nil {
		log.WithError(err).WithField("switch", sw.Title).Warn("Failed to send relay ON to switch device")
		return
	}
	s.scheduler.ScheduleOff(sw.DevicePhone, delay, alert.ID, sw.ID)
}

// buildHelpMessage собирает SMS помощи: обращение, короткая ссылка
// на маршрут до точки тревоги, сайт и контактный номер
func (s *dispatchService) buildHelpMessage(ctx context.Context, alert *models.AlertEvent) string {
	parts := []string{
		fmt.Sprintf("%s, need your help for %s.", alert.Name, alert.AlertTypeDisplay()),
	}

	mapsLink := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s,%s",
		strconv.FormatFloat(alert.Latitude, 'f', -1, 64),
		strconv.FormatFloat(alert.Longitude, 'f', -1, 64),
	)
	parts = append(parts, s.shortener.Shorten(ctx, mapsLink))

	if s.cfg.PublicSiteURL != "" {
		parts = append(parts, s.cfg.PublicSiteURL)
	}

	parts = append(parts, fmt.Sprintf("Contact on %s.", alert.PrimaryPhone))
	return strings.Join(parts, " ")
}
