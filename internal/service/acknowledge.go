package service

import (
	"context"
	"fmt"

	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
)

// AckNotifier определяет контракт уведомления заявителя о том,
// что его тревога принята в работу
type AckNotifier interface {
	NotifyIfChanged(ctx context.Context, oldStatus models.AlertStatus, oldRemarks string, alert *models.AlertEvent)
}

type ackNotifier struct {
	sms    SMSGateway
	logger *logrus.Logger
}

// NewAckNotifier создает новый AckNotifier
func NewAckNotifier(sms SMSGateway, logger *logrus.Logger) AckNotifier {
	return &ackNotifier{
		sms:    sms,
		logger: logger,
	}
}

// NotifyIfChanged отправляет одно SMS заявителю, если при обновлении
// тревоги изменился статус или комментарий. При создании тревоги не
// вызывается (старого состояния еще нет). Сбой отправки логируется
// и проглатывается, вызвавшую обновление сторону он не касается.
func (n *ackNotifier) NotifyIfChanged(ctx context.Context, oldStatus models.AlertStatus, oldRemarks string, alert *models.AlertEvent) {
	log := n.logger.WithFields(logrus.Fields{
		"service":  "acknowledge",
		"alert_id": alert.ID,
	})

	statusChanged := oldStatus != alert.Status
	remarksChanged := oldRemarks != alert.Remarks
	if !statusChanged && !remarksChanged {
		log.Debug("Neither status nor remarks changed, no acknowledgement SMS")
		return
	}

	message := fmt.Sprintf("%s accepted help for your %s", alert.InstituteDisplay(), alert.AlertTypeDisplay())

	if err := n.sms.SendSMS(ctx, alert.PrimaryPhone, message); err != nil {
		log.WithError(err).Warn("Failed to send acknowledgement SMS")
		return
	}
	log.WithField("phone", alert.PrimaryPhone).Info("Acknowledgement SMS sent")
}
