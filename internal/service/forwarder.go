package service

import (
	"context"
	"strconv"

	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/ravipangali7/luna-alert-engine/internal/gateway"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
)

// IntakeGateway - сторонний приёмник экстренных заявок
type IntakeGateway interface {
	SubmitIncident(ctx context.Context, payload gateway.IncidentPayload) error
}

// Forwarder определяет контракт условной пересылки тревоги
// во внешнюю экстренную систему
type Forwarder interface {
	ForwardIfEligible(ctx context.Context, alert *models.AlertEvent)
}

type forwarder struct {
	intake    IntakeGateway
	institute string
	service   string
	citizen   string
	logger    *logrus.Logger
}

// NewForwarder создает новый Forwarder
func NewForwarder(intake IntakeGateway, cfg *config.Config, logger *logrus.Logger) Forwarder {
	return &forwarder{
		intake:    intake,
		institute: cfg.ForwardInstitute,
		service:   cfg.IntakeService,
		citizen:   cfg.IntakeCitizen,
		logger:    logger,
	}
}

// ForwardIfEligible пересылает копию тревоги во внешний приёмник,
// если институт тревоги совпадает с настроенным. Несовпадение - это
// молчаливый пропуск, любой сбой отправки - нефатальный и логируется.
func (f *forwarder) ForwardIfEligible(ctx context.Context, alert *models.AlertEvent) {
	log := f.logger.WithFields(logrus.Fields{
		"service":  "forwarder",
		"alert_id": alert.ID,
	})

	if f.institute == "" || alert.InstituteName != f.institute {
		log.Debug("Alert institute not eligible for external forwarding")
		return
	}

	loc := gateway.IncidentLocation{
		Lat: strconv.FormatFloat(alert.Latitude, 'f', 8, 64),
		Lng: strconv.FormatFloat(alert.Longitude, 'f', 8, 64),
	}
	payload := gateway.IncidentPayload{
		Location:       loc,
		Service:        f.service,
		ContactNo:      alert.PrimaryPhone,
		Message:        alert.Name,
		Citizen:        f.citizen,
		DeviceLocation: loc,
	}

	if err := f.intake.SubmitIncident(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to forward alert to external intake")
		return
	}
	log.Info("Alert forwarded to external intake")
}
