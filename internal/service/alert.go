package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт хранилища тревог
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *models.AlertEvent) error
	GetAlertByID(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error)
	UpdateAlert(ctx context.Context, alert *models.AlertEvent) error
	ListAlerts(ctx context.Context, page, pageSize int) ([]*models.AlertEvent, error)
}

// AlertService определяет контракт записи тревог. После успешной
// записи сервис сам извещает заинтересованные компоненты: рассылку
// на создании, подтверждение и внешнюю пересылку - явная замена
// неявных хуков жизненного цикла ORM.
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.AlertEvent) error
	UpdateAlert(ctx context.Context, id uuid.UUID, status models.AlertStatus, remarks string) (*models.AlertEvent, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error)
	ListAlerts(ctx context.Context, page, pageSize int) ([]*models.AlertEvent, error)
}

type alertService struct {
	repo       AlertRepository
	dispatcher DispatchService
	ack        AckNotifier
	forwarder  Forwarder
	logger     *logrus.Logger
}

// NewAlertService создает новый AlertService
func NewAlertService(repo AlertRepository, dispatcher DispatchService, ack AckNotifier, forwarder Forwarder, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:       repo,
		dispatcher: dispatcher,
		ack:        ack,
		forwarder:  forwarder,
		logger:     logger,
	}
}

// CreateAlert сохраняет новую тревогу и запускает рассылку.
// Тревога сохраняется независимо от исхода рассылки: сбои каналов
// видны только в логах и счетчиках, но не заявителю.
func (s *alertService) CreateAlert(ctx context.Context, alert *models.AlertEvent) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
		"source":  alert.Source,
	})
	log.Info("Creating a new alert")

	if alert.Status == "" {
		alert.Status = models.StatusPending
	}
	if alert.Datetime.IsZero() {
		alert.Datetime = time.Now().UTC()
	}

	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	log = log.WithField("alert_id", alert.ID)
	log.Info("Alert created successfully")

	// Рассылка и пересылка синхронны, но их сбои не достигают вызывающего
	if EligibleSource(alert.Source) {
		s.dispatcher.Dispatch(ctx, alert)
	} else {
		log.Debug("Alert source not eligible for dispatch")
	}
	s.forwarder.ForwardIfEligible(ctx, alert)

	return nil
}

// UpdateAlert меняет статус и комментарий тревоги и, если что-то из
// них действительно изменилось, извещает заявителя
func (s *alertService) UpdateAlert(ctx context.Context, id uuid.UUID, status models.AlertStatus, remarks string) (*models.AlertEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": id,
	})
	log.Info("Updating alert")

	existing, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent alert")
		return nil, fmt.Errorf("service: alert with id %s not found for update: %w", id, err)
	}

	oldStatus := existing.Status
	oldRemarks := existing.Remarks
	existing.Status = status
	existing.Remarks = remarks

	if err := s.repo.UpdateAlert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}
	log.Info("Alert updated successfully")

	// Несет старые значения полей, чтобы уведомитель сам решил,
	// было ли изменение
	s.ack.NotifyIfChanged(ctx, oldStatus, oldRemarks, existing)

	return existing, nil
}

// GetAlert возвращает тревогу по ID
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error) {
	alert, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return alert, nil
}

// ListAlerts возвращает список тревог с пагинацией
func (s *alertService) ListAlerts(ctx context.Context, page, pageSize int) ([]*models.AlertEvent, error) {
	alerts, err := s.repo.ListAlerts(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
