package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/geometry"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/sirupsen/logrus"
)

// RecipientRepository определяет контракт чтения сущностей-получателей,
// принадлежащих институту. Реализуется слоем repository.
type RecipientRepository interface {
	GeofencesByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Geofence, error)
	RadarsByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Radar, error)
	ContactsByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Contact, error)
	BuzzersByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Buzzer, error)
	SwitchByAlert(ctx context.Context, instituteID uuid.UUID, primaryPhone string) (*models.AlertSwitch, error)
}

// RecipientResolver определяет контракт подбора получателей тревоги
type RecipientResolver interface {
	Resolve(ctx context.Context, alert *models.AlertEvent) (*models.RecipientSet, error)
}

type recipientResolver struct {
	repo   RecipientRepository
	logger *logrus.Logger
}

// NewRecipientResolver создает новый RecipientResolver
func NewRecipientResolver(repo RecipientRepository, logger *logrus.Logger) RecipientResolver {
	return &recipientResolver{
		repo:   repo,
		logger: logger,
	}
}

// Resolve подбирает радары, контакты и сирены для тревоги.
// Ошибка загрузки геозон фатальна для подбора; ошибка загрузки
// любого из типов получателей деградирует до пустого набора этого
// типа, остальные продолжают обрабатываться.
func (r *recipientResolver) Resolve(ctx context.Context, alert *models.AlertEvent) (*models.RecipientSet, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":  "resolver",
		"alert_id": alert.ID,
	})

	geofences, err := r.repo.GeofencesByInstitute(ctx, alert.InstituteID)
	if err != nil {
		return nil, err
	}

	matched := make(map[uuid.UUID]struct{})
	for _, g := range geofences {
		if len(g.Boundary) == 0 {
			continue
		}
		if geometry.ContainsPoint(alert.Latitude, alert.Longitude, g.Boundary) {
			matched[g.ID] = struct{}{}
			log.WithField("geofence", g.Title).Info("Alert location matches geofence")
		}
	}

	// Частый случай "здесь нет геозон" - это не ошибка
	if len(matched) == 0 {
		log.Info("No matching geofences found for alert location")
		return &models.RecipientSet{}, nil
	}

	set := &models.RecipientSet{
		RadarTokens: r.resolveRadarTokens(ctx, alert, matched, log),
		Contacts:    r.resolveContacts(ctx, alert, matched, log),
		Buzzers:     r.resolveBuzzers(ctx, alert, matched, log),
	}

	log.WithFields(logrus.Fields{
		"radar_tokens": len(set.RadarTokens),
		"contacts":     len(set.Contacts),
		"buzzers":      len(set.Buzzers),
	}).Info("Recipients resolved")

	return set, nil
}

// resolveRadarTokens возвращает токены радаров, чьи геозоны содержат точку.
// Радары без токена пропускаются, токены дедуплицируются.
func (r *recipientResolver) resolveRadarTokens(ctx context.Context, alert *models.AlertEvent, matched map[uuid.UUID]struct{}, log *logrus.Entry) []string {
	radars, err := r.repo.RadarsByInstitute(ctx, alert.InstituteID)
	if err != nil {
		log.WithError(err).Error("Failed to load radars, skipping push channel")
		return nil
	}

	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(radars))
	for _, radar := range radars {
		if radar.Token == "" || !intersects(radar.RegionIDs, matched) {
			continue
		}
		if _, dup := seen[radar.Token]; dup {
			continue
		}
		seen[radar.Token] = struct{}{}
		tokens = append(tokens, radar.Token)
	}
	return tokens
}

// resolveContacts возвращает SMS-контакты, подходящие по областям
// действия геозон и типов тревог
func (r *recipientResolver) resolveContacts(ctx context.Context, alert *models.AlertEvent, matched map[uuid.UUID]struct{}, log *logrus.Entry) []*models.Contact {
	contacts, err := r.repo.ContactsByInstitute(ctx, alert.InstituteID)
	if err != nil {
		log.WithError(err).Error("Failed to load contacts, skipping sms channel")
		return nil
	}

	seen := make(map[uuid.UUID]struct{})
	result := make([]*models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if !c.SMSEnabled {
			continue
		}
		if !c.Regions.Matches(matched) || !c.Types.Matches(alert.AlertTypeID) {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		result = append(result, c)
	}
	return result
}

// resolveBuzzers возвращает сирены, чьи геозоны содержат точку.
// Глобальных сирен не бывает.
func (r *recipientResolver) resolveBuzzers(ctx context.Context, alert *models.AlertEvent, matched map[uuid.UUID]struct{}, log *logrus.Entry) []*models.Buzzer {
	buzzers, err := r.repo.BuzzersByInstitute(ctx, alert.InstituteID)
	if err != nil {
		log.WithError(err).Error("Failed to load buzzers, skipping relay channel")
		return nil
	}

	seen := make(map[uuid.UUID]struct{})
	result := make([]*models.Buzzer, 0, len(buzzers))
	for _, b := range buzzers {
		if !intersects(b.RegionIDs, matched) {
			continue
		}
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}
		result = append(result, b)
	}
	return result
}

func intersects(ids []uuid.UUID, matched map[uuid.UUID]struct{}) bool {
	for _, id := range ids {
		if _, ok := matched[id]; ok {
			return true
		}
	}
	return false
}
