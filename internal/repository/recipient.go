package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/ravipangali7/luna-alert-engine/internal/service"
	"github.com/redis/go-redis/v9"
)

// geofenceCacheTTL - срок жизни снимка геозон института в Redis.
// Геозоны меняются редко, а читаются на каждой тревоге.
const geofenceCacheTTL = 5 * time.Minute

type RecipientRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRecipientRepository(db *pgxpool.Pool, redisClient *redis.Client) service.RecipientRepository {
	return &RecipientRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// GeofencesByInstitute возвращает геозоны института, сначала пробуя
// снимок в Redis. Промах или сбой кэша прозрачно уходит в бд.
func (r *RecipientRepository) GeofencesByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Geofence, error) {
	if cached, err := r.getGeofencesFromCache(ctx, instituteID); err == nil && cached != nil {
		return cached, nil
	}

	query := `
		SELECT id, title, institute_id, boundary
		FROM geofences
		WHERE institute_id = $1;
	`
	rows, err := r.db.Query(ctx, query, instituteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get geofences by institute: %w", err)
	}
	defer rows.Close()

	geofences := make([]*models.Geofence, 0)
	for rows.Next() {
		g := &models.Geofence{}
		if err := rows.Scan(&g.ID, &g.Title, &g.InstituteID, &g.Boundary); err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		geofences = append(geofences, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error geofence iteration: %w", err)
	}

	// Кэш - оптимизация, его сбой не влияет на результат
	_ = r.setGeofencesCache(ctx, instituteID, geofences)

	return geofences, nil
}

// RadarsByInstitute возвращает радары института вместе с их геозонами
func (r *RecipientRepository) RadarsByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Radar, error) {
	query := `
		SELECT
			r.id,
			r.title,
			r.institute_id,
			r.token,
			COALESCE(array_agg(rg.geofence_id) FILTER (WHERE rg.geofence_id IS NOT NULL), '{}')
		FROM radars r
		LEFT JOIN radar_geofences rg ON rg.radar_id = r.id
		WHERE r.institute_id = $1
		GROUP BY r.id;
	`
	rows, err := r.db.Query(ctx, query, instituteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get radars by institute: %w", err)
	}
	defer rows.Close()

	radars := make([]*models.Radar, 0)
	for rows.Next() {
		radar := &models.Radar{}
		if err := rows.Scan(&radar.ID, &radar.Title, &radar.InstituteID, &radar.Token, &radar.RegionIDs); err != nil {
			return nil, fmt.Errorf("failed to scan radar row: %w", err)
		}
		radars = append(radars, radar)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error radar iteration: %w", err)
	}
	return radars, nil
}

// ContactsByInstitute возвращает контакты института с областями
// действия. Контакт без привязок к геозонам или типам считается
// глобальным по соответствующей области.
func (r *RecipientRepository) ContactsByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Contact, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.phone,
			c.institute_id,
			c.is_sms,
			c.is_call,
			COALESCE(array_agg(DISTINCT cg.geofence_id) FILTER (WHERE cg.geofence_id IS NOT NULL), '{}'),
			COALESCE(array_agg(DISTINCT ct.alert_type_id) FILTER (WHERE ct.alert_type_id IS NOT NULL), '{}')
		FROM contacts c
		LEFT JOIN contact_geofences cg ON cg.contact_id = c.id
		LEFT JOIN contact_alert_types ct ON ct.contact_id = c.id
		WHERE c.institute_id = $1
		GROUP BY c.id;
	`
	rows, err := r.db.Query(ctx, query, instituteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts by institute: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		contact := &models.Contact{}
		var regionIDs, typeIDs []uuid.UUID
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Phone,
			&contact.InstituteID,
			&contact.SMSEnabled,
			&contact.CallEnabled,
			&regionIDs,
			&typeIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}

		if len(regionIDs) == 0 {
			contact.Regions = models.GlobalRegions()
		} else {
			contact.Regions = models.SpecificRegions(regionIDs)
		}
		if len(typeIDs) == 0 {
			contact.Types = models.GlobalTypes()
		} else {
			contact.Types = models.SpecificTypes(typeIDs)
		}

		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error contact iteration: %w", err)
	}
	return contacts, nil
}

// BuzzersByInstitute возвращает сирены института вместе с их геозонами
func (r *RecipientRepository) BuzzersByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*models.Buzzer, error) {
	query := `
		SELECT
			b.id,
			b.title,
			b.institute_id,
			b.device_phone,
			b.delay_seconds,
			COALESCE(array_agg(bg.geofence_id) FILTER (WHERE bg.geofence_id IS NOT NULL), '{}')
		FROM buzzers b
		LEFT JOIN buzzer_geofences bg ON bg.buzzer_id = b.id
		WHERE b.institute_id = $1
		GROUP BY b.id;
	`
	rows, err := r.db.Query(ctx, query, instituteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get buzzers by institute: %w", err)
	}
	defer rows.Close()

	buzzers := make([]*models.Buzzer, 0)
	for rows.Next() {
		buzzer := &models.Buzzer{}
		err := rows.Scan(
			&buzzer.ID,
			&buzzer.Title,
			&buzzer.InstituteID,
			&buzzer.DevicePhone,
			&buzzer.DelaySeconds,
			&buzzer.RegionIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan buzzer row: %w", err)
		}
		buzzers = append(buzzers, buzzer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error buzzer iteration: %w", err)
	}
	return buzzers, nil
}

// SwitchByAlert находит тревожную кнопку института по номеру
// телефона, с которого пришла тревога
func (r *RecipientRepository) SwitchByAlert(ctx context.Context, instituteID uuid.UUID, primaryPhone string) (*models.AlertSwitch, error) {
	sw := &models.AlertSwitch{}
	query := `
		SELECT
			id, title, institute_id, device_phone,
			latitude, longitude, trigger_radius,
			primary_phone, secondary_phone
		FROM switches
		WHERE institute_id = $1 AND primary_phone = $2
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, instituteID, primaryPhone).Scan(
		&sw.ID,
		&sw.Title,
		&sw.InstituteID,
		&sw.DevicePhone,
		&sw.Latitude,
		&sw.Longitude,
		&sw.TriggerRadius,
		&sw.PrimaryPhone,
		&sw.SecondaryPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("switch for phone %s not found", primaryPhone)
		}
		return nil, fmt.Errorf("failed to get switch by alert: %w", err)
	}
	return sw, nil
}

// getGeofencesFromCache пытается получить снимок геозон из Redis
func (r *RecipientRepository) getGeofencesFromCache(ctx context.Context, instituteID uuid.UUID) ([]*models.Geofence, error) {
	key := fmt.Sprintf("geofences:%s", instituteID.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geofences from cache: %w", err)
	}

	geofences := make([]*models.Geofence, 0)
	if err := json.Unmarshal(val, &geofences); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geofences from cache: %w", err)
	}
	return geofences, nil
}

// setGeofencesCache сохраняет снимок геозон института в Redis
func (r *RecipientRepository) setGeofencesCache(ctx context.Context, instituteID uuid.UUID, geofences []*models.Geofence) error {
	key := fmt.Sprintf("geofences:%s", instituteID.String())
	val, err := json.Marshal(geofences)
	if err != nil {
		return fmt.Errorf("failed to marshal geofences for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, geofenceCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set geofences in cache: %w", err)
	}
	return nil
}
