package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/ravipangali7/luna-alert-engine/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

// CreateAlert создает новую запись о тревоге в бд.
// Имена института и типа подтягиваются сразу, чтобы сообщения
// каналов доставки могли строиться без повторных запросов.
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.AlertEvent) error {
	query := `
		INSERT INTO alert_events (
			source, name, primary_phone, secondary_phone, alert_type_id,
			latitude, longitude, datetime, image, remarks, status, institute_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING
			id,
			created_at,
			updated_at,
			COALESCE((SELECT name FROM institutes WHERE id = institute_id), ''),
			COALESCE((SELECT name FROM alert_types WHERE id = alert_type_id), '');
	`
	err := r.db.QueryRow(ctx, query,
		alert.Source,
		alert.Name,
		alert.PrimaryPhone,
		alert.SecondaryPhone,
		alert.AlertTypeID,
		alert.Latitude,
		alert.Longitude,
		alert.Datetime,
		alert.Image,
		alert.Remarks,
		alert.Status,
		alert.InstituteID,
	).Scan(
		&alert.ID,
		&alert.CreatedAt,
		&alert.UpdatedAt,
		&alert.InstituteName,
		&alert.AlertTypeName,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAlertByID возвращает тревогу по ее UUID
func (r *AlertRepository) GetAlertByID(ctx context.Context, id uuid.UUID) (*models.AlertEvent, error) {
	alert := &models.AlertEvent{}
	query := `
		SELECT
			a.id,
			a.source,
			a.name,
			a.primary_phone,
			a.secondary_phone,
			a.alert_type_id,
			COALESCE(t.name, '') AS alert_type_name,
			a.latitude,
			a.longitude,
			a.datetime,
			a.image,
			a.remarks,
			a.status,
			a.institute_id,
			COALESCE(i.name, '') AS institute_name,
			a.created_at,
			a.updated_at
		FROM alert_events a
		LEFT JOIN institutes i ON i.id = a.institute_id
		LEFT JOIN alert_types t ON t.id = a.alert_type_id
		WHERE a.id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.Source,
		&alert.Name,
		&alert.PrimaryPhone,
		&alert.SecondaryPhone,
		&alert.AlertTypeID,
		&alert.AlertTypeName,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Datetime,
		&alert.Image,
		&alert.Remarks,
		&alert.Status,
		&alert.InstituteID,
		&alert.InstituteName,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// UpdateAlert сохраняет статус и комментарий тревоги
func (r *AlertRepository) UpdateAlert(ctx context.Context, alert *models.AlertEvent) error {
	query := `
		UPDATE alert_events SET
			status = $1,
			remarks = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.Status,
		alert.Remarks,
		alert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for update", alert.ID)
	}
	return nil
}

// ListAlerts возвращает список тревог с пагинацией, новые первыми
func (r *AlertRepository) ListAlerts(ctx context.Context, page, pageSize int) ([]*models.AlertEvent, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			a.id,
			a.source,
			a.name,
			a.primary_phone,
			a.secondary_phone,
			a.alert_type_id,
			COALESCE(t.name, '') AS alert_type_name,
			a.latitude,
			a.longitude,
			a.datetime,
			a.image,
			a.remarks,
			a.status,
			a.institute_id,
			COALESCE(i.name, '') AS institute_name,
			a.created_at,
			a.updated_at
		FROM alert_events a
		LEFT JOIN institutes i ON i.id = a.institute_id
		LEFT JOIN alert_types t ON t.id = a.alert_type_id
		ORDER BY a.datetime DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.AlertEvent, 0)
	for rows.Next() {
		alert := &models.AlertEvent{}
		err := rows.Scan(
			&alert.ID,
			&alert.Source,
			&alert.Name,
			&alert.PrimaryPhone,
			&alert.SecondaryPhone,
			&alert.AlertTypeID,
			&alert.AlertTypeName,
			&alert.Latitude,
			&alert.Longitude,
			&alert.Datetime,
			&alert.Image,
			&alert.Remarks,
			&alert.Status,
			&alert.InstituteID,
			&alert.InstituteName,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}
