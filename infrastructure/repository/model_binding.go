package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bluzora/crop-price-api/infrastructure/database/postgres"
	"github.com/bluzora/crop-price-api/internal/domain"
)

const (
	modelBindingsTable = "model_bindings mb"
)

type ModelBindingRepository interface {
	// ListEnabled returns the crops that opted into forecasting, joined
	// with their crop name. Crops without a binding are not forecastable
	// and are simply absent here.
	ListEnabled() ([]*domain.ModelBinding, error)
	GetByCropID(cropID string) (*domain.ModelBinding, error)
	SaveOrUpdate(binding *domain.ModelBinding) error
}

type modelBindingRepository struct {
	conn *postgres.Connection
}

func NewModelBindingRepository(conn *postgres.Connection) ModelBindingRepository {
	return &modelBindingRepository{
		conn: conn,
	}
}

func (r *modelBindingRepository) ListEnabled() ([]*domain.ModelBinding, error) {
	query, args, err := squirrel.
		Select("mb.crop_id, c.name, mb.artifact_path, mb.enabled, mb.created_at, mb.updated_at").
		From(modelBindingsTable).
		Join("crops c ON c.id = mb.crop_id").
		Where(squirrel.Eq{"mb.enabled": true}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	bindings := make([]*domain.ModelBinding, 0)
	for rows.Next() {
		binding := &domain.ModelBinding{}
		err := rows.Scan(
			&binding.CropID,
			&binding.CropName,
			&binding.ArtifactPath,
			&binding.Enabled,
			&binding.CreatedAt,
			&binding.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning model binding: %w", err)
		}
		bindings = append(bindings, binding)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return bindings, nil
}

func (r *modelBindingRepository) GetByCropID(cropID string) (*domain.ModelBinding, error) {
	query, args, err := squirrel.
		Select("mb.crop_id, c.name, mb.artifact_path, mb.enabled, mb.created_at, mb.updated_at").
		From(modelBindingsTable).
		Join("crops c ON c.id = mb.crop_id").
		Where(squirrel.Eq{"mb.crop_id": cropID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	binding := &domain.ModelBinding{}
	err = row.Scan(
		&binding.CropID,
		&binding.CropName,
		&binding.ArtifactPath,
		&binding.Enabled,
		&binding.CreatedAt,
		&binding.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning model binding: %w", err)
	}

	return binding, nil
}

func (r *modelBindingRepository) SaveOrUpdate(binding *domain.ModelBinding) error {
	query := squirrel.StatementBuilder.
		Insert("model_bindings").
		Columns("crop_id", "artifact_path", "enabled").
		Values(
			binding.CropID,
			binding.ArtifactPath,
			binding.Enabled,
		).
		Suffix(`
			ON CONFLICT (crop_id) DO UPDATE SET
				artifact_path = EXCLUDED.artifact_path,
				enabled = EXCLUDED.enabled,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
