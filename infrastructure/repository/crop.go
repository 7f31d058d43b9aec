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
	cropsTable = "crops c"
)

type CropRepository interface {
	List() ([]*domain.Crop, error)
	GetByID(id string) (*domain.Crop, error)
	GetByName(name string) (*domain.Crop, error)
	Create(crop *domain.Crop) error
}

type cropRepository struct {
	conn *postgres.Connection
}

func NewCropRepository(conn *postgres.Connection) CropRepository {
	return &cropRepository{
		conn: conn,
	}
}

func (r *cropRepository) List() ([]*domain.Crop, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.unit, c.grow_duration_days, c.image_url, c.created_at, c.updated_at").
		From(cropsTable).
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

	crops := make([]*domain.Crop, 0)
	for rows.Next() {
		crop, err := r.scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning crop: %w", err)
		}
		crops = append(crops, crop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return crops, nil
}

func (r *cropRepository) GetByID(id string) (*domain.Crop, error) {
	return r.getByColumn("c.id", id)
}

func (r *cropRepository) GetByName(name string) (*domain.Crop, error) {
	return r.getByColumn("c.name", name)
}

func (r *cropRepository) getByColumn(column, value string) (*domain.Crop, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.unit, c.grow_duration_days, c.image_url, c.created_at, c.updated_at").
		From(cropsTable).
		Where(squirrel.Eq{column: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	crop := &domain.Crop{}
	err = row.Scan(
		&crop.ID,
		&crop.Name,
		&crop.Unit,
		&crop.GrowDurationDays,
		&crop.ImageURL,
		&crop.CreatedAt,
		&crop.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning crop: %w", err)
	}

	return crop, nil
}

func (r *cropRepository) Create(crop *domain.Crop) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("crops").
		Columns("id", "name", "unit", "grow_duration_days", "image_url").
		Values(
			crop.ID,
			crop.Name,
			crop.Unit,
			crop.GrowDurationDays,
			crop.ImageURL,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *cropRepository) scanCrop(rows *sql.Rows) (*domain.Crop, error) {
	crop := &domain.Crop{}

	err := rows.Scan(
		&crop.ID,
		&crop.Name,
		&crop.Unit,
		&crop.GrowDurationDays,
		&crop.ImageURL,
		&crop.CreatedAt,
		&crop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return crop, nil
}
