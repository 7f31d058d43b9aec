package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bluzora/crop-price-api/infrastructure/database/postgres"
	"github.com/bluzora/crop-price-api/internal/domain"
)

const (
	cropPricesTable = "crop_prices cp"
)

type CropPriceRepository interface {
	// GetSeriesByCropID returns the full price history of a crop ordered
	// ascending by date.
	GetSeriesByCropID(cropID string) (domain.CropSeries, error)
	GetByDateRange(cropID string, startDate, endDate time.Time) (domain.CropSeries, error)
	// LatestTwo returns the newest point and the newest point of an earlier
	// date, in that order. Missing entries come back as nil.
	LatestTwo(cropID string) (*domain.PricePoint, *domain.PricePoint, error)
	SaveOrUpdate(cropID string, point *domain.PricePoint, fileName *string) error
}

type cropPriceRepository struct {
	conn *postgres.Connection
}

func NewCropPriceRepository(conn *postgres.Connection) CropPriceRepository {
	return &cropPriceRepository{
		conn: conn,
	}
}

func (r *cropPriceRepository) GetSeriesByCropID(cropID string) (domain.CropSeries, error) {
	builder := squirrel.
		Select("cp.date, cp.average_price, cp.min_price, cp.max_price").
		From(cropPricesTable).
		Where(squirrel.Eq{"cp.crop_id": cropID}).
		OrderBy("cp.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.querySeries(builder)
}

func (r *cropPriceRepository) GetByDateRange(cropID string, startDate, endDate time.Time) (domain.CropSeries, error) {
	builder := squirrel.
		Select("cp.date, cp.average_price, cp.min_price, cp.max_price").
		From(cropPricesTable).
		Where(squirrel.Eq{"cp.crop_id": cropID}).
		Where(squirrel.GtOrEq{"cp.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"cp.date": endDate.Format(time.DateOnly)}).
		OrderBy("cp.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.querySeries(builder)
}

func (r *cropPriceRepository) querySeries(builder squirrel.SelectBuilder) (domain.CropSeries, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	series := make(domain.CropSeries, 0)
	for rows.Next() {
		point, err := r.scanPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning price point: %w", err)
		}
		series = append(series, *point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return series, nil
}

func (r *cropPriceRepository) LatestTwo(cropID string) (*domain.PricePoint, *domain.PricePoint, error) {
	query, args, err := squirrel.
		Select("cp.date, cp.average_price, cp.min_price, cp.max_price").
		From(cropPricesTable).
		Where(squirrel.Eq{"cp.crop_id": cropID}).
		OrderBy("cp.date DESC").
		Limit(2).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.PricePoint, 0, 2)
	for rows.Next() {
		point, err := r.scanPoint(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning price point: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating rows: %w", err)
	}

	switch len(points) {
	case 0:
		return nil, nil, nil
	case 1:
		return points[0], nil, nil
	default:
		return points[0], points[1], nil
	}
}

func (r *cropPriceRepository) SaveOrUpdate(cropID string, point *domain.PricePoint, fileName *string) error {
	query := squirrel.StatementBuilder.
		Insert("crop_prices").
		Columns("crop_id", "date", "average_price", "min_price", "max_price", "file_name").
		Values(
			cropID,
			point.Date.Format(time.DateOnly),
			point.AveragePrice,
			point.MinPrice,
			point.MaxPrice,
			fileName,
		).
		Suffix(`
			ON CONFLICT (crop_id, date) DO UPDATE SET
				average_price = EXCLUDED.average_price,
				min_price = EXCLUDED.min_price,
				max_price = EXCLUDED.max_price,
				file_name = EXCLUDED.file_name,
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

func (r *cropPriceRepository) scanPoint(rows *sql.Rows) (*domain.PricePoint, error) {
	point := &domain.PricePoint{}

	err := rows.Scan(
		&point.Date,
		&point.AveragePrice,
		&point.MinPrice,
		&point.MaxPrice,
	)
	if err != nil {
		return nil, err
	}

	return point, nil
}
