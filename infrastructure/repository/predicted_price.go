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
	predictedPricesTable = "predicted_prices pp"
)

type PredictedPriceRepository interface {
	GetByCropID(cropID string) ([]domain.ForecastPoint, error)
	GetByDateRange(cropID string, startDate, endDate time.Time) ([]domain.ForecastPoint, error)
	// SaveOrUpdate upserts one forecast point inside the given transaction.
	// The batch forecast run persists every crop through one transaction so
	// a failed write rolls the whole run back.
	SaveOrUpdate(tx *sql.Tx, cropID string, point *domain.ForecastPoint) error
}

type predictedPriceRepository struct {
	conn *postgres.Connection
}

func NewPredictedPriceRepository(conn *postgres.Connection) PredictedPriceRepository {
	return &predictedPriceRepository{
		conn: conn,
	}
}

func (r *predictedPriceRepository) GetByCropID(cropID string) ([]domain.ForecastPoint, error) {
	builder := squirrel.
		Select("pp.predicted_date, pp.predicted_price").
		From(predictedPricesTable).
		Where(squirrel.Eq{"pp.crop_id": cropID}).
		OrderBy("pp.predicted_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryPoints(builder)
}

func (r *predictedPriceRepository) GetByDateRange(cropID string, startDate, endDate time.Time) ([]domain.ForecastPoint, error) {
	builder := squirrel.
		Select("pp.predicted_date, pp.predicted_price").
		From(predictedPricesTable).
		Where(squirrel.Eq{"pp.crop_id": cropID}).
		Where(squirrel.GtOrEq{"pp.predicted_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"pp.predicted_date": endDate.Format(time.DateOnly)}).
		OrderBy("pp.predicted_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryPoints(builder)
}

func (r *predictedPriceRepository) queryPoints(builder squirrel.SelectBuilder) ([]domain.ForecastPoint, error) {
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

	points := make([]domain.ForecastPoint, 0)
	for rows.Next() {
		point := domain.ForecastPoint{}
		if err := rows.Scan(&point.Date, &point.PredictedPrice); err != nil {
			return nil, fmt.Errorf("scanning forecast point: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return points, nil
}

func (r *predictedPriceRepository) SaveOrUpdate(tx *sql.Tx, cropID string, point *domain.ForecastPoint) error {
	query := squirrel.StatementBuilder.
		Insert("predicted_prices").
		Columns("crop_id", "predicted_date", "predicted_price").
		Values(
			cropID,
			point.Date.Format(time.DateOnly),
			point.PredictedPrice,
		).
		Suffix(`
			ON CONFLICT (crop_id, predicted_date) DO UPDATE SET
				predicted_price = EXCLUDED.predicted_price,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = tx.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
