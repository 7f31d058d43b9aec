package analyzing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/domain"
	"github.com/bluzora/crop-price-api/internal/usecases/forecasting"
	"github.com/bluzora/crop-price-api/pkg/utils"
)

// ErrCropNotFound is returned when the requested crop does not exist.
var ErrCropNotFound = errors.New("crop not found")

// Analyzer is the reporting surface of the service: merged series,
// summaries and forecast accuracy for one crop.
type Analyzer interface {
	GetPriceReport(cropID string, start, end time.Time) (*domain.PriceReport, error)
	GetPeriodSummary(cropID string, start, end time.Time) (*domain.PeriodSummary, error)
	GetForecastAccuracy(cropID string) (*domain.ForecastAccuracy, error)
}

type Service struct {
	cropRepo      repository.CropRepository
	priceRepo     repository.CropPriceRepository
	predictedRepo repository.PredictedPriceRepository
}

func NewService(
	cropRepo repository.CropRepository,
	priceRepo repository.CropPriceRepository,
	predictedRepo repository.PredictedPriceRepository,
) Analyzer {
	return &Service{
		cropRepo:      cropRepo,
		priceRepo:     priceRepo,
		predictedRepo: predictedRepo,
	}
}

// GetPriceReport merges the historical and forecast series of one crop
// inside [start, end] and derives the window summary.
func (s *Service) GetPriceReport(cropID string, start, end time.Time) (*domain.PriceReport, error) {
	crop, err := s.cropRepo.GetByID(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching crop")
	}
	if crop == nil {
		return nil, ErrCropNotFound
	}

	historical, err := s.priceRepo.GetByDateRange(cropID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "fetching historical prices")
	}

	predicted, err := s.predictedRepo.GetByDateRange(cropID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "fetching predicted prices")
	}

	return BuildPriceReport(historical, predicted, start, end), nil
}

// GetPeriodSummary returns the raw daily and predicted prices of the
// window plus the derived summary, in the shape the frontend charts
// consume.
func (s *Service) GetPeriodSummary(cropID string, start, end time.Time) (*domain.PeriodSummary, error) {
	crop, err := s.cropRepo.GetByID(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching crop")
	}
	if crop == nil {
		return nil, ErrCropNotFound
	}

	historical, err := s.priceRepo.GetByDateRange(cropID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "fetching historical prices")
	}

	predicted, err := s.predictedRepo.GetByDateRange(cropID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "fetching predicted prices")
	}

	daily := make([]domain.DailyPrice, len(historical))
	for i, p := range historical {
		daily[i] = domain.DailyPrice{
			Date:         utils.FormatDate(p.Date),
			MinPrice:     p.MinPrice,
			MaxPrice:     p.MaxPrice,
			AveragePrice: p.AveragePrice,
		}
	}

	predictedOut := make([]domain.PredictedPrice, len(predicted))
	for i, p := range predicted {
		predictedOut[i] = domain.PredictedPrice{
			Date:           utils.FormatDate(p.Date),
			PredictedPrice: p.PredictedPrice,
		}
	}

	return &domain.PeriodSummary{
		Name:            crop.Name,
		Unit:            crop.Unit,
		DailyPrices:     daily,
		PredictedPrices: predictedOut,
		Summary:         Summarize(historical, predicted, start, end),
	}, nil
}

// GetForecastAccuracy evaluates stored predictions against realized prices
// on overlapping dates. Too few overlapping days is not an error: the
// result carries zero metrics and the matched count so the caller can
// render "no data".
func (s *Service) GetForecastAccuracy(cropID string) (*domain.ForecastAccuracy, error) {
	crop, err := s.cropRepo.GetByID(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching crop")
	}
	if crop == nil {
		return nil, ErrCropNotFound
	}

	historical, err := s.priceRepo.GetSeriesByCropID(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching historical prices")
	}

	predicted, err := s.predictedRepo.GetByCropID(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching predicted prices")
	}

	priceByDate := make(map[string]float64, len(historical))
	for _, p := range historical {
		priceByDate[utils.FormatDate(p.Date)] = p.AveragePrice
	}

	var actual, predictedValues []float64
	for _, p := range predicted {
		if realized, ok := priceByDate[utils.FormatDate(p.Date)]; ok {
			actual = append(actual, realized)
			predictedValues = append(predictedValues, p.PredictedPrice)
		}
	}

	accuracy := &domain.ForecastAccuracy{
		CropID:      crop.ID,
		CropName:    crop.Name,
		MatchedDays: len(actual),
	}

	if len(actual) == 0 {
		return accuracy, nil
	}

	metrics, err := forecasting.Evaluate(actual, predictedValues)
	if err != nil {
		logrus.WithError(err).WithField("crop_id", cropID).Warn("forecast evaluation failed")
		return accuracy, nil
	}

	accuracy.Metrics = metrics
	return accuracy, nil
}
