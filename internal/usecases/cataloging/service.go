package cataloging

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/domain"
	"github.com/bluzora/crop-price-api/pkg/utils"
)

var (
	ErrCropNotFound      = errors.New("crop not found")
	ErrCropAlreadyExists = errors.New("crop already exists")
)

// CatalogService manages the crop catalog and its price history.
type CatalogService interface {
	ListCropOverviews() ([]*domain.CropOverview, error)
	CreateCrop(name, unit string, growDurationDays int, imageURL *string) (*domain.Crop, error)
	GetCrop(cropID string) (*domain.Crop, error)
	UpsertPrices(cropID string, points []domain.PricePoint) (int, error)
}

type Service struct {
	cropRepo  repository.CropRepository
	priceRepo repository.CropPriceRepository
}

func NewService(
	cropRepo repository.CropRepository,
	priceRepo repository.CropPriceRepository,
) CatalogService {
	return &Service{
		cropRepo:  cropRepo,
		priceRepo: priceRepo,
	}
}

// ListCropOverviews returns every crop with its latest price band and the
// day-over-day movement of the average price.
func (s *Service) ListCropOverviews() ([]*domain.CropOverview, error) {
	crops, err := s.cropRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "listing crops")
	}

	overviews := make([]*domain.CropOverview, 0, len(crops))
	for _, crop := range crops {
		overview := &domain.CropOverview{
			ID:   crop.ID,
			Name: crop.Name,
			Unit: crop.Unit,
		}

		latest, previous, err := s.priceRepo.LatestTwo(crop.ID)
		if err != nil {
			logrus.WithError(err).WithField("crop_id", crop.ID).Warn("could not load latest prices for crop")
			overviews = append(overviews, overview)
			continue
		}

		if latest != nil {
			overview.Price = fmt.Sprintf("%.0f - %.0f / %s", latest.MinPrice, latest.MaxPrice, crop.Unit)
			overview.Change, overview.Status = priceMovement(latest, previous)
		}

		overviews = append(overviews, overview)
	}

	return overviews, nil
}

// priceMovement renders the day-over-day change of the average price. A
// crop with no comparable previous point reports a flat 0% and "up".
func priceMovement(latest, previous *domain.PricePoint) (string, string) {
	if previous == nil || previous.AveragePrice == 0 {
		return "↑ 0%", domain.PriceStatusUp
	}

	change := (latest.AveragePrice - previous.AveragePrice) / previous.AveragePrice * 100
	changeRounded := utils.RoundWithTwoDecimalPlace(change)

	if change >= 0 {
		return fmt.Sprintf("↑ %v%%", changeRounded), domain.PriceStatusUp
	}
	return fmt.Sprintf("↓ %v%%", -changeRounded), domain.PriceStatusDown
}

func (s *Service) CreateCrop(name, unit string, growDurationDays int, imageURL *string) (*domain.Crop, error) {
	existing, err := s.cropRepo.GetByName(name)
	if err != nil {
		return nil, errors.Wrap(err, "checking existing crop")
	}
	if existing != nil {
		return nil, ErrCropAlreadyExists
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating crop id")
	}

	crop := &domain.Crop{
		ID:               id,
		Name:             name,
		Unit:             unit,
		GrowDurationDays: growDurationDays,
		ImageURL:         imageURL,
	}

	if err := s.cropRepo.Create(crop); err != nil {
		return nil, errors.Wrap(err, "creating crop")
	}

	return crop, nil
}

func (s *Service) GetCrop(cropID string) (*domain.Crop, error) {
	crop, err := s.cropRepo.GetByID(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching crop")
	}
	if crop == nil {
		return nil, ErrCropNotFound
	}
	return crop, nil
}

// UpsertPrices stores a batch of price points for a crop, one idempotent
// upsert per (crop, date). Returns how many points were written.
func (s *Service) UpsertPrices(cropID string, points []domain.PricePoint) (int, error) {
	crop, err := s.cropRepo.GetByID(cropID)
	if err != nil {
		return 0, errors.Wrap(err, "fetching crop")
	}
	if crop == nil {
		return 0, ErrCropNotFound
	}

	saved := 0
	for i := range points {
		if err := s.priceRepo.SaveOrUpdate(cropID, &points[i], nil); err != nil {
			return saved, errors.Wrapf(err, "saving price for %s", points[i].Date.Format("2006-01-02"))
		}
		saved++
	}

	return saved, nil
}
