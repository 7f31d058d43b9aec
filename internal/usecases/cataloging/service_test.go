package cataloging

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bluzora/crop-price-api/infrastructure/repository/mocks"
	"github.com/bluzora/crop-price-api/internal/domain"
)

func pricePoint(d int, avg, min, max float64) *domain.PricePoint {
	return &domain.PricePoint{
		Date:         time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC),
		AveragePrice: avg,
		MinPrice:     min,
		MaxPrice:     max,
	}
}

func TestListCropOverviews(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(cropRepo *mocks.MockCropRepository, priceRepo *mocks.MockCropPriceRepository)
		validate func(t *testing.T, overviews []*domain.CropOverview)
	}{
		{
			name: "price band and upward movement",
			setup: func(cropRepo *mocks.MockCropRepository, priceRepo *mocks.MockCropPriceRepository) {
				cropRepo.EXPECT().List().Return([]*domain.Crop{
					{ID: "crop1", Name: "Carrot", Unit: "Rs/kg"},
				}, nil)
				priceRepo.EXPECT().LatestTwo("crop1").Return(
					pricePoint(2, 110, 100, 120),
					pricePoint(1, 100, 90, 110),
					nil,
				)
			},
			validate: func(t *testing.T, overviews []*domain.CropOverview) {
				require.Len(t, overviews, 1)
				assert.Equal(t, "100 - 120 / Rs/kg", overviews[0].Price)
				assert.Equal(t, "↑ 10%", overviews[0].Change)
				assert.Equal(t, domain.PriceStatusUp, overviews[0].Status)
			},
		},
		{
			name: "downward movement",
			setup: func(cropRepo *mocks.MockCropRepository, priceRepo *mocks.MockCropPriceRepository) {
				cropRepo.EXPECT().List().Return([]*domain.Crop{
					{ID: "crop1", Name: "Tomato", Unit: "Rs/kg"},
				}, nil)
				priceRepo.EXPECT().LatestTwo("crop1").Return(
					pricePoint(2, 90, 80, 100),
					pricePoint(1, 100, 90, 110),
					nil,
				)
			},
			validate: func(t *testing.T, overviews []*domain.CropOverview) {
				require.Len(t, overviews, 1)
				assert.Equal(t, "↓ 10%", overviews[0].Change)
				assert.Equal(t, domain.PriceStatusDown, overviews[0].Status)
			},
		},
		{
			name: "first observed day defaults to flat and up",
			setup: func(cropRepo *mocks.MockCropRepository, priceRepo *mocks.MockCropPriceRepository) {
				cropRepo.EXPECT().List().Return([]*domain.Crop{
					{ID: "crop1", Name: "Leeks", Unit: "Rs/kg"},
				}, nil)
				priceRepo.EXPECT().LatestTwo("crop1").Return(
					pricePoint(1, 100, 90, 110),
					nil,
					nil,
				)
			},
			validate: func(t *testing.T, overviews []*domain.CropOverview) {
				require.Len(t, overviews, 1)
				assert.Equal(t, "↑ 0%", overviews[0].Change)
				assert.Equal(t, domain.PriceStatusUp, overviews[0].Status)
			},
		},
		{
			name: "crop with no prices still listed",
			setup: func(cropRepo *mocks.MockCropRepository, priceRepo *mocks.MockCropPriceRepository) {
				cropRepo.EXPECT().List().Return([]*domain.Crop{
					{ID: "crop1", Name: "Lime", Unit: "Rs/kg"},
				}, nil)
				priceRepo.EXPECT().LatestTwo("crop1").Return(nil, nil, nil)
			},
			validate: func(t *testing.T, overviews []*domain.CropOverview) {
				require.Len(t, overviews, 1)
				assert.Equal(t, "Lime", overviews[0].Name)
				assert.Empty(t, overviews[0].Price)
			},
		},
		{
			name: "price lookup failure does not drop the crop",
			setup: func(cropRepo *mocks.MockCropRepository, priceRepo *mocks.MockCropPriceRepository) {
				cropRepo.EXPECT().List().Return([]*domain.Crop{
					{ID: "crop1", Name: "Potato", Unit: "Rs/kg"},
				}, nil)
				priceRepo.EXPECT().LatestTwo("crop1").Return(nil, nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, overviews []*domain.CropOverview) {
				require.Len(t, overviews, 1)
				assert.Equal(t, "Potato", overviews[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cropRepo := mocks.NewMockCropRepository(ctrl)
			priceRepo := mocks.NewMockCropPriceRepository(ctrl)
			tt.setup(cropRepo, priceRepo)

			service := NewService(cropRepo, priceRepo)
			overviews, err := service.ListCropOverviews()

			require.NoError(t, err)
			tt.validate(t, overviews)
		})
	}
}

func TestCreateCrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cropRepo := mocks.NewMockCropRepository(ctrl)
	priceRepo := mocks.NewMockCropPriceRepository(ctrl)
	service := NewService(cropRepo, priceRepo)

	t.Run("duplicate name", func(t *testing.T) {
		cropRepo.EXPECT().GetByName("Carrot").Return(&domain.Crop{ID: "crop1", Name: "Carrot"}, nil)

		_, err := service.CreateCrop("Carrot", "Rs/kg", 70, nil)

		assert.ErrorIs(t, err, ErrCropAlreadyExists)
	})

	t.Run("created with generated id", func(t *testing.T) {
		cropRepo.EXPECT().GetByName("Beetroot").Return(nil, nil)
		cropRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(crop *domain.Crop) error {
			assert.Len(t, crop.ID, 6)
			assert.Equal(t, "Beetroot", crop.Name)
			return nil
		})

		crop, err := service.CreateCrop("Beetroot", "Rs/kg", 56, nil)

		require.NoError(t, err)
		assert.Equal(t, "Beetroot", crop.Name)
		assert.Equal(t, 56, crop.GrowDurationDays)
	})
}

func TestUpsertPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cropRepo := mocks.NewMockCropRepository(ctrl)
	priceRepo := mocks.NewMockCropPriceRepository(ctrl)
	service := NewService(cropRepo, priceRepo)

	t.Run("unknown crop", func(t *testing.T) {
		cropRepo.EXPECT().GetByID("ghost").Return(nil, nil)

		_, err := service.UpsertPrices("ghost", []domain.PricePoint{*pricePoint(1, 10, 9, 11)})

		assert.ErrorIs(t, err, ErrCropNotFound)
	})

	t.Run("saves every point", func(t *testing.T) {
		cropRepo.EXPECT().GetByID("crop1").Return(&domain.Crop{ID: "crop1"}, nil)
		priceRepo.EXPECT().SaveOrUpdate("crop1", gomock.Any(), gomock.Nil()).Return(nil).Times(3)

		count, err := service.UpsertPrices("crop1", []domain.PricePoint{
			*pricePoint(1, 10, 9, 11),
			*pricePoint(2, 11, 10, 12),
			*pricePoint(3, 12, 11, 13),
		})

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("stops on first failure", func(t *testing.T) {
		cropRepo.EXPECT().GetByID("crop1").Return(&domain.Crop{ID: "crop1"}, nil)
		priceRepo.EXPECT().SaveOrUpdate("crop1", gomock.Any(), gomock.Nil()).Return(nil)
		priceRepo.EXPECT().SaveOrUpdate("crop1", gomock.Any(), gomock.Nil()).Return(errors.New("constraint violation"))

		count, err := service.UpsertPrices("crop1", []domain.PricePoint{
			*pricePoint(1, 10, 9, 11),
			*pricePoint(2, 11, 10, 12),
		})

		assert.Error(t, err)
		assert.Equal(t, 1, count)
	})
}
