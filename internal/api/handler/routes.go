package handler

import (
	"net/http"

	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/api/handler/router"
	"github.com/bluzora/crop-price-api/internal/usecases/analyzing"
	"github.com/bluzora/crop-price-api/internal/usecases/cataloging"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Crops(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/crops",
			Method:  http.MethodGet,
			Handler: ListCrops(service),
		},
		{
			Path:    "/v1/crops",
			Method:  http.MethodPost,
			Handler: CreateCrop(service),
		},
	}
}

func Prices(
	service cataloging.CatalogService,
	priceRepo repository.CropPriceRepository,
	predictedRepo repository.PredictedPriceRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/crops/:id/prices",
			Method:  http.MethodGet,
			Handler: GetCropPrices(service, priceRepo),
		},
		{
			Path:    "/v1/crops/:id/prices",
			Method:  http.MethodPost,
			Handler: UpsertCropPrices(service),
		},
		{
			Path:    "/v1/crops/:id/predictions",
			Method:  http.MethodGet,
			Handler: GetCropPredictions(service, predictedRepo),
		},
	}
}

func Reports(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/crops/:id/report",
			Method:  http.MethodGet,
			Handler: GetPriceReport(service),
		},
		{
			Path:    "/v1/crops/:id/summary",
			Method:  http.MethodGet,
			Handler: GetPeriodSummary(service),
		},
		{
			Path:    "/v1/crops/:id/accuracy",
			Method:  http.MethodGet,
			Handler: GetForecastAccuracy(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
