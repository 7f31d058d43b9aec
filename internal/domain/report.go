package domain

// Series tags used in the merged reporting list.
const (
	SeriesTypeHistorical = "historical"
	SeriesTypePredicted  = "predicted"
)

// Summary holds the derived statistics of a reporting window. All values
// are rounded to two decimal places. A value of 0.0 means "no data" for
// every field; the analytics layer never propagates a numeric error into
// this structure.
type Summary struct {
	OverallAverage     float64 `json:"overall_average"`
	OverallMin         float64 `json:"overall_min"`
	OverallMax         float64 `json:"overall_max"`
	VolatilityPercent  float64 `json:"volatility_percent"`
	PriceChangePercent float64 `json:"price_change_percent"`
}

// TaggedPricePoint is one entry of the merged historical+predicted list.
// Dates cross the API boundary as YYYY-MM-DD strings.
type TaggedPricePoint struct {
	Date  string  `json:"date"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// CombinedSeriesEntry is one date of the single reporting curve: the
// historical average when the date has a recorded price, otherwise the
// forecast value, and only for dates strictly after the last historical
// date. Never persisted.
type CombinedSeriesEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PriceReport is the reporting contract consumed by the frontend: the
// tagged merged list, the combined curve and the window summary.
type PriceReport struct {
	Results        []TaggedPricePoint    `json:"results"`
	Combined       []CombinedSeriesEntry `json:"combined"`
	OverallSummary Summary               `json:"overall_summary"`
}

// DailyPrice is the boundary form of a historical point.
type DailyPrice struct {
	Date         string  `json:"date"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	AveragePrice float64 `json:"average_price"`
}

// PredictedPrice is the boundary form of a forecast point.
type PredictedPrice struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
}

// PeriodSummary is the per-crop window view: raw daily prices, stored
// predictions and the derived summary, plus the crop identity fields the
// frontend renders alongside.
type PeriodSummary struct {
	Name            string           `json:"name"`
	Unit            string           `json:"unit"`
	DailyPrices     []DailyPrice     `json:"daily_prices"`
	PredictedPrices []PredictedPrice `json:"predicted_prices"`
	Summary         Summary          `json:"summary"`
}
