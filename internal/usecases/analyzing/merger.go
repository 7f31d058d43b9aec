package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/bluzora/crop-price-api/internal/domain"
	"github.com/bluzora/crop-price-api/pkg/utils"
)

// Summarize derives the window statistics from the historical subset of
// [start, end], falling back to the predicted subset when no historical
// point falls inside the window. When neither has data every field is 0.0;
// callers treat 0.0 as "no data", and a numeric error is never propagated
// into the structure.
func Summarize(
	historical domain.CropSeries,
	predicted []domain.ForecastPoint,
	start, end time.Time,
) domain.Summary {
	hist := historical.Within(start, end)
	pred := predictedWithin(predicted, start, end)

	summary := domain.Summary{}

	var population []datedPrice

	switch {
	case len(hist) > 0:
		var sum float64
		minPrice := hist[0].MinPrice
		maxPrice := hist[0].MaxPrice
		for _, p := range hist {
			sum += p.AveragePrice
			if p.MinPrice < minPrice {
				minPrice = p.MinPrice
			}
			if p.MaxPrice > maxPrice {
				maxPrice = p.MaxPrice
			}
			population = append(population, datedPrice{date: p.Date, price: p.AveragePrice})
		}
		summary.OverallAverage = sum / float64(len(hist))
		summary.OverallMin = minPrice
		summary.OverallMax = maxPrice

	case len(pred) > 0:
		// Predictions carry no distinct min/max, so the same list feeds
		// all three aggregates.
		var sum float64
		minPrice := pred[0].PredictedPrice
		maxPrice := pred[0].PredictedPrice
		for _, p := range pred {
			sum += p.PredictedPrice
			if p.PredictedPrice < minPrice {
				minPrice = p.PredictedPrice
			}
			if p.PredictedPrice > maxPrice {
				maxPrice = p.PredictedPrice
			}
			population = append(population, datedPrice{date: p.Date, price: p.PredictedPrice})
		}
		summary.OverallAverage = sum / float64(len(pred))
		summary.OverallMin = minPrice
		summary.OverallMax = maxPrice
	}

	summary.VolatilityPercent = volatilityPercent(population)
	summary.PriceChangePercent = priceChangePercent(hist, start, end)

	summary.OverallAverage = utils.RoundWithTwoDecimalPlace(summary.OverallAverage)
	summary.OverallMin = utils.RoundWithTwoDecimalPlace(summary.OverallMin)
	summary.OverallMax = utils.RoundWithTwoDecimalPlace(summary.OverallMax)
	summary.VolatilityPercent = utils.RoundWithTwoDecimalPlace(summary.VolatilityPercent)
	summary.PriceChangePercent = utils.RoundWithTwoDecimalPlace(summary.PriceChangePercent)

	return summary
}

type datedPrice struct {
	date  time.Time
	price float64
}

// volatilityPercent is the sample standard deviation of daily simple
// returns, as a percentage. Steps with a non-positive base price are
// skipped; fewer than two valid returns yield 0.0.
func volatilityPercent(population []datedPrice) float64 {
	if len(population) < 2 {
		return 0
	}

	sorted := make([]datedPrice, len(population))
	copy(sorted, population)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].date.Before(sorted[j].date)
	})

	returns := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].price
		if prev <= 0 {
			continue
		}
		returns = append(returns, (sorted[i].price-prev)/prev)
	}

	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var squaredDeviations float64
	for _, r := range returns {
		d := r - mean
		squaredDeviations += d * d
	}

	std := math.Sqrt(squaredDeviations / float64(len(returns)-1))
	return std * 100
}

// priceChangePercent resolves both window edges with a nearest-date lookup
// over the historical points and returns the percentage change. An
// unresolvable or zero start price yields 0.0 rather than an error.
func priceChangePercent(hist domain.CropSeries, start, end time.Time) float64 {
	startPrice := nearestPrice(hist, start)
	endPrice := nearestPrice(hist, end)

	if startPrice == 0 {
		return 0
	}

	return (endPrice - startPrice) / startPrice * 100
}

// nearestPrice picks the historical price closest to the target date. Ties
// between the before-or-equal candidate and the after-or-equal candidate
// favor the earlier one.
func nearestPrice(hist domain.CropSeries, target time.Time) float64 {
	var before, after *domain.PricePoint

	for i := range hist {
		p := hist[i]
		if !p.Date.After(target) {
			if before == nil || p.Date.After(before.Date) {
				point := p
				before = &point
			}
		}
		if !p.Date.Before(target) {
			if after == nil || p.Date.Before(after.Date) {
				point := p
				after = &point
			}
		}
	}

	switch {
	case before != nil && after != nil:
		beforeDiff := target.Sub(before.Date)
		afterDiff := after.Date.Sub(target)
		if afterDiff < beforeDiff {
			return after.AveragePrice
		}
		return before.AveragePrice
	case before != nil:
		return before.AveragePrice
	case after != nil:
		return after.AveragePrice
	default:
		return 0
	}
}

// CombineSeries folds historical and predicted points into one reporting
// curve. The historical value is authoritative on overlap; forecast values
// only surface for dates strictly after the last historical date.
func CombineSeries(historical domain.CropSeries, predicted []domain.ForecastPoint) []domain.CombinedSeriesEntry {
	lastHistorical := historical.LastDate()

	type dated struct {
		date  time.Time
		value float64
	}

	byDate := make(map[string]dated)

	for _, p := range historical {
		key := utils.FormatDate(p.Date)
		byDate[key] = dated{date: p.Date, value: p.AveragePrice}
	}

	for _, p := range predicted {
		if !p.Date.After(lastHistorical) {
			continue
		}
		key := utils.FormatDate(p.Date)
		if _, exists := byDate[key]; exists {
			continue
		}
		byDate[key] = dated{date: p.Date, value: p.PredictedPrice}
	}

	entries := make([]dated, 0, len(byDate))
	for _, d := range byDate {
		entries = append(entries, d)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	combined := make([]domain.CombinedSeriesEntry, len(entries))
	for i, e := range entries {
		combined[i] = domain.CombinedSeriesEntry{
			Date:  utils.FormatDate(e.date),
			Value: e.value,
		}
	}

	return combined
}

// MergeResults tags historical and predicted points and merges them into
// one ascending-by-date list. When both sources share a date the
// historical entry sorts first.
func MergeResults(historical domain.CropSeries, predicted []domain.ForecastPoint) []domain.TaggedPricePoint {
	type tagged struct {
		date  time.Time
		entry domain.TaggedPricePoint
	}

	merged := make([]tagged, 0, len(historical)+len(predicted))

	for _, p := range historical {
		merged = append(merged, tagged{
			date: p.Date,
			entry: domain.TaggedPricePoint{
				Date:  utils.FormatDate(p.Date),
				Type:  domain.SeriesTypeHistorical,
				Price: p.AveragePrice,
			},
		})
	}

	for _, p := range predicted {
		merged = append(merged, tagged{
			date: p.Date,
			entry: domain.TaggedPricePoint{
				Date:  utils.FormatDate(p.Date),
				Type:  domain.SeriesTypePredicted,
				Price: p.PredictedPrice,
			},
		})
	}

	// Stable sort keeps historical before predicted on equal dates.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].date.Before(merged[j].date)
	})

	results := make([]domain.TaggedPricePoint, len(merged))
	for i, m := range merged {
		results[i] = m.entry
	}

	return results
}

// BuildPriceReport assembles the full reporting view of one window. The
// combined curve is built over the full inputs first so the forecast
// cutoff stays anchored to the true last historical date, then narrowed to
// the window.
func BuildPriceReport(
	historical domain.CropSeries,
	predicted []domain.ForecastPoint,
	start, end time.Time,
) *domain.PriceReport {
	hist := historical.Within(start, end)
	pred := predictedWithin(predicted, start, end)

	combined := make([]domain.CombinedSeriesEntry, 0)
	startStr, endStr := utils.FormatDate(start), utils.FormatDate(end)
	for _, e := range CombineSeries(historical, predicted) {
		if e.Date < startStr || e.Date > endStr {
			continue
		}
		combined = append(combined, e)
	}

	return &domain.PriceReport{
		Results:        MergeResults(hist, pred),
		Combined:       combined,
		OverallSummary: Summarize(historical, predicted, start, end),
	}
}

func predictedWithin(predicted []domain.ForecastPoint, start, end time.Time) []domain.ForecastPoint {
	subset := make([]domain.ForecastPoint, 0, len(predicted))
	for _, p := range predicted {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		subset = append(subset, p)
	}
	return subset
}
